package config

const (
	// DefaultDatabasePath is the default path for the main application database
	DefaultDatabasePath = "./bookings.db"

	// DefaultAvatarsDir is the default directory for uploaded user avatars
	DefaultAvatarsDir = "./avatars"
)
