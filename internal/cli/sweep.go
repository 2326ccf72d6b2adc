package cli

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/storlay/book-bookings-api/internal/config"
	"github.com/storlay/book-bookings-api/internal/database"
	"github.com/storlay/book-bookings-api/internal/services"
)

// SweepCommand removes bookings whose end date has already passed.
type SweepCommand struct {
	DatabasePath string
	AsOf         string
}

// NewSweepCommand creates a new SweepCommand
func NewSweepCommand() *SweepCommand {
	return &SweepCommand{}
}

// ParseFlags parses command line flags
func (cmd *SweepCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("sweep", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file")
	fs.StringVar(&cmd.AsOf, "as-of", "", "Reference date in YYYY-MM-DD format (default: today)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s sweep [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Remove bookings whose end date is strictly before the reference date.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s sweep\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s sweep -db ./bookings.db -as-of 2025-01-01\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	return nil
}

// Run executes the sweep command
func (cmd *SweepCommand) Run() error {
	asOf := services.Today()
	if cmd.AsOf != "" {
		parsed, err := services.ParseDate(cmd.AsOf)
		if err != nil {
			return fmt.Errorf("invalid -as-of date %q: %w", cmd.AsOf, err)
		}
		asOf = parsed
	}

	absDBPath, err := filepath.Abs(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for database: %w", err)
	}

	db, err := database.NewDatabase(absDBPath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	bookings := services.NewBookingsService(db)
	purged, err := bookings.RemoveExpired(asOf)
	if err != nil {
		return fmt.Errorf("failed to remove expired bookings: %w", err)
	}

	fmt.Printf("Removed %d expired bookings (as of %s)\n", purged, asOf)
	return nil
}
