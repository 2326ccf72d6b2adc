package entities

import (
	"time"
)

// User is an author of books and a holder of bookings.
type User struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FirstName  string    `gorm:"size:100" json:"first_name"`
	LastName   string    `gorm:"size:100" json:"last_name"`
	AvatarPath string    `gorm:"size:1024" json:"avatar_path,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Books []Book `gorm:"foreignKey:AuthorID" json:"-"`
}
