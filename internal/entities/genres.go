package entities

import (
	"time"
)

// Genre has a case-sensitive unique name and is referenced by zero or more books.
type Genre struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:100" json:"name"`
	CreatedAt time.Time `json:"created_at"`

	Books []Book `gorm:"many2many:books_genres;" json:"-"`
}
