package entities

import (
	"time"
)

// Book references its author and a set of genres through the books_genres
// association table.
type Book struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"index;size:512" json:"name"`
	Price     float64   `json:"price"`
	AuthorID  uint      `gorm:"index" json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Author User    `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
	Genres []Genre `gorm:"many2many:books_genres;" json:"genres,omitempty"`
}
