package entities

import (
	"time"
)

// Booking reserves a book for a user over an inclusive calendar-date range.
// DateFrom and DateTo are stored normalized to midnight UTC.
type Booking struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BookID    uint      `gorm:"index" json:"book_id"`
	UserID    uint      `gorm:"index" json:"user_id"`
	DateFrom  time.Time `gorm:"index" json:"date_from"`
	DateTo    time.Time `gorm:"index" json:"date_to"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Book Book `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE" json:"-"`
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
