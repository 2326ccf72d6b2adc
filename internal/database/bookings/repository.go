// Package bookings provides database operations for booking management.
//
// # Usage
//
//	repo := bookings.NewRepository(db)
//	holderID, booked, err := repo.CheckOverlap(bookID, from, to)
package bookings

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/storlay/book-bookings-api/internal/entities"
)

// Repository handles all booking database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new bookings repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new booking and sets its generated ID.
func (r *Repository) Create(booking *entities.Booking) error {
	return r.db.Create(booking).Error
}

// GetByID retrieves a booking by ID.
func (r *Repository) GetByID(id uint) (*entities.Booking, error) {
	var booking entities.Booking
	err := r.db.First(&booking, id).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// GetAll returns all bookings ordered by start date.
func (r *Repository) GetAll() ([]entities.Booking, error) {
	var bookings []entities.Booking
	err := r.db.Order("date_from ASC, id ASC").Find(&bookings).Error
	return bookings, err
}

// Update overwrites the mutable fields of a booking.
// Returns gorm.ErrRecordNotFound if no row matches the ID.
func (r *Repository) Update(booking *entities.Booking) error {
	result := r.db.Model(&entities.Booking{}).
		Where("id = ?", booking.ID).
		Updates(map[string]any{
			"book_id":   booking.BookID,
			"user_id":   booking.UserID,
			"date_from": booking.DateFrom,
			"date_to":   booking.DateTo,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a booking by ID.
func (r *Repository) Delete(id uint) error {
	return r.db.Delete(&entities.Booking{}, id).Error
}

// CheckOverlap reports whether any booking on the book intersects the
// inclusive [dateFrom, dateTo] range. Overlap holds when the new start falls
// inside a stored range, the new end falls inside a stored range, or the new
// range fully contains a stored one. The predicate runs entirely in SQL and
// returns the holder's user ID of one conflicting booking.
func (r *Repository) CheckOverlap(bookID uint, dateFrom, dateTo time.Time) (uint, bool, error) {
	var holder struct {
		UserID uint
	}
	err := r.db.Model(&entities.Booking{}).
		Select("user_id").
		Where("book_id = ?", bookID).
		Where(
			"(date_from <= ? AND date_to >= ?) OR (date_from <= ? AND date_to >= ?) OR (date_from >= ? AND date_to <= ?)",
			dateFrom, dateFrom,
			dateTo, dateTo,
			dateFrom, dateTo,
		).
		Take(&holder).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return holder.UserID, true, nil
}

// PurgeExpired deletes all bookings whose end date is strictly before asOf
// and returns the number of rows removed. Bookings ending on asOf survive.
func (r *Repository) PurgeExpired(asOf time.Time) (int64, error) {
	result := r.db.Where("date_to < ?", asOf).Delete(&entities.Booking{})
	return result.RowsAffected, result.Error
}
