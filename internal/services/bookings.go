package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/storlay/book-bookings-api/internal/database"
	"github.com/storlay/book-bookings-api/internal/entities"
)

// BookingInput carries the fields for creating or updating a booking.
// Both dates are inclusive bounds.
type BookingInput struct {
	BookID   uint `json:"book_id" binding:"required"`
	UserID   uint `json:"user_id" binding:"required"`
	DateFrom Date `json:"date_from" binding:"required"`
	DateTo   Date `json:"date_to" binding:"required"`
}

// BookingsService implements the reservation core: date-range validation,
// reference resolution, overlap detection and the commit/rollback protocol
// around them.
type BookingsService struct {
	db *database.Database
}

// NewBookingsService creates a new bookings service.
func NewBookingsService(db *database.Database) *BookingsService {
	return &BookingsService{db: db}
}

// Get returns a booking by ID.
func (s *BookingsService) Get(id uint) (Booking, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return Booking{}, err
	}
	defer tx.Rollback()

	booking, err := tx.Bookings.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Booking{}, ErrBookingNotFound
	}
	if err != nil {
		return Booking{}, err
	}
	return newBookingModel(*booking), nil
}

// GetAll returns all bookings. Pagination, if any, is applied by the caller
// on the returned sequence.
func (s *BookingsService) GetAll() ([]Booking, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	rows, err := tx.Bookings.GetAll()
	if err != nil {
		return nil, err
	}
	bookings := make([]Booking, 0, len(rows))
	for _, row := range rows {
		bookings = append(bookings, newBookingModel(row))
	}
	return bookings, nil
}

// Create reserves a book for a user over the requested range and returns the
// generated booking ID. The overlap check and the insert run in the same
// transaction, so two conflicting requests cannot both commit.
func (s *BookingsService) Create(data BookingInput) (uint, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	_, booked, err := s.validate(tx, data)
	if err != nil {
		return 0, err
	}
	if booked {
		return 0, ErrBookingConflict
	}

	booking := &entities.Booking{
		BookID:   data.BookID,
		UserID:   data.UserID,
		DateFrom: data.DateFrom.Time,
		DateTo:   data.DateTo.Time,
	}
	if err := tx.Bookings.Create(booking); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return booking.ID, nil
}

// Update replaces a booking's fields after re-validation against all other
// bookings. An overlap held by the same user is not a conflict, so a user can
// adjust the bounds of their own reservation.
func (s *BookingsService) Update(id uint, data BookingInput) (uint, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	holderID, booked, err := s.validate(tx, data)
	if err != nil {
		return 0, err
	}
	if booked && holderID != data.UserID {
		return 0, ErrBookingConflict
	}

	booking := &entities.Booking{
		ID:       id,
		BookID:   data.BookID,
		UserID:   data.UserID,
		DateFrom: data.DateFrom.Time,
		DateTo:   data.DateTo.Time,
	}
	if err := tx.Bookings.Update(booking); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrBookingNotFound
		}
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// Delete removes a booking by ID. Deleting an absent booking fails with
// ErrBookingNotFound, never silently.
func (s *BookingsService) Delete(id uint) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Bookings.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookingNotFound
		}
		return err
	}
	if err := tx.Bookings.Delete(id); err != nil {
		return err
	}
	return tx.Commit()
}

// RemoveExpired purges all bookings that ended before asOf and returns the
// number removed. Running it twice with the same date is a no-op the second
// time.
func (s *BookingsService) RemoveExpired(asOf Date) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	purged, err := tx.Bookings.PurgeExpired(asOf.Time)
	if err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return purged, nil
}

// validate checks the date ordering, resolves both references and queries for
// an overlapping booking. It reuses the caller's transaction so the whole
// create/update flow stays atomic.
func (s *BookingsService) validate(tx *database.Transaction, data BookingInput) (uint, bool, error) {
	if data.DateFrom.Time.After(data.DateTo.Time) {
		return 0, false, ErrInvalidDateRange
	}

	if _, err := tx.Users.GetByID(data.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, false, ErrInvalidBookingReference
		}
		return 0, false, err
	}
	if _, err := tx.Books.GetByID(data.BookID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, false, ErrInvalidBookingReference
		}
		return 0, false, err
	}

	return tx.Bookings.CheckOverlap(data.BookID, data.DateFrom.Time, data.DateTo.Time)
}
