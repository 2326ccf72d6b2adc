package database

import (
	"gorm.io/gorm"

	"github.com/storlay/book-bookings-api/internal/database/bookings"
	"github.com/storlay/book-bookings-api/internal/database/books"
	"github.com/storlay/book-bookings-api/internal/database/genres"
	"github.com/storlay/book-bookings-api/internal/database/users"
)

// Transaction is a unit of work. Every repository it exposes is bound to the
// same database session, so a multi-step operation either commits as a whole
// or leaves no trace.
//
// Usage:
//
//	tx, err := db.Begin()
//	if err != nil {
//		return err
//	}
//	defer tx.Rollback()
//	// ... repository calls ...
//	return tx.Commit()
type Transaction struct {
	session  *gorm.DB
	finished bool

	Bookings *bookings.Repository
	Books    *books.Repository
	Genres   *genres.Repository
	Users    *users.Repository
}

// Begin opens a new transaction and constructs one repository per entity
// bound to it. Nothing is durable until Commit; callers defer Rollback so
// every exit path releases the session.
func (d *Database) Begin() (*Transaction, error) {
	session := d.DB.Begin()
	if session.Error != nil {
		return nil, session.Error
	}
	return &Transaction{
		session:  session,
		Bookings: bookings.NewRepository(session),
		Books:    books.NewRepository(session),
		Genres:   genres.NewRepository(session),
		Users:    users.NewRepository(session),
	}, nil
}

// Commit flushes all pending writes durably.
func (t *Transaction) Commit() error {
	if t.finished {
		return nil
	}
	t.finished = true
	return t.session.Commit().Error
}

// Rollback aborts the transaction. It is a no-op after Commit, so it is safe
// to defer unconditionally.
func (t *Transaction) Rollback() {
	if t.finished {
		return
	}
	t.finished = true
	t.session.Rollback()
}
