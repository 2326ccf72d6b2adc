package scheduler

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storlay/book-bookings-api/internal/database"
	"github.com/storlay/book-bookings-api/internal/entities"
	"github.com/storlay/book-bookings-api/internal/services"
)

func setupBookingsService(t *testing.T) (*database.Database, *services.BookingsService, func()) {
	t.Helper()
	dbPath := "./test_" + t.Name() + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return db, services.NewBookingsService(db), cleanup
}

func TestExpirySweeper_StartStop(t *testing.T) {
	_, service, cleanup := setupBookingsService(t)
	defer cleanup()

	sweeper := NewExpirySweeper(service, "0 0 * * *")
	assert.False(t, sweeper.IsRunning())

	require.NoError(t, sweeper.Start(context.Background()))
	assert.True(t, sweeper.IsRunning())

	// Starting twice is a no-op.
	require.NoError(t, sweeper.Start(context.Background()))

	sweeper.Stop()
	assert.False(t, sweeper.IsRunning())

	// Stopping twice is a no-op too.
	sweeper.Stop()
}

func TestExpirySweeper_InvalidSchedule(t *testing.T) {
	_, service, cleanup := setupBookingsService(t)
	defer cleanup()

	sweeper := NewExpirySweeper(service, "not a schedule")
	err := sweeper.Start(context.Background())
	assert.Error(t, err)
	assert.False(t, sweeper.IsRunning())
}

func TestExpirySweeper_ContextCancelStops(t *testing.T) {
	_, service, cleanup := setupBookingsService(t)
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	sweeper := NewExpirySweeper(service, "0 0 * * *")
	require.NoError(t, sweeper.Start(ctx))

	cancel()

	assert.Eventually(t, func() bool {
		return !sweeper.IsRunning()
	}, 2*time.Second, 10*time.Millisecond)
}

func TestExpirySweeper_SweepPurgesPastBookings(t *testing.T) {
	db, service, cleanup := setupBookingsService(t)
	defer cleanup()

	tx, err := db.Begin()
	require.NoError(t, err)

	user := &entities.User{FirstName: "Alice", LastName: "Tester"}
	require.NoError(t, tx.Users.Create(user))
	book := &entities.Book{Name: "Dune", Price: 9.99, AuthorID: user.ID}
	require.NoError(t, tx.Books.Create(book))

	yesterday := time.Now().UTC().AddDate(0, 0, -1)
	past := &entities.Booking{
		BookID:   book.ID,
		UserID:   user.ID,
		DateFrom: yesterday.AddDate(0, 0, -5),
		DateTo:   yesterday,
	}
	require.NoError(t, tx.Bookings.Create(past))

	future := &entities.Booking{
		BookID:   book.ID,
		UserID:   user.ID,
		DateFrom: time.Now().UTC().AddDate(0, 0, 1),
		DateTo:   time.Now().UTC().AddDate(0, 0, 5),
	}
	require.NoError(t, tx.Bookings.Create(future))
	require.NoError(t, tx.Commit())

	sweeper := NewExpirySweeper(service, "0 0 * * *")
	sweeper.runSweep()

	_, err = service.Get(past.ID)
	assert.ErrorIs(t, err, services.ErrBookingNotFound)
	_, err = service.Get(future.ID)
	assert.NoError(t, err)
}
