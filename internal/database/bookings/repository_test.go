package bookings

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/storlay/book-bookings-api/internal/entities"
)

func setupTestDB(t *testing.T) (*gorm.DB, *Repository, func()) {
	dbPath := "./test_bookings_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entities.User{},
		&entities.Genre{},
		&entities.Book{},
		&entities.Booking{},
	)
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return db, repo, cleanup
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func createTestUser(t *testing.T, db *gorm.DB, firstName string) *entities.User {
	user := &entities.User{FirstName: firstName, LastName: "Tester"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestBook(t *testing.T, db *gorm.DB, authorID uint, name string) *entities.Book {
	book := &entities.Book{Name: name, Price: 9.99, AuthorID: authorID}
	require.NoError(t, db.Create(book).Error)
	return book
}

func createTestBooking(t *testing.T, repo *Repository, bookID, userID uint, from, to time.Time) *entities.Booking {
	booking := &entities.Booking{
		BookID:   bookID,
		UserID:   userID,
		DateFrom: from,
		DateTo:   to,
	}
	require.NoError(t, repo.Create(booking))
	return booking
}

func TestRepository_CheckOverlap(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	user := createTestUser(t, db, "Alice")
	book := createTestBook(t, db, user.ID, "Dune")
	createTestBooking(t, repo, book.ID, user.ID, date(2024, 1, 10), date(2024, 1, 15))

	t.Run("new start falls inside stored range", func(t *testing.T) {
		holderID, booked, err := repo.CheckOverlap(book.ID, date(2024, 1, 14), date(2024, 1, 20))
		require.NoError(t, err)
		assert.True(t, booked)
		assert.Equal(t, user.ID, holderID)
	})

	t.Run("new end falls inside stored range", func(t *testing.T) {
		holderID, booked, err := repo.CheckOverlap(book.ID, date(2024, 1, 5), date(2024, 1, 12))
		require.NoError(t, err)
		assert.True(t, booked)
		assert.Equal(t, user.ID, holderID)
	})

	t.Run("new range contains stored range", func(t *testing.T) {
		_, booked, err := repo.CheckOverlap(book.ID, date(2024, 1, 1), date(2024, 1, 31))
		require.NoError(t, err)
		assert.True(t, booked)
	})

	t.Run("stored range contains new range", func(t *testing.T) {
		_, booked, err := repo.CheckOverlap(book.ID, date(2024, 1, 11), date(2024, 1, 14))
		require.NoError(t, err)
		assert.True(t, booked)
	})

	t.Run("bounds are inclusive", func(t *testing.T) {
		// A booking starting exactly on the stored end date conflicts.
		_, booked, err := repo.CheckOverlap(book.ID, date(2024, 1, 15), date(2024, 1, 20))
		require.NoError(t, err)
		assert.True(t, booked)
	})

	t.Run("disjoint range does not conflict", func(t *testing.T) {
		holderID, booked, err := repo.CheckOverlap(book.ID, date(2024, 1, 16), date(2024, 1, 20))
		require.NoError(t, err)
		assert.False(t, booked)
		assert.Zero(t, holderID)
	})

	t.Run("other books are not considered", func(t *testing.T) {
		otherBook := createTestBook(t, db, user.ID, "Hyperion")
		_, booked, err := repo.CheckOverlap(otherBook.ID, date(2024, 1, 10), date(2024, 1, 15))
		require.NoError(t, err)
		assert.False(t, booked)
	})
}

func TestRepository_PurgeExpired(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	user := createTestUser(t, db, "Alice")
	book := createTestBook(t, db, user.ID, "Dune")

	expired := createTestBooking(t, repo, book.ID, user.ID, date(2024, 1, 1), date(2024, 1, 5))
	endsToday := createTestBooking(t, repo, book.ID, user.ID, date(2024, 1, 7), date(2024, 1, 10))
	future := createTestBooking(t, repo, book.ID, user.ID, date(2024, 1, 12), date(2024, 1, 20))

	purged, err := repo.PurgeExpired(date(2024, 1, 10))
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)

	// A booking ending exactly on the reference date survives.
	_, err = repo.GetByID(endsToday.ID)
	assert.NoError(t, err)
	_, err = repo.GetByID(future.ID)
	assert.NoError(t, err)
	_, err = repo.GetByID(expired.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// Running the purge again with the same date removes nothing.
	purged, err = repo.PurgeExpired(date(2024, 1, 10))
	require.NoError(t, err)
	assert.Zero(t, purged)
}

func TestRepository_GetAllOrdersByStartDate(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	user := createTestUser(t, db, "Alice")
	book := createTestBook(t, db, user.ID, "Dune")

	later := createTestBooking(t, repo, book.ID, user.ID, date(2024, 3, 1), date(2024, 3, 5))
	earlier := createTestBooking(t, repo, book.ID, user.ID, date(2024, 1, 1), date(2024, 1, 5))

	all, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, earlier.ID, all[0].ID)
	assert.Equal(t, later.ID, all[1].ID)
}

func TestRepository_UpdateMissingBooking(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	err := repo.Update(&entities.Booking{
		ID:       12345,
		BookID:   1,
		UserID:   1,
		DateFrom: date(2024, 1, 1),
		DateTo:   date(2024, 1, 5),
	})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
