package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storlay/book-bookings-api/internal/avatars"
	"github.com/storlay/book-bookings-api/internal/database"
	"github.com/storlay/book-bookings-api/internal/entities"
	"github.com/storlay/book-bookings-api/internal/services"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *database.Database, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_http_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	store, err := avatars.NewStore(t.TempDir())
	require.NoError(t, err)

	router := NewRouter(RouterConfig{
		Database: db,
		Bookings: services.NewBookingsService(db),
		Books:    services.NewBooksService(db),
		Genres:   services.NewGenresService(db),
		Users:    services.NewUsersService(db, store),
		Version:  "test",
	})

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return router, db, cleanup
}

func seedUserAndBook(t *testing.T, db *database.Database) (uint, uint) {
	t.Helper()
	tx, err := db.Begin()
	require.NoError(t, err)
	defer tx.Rollback()

	user := &entities.User{FirstName: "Alice", LastName: "Tester"}
	require.NoError(t, tx.Users.Create(user))
	book := &entities.Book{Name: "Dune", Price: 9.99, AuthorID: user.ID}
	require.NoError(t, tx.Books.Create(book))
	require.NoError(t, tx.Commit())
	return user.ID, book.ID
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestBookingsAPI_CreateAndGet(t *testing.T) {
	router, db, cleanup := setupTestRouter(t)
	defer cleanup()

	userID, bookID := seedUserAndBook(t, db)

	body := fmt.Sprintf(
		`{"book_id": %d, "user_id": %d, "date_from": "2024-01-10", "date_to": "2024-01-15"}`,
		bookID, userID,
	)
	w := doJSON(router, "POST", "/api/v1/bookings", body)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		BookingID uint `json:"booking_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotZero(t, created.BookingID)

	w = doJSON(router, "GET", fmt.Sprintf("/api/v1/bookings/%d", created.BookingID), "")
	require.Equal(t, http.StatusOK, w.Code)

	var booking services.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &booking))
	assert.Equal(t, bookID, booking.BookID)
	assert.Equal(t, "2024-01-10", booking.DateFrom.String())
}

func TestBookingsAPI_Conflict(t *testing.T) {
	router, db, cleanup := setupTestRouter(t)
	defer cleanup()

	userID, bookID := seedUserAndBook(t, db)

	body := fmt.Sprintf(
		`{"book_id": %d, "user_id": %d, "date_from": "2024-01-10", "date_to": "2024-01-15"}`,
		bookID, userID,
	)
	w := doJSON(router, "POST", "/api/v1/bookings", body)
	require.Equal(t, http.StatusCreated, w.Code)

	overlapping := fmt.Sprintf(
		`{"book_id": %d, "user_id": %d, "date_from": "2024-01-14", "date_to": "2024-01-20"}`,
		bookID, userID,
	)
	w = doJSON(router, "POST", "/api/v1/bookings", overlapping)
	assert.Equal(t, http.StatusConflict, w.Code)

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.NotEmpty(t, response.Error)
}

func TestBookingsAPI_BadRequests(t *testing.T) {
	router, db, cleanup := setupTestRouter(t)
	defer cleanup()

	userID, bookID := seedUserAndBook(t, db)

	t.Run("inverted date range", func(t *testing.T) {
		body := fmt.Sprintf(
			`{"book_id": %d, "user_id": %d, "date_from": "2024-01-15", "date_to": "2024-01-10"}`,
			bookID, userID,
		)
		w := doJSON(router, "POST", "/api/v1/bookings", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown book reference", func(t *testing.T) {
		body := fmt.Sprintf(
			`{"book_id": 12345, "user_id": %d, "date_from": "2024-01-10", "date_to": "2024-01-15"}`,
			userID,
		)
		w := doJSON(router, "POST", "/api/v1/bookings", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed date", func(t *testing.T) {
		body := fmt.Sprintf(
			`{"book_id": %d, "user_id": %d, "date_from": "10.01.2024", "date_to": "2024-01-15"}`,
			bookID, userID,
		)
		w := doJSON(router, "POST", "/api/v1/bookings", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		w := doJSON(router, "POST", "/api/v1/bookings", `{"book_id": 1}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("non-numeric id parameter", func(t *testing.T) {
		w := doJSON(router, "GET", "/api/v1/bookings/abc", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestBookingsAPI_DeleteLifecycle(t *testing.T) {
	router, db, cleanup := setupTestRouter(t)
	defer cleanup()

	userID, bookID := seedUserAndBook(t, db)

	body := fmt.Sprintf(
		`{"book_id": %d, "user_id": %d, "date_from": "2024-01-10", "date_to": "2024-01-15"}`,
		bookID, userID,
	)
	w := doJSON(router, "POST", "/api/v1/bookings", body)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		BookingID uint `json:"booking_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	path := fmt.Sprintf("/api/v1/bookings/%d", created.BookingID)
	w = doJSON(router, "DELETE", path, "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(router, "DELETE", path, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(router, "GET", path, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBookingsAPI_ListWithPagination(t *testing.T) {
	router, db, cleanup := setupTestRouter(t)
	defer cleanup()

	userID, bookID := seedUserAndBook(t, db)

	for day := 1; day <= 5; day++ {
		body := fmt.Sprintf(
			`{"book_id": %d, "user_id": %d, "date_from": "2024-02-%02d", "date_to": "2024-02-%02d"}`,
			bookID, userID, day*2, day*2+1,
		)
		w := doJSON(router, "POST", "/api/v1/bookings", body)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(router, "GET", "/api/v1/bookings?limit=2&offset=1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Bookings []services.Booking `json:"bookings"`
		Count    int                `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 2, response.Count)
	require.Len(t, response.Bookings, 2)
	assert.Equal(t, "2024-02-04", response.Bookings[0].DateFrom.String())
}
