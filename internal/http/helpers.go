package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/storlay/book-bookings-api/internal/services"
)

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError maps a domain error to its client-facing status. Anything
// outside the taxonomy is logged and hidden behind a 500.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, services.ErrInvalidDateRange),
		errors.Is(err, services.ErrInvalidBookingReference),
		errors.Is(err, services.ErrIncorrectAuthor),
		errors.Is(err, services.ErrIncorrectGenreNames):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, services.ErrBookingNotFound),
		errors.Is(err, services.ErrBookNotFound),
		errors.Is(err, services.ErrGenreNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrAvatarNotUploaded),
		errors.Is(err, services.ErrAvatarFileMissing):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, services.ErrBookingConflict),
		errors.Is(err, services.ErrDuplicateGenre):
		status = http.StatusConflict
		message = err.Error()
	default:
		log.Printf("Unhandled service error: %v", err)
	}

	c.IndentedJSON(status, ErrorResponse{Error: message})
}

// parseIDParam extracts the :id path parameter. On failure it writes the 400
// response itself and returns false.
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.IndentedJSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id parameter"})
		return 0, false
	}
	return uint(id), true
}

// paginate applies limit/offset query parameters to an already-loaded
// sequence. Shaping only; the services never paginate.
func paginate[T any](c *gin.Context, items []T) []T {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	if offset < 0 {
		offset = 0
	}
	if offset > len(items) {
		offset = len(items)
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
