package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/storlay/book-bookings-api/internal/services"
)

type BookingsController struct {
	service *services.BookingsService
}

func NewBookingsController(service *services.BookingsService) *BookingsController {
	return &BookingsController{service: service}
}

func (controller *BookingsController) GetAllBookings(c *gin.Context) {
	bookings, err := controller.service.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	bookings = paginate(c, bookings)
	c.IndentedJSON(http.StatusOK, gin.H{"bookings": bookings, "count": len(bookings)})
}

func (controller *BookingsController) GetBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	booking, err := controller.service.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, booking)
}

func (controller *BookingsController) CreateBooking(c *gin.Context) {
	var input services.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.IndentedJSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	id, err := controller.service.Create(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.IndentedJSON(http.StatusCreated, gin.H{"booking_id": id})
}

func (controller *BookingsController) UpdateBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input services.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.IndentedJSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	bookingID, err := controller.service.Update(id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"booking_id": bookingID})
}

func (controller *BookingsController) DeleteBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := controller.service.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
