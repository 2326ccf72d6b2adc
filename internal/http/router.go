package http

import (
	"github.com/gin-gonic/gin"

	"github.com/storlay/book-bookings-api/internal/database"
	"github.com/storlay/book-bookings-api/internal/services"
)

// RouterConfig holds all dependencies needed by the HTTP layer.
// Using a config struct keeps NewRouter's signature stable as
// controllers come and go.
type RouterConfig struct {
	Database *database.Database
	Bookings *services.BookingsService
	Books    *services.BooksService
	Genres   *services.GenresService
	Users    *services.UsersService
	Version  string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	health := NewHealthController(cfg.Database, cfg.Version)
	bookingsController := NewBookingsController(cfg.Bookings)
	booksController := NewBooksController(cfg.Books)
	genresController := NewGenresController(cfg.Genres)
	usersController := NewUsersController(cfg.Users)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	api := router.Group("/api/v1")

	// Booking endpoints
	api.GET("/bookings", bookingsController.GetAllBookings)
	api.GET("/bookings/:id", bookingsController.GetBooking)
	api.POST("/bookings", bookingsController.CreateBooking)
	api.PUT("/bookings/:id", bookingsController.UpdateBooking)
	api.DELETE("/bookings/:id", bookingsController.DeleteBooking)

	// Book endpoints
	api.GET("/books", booksController.GetAllBooks)
	api.GET("/books/search", booksController.SearchBooks)
	api.GET("/books/:id", booksController.GetBook)
	api.POST("/books", booksController.CreateBook)
	api.PUT("/books/:id", booksController.UpdateBook)
	api.DELETE("/books/:id", booksController.DeleteBook)

	// Genre endpoints
	api.GET("/genres", genresController.GetAllGenres)
	api.GET("/genres/:id", genresController.GetGenre)
	api.POST("/genres", genresController.CreateGenre)
	api.PUT("/genres/:id", genresController.UpdateGenre)
	api.DELETE("/genres/:id", genresController.DeleteGenre)

	// User endpoints
	api.GET("/users", usersController.GetAllUsers)
	api.GET("/users/:id", usersController.GetUser)
	api.POST("/users", usersController.CreateUser)
	api.PUT("/users/:id", usersController.UpdateUser)
	api.DELETE("/users/:id", usersController.DeleteUser)
	api.POST("/users/:id/avatar", usersController.UploadAvatar)
	api.DELETE("/users/:id/avatar", usersController.DeleteAvatar)

	return router
}
