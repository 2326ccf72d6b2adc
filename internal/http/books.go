package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/storlay/book-bookings-api/internal/services"
)

type BooksController struct {
	service *services.BooksService
}

func NewBooksController(service *services.BooksService) *BooksController {
	return &BooksController{service: service}
}

func (controller *BooksController) GetAllBooks(c *gin.Context) {
	books, err := controller.service.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	books = paginate(c, books)
	c.IndentedJSON(http.StatusOK, gin.H{"books": books, "count": len(books)})
}

func (controller *BooksController) GetBook(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	book, err := controller.service.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, book)
}

// SearchBooks filters books by author initials, genre names and price bounds.
// All query parameters are optional and combine with AND.
func (controller *BooksController) SearchBooks(c *gin.Context) {
	filters := services.BookFilters{
		AuthorFirstName: c.Query("author_name"),
		AuthorLastName:  c.Query("author_surname"),
		Genres:          c.QueryArray("genres"),
	}

	if raw := c.Query("min_price"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.IndentedJSON(http.StatusBadRequest, ErrorResponse{Error: "invalid min_price parameter"})
			return
		}
		filters.MinPrice = &price
	}
	if raw := c.Query("max_price"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.IndentedJSON(http.StatusBadRequest, ErrorResponse{Error: "invalid max_price parameter"})
			return
		}
		filters.MaxPrice = &price
	}

	books, err := controller.service.FindWithFilters(filters)
	if err != nil {
		respondError(c, err)
		return
	}
	books = paginate(c, books)
	c.IndentedJSON(http.StatusOK, gin.H{"books": books, "count": len(books)})
}

func (controller *BooksController) CreateBook(c *gin.Context) {
	var input services.BookInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.IndentedJSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	id, err := controller.service.Create(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.IndentedJSON(http.StatusCreated, gin.H{"book_id": id})
}

func (controller *BooksController) UpdateBook(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input services.BookInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.IndentedJSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	bookID, err := controller.service.Update(id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"book_id": bookID})
}

func (controller *BooksController) DeleteBook(c *gin.Context) {
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
