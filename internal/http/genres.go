package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/storlay/book-bookings-api/internal/services"
)

type GenresController struct {
	service *services.GenresService
}

func NewGenresController(service *services.GenresService) *GenresController {
	return &GenresController{service: service}
}

func (controller *GenresController) GetAllGenres(c *gin.Context) {
	genres, err := controller.service.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	genres = paginate(c, genres)
	c.IndentedJSON(http.StatusOK, gin.H{"genres": genres, "count": len(genres)})
}

func (controller *GenresController) GetGenre(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	genre, err := controller.service.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, genre)
}

func (controller *GenresController) CreateGenre(c *gin.Context) {
	var input services.GenreInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.IndentedJSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	id, err := controller.service.Create(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.IndentedJSON(http.StatusCreated, gin.H{"genre_id": id})
}

func (controller *GenresController) UpdateGenre(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input services.GenreInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.IndentedJSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	genreID, err := controller.service.Update(id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"genre_id": genreID})
}

func (controller *GenresController) DeleteGenre(c *gin.Context) {
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
