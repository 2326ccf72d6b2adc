package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/storlay/book-bookings-api/internal/services"
)

type UsersController struct {
	service *services.UsersService
}

func NewUsersController(service *services.UsersService) *UsersController {
	return &UsersController{service: service}
}

func (controller *UsersController) GetAllUsers(c *gin.Context) {
	users, err := controller.service.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	users = paginate(c, users)
	c.IndentedJSON(http.StatusOK, gin.H{"users": users, "count": len(users)})
}

func (controller *UsersController) GetUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	user, err := controller.service.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, user)
}

func (controller *UsersController) CreateUser(c *gin.Context) {
	var input services.UserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.IndentedJSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	id, err := controller.service.Create(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.IndentedJSON(http.StatusCreated, gin.H{"user_id": id})
}

func (controller *UsersController) UpdateUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input services.UserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.IndentedJSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	userID, err := controller.service.Update(id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"user_id": userID})
}

func (controller *UsersController) DeleteUser(c *gin.Context) {
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

// UploadAvatar accepts a multipart form with an "avatar" file field.
func (controller *UsersController) UploadAvatar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		c.IndentedJSON(http.StatusBadRequest, ErrorResponse{Error: "avatar file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.IndentedJSON(http.StatusBadRequest, ErrorResponse{Error: "could not read avatar file"})
		return
	}
	defer file.Close()

	userID, err := controller.service.UploadAvatar(id, file)
	if err != nil {
		respondError(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"user_id": userID})
}

func (controller *UsersController) DeleteAvatar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := controller.service.DeleteAvatar(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
