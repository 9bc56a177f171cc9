package handler

import (
	"net/http"

	"eventease-booking/internal/model"
	"eventease-booking/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	service service.UserService
}

func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.POST("users", h.Create)
		router.GET("users/:id", h.GetByID)
	}
}

func (h *UserHandler) Create(c *gin.Context) {
	var req model.CreateUserRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	created, err := h.service.Create(c, req)
	if err != nil {
		handleError(c, err, "CreateUser")
		return
	}
	handleSuccess(c, created, http.StatusCreated)
}

func (h *UserHandler) GetByID(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	user, err := h.service.GetByID(c, id)
	if err != nil {
		handleError(c, err, "GetUser")
		return
	}
	handleSuccess(c, user, http.StatusOK)
}
