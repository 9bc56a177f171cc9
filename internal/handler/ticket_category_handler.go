package handler

import (
	"net/http"

	"eventease-booking/internal/model"
	"eventease-booking/internal/service"

	"github.com/gin-gonic/gin"
)

type TicketCategoryHandler struct {
	service service.TicketCategoryService
}

func NewTicketCategoryHandler(service service.TicketCategoryService) *TicketCategoryHandler {
	return &TicketCategoryHandler{service: service}
}

func (h *TicketCategoryHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.POST("events/:id/categories", h.Create)
		router.GET("events/:id/categories", h.ListByEvent)
		router.GET("categories/:id", h.GetByID)
		router.PUT("categories/:id", h.Update)
	}
}

func (h *TicketCategoryHandler) Create(c *gin.Context) {
	eventID, ok := bindID(c)
	if !ok {
		return
	}
	var req model.CreateTicketCategoryRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	created, err := h.service.Create(c, eventID, req)
	if err != nil {
		handleError(c, err, "CreateTicketCategory")
		return
	}
	handleSuccess(c, created, http.StatusCreated)
}

func (h *TicketCategoryHandler) ListByEvent(c *gin.Context) {
	eventID, ok := bindID(c)
	if !ok {
		return
	}
	categories, err := h.service.ListByEvent(c, eventID)
	if err != nil {
		handleError(c, err, "ListTicketCategories")
		return
	}
	handleSuccess(c, categories, http.StatusOK)
}

func (h *TicketCategoryHandler) GetByID(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	category, err := h.service.GetByID(c, id)
	if err != nil {
		handleError(c, err, "GetTicketCategory")
		return
	}
	handleSuccess(c, category, http.StatusOK)
}

func (h *TicketCategoryHandler) Update(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	var req model.UpdateTicketCategoryRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	updated, err := h.service.Update(c, id, req)
	if err != nil {
		handleError(c, err, "UpdateTicketCategory")
		return
	}
	handleSuccess(c, updated, http.StatusOK)
}
