package handler

import (
	"net/http"

	"eventease-booking/internal/model"
	"eventease-booking/internal/service"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	service service.EventService
}

func NewEventHandler(service service.EventService) *EventHandler {
	return &EventHandler{service: service}
}

func (h *EventHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("events", h.List)
		router.GET("events/:id", h.GetByID)
		router.POST("events", h.Create)
		router.PUT("events/:id", h.Update)
		router.GET("events/:id/availability", h.Availability)
		router.POST("events/:id/open-for-sale", h.OpenForSale)
	}
}

func (h *EventHandler) List(c *gin.Context) {
	events, err := h.service.List(c)
	if err != nil {
		handleError(c, err, "ListEvents")
		return
	}
	handleSuccess(c, events, http.StatusOK)
}

func (h *EventHandler) GetByID(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	event, err := h.service.GetByID(c, id)
	if err != nil {
		handleError(c, err, "GetEvent")
		return
	}
	handleSuccess(c, event, http.StatusOK)
}

func (h *EventHandler) Create(c *gin.Context) {
	var req model.CreateEventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	created, err := h.service.Create(c, req)
	if err != nil {
		handleError(c, err, "CreateEvent")
		return
	}
	handleSuccess(c, created, http.StatusCreated)
}

func (h *EventHandler) Update(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	var req model.UpdateEventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	updated, err := h.service.Update(c, id, req)
	if err != nil {
		handleError(c, err, "UpdateEvent")
		return
	}
	handleSuccess(c, updated, http.StatusOK)
}

func (h *EventHandler) Availability(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	availability, err := h.service.Availability(c, id)
	if err != nil {
		handleError(c, err, "EventAvailability")
		return
	}
	handleSuccess(c, availability, http.StatusOK)
}

func (h *EventHandler) OpenForSale(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	if err := h.service.OpenForSale(c, id); err != nil {
		handleError(c, err, "OpenForSale")
		return
	}
	handleSuccess(c, nil, http.StatusNoContent)
}
