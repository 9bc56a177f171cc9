package handler

import (
	"net/http"

	"eventease-booking/internal/model"
	"eventease-booking/internal/service"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service service.BookingService
}

func NewBookingHandler(service service.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.POST("events/:id/bookings", h.CreateBooking)
		router.GET("events/:id/bookings", h.ListByEvent)
		router.GET("users/:id/bookings", h.ListByUser)

		router.GET("bookings/:id", h.GetBooking)
		router.PUT("bookings/:id/items", h.SaveTicketItem)
		router.DELETE("bookings/:id/items/:categoryId", h.RemoveTicketItem)
		router.POST("bookings/:id/recompute", h.UpdateTotals)
		router.PUT("bookings/:id/cancel", h.CancelBooking)
		router.PUT("bookings/:id/payment", h.UpdatePaymentStatus)
		router.PUT("bookings/:id/attendance", h.MarkAttendance)
	}
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	eventID, ok := bindID(c)
	if !ok {
		return
	}
	var req model.CreateBookingRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	created, err := h.service.CreateBooking(c, eventID, req)
	if err != nil {
		handleError(c, err, "CreateBooking")
		return
	}
	handleSuccess(c, model.NewBookingResponse(created), http.StatusCreated)
}

func (h *BookingHandler) ListByEvent(c *gin.Context) {
	eventID, ok := bindID(c)
	if !ok {
		return
	}
	bookings, err := h.service.ListByEvent(c, eventID)
	if err != nil {
		handleError(c, err, "ListEventBookings")
		return
	}
	handleSuccess(c, newBookingResponses(bookings), http.StatusOK)
}

func (h *BookingHandler) ListByUser(c *gin.Context) {
	userID, ok := bindID(c)
	if !ok {
		return
	}
	bookings, err := h.service.ListByUser(c, userID)
	if err != nil {
		handleError(c, err, "ListUserBookings")
		return
	}
	handleSuccess(c, newBookingResponses(bookings), http.StatusOK)
}

func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	booking, err := h.service.GetByID(c, id)
	if err != nil {
		handleError(c, err, "GetBooking")
		return
	}
	handleSuccess(c, model.NewBookingResponse(booking), http.StatusOK)
}

func (h *BookingHandler) SaveTicketItem(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	var req model.SaveTicketItemRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	booking, err := h.service.SaveTicketItem(c, id, req)
	if err != nil {
		handleError(c, err, "SaveTicketItem")
		return
	}
	handleSuccess(c, model.NewBookingResponse(booking), http.StatusOK)
}

func (h *BookingHandler) RemoveTicketItem(c *gin.Context) {
	var uri itemUri
	if err := BindUri(c, &uri); err != nil {
		return
	}
	booking, err := h.service.RemoveTicketItem(c, uri.ID, uri.CategoryID)
	if err != nil {
		handleError(c, err, "RemoveTicketItem")
		return
	}
	handleSuccess(c, model.NewBookingResponse(booking), http.StatusOK)
}

func (h *BookingHandler) UpdateTotals(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	booking, err := h.service.UpdateTotals(c, id)
	if err != nil {
		handleError(c, err, "UpdateTotals")
		return
	}
	handleSuccess(c, model.NewBookingResponse(booking), http.StatusOK)
}

func (h *BookingHandler) CancelBooking(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	var req model.CancelBookingRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	booking, err := h.service.CancelBooking(c, id, req.UserID)
	if err != nil {
		handleError(c, err, "CancelBooking")
		return
	}
	handleSuccess(c, model.NewBookingResponse(booking), http.StatusOK)
}

func (h *BookingHandler) UpdatePaymentStatus(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	var req model.UpdatePaymentRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	booking, err := h.service.UpdatePaymentStatus(c, id, req)
	if err != nil {
		handleError(c, err, "UpdatePaymentStatus")
		return
	}
	handleSuccess(c, model.NewBookingResponse(booking), http.StatusOK)
}

func (h *BookingHandler) MarkAttendance(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	var req model.AttendanceRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	booking, err := h.service.MarkAttendance(c, id, *req.Attended)
	if err != nil {
		handleError(c, err, "MarkAttendance")
		return
	}
	handleSuccess(c, model.NewBookingResponse(booking), http.StatusOK)
}

func newBookingResponses(bookings []*model.EventBooking) []model.BookingResponse {
	resp := make([]model.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, model.NewBookingResponse(b))
	}
	return resp
}
