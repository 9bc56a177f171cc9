package handler

import (
	"errors"
	"net/http"

	apperrors "eventease-booking/pkg/app_errors"
	"eventease-booking/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func BindJson(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

func BindQuery(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindQuery(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

func BindUri(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindUri(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

type idUri struct {
	ID int `uri:"id" binding:"required,min=1"`
}

type itemUri struct {
	ID         int `uri:"id" binding:"required,min=1"`
	CategoryID int `uri:"categoryId" binding:"required,min=1"`
}

// bindID 解析路徑上的 :id，失敗時已回應 400
func bindID(c *gin.Context) (int, bool) {
	var uri idUri
	if err := BindUri(c, &uri); err != nil {
		return 0, false
	}
	return uri.ID, true
}

type errorMapping struct {
	target error
	status int
	// detail 為 true 時回傳包裝後的完整訊息
	detail bool
}

var errorMappings = []errorMapping{
	{apperrors.ErrEventNotFound, http.StatusNotFound, false},
	{apperrors.ErrTicketCategoryNotFound, http.StatusNotFound, false},
	{apperrors.ErrBookingNotFound, http.StatusNotFound, false},
	{apperrors.ErrBookingItemNotFound, http.StatusNotFound, false},
	{apperrors.ErrUserNotFound, http.StatusNotFound, false},

	{apperrors.ErrDuplicateBooking, http.StatusConflict, false},
	{apperrors.ErrDuplicateTicketItem, http.StatusConflict, false},
	{apperrors.ErrDuplicateCategory, http.StatusConflict, false},
	{apperrors.ErrDuplicateEmail, http.StatusConflict, false},
	{apperrors.ErrInsufficientTickets, http.StatusConflict, true},
	{apperrors.ErrEventFull, http.StatusConflict, false},
	{apperrors.ErrCannotCancel, http.StatusConflict, false},
	{apperrors.ErrRegistrationClosed, http.StatusConflict, false},

	{apperrors.ErrNoTicketsSelected, http.StatusBadRequest, false},
	{apperrors.ErrTooManyTickets, http.StatusBadRequest, false},
	{apperrors.ErrInvalidBookingStatus, http.StatusBadRequest, true},
	{apperrors.ErrInvalidPaymentStatus, http.StatusBadRequest, false},
	{apperrors.ErrCategoryEventMismatch, http.StatusBadRequest, false},
	{apperrors.ErrInvalidInput, http.StatusBadRequest, true},
}

// handleError 預期內的領域錯誤記 warn，其餘記 error 並回 500
func handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))

	for _, m := range errorMappings {
		if !errors.Is(err, m.target) {
			continue
		}
		log.Warn(m.target.Error())
		message := m.target.Error()
		if m.detail {
			message = err.Error()
		}
		c.JSON(m.status, gin.H{"error": message})
		return
	}

	log.Error("Unexpected error")
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Internal server error",
	})
}

func handleSuccess(c *gin.Context, data interface{}, statusCode int) {
	if data != nil {
		c.JSON(statusCode, data)
	} else {
		c.Status(statusCode)
	}
}
