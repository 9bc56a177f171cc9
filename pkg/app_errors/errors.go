package apperrors

import "errors"

var (
	ErrEventNotFound          = errors.New("event not found")
	ErrTicketCategoryNotFound = errors.New("ticket category not found")
	ErrBookingNotFound        = errors.New("booking not found")
	ErrBookingItemNotFound    = errors.New("booking ticket item not found")
	ErrUserNotFound           = errors.New("user not found")
)

// 唯一性衝突：保留原始資料庫錯誤一起包裝
var (
	ErrDuplicateBooking    = errors.New("user already has a booking for this event")
	ErrDuplicateTicketItem = errors.New("booking already has an item for this ticket category")
	ErrDuplicateCategory   = errors.New("ticket category name already exists for this event")
	ErrDuplicateEmail      = errors.New("email already registered")
)

var (
	ErrInsufficientTickets   = errors.New("insufficient tickets")
	ErrEventFull             = errors.New("event is fully booked")
	ErrRegistrationClosed    = errors.New("registration deadline has passed")
	ErrNoTicketsSelected     = errors.New("at least one ticket must be selected")
	ErrTooManyTickets        = errors.New("too many tickets in one booking")
	ErrCannotCancel          = errors.New("booking cannot be cancelled")
	ErrInvalidBookingStatus  = errors.New("invalid booking status")
	ErrInvalidPaymentStatus  = errors.New("invalid payment status")
	ErrCategoryEventMismatch = errors.New("ticket category does not belong to the booking's event")
	ErrInvalidInput          = errors.New("invalid input")
)

var (
	// ErrTicketCategoryRequired 程式錯誤：儲存票項前必須先指定票種
	ErrTicketCategoryRequired = errors.New("ticket category must be set before saving a ticket item")
	ErrInventoryNotLoaded     = errors.New("ticket inventory is not loaded")
)
