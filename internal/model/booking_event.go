package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingEventType string

const (
	BookingEventCreated        BookingEventType = "booking.created"
	BookingEventStatusChanged  BookingEventType = "booking.status_changed"
	BookingEventPaymentChanged BookingEventType = "booking.payment_changed"
)

// BookingEvent 預約變更事件，交給通知系統處理
type BookingEvent struct {
	ID                    string           `json:"id"`
	Type                  BookingEventType `json:"type"`
	BookingID             int              `json:"booking_id"`
	EventID               int              `json:"event_id"`
	UserID                int              `json:"user_id"`
	PreviousStatus        BookingStatus    `json:"previous_status,omitempty"`
	Status                BookingStatus    `json:"status"`
	PreviousPaymentStatus PaymentStatus    `json:"previous_payment_status,omitempty"`
	PaymentStatus         PaymentStatus    `json:"payment_status"`
	TotalAmount           decimal.Decimal  `json:"total_amount"`
	OccurredAt            time.Time        `json:"occurred_at"`
}

func NewBookingCreatedEvent(b *EventBooking) *BookingEvent {
	return &BookingEvent{
		ID:            uuid.New().String(),
		Type:          BookingEventCreated,
		BookingID:     b.ID,
		EventID:       b.EventID,
		UserID:        b.UserID,
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
		TotalAmount:   b.TotalAmount,
		OccurredAt:    time.Now().UTC(),
	}
}

// DiffBookingStatus 比較變更前後的預約快照，狀態或付款狀態有變時回傳事件。
// 狀態變更優先於付款狀態變更。
func DiffBookingStatus(before, after *EventBooking) (*BookingEvent, bool) {
	if before == nil || after == nil {
		return nil, false
	}

	var eventType BookingEventType
	switch {
	case before.Status != after.Status:
		eventType = BookingEventStatusChanged
	case before.PaymentStatus != after.PaymentStatus:
		eventType = BookingEventPaymentChanged
	default:
		return nil, false
	}

	return &BookingEvent{
		ID:                    uuid.New().String(),
		Type:                  eventType,
		BookingID:             after.ID,
		EventID:               after.EventID,
		UserID:                after.UserID,
		PreviousStatus:        before.Status,
		Status:                after.Status,
		PreviousPaymentStatus: before.PaymentStatus,
		PaymentStatus:         after.PaymentStatus,
		TotalAmount:           after.TotalAmount,
		OccurredAt:            time.Now().UTC(),
	}, true
}
