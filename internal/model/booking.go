package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatus 預約狀態類型
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusAttended  BookingStatus = "attended"
	BookingStatusNoShow    BookingStatus = "no_show"
	// BookingStatusPaid 舊資料由金流流程寫入的狀態，只用於售出統計
	BookingStatusPaid BookingStatus = "paid"
)

// SoldStatuses 計入已售出票數與出席人數的預約狀態
var SoldStatuses = []BookingStatus{BookingStatusConfirmed, BookingStatusPaid}

// IsValid 驗證狀態是否有效
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled,
		BookingStatusAttended, BookingStatusNoShow:
		return true
	}
	return false
}

func (s BookingStatus) IsSold() bool {
	for _, sold := range SoldStatuses {
		if s == sold {
			return true
		}
	}
	return false
}

// CanTransitionTo 檢查是否可以轉換到目標狀態
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	transitions := map[BookingStatus][]BookingStatus{
		BookingStatusPending:   {BookingStatusConfirmed, BookingStatusCancelled},
		BookingStatusConfirmed: {BookingStatusCancelled, BookingStatusAttended, BookingStatusNoShow},
		BookingStatusPaid:      {BookingStatusCancelled, BookingStatusAttended, BookingStatusNoShow},
		BookingStatusCancelled: {},
		BookingStatusAttended:  {},
		BookingStatusNoShow:    {},
	}

	allowed, ok := transitions[s]
	if !ok {
		return false
	}

	for _, status := range allowed {
		if status == target {
			return true
		}
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

// EventBooking 使用者對單一活動的預約，金額與人數由票項推導
type EventBooking struct {
	ID              int             `json:"id" db:"id"`
	EventID         int             `json:"event_id" db:"event_id"`
	UserID          int             `json:"user_id" db:"user_id"`
	BookingDate     time.Time       `json:"booking_date" db:"booking_date"`
	Status          BookingStatus   `json:"status" db:"status"`
	PaymentStatus   PaymentStatus   `json:"payment_status" db:"payment_status"`
	AttendeesCount  int             `json:"attendees_count" db:"attendees_count"`
	SpecialRequests *string         `json:"special_requests,omitempty" db:"special_requests"`
	Amount          decimal.Decimal `json:"amount" db:"amount"`
	TotalAmount     decimal.Decimal `json:"total_amount" db:"total_amount"`
	AttendeeName    *string         `json:"attendee_name,omitempty" db:"attendee_name"`
	AttendeeEmail   *string         `json:"attendee_email,omitempty" db:"attendee_email"`
	AttendeePhone   *string         `json:"attendee_phone,omitempty" db:"attendee_phone"`
	UpdatedAt       time.Time       `json:"updated_at" db:"updated_at"`

	Items []*BookingTicketItem `json:"items,omitempty" db:"-"`
}

// CanCancel pending/confirmed 且活動尚未開始
func (b *EventBooking) CanCancel(event *Event, now time.Time) bool {
	if b.Status != BookingStatusPending && b.Status != BookingStatusConfirmed {
		return false
	}
	return event.StartDate.After(now)
}

// TotalTickets 已載入票項的數量總和
func (b *EventBooking) TotalTickets() int {
	total := 0
	for _, item := range b.Items {
		total += item.Quantity
	}
	return total
}

// RequiresPayment 免費活動或金額為 0 時直接確認
func (b *EventBooking) RequiresPayment(event *Event) bool {
	return !event.IsFree && !b.Amount.IsZero()
}

// Snapshot 複製一份預約作為狀態變更前的快照（不含票項）
func (b *EventBooking) Snapshot() *EventBooking {
	clone := *b
	clone.Items = nil
	return &clone
}

// TicketSelection 建立預約時選擇的票種與數量
type TicketSelection struct {
	CategoryID int `json:"category_id" binding:"required"`
	Quantity   int `json:"quantity" binding:"min=0"`
}

// CreateBookingRequest 建立預約請求
type CreateBookingRequest struct {
	UserID          int               `json:"user_id" binding:"required"`
	AttendeeName    string            `json:"attendee_name" binding:"required,max=200"`
	AttendeeEmail   string            `json:"attendee_email" binding:"required,email"`
	AttendeePhone   string            `json:"attendee_phone" binding:"required,max=15"`
	SpecialRequests *string           `json:"special_requests"`
	Tickets         []TicketSelection `json:"tickets" binding:"dive"`
}

// UpdatePaymentRequest 金流系統回寫付款結果
type UpdatePaymentRequest struct {
	PaymentStatus PaymentStatus  `json:"payment_status" binding:"required"`
	Status        *BookingStatus `json:"status"`
}

// CancelBookingRequest 只有預約本人可以取消
type CancelBookingRequest struct {
	UserID int `json:"user_id" binding:"required"`
}

// AttendanceRequest attended 為 false 時標記為 no_show
type AttendanceRequest struct {
	Attended *bool `json:"attended" binding:"required"`
}
