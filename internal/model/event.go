package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// EventStatus 活動時間狀態，依開始與結束時間即時推算
type EventStatus string

const (
	EventStatusUpcoming  EventStatus = "upcoming"
	EventStatusOngoing   EventStatus = "ongoing"
	EventStatusCompleted EventStatus = "completed"
)

type Event struct {
	ID                   int             `json:"id" db:"id"`
	Title                string          `json:"title" db:"title"`
	Description          *string         `json:"description,omitempty" db:"description"`
	StartDate            time.Time       `json:"start_date" db:"start_date"`
	EndDate              time.Time       `json:"end_date" db:"end_date"`
	RegistrationDeadline *time.Time      `json:"registration_deadline,omitempty" db:"registration_deadline"`
	MaxAttendees         int             `json:"max_attendees" db:"max_attendees"`
	TicketPrice          decimal.Decimal `json:"ticket_price" db:"ticket_price"`
	IsFree               bool            `json:"is_free" db:"is_free"`
	IsActive             bool            `json:"is_active" db:"is_active"`
	CreatedAt            time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at" db:"updated_at"`
}

type UpdateEventParams struct {
	Title                *string
	Description          *string
	StartDate            *time.Time
	EndDate              *time.Time
	RegistrationDeadline *time.Time
	MaxAttendees         *int
	TicketPrice          *decimal.Decimal
	IsFree               *bool
	IsActive             *bool
}

// IsEmpty 沒有任何欄位需要更新
func (p UpdateEventParams) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.StartDate == nil && p.EndDate == nil &&
		p.RegistrationDeadline == nil && p.MaxAttendees == nil && p.TicketPrice == nil &&
		p.IsFree == nil && p.IsActive == nil
}

func (e *Event) StatusAt(now time.Time) EventStatus {
	switch {
	case e.StartDate.After(now):
		return EventStatusUpcoming
	case !now.After(e.EndDate):
		return EventStatusOngoing
	default:
		return EventStatusCompleted
	}
}

func (e *Event) HasStarted(now time.Time) bool {
	return !e.StartDate.After(now)
}

// RegistrationClosedAt 報名截止時間已過
func (e *Event) RegistrationClosedAt(now time.Time) bool {
	return e.RegistrationDeadline != nil && now.After(*e.RegistrationDeadline)
}

// FlatPrice 沒有票種時使用的單一票價；免費活動一律為 0
func (e *Event) FlatPrice() decimal.Decimal {
	if e.IsFree {
		return decimal.Zero
	}
	return e.TicketPrice
}

// EventAvailability 活動名額統計，每次查詢即時聚合，不做快取
type EventAvailability struct {
	EventID          int                    `json:"event_id"`
	MaxAttendees     int                    `json:"max_attendees"`
	CurrentAttendees int                    `json:"current_attendees"`
	AvailableSpots   int                    `json:"available_spots"`
	IsFull           bool                   `json:"is_full"`
	RegisteredCount  int                    `json:"registered_count"`
	Status           EventStatus            `json:"status"`
	Categories       []CategoryAvailability `json:"categories"`
}

// NewEventAvailability currentAttendees 為 confirmed/paid 預約筆數。
// 有票種時 RegisteredCount 為已售出票數總和，否則等於預約筆數。
func NewEventAvailability(event *Event, currentAttendees int, categories []CategoryAvailability, now time.Time) *EventAvailability {
	registered := currentAttendees
	if len(categories) > 0 {
		registered = 0
		for _, c := range categories {
			registered += c.TicketsSold
		}
	}
	if categories == nil {
		categories = []CategoryAvailability{}
	}

	return &EventAvailability{
		EventID:          event.ID,
		MaxAttendees:     event.MaxAttendees,
		CurrentAttendees: currentAttendees,
		AvailableSpots:   max(0, event.MaxAttendees-currentAttendees),
		IsFull:           currentAttendees >= event.MaxAttendees,
		RegisteredCount:  registered,
		Status:           event.StatusAt(now),
		Categories:       categories,
	}
}

// CreateEventRequest 建立活動請求
type CreateEventRequest struct {
	Title                string          `json:"title" binding:"required,max=200"`
	Description          *string         `json:"description"`
	StartDate            time.Time       `json:"start_date" binding:"required"`
	EndDate              time.Time       `json:"end_date" binding:"required"`
	RegistrationDeadline *time.Time      `json:"registration_deadline"`
	MaxAttendees         int             `json:"max_attendees" binding:"required,min=1"`
	TicketPrice          decimal.Decimal `json:"ticket_price"`
	IsFree               bool            `json:"is_free"`
	IsActive             *bool           `json:"is_active"`
}

func (r CreateEventRequest) ToEvent() *Event {
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}
	return &Event{
		Title:                r.Title,
		Description:          r.Description,
		StartDate:            r.StartDate,
		EndDate:              r.EndDate,
		RegistrationDeadline: r.RegistrationDeadline,
		MaxAttendees:         r.MaxAttendees,
		TicketPrice:          r.TicketPrice,
		IsFree:               r.IsFree,
		IsActive:             isActive,
	}
}

// UpdateEventRequest 只更新有帶入的欄位
type UpdateEventRequest struct {
	Title                *string          `json:"title" binding:"omitempty,max=200"`
	Description          *string          `json:"description"`
	StartDate            *time.Time       `json:"start_date"`
	EndDate              *time.Time       `json:"end_date"`
	RegistrationDeadline *time.Time       `json:"registration_deadline"`
	MaxAttendees         *int             `json:"max_attendees" binding:"omitempty,min=1"`
	TicketPrice          *decimal.Decimal `json:"ticket_price"`
	IsFree               *bool            `json:"is_free"`
	IsActive             *bool            `json:"is_active"`
}

func (r UpdateEventRequest) ToParams() UpdateEventParams {
	return UpdateEventParams{
		Title:                r.Title,
		Description:          r.Description,
		StartDate:            r.StartDate,
		EndDate:              r.EndDate,
		RegistrationDeadline: r.RegistrationDeadline,
		MaxAttendees:         r.MaxAttendees,
		TicketPrice:          r.TicketPrice,
		IsFree:               r.IsFree,
		IsActive:             r.IsActive,
	}
}
