package model

import (
	"github.com/shopspring/decimal"
)

// BookingTicketItem 預約內單一票種的數量，價格在第一次儲存時鎖定
type BookingTicketItem struct {
	ID               int             `json:"id" db:"id"`
	BookingID        int             `json:"booking_id" db:"booking_id"`
	TicketCategoryID int             `json:"ticket_category_id" db:"ticket_category_id"`
	Quantity         int             `json:"quantity" db:"quantity"`
	PricePerTicket   decimal.Decimal `json:"price_per_ticket" db:"price_per_ticket"`

	// Category 由查詢時 join 帶入，價格為票種目前價格
	Category *TicketCategory `json:"ticket_category,omitempty" db:"-"`
}

// Subtotal quantity × price_per_ticket，使用鎖定價格
func (i *BookingTicketItem) Subtotal() decimal.Decimal {
	return i.PricePerTicket.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// LockPrice 價格尚未設定（為 0）時才從票種帶入；已鎖定的價格不會被之後的調價覆蓋
func (i *BookingTicketItem) LockPrice(category *TicketCategory) {
	i.Category = category
	i.TicketCategoryID = category.ID
	if i.PricePerTicket.IsZero() {
		i.PricePerTicket = category.Price
	}
}

// BookingItemResponse 附帶小計的票項響應
type BookingItemResponse struct {
	ID               int             `json:"id"`
	TicketCategoryID int             `json:"ticket_category_id"`
	CategoryName     string          `json:"category_name,omitempty"`
	Quantity         int             `json:"quantity"`
	PricePerTicket   decimal.Decimal `json:"price_per_ticket"`
	Subtotal         decimal.Decimal `json:"subtotal"`
}

func NewBookingItemResponse(item *BookingTicketItem) BookingItemResponse {
	resp := BookingItemResponse{
		ID:               item.ID,
		TicketCategoryID: item.TicketCategoryID,
		Quantity:         item.Quantity,
		PricePerTicket:   item.PricePerTicket,
		Subtotal:         item.Subtotal(),
	}
	if item.Category != nil {
		resp.CategoryName = item.Category.Name
	}
	return resp
}

// BookingResponse 預約響應
type BookingResponse struct {
	*EventBooking
	Items        []BookingItemResponse `json:"items"`
	TotalTickets int                   `json:"total_tickets"`
}

func NewBookingResponse(b *EventBooking) BookingResponse {
	items := make([]BookingItemResponse, 0, len(b.Items))
	for _, item := range b.Items {
		items = append(items, NewBookingItemResponse(item))
	}
	return BookingResponse{
		EventBooking: b,
		Items:        items,
		TotalTickets: b.TotalTickets(),
	}
}

// SaveTicketItemRequest 設定預約中某票種的數量
type SaveTicketItemRequest struct {
	CategoryID int `json:"category_id" binding:"required"`
	Quantity   int `json:"quantity" binding:"required,min=1"`
}
