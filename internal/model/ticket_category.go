package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type CategoryType string

const (
	CategoryTypeGeneral   CategoryType = "general"
	CategoryTypeVIP       CategoryType = "vip"
	CategoryTypePremium   CategoryType = "premium"
	CategoryTypeStudent   CategoryType = "student"
	CategoryTypeEarlyBird CategoryType = "early_bird"
	CategoryTypeGroup     CategoryType = "group"
	CategoryTypeSenior    CategoryType = "senior"
	CategoryTypeChild     CategoryType = "child"
)

func (t CategoryType) IsValid() bool {
	switch t {
	case CategoryTypeGeneral, CategoryTypeVIP, CategoryTypePremium, CategoryTypeStudent,
		CategoryTypeEarlyBird, CategoryTypeGroup, CategoryTypeSenior, CategoryTypeChild:
		return true
	}
	return false
}

// TicketCategory 票種：屬於單一活動，有自己的價格與數量上限
type TicketCategory struct {
	ID                int             `json:"id" db:"id"`
	EventID           int             `json:"event_id" db:"event_id"`
	Name              string          `json:"name" db:"name"`
	CategoryType      CategoryType    `json:"category_type" db:"category_type"`
	Price             decimal.Decimal `json:"price" db:"price"`
	QuantityAvailable int             `json:"quantity_available" db:"quantity_available"`
	Description       *string         `json:"description,omitempty" db:"description"`
	IsActive          bool            `json:"is_active" db:"is_active"`
	CreatedAt         time.Time       `json:"created_at" db:"created_at"`
}

type UpdateTicketCategoryParams struct {
	Name              *string
	Price             *decimal.Decimal
	QuantityAvailable *int
	Description       *string
	IsActive          *bool
}

func (p UpdateTicketCategoryParams) IsEmpty() bool {
	return p.Name == nil && p.Price == nil && p.QuantityAvailable == nil && p.Description == nil && p.IsActive == nil
}

// TicketsAvailable 剩餘票數，超賣時回傳 0 而不是負數
func (c *TicketCategory) TicketsAvailable(ticketsSold int) int {
	return max(0, c.QuantityAvailable-ticketsSold)
}

func (c *TicketCategory) IsSoldOut(ticketsSold int) bool {
	return c.TicketsAvailable(ticketsSold) <= 0
}

// CategoryAvailability 票種庫存快照
type CategoryAvailability struct {
	Category         *TicketCategory `json:"category"`
	TicketsSold      int             `json:"tickets_sold"`
	TicketsAvailable int             `json:"tickets_available"`
	IsSoldOut        bool            `json:"is_sold_out"`
}

func NewCategoryAvailability(category *TicketCategory, ticketsSold int) CategoryAvailability {
	return CategoryAvailability{
		Category:         category,
		TicketsSold:      ticketsSold,
		TicketsAvailable: category.TicketsAvailable(ticketsSold),
		IsSoldOut:        category.IsSoldOut(ticketsSold),
	}
}

// CreateTicketCategoryRequest 建立票種請求，category_type 未帶入時為 general
type CreateTicketCategoryRequest struct {
	Name              string          `json:"name" binding:"required,max=100"`
	CategoryType      CategoryType    `json:"category_type"`
	Price             decimal.Decimal `json:"price"`
	QuantityAvailable int             `json:"quantity_available" binding:"min=0"`
	Description       *string         `json:"description"`
	IsActive          *bool           `json:"is_active"`
}

func (r CreateTicketCategoryRequest) ToCategory(eventID int) *TicketCategory {
	categoryType := r.CategoryType
	if categoryType == "" {
		categoryType = CategoryTypeGeneral
	}
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}
	return &TicketCategory{
		EventID:           eventID,
		Name:              r.Name,
		CategoryType:      categoryType,
		Price:             r.Price,
		QuantityAvailable: r.QuantityAvailable,
		Description:       r.Description,
		IsActive:          isActive,
	}
}

type UpdateTicketCategoryRequest struct {
	Name              *string          `json:"name" binding:"omitempty,max=100"`
	Price             *decimal.Decimal `json:"price"`
	QuantityAvailable *int             `json:"quantity_available" binding:"omitempty,min=0"`
	Description       *string          `json:"description"`
	IsActive          *bool            `json:"is_active"`
}

func (r UpdateTicketCategoryRequest) ToParams() UpdateTicketCategoryParams {
	return UpdateTicketCategoryParams{
		Name:              r.Name,
		Price:             r.Price,
		QuantityAvailable: r.QuantityAvailable,
		Description:       r.Description,
		IsActive:          r.IsActive,
	}
}
