package repository

import (
	"context"
	"errors"
	"fmt"

	"eventease-booking/internal/model"
	apperrors "eventease-booking/pkg/app_errors"

	"github.com/jackc/pgx/v5"
)

const bookingItemBookingCategoryKey = "booking_ticket_items_booking_category_key"

// BookingItemRepository 票項只在預約交易內讀寫
type BookingItemRepository interface {
	Create(ctx context.Context, tx pgx.Tx, item *model.BookingTicketItem) (*model.BookingTicketItem, error)
	// UpdateQuantity 不會修改已鎖定的 price_per_ticket
	UpdateQuantity(ctx context.Context, tx pgx.Tx, id int, quantity int) error
	Delete(ctx context.Context, tx pgx.Tx, bookingID, categoryID int) (*model.BookingTicketItem, error)

	FindByBookingAndCategory(ctx context.Context, q Querier, bookingID, categoryID int) (*model.BookingTicketItem, error)
	// ListByBookingID 帶入票種目前資料
	ListByBookingID(ctx context.Context, q Querier, bookingID int) ([]*model.BookingTicketItem, error)
	// ListByBookingIDs 一次載入多筆預約的票項，key 為預約 ID
	ListByBookingIDs(ctx context.Context, q Querier, bookingIDs []int) (map[int][]*model.BookingTicketItem, error)
}

type BookingItemRepositoryImpl struct{}

func NewBookingItemRepository() BookingItemRepository {
	return &BookingItemRepositoryImpl{}
}

func (r *BookingItemRepositoryImpl) Create(ctx context.Context, tx pgx.Tx, item *model.BookingTicketItem) (*model.BookingTicketItem, error) {
	query := `
		INSERT INTO booking_ticket_items (booking_id, ticket_category_id, quantity, price_per_ticket)
		VALUES ($1, $2, $3, $4)
		RETURNING id, booking_id, ticket_category_id, quantity, price_per_ticket
	`

	err := tx.QueryRow(ctx, query,
		item.BookingID, item.TicketCategoryID, item.Quantity, item.PricePerTicket,
	).Scan(
		&item.ID,
		&item.BookingID,
		&item.TicketCategoryID,
		&item.Quantity,
		&item.PricePerTicket,
	)
	if err != nil {
		if isUniqueViolation(err, bookingItemBookingCategoryKey) {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrDuplicateTicketItem, err)
		}
		return nil, fmt.Errorf("failed to create booking item: %w", err)
	}

	return item, nil
}

func (r *BookingItemRepositoryImpl) UpdateQuantity(ctx context.Context, tx pgx.Tx, id int, quantity int) error {
	result, err := tx.Exec(ctx, `UPDATE booking_ticket_items SET quantity = $1 WHERE id = $2`, quantity, id)
	if err != nil {
		return fmt.Errorf("failed to update booking item quantity: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrBookingItemNotFound
	}
	return nil
}

func (r *BookingItemRepositoryImpl) Delete(ctx context.Context, tx pgx.Tx, bookingID, categoryID int) (*model.BookingTicketItem, error) {
	query := `
		DELETE FROM booking_ticket_items
		WHERE booking_id = $1 AND ticket_category_id = $2
		RETURNING id, booking_id, ticket_category_id, quantity, price_per_ticket
	`

	var item model.BookingTicketItem
	err := tx.QueryRow(ctx, query, bookingID, categoryID).Scan(
		&item.ID,
		&item.BookingID,
		&item.TicketCategoryID,
		&item.Quantity,
		&item.PricePerTicket,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrBookingItemNotFound
		}
		return nil, fmt.Errorf("failed to delete booking item: %w", err)
	}

	return &item, nil
}

const bookingItemWithCategoryQuery = `
		SELECT i.id, i.booking_id, i.ticket_category_id, i.quantity, i.price_per_ticket,
		       c.id, c.event_id, c.name, c.category_type, c.price,
		       c.quantity_available, c.description, c.is_active, c.created_at
		FROM booking_ticket_items i
		JOIN ticket_categories c ON c.id = i.ticket_category_id
`

func scanBookingItem(row rowScanner) (*model.BookingTicketItem, error) {
	var item model.BookingTicketItem
	var category model.TicketCategory
	err := row.Scan(
		&item.ID,
		&item.BookingID,
		&item.TicketCategoryID,
		&item.Quantity,
		&item.PricePerTicket,
		&category.ID,
		&category.EventID,
		&category.Name,
		&category.CategoryType,
		&category.Price,
		&category.QuantityAvailable,
		&category.Description,
		&category.IsActive,
		&category.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	item.Category = &category
	return &item, nil
}

func (r *BookingItemRepositoryImpl) FindByBookingAndCategory(ctx context.Context, q Querier, bookingID, categoryID int) (*model.BookingTicketItem, error) {
	query := bookingItemWithCategoryQuery + `
		WHERE i.booking_id = $1 AND i.ticket_category_id = $2
	`

	item, err := scanBookingItem(q.QueryRow(ctx, query, bookingID, categoryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrBookingItemNotFound
		}
		return nil, err
	}

	return item, nil
}

func (r *BookingItemRepositoryImpl) ListByBookingID(ctx context.Context, q Querier, bookingID int) ([]*model.BookingTicketItem, error) {
	query := bookingItemWithCategoryQuery + `
		WHERE i.booking_id = $1
		ORDER BY c.price ASC, i.id ASC
	`

	rows, err := q.Query(ctx, query, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*model.BookingTicketItem, 0)
	for rows.Next() {
		item, err := scanBookingItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *BookingItemRepositoryImpl) ListByBookingIDs(ctx context.Context, q Querier, bookingIDs []int) (map[int][]*model.BookingTicketItem, error) {
	items := make(map[int][]*model.BookingTicketItem, len(bookingIDs))
	if len(bookingIDs) == 0 {
		return items, nil
	}

	query := bookingItemWithCategoryQuery + `
		WHERE i.booking_id = ANY($1)
		ORDER BY i.booking_id, c.price ASC, i.id ASC
	`

	rows, err := q.Query(ctx, query, bookingIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		item, err := scanBookingItem(rows)
		if err != nil {
			return nil, err
		}
		items[item.BookingID] = append(items[item.BookingID], item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
