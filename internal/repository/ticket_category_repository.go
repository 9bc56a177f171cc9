package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"eventease-booking/internal/model"
	apperrors "eventease-booking/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const ticketCategoryEventNameKey = "ticket_categories_event_name_key"

type TicketCategoryRepository interface {
	FindByID(ctx context.Context, id int) (*model.TicketCategory, error)
	ListByEventID(ctx context.Context, eventID int, activeOnly bool) ([]*model.TicketCategory, error)
	Update(ctx context.Context, id int, params model.UpdateTicketCategoryParams) (*model.TicketCategory, error)
	// TicketsSoldByEvent 活動下每個票種的已售出票數，key 為票種 ID
	TicketsSoldByEvent(ctx context.Context, eventID int) (map[int]int, error)

	// Transaction methods
	Create(ctx context.Context, tx pgx.Tx, category *model.TicketCategory) (*model.TicketCategory, error)
	FindByIDWithLock(ctx context.Context, tx pgx.Tx, id int) (*model.TicketCategory, error)

	// TicketsSold confirmed/paid 預約中該票種的數量總和
	TicketsSold(ctx context.Context, q Querier, categoryID int) (int, error)
	// TicketsHeld 另外計入 pending 預約，Redis 預熱以此為準
	TicketsHeld(ctx context.Context, q Querier, categoryID int) (int, error)
	TicketsHeldByEvent(ctx context.Context, eventID int) (map[int]int, error)
}

type TicketCategoryRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewTicketCategoryRepository(pool *pgxpool.Pool) TicketCategoryRepository {
	return &TicketCategoryRepositoryImpl{
		pool: pool,
	}
}

const ticketCategoryColumns = `id, event_id, name, category_type, price,
		quantity_available, description, is_active, created_at`

func scanTicketCategory(row rowScanner) (*model.TicketCategory, error) {
	var category model.TicketCategory
	err := row.Scan(
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
	return &category, nil
}

func (r *TicketCategoryRepositoryImpl) Create(ctx context.Context, tx pgx.Tx, category *model.TicketCategory) (*model.TicketCategory, error) {
	query := `
		INSERT INTO ticket_categories (
			event_id, name, category_type, price, quantity_available, description, is_active
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + ticketCategoryColumns

	created, err := scanTicketCategory(tx.QueryRow(ctx, query,
		category.EventID, category.Name, category.CategoryType, category.Price,
		category.QuantityAvailable, category.Description, category.IsActive,
	))
	if err != nil {
		if isUniqueViolation(err, ticketCategoryEventNameKey) {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrDuplicateCategory, err)
		}
		return nil, fmt.Errorf("failed to create ticket category: %w", err)
	}

	return created, nil
}

func (r *TicketCategoryRepositoryImpl) FindByID(ctx context.Context, id int) (*model.TicketCategory, error) {
	query := `
		SELECT ` + ticketCategoryColumns + `
		FROM ticket_categories
		WHERE id = $1
	`

	category, err := scanTicketCategory(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTicketCategoryNotFound
		}
		return nil, err
	}

	return category, nil
}

// FindByIDWithLock 鎖定票種資料列，同一票種的售票檢查在交易內排隊執行
func (r *TicketCategoryRepositoryImpl) FindByIDWithLock(ctx context.Context, tx pgx.Tx, id int) (*model.TicketCategory, error) {
	query := `
		SELECT ` + ticketCategoryColumns + `
		FROM ticket_categories
		WHERE id = $1
		FOR UPDATE
	`

	category, err := scanTicketCategory(tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTicketCategoryNotFound
		}
		return nil, err
	}

	return category, nil
}

// ListByEventID 依價格排序
func (r *TicketCategoryRepositoryImpl) ListByEventID(ctx context.Context, eventID int, activeOnly bool) ([]*model.TicketCategory, error) {
	query := `
		SELECT ` + ticketCategoryColumns + `
		FROM ticket_categories
		WHERE event_id = $1 AND ($2 = FALSE OR is_active = TRUE)
		ORDER BY price ASC, id ASC
	`

	rows, err := r.pool.Query(ctx, query, eventID, activeOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]*model.TicketCategory, 0)
	for rows.Next() {
		category, err := scanTicketCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}

func (r *TicketCategoryRepositoryImpl) Update(ctx context.Context, id int, params model.UpdateTicketCategoryParams) (*model.TicketCategory, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	add := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argPos))
		args = append(args, value)
		argPos++
	}

	if params.Name != nil {
		add("name", *params.Name)
	}
	if params.Price != nil {
		add("price", *params.Price)
	}
	if params.QuantityAvailable != nil {
		add("quantity_available", *params.QuantityAvailable)
	}
	if params.Description != nil {
		add("description", *params.Description)
	}
	if params.IsActive != nil {
		add("is_active", *params.IsActive)
	}

	if len(sets) == 0 {
		return nil, apperrors.ErrInvalidInput
	}

	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE ticket_categories
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(sets, ", "), argPos, ticketCategoryColumns)

	category, err := scanTicketCategory(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTicketCategoryNotFound
		}
		if isUniqueViolation(err, ticketCategoryEventNameKey) {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrDuplicateCategory, err)
		}
		return nil, err
	}

	return category, nil
}

func (r *TicketCategoryRepositoryImpl) TicketsSold(ctx context.Context, q Querier, categoryID int) (int, error) {
	return sumTickets(ctx, q, categoryID, soldStatuses())
}

func (r *TicketCategoryRepositoryImpl) TicketsHeld(ctx context.Context, q Querier, categoryID int) (int, error) {
	return sumTickets(ctx, q, categoryID, heldStatuses())
}

func (r *TicketCategoryRepositoryImpl) TicketsSoldByEvent(ctx context.Context, eventID int) (map[int]int, error) {
	return r.sumTicketsByEvent(ctx, eventID, soldStatuses())
}

func (r *TicketCategoryRepositoryImpl) TicketsHeldByEvent(ctx context.Context, eventID int) (map[int]int, error) {
	return r.sumTicketsByEvent(ctx, eventID, heldStatuses())
}

func sumTickets(ctx context.Context, q Querier, categoryID int, statuses []string) (int, error) {
	query := `
		SELECT COALESCE(SUM(i.quantity), 0)
		FROM booking_ticket_items i
		JOIN event_bookings b ON b.id = i.booking_id
		WHERE i.ticket_category_id = $1 AND b.status = ANY($2)
	`

	var sum int
	if err := q.QueryRow(ctx, query, categoryID, statuses).Scan(&sum); err != nil {
		return 0, fmt.Errorf("failed to sum tickets: %w", err)
	}
	return sum, nil
}

func (r *TicketCategoryRepositoryImpl) sumTicketsByEvent(ctx context.Context, eventID int, statuses []string) (map[int]int, error) {
	query := `
		SELECT c.id, COALESCE(SUM(i.quantity) FILTER (WHERE b.status = ANY($2)), 0)
		FROM ticket_categories c
		LEFT JOIN booking_ticket_items i ON i.ticket_category_id = c.id
		LEFT JOIN event_bookings b ON b.id = i.booking_id
		WHERE c.event_id = $1
		GROUP BY c.id
	`

	rows, err := r.pool.Query(ctx, query, eventID, statuses)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sums := make(map[int]int)
	for rows.Next() {
		var id, count int
		if err := rows.Scan(&id, &count); err != nil {
			return nil, err
		}
		sums[id] = count
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sums, nil
}
