package repository

import (
	"context"
	"errors"
	"fmt"

	"eventease-booking/internal/model"
	apperrors "eventease-booking/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookingEventUserKey = "event_bookings_event_user_key"

type BookingRepository interface {
	FindByID(ctx context.Context, id int) (*model.EventBooking, error)
	ExistsForEventAndUser(ctx context.Context, eventID, userID int) (bool, error)
	ListByUserID(ctx context.Context, userID int) ([]*model.EventBooking, error)
	ListByEventID(ctx context.Context, eventID int) ([]*model.EventBooking, error)

	// Transaction methods
	Create(ctx context.Context, tx pgx.Tx, booking *model.EventBooking) (*model.EventBooking, error)
	FindByIDWithLock(ctx context.Context, tx pgx.Tx, id int) (*model.EventBooking, error)
	UpdateStatus(ctx context.Context, tx pgx.Tx, booking *model.EventBooking) (*model.EventBooking, error)
	// UpdateTotals 只寫入 amount、total_amount、attendees_count
	UpdateTotals(ctx context.Context, tx pgx.Tx, id int, totals model.Totals) error
}

type BookingRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) BookingRepository {
	return &BookingRepositoryImpl{
		pool: pool,
	}
}

const bookingColumns = `id, event_id, user_id, booking_date, status, payment_status,
		attendees_count, special_requests, amount, total_amount,
		attendee_name, attendee_email, attendee_phone, updated_at`

func scanBooking(row rowScanner) (*model.EventBooking, error) {
	var booking model.EventBooking
	err := row.Scan(
		&booking.ID,
		&booking.EventID,
		&booking.UserID,
		&booking.BookingDate,
		&booking.Status,
		&booking.PaymentStatus,
		&booking.AttendeesCount,
		&booking.SpecialRequests,
		&booking.Amount,
		&booking.TotalAmount,
		&booking.AttendeeName,
		&booking.AttendeeEmail,
		&booking.AttendeePhone,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepositoryImpl) Create(ctx context.Context, tx pgx.Tx, booking *model.EventBooking) (*model.EventBooking, error) {
	query := `
		INSERT INTO event_bookings (
			event_id, user_id, status, payment_status, attendees_count, special_requests,
			amount, total_amount, attendee_name, attendee_email, attendee_phone
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + bookingColumns

	created, err := scanBooking(tx.QueryRow(ctx, query,
		booking.EventID, booking.UserID, booking.Status, booking.PaymentStatus,
		booking.AttendeesCount, booking.SpecialRequests, booking.Amount, booking.TotalAmount,
		booking.AttendeeName, booking.AttendeeEmail, booking.AttendeePhone,
	))
	if err != nil {
		if isUniqueViolation(err, bookingEventUserKey) {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrDuplicateBooking, err)
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	return created, nil
}

func (r *BookingRepositoryImpl) FindByID(ctx context.Context, id int) (*model.EventBooking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM event_bookings
		WHERE id = $1
	`

	booking, err := scanBooking(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, err
	}

	return booking, nil
}

func (r *BookingRepositoryImpl) FindByIDWithLock(ctx context.Context, tx pgx.Tx, id int) (*model.EventBooking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM event_bookings
		WHERE id = $1
		FOR UPDATE
	`

	booking, err := scanBooking(tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, err
	}

	return booking, nil
}

func (r *BookingRepositoryImpl) ExistsForEventAndUser(ctx context.Context, eventID, userID int) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM event_bookings WHERE event_id = $1 AND user_id = $2
		)
	`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, eventID, userID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *BookingRepositoryImpl) ListByUserID(ctx context.Context, userID int) ([]*model.EventBooking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM event_bookings
		WHERE user_id = $1
		ORDER BY booking_date DESC
	`
	return r.list(ctx, query, userID)
}

func (r *BookingRepositoryImpl) ListByEventID(ctx context.Context, eventID int) ([]*model.EventBooking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM event_bookings
		WHERE event_id = $1
		ORDER BY booking_date DESC
	`
	return r.list(ctx, query, eventID)
}

func (r *BookingRepositoryImpl) list(ctx context.Context, query string, args ...any) ([]*model.EventBooking, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]*model.EventBooking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingRepositoryImpl) UpdateStatus(ctx context.Context, tx pgx.Tx, booking *model.EventBooking) (*model.EventBooking, error) {
	query := `
		UPDATE event_bookings
		SET status = $1, payment_status = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING ` + bookingColumns

	updated, err := scanBooking(tx.QueryRow(ctx, query, booking.Status, booking.PaymentStatus, booking.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}

	return updated, nil
}

func (r *BookingRepositoryImpl) UpdateTotals(ctx context.Context, tx pgx.Tx, id int, totals model.Totals) error {
	query := `
		UPDATE event_bookings
		SET amount = $1, total_amount = $2, attendees_count = $3, updated_at = NOW()
		WHERE id = $4
	`

	result, err := tx.Exec(ctx, query, totals.Amount, totals.TotalAmount, totals.AttendeesCount, id)
	if err != nil {
		return fmt.Errorf("failed to update booking totals: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrBookingNotFound
	}
	return nil
}
