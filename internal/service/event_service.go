package service

import (
	"context"
	"fmt"
	"time"

	"eventease-booking/internal/cache"
	"eventease-booking/internal/model"
	"eventease-booking/internal/repository"
	apperrors "eventease-booking/pkg/app_errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

type EventService interface {
	List(ctx context.Context) ([]*model.Event, error)
	GetByID(ctx context.Context, id int) (*model.Event, error)
	Create(ctx context.Context, req model.CreateEventRequest) (*model.Event, error)
	Update(ctx context.Context, id int, req model.UpdateEventRequest) (*model.Event, error)
	// Availability 即時聚合活動名額與各票種庫存
	Availability(ctx context.Context, id int) (*model.EventAvailability, error)
	// OpenForSale 活動開賣：預熱該活動底下所有票種的 Redis 庫存
	OpenForSale(ctx context.Context, id int) error
}

type EventServiceImpl struct {
	pool         *pgxpool.Pool
	repo         repository.EventRepository
	categoryRepo repository.TicketCategoryRepository
	// guard 為 nil 時表示未啟用庫存預扣
	guard cache.TicketInventoryGuard
}

func NewEventService(
	pool *pgxpool.Pool,
	repo repository.EventRepository,
	categoryRepo repository.TicketCategoryRepository,
	guard cache.TicketInventoryGuard,
) EventService {
	return &EventServiceImpl{
		pool:         pool,
		repo:         repo,
		categoryRepo: categoryRepo,
		guard:        guard,
	}
}

func (s *EventServiceImpl) List(ctx context.Context) ([]*model.Event, error) {
	return s.repo.List(ctx)
}

func (s *EventServiceImpl) GetByID(ctx context.Context, id int) (*model.Event, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *EventServiceImpl) Create(ctx context.Context, req model.CreateEventRequest) (*model.Event, error) {
	event := req.ToEvent()
	if err := validateEvent(event); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, event)
}

func (s *EventServiceImpl) Update(ctx context.Context, id int, req model.UpdateEventRequest) (*model.Event, error) {
	params := req.ToParams()
	if params.IsEmpty() {
		return nil, apperrors.ErrInvalidInput
	}

	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 用更新後的值驗證日期與價格
	merged := *event
	if params.StartDate != nil {
		merged.StartDate = *params.StartDate
	}
	if params.EndDate != nil {
		merged.EndDate = *params.EndDate
	}
	if params.TicketPrice != nil {
		merged.TicketPrice = *params.TicketPrice
	}
	if err := validateEvent(&merged); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, id, params)
}

func (s *EventServiceImpl) Availability(ctx context.Context, id int) (*model.EventAvailability, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	attendees, err := s.repo.CountSoldBookings(ctx, s.pool, id)
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.ListByEventID(ctx, id, false)
	if err != nil {
		return nil, err
	}
	sold, err := s.categoryRepo.TicketsSoldByEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	availability := make([]model.CategoryAvailability, 0, len(categories))
	for _, c := range categories {
		availability = append(availability, model.NewCategoryAvailability(c, sold[c.ID]))
	}

	return model.NewEventAvailability(event, attendees, availability, time.Now()), nil
}

func (s *EventServiceImpl) OpenForSale(ctx context.Context, id int) error {
	if s.guard == nil {
		return nil
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	categories, err := s.categoryRepo.ListByEventID(ctx, id, true)
	if err != nil {
		return err
	}
	held, err := s.categoryRepo.TicketsHeldByEvent(ctx, id)
	if err != nil {
		return err
	}

	for _, c := range categories {
		if err := s.guard.WarmUp(ctx, c.ID, c.QuantityAvailable, held[c.ID]); err != nil {
			return fmt.Errorf("warm up category %d: %w", c.ID, err)
		}
	}
	return nil
}

func validateEvent(event *model.Event) error {
	if event.EndDate.Before(event.StartDate) {
		return fmt.Errorf("%w: end_date must not be before start_date", apperrors.ErrInvalidInput)
	}
	if event.TicketPrice.IsNegative() {
		return fmt.Errorf("%w: ticket_price must not be negative", apperrors.ErrInvalidInput)
	}
	return nil
}
