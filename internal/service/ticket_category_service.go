package service

import (
	"context"
	"fmt"

	"eventease-booking/internal/cache"
	"eventease-booking/internal/model"
	"eventease-booking/internal/repository"
	apperrors "eventease-booking/pkg/app_errors"
	"eventease-booking/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type TicketCategoryService interface {
	// Create 活動第一次建立票種時，活動改為收費
	Create(ctx context.Context, eventID int, req model.CreateTicketCategoryRequest) (*model.TicketCategory, error)
	ListByEvent(ctx context.Context, eventID int) ([]model.CategoryAvailability, error)
	GetByID(ctx context.Context, id int) (*model.CategoryAvailability, error)
	Update(ctx context.Context, id int, req model.UpdateTicketCategoryRequest) (*model.TicketCategory, error)
}

type TicketCategoryServiceImpl struct {
	pool      *pgxpool.Pool
	repo      repository.TicketCategoryRepository
	eventRepo repository.EventRepository
	guard     cache.TicketInventoryGuard
	log       *zap.Logger
}

func NewTicketCategoryService(
	pool *pgxpool.Pool,
	repo repository.TicketCategoryRepository,
	eventRepo repository.EventRepository,
	guard cache.TicketInventoryGuard,
) TicketCategoryService {
	return &TicketCategoryServiceImpl{
		pool:      pool,
		repo:      repo,
		eventRepo: eventRepo,
		guard:     guard,
		log:       logger.WithComponent("service"),
	}
}

func (s *TicketCategoryServiceImpl) Create(ctx context.Context, eventID int, req model.CreateTicketCategoryRequest) (*model.TicketCategory, error) {
	category := req.ToCategory(eventID)
	if !category.CategoryType.IsValid() {
		return nil, fmt.Errorf("%w: unknown category_type %q", apperrors.ErrInvalidInput, category.CategoryType)
	}
	if category.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", apperrors.ErrInvalidInput)
	}

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	event, err := s.eventRepo.FindByIDWithLock(ctx, tx, eventID)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, tx, category)
	if err != nil {
		return nil, err
	}

	if event.IsFree {
		if err := s.eventRepo.SetFree(ctx, tx, eventID, false); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *TicketCategoryServiceImpl) ListByEvent(ctx context.Context, eventID int) ([]model.CategoryAvailability, error) {
	if _, err := s.eventRepo.FindByID(ctx, eventID); err != nil {
		return nil, err
	}

	categories, err := s.repo.ListByEventID(ctx, eventID, false)
	if err != nil {
		return nil, err
	}
	sold, err := s.repo.TicketsSoldByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	result := make([]model.CategoryAvailability, 0, len(categories))
	for _, c := range categories {
		result = append(result, model.NewCategoryAvailability(c, sold[c.ID]))
	}
	return result, nil
}

func (s *TicketCategoryServiceImpl) GetByID(ctx context.Context, id int) (*model.CategoryAvailability, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	sold, err := s.repo.TicketsSold(ctx, s.pool, id)
	if err != nil {
		return nil, err
	}

	availability := model.NewCategoryAvailability(category, sold)
	return &availability, nil
}

func (s *TicketCategoryServiceImpl) Update(ctx context.Context, id int, req model.UpdateTicketCategoryRequest) (*model.TicketCategory, error) {
	params := req.ToParams()
	if params.IsEmpty() {
		return nil, apperrors.ErrInvalidInput
	}
	if params.Price != nil && params.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", apperrors.ErrInvalidInput)
	}

	updated, err := s.repo.Update(ctx, id, params)
	if err != nil {
		return nil, err
	}

	// 數量調整後清掉 Redis 計數，下次預熱時依新數量重算
	if params.QuantityAvailable != nil && s.guard != nil {
		if err := s.guard.Reset(ctx, id); err != nil {
			s.log.Error("reset ticket inventory failed", zap.Int("category_id", id), zap.Error(err))
		}
	}

	return updated, nil
}
