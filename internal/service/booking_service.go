package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"eventease-booking/internal/cache"
	"eventease-booking/internal/model"
	"eventease-booking/internal/queue"
	"eventease-booking/internal/repository"
	apperrors "eventease-booking/pkg/app_errors"
	"eventease-booking/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type BookingService interface {
	// 建立預約：票項全部寫入後只重算一次金額
	CreateBooking(ctx context.Context, eventID int, req model.CreateBookingRequest) (*model.EventBooking, error)
	GetByID(ctx context.Context, id int) (*model.EventBooking, error)
	ListByUser(ctx context.Context, userID int) ([]*model.EventBooking, error)
	ListByEvent(ctx context.Context, eventID int) ([]*model.EventBooking, error)

	// 儲存票項後一律重算預約金額
	SaveTicketItem(ctx context.Context, bookingID int, req model.SaveTicketItemRequest) (*model.EventBooking, error)
	RemoveTicketItem(ctx context.Context, bookingID, categoryID int) (*model.EventBooking, error)
	UpdateTotals(ctx context.Context, bookingID int) (*model.EventBooking, error)

	// 狀態變更：比對變更前後快照後發送預約事件
	CancelBooking(ctx context.Context, bookingID, userID int) (*model.EventBooking, error)
	UpdatePaymentStatus(ctx context.Context, bookingID int, req model.UpdatePaymentRequest) (*model.EventBooking, error)
	MarkAttendance(ctx context.Context, bookingID int, attended bool) (*model.EventBooking, error)
}

type BookingServiceImpl struct {
	pool         *pgxpool.Pool
	repository   repository.BookingRepository
	itemRepo     repository.BookingItemRepository
	categoryRepo repository.TicketCategoryRepository
	eventRepo    repository.EventRepository
	userRepo     repository.UserRepository
	guard        cache.TicketInventoryGuard
	eventQueue   queue.BookingEventQueue
	maxTickets   int
	log          *zap.Logger
}

// NewBookingService guard 可為 nil（不做 Redis 預扣）；maxTickets <= 0 時不限制每筆預約票數
func NewBookingService(
	pool *pgxpool.Pool,
	bookingRepository repository.BookingRepository,
	itemRepository repository.BookingItemRepository,
	categoryRepository repository.TicketCategoryRepository,
	eventRepository repository.EventRepository,
	userRepository repository.UserRepository,
	guard cache.TicketInventoryGuard,
	eventQueue queue.BookingEventQueue,
	maxTickets int,
) BookingService {
	return &BookingServiceImpl{
		pool:         pool,
		repository:   bookingRepository,
		itemRepo:     itemRepository,
		categoryRepo: categoryRepository,
		eventRepo:    eventRepository,
		userRepo:     userRepository,
		guard:        guard,
		eventQueue:   eventQueue,
		maxTickets:   maxTickets,
		log:          logger.WithComponent("service"),
	}
}

func (s *BookingServiceImpl) CreateBooking(ctx context.Context, eventID int, req model.CreateBookingRequest) (_ *model.EventBooking, err error) {
	selections, err := mergeSelections(req.Tickets)
	if err != nil {
		return nil, err
	}

	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !event.IsActive {
		return nil, apperrors.ErrEventNotFound
	}
	if event.RegistrationClosedAt(time.Now()) {
		return nil, apperrors.ErrRegistrationClosed
	}

	if _, err := s.userRepo.FindByID(ctx, req.UserID); err != nil {
		return nil, err
	}
	exists, err := s.repository.ExistsForEventAndUser(ctx, eventID, req.UserID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrDuplicateBooking
	}

	// 停售的票種也算「有票種」，只是不能被選購
	categories, err := s.categoryRepo.ListByEventID(ctx, eventID, false)
	if err != nil {
		return nil, err
	}
	byID := make(map[int]*model.TicketCategory, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	total := 0
	for _, sel := range selections {
		category, ok := byID[sel.CategoryID]
		if !ok {
			return nil, fmt.Errorf("%w: category %d", apperrors.ErrCategoryEventMismatch, sel.CategoryID)
		}
		if !category.IsActive {
			return nil, fmt.Errorf("%w: %s is not on sale", apperrors.ErrInsufficientTickets, category.Name)
		}
		total += sel.Quantity
	}
	if len(categories) > 0 {
		if total == 0 {
			return nil, apperrors.ErrNoTicketsSelected
		}
		if s.maxTickets > 0 && total > s.maxTickets {
			return nil, fmt.Errorf("%w: maximum %d tickets per booking", apperrors.ErrTooManyTickets, s.maxTickets)
		}
	}

	// 1. Redis 預扣：Lua 腳本保證「剩餘 >= 需求才扣減」
	reservations := make([]cache.Reservation, 0, len(selections))
	for _, sel := range selections {
		reservations = append(reservations, cache.Reservation{CategoryID: sel.CategoryID, Quantity: sel.Quantity})
	}
	if err := s.reserve(ctx, reservations, byID); err != nil {
		return nil, err
	}
	defer func() {
		// 交易失敗時歸還預扣，使用 context.Background() 確保一定會執行
		if err != nil {
			s.release(reservations)
		}
	}()

	// 2. 資料庫交易：檢查庫存、建立預約與票項、重算金額
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if len(categories) == 0 {
		locked, err := s.eventRepo.FindByIDWithLock(ctx, tx, eventID)
		if err != nil {
			return nil, err
		}
		attendees, err := s.eventRepo.CountSoldBookings(ctx, tx, eventID)
		if err != nil {
			return nil, err
		}
		if attendees >= locked.MaxAttendees {
			return nil, apperrors.ErrEventFull
		}
	} else {
		for _, sel := range selections {
			category, err := s.lockAvailable(ctx, tx, eventID, sel.CategoryID, sel.Quantity)
			if err != nil {
				return nil, err
			}
			byID[category.ID] = category
		}
	}

	booking, err := s.repository.Create(ctx, tx, &model.EventBooking{
		EventID:         eventID,
		UserID:          req.UserID,
		Status:          model.BookingStatusPending,
		PaymentStatus:   model.PaymentStatusPending,
		SpecialRequests: req.SpecialRequests,
		AttendeeName:    &req.AttendeeName,
		AttendeeEmail:   &req.AttendeeEmail,
		AttendeePhone:   &req.AttendeePhone,
	})
	if err != nil {
		return nil, err
	}

	for _, sel := range selections {
		item := &model.BookingTicketItem{BookingID: booking.ID, Quantity: sel.Quantity}
		item.LockPrice(byID[sel.CategoryID])
		if _, err := s.itemRepo.Create(ctx, tx, item); err != nil {
			return nil, err
		}
	}

	if err := s.updateTotals(ctx, tx, booking, event); err != nil {
		return nil, err
	}

	// 免費活動或金額為 0 不需要付款，直接確認
	if !booking.RequiresPayment(event) {
		booking.Status = model.BookingStatusConfirmed
		booking.PaymentStatus = model.PaymentStatusCompleted
		items := booking.Items
		booking, err = s.repository.UpdateStatus(ctx, tx, booking)
		if err != nil {
			return nil, err
		}
		booking.Items = items
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	// 3. 通知失敗不影響預約結果
	s.publish(ctx, model.NewBookingCreatedEvent(booking))
	return booking, nil
}

func (s *BookingServiceImpl) GetByID(ctx context.Context, id int) (*model.EventBooking, error) {
	booking, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	items, err := s.itemRepo.ListByBookingID(ctx, s.pool, id)
	if err != nil {
		return nil, err
	}
	booking.Items = items
	return booking, nil
}

func (s *BookingServiceImpl) ListByUser(ctx context.Context, userID int) ([]*model.EventBooking, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	bookings, err := s.repository.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.withItems(ctx, bookings)
}

func (s *BookingServiceImpl) ListByEvent(ctx context.Context, eventID int) ([]*model.EventBooking, error) {
	if _, err := s.eventRepo.FindByID(ctx, eventID); err != nil {
		return nil, err
	}
	bookings, err := s.repository.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return s.withItems(ctx, bookings)
}

// withItems 以一次查詢補上列表中每筆預約的票項
func (s *BookingServiceImpl) withItems(ctx context.Context, bookings []*model.EventBooking) ([]*model.EventBooking, error) {
	ids := make([]int, 0, len(bookings))
	for _, b := range bookings {
		ids = append(ids, b.ID)
	}
	items, err := s.itemRepo.ListByBookingIDs(ctx, s.pool, ids)
	if err != nil {
		return nil, err
	}
	for _, b := range bookings {
		b.Items = items[b.ID]
	}
	return bookings, nil
}

func (s *BookingServiceImpl) SaveTicketItem(ctx context.Context, bookingID int, req model.SaveTicketItemRequest) (_ *model.EventBooking, err error) {
	if req.Quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", apperrors.ErrInvalidInput)
	}

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	booking, event, err := s.lockEditable(ctx, tx, bookingID)
	if err != nil {
		return nil, err
	}

	existing, err := s.itemRepo.FindByBookingAndCategory(ctx, tx, bookingID, req.CategoryID)
	if err != nil && !errors.Is(err, apperrors.ErrBookingItemNotFound) {
		return nil, err
	}
	previous := 0
	if existing != nil {
		previous = existing.Quantity
	}

	items, err := s.itemRepo.ListByBookingID(ctx, tx, bookingID)
	if err != nil {
		return nil, err
	}
	total := req.Quantity - previous
	for _, item := range items {
		total += item.Quantity
	}
	if s.maxTickets > 0 && total > s.maxTickets {
		return nil, fmt.Errorf("%w: maximum %d tickets per booking", apperrors.ErrTooManyTickets, s.maxTickets)
	}

	// 已售出的預約本身已計入 tickets_sold，只需要檢查增加的數量；減少數量不檢查庫存
	need := req.Quantity
	if booking.Status.IsSold() || req.Quantity <= previous {
		need = req.Quantity - previous
	}
	category, err := s.lockAvailable(ctx, tx, booking.EventID, req.CategoryID, need)
	if err != nil {
		return nil, err
	}

	delta := req.Quantity - previous
	if delta > 0 {
		reserved := []cache.Reservation{{CategoryID: category.ID, Quantity: delta}}
		if err := s.reserve(ctx, reserved, map[int]*model.TicketCategory{category.ID: category}); err != nil {
			return nil, err
		}
		defer func() {
			if err != nil {
				s.release(reserved)
			}
		}()
	}

	if existing == nil {
		item := &model.BookingTicketItem{BookingID: bookingID, Quantity: req.Quantity}
		item.LockPrice(category)
		if _, err := s.itemRepo.Create(ctx, tx, item); err != nil {
			return nil, err
		}
	} else if err := s.itemRepo.UpdateQuantity(ctx, tx, existing.ID, req.Quantity); err != nil {
		return nil, err
	}

	if err := s.updateTotals(ctx, tx, booking, event); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	if delta < 0 {
		s.release([]cache.Reservation{{CategoryID: category.ID, Quantity: -delta}})
	}
	return booking, nil
}

func (s *BookingServiceImpl) RemoveTicketItem(ctx context.Context, bookingID, categoryID int) (*model.EventBooking, error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	booking, event, err := s.lockEditable(ctx, tx, bookingID)
	if err != nil {
		return nil, err
	}

	removed, err := s.itemRepo.Delete(ctx, tx, bookingID, categoryID)
	if err != nil {
		return nil, err
	}

	// 沒有票項時走單一票價路徑，金額不為 0 所以保留最後一次的結果
	if err := s.updateTotals(ctx, tx, booking, event); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	s.release([]cache.Reservation{{CategoryID: categoryID, Quantity: removed.Quantity}})
	return booking, nil
}

func (s *BookingServiceImpl) UpdateTotals(ctx context.Context, bookingID int) (*model.EventBooking, error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	booking, err := s.repository.FindByIDWithLock(ctx, tx, bookingID)
	if err != nil {
		return nil, err
	}
	event, err := s.eventRepo.FindByID(ctx, booking.EventID)
	if err != nil {
		return nil, err
	}

	if err := s.updateTotals(ctx, tx, booking, event); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *BookingServiceImpl) CancelBooking(ctx context.Context, bookingID, userID int) (*model.EventBooking, error) {
	return s.saveBooking(ctx, bookingID, func(b *model.EventBooking, event *model.Event) error {
		// 不是本人的預約視為不存在
		if b.UserID != userID {
			return apperrors.ErrBookingNotFound
		}
		if !b.CanCancel(event, time.Now()) {
			return apperrors.ErrCannotCancel
		}
		b.Status = model.BookingStatusCancelled
		return nil
	})
}

func (s *BookingServiceImpl) UpdatePaymentStatus(ctx context.Context, bookingID int, req model.UpdatePaymentRequest) (*model.EventBooking, error) {
	if !req.PaymentStatus.IsValid() {
		return nil, apperrors.ErrInvalidPaymentStatus
	}
	if req.Status != nil && !req.Status.IsValid() {
		return nil, apperrors.ErrInvalidBookingStatus
	}

	return s.saveBooking(ctx, bookingID, func(b *model.EventBooking, _ *model.Event) error {
		b.PaymentStatus = req.PaymentStatus

		target := b.Status
		switch {
		case req.Status != nil:
			target = *req.Status
		case req.PaymentStatus == model.PaymentStatusCompleted && b.Status == model.BookingStatusPending:
			target = model.BookingStatusConfirmed
		}
		if target != b.Status {
			if !b.Status.CanTransitionTo(target) {
				return fmt.Errorf("%w: %s -> %s", apperrors.ErrInvalidBookingStatus, b.Status, target)
			}
			b.Status = target
		}
		return nil
	})
}

func (s *BookingServiceImpl) MarkAttendance(ctx context.Context, bookingID int, attended bool) (*model.EventBooking, error) {
	target := model.BookingStatusNoShow
	if attended {
		target = model.BookingStatusAttended
	}

	return s.saveBooking(ctx, bookingID, func(b *model.EventBooking, _ *model.Event) error {
		if !b.Status.CanTransitionTo(target) {
			return fmt.Errorf("%w: %s -> %s", apperrors.ErrInvalidBookingStatus, b.Status, target)
		}
		b.Status = target
		return nil
	})
}

// saveBooking 鎖定預約後套用 mutate、寫回狀態並重算金額。
// 變更前的快照與寫回後的結果交給 DiffBookingStatus 比對，有變化才發送事件。
func (s *BookingServiceImpl) saveBooking(ctx context.Context, bookingID int, mutate func(b *model.EventBooking, event *model.Event) error) (*model.EventBooking, error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	booking, err := s.repository.FindByIDWithLock(ctx, tx, bookingID)
	if err != nil {
		return nil, err
	}
	event, err := s.eventRepo.FindByID(ctx, booking.EventID)
	if err != nil {
		return nil, err
	}

	before := booking.Snapshot()
	if err := mutate(booking, event); err != nil {
		return nil, err
	}

	saved, err := s.repository.UpdateStatus(ctx, tx, booking)
	if err != nil {
		return nil, err
	}
	if err := s.updateTotals(ctx, tx, saved, event); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	if before.Status != model.BookingStatusCancelled && saved.Status == model.BookingStatusCancelled {
		s.release(itemReservations(saved.Items))
	}
	if evt, changed := model.DiffBookingStatus(before, saved); changed {
		s.publish(ctx, evt)
	}
	return saved, nil
}

// updateTotals 讀取目前票項重算金額，需要寫回時在同一個交易內更新
func (s *BookingServiceImpl) updateTotals(ctx context.Context, tx pgx.Tx, booking *model.EventBooking, event *model.Event) error {
	items, err := s.itemRepo.ListByBookingID(ctx, tx, booking.ID)
	if err != nil {
		return err
	}

	totals, err := model.RecomputeTotals(booking, event, items)
	if err != nil {
		return err
	}
	if totals.Persist {
		if err := s.repository.UpdateTotals(ctx, tx, booking.ID, totals); err != nil {
			return err
		}
	}

	booking.ApplyTotals(totals)
	booking.Items = items
	return nil
}

// lockEditable 只有 pending/confirmed 的預約可以調整票項
func (s *BookingServiceImpl) lockEditable(ctx context.Context, tx pgx.Tx, bookingID int) (*model.EventBooking, *model.Event, error) {
	booking, err := s.repository.FindByIDWithLock(ctx, tx, bookingID)
	if err != nil {
		return nil, nil, err
	}
	if booking.Status != model.BookingStatusPending && booking.Status != model.BookingStatusConfirmed {
		return nil, nil, fmt.Errorf("%w: cannot change tickets of a %s booking", apperrors.ErrInvalidBookingStatus, booking.Status)
	}
	event, err := s.eventRepo.FindByID(ctx, booking.EventID)
	if err != nil {
		return nil, nil, err
	}
	return booking, event, nil
}

// lockAvailable 鎖定票種後在交易內重新計算已售出數量
func (s *BookingServiceImpl) lockAvailable(ctx context.Context, tx pgx.Tx, eventID, categoryID, quantity int) (*model.TicketCategory, error) {
	category, err := s.categoryRepo.FindByIDWithLock(ctx, tx, categoryID)
	if err != nil {
		return nil, err
	}
	if category.EventID != eventID {
		return nil, apperrors.ErrCategoryEventMismatch
	}
	if quantity <= 0 {
		return category, nil
	}
	if !category.IsActive {
		return nil, fmt.Errorf("%w: %s is not on sale", apperrors.ErrInsufficientTickets, category.Name)
	}

	sold, err := s.categoryRepo.TicketsSold(ctx, tx, categoryID)
	if err != nil {
		return nil, err
	}
	if available := category.TicketsAvailable(sold); quantity > available {
		return nil, fmt.Errorf("%w: only %d tickets available for %s", apperrors.ErrInsufficientTickets, available, category.Name)
	}
	return category, nil
}

// reserve 未啟用 guard 時直接略過；尚未預熱的票種以總量扣掉仍持有的票數預熱
func (s *BookingServiceImpl) reserve(ctx context.Context, reservations []cache.Reservation, categories map[int]*model.TicketCategory) error {
	if s.guard == nil || len(reservations) == 0 {
		return nil
	}

	for _, r := range reservations {
		if _, err := s.guard.Remaining(ctx, r.CategoryID); !errors.Is(err, apperrors.ErrInventoryNotLoaded) {
			if err != nil {
				return err
			}
			continue
		}
		category, ok := categories[r.CategoryID]
		if !ok {
			return apperrors.ErrTicketCategoryNotFound
		}
		held, err := s.categoryRepo.TicketsHeld(ctx, s.pool, r.CategoryID)
		if err != nil {
			return err
		}
		if err := s.guard.WarmUp(ctx, r.CategoryID, category.QuantityAvailable, held); err != nil {
			return err
		}
	}

	return s.guard.Reserve(ctx, reservations)
}

func (s *BookingServiceImpl) release(reservations []cache.Reservation) {
	if s.guard == nil || len(reservations) == 0 {
		return
	}
	if err := s.guard.Release(context.Background(), reservations); err != nil {
		s.log.Error("release ticket inventory failed", zap.Any("reservations", reservations), zap.Error(err))
	}
}

func (s *BookingServiceImpl) publish(ctx context.Context, event *model.BookingEvent) {
	if s.eventQueue == nil {
		return
	}
	if err := s.eventQueue.Publish(ctx, event); err != nil {
		s.log.Error("failed to publish booking event",
			zap.String("event_id", event.ID),
			zap.String("type", string(event.Type)),
			zap.Int("booking_id", event.BookingID),
			zap.Error(err))
	}
}

// mergeSelections 合併同一票種的數量並去掉 0，依票種 ID 排序讓鎖定順序一致
func mergeSelections(tickets []model.TicketSelection) ([]model.TicketSelection, error) {
	quantities := make(map[int]int, len(tickets))
	for _, t := range tickets {
		if t.Quantity < 0 {
			return nil, fmt.Errorf("%w: quantity must not be negative", apperrors.ErrInvalidInput)
		}
		if t.Quantity == 0 {
			continue
		}
		quantities[t.CategoryID] += t.Quantity
	}

	merged := make([]model.TicketSelection, 0, len(quantities))
	for id, qty := range quantities {
		merged = append(merged, model.TicketSelection{CategoryID: id, Quantity: qty})
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].CategoryID < merged[j].CategoryID })
	return merged, nil
}

func itemReservations(items []*model.BookingTicketItem) []cache.Reservation {
	reservations := make([]cache.Reservation, 0, len(items))
	for _, item := range items {
		reservations = append(reservations, cache.Reservation{CategoryID: item.TicketCategoryID, Quantity: item.Quantity})
	}
	return reservations
}
