package service_test

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"eventease-booking/internal/model"
	"eventease-booking/internal/repository"
	"eventease-booking/internal/service"
	"eventease-booking/internal/testutil"
	apperrors "eventease-booking/pkg/app_errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(expected).Equal(actual), "expected %s, got %s", expected, actual)
}

func TestBookingService_CreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("MultiCategory", func(t *testing.T) {
		db := getTestDB(t)
		q := &recordingQueue{}
		svc := newBookingService(db, nil, q)
		eventID := testutil.CreateEvent(t, db, "Summit", 300, "0", false)
		general := testutil.CreateCategory(t, db, eventID, "General", "35.00", 200)
		vip := testutil.CreateCategory(t, db, eventID, "VIP", "85.00", 50)
		userID := testutil.CreateUser(t, db, "Ada", "ada@example.com")

		booking, err := svc.CreateBooking(ctx, eventID, bookingRequest(userID, ticket(general, 1), ticket(vip, 1)))
		require.NoError(t, err)

		assertDecimal(t, "120", booking.TotalAmount)
		assertDecimal(t, "120", booking.Amount)
		assert.Equal(t, 2, booking.AttendeesCount)
		assert.Equal(t, model.BookingStatusPending, booking.Status)
		assert.Equal(t, model.PaymentStatusPending, booking.PaymentStatus)

		require.Len(t, booking.Items, 2)
		assertDecimal(t, "35", booking.Items[0].Subtotal())
		assertDecimal(t, "85", booking.Items[1].Subtotal())

		// 重新讀取確認已寫入
		stored, err := svc.GetByID(ctx, booking.ID)
		require.NoError(t, err)
		assertDecimal(t, "120", stored.TotalAmount)
		assert.Equal(t, 2, stored.TotalTickets())

		events := q.Events()
		require.Len(t, events, 1)
		assert.Equal(t, model.BookingEventCreated, events[0].Type)
		assert.Equal(t, booking.ID, events[0].BookingID)
	})

	t.Run("FlatPrice", func(t *testing.T) {
		db := getTestDB(t)
		svc := newBookingService(db, nil, nil)
		eventID := testutil.CreateEvent(t, db, "Workshop", 10, "50.00", false)
		userID := testutil.CreateUser(t, db, "Ada", "ada@example.com")

		booking, err := svc.CreateBooking(ctx, eventID, bookingRequest(userID))
		require.NoError(t, err)

		assertDecimal(t, "50", booking.Amount)
		assertDecimal(t, "50", booking.TotalAmount)
		assert.Equal(t, 1, booking.AttendeesCount)
		assert.Empty(t, booking.Items)
		assert.Equal(t, model.BookingStatusPending, booking.Status)
	})

	t.Run("FreeEventIsConfirmed", func(t *testing.T) {
		db := getTestDB(t)
		svc := newBookingService(db, nil, nil)
		eventID := testutil.CreateEvent(t, db, "Meetup", 10, "50.00", true)
		userID := testutil.CreateUser(t, db, "Ada", "ada@example.com")

		booking, err := svc.CreateBooking(ctx, eventID, bookingRequest(userID))
		require.NoError(t, err)

		assert.True(t, booking.TotalAmount.IsZero())
		assert.Equal(t, 1, booking.AttendeesCount)
		assert.Equal(t, model.BookingStatusConfirmed, booking.Status)
		assert.Equal(t, model.PaymentStatusCompleted, booking.PaymentStatus)
	})

	t.Run("Failed - Duplicate", func(t *testing.T) {
		db := getTestDB(t)
		svc := newBookingService(db, nil, nil)
		eventID := testutil.CreateEvent(t, db, "Meetup", 10, "0", true)
		userID := testutil.CreateUser(t, db, "Ada", "ada@example.com")

		_, err := svc.CreateBooking(ctx, eventID, bookingRequest(userID))
		require.NoError(t, err)

		_, err = svc.CreateBooking(ctx, eventID, bookingRequest(userID))
		assert.ErrorIs(t, err, apperrors.ErrDuplicateBooking)
	})

	t.Run("Failed - EventFull", func(t *testing.T) {
		db := getTestDB(t)
		svc := newBookingService(db, nil, nil)
		eventID := testutil.CreateEvent(t, db, "Tiny", 1, "0", true)
		first := testutil.CreateUser(t, db, "Ada", "ada@example.com")
		second := testutil.CreateUser(t, db, "Bob", "bob@example.com")

		_, err := svc.CreateBooking(ctx, eventID, bookingRequest(first))
		require.NoError(t, err)

		_, err = svc.CreateBooking(ctx, eventID, bookingRequest(second))
		assert.ErrorIs(t, err, apperrors.ErrEventFull)
	})

	t.Run("Failed - RegistrationClosed", func(t *testing.T) {
		db := getTestDB(t)
		svc := newBookingService(db, nil, nil)
		eventID := testutil.CreateEvent(t, db, "Late", 10, "0", true)
		setEventColumn(t, db, eventID, "registration_deadline", time.Now().Add(-time.Hour))
		userID := testutil.CreateUser(t, db, "Ada", "ada@example.com")

		_, err := svc.CreateBooking(ctx, eventID, bookingRequest(userID))
		assert.ErrorIs(t, err, apperrors.ErrRegistrationClosed)
	})

	t.Run("Failed - InactiveEvent", func(t *testing.T) {
		db := getTestDB(t)
		svc := newBookingService(db, nil, nil)
		eventID := testutil.CreateEvent(t, db, "Hidden", 10, "0", true)
		setEventColumn(t, db, eventID, "is_active", false)
		userID := testutil.CreateUser(t, db, "Ada", "ada@example.com")

		_, err := svc.CreateBooking(ctx, eventID, bookingRequest(userID))
		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
	})

	t.Run("Failed - NoTicketsSelected", func(t *testing.T) {
		db := getTestDB(t)
		svc := newBookingService(db, nil, nil)
		eventID := testutil.CreateEvent(t, db, "Summit", 300, "0", false)
		general := testutil.CreateCategory(t, db, eventID, "General", "35.00", 200)
		userID := testutil.CreateUser(t, db, "Ada", "ada@example.com")

		_, err := svc.CreateBooking(ctx, eventID, bookingRequest(userID, ticket(general, 0)))
		assert.ErrorIs(t, err, apperrors.ErrNoTicketsSelected)
	})

	t.Run("Failed - TooManyTickets", func(t *testing.T) {
		db := getTestDB(t)
		svc := newBookingService(db, nil, nil)
		eventID := testutil.CreateEvent(t, db, "Summit", 300, "0", false)
		general := testutil.CreateCategory(t, db, eventID, "General", "35.00", 200)
		vip := testutil.CreateCategory(t, db, eventID, "VIP", "85.00", 50)
		userID := testutil.CreateUser(t, db, "Ada", "ada@example.com")

		_, err := svc.CreateBooking(ctx, eventID, bookingRequest(userID, ticket(general, 4), ticket(vip, 3)))
		assert.ErrorIs(t, err, apperrors.ErrTooManyTickets)
	})

	t.Run("Failed - InsufficientTickets", func(t *testing.T) {
		db := getTestDB(t)
		svc := newBookingService(db, nil, nil)
		eventID := testutil.CreateEvent(t, db, "Summit", 300, "0", false)
		vip := testutil.CreateCategory(t, db, eventID, "VIP", "85.00", 3)
		holder := testutil.CreateUser(t, db, "Holder", "holder@example.com")
		bookingID := testutil.CreateBooking(t, db, eventID, holder, model.BookingStatusConfirmed)
		testutil.CreateItem(t, db, bookingID, vip, 2, "85.00")
		userID := testutil.CreateUser(t, db, "Ada", "ada@example.com")

		_, err := svc.CreateBooking(ctx, eventID, bookingRequest(userID, ticket(vip, 2)))
		require.ErrorIs(t, err, apperrors.ErrInsufficientTickets)
		assert.Contains(t, err.Error(), "only 1 tickets available for VIP")
	})

	t.Run("DecreaseOnDeactivatedCategory", func(t *testing.T) {
		db := getTestDB(t)
		svc := newBookingService(db, nil, nil)
		categoryRepo := repository.NewTicketCategoryRepository(db)
		eventID := testutil.CreateEvent(t, db, "Summit", 300, "0", false)
		general := testutil.CreateCategory(t, db, eventID, "General", "20.00", 100)
		userID := testutil.CreateUser(t, db, "Ada", "ada@example.com")
		bookingID := testutil.CreateBooking(t, db, eventID, userID, model.BookingStatusPending)
		testutil.CreateItem(t, db, bookingID, general, 3, "20.00")

		inactive := false
		_, err := categoryRepo.Update(ctx, general, model.UpdateTicketCategoryParams{IsActive: &inactive})
		require.NoError(t, err)

		booking, err := svc.SaveTicketItem(ctx, bookingID, model.SaveTicketItemRequest{CategoryID: general, Quantity: 1})
		require.NoError(t, err)
		assert.Equal(t, 1, booking.Items[0].Quantity)
		assertDecimal(t, "20", booking.TotalAmount)

		_, err = svc.SaveTicketItem(ctx, bookingID, model.SaveTicketItemRequest{CategoryID: general, Quantity: 2})
		assert.ErrorIs(t, err, apperrors.ErrInsufficientTickets)
	})

	t.Run("Failed - CategoryFromAnotherEvent", func(t *testing.T) {
		db := getTestDB(t)
		svc := newBookingService(db, nil, nil)
		eventID := testutil.CreateEvent(t, db, "Summit", 300, "0", false)
		testutil.CreateCategory(t, db, eventID, "General", "35.00", 200)
		otherEvent := testutil.CreateEvent(t, db, "Other", 300, "0", false)
		foreign := testutil.CreateCategory(t, db, otherEvent, "General", "10.00", 200)
		userID := testutil.CreateUser(t, db, "Ada", "ada@example.com")

		_, err := svc.CreateBooking(ctx, eventID, bookingRequest(userID, ticket(foreign, 1)))
		assert.ErrorIs(t, err, apperrors.ErrCategoryEventMismatch)
	})
}

// 免費票種直接確認，確認後的預約計入已售出；票種鎖讓同時下單不會超賣
func TestBookingService_CreateBooking_ConcurrentNoOversell(t *testing.T) {
	db := getTestDB(t)
	ctx := context.Background()
	svc := newBookingService(db, nil, nil)

	const users = 20
	const stock = 5
	eventID := testutil.CreateEvent(t, db, "Popular", 100, "0", true)
	categoryID := testutil.CreateCategory(t, db, eventID, "Free Pass", "0", stock)
	userIDs := make([]int, users)
	for i := range userIDs {
		userIDs[i] = testutil.CreateUser(t, db, fmt.Sprintf("User%d", i), fmt.Sprintf("user%d@example.com", i))
	}

	var wg sync.WaitGroup
	var succeeded, insufficient int32
	for _, userID := range userIDs {
		wg.Add(1)
		go func(userID int) {
			defer wg.Done()
			_, err := svc.CreateBooking(ctx, eventID, bookingRequest(userID, ticket(categoryID, 1)))
			switch {
			case err == nil:
				atomic.AddInt32(&succeeded, 1)
			case assert.ErrorIs(t, err, apperrors.ErrInsufficientTickets):
				atomic.AddInt32(&insufficient, 1)
			}
		}(userID)
	}
	wg.Wait()

	assert.Equal(t, int32(stock), succeeded)
	assert.Equal(t, int32(users-stock), insufficient)

	sold, err := repository.NewTicketCategoryRepository(db).TicketsSold(ctx, db, categoryID)
	require.NoError(t, err)
	assert.Equal(t, stock, sold)
}

// 沒有票種的活動以鎖定後的活動列檢查名額
func TestBookingService_CreateBooking_FlatPriceConcurrentNoOverbook(t *testing.T) {
	ctx := context.Background()
	db := getTestDB(t)
	svc := newBookingService(db, nil, nil)

	const users = 12
	const capacity = 3
	eventID := testutil.CreateEvent(t, db, "Meetup", capacity, "0", true)
	userIDs := make([]int, users)
	for i := range userIDs {
		userIDs[i] = testutil.CreateUser(t, db, fmt.Sprintf("User%d", i), fmt.Sprintf("user%d@example.com", i))
	}

	var wg sync.WaitGroup
	var succeeded, full int32
	for _, userID := range userIDs {
		wg.Add(1)
		go func(userID int) {
			defer wg.Done()
			_, err := svc.CreateBooking(ctx, eventID, bookingRequest(userID))
			switch {
			case err == nil:
				atomic.AddInt32(&succeeded, 1)
			case assert.ErrorIs(t, err, apperrors.ErrEventFull):
				atomic.AddInt32(&full, 1)
			}
		}(userID)
	}
	wg.Wait()

	assert.Equal(t, int32(capacity), succeeded)
	assert.Equal(t, int32(users-capacity), full)

	attendees, err := repository.NewEventRepository(db).CountSoldBookings(ctx, db, eventID)
	require.NoError(t, err)
	assert.Equal(t, capacity, attendees)
}

func TestBookingService_CreateBooking_InventoryGuard(t *testing.T) {
	ctx := context.Background()

	t.Run("ReservesPendingBookings", func(t *testing.T) {
		db := getTestDB(t)
		guard := getTestGuard(t)
		svc := newBookingService(db, guard, nil)
		eventID := testutil.CreateEvent(t, db, "Summit", 300, "0", false)
		vip := testutil.CreateCategory(t, db, eventID, "VIP", "85.00", 3)
		first := testutil.CreateUser(t, db, "Ada", "ada@example.com")
		second := testutil.CreateUser(t, db, "Bob", "bob@example.com")

		booking, err := svc.CreateBooking(ctx, eventID, bookingRequest(first, ticket(vip, 2)))
		require.NoError(t, err)
		assert.Equal(t, model.BookingStatusPending, booking.Status)

		remaining, err := guard.Remaining(ctx, vip)
		require.NoError(t, err)
		assert.Equal(t, 1, remaining)

		// pending 預約不計入 tickets_sold，但 Redis 已預扣
		_, err = svc.CreateBooking(ctx, eventID, bookingRequest(second, ticket(vip, 2)))
		assert.ErrorIs(t, err, apperrors.ErrInsufficientTickets)
	})

	t.Run("CancelReleases", func(t *testing.T) {
		db := getTestDB(t)
		guard := getTestGuard(t)
		svc := newBookingService(db, guard, nil)
		eventID := testutil.CreateEvent(t, db, "Summit", 300, "0", false)
		vip := testutil.CreateCategory(t, db, eventID, "VIP", "85.00", 3)
		userID := testutil.CreateUser(t, db, "Ada", "ada@example.com")

		booking, err := svc.CreateBooking(ctx, eventID, bookingRequest(userID, ticket(vip, 3)))
		require.NoError(t, err)

		_, err = svc.CancelBooking(ctx, booking.ID, userID)
		require.NoError(t, err)

		remaining, err := guard.Remaining(ctx, vip)
		require.NoError(t, err)
		assert.Equal(t, 3, remaining)
	})

	t.Run("RewarmAfterQuantityChangeCountsPending", func(t *testing.T) {
		db := getTestDB(t)
		guard := getTestGuard(t)
		svc := newBookingService(db, guard, nil)
		categorySvc := service.NewTicketCategoryService(db,
			repository.NewTicketCategoryRepository(db), repository.NewEventRepository(db), guard)
		eventID := testutil.CreateEvent(t, db, "Summit", 300, "0", false)
		vip := testutil.CreateCategory(t, db, eventID, "VIP", "85.00", 3)
		first := testutil.CreateUser(t, db, "Ada", "ada@example.com")
		second := testutil.CreateUser(t, db, "Bob", "bob@example.com")

		booking, err := svc.CreateBooking(ctx, eventID, bookingRequest(first, ticket(vip, 2)))
		require.NoError(t, err)

		// 調整數量會清掉 Redis 計數，下一次預約重新預熱
		quantity := 3
		_, err = categorySvc.Update(ctx, vip, model.UpdateTicketCategoryRequest{QuantityAvailable: &quantity})
		require.NoError(t, err)

		_, err = svc.CreateBooking(ctx, eventID, bookingRequest(second, ticket(vip, 2)))
		assert.ErrorIs(t, err, apperrors.ErrInsufficientTickets)

		_, err = svc.CancelBooking(ctx, booking.ID, first)
		require.NoError(t, err)
		remaining, err := guard.Remaining(ctx, vip)
		require.NoError(t, err)
		assert.Equal(t, 3, remaining)
	})

	t.Run("FailedTransactionReleases", func(t *testing.T) {
		db := getTestDB(t)
		guard := getTestGuard(t)
		svc := newBookingService(db, guard, nil)
		eventID := testutil.CreateEvent(t, db, "Summit", 300, "0", false)
		vip := testutil.CreateCategory(t, db, eventID, "VIP", "85.00", 3)
		userID := testutil.CreateUser(t, db, "Ada", "ada@example.com")
		require.NoError(t, guard.WarmUp(ctx, vip, 3, 0))

		// 交易內的庫存檢查失敗（資料庫已售完，但 Redis 還有計數）
		holder := testutil.CreateUser(t, db, "Holder", "holder@example.com")
		bookingID := testutil.CreateBooking(t, db, eventID, holder, model.BookingStatusConfirmed)
		testutil.CreateItem(t, db, bookingID, vip, 3, "85.00")

		_, err := svc.CreateBooking(ctx, eventID, bookingRequest(userID, ticket(vip, 1)))
		require.ErrorIs(t, err, apperrors.ErrInsufficientTickets)

		remaining, err := guard.Remaining(ctx, vip)
		require.NoError(t, err)
		assert.Equal(t, 3, remaining)
	})
}

func TestBookingService_CreateBooking_InactiveCategoriesOnly(t *testing.T) {
	ctx := context.Background()
	db := getTestDB(t)
	svc := newBookingService(db, nil, nil)
	categoryRepo := repository.NewTicketCategoryRepository(db)
	eventID := testutil.CreateEvent(t, db, "Summit", 300, "0", true)
	general := testutil.CreateCategory(t, db, eventID, "General", "0.00", 100)
	userID := testutil.CreateUser(t, db, "Ada", "ada@example.com")

	inactive := false
	_, err := categoryRepo.Update(ctx, general, model.UpdateTicketCategoryParams{IsActive: &inactive})
	require.NoError(t, err)

	_, err = svc.CreateBooking(ctx, eventID, bookingRequest(userID))
	assert.ErrorIs(t, err, apperrors.ErrNoTicketsSelected)

	_, err = svc.CreateBooking(ctx, eventID, bookingRequest(userID, ticket(general, 1)))
	assert.ErrorIs(t, err, apperrors.ErrInsufficientTickets)
}

func TestBookingService_SaveTicketItem(t *testing.T) {
	ctx := context.Background()

	t.Run("PriceSnapshotVersusLivePrice", func(t *testing.T) {
		db := getTestDB(t)
		svc := newBookingService(db, nil, nil)
		categoryRepo := repository.NewTicketCategoryRepository(db)
		eventID := testutil.CreateEvent(t, db, "Summit", 300, "0", false)
		general := testutil.CreateCategory(t, db, eventID, "General", "20.00", 100)
		userID := testutil.CreateUser(t, db, "Ada", "ada@example.com")
		bookingID := testutil.CreateBooking(t, db, eventID, userID, model.BookingStatusPending)

		booking, err := svc.SaveTicketItem(ctx, bookingID, model.SaveTicketItemRequest{CategoryID: general, Quantity: 2})
		require.NoError(t, err)
		assertDecimal(t, "40", booking.TotalAmount)
		assert.Equal(t, 2, booking.AttendeesCount)

		newPrice := decimal.RequireFromString("30.00")
		_, err = categoryRepo.Update(ctx, general, model.UpdateTicketCategoryParams{Price: &newPrice})
		require.NoError(t, err)

		booking, err = svc.UpdateTotals(ctx, bookingID)
		require.NoError(t, err)

		// 票項小計維持鎖定價格，預約總額使用票種目前價格
		require.Len(t, booking.Items, 1)
		assertDecimal(t, "20", booking.Items[0].PricePerTicket)
		assertDecimal(t, "40", booking.Items[0].Subtotal())
		assertDecimal(t, "60", booking.TotalAmount)
		assertDecimal(t, "60", booking.Amount)
	})

	t.Run("UpdateQuantityKeepsLockedPrice", func(t *testing.T) {
		db := getTestDB(t)
		svc := newBookingService(db, nil, nil)
		categoryRepo := repository.NewTicketCategoryRepository(db)
		eventID := testutil.CreateEvent(t, db, "Summit", 300, "0", false)
		general := testutil.CreateCategory(t, db, eventID, "General", "20.00", 100)
		userID := testutil.CreateUser(t, db, "Ada", "ada@example.com")
		bookingID := testutil.CreateBooking(t, db, eventID, userID, model.BookingStatusPending)

		_, err := svc.SaveTicketItem(ctx, bookingID, model.SaveTicketItemRequest{CategoryID: general, Quantity: 1})
		require.NoError(t, err)

		newPrice := decimal.RequireFromString("25.00")
		_, err = categoryRepo.Update(ctx, general, model.UpdateTicketCategoryParams{Price: &newPrice})
		require.NoError(t, err)

		booking, err := svc.SaveTicketItem(ctx, bookingID, model.SaveTicketItemRequest{CategoryID: general, Quantity: 3})
		require.NoError(t, err)

		require.Len(t, booking.Items, 1)
		assert.Equal(t, 3, booking.Items[0].Quantity)
		assertDecimal(t, "20", booking.Items[0].PricePerTicket)
		assertDecimal(t, "75", booking.TotalAmount)
		assert.Equal(t, 3, booking.AttendeesCount)
	})

	t.Run("Failed - CategoryFromAnotherEvent", func(t *testing.T) {
		db := getTestDB(t)
		svc := newBookingService(db, nil, nil)
		eventID := testutil.CreateEvent(t, db, "Summit", 300, "0", false)
		otherEvent := testutil.CreateEvent(t, db, "Other", 300, "0", false)
		foreign := testutil.CreateCategory(t, db, otherEvent, "General", "10.00", 100)
		userID := testutil.CreateUser(t, db, "Ada", "ada@example.com")
		bookingID := testutil.CreateBooking(t, db, eventID, userID, model.BookingStatusPending)

		_, err := svc.SaveTicketItem(ctx, bookingID, model.SaveTicketItemRequest{CategoryID: foreign, Quantity: 1})
		assert.ErrorIs(t, err, apperrors.ErrCategoryEventMismatch)
	})

	t.Run("Failed - CancelledBooking", func(t *testing.T) {
		db := getTestDB(t)
		svc := newBookingService(db, nil, nil)
		eventID := testutil.CreateEvent(t, db, "Summit", 300, "0", false)
		general := testutil.CreateCategory(t, db, eventID, "General", "20.00", 100)
		userID := testutil.CreateUser(t, db, "Ada", "ada@example.com")
		bookingID := testutil.CreateBooking(t, db, eventID, userID, model.BookingStatusCancelled)

		_, err := svc.SaveTicketItem(ctx, bookingID, model.SaveTicketItemRequest{CategoryID: general, Quantity: 1})
		assert.ErrorIs(t, err, apperrors.ErrInvalidBookingStatus)
	})

	t.Run("Failed - TooManyTickets", func(t *testing.T) {
		db := getTestDB(t)
		svc := newBookingService(db, nil, nil)
		eventID := testutil.CreateEvent(t, db, "Summit", 300, "0", false)
		general := testutil.CreateCategory(t, db, eventID, "General", "20.00", 100)
		vip := testutil.CreateCategory(t, db, eventID, "VIP", "50.00", 100)
		userID := testutil.CreateUser(t, db, "Ada", "ada@example.com")
		bookingID := testutil.CreateBooking(t, db, eventID, userID, model.BookingStatusPending)
		testutil.CreateItem(t, db, bookingID, general, 5, "20.00")

		_, err := svc.SaveTicketItem(ctx, bookingID, model.SaveTicketItemRequest{CategoryID: vip, Quantity: 2})
		assert.ErrorIs(t, err, apperrors.ErrTooManyTickets)
	})
}

func TestBookingService_RemoveTicketItem(t *testing.T) {
	ctx := context.Background()
	db := getTestDB(t)
	svc := newBookingService(db, nil, nil)
	eventID := testutil.CreateEvent(t, db, "Summit", 300, "10.00", false)
	general := testutil.CreateCategory(t, db, eventID, "General", "35.00", 100)
	vip := testutil.CreateCategory(t, db, eventID, "VIP", "85.00", 100)
	userID := testutil.CreateUser(t, db, "Ada", "ada@example.com")

	booking, err := svc.CreateBooking(ctx, eventID, bookingRequest(userID, ticket(general, 1), ticket(vip, 1)))
	require.NoError(t, err)

	booking, err = svc.RemoveTicketItem(ctx, booking.ID, vip)
	require.NoError(t, err)
	assertDecimal(t, "35", booking.TotalAmount)
	assert.Equal(t, 1, booking.AttendeesCount)

	// 最後一個票項刪除後走單一票價路徑；金額不為 0，保留上一次的結果
	booking, err = svc.RemoveTicketItem(ctx, booking.ID, general)
	require.NoError(t, err)
	assert.Empty(t, booking.Items)
	assertDecimal(t, "35", booking.TotalAmount)
	assert.Equal(t, 1, booking.AttendeesCount)

	_, err = svc.RemoveTicketItem(ctx, booking.ID, general)
	assert.ErrorIs(t, err, apperrors.ErrBookingItemNotFound)
}

func TestBookingService_UpdateTotals(t *testing.T) {
	ctx := context.Background()

	t.Run("Idempotent", func(t *testing.T) {
		db := getTestDB(t)
		svc := newBookingService(db, nil, nil)
		eventID := testutil.CreateEvent(t, db, "Summit", 300, "0", false)
		general := testutil.CreateCategory(t, db, eventID, "General", "10.00", 100)
		vip := testutil.CreateCategory(t, db, eventID, "VIP", "25.00", 100)
		userID := testutil.CreateUser(t, db, "Ada", "ada@example.com")
		bookingID := testutil.CreateBooking(t, db, eventID, userID, model.BookingStatusPending)
		testutil.CreateItem(t, db, bookingID, general, 2, "10.00")
		testutil.CreateItem(t, db, bookingID, vip, 1, "25.00")

		for i := 0; i < 3; i++ {
			booking, err := svc.UpdateTotals(ctx, bookingID)
			require.NoError(t, err)
			assertDecimal(t, "45", booking.TotalAmount)
			assert.Equal(t, 3, booking.AttendeesCount)
		}
	})

	t.Run("FlatPriceDoesNotClobber", func(t *testing.T) {
		db := getTestDB(t)
		svc := newBookingService(db, nil, nil)
		eventID := testutil.CreateEvent(t, db, "Workshop", 10, "50.00", false)
		userID := testutil.CreateUser(t, db, "Ada", "ada@example.com")
		bookingID := testutil.CreateBooking(t, db, eventID, userID, model.BookingStatusPending)
		_, err := db.Exec(ctx, `UPDATE event_bookings SET amount = 100, total_amount = 100 WHERE id = $1`, bookingID)
		require.NoError(t, err)

		booking, err := svc.UpdateTotals(ctx, bookingID)
		require.NoError(t, err)

		assertDecimal(t, "100", booking.Amount)
		assertDecimal(t, "100", booking.TotalAmount)
	})

	t.Run("FlatPriceFromZero", func(t *testing.T) {
		db := getTestDB(t)
		svc := newBookingService(db, nil, nil)
		eventID := testutil.CreateEvent(t, db, "Workshop", 10, "50.00", false)
		userID := testutil.CreateUser(t, db, "Ada", "ada@example.com")
		bookingID := testutil.CreateBooking(t, db, eventID, userID, model.BookingStatusPending)

		booking, err := svc.UpdateTotals(ctx, bookingID)
		require.NoError(t, err)

		assertDecimal(t, "50", booking.Amount)
		assertDecimal(t, "50", booking.TotalAmount)
		assert.Equal(t, 1, booking.AttendeesCount)
	})

	t.Run("Failed - NotFound", func(t *testing.T) {
		db := getTestDB(t)
		svc := newBookingService(db, nil, nil)

		_, err := svc.UpdateTotals(ctx, 999)
		assert.ErrorIs(t, err, apperrors.ErrBookingNotFound)
	})
}

func TestBookingService_CancelBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db := getTestDB(t)
		q := &recordingQueue{}
		svc := newBookingService(db, nil, q)
		eventID := testutil.CreateEvent(t, db, "Meetup", 10, "0", true)
		userID := testutil.CreateUser(t, db, "Ada", "ada@example.com")
		booking, err := svc.CreateBooking(ctx, eventID, bookingRequest(userID))
		require.NoError(t, err)

		cancelled, err := svc.CancelBooking(ctx, booking.ID, userID)
		require.NoError(t, err)
		assert.Equal(t, model.BookingStatusCancelled, cancelled.Status)

		events := q.Events()
		require.Len(t, events, 2)
		assert.Equal(t, model.BookingEventStatusChanged, events[1].Type)
		assert.Equal(t, model.BookingStatusConfirmed, events[1].PreviousStatus)
		assert.Equal(t, model.BookingStatusCancelled, events[1].Status)
	})

	t.Run("Failed - AlreadyCancelled", func(t *testing.T) {
		db := getTestDB(t)
		svc := newBookingService(db, nil, nil)
		eventID := testutil.CreateEvent(t, db, "Meetup", 10, "0", true)
		userID := testutil.CreateUser(t, db, "Ada", "ada@example.com")
		bookingID := testutil.CreateBooking(t, db, eventID, userID, model.BookingStatusCancelled)

		_, err := svc.CancelBooking(ctx, bookingID, userID)
		assert.ErrorIs(t, err, apperrors.ErrCannotCancel)
	})

	t.Run("Failed - EventStarted", func(t *testing.T) {
		db := getTestDB(t)
		svc := newBookingService(db, nil, nil)
		eventID := testutil.CreateEvent(t, db, "Meetup", 10, "0", true)
		setEventColumn(t, db, eventID, "start_date", time.Now().Add(-time.Hour))
		userID := testutil.CreateUser(t, db, "Ada", "ada@example.com")
		bookingID := testutil.CreateBooking(t, db, eventID, userID, model.BookingStatusConfirmed)

		_, err := svc.CancelBooking(ctx, bookingID, userID)
		assert.ErrorIs(t, err, apperrors.ErrCannotCancel)
	})

	t.Run("Failed - NotOwner", func(t *testing.T) {
		db := getTestDB(t)
		svc := newBookingService(db, nil, nil)
		eventID := testutil.CreateEvent(t, db, "Meetup", 10, "0", true)
		userID := testutil.CreateUser(t, db, "Ada", "ada@example.com")
		otherID := testutil.CreateUser(t, db, "Bob", "bob@example.com")
		bookingID := testutil.CreateBooking(t, db, eventID, userID, model.BookingStatusConfirmed)

		_, err := svc.CancelBooking(ctx, bookingID, otherID)
		assert.ErrorIs(t, err, apperrors.ErrBookingNotFound)
	})
}

func TestBookingService_UpdatePaymentStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("CompletedConfirmsPendingBooking", func(t *testing.T) {
		db := getTestDB(t)
		q := &recordingQueue{}
		svc := newBookingService(db, nil, q)
		eventID := testutil.CreateEvent(t, db, "Workshop", 10, "50.00", false)
		userID := testutil.CreateUser(t, db, "Ada", "ada@example.com")
		booking, err := svc.CreateBooking(ctx, eventID, bookingRequest(userID))
		require.NoError(t, err)

		updated, err := svc.UpdatePaymentStatus(ctx, booking.ID, model.UpdatePaymentRequest{PaymentStatus: model.PaymentStatusCompleted})
		require.NoError(t, err)

		assert.Equal(t, model.BookingStatusConfirmed, updated.Status)
		assert.Equal(t, model.PaymentStatusCompleted, updated.PaymentStatus)
		assertDecimal(t, "50", updated.TotalAmount)

		events := q.Events()
		require.Len(t, events, 2)
		assert.Equal(t, model.BookingEventStatusChanged, events[1].Type)
		assert.Equal(t, model.PaymentStatusPending, events[1].PreviousPaymentStatus)
	})

	t.Run("PaymentOnlyChange", func(t *testing.T) {
		db := getTestDB(t)
		q := &recordingQueue{}
		svc := newBookingService(db, nil, q)
		eventID := testutil.CreateEvent(t, db, "Workshop", 10, "50.00", false)
		userID := testutil.CreateUser(t, db, "Ada", "ada@example.com")
		bookingID := testutil.CreateBooking(t, db, eventID, userID, model.BookingStatusPending)

		updated, err := svc.UpdatePaymentStatus(ctx, bookingID, model.UpdatePaymentRequest{PaymentStatus: model.PaymentStatusFailed})
		require.NoError(t, err)

		assert.Equal(t, model.BookingStatusPending, updated.Status)
		events := q.Events()
		require.Len(t, events, 1)
		assert.Equal(t, model.BookingEventPaymentChanged, events[0].Type)
	})

	t.Run("Failed - InvalidTransition", func(t *testing.T) {
		db := getTestDB(t)
		svc := newBookingService(db, nil, nil)
		eventID := testutil.CreateEvent(t, db, "Workshop", 10, "50.00", false)
		userID := testutil.CreateUser(t, db, "Ada", "ada@example.com")
		bookingID := testutil.CreateBooking(t, db, eventID, userID, model.BookingStatusCancelled)
		confirmed := model.BookingStatusConfirmed

		_, err := svc.UpdatePaymentStatus(ctx, bookingID, model.UpdatePaymentRequest{
			PaymentStatus: model.PaymentStatusCompleted,
			Status:        &confirmed,
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidBookingStatus)
	})
}

func TestBookingService_MarkAttendance(t *testing.T) {
	ctx := context.Background()
	db := getTestDB(t)
	svc := newBookingService(db, nil, nil)
	eventID := testutil.CreateEvent(t, db, "Meetup", 10, "0", true)
	userID := testutil.CreateUser(t, db, "Ada", "ada@example.com")
	otherID := testutil.CreateUser(t, db, "Bob", "bob@example.com")
	attendedID := testutil.CreateBooking(t, db, eventID, userID, model.BookingStatusConfirmed)
	pendingID := testutil.CreateBooking(t, db, eventID, otherID, model.BookingStatusPending)

	booking, err := svc.MarkAttendance(ctx, attendedID, true)
	require.NoError(t, err)
	assert.Equal(t, model.BookingStatusAttended, booking.Status)

	_, err = svc.MarkAttendance(ctx, pendingID, false)
	assert.ErrorIs(t, err, apperrors.ErrInvalidBookingStatus)
}

func TestBookingService_Lists(t *testing.T) {
	ctx := context.Background()
	db := getTestDB(t)
	svc := newBookingService(db, nil, nil)
	eventID := testutil.CreateEvent(t, db, "Meetup", 10, "0", true)
	userID := testutil.CreateUser(t, db, "Ada", "ada@example.com")
	testutil.CreateBooking(t, db, eventID, userID, model.BookingStatusConfirmed)

	byUser, err := svc.ListByUser(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, byUser, 1)

	byEvent, err := svc.ListByEvent(ctx, eventID)
	require.NoError(t, err)
	assert.Len(t, byEvent, 1)

	_, err = svc.ListByUser(ctx, 999)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
