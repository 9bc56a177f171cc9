package repository_test

import (
	"context"
	"testing"

	"eventease-booking/internal/model"
	"eventease-booking/internal/repository"
	"eventease-booking/internal/testutil"
	apperrors "eventease-booking/pkg/app_errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketCategoryRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db := getTestDB(t)
		repo := repository.NewTicketCategoryRepository(db)
		eventID := testutil.CreateEvent(t, db, "Conf", 100, "0", true)

		tx := beginTx(t, db)
		created, err := repo.Create(ctx, tx, &model.TicketCategory{
			EventID:           eventID,
			Name:              "VIP",
			CategoryType:      model.CategoryTypeVIP,
			Price:             decimal.RequireFromString("85.00"),
			QuantityAvailable: 20,
			IsActive:          true,
		})
		require.NoError(t, err)
		commit(t, tx)

		assert.NotZero(t, created.ID)
		assert.Equal(t, model.CategoryTypeVIP, created.CategoryType)
	})

	t.Run("DuplicateNameInEvent", func(t *testing.T) {
		db := getTestDB(t)
		repo := repository.NewTicketCategoryRepository(db)
		eventID := testutil.CreateEvent(t, db, "Conf", 100, "0", true)
		testutil.CreateCategory(t, db, eventID, "General", "35.00", 100)

		tx := beginTx(t, db)
		_, err := repo.Create(ctx, tx, &model.TicketCategory{
			EventID:      eventID,
			Name:         "General",
			CategoryType: model.CategoryTypeGeneral,
			Price:        decimal.RequireFromString("10.00"),
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrDuplicateCategory)
	})

	t.Run("SameNameOtherEvent", func(t *testing.T) {
		db := getTestDB(t)
		repo := repository.NewTicketCategoryRepository(db)
		first := testutil.CreateEvent(t, db, "One", 100, "0", true)
		second := testutil.CreateEvent(t, db, "Two", 100, "0", true)
		testutil.CreateCategory(t, db, first, "General", "35.00", 100)

		tx := beginTx(t, db)
		_, err := repo.Create(ctx, tx, &model.TicketCategory{
			EventID:      second,
			Name:         "General",
			CategoryType: model.CategoryTypeGeneral,
		})

		assert.NoError(t, err)
	})
}

func TestTicketCategoryRepository_ListByEventID(t *testing.T) {
	ctx := context.Background()
	db := getTestDB(t)
	repo := repository.NewTicketCategoryRepository(db)
	eventID := testutil.CreateEvent(t, db, "Conf", 100, "0", true)
	testutil.CreateCategory(t, db, eventID, "VIP", "85.00", 10)
	generalID := testutil.CreateCategory(t, db, eventID, "General", "35.00", 100)
	_, err := db.Exec(ctx, `UPDATE ticket_categories SET is_active = FALSE WHERE id = $1`, generalID)
	require.NoError(t, err)

	all, err := repo.ListByEventID(ctx, eventID, false)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "General", all[0].Name)

	active, err := repo.ListByEventID(ctx, eventID, true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "VIP", active[0].Name)
}

func TestTicketCategoryRepository_TicketsSold(t *testing.T) {
	ctx := context.Background()
	db := getTestDB(t)
	repo := repository.NewTicketCategoryRepository(db)
	eventID := testutil.CreateEvent(t, db, "Conf", 100, "0", false)
	categoryID := testutil.CreateCategory(t, db, eventID, "General", "35.00", 5)
	otherID := testutil.CreateCategory(t, db, eventID, "VIP", "85.00", 5)

	add := func(email string, status model.BookingStatus, quantity int) {
		userID := testutil.CreateUser(t, db, "User", email)
		bookingID := testutil.CreateBooking(t, db, eventID, userID, status)
		testutil.CreateItem(t, db, bookingID, categoryID, quantity, "35.00")
	}
	add("a@example.com", model.BookingStatusConfirmed, 3)
	add("b@example.com", model.BookingStatusPaid, 4)
	add("c@example.com", model.BookingStatusPending, 2)
	add("d@example.com", model.BookingStatusCancelled, 1)

	sold, err := repo.TicketsSold(ctx, db, categoryID)
	require.NoError(t, err)
	assert.Equal(t, 7, sold)

	category, err := repo.FindByID(ctx, categoryID)
	require.NoError(t, err)
	assert.Equal(t, 0, category.TicketsAvailable(sold))
	assert.True(t, category.IsSoldOut(sold))

	byEvent, err := repo.TicketsSoldByEvent(ctx, eventID)
	require.NoError(t, err)
	assert.Equal(t, 7, byEvent[categoryID])
	assert.Equal(t, 0, byEvent[otherID])

	held, err := repo.TicketsHeld(ctx, db, categoryID)
	require.NoError(t, err)
	assert.Equal(t, 9, held)

	heldByEvent, err := repo.TicketsHeldByEvent(ctx, eventID)
	require.NoError(t, err)
	assert.Equal(t, 9, heldByEvent[categoryID])
	assert.Equal(t, 0, heldByEvent[otherID])
}

func TestTicketCategoryRepository_Update(t *testing.T) {
	ctx := context.Background()
	db := getTestDB(t)
	repo := repository.NewTicketCategoryRepository(db)
	eventID := testutil.CreateEvent(t, db, "Conf", 100, "0", false)
	categoryID := testutil.CreateCategory(t, db, eventID, "General", "20.00", 100)

	price := decimal.RequireFromString("30.00")
	updated, err := repo.Update(ctx, categoryID, model.UpdateTicketCategoryParams{Price: &price})

	require.NoError(t, err)
	assert.True(t, updated.Price.Equal(price))

	_, err = repo.Update(ctx, 99999, model.UpdateTicketCategoryParams{Price: &price})
	assert.ErrorIs(t, err, apperrors.ErrTicketCategoryNotFound)
}
