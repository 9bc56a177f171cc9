package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"sync"
	"testing"
	"time"

	"eventease-booking/internal/cache"
	"eventease-booking/internal/handler"
	"eventease-booking/internal/model"
	"eventease-booking/internal/queue"
	"eventease-booking/internal/repository"
	"eventease-booking/internal/service"
	"eventease-booking/internal/testutil"
	"eventease-booking/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testDB  *pgxpool.Pool
	testRdb *redis.Client
)

func TestMain(m *testing.M) {
	db, dbCleanup, err := testutil.SetupDB()
	if err != nil {
		log.Printf("Skipping integration tests: %v", err)
		os.Exit(0)
	}
	rdb, redisCleanup, err := testutil.SetupRedisOnly()
	if err != nil {
		dbCleanup()
		log.Printf("Skipping integration tests: %v", err)
		os.Exit(0)
	}
	testDB = db
	testRdb = rdb

	code := m.Run()
	redisCleanup()
	dbCleanup()
	os.Exit(code)
}

type failingQueue struct{}

func (f *failingQueue) Publish(ctx context.Context, event *model.BookingEvent) error {
	return errors.New("queue publish failed") // 總是返回錯誤
}

func (f *failingQueue) Subscribe(ctx context.Context) (<-chan queue.Delivery, error) {
	out := make(chan queue.Delivery)
	close(out) // 返回一個已關閉的 channel
	return out, nil
}

// recordingNotifier 收集 worker 轉交的事件
type recordingNotifier struct {
	mu     sync.Mutex
	events []*model.BookingEvent
}

func (n *recordingNotifier) Notify(ctx context.Context, event *model.BookingEvent) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
	return nil
}

func (n *recordingNotifier) Types() []model.BookingEventType {
	n.mu.Lock()
	defer n.mu.Unlock()
	types := make([]model.BookingEventType, 0, len(n.events))
	for _, e := range n.events {
		types = append(types, e.Type)
	}
	return types
}

func setupIntegrationTest(t *testing.T, useFailingQueue bool) (*gin.Engine, *recordingNotifier) {
	t.Helper()
	ctx := context.Background()

	// 清空資料庫和 Redis
	testutil.Truncate(t, testDB)
	require.NoError(t, testRdb.FlushDB(ctx).Err())

	eventRepo := repository.NewEventRepository(testDB)
	categoryRepo := repository.NewTicketCategoryRepository(testDB)
	bookingRepo := repository.NewBookingRepository(testDB)
	userRepo := repository.NewUserRepository(testDB)
	guard := cache.NewRedisTicketInventoryGuard(testRdb)

	notifier := &recordingNotifier{}
	var eventQueue queue.BookingEventQueue
	if useFailingQueue {
		eventQueue = &failingQueue{}
	} else {
		eventQueue = queue.NewMemoryBookingEventQueue(100)

		workerCtx, cancel := context.WithCancel(context.Background())
		notificationWorker := worker.NewNotificationWorker(notifier, eventQueue)
		require.NoError(t, notificationWorker.Start(workerCtx))
		t.Cleanup(func() {
			cancel()
			<-notificationWorker.Done()
		})
	}

	bookingService := service.NewBookingService(
		testDB, bookingRepo, repository.NewBookingItemRepository(), categoryRepo, eventRepo, userRepo,
		guard, eventQueue, 6,
	)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler.NewEventHandler(service.NewEventService(testDB, eventRepo, categoryRepo, guard)).RegisterRoutes(router)
	handler.NewTicketCategoryHandler(service.NewTicketCategoryService(testDB, categoryRepo, eventRepo, guard)).RegisterRoutes(router)
	handler.NewUserHandler(service.NewUserService(userRepo)).RegisterRoutes(router)
	handler.NewBookingHandler(bookingService).RegisterRoutes(router)

	return router, notifier
}

func doJSON(t *testing.T, router *gin.Engine, method, url string, body interface{}, out interface{}) int {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if out != nil && w.Code < 300 && w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
	}
	return w.Code
}

type idResponse struct {
	ID int `json:"id"`
}

type bookingResponse struct {
	ID             int                `json:"id"`
	Status         string             `json:"status"`
	PaymentStatus  string             `json:"payment_status"`
	AttendeesCount int                `json:"attendees_count"`
	TotalAmount    string             `json:"total_amount"`
	Items          []itemResponseBody `json:"items"`
	TotalTickets   int                `json:"total_tickets"`
}

type itemResponseBody struct {
	TicketCategoryID int    `json:"ticket_category_id"`
	Quantity         int    `json:"quantity"`
	PricePerTicket   string `json:"price_per_ticket"`
}

func seedEvent(t *testing.T, router *gin.Engine, maxAttendees int, price string) int {
	t.Helper()
	start := time.Now().Add(72 * time.Hour).UTC()
	var event idResponse
	code := doJSON(t, router, "POST", "/api/v1/events", map[string]interface{}{
		"title":         "Summit",
		"start_date":    start.Format(time.RFC3339),
		"end_date":      start.Add(6 * time.Hour).Format(time.RFC3339),
		"max_attendees": maxAttendees,
		"ticket_price":  price,
	}, &event)
	require.Equal(t, http.StatusCreated, code)
	return event.ID
}

func seedCategory(t *testing.T, router *gin.Engine, eventID int, name, price string, quantity int) int {
	t.Helper()
	var category idResponse
	code := doJSON(t, router, "POST", "/api/v1/events/"+strconv.Itoa(eventID)+"/categories", map[string]interface{}{
		"name":               name,
		"price":              price,
		"quantity_available": quantity,
	}, &category)
	require.Equal(t, http.StatusCreated, code)
	return category.ID
}

func seedUser(t *testing.T, router *gin.Engine, email string) int {
	t.Helper()
	var user idResponse
	code := doJSON(t, router, "POST", "/api/v1/users", map[string]string{"name": "Guest", "email": email}, &user)
	require.Equal(t, http.StatusCreated, code)
	return user.ID
}

func bookingBody(userID int, tickets ...map[string]int) map[string]interface{} {
	return map[string]interface{}{
		"user_id":        userID,
		"attendee_name":  "Guest",
		"attendee_email": "guest@example.com",
		"attendee_phone": "0912345678",
		"tickets":        tickets,
	}
}

func TestBookingFlow(t *testing.T) {
	router, notifier := setupIntegrationTest(t, false)

	eventID := seedEvent(t, router, 100, "0")
	general := seedCategory(t, router, eventID, "General", "35.00", 10)
	vip := seedCategory(t, router, eventID, "VIP", "85.00", 2)
	userID := seedUser(t, router, "guest@example.com")

	require.Equal(t, http.StatusNoContent, doJSON(t, router, "POST", "/api/v1/events/"+strconv.Itoa(eventID)+"/open-for-sale", nil, nil))

	// 建立預約：General 35 + VIP 85
	var booking bookingResponse
	code := doJSON(t, router, "POST", "/api/v1/events/"+strconv.Itoa(eventID)+"/bookings",
		bookingBody(userID, map[string]int{"category_id": general, "quantity": 1}, map[string]int{"category_id": vip, "quantity": 1}),
		&booking)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "120", booking.TotalAmount)
	assert.Equal(t, 2, booking.AttendeesCount)
	assert.Equal(t, "pending", booking.Status)
	assert.Len(t, booking.Items, 2)

	bookingURL := "/api/v1/bookings/" + strconv.Itoa(booking.ID)

	// VIP 只剩 1 張，增加到 3 張應失敗
	code = doJSON(t, router, "PUT", bookingURL+"/items", map[string]int{"category_id": vip, "quantity": 3}, nil)
	assert.Equal(t, http.StatusConflict, code)

	// General 改為 2 張
	code = doJSON(t, router, "PUT", bookingURL+"/items", map[string]int{"category_id": general, "quantity": 2}, &booking)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "155", booking.TotalAmount)
	assert.Equal(t, 3, booking.AttendeesCount)

	// 重算為冪等
	code = doJSON(t, router, "POST", bookingURL+"/recompute", nil, &booking)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "155", booking.TotalAmount)

	// 付款完成後預約確認
	code = doJSON(t, router, "PUT", bookingURL+"/payment", map[string]string{"payment_status": "completed"}, &booking)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "confirmed", booking.Status)
	assert.Equal(t, "completed", booking.PaymentStatus)

	// 列表也帶出票項與總票數
	var listed []bookingResponse
	code = doJSON(t, router, "GET", "/api/v1/users/"+strconv.Itoa(userID)+"/bookings", nil, &listed)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, listed, 1)
	assert.Len(t, listed[0].Items, 2)
	assert.Equal(t, 3, listed[0].TotalTickets)

	code = doJSON(t, router, "GET", "/api/v1/events/"+strconv.Itoa(eventID)+"/bookings", nil, &listed)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, listed, 1)
	assert.Equal(t, 3, listed[0].TotalTickets)

	var availability model.EventAvailability
	code = doJSON(t, router, "GET", "/api/v1/events/"+strconv.Itoa(eventID)+"/availability", nil, &availability)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 1, availability.CurrentAttendees)
	assert.Equal(t, 99, availability.AvailableSpots)
	assert.Equal(t, 3, availability.RegisteredCount)

	// 非本人取消視為找不到
	code = doJSON(t, router, "PUT", bookingURL+"/cancel", map[string]int{"user_id": userID + 1}, nil)
	assert.Equal(t, http.StatusNotFound, code)

	code = doJSON(t, router, "PUT", bookingURL+"/cancel", map[string]int{"user_id": userID}, &booking)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "cancelled", booking.Status)

	assert.Eventually(t, func() bool {
		return len(notifier.Types()) == 3
	}, 2*time.Second, 20*time.Millisecond)
	assert.Equal(t, []model.BookingEventType{
		model.BookingEventCreated,
		model.BookingEventStatusChanged,
		model.BookingEventStatusChanged,
	}, notifier.Types())
}

func TestBookingFlow_DuplicateBooking(t *testing.T) {
	router, _ := setupIntegrationTest(t, false)

	eventID := seedEvent(t, router, 100, "20.00")
	userID := seedUser(t, router, "guest@example.com")

	var booking bookingResponse
	code := doJSON(t, router, "POST", "/api/v1/events/"+strconv.Itoa(eventID)+"/bookings", bookingBody(userID), &booking)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "20", booking.TotalAmount)

	code = doJSON(t, router, "POST", "/api/v1/events/"+strconv.Itoa(eventID)+"/bookings", bookingBody(userID), nil)
	assert.Equal(t, http.StatusConflict, code)
}

func TestBookingFlow_PublishFailureDoesNotFailBooking(t *testing.T) {
	router, _ := setupIntegrationTest(t, true)

	eventID := seedEvent(t, router, 100, "0")
	general := seedCategory(t, router, eventID, "General", "35.00", 10)
	userID := seedUser(t, router, "guest@example.com")

	var booking bookingResponse
	code := doJSON(t, router, "POST", "/api/v1/events/"+strconv.Itoa(eventID)+"/bookings",
		bookingBody(userID, map[string]int{"category_id": general, "quantity": 2}), &booking)

	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "70", booking.TotalAmount)

	var fetched bookingResponse
	require.Equal(t, http.StatusOK, doJSON(t, router, "GET", "/api/v1/bookings/"+strconv.Itoa(booking.ID), nil, &fetched))
	assert.Equal(t, booking.ID, fetched.ID)
}

func TestBookingFlow_ConcurrentRequestsDoNotOversell(t *testing.T) {
	router, _ := setupIntegrationTest(t, false)

	eventID := seedEvent(t, router, 100, "0")
	vip := seedCategory(t, router, eventID, "VIP", "85.00", 3)
	require.Equal(t, http.StatusNoContent, doJSON(t, router, "POST", "/api/v1/events/"+strconv.Itoa(eventID)+"/open-for-sale", nil, nil))

	const buyers = 12
	userIDs := make([]int, buyers)
	for i := range userIDs {
		userIDs[i] = seedUser(t, router, "buyer"+strconv.Itoa(i)+"@example.com")
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for _, userID := range userIDs {
		wg.Add(1)
		go func(userID int) {
			defer wg.Done()
			code := doJSON(t, router, "POST", "/api/v1/events/"+strconv.Itoa(eventID)+"/bookings",
				bookingBody(userID, map[string]int{"category_id": vip, "quantity": 1}), nil)
			if code == http.StatusCreated {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}(userID)
	}
	wg.Wait()

	// 預約仍為 pending，由 Redis 預扣擋下超賣
	assert.Equal(t, 3, succeeded)
}
