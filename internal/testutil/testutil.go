// Package testutil 整合測試共用的連線與測試資料
package testutil

import (
	"context"
	"fmt"
	"log"
	"testing"
	"time"

	"eventease-booking/config"
	"eventease-booking/internal/database"
	"eventease-booking/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// SetupDB 連接測試資料庫並執行 migrations
func SetupDB() (*pgxpool.Pool, func(), error) {
	cfg := config.LoadTestConfig()

	testDB, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize test database: %w", err)
	}

	if cfg.Database.MigrateOnStart {
		if err := database.Migrate(testDB); err != nil {
			testDB.Close()
			return nil, nil, fmt.Errorf("failed to migrate test database: %w", err)
		}
	}

	log.Println("Test database connected successfully")

	cleanup := func() {
		testDB.Close()
		log.Println("Test database closed")
	}
	return testDB, cleanup, nil
}

// SetupRedisOnly 僅初始化 Redis，用於只依賴 Redis 的測試（如 queue 整合測試）
func SetupRedisOnly() (*redis.Client, func(), error) {
	cfg := config.LoadTestConfig()
	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize redis: %w", err)
	}
	cleanup := func() { rdb.Close() }
	return rdb, cleanup, nil
}

// Truncate 清空所有測試資料，保留 schema
func Truncate(t *testing.T, db *pgxpool.Pool) {
	t.Helper()
	_, err := db.Exec(context.Background(),
		"TRUNCATE booking_ticket_items, event_bookings, ticket_categories, events, users RESTART IDENTITY CASCADE")
	if err != nil {
		t.Fatalf("Failed to truncate tables: %v", err)
	}
}

func CreateUser(t *testing.T, db *pgxpool.Pool, name, email string) int {
	t.Helper()

	var id int
	err := db.QueryRow(context.Background(),
		`INSERT INTO users (name, email) VALUES ($1, $2) RETURNING id`, name, email,
	).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return id
}

// CreateEvent 建立一天後開始的活動
func CreateEvent(t *testing.T, db *pgxpool.Pool, title string, maxAttendees int, ticketPrice string, isFree bool) int {
	t.Helper()

	start := time.Now().UTC().Add(24 * time.Hour)
	var id int
	err := db.QueryRow(context.Background(), `
		INSERT INTO events (title, start_date, end_date, max_attendees, ticket_price, is_free)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		title, start, start.Add(2*time.Hour), maxAttendees, decimal.RequireFromString(ticketPrice), isFree,
	).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test event: %v", err)
	}
	return id
}

func CreateCategory(t *testing.T, db *pgxpool.Pool, eventID int, name, price string, quantity int) int {
	t.Helper()

	var id int
	err := db.QueryRow(context.Background(), `
		INSERT INTO ticket_categories (event_id, name, price, quantity_available)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		eventID, name, decimal.RequireFromString(price), quantity,
	).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test ticket category: %v", err)
	}
	return id
}

func CreateBooking(t *testing.T, db *pgxpool.Pool, eventID, userID int, status model.BookingStatus) int {
	t.Helper()

	var id int
	err := db.QueryRow(context.Background(), `
		INSERT INTO event_bookings (event_id, user_id, status, attendees_count)
		VALUES ($1, $2, $3, 0)
		RETURNING id`,
		eventID, userID, status,
	).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test booking: %v", err)
	}
	return id
}

func CreateItem(t *testing.T, db *pgxpool.Pool, bookingID, categoryID, quantity int, price string) int {
	t.Helper()

	var id int
	err := db.QueryRow(context.Background(), `
		INSERT INTO booking_ticket_items (booking_id, ticket_category_id, quantity, price_per_ticket)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		bookingID, categoryID, quantity, decimal.RequireFromString(price),
	).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test booking item: %v", err)
	}
	return id
}
