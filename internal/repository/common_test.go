package repository_test

import (
	"context"
	"log"
	"os"
	"testing"

	"eventease-booking/internal/testutil"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// testDB 是測試用的資料庫連接池，連不上時整個套件的測試會被略過
var testDB *pgxpool.Pool

func TestMain(m *testing.M) {
	db, cleanup, err := testutil.SetupDB()
	if err != nil {
		log.Printf("Skipping repository tests: %v", err)
	} else {
		testDB = db
		log.Println("Running repository tests...")
	}

	code := m.Run()
	if cleanup != nil {
		cleanup()
	}
	os.Exit(code)
}

// getTestDB 返回測試用的資料庫連接池並清空資料
func getTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testDB == nil {
		t.Skip("test database is not available")
	}
	testutil.Truncate(t, testDB)
	return testDB
}

// beginTx 開始一個測試用的 transaction，測試結束時 rollback
func beginTx(t *testing.T, db *pgxpool.Pool) pgx.Tx {
	t.Helper()
	ctx := context.Background()

	tx, err := db.Begin(ctx)
	if err != nil {
		t.Fatalf("Failed to begin transaction: %v", err)
	}
	t.Cleanup(func() {
		_ = tx.Rollback(ctx)
	})
	return tx
}

func commit(t *testing.T, tx pgx.Tx) {
	t.Helper()
	if err := tx.Commit(context.Background()); err != nil {
		t.Fatalf("Failed to commit transaction: %v", err)
	}
}
