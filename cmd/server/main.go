package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"eventease-booking/config"
	"eventease-booking/internal/cache"
	"eventease-booking/internal/database"
	"eventease-booking/internal/handler"
	"eventease-booking/internal/notify"
	"eventease-booking/internal/queue"
	"eventease-booking/internal/repository"
	"eventease-booking/internal/service"
	"eventease-booking/internal/worker"
	"eventease-booking/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	log := logger.WithComponent("main")

	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using environment variables")
	}

	cfg := config.LoadConfig()
	logger.SetLevel(cfg.Server.LogLevel)
	gin.SetMode(cfg.Server.GinMode)

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := database.Migrate(pool); err != nil {
			log.Fatal("Failed to run migrations", zap.Error(err))
		}
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatal("Failed to initialize redis", zap.Error(err))
	}
	defer rdb.Close()

	eventQueue, closeQueue, err := newBookingEventQueue(&cfg.Queue, rdb)
	if err != nil {
		log.Fatal("Failed to initialize booking event queue", zap.Error(err))
	}
	defer closeQueue()

	// 未啟用時保持 nil interface，服務層以此判斷是否預扣
	var guard cache.TicketInventoryGuard
	if cfg.Booking.InventoryGuard {
		guard = cache.NewRedisTicketInventoryGuard(rdb)
	}

	eventRepo := repository.NewEventRepository(pool)
	categoryRepo := repository.NewTicketCategoryRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	itemRepo := repository.NewBookingItemRepository()
	userRepo := repository.NewUserRepository(pool)

	eventService := service.NewEventService(pool, eventRepo, categoryRepo, guard)
	categoryService := service.NewTicketCategoryService(pool, categoryRepo, eventRepo, guard)
	userService := service.NewUserService(userRepo)
	bookingService := service.NewBookingService(
		pool, bookingRepo, itemRepo, categoryRepo, eventRepo, userRepo,
		guard, eventQueue, cfg.Booking.MaxTicketsPerBooking,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	notificationWorker := worker.NewNotificationWorker(notify.NewLogNotifier(), eventQueue)
	if err := notificationWorker.Start(ctx); err != nil {
		log.Fatal("Failed to start notification worker", zap.Error(err))
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
	handler.NewEventHandler(eventService).RegisterRoutes(router)
	handler.NewTicketCategoryHandler(categoryService).RegisterRoutes(router)
	handler.NewUserHandler(userService).RegisterRoutes(router)
	handler.NewBookingHandler(bookingService).RegisterRoutes(router)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		log.Info("HTTP server starting", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP server stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown failed", zap.Error(err))
	}

	select {
	case <-notificationWorker.Done():
	case <-shutdownCtx.Done():
		log.Warn("notification worker did not drain before timeout")
	}
}

// newBookingEventQueue 依設定選擇隊列實作，回傳的 close 函式在結束時釋放連線
func newBookingEventQueue(cfg *config.QueueConfig, rdb *redis.Client) (queue.BookingEventQueue, func(), error) {
	noop := func() {}

	switch cfg.Backend {
	case config.QueueBackendMemory:
		return queue.NewMemoryBookingEventQueue(cfg.BufferSize), noop, nil
	case config.QueueBackendRedis:
		q, err := queue.NewRedisStreamBookingEventQueue(rdb, "", &queue.RedisStreamConfig{
			ClaimMinIdleTime: cfg.RetryDelay,
			MaxRetryCount:    cfg.MaxRetryCount,
		})
		if err != nil {
			return nil, nil, err
		}
		return q, noop, nil
	case config.QueueBackendAMQP:
		q, err := queue.NewAMQPBookingEventQueue(cfg.AMQPURL, &queue.AMQPConfig{
			MaxRetryCount: cfg.MaxRetryCount,
			RetryDelay:    cfg.RetryDelay,
		})
		if err != nil {
			return nil, nil, err
		}
		return q, func() { _ = q.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown queue backend %q", cfg.Backend)
	}
}
