package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"eventease-booking/internal/model"
	"eventease-booking/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	StreamKey           = "bookings:events"
	DeadLetterStreamKey = "bookings:events:dead"
	ConsumerGroupName   = "notification-workers"
	ConsumerNamePrefix  = "worker"

	eventField     = "event"
	eventIDField   = "event_id"
	eventTypeField = "type"
	bookingIDField = "booking_id"
	reasonField    = "reason"

	processedKeyPrefix = "bookings:events:processed:"
)

// RedisStreamConfig 零值欄位使用預設
type RedisStreamConfig struct {
	ClaimMinIdleTime   time.Duration // PEL 中閒置超過此時間才由 XAUTOCLAIM 領回重送
	MaxRetryCount      int           // 同一事件最多投遞次數，之後改送死信 stream
	ReadGroupBlockTime time.Duration
	MaxLen             int64         // stream 近似長度上限
	ProcessedTTL       time.Duration // 已處理事件 ID 的保留時間，用來略過重複投遞
}

func defaultRedisStreamConfig() RedisStreamConfig {
	return RedisStreamConfig{
		ClaimMinIdleTime:   5 * time.Second,
		MaxRetryCount:      5,
		ReadGroupBlockTime: 2 * time.Second,
		MaxLen:             100000,
		ProcessedTTL:       24 * time.Hour,
	}
}

// RedisStreamBookingEventQueue Redis Stream 版 BookingEventQueue：
// consumer group 提供至少一次投遞，再以事件 ID 去重，避免同一事件通知兩次。
type RedisStreamBookingEventQueue struct {
	client       *redis.Client
	consumerName string
	cfg          RedisStreamConfig
	log          *zap.Logger
}

func NewRedisStreamBookingEventQueue(client *redis.Client, consumerID string, config *RedisStreamConfig) (BookingEventQueue, error) {
	if consumerID == "" {
		consumerID = uuid.New().String()
	}
	cfg := defaultRedisStreamConfig()
	if config != nil {
		if config.ClaimMinIdleTime > 0 {
			cfg.ClaimMinIdleTime = config.ClaimMinIdleTime
		}
		if config.MaxRetryCount > 0 {
			cfg.MaxRetryCount = config.MaxRetryCount
		}
		if config.ReadGroupBlockTime > 0 {
			cfg.ReadGroupBlockTime = config.ReadGroupBlockTime
		}
		if config.MaxLen > 0 {
			cfg.MaxLen = config.MaxLen
		}
		if config.ProcessedTTL > 0 {
			cfg.ProcessedTTL = config.ProcessedTTL
		}
	}

	q := &RedisStreamBookingEventQueue{
		client:       client,
		consumerName: ConsumerNamePrefix + ":" + consumerID,
		cfg:          cfg,
		log:          logger.WithComponent("mq"),
	}

	err := client.XGroupCreateMkStream(context.Background(), StreamKey, ConsumerGroupName, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return nil, fmt.Errorf("ensure consumer group: %w", err)
	}
	return q, nil
}

// Publish 除了事件 JSON 也寫入 event_id / type / booking_id，方便直接用 XRANGE 排查
func (q *RedisStreamBookingEventQueue) Publish(ctx context.Context, event *model.BookingEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal booking event: %w", err)
	}

	err = q.client.XAdd(ctx, &redis.XAddArgs{
		Stream: StreamKey,
		MaxLen: q.cfg.MaxLen,
		Approx: true,
		Values: map[string]interface{}{
			eventIDField:   event.ID,
			eventTypeField: string(event.Type),
			bookingIDField: event.BookingID,
			eventField:     string(body),
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("xadd: %w", err)
	}
	return nil
}

func (q *RedisStreamBookingEventQueue) Subscribe(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)

	go func() {
		var wg sync.WaitGroup
		defer close(out)
		defer wg.Wait()

		wg.Add(1)
		go func() {
			defer wg.Done()
			q.claimStale(ctx, out)
		}()
		q.readNew(ctx, out)
	}()

	return out, nil
}

// readNew 只讀 ">"；投遞後未 ack 的訊息留在 PEL 由 claimStale 處理
func (q *RedisStreamBookingEventQueue) readNew(ctx context.Context, out chan<- Delivery) {
	for ctx.Err() == nil {
		streams, err := q.client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    ConsumerGroupName,
			Consumer: q.consumerName,
			Streams:  []string{StreamKey, ">"},
			Count:    10,
			Block:    q.cfg.ReadGroupBlockTime,
		}).Result()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			q.log.Error("XReadGroup failed", zap.Error(err))
			time.Sleep(time.Second)
			continue
		}

		for _, stream := range streams {
			for _, msg := range stream.Messages {
				if !q.dispatch(ctx, out, msg, 1) {
					return
				}
			}
		}
	}
}

func (q *RedisStreamBookingEventQueue) claimStale(ctx context.Context, out chan<- Delivery) {
	ticker := time.NewTicker(q.cfg.ClaimMinIdleTime)
	defer ticker.Stop()
	start := "0-0"

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		claimed, next, err := q.client.XAutoClaim(ctx, &redis.XAutoClaimArgs{
			Stream:   StreamKey,
			Group:    ConsumerGroupName,
			Consumer: q.consumerName,
			MinIdle:  q.cfg.ClaimMinIdleTime,
			Count:    10,
			Start:    start,
		}).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			if ctx.Err() != nil {
				return
			}
			q.log.Error("XAutoClaim failed", zap.Error(err))
			continue
		}
		start = next
		if start == "" {
			start = "0-0"
		}
		if len(claimed) == 0 {
			continue
		}

		attempts := q.deliveryCounts(ctx, claimed)
		for _, msg := range claimed {
			if !q.dispatch(ctx, out, msg, attempts[msg.ID]) {
				return
			}
		}
	}
}

// deliveryCounts 一次查詢整批領回訊息的投遞次數；查不到時視為 1
func (q *RedisStreamBookingEventQueue) deliveryCounts(ctx context.Context, msgs []redis.XMessage) map[string]int {
	counts := make(map[string]int, len(msgs))
	for _, msg := range msgs {
		counts[msg.ID] = 1
	}

	pending, err := q.client.XPendingExt(ctx, &redis.XPendingExtArgs{
		Stream:   StreamKey,
		Group:    ConsumerGroupName,
		Start:    msgs[0].ID,
		End:      msgs[len(msgs)-1].ID,
		Count:    int64(len(msgs)),
		Consumer: q.consumerName,
	}).Result()
	if err != nil {
		q.log.Warn("XPendingExt failed", zap.Error(err))
		return counts
	}
	for _, p := range pending {
		counts[p.ID] = int(p.RetryCount)
	}
	return counts
}

// dispatch 把一筆訊息交給 worker，或在格式錯誤、超過重試上限、已處理過時直接結清。
// 回傳 false 表示 ctx 已結束。
func (q *RedisStreamBookingEventQueue) dispatch(ctx context.Context, out chan<- Delivery, msg redis.XMessage, attempts int) bool {
	event, err := decodeStreamEvent(msg)
	if err != nil {
		q.log.Warn("malformed booking event", zap.String("message_id", msg.ID), zap.Error(err))
		q.deadLetter(ctx, msg, "malformed")
		return true
	}
	if attempts > q.cfg.MaxRetryCount {
		q.log.Warn("booking event exceeded max retries",
			zap.String("event_id", event.ID),
			zap.Int("attempts", attempts),
			zap.Int("max_retries", q.cfg.MaxRetryCount))
		q.deadLetter(ctx, msg, "max retries exceeded")
		return true
	}

	done, err := q.client.Exists(ctx, processedKey(event.ID)).Result()
	if err != nil {
		q.log.Warn("check processed booking event failed", zap.String("event_id", event.ID), zap.Error(err))
	}
	if done > 0 {
		q.log.Debug("skip duplicate booking event", zap.String("event_id", event.ID), zap.String("message_id", msg.ID))
		q.ack(ctx, msg.ID)
		return true
	}

	select {
	case out <- q.delivery(ctx, msg.ID, event):
		return true
	case <-ctx.Done():
		return false
	}
}

func (q *RedisStreamBookingEventQueue) delivery(ctx context.Context, msgID string, event *model.BookingEvent) Delivery {
	return Delivery{
		Data: event,
		Ack: func() {
			// 記錄事件 ID 與 XACK 同一個 MULTI，重送的副本會在 dispatch 被略過
			_, err := q.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.Set(ctx, processedKey(event.ID), msgID, q.cfg.ProcessedTTL)
				pipe.XAck(ctx, StreamKey, ConsumerGroupName, msgID)
				return nil
			})
			if err != nil {
				q.log.Error("ack booking event failed", zap.String("event_id", event.ID), zap.Error(err))
			}
		},
		Nack: func(requeue bool) {
			if requeue {
				// 留在 PEL，閒置 ClaimMinIdleTime 後由 claimStale 重送
				return
			}
			q.deadLetter(ctx, redis.XMessage{ID: msgID, Values: streamValues(event)}, "rejected")
		},
	}
}

// deadLetter 原欄位加上原因寫入死信 stream，再從 consumer group 結清
func (q *RedisStreamBookingEventQueue) deadLetter(ctx context.Context, msg redis.XMessage, reason string) {
	values := make(map[string]interface{}, len(msg.Values)+2)
	for k, v := range msg.Values {
		values[k] = v
	}
	values[reasonField] = reason
	values["message_id"] = msg.ID

	if err := q.client.XAdd(ctx, &redis.XAddArgs{
		Stream: DeadLetterStreamKey,
		MaxLen: q.cfg.MaxLen,
		Approx: true,
		Values: values,
	}).Err(); err != nil {
		q.log.Error("dead-letter booking event failed", zap.String("message_id", msg.ID), zap.Error(err))
		return
	}
	q.ack(ctx, msg.ID)
}

func (q *RedisStreamBookingEventQueue) ack(ctx context.Context, msgID string) {
	if err := q.client.XAck(ctx, StreamKey, ConsumerGroupName, msgID).Err(); err != nil {
		q.log.Error("XAck failed", zap.String("message_id", msgID), zap.Error(err))
	}
}

func decodeStreamEvent(msg redis.XMessage) (*model.BookingEvent, error) {
	body, ok := msg.Values[eventField].(string)
	if !ok {
		return nil, errors.New("missing event field")
	}
	var event model.BookingEvent
	if err := json.Unmarshal([]byte(body), &event); err != nil {
		return nil, err
	}
	if event.ID == "" {
		return nil, errors.New("missing event id")
	}
	return &event, nil
}

func streamValues(event *model.BookingEvent) map[string]interface{} {
	body, _ := json.Marshal(event)
	return map[string]interface{}{
		eventIDField:   event.ID,
		eventTypeField: string(event.Type),
		bookingIDField: strconv.Itoa(event.BookingID),
		eventField:     string(body),
	}
}

func processedKey(eventID string) string {
	return processedKeyPrefix + eventID
}
