package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"eventease-booking/internal/model"
	"eventease-booking/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	AMQPQueueName = "booking.events"

	retryCountHeader = "x-retry-count"
)

// AMQPConfig 零值欄位使用預設
type AMQPConfig struct {
	QueueName     string        // 主隊列，重試與死信隊列分別加上 .retry / .dead
	MaxRetryCount int           // 同一事件最多投遞次數，之後改送死信隊列
	RetryDelay    time.Duration // 重試隊列的訊息 TTL，到期後回到主隊列
}

func defaultAMQPConfig() AMQPConfig {
	return AMQPConfig{
		QueueName:     AMQPQueueName,
		MaxRetryCount: 5,
		RetryDelay:    5 * time.Second,
	}
}

// AMQPBookingEventQueue RabbitMQ 版 BookingEventQueue。
// Nack(true) 不交回 broker 立即重送，而是帶著重試次數轉送到有 TTL 的重試隊列，
// 到期後經 dead-letter 回到主隊列；超過上限或 Nack(false) 則送進死信隊列。
type AMQPBookingEventQueue struct {
	conn *amqp.Connection
	cfg  AMQPConfig
	log  *zap.Logger

	mu    sync.Mutex
	pubCh *amqp.Channel
}

func NewAMQPBookingEventQueue(url string, config *AMQPConfig) (*AMQPBookingEventQueue, error) {
	cfg := defaultAMQPConfig()
	if config != nil {
		if config.QueueName != "" {
			cfg.QueueName = config.QueueName
		}
		if config.MaxRetryCount > 0 {
			cfg.MaxRetryCount = config.MaxRetryCount
		}
		if config.RetryDelay > 0 {
			cfg.RetryDelay = config.RetryDelay
		}
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("channel open: %w", err)
	}

	q := &AMQPBookingEventQueue{
		conn:  conn,
		cfg:   cfg,
		log:   logger.WithComponent("mq"),
		pubCh: ch,
	}
	if err := q.declare(ch); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return q, nil
}

func (q *AMQPBookingEventQueue) QueueName() string { return q.cfg.QueueName }

func (q *AMQPBookingEventQueue) RetryQueueName() string { return q.cfg.QueueName + ".retry" }

func (q *AMQPBookingEventQueue) DeadLetterQueueName() string { return q.cfg.QueueName + ".dead" }

func (q *AMQPBookingEventQueue) declare(ch *amqp.Channel) error {
	queues := []struct {
		name string
		args amqp.Table
	}{
		{name: q.cfg.QueueName},
		{name: q.RetryQueueName(), args: amqp.Table{
			"x-message-ttl":             q.cfg.RetryDelay.Milliseconds(),
			"x-dead-letter-exchange":    "",
			"x-dead-letter-routing-key": q.cfg.QueueName,
		}},
		{name: q.DeadLetterQueueName()},
	}

	for _, d := range queues {
		// durable, 不自動刪除, 非獨占
		if _, err := ch.QueueDeclare(d.name, true, false, false, false, d.args); err != nil {
			return fmt.Errorf("queue declare %s: %w", d.name, err)
		}
	}
	return nil
}

func (q *AMQPBookingEventQueue) Publish(ctx context.Context, event *model.BookingEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal booking event: %w", err)
	}

	return q.publish(ctx, q.cfg.QueueName, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.ID,
		Type:         string(event.Type),
		Timestamp:    time.Now().UTC(),
		Headers:      amqp.Table{"booking_id": int64(event.BookingID)},
		Body:         body,
	})
}

// publish 透過預設 exchange 直接投遞到指定隊列；channel 不可並行使用
func (q *AMQPBookingEventQueue) publish(ctx context.Context, queueName string, pub amqp.Publishing) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if err := q.pubCh.PublishWithContext(ctx, "", queueName, false, false, pub); err != nil {
		return fmt.Errorf("publish to %s: %w", queueName, err)
	}
	return nil
}

func (q *AMQPBookingEventQueue) Subscribe(ctx context.Context) (<-chan Delivery, error) {
	ch, err := q.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("channel open: %w", err)
	}
	if err := ch.Qos(50, 0, false); err != nil {
		q.log.Warn("set QoS failed", zap.Error(err))
	}
	if err := q.declare(ch); err != nil {
		_ = ch.Close()
		return nil, err
	}

	msgs, err := ch.Consume(q.cfg.QueueName, "", false, false, false, false, nil)
	if err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("queue consume: %w", err)
	}

	out := make(chan Delivery)
	go func() {
		defer close(out)
		defer func() { _ = ch.Close() }()

		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					q.log.Warn("deliveries channel closed")
					return
				}

				var event model.BookingEvent
				if err := json.Unmarshal(msg.Body, &event); err != nil {
					q.log.Warn("unmarshal booking event failed", zap.String("message_id", msg.MessageId), zap.Error(err))
					q.deadLetter(msg, "malformed")
					continue
				}

				d := Delivery{
					Data: &event,
					Ack: func() {
						if err := msg.Ack(false); err != nil {
							q.log.Error("ack failed", zap.String("message_id", msg.MessageId), zap.Error(err))
						}
					},
					Nack: func(requeue bool) {
						if !requeue {
							q.deadLetter(msg, "rejected")
							return
						}
						q.retry(msg)
					},
				}

				select {
				case out <- d:
				case <-ctx.Done():
					// 尚未交給 worker，不算一次失敗
					_ = msg.Nack(false, true)
					return
				}
			}
		}
	}()

	return out, nil
}

// retry 本次是第 n 次投遞失敗；達到上限改送死信隊列
func (q *AMQPBookingEventQueue) retry(msg amqp.Delivery) {
	attempts := retryCount(msg.Headers) + 1
	if attempts >= q.cfg.MaxRetryCount {
		q.log.Warn("booking event exceeded max retries",
			zap.String("event_id", msg.MessageId),
			zap.Int("attempts", attempts),
			zap.Int("max_retries", q.cfg.MaxRetryCount))
		q.forward(msg, q.DeadLetterQueueName(), attempts, "max retries exceeded")
		return
	}
	q.forward(msg, q.RetryQueueName(), attempts, "")
}

func (q *AMQPBookingEventQueue) deadLetter(msg amqp.Delivery, reason string) {
	q.forward(msg, q.DeadLetterQueueName(), retryCount(msg.Headers), reason)
}

// forward 複製訊息到目標隊列後 ack 原訊息；轉送失敗時才交回 broker
func (q *AMQPBookingEventQueue) forward(msg amqp.Delivery, target string, attempts int, reason string) {
	headers := amqp.Table{}
	for k, v := range msg.Headers {
		headers[k] = v
	}
	headers[retryCountHeader] = int32(attempts)
	if reason != "" {
		headers["x-dead-reason"] = reason
	}

	err := q.publish(context.Background(), target, amqp.Publishing{
		ContentType:  msg.ContentType,
		DeliveryMode: amqp.Persistent,
		MessageId:    msg.MessageId,
		Type:         msg.Type,
		Timestamp:    msg.Timestamp,
		Headers:      headers,
		Body:         msg.Body,
	})
	if err != nil {
		q.log.Error("forward booking event failed", zap.String("message_id", msg.MessageId), zap.String("target", target), zap.Error(err))
		_ = msg.Nack(false, true)
		return
	}
	if err := msg.Ack(false); err != nil {
		q.log.Error("ack failed", zap.String("message_id", msg.MessageId), zap.Error(err))
	}
}

func retryCount(headers amqp.Table) int {
	switch v := headers[retryCountHeader].(type) {
	case int32:
		return int(v)
	case int64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}

func (q *AMQPBookingEventQueue) Close() error {
	return q.conn.Close()
}
