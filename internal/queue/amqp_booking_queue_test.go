package queue_test

import (
	"context"
	"testing"
	"time"

	"eventease-booking/config"
	"eventease-booking/internal/model"
	"eventease-booking/internal/queue"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAMQPQueue 每個測試使用獨立的隊列名稱；連不上 broker 時略過
func newTestAMQPQueue(t *testing.T, maxRetries int) *queue.AMQPBookingEventQueue {
	t.Helper()
	url := config.LoadTestConfig().Queue.AMQPURL
	q, err := queue.NewAMQPBookingEventQueue(url, &queue.AMQPConfig{
		QueueName:     "booking.events.test." + uuid.NewString(),
		MaxRetryCount: maxRetries,
		RetryDelay:    100 * time.Millisecond,
	})
	if err != nil {
		t.Skipf("test broker is not available: %v", err)
	}

	t.Cleanup(func() {
		conn, err := amqp.Dial(url)
		if err == nil {
			if ch, err := conn.Channel(); err == nil {
				for _, name := range []string{q.QueueName(), q.RetryQueueName(), q.DeadLetterQueueName()} {
					_, _ = ch.QueueDelete(name, false, false, false)
				}
			}
			_ = conn.Close()
		}
		_ = q.Close()
	})
	return q
}

func deadLetterMessages(t *testing.T, q *queue.AMQPBookingEventQueue) []amqp.Delivery {
	t.Helper()
	conn, err := amqp.Dial(config.LoadTestConfig().Queue.AMQPURL)
	require.NoError(t, err)
	defer conn.Close()
	ch, err := conn.Channel()
	require.NoError(t, err)
	defer ch.Close()

	var msgs []amqp.Delivery
	for {
		msg, ok, err := ch.Get(q.DeadLetterQueueName(), true)
		require.NoError(t, err)
		if !ok {
			return msgs
		}
		msgs = append(msgs, msg)
	}
}

func TestAMQPBookingEventQueue_Subscribe_deliversPublishedMessage(t *testing.T) {
	ctx := context.Background()
	q := newTestAMQPQueue(t, 0)

	event := newTestEvent(20)
	require.NoError(t, q.Publish(ctx, event))

	subCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	delCh, err := q.Subscribe(subCtx)
	require.NoError(t, err)

	select {
	case d := <-delCh:
		require.NotNil(t, d.Data)
		assert.Equal(t, event.ID, d.Data.ID)
		assert.Equal(t, model.BookingEventStatusChanged, d.Data.Type)
		assert.Equal(t, 20, d.Data.BookingID)
		d.Ack()
	case <-subCtx.Done():
		t.Fatal("timeout 未收到訊息")
	}
}

// Nack(true) 經重試隊列延遲重送，達到上限後進死信隊列
func TestAMQPBookingEventQueue_NackRequeue_stopsAtMaxRetries(t *testing.T) {
	ctx := context.Background()
	q := newTestAMQPQueue(t, 3)

	event := newTestEvent(21)
	require.NoError(t, q.Publish(ctx, event))

	subCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	delCh, err := q.Subscribe(subCtx)
	require.NoError(t, err)

	deliveries := 0
	for d := range delCh {
		assert.Equal(t, event.ID, d.Data.ID)
		deliveries++
		d.Nack(true)
	}

	assert.Equal(t, 3, deliveries)
	dead := deadLetterMessages(t, q)
	require.Len(t, dead, 1)
	assert.Equal(t, event.ID, dead[0].MessageId)
	assert.Equal(t, "max retries exceeded", dead[0].Headers["x-dead-reason"])
}

func TestAMQPBookingEventQueue_NackReject_deadLetters(t *testing.T) {
	ctx := context.Background()
	q := newTestAMQPQueue(t, 0)

	event := newTestEvent(22)
	require.NoError(t, q.Publish(ctx, event))

	subCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	delCh, err := q.Subscribe(subCtx)
	require.NoError(t, err)

	select {
	case d := <-delCh:
		d.Nack(false)
	case <-subCtx.Done():
		t.Fatal("timeout 未收到訊息")
	}

	assert.Eventually(t, func() bool {
		return len(deadLetterMessages(t, q)) == 1
	}, 2*time.Second, 50*time.Millisecond)
}
