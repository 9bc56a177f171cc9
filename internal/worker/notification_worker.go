package worker

import (
	"context"

	"eventease-booking/internal/notify"
	"eventease-booking/internal/queue"
	"eventease-booking/pkg/logger"

	"go.uber.org/zap"
)

type NotificationWorker interface {
	// 訂閱預約事件隊列，直到 ctx 結束
	Start(ctx context.Context) error
}

type NotificationWorkerImpl struct {
	notifier notify.Notifier
	queue    queue.BookingEventQueue
	log      *zap.Logger
	done     chan struct{}
}

func NewNotificationWorker(notifier notify.Notifier, queue queue.BookingEventQueue) *NotificationWorkerImpl {
	return &NotificationWorkerImpl{
		notifier: notifier,
		queue:    queue,
		log:      logger.WithComponent("worker"),
		done:     make(chan struct{}),
	}
}

func (w *NotificationWorkerImpl) Start(ctx context.Context) error {
	msgs, err := w.queue.Subscribe(ctx)
	if err != nil {
		close(w.done)
		return err
	}

	go func() {
		defer close(w.done)
		for msg := range msgs {
			if err := w.notifier.Notify(ctx, msg.Data); err != nil {
				// 通知通道暫時失敗，交回隊列重試
				w.log.Warn("notify failed, requeue",
					zap.String("event_id", msg.Data.ID),
					zap.Int("booking_id", msg.Data.BookingID),
					zap.Error(err))
				msg.Nack(true)
				continue
			}
			msg.Ack()
		}
	}()
	return nil
}

// Done 在訂閱結束、所有訊息處理完後關閉
func (w *NotificationWorkerImpl) Done() <-chan struct{} {
	return w.done
}
