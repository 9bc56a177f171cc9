package notify

import (
	"context"

	"eventease-booking/internal/model"
	"eventease-booking/pkg/logger"

	"go.uber.org/zap"
)

// Notifier 將預約事件送達使用者（email、推播等）
type Notifier interface {
	Notify(ctx context.Context, event *model.BookingEvent) error
}

// LogNotifier 以結構化日誌記錄通知內容，尚未接上實際的寄送通道
type LogNotifier struct {
	log *zap.Logger
}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{log: logger.WithComponent("notifier")}
}

func (n *LogNotifier) Notify(ctx context.Context, event *model.BookingEvent) error {
	n.log.Info("booking notification",
		zap.String("event_id", event.ID),
		zap.String("type", string(event.Type)),
		zap.Int("booking_id", event.BookingID),
		zap.Int("user_id", event.UserID),
		zap.String("previous_status", string(event.PreviousStatus)),
		zap.String("status", string(event.Status)),
		zap.String("payment_status", string(event.PaymentStatus)),
		zap.String("total_amount", event.TotalAmount.StringFixed(2)),
	)
	return nil
}
