package queue

import (
	"context"

	"eventease-booking/internal/model"
)

type Delivery struct {
	Data *model.BookingEvent
	Ack  func()
	Nack func(requeue bool)
}

type BookingEventQueue interface {
	// 發送預約事件到隊列
	Publish(ctx context.Context, event *model.BookingEvent) error
	// 訂閱預約事件隊列
	Subscribe(ctx context.Context) (<-chan Delivery, error)
}

type MemoryBookingEventQueue struct {
	// 使用 Go channel 來模擬 MQ 隊列
	ch chan *model.BookingEvent
}

func NewMemoryBookingEventQueue(bufferSize int) BookingEventQueue {
	return &MemoryBookingEventQueue{
		ch: make(chan *model.BookingEvent, bufferSize),
	}
}

func (q *MemoryBookingEventQueue) Publish(ctx context.Context, event *model.BookingEvent) error {
	select {
	case q.ch <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *MemoryBookingEventQueue) Subscribe(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-q.ch:
				if !ok {
					return
				}

				d := Delivery{
					Data: event,
					Ack:  func() { /* 記憶體版不用做特別動作 */ },
					Nack: func(requeue bool) {
						if requeue {
							// 簡單模擬重回隊列，隊列已滿時丟棄
							select {
							case q.ch <- event:
							default:
							}
						}
					},
				}

				select {
				case out <- d:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
