package transfer

import (
	"context"
	"time"
)

// runConsumer loops on Get until it observes the shutdown marker. It never
// polls: termination costs at most the one Get that returns the marker.
func (t *Transfer[T]) runConsumer(ctx context.Context) error {
	delay := GetConsumeDelay(ctx, 0)

	for {
		env := t.ch.Get()
		if env.IsShutdown() {
			return nil
		}

		t.destination = append(t.destination, env.Item())
		t.consumed++

		if t.handlers.OnConsume != nil {
			t.handlers.OnConsume(ctx, env.Item())
		}

		if delay > 0 {
			time.Sleep(delay)
		}
	}
}
