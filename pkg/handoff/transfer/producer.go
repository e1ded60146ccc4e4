package transfer

import (
	"context"
	"fmt"
	"time"

	"github.com/ap-92/handoff/pkg/handoff"
)

// runProducer drains t.source in order, putting one envelope per element.
// The shutdown marker is enqueued on every exit path, exactly once, so the
// consumer always terminates even when production fails midway.
func (t *Transfer[T]) runProducer(ctx context.Context) (err error) {
	defer t.ch.Put(handoff.Shutdown[T]())

	delay := GetProduceDelay(ctx, 0)

	for len(t.source) > 0 {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		item := t.source[0]
		t.source = t.source[1:]

		if t.handlers.Make != nil {
			item, err = t.handlers.Make(ctx, item)
			if err != nil {
				return fmt.Errorf("transfer: producing item %d: %w", t.produced, err)
			}
		}

		t.ch.Put(handoff.Wrap(item))
		t.produced++

		if t.handlers.OnProduce != nil {
			t.handlers.OnProduce(ctx, item)
		}

		if delay > 0 {
			time.Sleep(delay)
		}
	}

	return nil
}
