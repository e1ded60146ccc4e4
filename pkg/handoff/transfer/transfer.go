package transfer

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ap-92/handoff/pkg/handoff"
	"github.com/ap-92/handoff/pkg/handoff/chanq"
)

// Handlers carries the optional per-item callbacks of a run. Any field may
// be nil. Make builds the enqueued item from a source element and is the
// producer's only failure point.
type Handlers[T any] struct {
	Make      func(ctx context.Context, in T) (T, error)
	OnProduce func(ctx context.Context, item T)
	OnConsume func(ctx context.Context, item T)
}

// Stats is the post-run summary. It is only meaningful after Run returns.
type Stats struct {
	Produced        int
	Consumed        int
	SourceSize      int
	DestinationSize int
}

// Verify checks the transfer invariant: everything produced was consumed
// and landed in the destination, and the source was fully drained.
func (s Stats) Verify() error {
	var errs []error
	if s.Produced != s.Consumed {
		errs = append(errs, fmt.Errorf("produced %d != consumed %d", s.Produced, s.Consumed))
	}
	if s.DestinationSize != s.Produced {
		errs = append(errs, fmt.Errorf("destination size %d != produced %d", s.DestinationSize, s.Produced))
	}
	if s.SourceSize != 0 {
		errs = append(errs, fmt.Errorf("source not drained, %d left", s.SourceSize))
	}
	return errors.Join(errs...)
}

// Transfer moves the elements of a source slice to a destination slice
// through one bounded channel, using one producer and one consumer task.
type Transfer[T any] struct {
	ch          *chanq.Channel[handoff.Envelope[T]]
	source      []T
	destination []T
	handlers    Handlers[T]

	// produced is owned by the producer task, consumed and destination by
	// the consumer task; both are read only after the tasks join.
	produced int
	consumed int
}

// New copies source so the caller's slice is left untouched. Capacity
// follows chanq rules: ErrInvalidCapacity when <= 0, before any task runs.
func New[T any](source []T, capacity int, handlers Handlers[T]) (*Transfer[T], error) {
	ch, err := chanq.New[handoff.Envelope[T]](capacity)
	if err != nil {
		return nil, err
	}

	src := make([]T, len(source))
	copy(src, source)

	return &Transfer[T]{
		ch:       ch,
		source:   src,
		handlers: handlers,
	}, nil
}

// Run starts the producer and consumer, waits for both to reach their
// terminal state, and returns the merged stats plus the first task error.
// A producer failure does not strand the consumer: the shutdown marker is
// enqueued on every producer exit path.
func (t *Transfer[T]) Run(ctx context.Context) (Stats, error) {
	g := new(errgroup.Group)

	g.Go(func() error {
		return t.runProducer(ctx)
	})
	g.Go(func() error {
		return t.runConsumer(ctx)
	})

	err := g.Wait()
	return t.Stats(), err
}

// Stats merges the task-owned counters. Call only after Run has returned.
func (t *Transfer[T]) Stats() Stats {
	return Stats{
		Produced:        t.produced,
		Consumed:        t.consumed,
		SourceSize:      len(t.source),
		DestinationSize: len(t.destination),
	}
}

// Destination returns the consumer's output slice. Call only after Run has
// returned.
func (t *Transfer[T]) Destination() []T {
	return t.destination
}

// HighWater exposes the channel's occupancy peak for inspection.
func (t *Transfer[T]) HighWater() int {
	return t.ch.HighWater()
}
