package chanq

import (
	"errors"
	"sync"
	"time"
)

var (
	ErrInvalidCapacity = errors.New("chanq: capacity must be greater than zero")
	ErrTimeout         = errors.New("chanq: blocking operation timed out")
)

// Channel is a bounded blocking FIFO queue. Capacity is fixed at
// construction; Put blocks while full, Get blocks while empty.
type Channel[T any] struct {
	items     []T
	capacity  int
	size      int
	head      int
	tail      int
	highWater int
	mu        sync.Mutex
	notFull   *sync.Cond
	notEmpty  *sync.Cond
}

func New[T any](capacity int) (*Channel[T], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	q := &Channel[T]{
		items:    make([]T, capacity),
		capacity: capacity,
	}
	q.notFull = sync.NewCond(&q.mu)
	q.notEmpty = sync.NewCond(&q.mu)
	return q, nil
}

// Put inserts item at the tail, blocking while the channel is full.
func (q *Channel[T]) Put(item T) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.size == q.capacity {
		q.notFull.Wait()
	}

	q.insert(item)
	q.notEmpty.Signal()
}

// Get removes and returns the head item, blocking while the channel is empty.
func (q *Channel[T]) Get() T {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.size == 0 {
		q.notEmpty.Wait()
	}

	item := q.remove()
	q.notFull.Signal()
	return item
}

// PutTimeout is Put with bounded blocking. It returns ErrTimeout if the
// channel stays full past the timeout; the channel is left unchanged.
func (q *Channel[T]) PutTimeout(item T, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	timer := time.AfterFunc(timeout, func() {
		q.mu.Lock()
		q.notFull.Broadcast()
		q.mu.Unlock()
	})
	defer timer.Stop()

	q.mu.Lock()
	defer q.mu.Unlock()

	for q.size == q.capacity {
		if !time.Now().Before(deadline) {
			return ErrTimeout
		}
		q.notFull.Wait()
	}

	q.insert(item)
	q.notEmpty.Signal()
	return nil
}

// GetTimeout is Get with bounded blocking. It returns ErrTimeout if the
// channel stays empty past the timeout; the channel is left unchanged.
func (q *Channel[T]) GetTimeout(timeout time.Duration) (T, error) {
	deadline := time.Now().Add(timeout)
	timer := time.AfterFunc(timeout, func() {
		q.mu.Lock()
		q.notEmpty.Broadcast()
		q.mu.Unlock()
	})
	defer timer.Stop()

	q.mu.Lock()
	defer q.mu.Unlock()

	for q.size == 0 {
		if !time.Now().Before(deadline) {
			var zero T
			return zero, ErrTimeout
		}
		q.notEmpty.Wait()
	}

	item := q.remove()
	q.notFull.Signal()
	return item, nil
}

// TryPut inserts without blocking. Returns false if the channel is full.
func (q *Channel[T]) TryPut(item T) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.size == q.capacity {
		return false
	}

	q.insert(item)
	q.notEmpty.Signal()
	return true
}

// TryGet removes without blocking. Returns false if the channel is empty.
func (q *Channel[T]) TryGet() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.size == 0 {
		var zero T
		return zero, false
	}

	item := q.remove()
	q.notFull.Signal()
	return item, true
}

// Len returns the number of items currently held.
func (q *Channel[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.size
}

// Cap returns the fixed capacity.
func (q *Channel[T]) Cap() int {
	return q.capacity
}

// HighWater returns the largest number of items ever held at once.
func (q *Channel[T]) HighWater() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.highWater
}

// callers hold q.mu
func (q *Channel[T]) insert(item T) {
	q.items[q.tail] = item
	q.tail = (q.tail + 1) % q.capacity
	q.size++
	if q.size > q.highWater {
		q.highWater = q.size
	}
}

// callers hold q.mu
func (q *Channel[T]) remove() T {
	var zero T
	item := q.items[q.head]
	q.items[q.head] = zero
	q.head = (q.head + 1) % q.capacity
	q.size--
	return item
}
