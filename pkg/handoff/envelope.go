package handoff

import (
	"time"

	"github.com/google/uuid"
)

// Envelope is the element type flowing through the bounded channel: either
// a wrapped item or the shutdown marker. Modeling the sentinel as a variant
// keeps zero-valued items distinguishable from "no more items".
type Envelope[T any] struct {
	id         uuid.UUID
	createdAt  time.Time
	item       T
	isShutdown bool
}

func Wrap[T any](item T) Envelope[T] {
	return Envelope[T]{
		item:       item,
		isShutdown: false,
		createdAt:  time.Now().UTC(),
		id:         uuid.New(),
	}
}

func Shutdown[T any]() Envelope[T] {
	return Envelope[T]{
		isShutdown: true,
		createdAt:  time.Now().UTC(),
		id:         uuid.New(),
	}
}

func (e Envelope[T]) Item() T {
	return e.item
}

func (e Envelope[T]) IsShutdown() bool {
	return e.isShutdown
}

func (e Envelope[T]) CreatedAt() time.Time {
	return e.createdAt
}

func (e Envelope[T]) Id() uuid.UUID {
	return e.id
}
