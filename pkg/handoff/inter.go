package handoff

import "time"

type ItemProvider[T any] interface {
	// Item returns the carried item value
	Item() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithShutdown defines an interface for types that carry either an item
// or the terminal marker
type WithShutdown[T any] interface {
	ItemProvider[T]
	// IsShutdown returns true if this is the terminal marker
	IsShutdown() bool
}
