package transfer

import (
	"context"
	"time"
)

type OptionKey string

const (
	DelayOptionKey OptionKey = "delay_options"
)

type DelayOptions struct {
	Produce time.Duration
	Consume time.Duration
}

// WithDelays attaches simulated per-item delays to the context. Both
// default to zero when the option is absent.
func WithDelays(ctx context.Context, produce, consume time.Duration) context.Context {
	return context.WithValue(ctx, DelayOptionKey, DelayOptions{Produce: produce, Consume: consume})
}

func GetProduceDelay(ctx context.Context, defaultDelay time.Duration) time.Duration {
	options, ok := ctx.Value(DelayOptionKey).(DelayOptions)
	if ok {
		return options.Produce
	}
	return defaultDelay
}

func GetConsumeDelay(ctx context.Context, defaultDelay time.Duration) time.Duration {
	options, ok := ctx.Value(DelayOptionKey).(DelayOptions)
	if ok {
		return options.Consume
	}
	return defaultDelay
}
