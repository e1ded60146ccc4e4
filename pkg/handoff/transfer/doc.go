// Package transfer runs a single producer and a single consumer over one
// bounded channel and reports the outcome.
//
// Common usage:
// - New: build a Transfer from a source slice and a channel capacity
// - Handlers: optional per-item progress callbacks
// - WithDelays: carry simulated production/consumption delays in the context
// - Run: start both tasks, join them, return Stats and the first task error
// - Stats.Verify: check the produced == consumed == destination invariant
//
// The producer drains the source in order, wrapping each element in a
// handoff.Envelope; after the last element (or on any failure) it enqueues
// the shutdown marker exactly once, which is what terminates the consumer.
package transfer
