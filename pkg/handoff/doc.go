// Package handoff defines the envelope type exchanged between a producer
// and a consumer over a bounded channel.
//
// Common usage:
// - Wrap: put a real item into an envelope
// - Shutdown: the terminal marker telling the consumer no more items follow
// - Envelope accessors: Item/IsShutdown/Id/CreatedAt
//
// The channel itself lives in package chanq; the producer/consumer tasks
// and their coordinator live in package transfer.
package handoff
