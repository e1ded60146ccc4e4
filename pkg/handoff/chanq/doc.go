// Package chanq provides a fixed-capacity blocking FIFO channel built on a
// mutex-guarded ring buffer with two condition variables.
//
// Common usage:
// - New: construct with a fixed capacity (ErrInvalidCapacity if <= 0)
// - Put/Get: block while full/empty, preserve FIFO order
// - PutTimeout/GetTimeout: bounded blocking, ErrTimeout on expiry
// - TryPut/TryGet: non-blocking probes
// - Len/Cap/HighWater: introspection for callers and test harnesses
//
// The channel is safe for any number of concurrent putters and getters,
// although the transfer package only ever runs one of each.
package chanq
