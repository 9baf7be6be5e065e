// Package ring implements a single-producer/single-consumer lock-free ring
// buffer over an externally supplied byte region: shared memory, an mmap'd
// file, or a plain heap slice. The producer and consumer coordinate through
// two monotonically increasing cursors stored in a small header at the front
// of the region; no locks, syscalls, or heap allocation happen on the hot
// path.
//
// Elements are exposed to callers as up to two contiguous slices per call
// (the region wraps; a batch that straddles the wrap boundary is split into
// a head and a tail slice), so a caller filling or draining many elements at
// once never pays a per-element copy.
//
// This package does not allocate or map the backing region (see shmalloc),
// does not provide blocking or wakeup (see wakeup), and coordinates exactly
// one producer with exactly one consumer at a time.
package ring
