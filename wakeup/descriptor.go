package wakeup

import "context"

// Descriptor is a one-shot-or-coalescing readiness signal: something a
// signaler can Arm and a waiter can either Wait on (without consuming the
// signal) or Drain (consuming it). wakeup deliberately does not choose which
// kind of descriptor to use — see eventfd_linux.go for the Linux fd-backed
// implementation and chan_descriptor.go for the portable in-process one.
type Descriptor interface {
	// Arm signals readiness. It must be safe to call from a different
	// goroutine (or process) than the one that calls Wait/Drain, and safe
	// to call more than once before the waiter drains: a coalescing
	// descriptor collapses repeated arms into a single pending readiness,
	// it does not queue them.
	Arm() error

	// Drain consumes a pending readiness signal, if any, resetting the
	// descriptor. Calling Drain without having independently re-observed
	// the condition the signal represents can race a fresh Arm that lands
	// between the observation and the drain; callers must recheck the
	// underlying channel state after Drain, not rely on it alone.
	Drain() error

	// Wait blocks until the descriptor is readable or ctx is done. It does
	// not consume the signal: a level-triggered descriptor stays readable
	// across repeated Wait calls until something Drains it.
	Wait(ctx context.Context) error

	// Fd exposes the underlying file descriptor for a caller's own
	// readiness-based event loop. Implementations with no real fd (see
	// chan_descriptor.go) return -1.
	Fd() int
}
