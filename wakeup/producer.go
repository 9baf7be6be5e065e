package wakeup

import (
	"context"
	"log/slog"

	"github.com/ringlib/shmring/ring"
)

// Producer wraps a ring.Producer with blocking and notification. Exactly
// one goroutine or process drives it, same as the ring layer beneath it.
type Producer[T any] struct {
	ring *ring.Producer[T]

	// spaceAvailable is armed by the peer Consumer when a Recv transitions
	// the channel from full to non-full; Producer.Wait blocks on it.
	spaceAvailable Descriptor

	// dataAvailable is armed by this Producer when a Send transitions the
	// channel from empty to non-empty; the peer Consumer waits on it.
	dataAvailable Descriptor

	side   side
	logger *slog.Logger
	name   string
}

// Send offers fn the channel's free capacity exactly as ring.Producer.Send
// does, then arms dataAvailable if this call moved the channel from empty
// to non-empty. It never blocks.
func (p *Producer[T]) Send(fn func(a, b []T) int) (n int, err error) {
	n, wasEmpty := p.ring.Send(fn)
	if n > 0 && wasEmpty {
		if err := p.dataAvailable.Arm(); err != nil {
			p.logger.Error("wakeup: failed to arm data-available descriptor",
				"channel", p.name, "side", "producer", "fd", p.dataAvailable.Fd(), "error", err)
			return n, err
		}
	}
	return n, nil
}

// Writable returns the same snapshot as the underlying ring.Producer.
func (p *Producer[T]) Writable() uint64 {
	return p.ring.Writable()
}

// Waiting reports whether this Producer is currently blocked in Wait. It
// exists for metrics.Observer; nothing in this package's own correctness
// depends on it.
func (p *Producer[T]) Waiting() bool {
	return p.side.waiting()
}

// Wait blocks until the channel has free capacity or ctx is done. It
// returns immediately, without touching spaceAvailable, if space is already
// available.
func (p *Producer[T]) Wait(ctx context.Context) error {
	if p.ring.Writable() > 0 {
		return nil
	}
	p.side.setWaiting()
	defer p.side.setRunning()

	if err := p.spaceAvailable.Wait(ctx); err != nil {
		if ctx.Err() == nil {
			p.logger.Warn("wakeup: descriptor wait failed",
				"channel", p.name, "side", "producer", "fd", p.spaceAvailable.Fd(), "error", err)
		}
		return err
	}
	return nil
}

// WaitClear consumes a pending space-available signal. Callers must only
// call it after re-observing Writable() > 0 themselves (or after a Send
// call fails to find room); calling it speculatively can drain a signal
// that a concurrent Recv is about to Arm, and no one is left waiting to
// notice.
func (p *Producer[T]) WaitClear() error {
	return p.spaceAvailable.Drain()
}

// WaitStatus returns the fd a caller's own event loop should watch and the
// current Writable() count in one call, so both are observed together.
// Per the wait_clear precondition, the caller should only wait on the fd if
// available is zero.
func (p *Producer[T]) WaitStatus() (fd int, available int) {
	return p.spaceAvailable.Fd(), int(p.ring.Writable())
}
