package wakeup

import (
	"context"
	"io"
	"log/slog"

	"github.com/ringlib/shmring/ring"
)

// Consumer wraps a ring.Consumer with blocking and notification.
type Consumer[T any] struct {
	ring *ring.Consumer[T]

	// dataAvailable is armed by the peer Producer when a Send transitions
	// the channel from empty to non-empty; Consumer.Wait blocks on it.
	dataAvailable Descriptor

	// spaceAvailable is armed by this Consumer when a Recv transitions the
	// channel from full to non-full; the peer Producer waits on it.
	spaceAvailable Descriptor

	side   side
	logger *slog.Logger
	name   string
}

// New builds a connected wakeup.Producer/wakeup.Consumer pair around an
// already-Init'd ring channel. dataAvailable is the descriptor the consumer
// waits on and the producer arms; spaceAvailable is the reverse. logger may
// be nil, in which case wakeup discards its own log output; production
// callers should pass a logger from internal/logging instead.
func New[T any](p *ring.Producer[T], c *ring.Consumer[T], dataAvailable, spaceAvailable Descriptor, logger *slog.Logger, name string) (*Producer[T], *Consumer[T]) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	prod := &Producer[T]{
		ring:           p,
		spaceAvailable: spaceAvailable,
		dataAvailable:  dataAvailable,
		logger:         logger,
		name:           name,
	}
	cons := &Consumer[T]{
		ring:           c,
		dataAvailable:  dataAvailable,
		spaceAvailable: spaceAvailable,
		logger:         logger,
		name:           name,
	}
	return prod, cons
}

// Recv offers fn the channel's available elements exactly as
// ring.Consumer.Recv does, then arms spaceAvailable if this call moved the
// channel from full to non-full. It never blocks.
func (c *Consumer[T]) Recv(fn func(a, b []T) int) (n int, err error) {
	n, wasFull := c.ring.Recv(fn)
	if n > 0 && wasFull {
		if err := c.spaceAvailable.Arm(); err != nil {
			c.logger.Error("wakeup: failed to arm space-available descriptor",
				"channel", c.name, "side", "consumer", "fd", c.spaceAvailable.Fd(), "error", err)
			return n, err
		}
	}
	return n, nil
}

// Readable returns the same snapshot as the underlying ring.Consumer.
func (c *Consumer[T]) Readable() uint64 {
	return c.ring.Readable()
}

// Waiting reports whether this Consumer is currently blocked in Wait.
func (c *Consumer[T]) Waiting() bool {
	return c.side.waiting()
}

// Wait blocks until the channel has data or ctx is done.
func (c *Consumer[T]) Wait(ctx context.Context) error {
	if c.ring.Readable() > 0 {
		return nil
	}
	c.side.setWaiting()
	defer c.side.setRunning()

	if err := c.dataAvailable.Wait(ctx); err != nil {
		if ctx.Err() == nil {
			c.logger.Warn("wakeup: descriptor wait failed",
				"channel", c.name, "side", "consumer", "fd", c.dataAvailable.Fd(), "error", err)
		}
		return err
	}
	return nil
}

// WaitClear consumes a pending data-available signal. See Producer.WaitClear
// for the precondition this carries.
func (c *Consumer[T]) WaitClear() error {
	return c.dataAvailable.Drain()
}

// WaitStatus returns the fd a caller's own event loop should watch and the
// current Readable() count in one call.
func (c *Consumer[T]) WaitStatus() (fd int, available int) {
	return c.dataAvailable.Fd(), int(c.ring.Readable())
}
