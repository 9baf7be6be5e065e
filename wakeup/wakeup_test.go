package wakeup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ringlib/shmring/ring"
)

func newIntChannel(t *testing.T, capacity uint64) (*ring.Producer[int], *ring.Consumer[int]) {
	t.Helper()
	layout, err := ring.LayoutFor[int](capacity)
	require.NoError(t, err)
	region := make([]byte, layout.TotalBytes)
	p, c, err := ring.Init[int](region, capacity)
	require.NoError(t, err)
	return p, c
}

func newPair(t *testing.T, capacity uint64) (*Producer[int], *Consumer[int]) {
	t.Helper()
	rp, rc := newIntChannel(t, capacity)
	p, c := New[int](rp, rc, NewChanDescriptor(), NewChanDescriptor(), nil, "test")
	return p, c
}

// TestConsumerWaitReturnsWhenAlreadyReadable covers the fast path: a Wait
// call must never touch the descriptor when the ring already has data,
// which is what makes an already-awake peer syscall-free.
func TestConsumerWaitReturnsWhenAlreadyReadable(t *testing.T) {
	p, c := newPair(t, 4)

	_, err := p.Send(func(a, b []int) int { a[0] = 1; return 1 })
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	require.NoError(t, c.Wait(ctx))
}

// TestEdgeTriggeredArmOnTransitionOnly covers scenario S2: Send only arms
// the data-available descriptor on the empty-to-non-empty transition, never
// on a Send into an already-non-empty channel.
func TestEdgeTriggeredArmOnTransitionOnly(t *testing.T) {
	rp, rc := newIntChannel(t, 4)
	dataAvailable := NewChanDescriptor()
	p, c := New[int](rp, rc, dataAvailable, NewChanDescriptor(), nil, "test")

	_, err := p.Send(func(a, b []int) int { a[0] = 1; return 1 })
	require.NoError(t, err)

	// The transition armed the descriptor: waiting on it must return
	// immediately. (Consumer.Wait would return early on Readable() > 0
	// alone, so the descriptor itself is checked here.)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	require.NoError(t, dataAvailable.Wait(ctx))
	require.NoError(t, c.WaitClear())

	// A second send into an already non-empty channel must not re-arm.
	_, err = p.Send(func(a, b []int) int { a[0] = 2; return 1 })
	require.NoError(t, err)

	ctx2, cancel2 := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel2()
	require.ErrorIs(t, dataAvailable.Wait(ctx2), context.DeadlineExceeded)
}

// TestSymmetricSpaceWake covers the producer side of S2: Recv arms
// spaceAvailable only on the full-to-non-full transition.
func TestSymmetricSpaceWake(t *testing.T) {
	p, c := newPair(t, 2)

	_, err := p.Send(func(a, b []int) int { return len(a) + len(b) })
	require.NoError(t, err)
	require.EqualValues(t, 0, p.Writable())

	blocked := make(chan error, 1)
	go func() {
		blocked <- p.Wait(context.Background())
	}()

	time.Sleep(10 * time.Millisecond)
	select {
	case <-blocked:
		t.Fatal("producer should still be waiting for space")
	default:
	}

	_, err = c.Recv(func(a, b []int) int { return 1 })
	require.NoError(t, err)

	select {
	case err := <-blocked:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("producer should have woken after space freed")
	}
}

// TestWaitClearPrecondition documents and exercises the wait_clear
// precondition: draining a descriptor without first re-observing the
// channel condition can consume a signal meant for a still-empty check, so
// anything waiting on the descriptor alone would then block despite data
// having arrived in the interim. This is not a bug in WaitClear; it's why the
// precondition exists.
func TestWaitClearPrecondition(t *testing.T) {
	p, c := newPair(t, 4)

	_, err := p.Send(func(a, b []int) int { a[0] = 1; return 1 })
	require.NoError(t, err)

	// Violate the precondition: drain without having observed Readable()
	// ourselves, simulating a caller that clears speculatively.
	require.NoError(t, c.WaitClear())

	// The data is still physically there (WaitClear does not touch the
	// ring), so a correct caller recovers by checking Readable() directly
	// rather than trusting the descriptor alone.
	require.EqualValues(t, 1, c.Readable())

	n, err := c.Recv(func(a, b []int) int { return len(a) + len(b) })
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestWaitStatusReportsFdAndCount(t *testing.T) {
	p, c := newPair(t, 4)

	fd, avail := c.WaitStatus()
	require.Equal(t, -1, fd)
	require.Zero(t, avail)

	_, err := p.Send(func(a, b []int) int { a[0] = 1; return 1 })
	require.NoError(t, err)

	_, avail = c.WaitStatus()
	require.Equal(t, 1, avail)
}
