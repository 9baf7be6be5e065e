//go:build linux

package wakeup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEventFDArmWaitDrain(t *testing.T) {
	fd, err := NewEventFD()
	require.NoError(t, err)
	defer fd.Close()

	require.NotEqual(t, -1, fd.Fd())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	require.ErrorIs(t, fd.Wait(ctx), context.DeadlineExceeded)

	require.NoError(t, fd.Arm())

	ctx2, cancel2 := context.WithTimeout(context.Background(), time.Second)
	defer cancel2()
	require.NoError(t, fd.Wait(ctx2))

	// Wait does not consume: a second Wait must also return immediately.
	ctx3, cancel3 := context.WithTimeout(context.Background(), time.Second)
	defer cancel3()
	require.NoError(t, fd.Wait(ctx3))

	require.NoError(t, fd.Drain())

	ctx4, cancel4 := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel4()
	require.ErrorIs(t, fd.Wait(ctx4), context.DeadlineExceeded)
}

func TestEventFDCoalescesRepeatedArms(t *testing.T) {
	fd, err := NewEventFD()
	require.NoError(t, err)
	defer fd.Close()

	require.NoError(t, fd.Arm())
	require.NoError(t, fd.Arm())
	require.NoError(t, fd.Arm())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, fd.Wait(ctx))
	require.NoError(t, fd.Drain())

	// After one Drain, no further readiness should remain even though Arm
	// was called three times.
	ctx2, cancel2 := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel2()
	require.ErrorIs(t, fd.Wait(ctx2), context.DeadlineExceeded)
}

// TestWakeupPairOverEventFD exercises a full Producer/Consumer pair wired
// to real eventfd descriptors, within a single process (two goroutines).
func TestWakeupPairOverEventFD(t *testing.T) {
	rp, rc := newIntChannel(t, 2)

	dataAvailable, err := NewEventFD()
	require.NoError(t, err)
	defer dataAvailable.Close()
	spaceAvailable, err := NewEventFD()
	require.NoError(t, err)
	defer spaceAvailable.Close()

	p, c := New[int](rp, rc, dataAvailable, spaceAvailable, nil, "eventfd-pair")

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 4; i++ {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			require.NoError(t, p.Wait(ctx))
			cancel()
			p.WaitClear()

			n, err := p.Send(func(a, b []int) int {
				if len(a) == 0 {
					return 0
				}
				a[0] = i
				return 1
			})
			require.NoError(t, err)
			require.Equal(t, 1, n)
		}
	}()

	for i := 0; i < 4; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		require.NoError(t, c.Wait(ctx))
		cancel()
		c.WaitClear()

		got := -1
		n, err := c.Recv(func(a, b []int) int {
			if len(a) == 0 {
				return 0
			}
			got = a[0]
			return 1
		})
		require.NoError(t, err)
		require.Equal(t, 1, n)
		require.Equal(t, i, got)
	}

	<-done
}
