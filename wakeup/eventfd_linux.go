//go:build linux

package wakeup

import (
	"context"
	"encoding/binary"
	"errors"
	"time"

	"golang.org/x/sys/unix"
)

// pollSlice bounds how long a single poll(2) call waits before EventFD.Wait
// rechecks ctx. It trades a small amount of wakeup latency after
// cancellation for not needing a second fd (a self-pipe or timerfd) purely
// to make poll interruptible by context.
const pollSlice = 50 * time.Millisecond

// EventFD is a Descriptor backed by a Linux eventfd(2) counter. Arm writes
// the value 1; because eventfd created in default (non-EFD_SEMAPHORE) mode
// adds to an internal counter and stays readable as long as that counter is
// non-zero, repeated Arms before a Drain coalesce into "still readable"
// rather than queuing up separate wakeups.
type EventFD struct {
	fd int
}

// NewEventFD creates a non-blocking eventfd starting at counter value 0.
func NewEventFD() (*EventFD, error) {
	fd, err := unix.Eventfd(0, unix.EFD_CLOEXEC|unix.EFD_NONBLOCK)
	if err != nil {
		return nil, err
	}
	return &EventFD{fd: fd}, nil
}

// Fd returns the raw eventfd descriptor.
func (e *EventFD) Fd() int {
	return e.fd
}

// Close releases the underlying descriptor. It is not part of the
// Descriptor interface: closing is the creator's responsibility, not every
// holder's, per the "destruction does not close descriptors it did not
// create" lifecycle rule.
func (e *EventFD) Close() error {
	return unix.Close(e.fd)
}

// Arm increments the eventfd counter by 1, making it readable.
func (e *EventFD) Arm() error {
	var buf [8]byte
	binary.NativeEndian.PutUint64(buf[:], 1)
	_, err := unix.Write(e.fd, buf[:])
	return err
}

// Drain reads and discards the current counter value, resetting it to 0.
func (e *EventFD) Drain() error {
	var buf [8]byte
	_, err := unix.Read(e.fd, buf[:])
	if errors.Is(err, unix.EAGAIN) {
		return nil
	}
	return err
}

// Wait blocks until the eventfd is readable or ctx is done, without
// consuming the counter. It polls in pollSlice increments so a canceled or
// expired ctx is noticed promptly instead of only after the descriptor
// becomes ready.
func (e *EventFD) Wait(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fds := []unix.PollFd{{Fd: int32(e.fd), Events: unix.POLLIN}}
		timeoutMs := int(pollSlice / time.Millisecond)
		if deadline, ok := ctx.Deadline(); ok {
			if remaining := time.Until(deadline); remaining < pollSlice {
				if remaining <= 0 {
					return context.DeadlineExceeded
				}
				timeoutMs = int(remaining / time.Millisecond)
			}
		}

		n, err := unix.Poll(fds, timeoutMs)
		if err != nil {
			if errors.Is(err, unix.EINTR) {
				continue
			}
			return err
		}
		if n > 0 && fds[0].Revents&unix.POLLIN != 0 {
			return nil
		}
	}
}
