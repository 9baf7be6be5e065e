package wakeup

import "context"

// ChanDescriptor is a Descriptor for the in-process case, standing in for a
// counting fd with a single-slot channel: an Arm on an already-pending
// descriptor is a no-op send, which is exactly the coalescing behavior
// eventfd gives for free. It has no real file descriptor, so Fd returns -1
// and it cannot be handed to an external epoll/kqueue loop; use EventFD (or
// another real fd-backed Descriptor) when that's required.
type ChanDescriptor struct {
	signal chan struct{}
}

// NewChanDescriptor returns a ChanDescriptor with no pending signal.
func NewChanDescriptor() *ChanDescriptor {
	return &ChanDescriptor{signal: make(chan struct{}, 1)}
}

func (d *ChanDescriptor) Arm() error {
	select {
	case d.signal <- struct{}{}:
	default:
	}
	return nil
}

func (d *ChanDescriptor) Drain() error {
	select {
	case <-d.signal:
	default:
	}
	return nil
}

func (d *ChanDescriptor) Wait(ctx context.Context) error {
	select {
	case <-d.signal:
		// Put the signal back: Wait must not consume it, only Drain may.
		select {
		case d.signal <- struct{}{}:
		default:
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *ChanDescriptor) Fd() int {
	return -1
}
