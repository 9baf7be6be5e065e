package ring

// Producer is the write endpoint of a channel. Exactly one goroutine (or,
// across a shared-memory region, one process) may drive a given Producer at
// a time; Producer itself does no internal locking.
type Producer[T any] struct {
	s *state[T]
}

// Writable returns a snapshot of the number of elements that could be sent
// right now. It may be stale the instant it returns, since the consumer can
// concurrently advance the read cursor and free more space.
func (p *Producer[T]) Writable() uint64 {
	w := p.s.hdr.loadWriteCursorOwn()
	r := p.s.hdr.loadReadCursorPeer()
	return p.s.cap - (w - r)
}

// Send offers fn up to two contiguous slices covering the currently free
// capacity, in order. fn must return the number of elements, starting from
// the front of a and continuing into b, that it actually wrote; Send
// advances the write cursor by that many elements and returns it as n.
//
// fn may write fewer elements than offered (a short send), including zero.
// It must never report writing more than len(a)+len(b): doing so is a
// contract violation and Send panics, because by the time the bad count is
// reported fn has already written its elements into the slot storage.
//
// wasEmpty reports whether the channel was empty immediately before this
// call. It costs no extra atomic operation, since it's derived from cursors
// Send already had to load; the wakeup layer uses it to arm the consumer's
// descriptor only on the empty-to-non-empty transition.
func (p *Producer[T]) Send(fn func(a, b []T) int) (n int, wasEmpty bool) {
	h := p.s.hdr
	w := h.loadWriteCursorOwn()
	r := h.loadReadCursorPeer()

	used := w - r
	wasEmpty = used == 0
	free := p.s.cap - used
	if free == 0 {
		return 0, wasEmpty
	}

	start := w % p.s.cap
	firstLen := p.s.cap - start
	if firstLen > free {
		firstLen = free
	}

	a := p.s.data[start : start+firstLen]
	var b []T
	if firstLen < free {
		b = p.s.data[0 : free-firstLen]
	}

	written := fn(a, b)
	if written < 0 || uint64(written) > free {
		panic("ring: Send callback reported writing more elements than it was offered")
	}
	if written == 0 {
		return 0, wasEmpty
	}

	h.storeWriteCursor(w + uint64(written))
	return written, wasEmpty
}
