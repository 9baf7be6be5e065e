package ring

// Consumer is the read endpoint of a channel. Exactly one goroutine (or
// process) may drive a given Consumer at a time.
type Consumer[T any] struct {
	s *state[T]
}

// Readable returns a snapshot of the number of elements available to read
// right now. It may be stale the instant it returns.
func (c *Consumer[T]) Readable() uint64 {
	r := c.s.hdr.loadReadCursorOwn()
	w := c.s.hdr.loadWriteCursorPeer()
	return w - r
}

// Recv offers fn up to two contiguous slices covering the currently
// available elements, in order. fn must return the number of elements it
// actually consumed, starting from the front of a and continuing into b;
// Recv advances the read cursor by that many and returns it as n.
//
// fn may consume fewer elements than offered, including zero. Reporting a
// count greater than len(a)+len(b) is a contract violation and Recv panics.
//
// wasFull reports whether the channel was completely full immediately
// before this call, at no extra atomic cost; the wakeup layer uses it to
// arm the producer's descriptor only on the full-to-non-full transition.
func (c *Consumer[T]) Recv(fn func(a, b []T) int) (n int, wasFull bool) {
	h := c.s.hdr
	r := h.loadReadCursorOwn()
	w := h.loadWriteCursorPeer()

	avail := w - r
	wasFull = avail == c.s.cap
	if avail == 0 {
		return 0, wasFull
	}

	start := r % c.s.cap
	firstLen := c.s.cap - start
	if firstLen > avail {
		firstLen = avail
	}

	a := c.s.data[start : start+firstLen]
	var b []T
	if firstLen < avail {
		b = c.s.data[0 : avail-firstLen]
	}

	read := fn(a, b)
	if read < 0 || uint64(read) > avail {
		panic("ring: Recv callback reported consuming more elements than it was offered")
	}
	if read == 0 {
		return 0, wasFull
	}

	h.storeReadCursor(r + uint64(read))
	return read, wasFull
}
