package ring

import "runtime"

// SendItems sends up to count elements, produced one at a time by fn(i) for
// i in [0, count), and returns how many were actually sent. It is a thin
// convenience layer over Send for callers that would rather produce items
// individually than fill a slice; it stops as soon as a Send call makes no
// progress (the channel is full), so a short return means the channel filled
// up partway through, not an error.
//
// Restored from fdringbuf-rs's send_foreach, which looped internally because
// its underlying send handed out one contiguous slice at a time. Send here
// already offers both slices around the wrap boundary in a single call, so
// SendItems only needs to retry when a call runs out of offered capacity
// before count is reached.
//
// A short return is routine, not exceptional: callers that need every item
// delivered must retry it themselves once the consumer has made room, e.g.
//
//	sent := 0
//	for sent < count {
//		sent += ring.SendItems(p, count-sent, func(i int) T { return produce(sent + i) })
//	}
//
// SendItemsBlocking below does exactly this.
func SendItems[T any](p *Producer[T], count int, fn func(i int) T) int {
	sent := 0
	for sent < count {
		remaining := count - sent
		base := sent
		n, _ := p.Send(func(a, b []T) int {
			filled := 0
			for i := range a {
				if filled >= remaining {
					return filled
				}
				a[i] = fn(base + filled)
				filled++
			}
			for i := range b {
				if filled >= remaining {
					return filled
				}
				b[i] = fn(base + filled)
				filled++
			}
			return filled
		})
		if n == 0 {
			break
		}
		sent += n
	}
	return sent
}

// SendItemsBlocking sends exactly count elements, retrying SendItems until
// it does; it never gives up, so it keeps spinning for as long as the
// consumer makes no room. Between
// retries it calls runtime.Gosched so the consumer goroutine gets a chance
// to drain; this is a spin-yield poll, not the descriptor-based blocking the
// wakeup package provides, and is only appropriate when the peer is known to
// be actively draining (a benchmark, a test, a demo). Production code that
// wants to sleep instead of spin should use wakeup.Producer.Wait.
func SendItemsBlocking[T any](p *Producer[T], count int, fn func(i int) T) int {
	sent := 0
	for sent < count {
		base := sent
		n := SendItems(p, count-sent, func(i int) T { return fn(base + i) })
		sent += n
		if n == 0 {
			runtime.Gosched()
		}
	}
	return sent
}

// RecvItems receives up to count elements, delivering each to fn(i, v) with
// i in [0, count) as it goes, and returns how many were actually delivered.
// Like SendItems, it stops making progress as soon as one Recv call reads
// nothing, meaning the channel ran dry before count was reached.
func RecvItems[T any](c *Consumer[T], count int, fn func(i int, v T)) int {
	received := 0
	for received < count {
		remaining := count - received
		base := received
		n, _ := c.Recv(func(a, b []T) int {
			consumed := 0
			for i := range a {
				if consumed >= remaining {
					return consumed
				}
				fn(base+consumed, a[i])
				consumed++
			}
			for i := range b {
				if consumed >= remaining {
					return consumed
				}
				fn(base+consumed, b[i])
				consumed++
			}
			return consumed
		})
		if n == 0 {
			break
		}
		received += n
	}
	return received
}

// RecvItemsBlocking receives exactly count elements, retrying RecvItems and
// yielding via runtime.Gosched between attempts. Same caveat as
// SendItemsBlocking: a spin-yield poll for benchmarks, tests, and demos
// where the peer is known to be actively producing, not a substitute for
// wakeup.Consumer.Wait in production code.
func RecvItemsBlocking[T any](c *Consumer[T], count int, fn func(i int, v T)) int {
	received := 0
	for received < count {
		base := received
		n := RecvItems(c, count-received, func(i int, v T) { fn(base+i, v) })
		received += n
		if n == 0 {
			runtime.Gosched()
		}
	}
	return received
}
