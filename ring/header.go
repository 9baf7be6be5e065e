package ring

import (
	"sync/atomic"
	"unsafe"
)

// header is the fixed-size record every region starts with. Its three
// fields are plain uint64s at fixed offsets, accessed only through the
// atomic.*Uint64 functions below, never as a Go struct value copy — this is
// what lets the same bytes be read by another process that has its own,
// independently constructed *header pointing at the same mapping.
//
// Go's sync/atomic operations are sequentially consistent, a strengthening
// of the relaxed-own-cursor/acquire-peer-cursor/release-own-cursor discipline
// this protocol needs; every ordering the protocol relies on still holds
// under the stronger guarantee.
type header struct {
	capacity    uint64 // 0x00: element capacity, fixed at construction
	writeCursor uint64 // 0x08: producer-owned monotonic count
	readCursor  uint64 // 0x10: consumer-owned monotonic count
}

func headerAt(region []byte) *header {
	return (*header)(unsafe.Pointer(&region[0]))
}

func (h *header) Capacity() uint64 {
	return atomic.LoadUint64(&h.capacity)
}

func (h *header) setCapacity(c uint64) {
	atomic.StoreUint64(&h.capacity, c)
}

// loadWriteCursorOwn is the producer's own-cursor read.
func (h *header) loadWriteCursorOwn() uint64 {
	return atomic.LoadUint64(&h.writeCursor)
}

// loadWriteCursorPeer is the consumer's read of the producer's cursor.
func (h *header) loadWriteCursorPeer() uint64 {
	return atomic.LoadUint64(&h.writeCursor)
}

func (h *header) storeWriteCursor(v uint64) {
	atomic.StoreUint64(&h.writeCursor, v)
}

// loadReadCursorOwn is the consumer's own-cursor read.
func (h *header) loadReadCursorOwn() uint64 {
	return atomic.LoadUint64(&h.readCursor)
}

// loadReadCursorPeer is the producer's read of the consumer's cursor.
func (h *header) loadReadCursorPeer() uint64 {
	return atomic.LoadUint64(&h.readCursor)
}

func (h *header) storeReadCursor(v uint64) {
	atomic.StoreUint64(&h.readCursor, v)
}
