package ring

import "unsafe"

// state is the memory shared between a Producer and its Consumer. Both
// endpoints hold a pointer to the same state; neither owns it exclusively,
// which is why every field access goes through the atomic header methods or
// is otherwise safe for concurrent single-writer/single-reader use.
type state[T any] struct {
	hdr  *header
	data []T
	cap  uint64
}

// Init builds a Producer and Consumer over region, which must already be at
// least Region.TotalBytes long and aligned to Region.TotalAlign as reported
// by LayoutFor[T](capacity). It zeroes both cursors and writes capacity into
// the header; callers must ensure this happens exactly once per region,
// before either endpoint is handed to a producer or consumer goroutine (or
// process).
func Init[T any](region []byte, capacity uint64) (*Producer[T], *Consumer[T], error) {
	layout, err := LayoutFor[T](capacity)
	if err != nil {
		return nil, nil, err
	}
	if uintptr(len(region)) < layout.TotalBytes {
		return nil, nil, ErrRegionTooSmall
	}
	if uintptr(unsafe.Pointer(&region[0]))%layout.TotalAlign != 0 {
		return nil, nil, ErrRegionMisaligned
	}

	hdr := headerAt(region)
	hdr.setCapacity(capacity)
	hdr.storeWriteCursor(0)
	hdr.storeReadCursor(0)

	data := unsafe.Slice((*T)(unsafe.Pointer(&region[layout.DataOffset])), capacity)
	s := &state[T]{hdr: hdr, data: data, cap: capacity}

	return &Producer[T]{s: s}, &Consumer[T]{s: s}, nil
}

// Attach wraps a Producer and Consumer around a region that another call to
// Init already constructed, without touching the header. Use this from a
// second process (or goroutine) that opens an existing shared-memory
// segment: calling Init a second time on the same bytes would zero the
// cursors out from under whichever side is already using them.
//
// capacity must match the value the original Init call used. Attach checks
// only the region's size and alignment against LayoutFor[T](capacity); it
// does not compare capacity with the value stored in the header, so passing
// the wrong capacity silently misinterprets the cursor arithmetic.
func Attach[T any](region []byte, capacity uint64) (*Producer[T], *Consumer[T], error) {
	layout, err := LayoutFor[T](capacity)
	if err != nil {
		return nil, nil, err
	}
	if uintptr(len(region)) < layout.TotalBytes {
		return nil, nil, ErrRegionTooSmall
	}
	if uintptr(unsafe.Pointer(&region[0]))%layout.TotalAlign != 0 {
		return nil, nil, ErrRegionMisaligned
	}

	hdr := headerAt(region)
	data := unsafe.Slice((*T)(unsafe.Pointer(&region[layout.DataOffset])), capacity)
	s := &state[T]{hdr: hdr, data: data, cap: capacity}

	return &Producer[T]{s: s}, &Consumer[T]{s: s}, nil
}
