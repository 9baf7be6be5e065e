package ring

import "errors"

var (
	// ErrZeroCapacity is returned by Layout/LayoutFor when capacity is 0.
	ErrZeroCapacity = errors.New("ring: capacity must be non-zero")

	// ErrCapacityOverflow is returned when capacity*elemSize overflows uintptr.
	ErrCapacityOverflow = errors.New("ring: capacity overflows region size")

	// ErrBadAlignment is returned when elemAlign is not a power of two.
	ErrBadAlignment = errors.New("ring: element alignment must be a power of two")

	// ErrRegionTooSmall is returned by Init when the supplied region is
	// smaller than the Region.TotalBytes Layout computed for it.
	ErrRegionTooSmall = errors.New("ring: region smaller than required layout")

	// ErrRegionMisaligned is returned by Init when the region's first byte
	// is not aligned to Region.TotalAlign.
	ErrRegionMisaligned = errors.New("ring: region base address misaligned")
)
