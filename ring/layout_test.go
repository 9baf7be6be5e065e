package ring

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestLayoutRejectsZeroCapacity(t *testing.T) {
	_, err := Layout(0, 8, 8)
	require.ErrorIs(t, err, ErrZeroCapacity)
}

func TestLayoutRejectsBadAlignment(t *testing.T) {
	_, err := Layout(16, 8, 3)
	require.ErrorIs(t, err, ErrBadAlignment)
}

func TestLayoutRejectsOverflow(t *testing.T) {
	_, err := Layout(1<<62, 1<<8, 8)
	require.ErrorIs(t, err, ErrCapacityOverflow)
}

func TestLayoutDataOffsetAlignment(t *testing.T) {
	region, err := Layout(64, 16, 16)
	require.NoError(t, err)
	require.GreaterOrEqual(t, region.DataOffset, uintptr(headerSize))
	require.Zero(t, region.DataOffset%16)
	require.Equal(t, region.DataOffset+64*16, region.TotalBytes)
}

func TestLayoutForMatchesUnsafeSizes(t *testing.T) {
	type packet struct {
		Seq  uint64
		Body [24]byte
	}

	region, err := LayoutFor[packet](128)
	require.NoError(t, err)

	var zero packet
	require.Zero(t, region.DataOffset%unsafe.Alignof(zero))
	require.Equal(t, region.DataOffset+uintptr(128)*unsafe.Sizeof(zero), region.TotalBytes)
}
