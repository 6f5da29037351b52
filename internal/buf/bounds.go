package buf

import (
	"fmt"
	"math"

	"github.com/joshuapare/ppkit/pkg/types"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies two non-negative ints, returning ok = false on
// overflow or when either operand is negative.
func MulOverflowSafe(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// CheckListBounds validates that count elements of elementSize bytes fit in a
// buffer of bufLen bytes starting at offset. It returns the end offset, or a
// types.ErrBounds error describing the failure (overflow or out of range).
//
//	end, err := buf.CheckListBounds(len(payload), first, int(count), format.SclkEntrySize)
//	if err != nil {
//	    return fmt.Errorf("sclk entries: %w", err)
//	}
func CheckListBounds(bufLen, offset, count, elementSize int) (int, error) {
	total, ok := MulOverflowSafe(count, elementSize)
	if !ok {
		return 0, &types.Error{
			Kind: types.ErrKindBounds,
			Msg:  fmt.Sprintf("list size overflow: count=%d * size=%d", count, elementSize),
		}
	}
	end, ok := AddOverflowSafe(offset, total)
	if offset < 0 || !ok || end > bufLen {
		return 0, types.BoundsError(offset, total, bufLen)
	}
	return end, nil
}

// Slice returns the sub-slice [off:off+n] if it fits within len(b).
func Slice(b []byte, off, n int) ([]byte, bool) {
	if off < 0 || n < 0 || off > len(b) {
		return nil, false
	}
	end, ok := AddOverflowSafe(off, n)
	if !ok || end > len(b) {
		return nil, false
	}
	return b[off:end], true
}

// Has reports whether b[off:off+n] is within bounds.
func Has(b []byte, off, n int) bool {
	_, ok := Slice(b, off, n)
	return ok
}
