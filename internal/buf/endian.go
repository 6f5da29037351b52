// Package buf contains bounds-checked little-endian field accessors. Every
// read and write validates off+width against the buffer and fails with a
// types.ErrBounds error instead of touching memory outside it.
package buf

import (
	"encoding/binary"

	"github.com/joshuapare/ppkit/pkg/types"
)

// Field widths in bytes.
const (
	U8Size  = 1
	U16Size = 2
	U32Size = 4
)

func check(b []byte, off, width int) error {
	if !Has(b, off, width) {
		return types.BoundsError(off, width, len(b))
	}
	return nil
}

// ReadU8 returns b[off].
func ReadU8(b []byte, off int) (uint8, error) {
	if err := check(b, off, U8Size); err != nil {
		return 0, err
	}
	return b[off], nil
}

// ReadU16LE reads a little-endian uint16 at off.
func ReadU16LE(b []byte, off int) (uint16, error) {
	if err := check(b, off, U16Size); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b[off:]), nil
}

// ReadU32LE reads a little-endian uint32 at off.
func ReadU32LE(b []byte, off int) (uint32, error) {
	if err := check(b, off, U32Size); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b[off:]), nil
}

// PutU8 stores v at b[off].
func PutU8(b []byte, off int, v uint8) error {
	if err := check(b, off, U8Size); err != nil {
		return err
	}
	b[off] = v
	return nil
}

// PutU16LE writes exactly two bytes of v at off.
func PutU16LE(b []byte, off int, v uint16) error {
	if err := check(b, off, U16Size); err != nil {
		return err
	}
	binary.LittleEndian.PutUint16(b[off:], v)
	return nil
}

// PutU32LE writes exactly four bytes of v at off.
func PutU32LE(b []byte, off int, v uint32) error {
	if err := check(b, off, U32Size); err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(b[off:], v)
	return nil
}
