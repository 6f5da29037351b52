package buf

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/ppkit/pkg/types"
)

func TestReadHelpers(t *testing.T) {
	data := []byte{0x01, 0x23, 0x45, 0x67, 0x89}

	u8, err := ReadU8(data, 4)
	require.NoError(t, err)
	require.Equal(t, uint8(0x89), u8)

	u16, err := ReadU16LE(data, 0)
	require.NoError(t, err)
	require.Equal(t, uint16(0x2301), u16)

	u32, err := ReadU32LE(data, 1)
	require.NoError(t, err)
	require.Equal(t, uint32(0x89674523), u32)
}

func TestReadOutOfBounds(t *testing.T) {
	data := []byte{0xAA, 0xBB, 0xCC}

	_, err := ReadU8(data, 3)
	require.ErrorIs(t, err, types.ErrBounds)
	_, err = ReadU16LE(data, 2)
	require.ErrorIs(t, err, types.ErrBounds)
	_, err = ReadU32LE(data, 0)
	require.ErrorIs(t, err, types.ErrBounds)
	_, err = ReadU16LE(data, -1)
	require.ErrorIs(t, err, types.ErrBounds)
}

func TestPutHelpersWriteExactWidth(t *testing.T) {
	data := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}

	require.NoError(t, PutU16LE(data, 1, 0x1234))
	require.Equal(t, []byte{0xFF, 0x34, 0x12, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, data)

	require.NoError(t, PutU32LE(data, 4, 0xA1B2C3D4))
	require.Equal(t, []byte{0xFF, 0x34, 0x12, 0xFF, 0xD4, 0xC3, 0xB2, 0xA1}, data)

	require.NoError(t, PutU8(data, 0, 0x07))
	require.Equal(t, uint8(0x07), data[0])
}

func TestPutOutOfBoundsLeavesBufferUntouched(t *testing.T) {
	data := []byte{1, 2, 3}

	require.ErrorIs(t, PutU32LE(data, 0, 0xDEADBEEF), types.ErrBounds)
	require.ErrorIs(t, PutU16LE(data, 2, 0xBEEF), types.ErrBounds)
	require.ErrorIs(t, PutU8(data, 3, 9), types.ErrBounds)
	require.Equal(t, []byte{1, 2, 3}, data)
}
