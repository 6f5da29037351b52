package format

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/ppkit/internal/testutil"
	"github.com/joshuapare/ppkit/pkg/types"
)

func TestDecodeMclkEntry(t *testing.T) {
	payload := testutil.Payload()
	off := testutil.MclkOffset + DependencyHeaderSize + 2*MclkEntrySize

	e, err := DecodeMclkEntry(payload, off)
	require.NoError(t, err)
	require.Equal(t, MclkEntry{
		VddcIndex: 2,
		Vddci:     950,
		Mvdd:      1100,
		Mclk:      testutil.MclkMHz[2] * ClockUnitsPerMHz,
	}, e)
	require.Equal(t, payload[off:off+MclkEntrySize], mustMarshal(t, e))
}

func TestDecodeSclkEntry(t *testing.T) {
	payload := testutil.Payload()
	off := testutil.SclkOffset + DependencyHeaderSize + 7*SclkEntrySize

	e, err := DecodeSclkEntry(payload, off)
	require.NoError(t, err)
	require.Equal(t, uint8(7), e.VddIndex)
	require.Equal(t, testutil.SclkMHz[7]*ClockUnitsPerMHz, e.Sclk)
	require.Equal(t, uint8(1), e.CKSVOffsetAndDisable)
	require.Equal(t, uint32(0xFF00), e.SclkOffset)
	require.Equal(t, payload[off:off+SclkEntrySize], mustMarshal(t, e))
}

func TestDecodeVoltageEntry(t *testing.T) {
	payload := testutil.Payload()
	off := testutil.VddcOffset + DependencyHeaderSize + 5*VoltageEntrySize

	e, err := DecodeVoltageEntry(payload, off)
	require.NoError(t, err)
	require.Equal(t, VoltageEntry{Vdd: testutil.VoltagesMV[5], CACLow: 5, CACMid: 0x15, CACHigh: 0x25}, e)
	require.Equal(t, payload[off:off+VoltageEntrySize], mustMarshal(t, e))
}

func TestEntryDecodeTruncated(t *testing.T) {
	b := make([]byte, 14)

	_, err := DecodeSclkEntry(b, 0)
	require.ErrorIs(t, err, types.ErrBounds)
	_, err = DecodeMclkEntry(b, 2)
	require.ErrorIs(t, err, types.ErrBounds)
	_, err = DecodeVoltageEntry(b, 7)
	require.ErrorIs(t, err, types.ErrBounds)
}

func TestSclkEncodeFieldIsolation(t *testing.T) {
	payload := testutil.Payload()
	off := testutil.SclkOffset + DependencyHeaderSize

	e, err := DecodeSclkEntry(payload, off)
	require.NoError(t, err)
	e.Sclk = 1400 * ClockUnitsPerMHz

	out := append([]byte(nil), payload...)
	require.NoError(t, e.Encode(out, off))

	// sclk sits at bytes 3..6 of the entry
	for i := range payload {
		if i >= off+3 && i < off+7 {
			continue
		}
		require.Equal(t, payload[i], out[i], "byte %d changed", i)
	}
	require.Equal(t, []byte{0xE0, 0x22, 0x02, 0x00}, out[off+3:off+7])
}
