package pptable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/ppkit/internal/testutil"
	"github.com/joshuapare/ppkit/pkg/types"
)

func TestClockAccessors(t *testing.T) {
	tbl, _ := decodeSample(t)

	for i, want := range testutil.SclkMHz {
		got, err := tbl.CoreClockMHz(i)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	for i, want := range testutil.MclkMHz {
		got, err := tbl.MemoryClockMHz(i)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	require.NoError(t, tbl.SetMemoryClockMHz(2, 2100))
	assert.Equal(t, uint32(210000), tbl.MemoryClocks.Entries[2].Mclk)
}

func TestClockOverflow(t *testing.T) {
	tbl, _ := decodeSample(t)
	err := tbl.SetCoreClockMHz(0, maxClockMHz+1)
	require.ErrorIs(t, err, types.ErrValidation)

	require.NoError(t, tbl.SetCoreClockMHz(0, maxClockMHz))
}

func TestAccessorIndexBounds(t *testing.T) {
	tbl, _ := decodeSample(t)

	_, err := tbl.CoreClockMHz(testutil.SclkCount)
	require.ErrorIs(t, err, types.ErrBounds)
	_, err = tbl.CoreClockMHz(-1)
	require.ErrorIs(t, err, types.ErrBounds)
	require.ErrorIs(t, tbl.SetMemoryClockMHz(testutil.MclkCount, 1000), types.ErrBounds)
	require.ErrorIs(t, tbl.SetMemoryVoltage(testutil.MclkCount, 1000), types.ErrBounds)
	require.ErrorIs(t, tbl.SetVoltage(testutil.VddcCount, 1000), types.ErrBounds)
	_, err = tbl.Voltage(testutil.VddcCount)
	require.ErrorIs(t, err, types.ErrBounds)
}

func TestCoreVoltageIndex(t *testing.T) {
	tbl, _ := decodeSample(t)

	idx, err := tbl.CoreVoltageIndex(5)
	require.NoError(t, err)
	assert.Equal(t, uint8(5), idx)

	require.NoError(t, tbl.SetCoreVoltageIndex(5, 7))
	require.ErrorIs(t, tbl.SetCoreVoltageIndex(5, testutil.VddcCount), types.ErrValidation)

	idx, err = tbl.CoreVoltageIndex(5)
	require.NoError(t, err)
	assert.Equal(t, uint8(7), idx)
}

func TestVoltageAccessors(t *testing.T) {
	tbl, _ := decodeSample(t)

	mv, err := tbl.Voltage(7)
	require.NoError(t, err)
	assert.Equal(t, testutil.VoltagesMV[7], mv)

	mvdd, err := tbl.MemoryVoltage(1)
	require.NoError(t, err)
	assert.Equal(t, uint16(1050), mvdd)

	require.NoError(t, tbl.SetVoltage(7, 1175))
	require.NoError(t, tbl.SetMemoryVoltage(1, 1100))
	out, err := tbl.Encode()
	require.NoError(t, err)

	again, err := Decode(out)
	require.NoError(t, err)
	mv, _ = again.Voltage(7)
	mvdd, _ = again.MemoryVoltage(1)
	assert.Equal(t, uint16(1175), mv)
	assert.Equal(t, uint16(1100), mvdd)
}

func TestPowerLimitAccessors(t *testing.T) {
	tbl, _ := decodeSample(t)
	tbl.SetTDP(180)
	tbl.SetTDC(160)
	tbl.SetMaxPowerDeliveryLimit(200)

	out, err := tbl.Encode()
	require.NoError(t, err)
	again, err := Decode(out)
	require.NoError(t, err)
	assert.Equal(t, uint16(180), again.TDP())
	assert.Equal(t, uint16(160), again.TDC())
	assert.Equal(t, uint16(200), again.MaxPowerDeliveryLimit())
	// configurable TDP shares a value with TDP in the sample but is a
	// separate field
	assert.Equal(t, uint16(testutil.SampleTDP), again.PowerTune.ConfigurableTDP)
}
