package format

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/ppkit/internal/testutil"
	"github.com/joshuapare/ppkit/pkg/types"
)

func TestDecodePowerTuneTable(t *testing.T) {
	payload := testutil.Payload()

	pt, err := DecodePowerTuneTable(payload, testutil.PowerTuneOffset)
	require.NoError(t, err)
	require.Equal(t, uint8(3), pt.Revision)
	require.Equal(t, uint16(testutil.SampleTDP), pt.TDP)
	require.Equal(t, uint16(testutil.SampleTDP), pt.ConfigurableTDP)
	require.Equal(t, uint16(testutil.SampleTDC), pt.TDC)
	require.Equal(t, uint16(testutil.SampleMaxPowerDelivery), pt.MaximumPowerDeliveryLimit)
	require.Equal(t, uint16(90), pt.TjMax)
	require.Equal(t, uint16(105), pt.TemperatureLimitPlx)
	require.Equal(t, uint8(0x10), pt.Liquid1I2CAddress)
	require.Equal(t, uint8(0x03), pt.PlxI2CLine)

	end := testutil.PowerTuneOffset + PowerTuneTableSize
	require.Equal(t, payload[testutil.PowerTuneOffset:end], mustMarshal(t, pt))
}

func TestDecodePowerTuneTableBounds(t *testing.T) {
	payload := testutil.Payload()

	_, err := DecodePowerTuneTable(payload, len(payload)-PowerTuneTableSize+1)
	require.ErrorIs(t, err, types.ErrBounds)

	_, err = DecodePowerTuneTable(payload, len(payload)-PowerTuneTableSize)
	require.NoError(t, err)
}
