package pptable

import (
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/ppkit/internal/testutil"
	"github.com/joshuapare/ppkit/pkg/types"
)

func TestCheckSample(t *testing.T) {
	tbl, _ := decodeSample(t)
	require.NoError(t, tbl.Check())
}

func TestCheckCollectsAllProblems(t *testing.T) {
	payload := testutil.Payload()
	// gpio and pcie offsets point past the end
	payload[0x21+2*14] = 0xFF
	payload[0x21+2*14+1] = 0x01
	payload[0x21+2*15] = 0xFF
	payload[0x21+2*15+1] = 0x10
	// sclk[2] refers to a missing voltage entry
	payload[testutil.SclkOffset+2+2*15] = 12

	tbl, err := Decode(payload)
	require.NoError(t, err)

	err = tbl.Check()
	require.Error(t, err)
	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 3)
	for _, e := range merr.Errors {
		assert.ErrorIs(t, e, types.ErrValidation)
	}
	assert.Contains(t, err.Error(), "gpio_table")
	assert.Contains(t, err.Error(), "sclk[2]")
}
