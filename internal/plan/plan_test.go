package plan

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/ppkit/internal/testutil"
	"github.com/joshuapare/ppkit/pkg/pptable"
	"github.com/joshuapare/ppkit/pkg/types"
)

const samplePlan = `
description: mild overclock
edits:
  - field: sclk[7].clock_mhz
    value: 1400
  - field: power_control_limit
    value: 75
`

type recorder struct {
	names  []string
	values []uint64
	failOn string
}

func (r *recorder) Set(name string, v uint64) error {
	if name == r.failOn {
		return types.ValidationError("rejected")
	}
	r.names = append(r.names, name)
	r.values = append(r.values, v)
	return nil
}

func TestLoad(t *testing.T) {
	p, err := Load(strings.NewReader(samplePlan))
	require.NoError(t, err)
	assert.Equal(t, "mild overclock", p.Description)
	require.Len(t, p.Edits, 2)
	assert.Equal(t, "sclk[7].clock_mhz", p.Edits[0].Field)
	assert.Equal(t, uint64(1400), *p.Edits[0].Value)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		kind error
	}{
		{"empty", "", types.ErrValidation},
		{"no edits", "description: x\n", types.ErrValidation},
		{"unknown key", "edits:\n  - field: tdp\n    value: 1\n    unit: W\n", types.ErrFormat},
		{"missing value", "edits:\n  - field: tdp\n", types.ErrValidation},
		{"missing field", "edits:\n  - value: 3\n", types.ErrValidation},
		{"negative value", "edits:\n  - field: tdp\n    value: -3\n", types.ErrFormat},
		{"not yaml", "edits: [", types.ErrFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc))
			require.ErrorIs(t, err, tt.kind)
		})
	}
}

func TestApplyInOrder(t *testing.T) {
	p, err := Load(strings.NewReader(samplePlan))
	require.NoError(t, err)

	var r recorder
	n, err := p.Apply(&r)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"sclk[7].clock_mhz", "power_control_limit"}, r.names)
	assert.Equal(t, []uint64{1400, 75}, r.values)
}

func TestApplyStopsAtFirstFailure(t *testing.T) {
	p, err := Load(strings.NewReader(samplePlan))
	require.NoError(t, err)

	r := recorder{failOn: "sclk[7].clock_mhz"}
	n, err := p.Apply(&r)
	require.ErrorIs(t, err, types.ErrValidation)
	assert.Equal(t, 0, n)
	assert.Empty(t, r.names)
	assert.Contains(t, err.Error(), "edit 0")
}

func TestApplyToTable(t *testing.T) {
	tbl, err := pptable.Decode(testutil.Payload())
	require.NoError(t, err)

	p, err := Load(strings.NewReader(samplePlan))
	require.NoError(t, err)
	_, err = p.Apply(tbl)
	require.NoError(t, err)

	mhz, err := tbl.CoreClockMHz(7)
	require.NoError(t, err)
	assert.Equal(t, uint32(1400), mhz)
	assert.Equal(t, uint16(75), tbl.PowerControlLimit())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(samplePlan), 0o600))

	p, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, p.Edits, 2)

	_, err = LoadFile(filepath.Join(t.TempDir(), "none.yaml"))
	require.ErrorIs(t, err, types.ErrIO)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
