package pptable

import (
	"github.com/hashicorp/go-multierror"

	"github.com/joshuapare/ppkit/pkg/types"
)

// Check reports structural problems Decode tolerates: sub-table offsets past
// the end of the payload and clock states pointing at missing voltage
// entries. All problems are collected; the result is nil when there are none.
// A zero offset means the sub-table is absent and is not checked.
func (t *Table) Check() error {
	var result *multierror.Error
	for _, o := range t.PowerPlay.Offsets.List() {
		if o.Value != 0 && int(o.Value) >= t.Len() {
			result = multierror.Append(result, types.ValidationError(
				"%s offset 0x%X is past the end of the %d byte payload", o.Name, o.Value, t.Len()))
		}
	}

	n := t.NumVoltages()
	for i, e := range t.CoreClocks.Entries {
		if int(e.VddIndex) >= n {
			result = multierror.Append(result, types.ValidationError(
				"sclk[%d] voltage index %d has no vddc entry (%d entries)", i, e.VddIndex, n))
		}
	}
	for i, e := range t.MemoryClocks.Entries {
		if int(e.VddcIndex) >= n {
			result = multierror.Append(result, types.ValidationError(
				"mclk[%d] voltage index %d has no vddc entry (%d entries)", i, e.VddcIndex, n))
		}
	}
	return result.ErrorOrNil()
}
