package pptable

import (
	"math"

	"github.com/joshuapare/ppkit/internal/format"
	"github.com/joshuapare/ppkit/pkg/types"
)

// Clock fields are stored in 10 kHz units; the accessors below work in MHz.
const maxClockMHz = math.MaxUint32 / format.ClockUnitsPerMHz

func checkIndex(what string, i, n int) error {
	if i < 0 || i >= n {
		return types.BoundsErrorf("pptable: %s index %d out of range [0, %d)", what, i, n)
	}
	return nil
}

func clockUnits(mhz uint32) (uint32, error) {
	if mhz > maxClockMHz {
		return 0, types.ValidationError("pptable: clock %d MHz exceeds %d MHz", mhz, maxClockMHz)
	}
	return mhz * format.ClockUnitsPerMHz, nil
}

// NumCoreClocks is the number of engine clock states.
func (t *Table) NumCoreClocks() int { return len(t.CoreClocks.Entries) }

// NumMemoryClocks is the number of memory clock states.
func (t *Table) NumMemoryClocks() int { return len(t.MemoryClocks.Entries) }

// NumVoltages is the number of VDDC lookup entries.
func (t *Table) NumVoltages() int { return len(t.Voltages.Entries) }

// CoreClockMHz returns engine clock state i in MHz, truncating sub-MHz units.
func (t *Table) CoreClockMHz(i int) (uint32, error) {
	if err := checkIndex("sclk", i, t.NumCoreClocks()); err != nil {
		return 0, err
	}
	return t.CoreClocks.Entries[i].Sclk / format.ClockUnitsPerMHz, nil
}

// SetCoreClockMHz sets engine clock state i.
func (t *Table) SetCoreClockMHz(i int, mhz uint32) error {
	if err := checkIndex("sclk", i, t.NumCoreClocks()); err != nil {
		return err
	}
	v, err := clockUnits(mhz)
	if err != nil {
		return err
	}
	t.CoreClocks.Entries[i].Sclk = v
	return nil
}

// CoreVoltageIndex returns the VDDC lookup index used by engine state i.
func (t *Table) CoreVoltageIndex(i int) (uint8, error) {
	if err := checkIndex("sclk", i, t.NumCoreClocks()); err != nil {
		return 0, err
	}
	return t.CoreClocks.Entries[i].VddIndex, nil
}

// SetCoreVoltageIndex points engine state i at VDDC lookup entry idx, which
// must exist.
func (t *Table) SetCoreVoltageIndex(i int, idx uint8) error {
	if err := checkIndex("sclk", i, t.NumCoreClocks()); err != nil {
		return err
	}
	if int(idx) >= t.NumVoltages() {
		return types.ValidationError("pptable: voltage index %d out of range [0, %d)", idx, t.NumVoltages())
	}
	t.CoreClocks.Entries[i].VddIndex = idx
	return nil
}

// MemoryClockMHz returns memory clock state i in MHz.
func (t *Table) MemoryClockMHz(i int) (uint32, error) {
	if err := checkIndex("mclk", i, t.NumMemoryClocks()); err != nil {
		return 0, err
	}
	return t.MemoryClocks.Entries[i].Mclk / format.ClockUnitsPerMHz, nil
}

// SetMemoryClockMHz sets memory clock state i.
func (t *Table) SetMemoryClockMHz(i int, mhz uint32) error {
	if err := checkIndex("mclk", i, t.NumMemoryClocks()); err != nil {
		return err
	}
	v, err := clockUnits(mhz)
	if err != nil {
		return err
	}
	t.MemoryClocks.Entries[i].Mclk = v
	return nil
}

// MemoryVoltage returns the MVDD of memory state i in mV.
func (t *Table) MemoryVoltage(i int) (uint16, error) {
	if err := checkIndex("mclk", i, t.NumMemoryClocks()); err != nil {
		return 0, err
	}
	return t.MemoryClocks.Entries[i].Mvdd, nil
}

// SetMemoryVoltage sets the MVDD of memory state i in mV.
func (t *Table) SetMemoryVoltage(i int, mv uint16) error {
	if err := checkIndex("mclk", i, t.NumMemoryClocks()); err != nil {
		return err
	}
	t.MemoryClocks.Entries[i].Mvdd = mv
	return nil
}

// Voltage returns VDDC lookup entry i in mV.
func (t *Table) Voltage(i int) (uint16, error) {
	if err := checkIndex("vddc", i, t.NumVoltages()); err != nil {
		return 0, err
	}
	return t.Voltages.Entries[i].Vdd, nil
}

// SetVoltage sets VDDC lookup entry i in mV.
func (t *Table) SetVoltage(i int, mv uint16) error {
	if err := checkIndex("vddc", i, t.NumVoltages()); err != nil {
		return err
	}
	t.Voltages.Entries[i].Vdd = mv
	return nil
}

// PowerControlLimit is the overdrive power limit percentage.
func (t *Table) PowerControlLimit() uint16 { return t.PowerPlay.PowerControlLimit }

// SetPowerControlLimit sets the overdrive power limit percentage.
func (t *Table) SetPowerControlLimit(pct uint16) { t.PowerPlay.PowerControlLimit = pct }

// TDP is the thermal design power in W.
func (t *Table) TDP() uint16 { return t.PowerTune.TDP }

// SetTDP sets the thermal design power in W.
func (t *Table) SetTDP(w uint16) { t.PowerTune.TDP = w }

// TDC is the thermal design current in A.
func (t *Table) TDC() uint16 { return t.PowerTune.TDC }

// SetTDC sets the thermal design current in A.
func (t *Table) SetTDC(a uint16) { t.PowerTune.TDC = a }

// MaxPowerDeliveryLimit is the maximum power delivery limit in W.
func (t *Table) MaxPowerDeliveryLimit() uint16 { return t.PowerTune.MaximumPowerDeliveryLimit }

// SetMaxPowerDeliveryLimit sets the maximum power delivery limit in W.
func (t *Table) SetMaxPowerDeliveryLimit(w uint16) { t.PowerTune.MaximumPowerDeliveryLimit = w }
