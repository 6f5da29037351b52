package pptable

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/joshuapare/ppkit/internal/format"
	"github.com/joshuapare/ppkit/pkg/types"
)

// Field is one named scalar in the table.
type Field struct {
	Name  string `json:"name"`
	Value uint64 `json:"value"`
	Unit  string `json:"unit,omitempty"`
}

// scalarField is a top-level field such as "tdp".
type scalarField struct {
	name string
	unit string
	max  uint64
	get  func(t *Table) uint64
	set  func(t *Table, v uint64) error
}

// entryField is a per-entry field such as "sclk[i].clock_mhz".
type entryField struct {
	name string
	unit string
	max  uint64
	get  func(t *Table, i int) (uint64, error)
	set  func(t *Table, i int, v uint64) error
}

type entryGroup struct {
	prefix string
	count  func(t *Table) int
	fields []entryField
}

func u16Scalar(name, unit string, p func(t *Table) *uint16) scalarField {
	return scalarField{
		name: name,
		unit: unit,
		max:  math.MaxUint16,
		get:  func(t *Table) uint64 { return uint64(*p(t)) },
		set: func(t *Table, v uint64) error {
			*p(t) = uint16(v)
			return nil
		},
	}
}

var scalarFields = []scalarField{
	u16Scalar("power_control_limit", "%", func(t *Table) *uint16 { return &t.PowerPlay.PowerControlLimit }),
	u16Scalar("tdp", "W", func(t *Table) *uint16 { return &t.PowerTune.TDP }),
	u16Scalar("configurable_tdp", "W", func(t *Table) *uint16 { return &t.PowerTune.ConfigurableTDP }),
	u16Scalar("tdc", "A", func(t *Table) *uint16 { return &t.PowerTune.TDC }),
	u16Scalar("max_power_delivery_limit", "W", func(t *Table) *uint16 { return &t.PowerTune.MaximumPowerDeliveryLimit }),
	u16Scalar("tj_max", "C", func(t *Table) *uint16 { return &t.PowerTune.TjMax }),
	u16Scalar("software_shutdown_temp", "C", func(t *Table) *uint16 { return &t.PowerTune.SoftwareShutdownTemp }),
	u16Scalar("temperature_limit_hotspot", "C", func(t *Table) *uint16 { return &t.PowerTune.TemperatureLimitHotspot }),
	{
		name: "max_od_engine_clock_mhz",
		unit: "MHz",
		max:  maxClockMHz,
		get:  func(t *Table) uint64 { return uint64(t.PowerPlay.MaxODEngineClock / format.ClockUnitsPerMHz) },
		set: func(t *Table, v uint64) error {
			u, err := clockUnits(uint32(v))
			if err != nil {
				return err
			}
			t.PowerPlay.MaxODEngineClock = u
			return nil
		},
	},
	{
		name: "max_od_memory_clock_mhz",
		unit: "MHz",
		max:  maxClockMHz,
		get:  func(t *Table) uint64 { return uint64(t.PowerPlay.MaxODMemoryClock / format.ClockUnitsPerMHz) },
		set: func(t *Table, v uint64) error {
			u, err := clockUnits(uint32(v))
			if err != nil {
				return err
			}
			t.PowerPlay.MaxODMemoryClock = u
			return nil
		},
	},
}

var entryGroups = []entryGroup{
	{
		prefix: "sclk",
		count:  (*Table).NumCoreClocks,
		fields: []entryField{
			{
				name: "clock_mhz", unit: "MHz", max: maxClockMHz,
				get: func(t *Table, i int) (uint64, error) { v, err := t.CoreClockMHz(i); return uint64(v), err },
				set: func(t *Table, i int, v uint64) error { return t.SetCoreClockMHz(i, uint32(v)) },
			},
			{
				name: "voltage_index", max: math.MaxUint8,
				get: func(t *Table, i int) (uint64, error) { v, err := t.CoreVoltageIndex(i); return uint64(v), err },
				set: func(t *Table, i int, v uint64) error { return t.SetCoreVoltageIndex(i, uint8(v)) },
			},
		},
	},
	{
		prefix: "mclk",
		count:  (*Table).NumMemoryClocks,
		fields: []entryField{
			{
				name: "clock_mhz", unit: "MHz", max: maxClockMHz,
				get: func(t *Table, i int) (uint64, error) { v, err := t.MemoryClockMHz(i); return uint64(v), err },
				set: func(t *Table, i int, v uint64) error { return t.SetMemoryClockMHz(i, uint32(v)) },
			},
			{
				name: "mvdd", unit: "mV", max: math.MaxUint16,
				get: func(t *Table, i int) (uint64, error) { v, err := t.MemoryVoltage(i); return uint64(v), err },
				set: func(t *Table, i int, v uint64) error { return t.SetMemoryVoltage(i, uint16(v)) },
			},
		},
	},
	{
		prefix: "vddc",
		count:  (*Table).NumVoltages,
		fields: []entryField{
			{
				name: "voltage", unit: "mV", max: math.MaxUint16,
				get: func(t *Table, i int) (uint64, error) { v, err := t.Voltage(i); return uint64(v), err },
				set: func(t *Table, i int, v uint64) error { return t.SetVoltage(i, uint16(v)) },
			},
		},
	},
}

// fieldRef is a parsed field name.
type fieldRef struct {
	scalar *scalarField
	entry  *entryField
	index  int
}

// parseFieldName resolves "name" or "group[index].name".
func parseFieldName(name string) (fieldRef, error) {
	open := strings.IndexByte(name, '[')
	if open < 0 {
		for i := range scalarFields {
			if scalarFields[i].name == name {
				return fieldRef{scalar: &scalarFields[i]}, nil
			}
		}
		return fieldRef{}, types.ValidationError("pptable: unknown field %q", name)
	}

	prefix := name[:open]
	closeIdx := strings.Index(name[open:], "].")
	if closeIdx < 0 {
		return fieldRef{}, types.ValidationError("pptable: malformed field name %q", name)
	}
	idxText := name[open+1 : open+closeIdx]
	leaf := name[open+closeIdx+2:]
	idx, err := strconv.Atoi(idxText)
	if err != nil {
		return fieldRef{}, types.ValidationError("pptable: field %q: bad index %q", name, idxText)
	}
	for gi := range entryGroups {
		g := &entryGroups[gi]
		if g.prefix != prefix {
			continue
		}
		for fi := range g.fields {
			if g.fields[fi].name == leaf {
				return fieldRef{entry: &g.fields[fi], index: idx}, nil
			}
		}
	}
	return fieldRef{}, types.ValidationError("pptable: unknown field %q", name)
}

// Get reads a field by name, e.g. "sclk[7].clock_mhz" or "tdp".
func (t *Table) Get(name string) (uint64, error) {
	ref, err := parseFieldName(name)
	if err != nil {
		return 0, err
	}
	if ref.scalar != nil {
		return ref.scalar.get(t), nil
	}
	return ref.entry.get(t, ref.index)
}

// Set writes a field by name. Values wider than the field are rejected.
func (t *Table) Set(name string, value uint64) error {
	ref, err := parseFieldName(name)
	if err != nil {
		return err
	}
	if ref.scalar != nil {
		if value > ref.scalar.max {
			return types.ValidationError("pptable: %s: value %d exceeds %d", name, value, ref.scalar.max)
		}
		return ref.scalar.set(t, value)
	}
	if value > ref.entry.max {
		return types.ValidationError("pptable: %s: value %d exceeds %d", name, value, ref.entry.max)
	}
	return ref.entry.set(t, ref.index, value)
}

// Fields lists every named field with its current value: scalars first, then
// each entry group in table order.
func (t *Table) Fields() []Field {
	var out []Field
	for _, f := range scalarFields {
		out = append(out, Field{Name: f.name, Value: f.get(t), Unit: f.unit})
	}
	for _, g := range entryGroups {
		for i := range g.count(t) {
			for _, f := range g.fields {
				// i is in range, so get cannot fail.
				v, _ := f.get(t, i)
				out = append(out, Field{Name: fmt.Sprintf("%s[%d].%s", g.prefix, i, f.name), Value: v, Unit: f.unit})
			}
		}
	}
	return out
}
