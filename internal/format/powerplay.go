package format

import (
	"github.com/joshuapare/ppkit/internal/buf"
)

// PowerPlayTable is the root ATOM_Tonga_POWERPLAYTABLE. Offsets are absolute
// positions in the payload; only the four consumed by the editor (mclk, sclk,
// vddc lookup, PowerTune) are followed, the rest are carried opaquely.
//
//	Offset  Size  Description
//	------  ----  ---------------------------------------------
//	 0x00    4    common header
//	 0x04    1    table revision
//	 0x05    2    table size
//	 0x07    4    golden PP ID
//	 0x0B    4    golden revision
//	 0x0F    2    format ID
//	 0x11    2    voltage time
//	 0x13    4    platform caps
//	 0x17    4    max overdrive engine clock (10 kHz)
//	 0x1B    4    max overdrive memory clock (10 kHz)
//	 0x1F    2    power control limit (%)
//	 0x21   32    sixteen u16 sub-table offsets (see Offsets)
//	 0x41   12    six reserved u16
type PowerPlayTable struct {
	Header CommonHeader

	TableRevision     uint8
	TableSize         uint16
	GoldenPPID        uint32
	GoldenRevision    uint32
	FormatID          uint16
	VoltageTime       uint16
	PlatformCaps      uint32
	MaxODEngineClock  uint32
	MaxODMemoryClock  uint32
	PowerControlLimit uint16

	Offsets Offsets

	Reserved [PowerPlayReservedWords]uint16
}

// Offsets is the sub-table offset block of the root table, in storage order.
type Offsets struct {
	UlvVoltage          uint16
	StateArray          uint16
	FanTable            uint16
	ThermalController   uint16
	Reserved            uint16
	MclkDependencyTable uint16
	SclkDependencyTable uint16
	VddcLookupTable     uint16
	VddgfxLookupTable   uint16
	MMDependencyTable   uint16
	VCEStateTable       uint16
	PPMTable            uint16
	PowerTuneTable      uint16
	HardLimitTable      uint16
	PCIETable           uint16
	GPIOTable           uint16
}

// NamedOffset pairs an offset field with its name.
type NamedOffset struct {
	Name  string
	Value uint16
}

// List returns every offset with a stable name, in storage order.
func (o Offsets) List() []NamedOffset {
	return []NamedOffset{
		{"ulv_voltage", o.UlvVoltage},
		{"state_array", o.StateArray},
		{"fan_table", o.FanTable},
		{"thermal_controller", o.ThermalController},
		{"reserved", o.Reserved},
		{"mclk_dependency_table", o.MclkDependencyTable},
		{"sclk_dependency_table", o.SclkDependencyTable},
		{"vddc_lookup_table", o.VddcLookupTable},
		{"vddgfx_lookup_table", o.VddgfxLookupTable},
		{"mm_dependency_table", o.MMDependencyTable},
		{"vce_state_table", o.VCEStateTable},
		{"ppm_table", o.PPMTable},
		{"power_tune_table", o.PowerTuneTable},
		{"hard_limit_table", o.HardLimitTable},
		{"pcie_table", o.PCIETable},
		{"gpio_table", o.GPIOTable},
	}
}

// DecodePowerPlayTable reads the root table from the start of the payload.
// The common header is validated against len(b); offsets are captured as
// plain integers and not interpreted here.
func DecodePowerPlayTable(b []byte) (PowerPlayTable, error) {
	hdr, err := DecodeCommonHeader(b)
	if err != nil {
		return PowerPlayTable{}, err
	}
	if err := need("powerplay table", b, 0, PowerPlayTableSize); err != nil {
		return PowerPlayTable{}, err
	}

	t := PowerPlayTable{Header: hdr}
	c := buf.NewCursor(b, CommonHeaderSize)
	t.TableRevision = c.U8()
	t.TableSize = c.U16()
	t.GoldenPPID = c.U32()
	t.GoldenRevision = c.U32()
	t.FormatID = c.U16()
	t.VoltageTime = c.U16()
	t.PlatformCaps = c.U32()
	t.MaxODEngineClock = c.U32()
	t.MaxODMemoryClock = c.U32()
	t.PowerControlLimit = c.U16()

	o := &t.Offsets
	for _, f := range o.fields() {
		*f = c.U16()
	}
	for i := range t.Reserved {
		t.Reserved[i] = c.U16()
	}
	if c.Err != nil {
		return PowerPlayTable{}, wrap("powerplay table", c.Err)
	}
	return t, nil
}

// Size implements Encoder.
func (t PowerPlayTable) Size() int { return PowerPlayTableSize }

// Encode implements Encoder.
func (t PowerPlayTable) Encode(dst []byte, off int) error {
	if err := need("powerplay table", dst, off, PowerPlayTableSize); err != nil {
		return err
	}
	c := buf.NewCursor(dst, off)
	t.Header.put(c)
	c.PutU8(t.TableRevision)
	c.PutU16(t.TableSize)
	c.PutU32(t.GoldenPPID)
	c.PutU32(t.GoldenRevision)
	c.PutU16(t.FormatID)
	c.PutU16(t.VoltageTime)
	c.PutU32(t.PlatformCaps)
	c.PutU32(t.MaxODEngineClock)
	c.PutU32(t.MaxODMemoryClock)
	c.PutU16(t.PowerControlLimit)
	for _, f := range t.Offsets.fields() {
		c.PutU16(*f)
	}
	for _, w := range t.Reserved {
		c.PutU16(w)
	}
	return wrap("powerplay table", c.Err)
}

// fields returns pointers to the offsets in storage order.
func (o *Offsets) fields() []*uint16 {
	return []*uint16{
		&o.UlvVoltage,
		&o.StateArray,
		&o.FanTable,
		&o.ThermalController,
		&o.Reserved,
		&o.MclkDependencyTable,
		&o.SclkDependencyTable,
		&o.VddcLookupTable,
		&o.VddgfxLookupTable,
		&o.MMDependencyTable,
		&o.VCEStateTable,
		&o.PPMTable,
		&o.PowerTuneTable,
		&o.HardLimitTable,
		&o.PCIETable,
		&o.GPIOTable,
	}
}
