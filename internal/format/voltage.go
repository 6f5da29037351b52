package format

import "github.com/joshuapare/ppkit/internal/buf"

// VoltageEntry is one VDDC lookup entry (ATOM_Tonga_Voltage_Lookup_Record).
//
//	Offset  Size  Description
//	------  ----  ---------------------------------------------
//	 0x00    2    VDD (mV)
//	 0x02    2    CAC low
//	 0x04    2    CAC mid
//	 0x06    2    CAC high
type VoltageEntry struct {
	Vdd     uint16
	CACLow  uint16
	CACMid  uint16
	CACHigh uint16
}

// DecodeVoltageEntry reads one entry at off.
func DecodeVoltageEntry(b []byte, off int) (VoltageEntry, error) {
	if err := need("voltage entry", b, off, VoltageEntrySize); err != nil {
		return VoltageEntry{}, err
	}
	var e VoltageEntry
	c := buf.NewCursor(b, off)
	e.Vdd = c.U16()
	e.CACLow = c.U16()
	e.CACMid = c.U16()
	e.CACHigh = c.U16()
	return e, wrap("voltage entry", c.Err)
}

// Size implements Encoder.
func (e VoltageEntry) Size() int { return VoltageEntrySize }

// Encode implements Encoder.
func (e VoltageEntry) Encode(dst []byte, off int) error {
	if err := need("voltage entry", dst, off, VoltageEntrySize); err != nil {
		return err
	}
	c := buf.NewCursor(dst, off)
	c.PutU16(e.Vdd)
	c.PutU16(e.CACLow)
	c.PutU16(e.CACMid)
	c.PutU16(e.CACHigh)
	return wrap("voltage entry", c.Err)
}
