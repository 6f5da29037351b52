package format

import "github.com/joshuapare/ppkit/internal/buf"

// SclkEntry is one engine clock dependency entry (ATOM_Polaris_SCLK_Dependency_Record).
//
//	Offset  Size  Description
//	------  ----  ---------------------------------------------
//	 0x00    1    VDD index into the voltage lookup table
//	 0x01    2    VDDC offset
//	 0x03    4    engine clock (10 kHz)
//	 0x07    2    EDC current
//	 0x09    1    reliability temperature
//	 0x0A    1    CKS VOFFSET and disable flags
//	 0x0B    4    engine clock offset (Polaris only)
type SclkEntry struct {
	VddIndex               uint8
	VddcOffset             uint16
	Sclk                   uint32
	EdcCurrent             uint16
	ReliabilityTemperature uint8
	CKSVOffsetAndDisable   uint8
	SclkOffset             uint32
}

// DecodeSclkEntry reads one entry at off.
func DecodeSclkEntry(b []byte, off int) (SclkEntry, error) {
	if err := need("sclk entry", b, off, SclkEntrySize); err != nil {
		return SclkEntry{}, err
	}
	var e SclkEntry
	c := buf.NewCursor(b, off)
	e.VddIndex = c.U8()
	e.VddcOffset = c.U16()
	e.Sclk = c.U32()
	e.EdcCurrent = c.U16()
	e.ReliabilityTemperature = c.U8()
	e.CKSVOffsetAndDisable = c.U8()
	e.SclkOffset = c.U32()
	return e, wrap("sclk entry", c.Err)
}

// Size implements Encoder.
func (e SclkEntry) Size() int { return SclkEntrySize }

// Encode implements Encoder.
func (e SclkEntry) Encode(dst []byte, off int) error {
	if err := need("sclk entry", dst, off, SclkEntrySize); err != nil {
		return err
	}
	c := buf.NewCursor(dst, off)
	c.PutU8(e.VddIndex)
	c.PutU16(e.VddcOffset)
	c.PutU32(e.Sclk)
	c.PutU16(e.EdcCurrent)
	c.PutU8(e.ReliabilityTemperature)
	c.PutU8(e.CKSVOffsetAndDisable)
	c.PutU32(e.SclkOffset)
	return wrap("sclk entry", c.Err)
}
