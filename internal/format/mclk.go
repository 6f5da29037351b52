package format

import "github.com/joshuapare/ppkit/internal/buf"

// MclkEntry is one memory clock dependency entry (ATOM_Tonga_MCLK_Dependency_Record).
//
//	Offset  Size  Description
//	------  ----  ---------------------------------------------
//	 0x00    1    VDDC index into the voltage lookup table
//	 0x01    2    VDDCI (mV)
//	 0x03    2    VDDGFX offset
//	 0x05    2    MVDD (mV)
//	 0x07    4    memory clock (10 kHz)
//	 0x0B    2    reserved
type MclkEntry struct {
	VddcIndex    uint8
	Vddci        uint16
	VddgfxOffset uint16
	Mvdd         uint16
	Mclk         uint32
	Reserved     uint16
}

// DecodeMclkEntry reads one entry at off.
func DecodeMclkEntry(b []byte, off int) (MclkEntry, error) {
	if err := need("mclk entry", b, off, MclkEntrySize); err != nil {
		return MclkEntry{}, err
	}
	var e MclkEntry
	c := buf.NewCursor(b, off)
	e.VddcIndex = c.U8()
	e.Vddci = c.U16()
	e.VddgfxOffset = c.U16()
	e.Mvdd = c.U16()
	e.Mclk = c.U32()
	e.Reserved = c.U16()
	return e, wrap("mclk entry", c.Err)
}

// Size implements Encoder.
func (e MclkEntry) Size() int { return MclkEntrySize }

// Encode implements Encoder.
func (e MclkEntry) Encode(dst []byte, off int) error {
	if err := need("mclk entry", dst, off, MclkEntrySize); err != nil {
		return err
	}
	c := buf.NewCursor(dst, off)
	c.PutU8(e.VddcIndex)
	c.PutU16(e.Vddci)
	c.PutU16(e.VddgfxOffset)
	c.PutU16(e.Mvdd)
	c.PutU32(e.Mclk)
	c.PutU16(e.Reserved)
	return wrap("mclk entry", c.Err)
}
