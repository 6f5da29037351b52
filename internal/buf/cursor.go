package buf

// Cursor walks a record field by field. The first failing access is kept in
// Err and every later call becomes a no-op, so a codec can list its fields in
// order and check the error once at the end.
//
//	c := buf.NewCursor(payload, off)
//	rev := c.U8()
//	size := c.U16()
//	if c.Err != nil { ... }
type Cursor struct {
	b   []byte
	off int
	Err error
}

// NewCursor returns a cursor positioned at off within b.
func NewCursor(b []byte, off int) *Cursor {
	return &Cursor{b: b, off: off}
}

// Offset is the absolute position of the next field.
func (c *Cursor) Offset() int { return c.off }

// U8 reads one byte and advances.
func (c *Cursor) U8() uint8 {
	if c.Err != nil {
		return 0
	}
	v, err := ReadU8(c.b, c.off)
	c.advance(U8Size, err)
	return v
}

// U16 reads a little-endian uint16 and advances.
func (c *Cursor) U16() uint16 {
	if c.Err != nil {
		return 0
	}
	v, err := ReadU16LE(c.b, c.off)
	c.advance(U16Size, err)
	return v
}

// U32 reads a little-endian uint32 and advances.
func (c *Cursor) U32() uint32 {
	if c.Err != nil {
		return 0
	}
	v, err := ReadU32LE(c.b, c.off)
	c.advance(U32Size, err)
	return v
}

// PutU8 writes one byte and advances.
func (c *Cursor) PutU8(v uint8) {
	if c.Err == nil {
		c.advance(U8Size, PutU8(c.b, c.off, v))
	}
}

// PutU16 writes a little-endian uint16 and advances.
func (c *Cursor) PutU16(v uint16) {
	if c.Err == nil {
		c.advance(U16Size, PutU16LE(c.b, c.off, v))
	}
}

// PutU32 writes a little-endian uint32 and advances.
func (c *Cursor) PutU32(v uint32) {
	if c.Err == nil {
		c.advance(U32Size, PutU32LE(c.b, c.off, v))
	}
}

func (c *Cursor) advance(n int, err error) {
	if err != nil {
		c.Err = err
		return
	}
	c.off += n
}
