package format

import (
	"github.com/joshuapare/ppkit/internal/buf"
	"github.com/joshuapare/ppkit/pkg/types"
)

// CommonHeader is the ATOM common table header at payload offset 0.
//
//	Offset  Size  Description
//	------  ----  ---------------------------------------------
//	 0x00    2    structure size (whole payload, little-endian)
//	 0x02    1    table format revision
//	 0x03    1    table content revision
type CommonHeader struct {
	StructureSize   uint16
	FormatRevision  uint8
	ContentRevision uint8
}

// DecodeCommonHeader reads the header and checks that the declared structure
// size equals len(b). A size mismatch (including a payload too short to hold
// the size field) is a validation error; a payload whose size matches but is
// shorter than the header is a bounds error.
func DecodeCommonHeader(b []byte) (CommonHeader, error) {
	if len(b) < buf.U16Size {
		return CommonHeader{}, types.ValidationError("common header: payload of %d bytes has no structure size", len(b))
	}
	size, err := buf.ReadU16LE(b, 0)
	if err != nil {
		return CommonHeader{}, wrap("common header", err)
	}
	if err := (CommonHeader{StructureSize: size}).Validate(len(b)); err != nil {
		return CommonHeader{}, err
	}
	if err := need("common header", b, 0, CommonHeaderSize); err != nil {
		return CommonHeader{}, err
	}
	c := buf.NewCursor(b, 0)
	h := readCommonHeader(c)
	return h, wrap("common header", c.Err)
}

// Validate reports a validation error unless StructureSize is non-zero and
// equal to payloadLen.
func (h CommonHeader) Validate(payloadLen int) error {
	if h.StructureSize == 0 {
		return types.ValidationError("common header: structure size is zero")
	}
	if int(h.StructureSize) != payloadLen {
		return types.ValidationError("common header: structure size %d does not match payload length %d",
			h.StructureSize, payloadLen)
	}
	return nil
}

// Size implements Encoder.
func (h CommonHeader) Size() int { return CommonHeaderSize }

// Encode implements Encoder.
func (h CommonHeader) Encode(dst []byte, off int) error {
	if err := need("common header", dst, off, CommonHeaderSize); err != nil {
		return err
	}
	c := buf.NewCursor(dst, off)
	h.put(c)
	return wrap("common header", c.Err)
}

func readCommonHeader(c *buf.Cursor) CommonHeader {
	return CommonHeader{
		StructureSize:   c.U16(),
		FormatRevision:  c.U8(),
		ContentRevision: c.U8(),
	}
}

func (h CommonHeader) put(c *buf.Cursor) {
	c.PutU16(h.StructureSize)
	c.PutU8(h.FormatRevision)
	c.PutU8(h.ContentRevision)
}
