package format

import (
	"fmt"

	"github.com/joshuapare/ppkit/internal/buf"
	"github.com/joshuapare/ppkit/pkg/types"
)

// DependencyHeader prefixes every dependency table.
//
//	Offset  Size  Description
//	------  ----  ---------------------------------------------
//	 0x00    1    revision ID
//	 0x01    1    number of entries
//	 0x02    n    entries, contiguous, no padding
type DependencyHeader struct {
	Revision   uint8
	NumEntries uint8
}

// DecodeDependencyHeader reads the 2-byte sub-header at off.
func DecodeDependencyHeader(b []byte, off int) (DependencyHeader, error) {
	if err := need("dependency header", b, off, DependencyHeaderSize); err != nil {
		return DependencyHeader{}, err
	}
	c := buf.NewCursor(b, off)
	h := DependencyHeader{Revision: c.U8(), NumEntries: c.U8()}
	return h, wrap("dependency header", c.Err)
}

// EntryDecoder decodes one fixed-size entry at an absolute offset.
type EntryDecoder[T any] func(b []byte, off int) (T, error)

// DecodeEntries decodes count entries of entrySize bytes. Entry i lives at
// off + DependencyHeaderSize + i*entrySize, where off is the position of the
// dependency header. The whole range is bounds-checked before any entry is
// read; count 0 yields an empty, non-nil slice.
func DecodeEntries[T any](b []byte, off, count, entrySize int, decode EntryDecoder[T]) ([]T, error) {
	first, ok := buf.AddOverflowSafe(off, DependencyHeaderSize)
	if !ok {
		return nil, types.BoundsError(off, DependencyHeaderSize, len(b))
	}
	if _, err := buf.CheckListBounds(len(b), first, count, entrySize); err != nil {
		return nil, err
	}
	out := make([]T, count)
	for i := range out {
		e, err := decode(b, first+i*entrySize)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		out[i] = e
	}
	return out, nil
}

// DependencyTable is a decoded sub-header plus its entries, remembering the
// payload offset it was read from.
type DependencyTable[T Encoder] struct {
	Name      string
	Offset    int
	EntrySize int
	Header    DependencyHeader
	Entries   []T
}

// DecodeDependencyTable reads the sub-header at off and the entries that follow.
func DecodeDependencyTable[T Encoder](name string, b []byte, off, entrySize int, decode EntryDecoder[T]) (*DependencyTable[T], error) {
	hdr, err := DecodeDependencyHeader(b, off)
	if err != nil {
		return nil, wrap(name, err)
	}
	entries, err := DecodeEntries(b, off, int(hdr.NumEntries), entrySize, decode)
	if err != nil {
		return nil, wrap(name, err)
	}
	return &DependencyTable[T]{
		Name:      name,
		Offset:    off,
		EntrySize: entrySize,
		Header:    hdr,
		Entries:   entries,
	}, nil
}

// EntryOffset is the absolute payload offset of entry i.
func (t *DependencyTable[T]) EntryOffset(i int) int {
	return t.Offset + DependencyHeaderSize + i*t.EntrySize
}

// Size implements Encoder: the sub-header plus all entries.
func (t *DependencyTable[T]) Size() int {
	return DependencyHeaderSize + len(t.Entries)*t.EntrySize
}

// Encode writes the sub-header and entries at off. The entry slice must still
// hold exactly Header.NumEntries records; tables cannot grow or shrink.
func (t *DependencyTable[T]) Encode(dst []byte, off int) error {
	if len(t.Entries) != int(t.Header.NumEntries) {
		return types.ValidationError("%s: %d entries but header declares %d; resizing is not supported",
			t.Name, len(t.Entries), t.Header.NumEntries)
	}
	if err := need(t.Name, dst, off, t.Size()); err != nil {
		return err
	}
	c := buf.NewCursor(dst, off)
	c.PutU8(t.Header.Revision)
	c.PutU8(t.Header.NumEntries)
	if c.Err != nil {
		return wrap(t.Name, c.Err)
	}
	for i, e := range t.Entries {
		if err := e.Encode(dst, off+DependencyHeaderSize+i*t.EntrySize); err != nil {
			return fmt.Errorf("%s: entry %d: %w", t.Name, i, err)
		}
	}
	return nil
}
