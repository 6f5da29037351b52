package pptable

import (
	"github.com/joshuapare/ppkit/internal/buf"
	"github.com/joshuapare/ppkit/internal/dirty"
	"github.com/joshuapare/ppkit/internal/format"
	"github.com/joshuapare/ppkit/pkg/types"
)

// Table is a decoded PowerPlay payload.
//
// The exported records are decoded copies; edit them through the typed
// setters or directly, then call Encode. Offsets, entry counts and sub-table
// revisions are fixed at decode time and Encode rejects any change to them.
//
// A Table is not safe for concurrent use.
type Table struct {
	PowerPlay    format.PowerPlayTable
	PowerTune    format.PowerTuneTable
	MemoryClocks *format.DependencyTable[format.MclkEntry]
	CoreClocks   *format.DependencyTable[format.SclkEntry]
	Voltages     *format.DependencyTable[format.VoltageEntry]

	payload []byte
	layout  layout
	images  [][]byte
	tracker *dirty.Tracker
	changes []dirty.Range
}

// layout is the part of the payload structure that must not change.
type layout struct {
	size      uint16
	offsets   format.Offsets
	mclk      format.DependencyHeader
	sclk      format.DependencyHeader
	vddc      format.DependencyHeader
	powerTune int
}

// record is one encodable unit and the offset it is written to.
type record struct {
	name string
	off  int
	enc  format.Encoder
}

// Change is a byte range rewritten by the last Encode.
type Change struct {
	Offset int `json:"offset"`
	Length int `json:"length"`
}

// Decode copies payload and decodes every supported record from it. Decoding
// is all or nothing: on error no Table is returned.
func Decode(payload []byte) (*Table, error) {
	if len(payload) == 0 {
		return nil, types.ValidationError("pptable: empty payload")
	}
	if len(payload) > format.MaxPayloadSize {
		return nil, types.ValidationError("pptable: payload of %d bytes exceeds %d", len(payload), format.MaxPayloadSize)
	}
	p := make([]byte, len(payload))
	copy(p, payload)

	pp, err := format.DecodePowerPlayTable(p)
	if err != nil {
		return nil, err
	}
	off := pp.Offsets
	pt, err := format.DecodePowerTuneTable(p, int(off.PowerTuneTable))
	if err != nil {
		return nil, err
	}
	mclk, err := format.DecodeDependencyTable[format.MclkEntry](
		"mclk dependency table", p, int(off.MclkDependencyTable), format.MclkEntrySize, format.DecodeMclkEntry)
	if err != nil {
		return nil, err
	}
	sclk, err := format.DecodeDependencyTable[format.SclkEntry](
		"sclk dependency table", p, int(off.SclkDependencyTable), format.SclkEntrySize, format.DecodeSclkEntry)
	if err != nil {
		return nil, err
	}
	vddc, err := format.DecodeDependencyTable[format.VoltageEntry](
		"vddc lookup table", p, int(off.VddcLookupTable), format.VoltageEntrySize, format.DecodeVoltageEntry)
	if err != nil {
		return nil, err
	}

	t := &Table{
		PowerPlay:    pp,
		PowerTune:    pt,
		MemoryClocks: mclk,
		CoreClocks:   sclk,
		Voltages:     vddc,
		payload:      p,
		tracker:      dirty.NewTracker(),
		layout: layout{
			size:      pp.Header.StructureSize,
			offsets:   pp.Offsets,
			mclk:      mclk.Header,
			sclk:      sclk.Header,
			vddc:      vddc.Header,
			powerTune: int(off.PowerTuneTable),
		},
	}
	images, err := t.marshalAll()
	if err != nil {
		return nil, err
	}
	t.images = images
	return t, nil
}

// Len is the payload length in bytes.
func (t *Table) Len() int { return len(t.payload) }

// Payload returns a copy of the payload as of the last Decode or Encode.
func (t *Table) Payload() []byte {
	out := make([]byte, len(t.payload))
	copy(out, t.payload)
	return out
}

// records lists the encodable units in encode order.
func (t *Table) records() []record {
	return []record{
		{"powerplay table", 0, t.PowerPlay},
		{"powertune table", t.layout.powerTune, t.PowerTune},
		{t.MemoryClocks.Name, t.MemoryClocks.Offset, t.MemoryClocks},
		{t.CoreClocks.Name, t.CoreClocks.Offset, t.CoreClocks},
		{t.Voltages.Name, t.Voltages.Offset, t.Voltages},
	}
}

func (t *Table) marshalAll() ([][]byte, error) {
	recs := t.records()
	images := make([][]byte, len(recs))
	for i, r := range recs {
		img, err := format.Marshal(r.enc)
		if err != nil {
			return nil, err
		}
		if !buf.Has(t.payload, r.off, len(img)) {
			return nil, types.BoundsError(r.off, len(img), len(t.payload))
		}
		images[i] = img
	}
	return images, nil
}

// Encode serializes the records back into the payload and returns a copy of
// the result. Only bytes that differ from each record's previous encoding are
// written. On error the payload is left as it was.
//
// Records may overlap in malformed payloads. An edit to one record that would
// rewrite bytes defining the layout (the structure size, the offset block or
// a sub-table header) is rejected.
func (t *Table) Encode() ([]byte, error) {
	if err := t.checkLayout(); err != nil {
		return nil, err
	}
	images, err := t.marshalAll()
	if err != nil {
		return nil, err
	}

	t.tracker.Reset()
	for i, r := range t.records() {
		t.tracker.Diff(r.off, t.images[i], images[i])
	}
	if t.tracker.Empty() {
		t.images = images
		t.changes = nil
		return t.Payload(), nil
	}

	next := make([]byte, len(t.payload))
	copy(next, t.payload)
	for i, r := range t.records() {
		prev, img := t.images[i], images[i]
		for j := range img {
			if img[j] != prev[j] {
				next[r.off+j] = img[j]
			}
		}
	}
	if err := t.verifyLayout(next); err != nil {
		return nil, err
	}

	t.payload = next
	t.images = images
	t.changes = t.tracker.Ranges()
	return t.Payload(), nil
}

// verifyLayout re-reads the layout from encoded bytes. It catches writes
// by one record into layout bytes it shares with another.
func (t *Table) verifyLayout(p []byte) error {
	l := t.layout
	pp, err := format.DecodePowerPlayTable(p)
	if err != nil {
		return types.ValidationError("pptable: encode would corrupt the root table: %v", err)
	}
	if pp.Offsets != l.offsets {
		return types.ValidationError("pptable: encode would overwrite the sub-table offsets")
	}
	subs := []struct {
		name string
		off  uint16
		hdr  format.DependencyHeader
	}{
		{t.MemoryClocks.Name, l.offsets.MclkDependencyTable, l.mclk},
		{t.CoreClocks.Name, l.offsets.SclkDependencyTable, l.sclk},
		{t.Voltages.Name, l.offsets.VddcLookupTable, l.vddc},
	}
	for _, sub := range subs {
		hdr, err := format.DecodeDependencyHeader(p, int(sub.off))
		if err != nil {
			return types.ValidationError("pptable: encode would corrupt the %s header: %v", sub.name, err)
		}
		if hdr != sub.hdr {
			return types.ValidationError("pptable: encode would overwrite the %s header", sub.name)
		}
	}
	return nil
}

// checkLayout rejects edits that would move or resize anything.
func (t *Table) checkLayout() error {
	l := t.layout
	if got := t.PowerPlay.Header.StructureSize; got != l.size {
		return types.ValidationError("pptable: structure size changed from %d to %d", l.size, got)
	}
	if err := t.PowerPlay.Header.Validate(len(t.payload)); err != nil {
		return err
	}
	was, now := l.offsets.List(), t.PowerPlay.Offsets.List()
	for i := range was {
		if was[i].Value != now[i].Value {
			return types.ValidationError("pptable: %s offset changed from 0x%X to 0x%X; relocation is not supported",
				was[i].Name, was[i].Value, now[i].Value)
		}
	}
	if t.layout.powerTune != int(t.PowerPlay.Offsets.PowerTuneTable) {
		return types.ValidationError("pptable: powertune table relocated")
	}
	if err := checkSubTable(t.MemoryClocks, int(l.offsets.MclkDependencyTable), l.mclk); err != nil {
		return err
	}
	if err := checkSubTable(t.CoreClocks, int(l.offsets.SclkDependencyTable), l.sclk); err != nil {
		return err
	}
	return checkSubTable(t.Voltages, int(l.offsets.VddcLookupTable), l.vddc)
}

func checkSubTable[T format.Encoder](dt *format.DependencyTable[T], off int, hdr format.DependencyHeader) error {
	switch {
	case dt.Offset != off:
		return types.ValidationError("pptable: %s relocated from 0x%X to 0x%X", dt.Name, off, dt.Offset)
	case dt.Header.Revision != hdr.Revision:
		return types.ValidationError("pptable: %s revision changed from %d to %d", dt.Name, hdr.Revision, dt.Header.Revision)
	case dt.Header.NumEntries != hdr.NumEntries || len(dt.Entries) != int(hdr.NumEntries):
		return types.ValidationError("pptable: %s resized from %d to %d entries", dt.Name, hdr.NumEntries, len(dt.Entries))
	}
	return nil
}

// Changes returns the coalesced byte ranges rewritten by the last Encode.
// It is empty after Decode and after an Encode with no modifications.
func (t *Table) Changes() []Change {
	return toChanges(t.changes)
}

// DiffPayloads reports the coalesced byte ranges where a and b differ. Bytes
// past the shorter slice are reported as one trailing range.
func DiffPayloads(a, b []byte) []Change {
	tr := dirty.NewTracker()
	tr.Diff(0, a, b)
	n := min(len(a), len(b))
	tr.Add(n, max(len(a), len(b))-n)
	return toChanges(tr.Ranges())
}

func toChanges(rs []dirty.Range) []Change {
	if len(rs) == 0 {
		return nil
	}
	out := make([]Change, len(rs))
	for i, r := range rs {
		out[i] = Change{Offset: r.Off, Length: r.Len}
	}
	return out
}
