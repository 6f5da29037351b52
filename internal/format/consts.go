// Package format houses the fixed-layout record codecs of the ATOM PowerPlay
// table (Polaris "Tonga" layout). Each record decodes from an absolute offset
// of the payload and encodes back into exactly the same range; nothing here
// relocates or resizes a table.
package format

const (
	// CommonHeaderSize is the ATOM_COMMON_TABLE_HEADER that opens the payload.
	CommonHeaderSize = 4

	// PowerPlayBodySize is the number of bytes after the common header that
	// belong to the root PowerPlay table.
	PowerPlayBodySize = 73

	// PowerPlayTableSize is the full root table including its header.
	PowerPlayTableSize = CommonHeaderSize + PowerPlayBodySize

	// DependencyHeaderSize is the revision/count prefix of every dependency table.
	DependencyHeaderSize = 2

	// MclkEntrySize is one memory clock dependency entry.
	MclkEntrySize = 13

	// SclkEntrySize is one engine clock dependency entry (Polaris, with
	// the trailing ulSclkOffset).
	SclkEntrySize = 15

	// VoltageEntrySize is one VDDC lookup entry.
	VoltageEntrySize = 8

	// PowerTuneTableSize is the fixed PowerTune table.
	PowerTuneTableSize = 48

	// PowerPlayReservedWords is the count of trailing reserved u16 in the root table.
	PowerPlayReservedWords = 6

	// MaxPayloadSize is the largest payload structure_size can describe.
	MaxPayloadSize = 0xFFFF

	// ClockUnitsPerMHz converts between MHz and the 10 kHz units stored in
	// clock fields.
	ClockUnitsPerMHz = 100
)

// Encoder is implemented by every record. Encode writes Size() bytes at off.
type Encoder interface {
	Size() int
	Encode(dst []byte, off int) error
}

// Marshal returns the standalone encoding of r.
func Marshal(r Encoder) ([]byte, error) {
	out := make([]byte, r.Size())
	if err := r.Encode(out, 0); err != nil {
		return nil, err
	}
	return out, nil
}
