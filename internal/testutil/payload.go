// Package testutil builds synthetic PowerPlay payloads and registry exports
// for tests. The bytes are laid out by hand so tests exercise the codecs
// against an independent description of the format.
package testutil

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// Layout of the payload returned by Payload.
const (
	PowerPlayOffset = 0
	MclkOffset      = 77
	MclkCount       = 3
	SclkOffset      = MclkOffset + 2 + MclkCount*13
	SclkCount       = 8
	VddcOffset      = SclkOffset + 2 + SclkCount*15
	VddcCount       = 8
	PowerTuneOffset = VddcOffset + 2 + VddcCount*8
	FanOffset       = PowerTuneOffset + 48
	FanSize         = 16
	PayloadSize     = FanOffset + FanSize

	// Byte position of the power control limit inside the root table.
	PowerControlLimitOffset = 0x1F
)

// Sample values stored by Payload.
var (
	SclkMHz    = []uint32{300, 608, 913, 1080, 1191, 1266, 1306, 1340}
	MclkMHz    = []uint32{300, 1000, 2000}
	VoltagesMV = []uint16{750, 800, 850, 900, 950, 1000, 1050, 1150}
)

const (
	SamplePowerControlLimit = 50
	SampleTDP               = 110
	SampleTDC               = 132
	SampleMaxPowerDelivery  = 150
)

// Payload returns a Polaris-style PowerPlay payload of PayloadSize bytes
// with three memory states, eight engine states and eight voltages.
func Payload() []byte {
	b := make([]byte, PayloadSize)
	le := binary.LittleEndian

	// common header
	le.PutUint16(b[0:], PayloadSize)
	b[2] = 7 // format revision
	b[3] = 1 // content revision

	// root table body
	b[4] = 0                           // table revision
	le.PutUint16(b[5:], PayloadSize)   // table size
	le.PutUint32(b[7:], 0x00001000)    // golden PP ID
	le.PutUint32(b[0x0B:], 0x00002000) // golden revision
	le.PutUint16(b[0x0F:], 0x0019)     // format ID
	le.PutUint16(b[0x11:], 0x01F4)     // voltage time
	le.PutUint32(b[0x13:], 0x0270A000) // platform caps
	le.PutUint32(b[0x17:], 200000)     // max OD engine clock
	le.PutUint32(b[0x1B:], 225000)     // max OD memory clock
	le.PutUint16(b[0x1F:], SamplePowerControlLimit)

	offsets := []uint16{
		0,               // ulv voltage
		0,               // state array
		FanOffset,       // fan table
		0,               // thermal controller
		0,               // reserved
		MclkOffset,      // mclk
		SclkOffset,      // sclk
		VddcOffset,      // vddc lookup
		0,               // vddgfx lookup
		0,               // mm dependency
		0,               // vce state
		0,               // ppm
		PowerTuneOffset, // powertune
		0,               // hard limit
		0,               // pcie
		0,               // gpio
	}
	for i, o := range offsets {
		le.PutUint16(b[0x21+2*i:], o)
	}
	for i := 0; i < 6; i++ {
		le.PutUint16(b[0x41+2*i:], uint16(0xA0+i))
	}

	// mclk dependency table
	b[MclkOffset] = 1
	b[MclkOffset+1] = MclkCount
	for i, mhz := range MclkMHz {
		e := b[MclkOffset+2+i*13:]
		e[0] = uint8(i)                        // vddc index
		le.PutUint16(e[1:], 950)               // vddci
		le.PutUint16(e[3:], 0)                 // vddgfx offset
		le.PutUint16(e[5:], 1000+uint16(i)*50) // mvdd
		le.PutUint32(e[7:], mhz*100)           // mclk
		le.PutUint16(e[11:], 0)                // reserved
	}

	// sclk dependency table
	b[SclkOffset] = 1
	b[SclkOffset+1] = SclkCount
	for i, mhz := range SclkMHz {
		e := b[SclkOffset+2+i*15:]
		e[0] = uint8(i)                  // vdd index
		le.PutUint16(e[1:], 0)           // vddc offset
		le.PutUint32(e[3:], mhz*100)     // sclk
		le.PutUint16(e[7:], 0)           // edc current
		e[9] = 0                         // reliability temperature
		e[10] = 1                        // cks voffset/disable
		le.PutUint32(e[11:], 0x0000FF00) // sclk offset
	}

	// vddc lookup table
	b[VddcOffset] = 1
	b[VddcOffset+1] = VddcCount
	for i, mv := range VoltagesMV {
		e := b[VddcOffset+2+i*8:]
		le.PutUint16(e[0:], mv)
		le.PutUint16(e[2:], uint16(i))
		le.PutUint16(e[4:], uint16(0x10+i))
		le.PutUint16(e[6:], uint16(0x20+i))
	}

	// powertune table
	pt := b[PowerTuneOffset:]
	pt[0] = 3
	words := []uint16{
		SampleTDP, SampleTDP, SampleTDC, 0, 0, 69, 69, SampleMaxPowerDelivery,
		90, 4, 0, 0, 0, 99, 105, 105, 115, 115, 105,
	}
	for i, w := range words {
		le.PutUint16(pt[1+2*i:], w)
	}
	copy(pt[0x27:], []byte{0x10, 0x12, 0x01, 0x20, 0x02, 0x30, 0x03})
	le.PutUint16(pt[0x2E:], 0)

	// opaque fan table bytes
	for i := 0; i < FanSize; i++ {
		b[FanOffset+i] = byte(0xF0 + i)
	}
	return b
}

// Marker is the registry value line the payload hangs off.
const Marker = `"PP_PhmSoftPowerPlayTable"=hex:`

// RegHeader is a typical export header ending with Marker.
const RegHeader = "Windows Registry Editor Version 5.00\r\n\r\n" +
	`[HKEY_LOCAL_MACHINE\SYSTEM\CurrentControlSet\Control\Class\{4d36e968-e325-11ce-bfc1-08002be10318}\0000]` +
	"\r\n" + Marker

// HexList formats payload the way the editor writes it: uppercase pairs,
// ", " separators and a backslash-CRLF continuation after every 16 bytes.
func HexList(payload []byte) string {
	var sb strings.Builder
	for i, v := range payload {
		fmt.Fprintf(&sb, "%02X", v)
		n := i + 1
		if n != len(payload) {
			sb.WriteString(", ")
			if n%16 == 0 {
				sb.WriteString("\\\r\n")
			}
		}
	}
	return sb.String()
}

// RegFile returns a complete export holding payload, followed by a blank line.
func RegFile(payload []byte) string {
	return RegHeader + HexList(payload) + "\r\n\r\n"
}
