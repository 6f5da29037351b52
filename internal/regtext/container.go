// Package regtext maps a registry export (.reg) holding a soft PowerPlay
// table to its raw payload bytes and back.
//
// The text before the hex list (including the value marker) and the text
// after it are kept verbatim, so rendering an unmodified container reproduces
// the original bytes exactly.
package regtext

import (
	"strings"

	"github.com/joshuapare/ppkit/pkg/types"
)

// ParseOptions controls tokenization strictness.
type ParseOptions struct {
	// Strict rejects the container when the hex list holds any token that
	// is not exactly two hex digits. By default such tokens are skipped and
	// reported in Container.Skipped.
	Strict bool
}

// Container is a parsed export: preserved text around a raw payload.
type Container struct {
	// Header is all text up to and including Marker.
	Header string
	// Payload is the decoded hex list.
	Payload []byte
	// Trailer is the text following the hex list: the line break that ends
	// the value and anything after it.
	Trailer string
	// Encoding is how the file was stored; Bytes re-encodes with it.
	Encoding Encoding
	// Skipped lists malformed tokens dropped by a lenient parse.
	Skipped []string
}

// Parse decodes file bytes, detecting a UTF-16LE BOM.
func Parse(data []byte, opts ParseOptions) (*Container, error) {
	enc := DetectEncoding(data)
	text, err := decodeText(data, enc)
	if err != nil {
		return nil, err
	}
	c, err := ParseText(text, opts)
	if err != nil {
		return nil, err
	}
	c.Encoding = enc
	return c, nil
}

// ParseText locates Marker in text and parses the hex list that follows.
// It fails with a types.ErrFormat error when the marker is absent. An empty
// hex list is accepted; the payload decoder rejects it later.
func ParseText(text string, opts ParseOptions) (*Container, error) {
	start := strings.Index(text, Marker)
	if start < 0 {
		return nil, types.FormatError("regtext: marker %s not found", Marker)
	}
	bodyStart := start + len(Marker)
	body := text[bodyStart:]
	end := valueExtent(body)

	payload, skipped := ParseHexList(body[:end])
	if opts.Strict && len(skipped) > 0 {
		return nil, types.FormatError("regtext: %d malformed hex token(s), first %q", len(skipped), skipped[0])
	}
	return &Container{
		Header:  text[:bodyStart],
		Payload: payload,
		Trailer: body[end:],
		Skipped: skipped,
	}, nil
}

// Render emits header followed by the rendered hex list of payload.
func Render(header string, payload []byte) string {
	return header + RenderHex(payload)
}

// Text renders the container with its current payload.
func (c *Container) Text() string {
	return Render(c.Header, c.Payload) + c.Trailer
}

// Bytes renders the container and encodes it like the source file.
func (c *Container) Bytes() ([]byte, error) {
	return encodeText(c.Text(), c.Encoding)
}

// HasRegFileHeader reports whether Header opens with the regedit version
// 5.00 signature line.
func (c *Container) HasRegFileHeader() bool {
	return strings.HasPrefix(strings.TrimLeft(c.Header, "\ufeff \t\r\n"), RegFileHeader)
}

// valueExtent returns the length of the hex list at the start of s: up to the
// last non-blank character of the first line not continued by a trailing
// backslash.
func valueExtent(s string) int {
	pos := 0
	for {
		nl := strings.IndexByte(s[pos:], '\n')
		if nl < 0 {
			return pos + len(strings.TrimRight(s[pos:], " \t\r"))
		}
		line := strings.TrimRight(s[pos:pos+nl], " \t\r")
		if !strings.HasSuffix(line, Backslash) {
			return pos + len(line)
		}
		pos += nl + 1
	}
}
