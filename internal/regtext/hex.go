package regtext

import (
	"strings"
)

const upperHex = "0123456789ABCDEF"

// ParseHexList splits s on commas and backslashes, trims each token and keeps
// those that are exactly two hex digits (either case), in order. Non-empty
// tokens that do not qualify are returned in skipped; empty fragments left
// over from separators and line breaks are ignored silently.
func ParseHexList(s string) (payload []byte, skipped []string) {
	payload = make([]byte, 0, len(s)/3+1)
	for _, tok := range strings.FieldsFunc(s, isTokenSeparator) {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		v, ok := parseHexPair(tok)
		if !ok {
			skipped = append(skipped, tok)
			continue
		}
		payload = append(payload, v)
	}
	return payload, skipped
}

// RenderHex formats payload as uppercase two-digit hex. Bytes are separated
// by ", "; after every sixteenth byte, when more follow, a backslash and CRLF
// continue the list on the next line. There is no trailing separator.
func RenderHex(payload []byte) string {
	if len(payload) == 0 {
		return ""
	}
	var sb strings.Builder
	lines := (len(payload) - 1) / BytesPerLine
	sb.Grow(len(payload)*4 + lines*len(RenderContinuation))
	for i, v := range payload {
		sb.WriteByte(upperHex[v>>4])
		sb.WriteByte(upperHex[v&0x0F])
		n := i + 1
		if n == len(payload) {
			break
		}
		sb.WriteString(RenderSeparator)
		if n%BytesPerLine == 0 {
			sb.WriteString(RenderContinuation)
		}
	}
	return sb.String()
}

func isTokenSeparator(r rune) bool {
	return r == ',' || r == '\\'
}

func parseHexPair(tok string) (byte, bool) {
	if len(tok) != 2 {
		return 0, false
	}
	hi, ok1 := hexCharToNibble(tok[0])
	lo, ok2 := hexCharToNibble(tok[1])
	if !ok1 || !ok2 {
		return 0, false
	}
	return hi<<4 | lo, true
}

// hexCharToNibble converts a hex character to its 4-bit value.
func hexCharToNibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
