package regtext

import (
	"bytes"
	"fmt"

	"golang.org/x/text/encoding/unicode"

	"github.com/joshuapare/ppkit/pkg/types"
)

// Encoding identifies how the export text was stored on disk.
type Encoding int

const (
	// EncodingRaw keeps the file bytes as-is (ASCII, ANSI or UTF-8 without
	// transcoding). Any byte sequence round-trips.
	EncodingRaw Encoding = iota
	// EncodingUTF16LE is regedit's native export format, with a leading BOM.
	EncodingUTF16LE
)

func (e Encoding) String() string {
	switch e {
	case EncodingRaw:
		return "raw"
	case EncodingUTF16LE:
		return "UTF-16LE"
	default:
		return fmt.Sprintf("Encoding(%d)", int(e))
	}
}

// DetectEncoding inspects the leading bytes of data.
func DetectEncoding(data []byte) Encoding {
	if bytes.HasPrefix(data, UTF16LEBOM) {
		return EncodingUTF16LE
	}
	return EncodingRaw
}

var (
	utf16leDecoding = unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM)
	utf16leEncoding = unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
)

// decodeText converts file bytes to the text the container parser works on.
func decodeText(data []byte, enc Encoding) (string, error) {
	switch enc {
	case EncodingRaw:
		return string(data), nil
	case EncodingUTF16LE:
		out, err := utf16leDecoding.NewDecoder().Bytes(data)
		if err != nil {
			return "", &types.Error{Kind: types.ErrKindFormat, Msg: "decode UTF-16LE export", Err: err}
		}
		return string(out), nil
	default:
		return "", types.FormatError("unsupported encoding %v", enc)
	}
}

// encodeText converts rendered text back to file bytes in enc.
func encodeText(text string, enc Encoding) ([]byte, error) {
	switch enc {
	case EncodingRaw:
		return []byte(text), nil
	case EncodingUTF16LE:
		out, err := utf16leEncoding.NewEncoder().Bytes([]byte(text))
		if err != nil {
			return nil, &types.Error{Kind: types.ErrKindFormat, Msg: "encode UTF-16LE export", Err: err}
		}
		return out, nil
	default:
		return nil, types.FormatError("unsupported encoding %v", enc)
	}
}
