package regtext

const (
	// ============================================================================
	// .reg File Format Tokens
	// ============================================================================

	// RegFileHeader is the header line regedit writes for version 5.00 exports.
	RegFileHeader = "Windows Registry Editor Version 5.00"

	// ValueName is the registry value that carries the soft PowerPlay table.
	ValueName = "PP_PhmSoftPowerPlayTable"

	// HexPrefix identifies binary data in .reg format.
	HexPrefix = "hex:"

	// Marker is the literal that precedes the hex byte list. Everything up
	// to and including it is preserved verbatim.
	Marker = `"` + ValueName + `"=` + HexPrefix

	// ============================================================================
	// Hex Data Formatting
	// ============================================================================

	// HexByteSeparator separates bytes in hex data.
	HexByteSeparator = ","

	// Backslash continues a hex list onto the next line.
	Backslash = "\\"

	// CRLF is the Windows line ending (carriage return + line feed).
	CRLF = "\r\n"

	// RenderSeparator is written between consecutive bytes.
	RenderSeparator = ", "

	// RenderContinuation is written after RenderSeparator once a line holds
	// BytesPerLine bytes and more bytes follow.
	RenderContinuation = Backslash + CRLF

	// BytesPerLine is the number of bytes rendered per line.
	BytesPerLine = 16
)

var (
	// UTF16LEBOM is the byte order mark for UTF-16 little-endian, which
	// regedit puts at the start of every version 5.00 export.
	UTF16LEBOM = []byte{0xFF, 0xFE}
)
