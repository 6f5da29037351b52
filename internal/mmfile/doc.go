// Package mmfile loads registry export files, memory-mapping them where the
// platform allows.
package mmfile

// MaxFileSize caps the size of an export accepted by Map. A payload is at
// most 65535 bytes, which renders to well under 1 MiB of hex text even as
// UTF-16; anything larger is not a PowerPlay export.
const MaxFileSize = 16 << 20
