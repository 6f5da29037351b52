package pptable

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"

	"github.com/joshuapare/ppkit/internal/logger"
	"github.com/joshuapare/ppkit/internal/testutil"
	"github.com/joshuapare/ppkit/internal/writer"
	"github.com/joshuapare/ppkit/pkg/types"
)

func writeExport(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "card.reg")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestDocumentRoundTrip(t *testing.T) {
	data := []byte(testutil.RegFile(testutil.Payload()))

	doc, err := ParseDocument(data, Options{})
	require.NoError(t, err)
	assert.Equal(t, "raw", doc.Encoding())
	assert.Empty(t, doc.Skipped())

	out, err := doc.Bytes()
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestDocumentEditReRenders(t *testing.T) {
	doc, err := ParseDocument([]byte(testutil.RegFile(testutil.Payload())), Options{})
	require.NoError(t, err)
	require.NoError(t, doc.Table.SetCoreClockMHz(7, 1400))

	out, err := doc.Bytes()
	require.NoError(t, err)

	want := testutil.Payload()
	copy(want[testutil.SclkOffset+2+7*15+3:], []byte{0xE0, 0x22, 0x02, 0x00})
	assert.Equal(t, testutil.RegFile(want), string(out))
}

func TestDocumentUTF16RoundTrip(t *testing.T) {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	data, err := enc.Bytes([]byte(testutil.RegFile(testutil.Payload())))
	require.NoError(t, err)

	doc, err := ParseDocument(data, Options{})
	require.NoError(t, err)
	assert.Equal(t, "UTF-16LE", doc.Encoding())

	out, err := doc.Bytes()
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestDocumentMalformedTokens(t *testing.T) {
	text := testutil.RegFile(testutil.Payload())
	// inject a junk token before the first byte
	text = strings.Replace(text, testutil.Marker, testutil.Marker+"zz,", 1)

	doc, err := ParseDocument([]byte(text), Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"zz"}, doc.Skipped())

	_, err = ParseDocument([]byte(text), Options{Strict: true})
	require.ErrorIs(t, err, types.ErrFormat)
}

func TestDocumentMissingMarker(t *testing.T) {
	doc, err := ParseDocument([]byte("Windows Registry Editor Version 5.00\r\n"), Options{})
	require.ErrorIs(t, err, types.ErrFormat)
	assert.Nil(t, doc)
}

func TestDocumentWarnsOnMissingRegeditHeader(t *testing.T) {
	var buf bytes.Buffer
	logger.Init(logger.Options{Enabled: true, Writer: &buf})
	t.Cleanup(func() { logger.Init(logger.Options{}) })

	good := testutil.RegFile(testutil.Payload())
	_, err := ParseDocument([]byte(good), Options{})
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "regedit 5.00 header")

	bad := strings.Replace(good, "Windows Registry Editor Version 5.00", "REGEDIT4", 1)
	_, err = ParseDocument([]byte(bad), Options{})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "regedit 5.00 header")
}

func TestDocumentEmptyPayload(t *testing.T) {
	_, err := ParseDocument([]byte(testutil.RegHeader+"\r\n"), Options{})
	require.ErrorIs(t, err, types.ErrValidation)
}

func TestOpenAndSave(t *testing.T) {
	path := writeExport(t, []byte(testutil.RegFile(testutil.Payload())))

	doc, err := Open(path, Options{})
	require.NoError(t, err)
	doc.Table.SetTDP(200)
	require.NoError(t, doc.Save(path))

	again, err := Open(path, Options{})
	require.NoError(t, err)
	assert.Equal(t, uint16(200), again.Table.TDP())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "absent.reg"), Options{})
	require.ErrorIs(t, err, types.ErrIO)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestSaveFailureLeavesFileUntouched(t *testing.T) {
	original := []byte(testutil.RegFile(testutil.Payload()))
	path := writeExport(t, original)

	doc, err := Open(path, Options{})
	require.NoError(t, err)
	doc.Table.PowerPlay.Offsets.GPIOTable = 0x10

	err = doc.Save(path)
	require.ErrorIs(t, err, types.ErrValidation)

	onDisk, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(original, onDisk))
}

func TestSaveToUnwritableDirectory(t *testing.T) {
	doc, err := ParseDocument([]byte(testutil.RegFile(testutil.Payload())), Options{})
	require.NoError(t, err)

	err = doc.Save(filepath.Join(t.TempDir(), "missing", "card.reg"))
	require.ErrorIs(t, err, types.ErrIO)
}

func TestSaveToSink(t *testing.T) {
	data := []byte(testutil.RegFile(testutil.Payload()))
	doc, err := ParseDocument(data, Options{})
	require.NoError(t, err)

	var mem writer.MemWriter
	require.NoError(t, doc.SaveTo(&mem))
	assert.Equal(t, data, mem.Buf)
}
