package pptable

import (
	"log/slog"

	"github.com/joshuapare/ppkit/internal/logger"
	"github.com/joshuapare/ppkit/internal/mmfile"
	"github.com/joshuapare/ppkit/internal/regtext"
	"github.com/joshuapare/ppkit/internal/writer"
	"github.com/joshuapare/ppkit/pkg/types"
)

// Options controls how exports are parsed.
type Options struct {
	// Strict rejects hex lists containing malformed tokens instead of
	// skipping them.
	Strict bool
}

// Sink receives a rendered export. For files use Save, which replaces the
// target atomically.
type Sink interface {
	WriteFile(buf []byte) error
}

// Document is a registry export together with its decoded table.
type Document struct {
	Table *Table

	container *regtext.Container
}

// ParseDocument parses export bytes and decodes the embedded payload.
func ParseDocument(data []byte, opts Options) (*Document, error) {
	c, err := regtext.Parse(data, regtext.ParseOptions{Strict: opts.Strict})
	if err != nil {
		return nil, err
	}
	if !c.HasRegFileHeader() {
		logger.L.Warn("export does not start with the regedit 5.00 header")
	}
	for _, tok := range c.Skipped {
		logger.L.Warn("skipped malformed hex token", slog.String("token", tok))
	}
	t, err := Decode(c.Payload)
	if err != nil {
		return nil, err
	}
	logger.L.Debug("decoded powerplay table",
		slog.Int("payload_bytes", t.Len()),
		slog.String("encoding", c.Encoding.String()),
		slog.Int("sclk_states", t.NumCoreClocks()),
		slog.Int("mclk_states", t.NumMemoryClocks()),
		slog.Int("vddc_entries", t.NumVoltages()))
	return &Document{Table: t, container: c}, nil
}

// Open reads and parses the export at path.
func Open(path string, opts Options) (*Document, error) {
	data, unmap, err := mmfile.Map(path)
	if err != nil {
		return nil, types.IOError("open", path, err)
	}
	defer func() { _ = unmap() }()
	// Parse copies everything it keeps, so the mapping may go away after.
	return ParseDocument(data, opts)
}

// Encoding names the text encoding of the export on disk.
func (d *Document) Encoding() string { return d.container.Encoding.String() }

// Skipped lists hex tokens dropped while parsing.
func (d *Document) Skipped() []string { return d.container.Skipped }

// Bytes encodes the table and renders the export in its original encoding.
// The text around the hex list is reproduced verbatim.
func (d *Document) Bytes() ([]byte, error) {
	payload, err := d.Table.Encode()
	if err != nil {
		return nil, err
	}
	c := *d.container
	c.Payload = payload
	out, err := c.Bytes()
	if err != nil {
		return nil, err
	}
	d.container.Payload = payload
	return out, nil
}

// SaveTo renders the export and hands it to sink.
func (d *Document) SaveTo(sink Sink) error {
	out, err := d.Bytes()
	if err != nil {
		return err
	}
	return sink.WriteFile(out)
}

// Save atomically replaces the file at path with the rendered export. On
// failure the existing file is left untouched.
func (d *Document) Save(path string) error {
	if err := d.SaveTo(&writer.FileWriter{Path: path}); err != nil {
		if _, typed := types.KindOf(err); typed {
			return err
		}
		return types.IOError("save", path, err)
	}
	logger.L.Info("saved export", slog.String("path", path), slog.Int("changed_ranges", len(d.Table.Changes())))
	return nil
}
