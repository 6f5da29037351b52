// Package writer exposes sinks for rendered registry exports.
package writer

import (
	"fmt"
	"os"
	"path/filepath"
)

// Sink receives a fully rendered export.
type Sink interface {
	WriteFile(buf []byte) error
}

// FileWriter writes an export to a filesystem path atomically.
type FileWriter struct {
	Path string
	// Perm is applied to a newly created target. Existing targets keep
	// their mode. Zero means 0o644.
	Perm os.FileMode
}

// WriteFile writes buf to a temp file in the target's directory, syncs it to
// stable storage and renames it over the target. On any failure the target is
// left as it was.
func (w *FileWriter) WriteFile(buf []byte) error {
	dir := filepath.Dir(w.Path)
	tmpFile, err := os.CreateTemp(dir, ".ppkit-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if err := tmpFile.Chmod(w.mode()); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if _, err := tmpFile.Write(buf); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := syncFile(tmpFile); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	tmpFile = nil // Don't clean up in defer

	if err := os.Rename(tmpPath, w.Path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	if err := syncDir(dir); err != nil {
		return fmt.Errorf("sync directory: %w", err)
	}
	return nil
}

func (w *FileWriter) mode() os.FileMode {
	if info, err := os.Stat(w.Path); err == nil {
		return info.Mode().Perm()
	}
	if w.Perm != 0 {
		return w.Perm
	}
	return 0o644
}
