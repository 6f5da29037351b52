//go:build windows

package writer

import (
	"os"

	"golang.org/x/sys/windows"
)

// syncFile flushes the file buffers with FlushFileBuffers.
func syncFile(f *os.File) error {
	return windows.FlushFileBuffers(windows.Handle(f.Fd()))
}

// syncDir is a no-op: directories cannot be flushed on Windows and
// MoveFileEx already commits the rename.
func syncDir(string) error { return nil }
