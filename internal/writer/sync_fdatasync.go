//go:build linux || freebsd

package writer

import (
	"os"

	"golang.org/x/sys/unix"
)

// syncFile flushes file data; metadata beyond the size is not needed for
// the rename to be durable.
func syncFile(f *os.File) error {
	return unix.Fdatasync(int(f.Fd()))
}
