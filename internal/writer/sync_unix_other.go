//go:build unix && !linux && !freebsd && !darwin

package writer

import (
	"os"

	"golang.org/x/sys/unix"
)

func syncFile(f *os.File) error {
	return unix.Fsync(int(f.Fd()))
}
