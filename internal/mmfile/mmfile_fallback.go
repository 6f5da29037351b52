//go:build !unix

package mmfile

import (
	"fmt"
	"os"
)

// Map reads the whole export when mmap is not available.
func Map(path string) ([]byte, func() error, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, nil, err
	}
	if info.Size() > MaxFileSize {
		return nil, nil, fmt.Errorf("mmfile: %s is %d bytes, limit is %d", path, info.Size(), MaxFileSize)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return data, func() error { return nil }, nil
}
