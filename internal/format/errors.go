package format

import (
	"fmt"

	"github.com/joshuapare/ppkit/pkg/types"
)

// wrap prefixes err with the record name, keeping its kind for errors.Is.
func wrap(record string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", record, err)
}

// need fails with a bounds error unless b holds size bytes at off.
func need(record string, b []byte, off, size int) error {
	if off < 0 || off > len(b) || len(b)-off < size {
		return wrap(record, types.BoundsError(off, size, len(b)))
	}
	return nil
}
