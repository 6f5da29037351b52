//go:build !unix && !windows

package writer

import "os"

func syncFile(f *os.File) error { return f.Sync() }

func syncDir(string) error { return nil }
