//go:build unix

package mmfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapReadOnlyUnix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.reg")
	want := []byte("\"PP_PhmSoftPowerPlayTable\"=hex:01, 02")
	require.NoError(t, os.WriteFile(path, want, 0o644))

	data, unmap, err := Map(path)
	require.NoError(t, err)
	require.Equal(t, want, data)

	require.NoError(t, unmap())
	require.NoError(t, unmap(), "second unmap is a no-op")
}

func TestMapZeroLength(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.reg")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	data, unmap, err := Map(path)
	require.NoError(t, err)
	require.Empty(t, data)
	require.NotNil(t, unmap)
	require.NoError(t, unmap())
}

func TestMapMissingFile(t *testing.T) {
	_, _, err := Map(filepath.Join(t.TempDir(), "missing.reg"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
