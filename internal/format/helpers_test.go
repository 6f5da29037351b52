package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustMarshal(t *testing.T, r Encoder) []byte {
	t.Helper()
	out, err := Marshal(r)
	require.NoError(t, err)
	return out
}
