package dirty

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrackerCoalesce(t *testing.T) {
	tr := NewTracker()
	tr.Add(100, 4)
	tr.Add(10, 2)
	tr.Add(102, 6) // overlaps the first
	tr.Add(12, 3)  // adjacent to the second
	tr.Add(50, 0)  // ignored

	require.Equal(t, []Range{{Off: 10, Len: 5}, {Off: 100, Len: 8}}, tr.Ranges())
}

func TestTrackerContainedRange(t *testing.T) {
	tr := NewTracker()
	tr.Add(0, 20)
	tr.Add(5, 3)

	require.Equal(t, []Range{{Off: 0, Len: 20}}, tr.Ranges())
}

func TestTrackerReset(t *testing.T) {
	tr := NewTracker()
	require.True(t, tr.Empty())
	require.Nil(t, tr.Ranges())

	tr.Add(1, 1)
	require.False(t, tr.Empty())
	tr.Reset()
	require.True(t, tr.Empty())
	require.Nil(t, tr.Ranges())
}

func TestTrackerDiff(t *testing.T) {
	a := []byte{0, 1, 2, 3, 4, 5, 6, 7}
	b := []byte{0, 9, 9, 3, 4, 5, 9, 9}

	tr := NewTracker()
	tr.Diff(200, a, b)
	require.Equal(t, []Range{{Off: 201, Len: 2}, {Off: 206, Len: 2}}, tr.Ranges())

	tr.Reset()
	tr.Diff(0, a, a)
	require.True(t, tr.Empty())
}
