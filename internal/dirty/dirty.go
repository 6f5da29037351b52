// Package dirty tracks the byte ranges of a payload changed by an encode pass.
//
// The tracker keeps raw ranges as they are added and coalesces them on
// demand into sorted, non-overlapping spans. Unlike page-oriented trackers it
// works at byte granularity: a one-byte change reports exactly one byte.
package dirty

import "sort"

// defaultRangeCapacity is the pre-allocated capacity for dirty ranges.
const defaultRangeCapacity = 16

// Range is a dirty byte range within the payload.
type Range struct {
	Off int // Absolute payload offset
	Len int // Length in bytes
}

// End returns the exclusive end offset.
func (r Range) End() int { return r.Off + r.Len }

// Tracker accumulates dirty ranges.
//
// NOT thread-safe. Only one goroutine should use it at a time.
type Tracker struct {
	ranges []Range
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{ranges: make([]Range, 0, defaultRangeCapacity)}
}

// Add records [off, off+length). Zero or negative lengths are ignored.
func (t *Tracker) Add(off, length int) {
	if length <= 0 {
		return
	}
	t.ranges = append(t.ranges, Range{Off: off, Len: length})
}

// Empty reports whether nothing has been recorded since the last Reset.
func (t *Tracker) Empty() bool { return len(t.ranges) == 0 }

// Reset clears all tracked ranges.
func (t *Tracker) Reset() {
	t.ranges = t.ranges[:0]
}

// Ranges returns the recorded ranges sorted by offset with overlapping and
// adjacent ranges merged.
func (t *Tracker) Ranges() []Range {
	if len(t.ranges) == 0 {
		return nil
	}
	sorted := make([]Range, len(t.ranges))
	copy(sorted, t.ranges)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Off < sorted[j].Off
	})

	merged := make([]Range, 0, len(sorted))
	current := sorted[0]
	for _, next := range sorted[1:] {
		if next.Off <= current.End() {
			if next.End() > current.End() {
				current.Len = next.End() - current.Off
			}
			continue
		}
		merged = append(merged, current)
		current = next
	}
	return append(merged, current)
}

// Diff records every byte where a and b differ, starting at base. Only the
// common prefix of the two slices is compared.
func (t *Tracker) Diff(base int, a, b []byte) {
	n := min(len(a), len(b))
	start := -1
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			t.Add(base+start, i-start)
			start = -1
		}
	}
	if start >= 0 {
		t.Add(base+start, n-start)
	}
}
