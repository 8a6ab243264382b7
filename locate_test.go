package prc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palmkit/prc"
)

func entry(typ string, id uint16, offset uint32) prc.ResourceEntry {
	return prc.ResourceEntry{Type: prc.NewTag(typ), ID: id, DataOffset: offset}
}

func TestLocateEmpty(t *testing.T) {
	t.Parallel()

	spans, err := prc.Locate(nil, 78)
	require.NoError(t, err)
	assert.Empty(t, spans)
}

func TestLocateSingle(t *testing.T) {
	t.Parallel()

	entries := []prc.ResourceEntry{entry("code", 0, 88)}
	spans, err := prc.Locate(entries, 120)
	require.NoError(t, err)
	require.Len(t, spans, 1)
	assert.Equal(t, 88, spans[0].Start)
	assert.Equal(t, 120, spans[0].End)
	assert.Equal(t, 32, spans[0].Size())
}

func TestLocateUnsortedDirectory(t *testing.T) {
	t.Parallel()

	// Directory order [200, 100]: ranges come from the sorted view, output
	// stays in directory order.
	entries := []prc.ResourceEntry{
		entry("code", 1, 200),
		entry("data", 2, 100),
	}
	spans, err := prc.Locate(entries, 300)
	require.NoError(t, err)
	require.Len(t, spans, 2)

	assert.Equal(t, entry("code", 1, 200), spans[0].Entry)
	assert.Equal(t, 200, spans[0].Start)
	assert.Equal(t, 300, spans[0].End)

	assert.Equal(t, entry("data", 2, 100), spans[1].Entry)
	assert.Equal(t, 100, spans[1].Start)
	assert.Equal(t, 200, spans[1].End)
}

func TestLocateDuplicateOffsets(t *testing.T) {
	t.Parallel()

	// Two entries at the same offset: the earlier directory entry gets the
	// empty range, the later one runs to end of file.
	entries := []prc.ResourceEntry{
		entry("tSTR", 1, 150),
		entry("tSTR", 2, 150),
	}
	spans, err := prc.Locate(entries, 200)
	require.NoError(t, err)
	require.Len(t, spans, 2)

	assert.Equal(t, 150, spans[0].Start)
	assert.Equal(t, 150, spans[0].End, "earlier entry gets the zero-length range")
	assert.Equal(t, 150, spans[1].Start)
	assert.Equal(t, 200, spans[1].End)
}

func TestLocateInvalidOffset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		entries  []prc.ResourceEntry
		fileSize int
	}{
		{
			// 2 entries -> directory occupies [0, 98); offset 50 lands
			// inside it.
			name: "offset inside directory",
			entries: []prc.ResourceEntry{
				entry("code", 0, 50),
				entry("data", 1, 100),
			},
			fileSize: 300,
		},
		{
			name:     "offset at end of file",
			entries:  []prc.ResourceEntry{entry("code", 9, 120)},
			fileSize: 120,
		},
		{
			name:     "offset past end of file",
			entries:  []prc.ResourceEntry{entry("code", 9, 500)},
			fileSize: 120,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := prc.Locate(tt.entries, tt.fileSize)
			require.ErrorIs(t, err, prc.ErrInvalidOffset)
		})
	}
}

func TestLocateInvalidOffsetNamesEntry(t *testing.T) {
	t.Parallel()

	entries := []prc.ResourceEntry{
		entry("code", 0, 98),
		entry("Tbmp", 400, 50),
	}
	_, err := prc.Locate(entries, 300)
	require.ErrorIs(t, err, prc.ErrInvalidOffset)
	assert.Contains(t, err.Error(), "Tbmp")
	assert.Contains(t, err.Error(), "#400")
}

func TestLocateNoOverlapProperty(t *testing.T) {
	t.Parallel()

	// A scrambled directory with gaps: sorted spans must be monotonic and
	// non-overlapping, and every span non-negative.
	entries := []prc.ResourceEntry{
		entry("aaaa", 0, 500),
		entry("bbbb", 1, 148),
		entry("cccc", 2, 300),
		entry("dddd", 3, 148), // duplicate offset
		entry("eeee", 4, 420),
	}
	const fileSize = 600
	spans, err := prc.Locate(entries, fileSize)
	require.NoError(t, err)
	require.Len(t, spans, len(entries))

	for _, s := range spans {
		assert.LessOrEqual(t, s.Start, s.End, "negative-length span for %v", s.Entry)
	}

	// Sort by (Start, End) and check the chain.
	sorted := append([]prc.Span(nil), spans...)
	for i := range sorted {
		for j := i + 1; j < len(sorted); j++ {
			if sorted[j].Start < sorted[i].Start ||
				(sorted[j].Start == sorted[i].Start && sorted[j].End < sorted[i].End) {
				sorted[i], sorted[j] = sorted[j], sorted[i]
			}
		}
	}
	for i := 1; i < len(sorted); i++ {
		assert.GreaterOrEqual(t, sorted[i].Start, sorted[i-1].End,
			"spans %d and %d overlap", i-1, i)
	}
	assert.Equal(t, fileSize, sorted[len(sorted)-1].End, "last span must reach end of file")
}
