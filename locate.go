package prc

import (
	"fmt"
	"slices"
)

// Locate computes the exclusive byte range of every directory entry.
//
// Each resource ends where the next-higher data offset begins, or at end of
// file for the highest offset. The directory is not assumed to be sorted:
// ranges are derived from a stably sorted working copy and then re-associated
// with the entries' original directory positions, so the returned spans are
// in directory order regardless of offset order.
//
// Two entries sharing an offset are legal: the earlier directory entry gets
// a zero-length range, the later one runs to the next distinct offset.
//
// Every DataOffset must lie within [HeaderSize+len(entries)*EntrySize,
// fileSize); a violation fails with ErrInvalidOffset naming the entry.
// Zero entries yield an empty result and no error.
func Locate(entries []ResourceEntry, fileSize int) ([]Span, error) {
	if len(entries) == 0 {
		return nil, nil
	}

	minValid := HeaderSize + len(entries)*EntrySize
	for _, e := range entries {
		off := int(e.DataOffset)
		if off < minValid || off >= fileSize {
			return nil, fmt.Errorf("%w: resource %s #%d at 0x%08x, valid range [%d, %d)",
				ErrInvalidOffset, e.Type, e.ID, e.DataOffset, minValid, fileSize)
		}
	}

	// Sort directory positions, not the entries themselves, so ranges can
	// be written back to their original slots. The stable sort keeps
	// directory order among equal offsets, which is what assigns the
	// zero-length range to the earlier entry.
	order := make([]int, len(entries))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		switch {
		case entries[a].DataOffset < entries[b].DataOffset:
			return -1
		case entries[a].DataOffset > entries[b].DataOffset:
			return 1
		default:
			return 0
		}
	})

	spans := make([]Span, len(entries))
	for pos, idx := range order {
		end := fileSize
		if pos+1 < len(order) {
			end = int(entries[order[pos+1]].DataOffset)
		}
		spans[idx] = Span{
			Entry: entries[idx],
			Start: int(entries[idx].DataOffset),
			End:   end,
		}
	}
	return spans, nil
}
