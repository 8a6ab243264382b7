package prc

import (
	"fmt"

	"github.com/palmkit/prc/internal/bigend"
)

// Header field offsets within the fixed 78-byte header.
const (
	offName           = 0
	offFlags          = 32
	offVersion        = 34
	offCreated        = 36
	offModified       = 40
	offLastBackup     = 44
	offModNumber      = 48
	offAppInfo        = 52
	offSortInfo       = 56
	offType           = 60
	offCreator        = 64
	offUniqueIDSeed   = 68
	offNextRecordList = 72
	offNumRecords     = 76
)

// Directory record field offsets, relative to the record start.
const (
	entOffType   = 0
	entOffID     = 4
	entOffOffset = 6
)

// ParseHeader reads the file header and the resource directory that follows
// it. It validates structure only: the buffer must cover the 78-byte header
// and all declared directory records, and the chained record-list variant is
// rejected. Data offsets are not range-checked here; that is Locate's job,
// so each stage stays independently testable.
func ParseHeader(data []byte) (FileHeader, []ResourceEntry, error) {
	if len(data) < HeaderSize {
		return FileHeader{}, nil, fmt.Errorf("%w: %d bytes, need %d",
			ErrTruncatedHeader, len(data), HeaderSize)
	}

	r := bigend.NewReader(data)
	var hdr FileHeader
	copy(hdr.Name[:], r.Bytes(offName, len(hdr.Name)))
	hdr.Flags = r.Uint16(offFlags)
	hdr.Version = r.Uint16(offVersion)
	hdr.Created = r.Uint32(offCreated)
	hdr.Modified = r.Uint32(offModified)
	hdr.LastBackup = r.Uint32(offLastBackup)
	hdr.ModNumber = r.Uint32(offModNumber)
	hdr.AppInfoOffset = r.Uint32(offAppInfo)
	hdr.SortInfoOffset = r.Uint32(offSortInfo)
	copy(hdr.Type[:], r.Bytes(offType, len(hdr.Type)))
	copy(hdr.Creator[:], r.Bytes(offCreator, len(hdr.Creator)))
	hdr.UniqueIDSeed = r.Uint32(offUniqueIDSeed)
	hdr.NextRecordList = r.Uint32(offNextRecordList)
	hdr.NumRecords = r.Uint16(offNumRecords)
	if err := r.Err(); err != nil {
		return FileHeader{}, nil, err
	}

	if hdr.NextRecordList != 0 {
		return FileHeader{}, nil, fmt.Errorf(
			"%w: nextRecordListOffset 0x%08x (chained record lists)",
			ErrUnsupportedVariant, hdr.NextRecordList)
	}

	n := int(hdr.NumRecords)
	dirEnd := HeaderSize + n*EntrySize
	if len(data) < dirEnd {
		return FileHeader{}, nil, fmt.Errorf(
			"%w: %d bytes, need %d for %d records",
			ErrTruncatedDirectory, len(data), dirEnd, n)
	}

	entries := make([]ResourceEntry, n)
	for i := range entries {
		base := HeaderSize + i*EntrySize
		var e ResourceEntry
		copy(e.Type[:], r.Bytes(base+entOffType, len(e.Type)))
		e.ID = r.Uint16(base + entOffID)
		e.DataOffset = r.Uint32(base + entOffOffset)
		entries[i] = e
	}
	if err := r.Err(); err != nil {
		return FileHeader{}, nil, err
	}

	return hdr, entries, nil
}
