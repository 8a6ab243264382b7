// Package testutil builds synthetic PRC images for tests.
package testutil

import (
	"encoding/binary"
	"testing"
)

// Wire sizes, restated here so the builder stands on the format itself
// rather than on the package under test.
const (
	headerSize = 78
	entrySize  = 10
)

// Resource declares one resource for a packed image.
type Resource struct {
	Type string
	ID   uint16
	Data []byte
}

// Image declares a PRC file. Zero-value fields get conventional defaults:
// type "appl", creator "TEST", flags 0x0001, version 1.
type Image struct {
	Name           string
	Flags          uint16
	Version        uint16
	Created        uint32
	Modified       uint32
	Backup         uint32
	Type           string
	Creator        string
	NextRecordList uint32
	Resources      []Resource

	// NoDefaults suppresses the conventional defaults, leaving zero
	// fields zero. Needed when a test wants an unconventional header.
	NoDefaults bool
}

// DirEntry declares one raw directory record for BuildRaw.
type DirEntry struct {
	Type   string
	ID     uint16
	Offset uint32
}

// Build produces a packed image: resources laid out back to back starting
// right after the directory, offsets computed by the builder.
func (img Image) Build(tb testing.TB) []byte {
	tb.Helper()

	n := len(img.Resources)
	dirEnd := headerSize + n*entrySize
	size := dirEnd
	for _, r := range img.Resources {
		size += len(r.Data)
	}

	buf := make([]byte, 0, size)
	buf = append(buf, img.header(n)...)

	off := uint32(dirEnd)
	for _, r := range img.Resources {
		buf = appendDirEntry(buf, r.Type, r.ID, off)
		off += uint32(len(r.Data))
	}
	for _, r := range img.Resources {
		buf = append(buf, r.Data...)
	}
	return buf
}

// BuildRaw produces an image with a caller-controlled directory: entries
// are written verbatim (any offsets, any order) and the region between the
// directory end and fileSize is filled with a deterministic byte pattern.
// fileSize must cover the header and directory.
func (img Image) BuildRaw(tb testing.TB, entries []DirEntry, fileSize int) []byte {
	tb.Helper()

	dirEnd := headerSize + len(entries)*entrySize
	if fileSize < dirEnd {
		tb.Fatalf("BuildRaw: fileSize %d below directory end %d", fileSize, dirEnd)
	}

	buf := make([]byte, 0, fileSize)
	buf = append(buf, img.header(len(entries))...)
	for _, e := range entries {
		buf = appendDirEntry(buf, e.Type, e.ID, e.Offset)
	}
	for i := dirEnd; i < fileSize; i++ {
		buf = append(buf, byte(i%251))
	}
	return buf
}

func (img Image) header(numRecords int) []byte {
	typ, creator, flags, version := img.Type, img.Creator, img.Flags, img.Version
	if !img.NoDefaults {
		if typ == "" {
			typ = "appl"
		}
		if creator == "" {
			creator = "TEST"
		}
		if flags == 0 {
			flags = 0x0001
		}
		if version == 0 {
			version = 1
		}
	}

	h := make([]byte, headerSize)
	copy(h[0:32], img.Name)
	binary.BigEndian.PutUint16(h[32:], flags)
	binary.BigEndian.PutUint16(h[34:], version)
	binary.BigEndian.PutUint32(h[36:], img.Created)
	binary.BigEndian.PutUint32(h[40:], img.Modified)
	binary.BigEndian.PutUint32(h[44:], img.Backup)
	// modificationNumber, appInfo, sortInfo stay zero
	copy(h[60:64], typ)
	copy(h[64:68], creator)
	// uniqueIDSeed stays zero
	binary.BigEndian.PutUint32(h[72:], img.NextRecordList)
	binary.BigEndian.PutUint16(h[76:], uint16(numRecords))
	return h
}

func appendDirEntry(buf []byte, typ string, id uint16, offset uint32) []byte {
	var tag [4]byte
	copy(tag[:], typ)
	buf = append(buf, tag[:]...)
	buf = binary.BigEndian.AppendUint16(buf, id)
	buf = binary.BigEndian.AppendUint32(buf, offset)
	return buf
}
