package prc

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Database attribute bits relevant to inspection.
const (
	flagResourceDB  = 0x0001
	flagNonBeamable = 0x0040
)

// Info provides a human-oriented view of a parsed file: decoded name and
// tags, timestamps on the Unix scale, and aggregate payload statistics.
//
// Aggregate stats are computed on first use and cached.
type Info struct {
	f *File

	statsOnce    sync.Once
	totalPayload uint64
	largest      Span
}

// Info returns the inspection view for the file. The same Info is returned
// on every call.
func (f *File) Info() *Info {
	if f.info == nil {
		f.info = &Info{f: f}
	}
	return f.info
}

// Name returns the database name: the zero-terminated prefix of the raw
// 32-byte field, with non-printable bytes replaced by '?'.
func (i *Info) Name() string {
	raw := i.f.hdr.Name[:]
	if n := strings.IndexByte(string(raw), 0); n >= 0 {
		raw = raw[:n]
	}
	var b strings.Builder
	for _, c := range raw {
		if c < 0x20 || c > 0x7e {
			c = '?'
		}
		b.WriteByte(c)
	}
	return b.String()
}

// Type returns the database type tag.
func (i *Info) Type() Tag {
	return i.f.hdr.Type
}

// Creator returns the creator code.
func (i *Info) Creator() Tag {
	return i.f.hdr.Creator
}

// Flags returns the raw attribute bits.
func (i *Info) Flags() uint16 {
	return i.f.hdr.Flags
}

// Beamable reports whether the database may be beamed to another device,
// i.e. the non-beamable bit is clear.
func (i *Info) Beamable() bool {
	return i.f.hdr.Flags&flagNonBeamable == 0
}

// Version returns the application-defined version.
func (i *Info) Version() uint16 {
	return i.f.hdr.Version
}

// Created returns the creation time, zero if unset.
func (i *Info) Created() time.Time {
	return PilotTime(i.f.hdr.Created)
}

// Modified returns the modification time, zero if unset.
func (i *Info) Modified() time.Time {
	return PilotTime(i.f.hdr.Modified)
}

// LastBackup returns the last backup time, zero if unset.
func (i *Info) LastBackup() time.Time {
	return PilotTime(i.f.hdr.LastBackup)
}

// NumResources returns the number of directory entries.
func (i *Info) NumResources() int {
	return i.f.NumResources()
}

// TotalPayloadBytes returns the sum of all resource range lengths. Gaps
// between non-contiguous ranges are not counted.
func (i *Info) TotalPayloadBytes() uint64 {
	i.computeStats()
	return i.totalPayload
}

// LargestResource returns the span with the largest payload. The zero Span
// is returned for an empty directory.
func (i *Info) LargestResource() Span {
	i.computeStats()
	return i.largest
}

func (i *Info) computeStats() {
	i.statsOnce.Do(func() {
		for n, s := range i.f.spans {
			i.totalPayload += uint64(s.Size())
			if n == 0 || s.Size() > i.largest.Size() {
				i.largest = s
			}
		}
	})
}

// Findings reports advisory header oddities: values that are legal to parse
// but unusual for a PRC application. An empty slice means a conventional
// header. These never make parsing fail.
func (i *Info) Findings() []string {
	hdr := i.f.hdr
	var out []string
	if hdr.Flags&flagResourceDB == 0 {
		out = append(out, fmt.Sprintf("flags 0x%04x lack the resource-database bit", hdr.Flags))
	}
	if hdr.Version != 1 {
		out = append(out, fmt.Sprintf("version 0x%04x is not 0x01", hdr.Version))
	}
	if hdr.Type != NewTag("appl") {
		out = append(out, fmt.Sprintf("type %q is not \"appl\"", hdr.Type))
	}
	if hdr.ModNumber != 0 {
		out = append(out, fmt.Sprintf("modification number should be 0, got %d", hdr.ModNumber))
	}
	if hdr.AppInfoOffset != 0 {
		out = append(out, fmt.Sprintf("appInfoOffset should be 0, got 0x%08x", hdr.AppInfoOffset))
	}
	if hdr.SortInfoOffset != 0 {
		out = append(out, fmt.Sprintf("sortInfoOffset should be 0, got 0x%08x", hdr.SortInfoOffset))
	}
	if hdr.UniqueIDSeed != 0 {
		out = append(out, fmt.Sprintf("uniqueIDSeed should be 0, got 0x%08x", hdr.UniqueIDSeed))
	}
	return out
}
