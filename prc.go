package prc

import (
	"errors"

	"github.com/palmkit/prc/internal/bigend"
)

// Sentinel errors.
var (
	// ErrOutOfBounds is returned when a field read would exceed the buffer.
	// Guarded callers inside this package never surface it; it can escape
	// when callers probe buffers directly through parse helpers.
	ErrOutOfBounds = bigend.ErrOutOfBounds

	// ErrTruncatedHeader is returned when the file is shorter than the
	// fixed 78-byte header.
	ErrTruncatedHeader = errors.New("prc: truncated header")

	// ErrTruncatedDirectory is returned when the file is shorter than the
	// header plus the declared directory table.
	ErrTruncatedDirectory = errors.New("prc: truncated resource directory")

	// ErrUnsupportedVariant is returned when nextRecordListOffset is
	// nonzero. Chained record lists are a format variant this package does
	// not handle; rejecting is safer than silently mishandling it.
	ErrUnsupportedVariant = errors.New("prc: unsupported format variant")

	// ErrInvalidOffset is returned when a directory entry's data offset
	// falls outside the valid payload region.
	ErrInvalidOffset = errors.New("prc: invalid resource offset")
)

const (
	// HeaderSize is the size in bytes of the fixed file header.
	HeaderSize = 78

	// EntrySize is the size in bytes of one resource directory record.
	EntrySize = 10
)

// Tag is a 4-byte identifier, used for database types, creator codes, and
// resource types. Tags are raw bytes and are not necessarily printable ASCII.
type Tag [4]byte

// NewTag builds a Tag from the first four bytes of s, zero-padded if s is
// shorter.
func NewTag(s string) Tag {
	var t Tag
	copy(t[:], s)
	return t
}

// String renders the tag with non-printable bytes replaced by '?'.
// The raw bytes remain available via the array itself.
func (t Tag) String() string {
	var out [4]byte
	for i, b := range t {
		if b < 0x20 || b > 0x7e {
			b = '?'
		}
		out[i] = b
	}
	return string(out[:])
}

// FileHeader is the fixed 78-byte structure at the start of every PRC file.
// All multi-byte integers are big-endian. Fixed-width byte fields are kept
// raw so the header round-trips losslessly regardless of encoding.
type FileHeader struct {
	// Name is the application name, null-padded to 32 bytes.
	Name [32]byte

	// Flags holds the database attribute bits.
	Flags uint16

	// Version is the application-defined version.
	Version uint16

	// Created, Modified, and LastBackup are Pilot timestamps: seconds
	// since the Mac epoch (1904-01-01 UTC). Zero means unset.
	Created    uint32
	Modified   uint32
	LastBackup uint32

	// ModNumber must be zero for resource databases.
	ModNumber uint32

	// AppInfoOffset and SortInfoOffset are absolute file offsets,
	// zero when absent.
	AppInfoOffset  uint32
	SortInfoOffset uint32

	// Type is the database type tag, "appl" for applications.
	Type Tag

	// Creator is the four-character creator code.
	Creator Tag

	// UniqueIDSeed must be zero for resource databases.
	UniqueIDSeed uint32

	// NextRecordList must be zero; a nonzero value marks a chained
	// record-list variant that Parse rejects.
	NextRecordList uint32

	// NumRecords is the count of directory records following the header.
	NumRecords uint16
}

// ResourceEntry is one 10-byte record of the resource directory.
type ResourceEntry struct {
	// Type classifies the resource, e.g. "code" or "tAIB".
	Type Tag

	// ID is the resource's numeric identifier. (Type, ID) pairs are
	// usually unique but the format does not require it.
	ID uint16

	// DataOffset is the absolute file offset where the payload begins.
	DataOffset uint32
}

// Span is a located resource: a directory entry plus its exclusive byte
// range in the source buffer. Start == End marks a zero-length resource.
type Span struct {
	Entry ResourceEntry
	Start int
	End   int
}

// Size returns the payload length in bytes.
func (s Span) Size() int {
	return s.End - s.Start
}
