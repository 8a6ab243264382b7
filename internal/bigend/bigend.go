// Package bigend provides bounds-checked big-endian reads over a fixed
// byte buffer.
package bigend

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned when a read would exceed the buffer.
var ErrOutOfBounds = errors.New("prc: read out of bounds")

// Reader reads fixed-width fields from an immutable buffer at arbitrary
// offsets. The first out-of-bounds read latches the error; later reads
// return zero values and Err reports the original failure. This keeps
// multi-field parses free of per-read error plumbing.
//
// Reader never modifies the buffer and holds no other state.
type Reader struct {
	buf []byte
	err error
}

// NewReader wraps buf. The buffer must not be modified while the Reader
// is in use.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Len returns the buffer length.
func (r *Reader) Len() int {
	return len(r.buf)
}

// Err returns the first out-of-bounds failure, or nil.
func (r *Reader) Err() error {
	return r.err
}

func (r *Reader) check(off, width int) bool {
	if r.err != nil {
		return false
	}
	if off < 0 || width < 0 || off+width > len(r.buf) {
		r.err = fmt.Errorf("%w: %d-byte read at offset %d in %d-byte buffer",
			ErrOutOfBounds, width, off, len(r.buf))
		return false
	}
	return true
}

// Uint16 reads a big-endian uint16 at off.
func (r *Reader) Uint16(off int) uint16 {
	if !r.check(off, 2) {
		return 0
	}
	return binary.BigEndian.Uint16(r.buf[off:])
}

// Uint32 reads a big-endian uint32 at off.
func (r *Reader) Uint32(off int) uint32 {
	if !r.check(off, 4) {
		return 0
	}
	return binary.BigEndian.Uint32(r.buf[off:])
}

// Bytes returns the raw width-byte slice at off. The slice aliases the
// underlying buffer; callers that retain it must copy. No trimming or
// decoding is performed.
func (r *Reader) Bytes(off, width int) []byte {
	if !r.check(off, width) {
		return nil
	}
	return r.buf[off : off+width]
}
