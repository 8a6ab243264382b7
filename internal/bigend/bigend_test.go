package bigend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderValues(t *testing.T) {
	t.Parallel()

	buf := []byte{0x12, 0x34, 0x56, 0x78, 0x9a, 0xbc}
	r := NewReader(buf)

	assert.Equal(t, uint16(0x1234), r.Uint16(0))
	assert.Equal(t, uint16(0x789a), r.Uint16(3))
	assert.Equal(t, uint32(0x12345678), r.Uint32(0))
	assert.Equal(t, uint32(0x56789abc), r.Uint32(2))
	assert.Equal(t, []byte{0x34, 0x56, 0x78}, r.Bytes(1, 3))
	require.NoError(t, r.Err())
	assert.Equal(t, len(buf), r.Len())
}

func TestReaderBytesAliases(t *testing.T) {
	t.Parallel()

	buf := []byte{1, 2, 3, 4}
	r := NewReader(buf)
	view := r.Bytes(1, 2)
	require.NoError(t, r.Err())

	buf[1] = 9
	assert.Equal(t, []byte{9, 3}, view, "Bytes must alias, not copy")
}

func TestReaderOutOfBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		read func(r *Reader)
	}{
		{"uint16 past end", func(r *Reader) { r.Uint16(3) }},
		{"uint16 at end", func(r *Reader) { r.Uint16(4) }},
		{"uint32 straddling end", func(r *Reader) { r.Uint32(1) }},
		{"bytes past end", func(r *Reader) { r.Bytes(2, 3) }},
		{"negative offset", func(r *Reader) { r.Uint16(-1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := NewReader([]byte{1, 2, 3, 4})
			tt.read(r)
			assert.ErrorIs(t, r.Err(), ErrOutOfBounds)
		})
	}
}

func TestReaderStickyError(t *testing.T) {
	t.Parallel()

	r := NewReader([]byte{1, 2})
	r.Uint32(0) // out of bounds
	first := r.Err()
	require.ErrorIs(t, first, ErrOutOfBounds)

	// Later in-bounds reads return zero values and keep the first error.
	assert.Equal(t, uint16(0), r.Uint16(0))
	assert.Nil(t, r.Bytes(0, 1))
	assert.Equal(t, first, r.Err())
}

func TestReaderEmptyBuffer(t *testing.T) {
	t.Parallel()

	r := NewReader(nil)
	assert.Equal(t, []byte{}, r.Bytes(0, 0))
	require.NoError(t, r.Err())

	r.Uint16(0)
	assert.ErrorIs(t, r.Err(), ErrOutOfBounds)
}
