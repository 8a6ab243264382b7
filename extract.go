package prc

import "iter"

// File is a parsed PRC file. It retains the source buffer read-only and
// hands out views into it; the buffer must not be modified while the File
// is in use.
type File struct {
	data    []byte
	hdr     FileHeader
	entries []ResourceEntry
	spans   []Span

	info     *Info
	manifest *Manifest
}

// Parse parses the whole file image: header, resource directory, and
// resource ranges. It fails fast on the first structural violation; there
// is no partial extraction mode.
//
// The input is expected to be the complete file contents. Parse retains
// data without copying it.
func Parse(data []byte) (*File, error) {
	hdr, entries, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}
	spans, err := Locate(entries, len(data))
	if err != nil {
		return nil, err
	}
	return &File{
		data:    data,
		hdr:     hdr,
		entries: entries,
		spans:   spans,
	}, nil
}

// Header returns the parsed file header.
func (f *File) Header() FileHeader {
	return f.hdr
}

// RawHeader returns the 78 header bytes verbatim, independent of the parsed
// fields, for lossless re-emission. The slice aliases the source buffer.
func (f *File) RawHeader() []byte {
	return f.data[:HeaderSize]
}

// NumResources returns the number of directory entries.
func (f *File) NumResources() int {
	return len(f.entries)
}

// Spans returns the located resource ranges in directory order. The slice
// is shared; callers must not modify it.
func (f *File) Spans() []Span {
	return f.spans
}

// Resources iterates (entry, payload) pairs in directory order. Payloads
// alias the source buffer and may be zero-length. Every directory entry is
// yielded exactly once, including duplicate (type, id) pairs.
func (f *File) Resources() iter.Seq2[ResourceEntry, []byte] {
	return func(yield func(ResourceEntry, []byte) bool) {
		for _, s := range f.spans {
			if !yield(s.Entry, f.data[s.Start:s.End]) {
				return
			}
		}
	}
}
