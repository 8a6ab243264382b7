// Package prc parses PalmOS resource database (PRC) files and splits them
// into their constituent parts: the fixed 78-byte header and a sequence of
// named, typed resource blobs.
//
// The format stores no per-resource length. Each resource's extent is implied
// by the data offset of the next resource, or by end of file, so the package
// locates resources with an explicit sort-then-diff pass rather than trusting
// the directory table to arrive sorted.
//
// Resource contents are opaque byte ranges. Payloads yielded by
// [File.Resources] alias the source buffer; nothing is copied until a
// consumer copies it.
//
// # Quick Start
//
// Parse a file and walk its resources:
//
//	data, err := os.ReadFile("app.prc")
//	if err != nil {
//	    return err
//	}
//	f, err := prc.Parse(data)
//	if err != nil {
//	    return err
//	}
//	for entry, payload := range f.Resources() {
//	    fmt.Printf("%s #%d: %d bytes\n", entry.Type, entry.ID, len(payload))
//	}
//
// Extraction to disk lives in the internal sink package and is exposed
// through the prc2bin command.
package prc
