package prc

import "github.com/opencontainers/go-digest"

// Manifest records what an extraction produced: the database identity plus
// one entry per resource in directory order, each with its located range and
// a content digest. It marshals to JSON as-is.
type Manifest struct {
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	Creator   string          `json:"creator"`
	Resources []ManifestEntry `json:"resources"`
}

// ManifestEntry describes one extracted resource.
type ManifestEntry struct {
	Type   string        `json:"type"`
	ID     uint16        `json:"id"`
	Start  int           `json:"start"`
	End    int           `json:"end"`
	Size   int           `json:"size"`
	Digest digest.Digest `json:"digest"`
}

// Manifest builds the extraction manifest. Digests are computed on first
// call and the result is cached on the File.
func (f *File) Manifest() *Manifest {
	if f.manifest != nil {
		return f.manifest
	}

	info := f.Info()
	m := &Manifest{
		Name:      info.Name(),
		Type:      f.hdr.Type.String(),
		Creator:   f.hdr.Creator.String(),
		Resources: make([]ManifestEntry, 0, len(f.spans)),
	}
	for _, s := range f.spans {
		m.Resources = append(m.Resources, ManifestEntry{
			Type:   s.Entry.Type.String(),
			ID:     s.Entry.ID,
			Start:  s.Start,
			End:    s.End,
			Size:   s.Size(),
			Digest: digest.FromBytes(f.data[s.Start:s.End]),
		})
	}
	f.manifest = m
	return m
}
