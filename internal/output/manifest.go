package output

import (
	"crypto/sha256"
	"encoding/hex"
)

// ManifestEntry describes one written output file.
type ManifestEntry struct {
	File   string `json:"file"`
	Bytes  int    `json:"bytes"`
	SHA256 string `json:"sha256"`
}

// Manifest accumulates a content digest per written file, in write order.
type Manifest struct {
	entries []ManifestEntry
}

// NewManifest creates an empty manifest.
func NewManifest() *Manifest {
	return &Manifest{}
}

// Record adds an entry for a written file.
func (m *Manifest) Record(file string, content []byte) {
	digest := sha256.Sum256(content)

	m.entries = append(m.entries, ManifestEntry{
		File:   file,
		Bytes:  len(content),
		SHA256: hex.EncodeToString(digest[:]),
	})
}

// Entries returns the recorded entries in write order.
func (m *Manifest) Entries() []ManifestEntry {
	return m.entries
}
