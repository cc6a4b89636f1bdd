package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

const ManifestFile = "manifest.json"

// Entry describes one rendered file.
type Entry struct {
	Visual   string    `json:"visual"`
	File     string    `json:"file"`
	Format   string    `json:"format"`
	Width    int       `json:"width"`
	Height   int       `json:"height"`
	Frames   int       `json:"frames,omitempty"`
	Rendered time.Time `json:"rendered"`
}

type Manifest struct {
	Entries []Entry `json:"entries"`
}

// LoadManifest reads dir's manifest. A missing file is an empty manifest.
func LoadManifest(dir string) (*Manifest, error) {
	m := &Manifest{Entries: make([]Entry, 0)}
	data, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if os.IsNotExist(err) {
		return m, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	if err := json.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return m, nil
}

// Add records e, replacing an earlier entry for the same file.
func (m *Manifest) Add(e Entry) {
	for i := range m.Entries {
		if m.Entries[i].File == e.File {
			m.Entries[i] = e
			return
		}
	}
	m.Entries = append(m.Entries, e)
}

func (m *Manifest) Save(dir string) error {
	_, err := WriteFile(dir, ManifestFile, func(w io.Writer) error {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(m)
	})
	return err
}
