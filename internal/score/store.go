package score

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/quasilyte/gdata"
)

// ErrNotFound is returned by a Store when the requested item was never saved.
var ErrNotFound = errors.New("score: item not found")

// Store persists small named byte blobs.
type Store interface {
	// Load returns the item's bytes, or ErrNotFound if it does not exist.
	Load(key string) ([]byte, error)
	// Save replaces the item's bytes.
	Save(key string, data []byte) error
}

// DefaultDataDir is where a DirStore keeps its files unless told otherwise.
const DefaultDataDir = "Data"

// DirStore keeps each item as a plain file in a directory.
type DirStore struct {
	Dir string
	Ext string // Appended to the key to form the file name
}

// NewDirStore returns a store writing <dir>/<key>.txt files.
func NewDirStore(dir string) *DirStore {
	return &DirStore{Dir: dir, Ext: ".txt"}
}

// Path returns the file path used for key.
func (s *DirStore) Path(key string) string {
	return filepath.Join(s.Dir, key+s.Ext)
}

// Load reads the item file.
func (s *DirStore) Load(key string) ([]byte, error) {
	data, err := os.ReadFile(s.Path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	return data, nil
}

// Save writes the item file, creating the directory first if needed.
func (s *DirStore) Save(key string, data []byte) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := os.WriteFile(s.Path(key), data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// GdataStore keeps items in the per-user application data location
// managed by gdata.
type GdataStore struct {
	m *gdata.Manager
}

// OpenGdataStore opens (and creates if needed) the data location for app.
func OpenGdataStore(app string) (*GdataStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: app,
	})
	if err != nil {
		return nil, fmt.Errorf("open game data: %w", err)
	}
	return &GdataStore{m: m}, nil
}

// Load reads the item.
func (s *GdataStore) Load(key string) ([]byte, error) {
	data, err := s.m.LoadItem(key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	if data == nil {
		return nil, ErrNotFound
	}
	return data, nil
}

// Save writes the item.
func (s *GdataStore) Save(key string, data []byte) error {
	if err := s.m.SaveItem(key, data); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

var (
	_ Store = (*DirStore)(nil)
	_ Store = (*GdataStore)(nil)
)
