package storage

import (
	"context"
	"os"
	"path/filepath"
)

// FileStore keeps one JSON file per store key under a data directory. This is
// the default backend, standing in for the client's local storage.
type FileStore struct {
	Dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{Dir: dir}
}

func (f *FileStore) path(key string) string {
	return filepath.Join(f.Dir, key+".json")
}

func (f *FileStore) Load(ctx context.Context, key string) ([]byte, error) {
	blob, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, err
	}
	return blob, nil
}

func (f *FileStore) Save(ctx context.Context, key string, payload []byte) error {
	if err := os.MkdirAll(f.Dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(f.path(key), payload, 0644)
}

var _ SnapshotStore = (*FileStore)(nil)
