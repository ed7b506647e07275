// Package storage is the persistent key-value collaborator the shop writes
// its collections through. Values are whole JSON-serialized collections; a
// mutation always overwrites the full value for its key.
package storage

import (
	"os"
	"path/filepath"
)

type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

type FileStore struct {
	Dir string
}

var _ Store = (*FileStore)(nil)

func NewFileStore(dir string) *FileStore {
	return &FileStore{Dir: dir}
}

func (fs *FileStore) Get(key string) (string, bool) {
	data, err := os.ReadFile(filepath.Join(fs.Dir, key))
	if err != nil {
		return "", false
	}
	return string(data), true
}

func (fs *FileStore) Set(key, value string) error {
	filePath := filepath.Join(fs.Dir, key)
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return err
	}
	return os.WriteFile(filePath, []byte(value), 0644)
}
