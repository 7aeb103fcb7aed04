package storage

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

type FileStorage interface {
	Save(path string, data io.Reader) error
	Get(path string) (io.ReadCloser, error)
	Delete(path string) error
	Exists(path string) bool
	Size(path string) (int64, error)
}

type fileStorage struct {
	fs       afero.Fs
	basePath string
}

// NewFileStorage roots relative paths at basePath on fs. An empty basePath
// leaves paths untouched.
func NewFileStorage(fs afero.Fs, basePath string) FileStorage {
	return &fileStorage{fs: fs, basePath: basePath}
}

func (s *fileStorage) Save(path string, data io.Reader) error {
	fullPath := s.fullPath(path)

	if err := s.fs.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	file, err := s.fs.Create(fullPath)
	if err != nil {
		return err
	}

	if _, err = io.Copy(file, data); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func (s *fileStorage) Get(path string) (io.ReadCloser, error) {
	return s.fs.Open(s.fullPath(path))
}

func (s *fileStorage) Delete(path string) error {
	return s.fs.Remove(s.fullPath(path))
}

func (s *fileStorage) Exists(path string) bool {
	_, err := s.fs.Stat(s.fullPath(path))
	return !os.IsNotExist(err)
}

func (s *fileStorage) Size(path string) (int64, error) {
	info, err := s.fs.Stat(s.fullPath(path))
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

func (s *fileStorage) fullPath(path string) string {
	if s.basePath == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(s.basePath, path)
}
