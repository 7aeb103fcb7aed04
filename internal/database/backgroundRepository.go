package database

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
	"github.com/ds124wfegd/dmg-background/internal/pkg/storage"
)

func NewBackgroundRepository(storage storage.FileStorage) BackgroundRepository {
	return &fileBackgroundRepository{storage: storage}
}

func (r *fileBackgroundRepository) Save(path string, img image.Image) (int64, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression)); err != nil {
		return 0, fmt.Errorf("failed to encode png: %w", err)
	}

	if err := r.storage.Save(path, &buf); err != nil {
		return 0, fmt.Errorf("failed to write %s: %w", path, err)
	}

	size, err := r.storage.Size(path)
	if err != nil {
		return 0, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return size, nil
}

func (r *fileBackgroundRepository) Exists(path string) bool {
	return r.storage.Exists(path)
}
