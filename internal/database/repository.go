package database

import (
	"image"

	"github.com/ds124wfegd/dmg-background/internal/pkg/storage"
)

type BackgroundRepository interface {
	// Save encodes img as PNG at path and returns the written size in bytes.
	Save(path string, img image.Image) (int64, error)
	Exists(path string) bool
}

type fileBackgroundRepository struct {
	storage storage.FileStorage
}
