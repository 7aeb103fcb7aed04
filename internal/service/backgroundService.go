package service

import (
	"fmt"

	"github.com/ds124wfegd/dmg-background/internal/entity"
	"github.com/sirupsen/logrus"
)

func (s *backgroundService) Generate(layout entity.Layout) (*entity.Result, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"dimensions":  fmt.Sprintf("%dx%d", layout.Width, layout.Height),
		"app_icon":    layout.AppIcon.String(),
		"apps_folder": layout.AppsFolder.String(),
		"arrow":       layout.Arrow != nil,
	}).Info("Generating DMG background image")

	img, err := s.composer.Compose(layout)
	if err != nil {
		return nil, fmt.Errorf("failed to compose background: %w", err)
	}

	size, err := s.repo.Save(layout.OutputPath, img)
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"output": layout.OutputPath,
		"size":   fmt.Sprintf("%.1f KB", float64(size)/1024),
	}).Info("DMG background generated successfully")

	return &entity.Result{
		Path:   layout.OutputPath,
		Bytes:  size,
		Width:  img.Bounds().Dx(),
		Height: img.Bounds().Dy(),
	}, nil
}
