package service

import (
	"github.com/ds124wfegd/dmg-background/internal/database"
	"github.com/ds124wfegd/dmg-background/internal/entity"
	"github.com/ds124wfegd/dmg-background/internal/pkg/composer"
	"github.com/sirupsen/logrus"
)

type BackgroundService interface {
	Generate(layout entity.Layout) (*entity.Result, error)
}

type backgroundService struct {
	repo     database.BackgroundRepository
	composer composer.Composer
	log      logrus.FieldLogger
}

func NewBackgroundService(repo database.BackgroundRepository, composer composer.Composer, log logrus.FieldLogger) BackgroundService {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &backgroundService{
		repo:     repo,
		composer: composer,
		log:      log,
	}
}
