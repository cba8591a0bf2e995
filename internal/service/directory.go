package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/sirupsen/logrus"
)

// TouristRepository определяет контракт для работы с бд туристов
type TouristRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Tourist, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.TouristStatus) error
	// UpdateLocation записывает позицию и кешированную оценку, последняя
	// запись побеждает
	UpdateLocation(ctx context.Context, id uuid.UUID, p models.Position, score int) error
	SaveSafetyCheck(ctx context.Context, check *models.SafetyCheck) error
	GetSafetyCheckStats(ctx context.Context, minutes int) (int, error)
}

// DirectoryService разрешает идентификаторы участников в профили.
// Возвращенная роль принимается на веру: проверка учетных данных
// выполняется вне этого ядра.
type DirectoryService interface {
	ResolveTourist(ctx context.Context, id uuid.UUID) (*models.Tourist, error)
	ResolveAuthority(ctx context.Context, id uuid.UUID) (*models.Authority, error)
}

type directoryService struct {
	touristRepo   TouristRepository
	authorityRepo AuthorityRepository
	logger        *logrus.Logger
}

func NewDirectoryService(touristRepo TouristRepository, authorityRepo AuthorityRepository, logger *logrus.Logger) DirectoryService {
	return &directoryService{
		touristRepo:   touristRepo,
		authorityRepo: authorityRepo,
		logger:        logger,
	}
}

func (s *directoryService) ResolveTourist(ctx context.Context, id uuid.UUID) (*models.Tourist, error) {
	tourist, err := s.touristRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service":    "directory",
			"tourist_id": id,
		}).WithError(err).Warn("Failed to resolve tourist")
		return nil, err
	}
	return tourist, nil
}

func (s *directoryService) ResolveAuthority(ctx context.Context, id uuid.UUID) (*models.Authority, error) {
	authority, err := s.authorityRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service":      "directory",
			"authority_id": id,
		}).WithError(err).Warn("Failed to resolve authority")
		return nil, err
	}
	return authority, nil
}
