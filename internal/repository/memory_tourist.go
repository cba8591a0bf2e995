package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/service"
)

// InMemoryTouristRepository - потокобезопасная реализация TouristRepository
// в памяти
type InMemoryTouristRepository struct {
	tourists map[uuid.UUID]*models.Tourist
	checks   []*models.SafetyCheck
	mutex    sync.RWMutex
}

func NewInMemoryTouristRepository() *InMemoryTouristRepository {
	return &InMemoryTouristRepository{
		tourists: make(map[uuid.UUID]*models.Tourist),
	}
}

var _ service.TouristRepository = (*InMemoryTouristRepository)(nil)

// Add регистрирует туриста в хранилище
func (r *InMemoryTouristRepository) Add(tourist *models.Tourist) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if tourist.ID == uuid.Nil {
		tourist.ID = uuid.New()
	}
	if tourist.Status == "" {
		tourist.Status = models.TouristStatusActive
	}
	stored := *tourist
	r.tourists[tourist.ID] = &stored
}

func (r *InMemoryTouristRepository) GetByID(_ context.Context, id uuid.UUID) (*models.Tourist, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	tourist, exists := r.tourists[id]
	if !exists {
		return nil, &models.NotFoundError{Entity: "tourist", ID: id.String()}
	}
	copied := *tourist
	return &copied, nil
}

func (r *InMemoryTouristRepository) UpdateStatus(_ context.Context, id uuid.UUID, status models.TouristStatus) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	tourist, exists := r.tourists[id]
	if !exists {
		return &models.NotFoundError{Entity: "tourist", ID: id.String()}
	}
	tourist.Status = status
	tourist.UpdatedAt = time.Now()
	return nil
}

func (r *InMemoryTouristRepository) UpdateLocation(_ context.Context, id uuid.UUID, p models.Position, score int) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	tourist, exists := r.tourists[id]
	if !exists {
		return &models.NotFoundError{Entity: "tourist", ID: id.String()}
	}
	position := p
	tourist.LastPosition = &position
	tourist.SafetyScore = score
	tourist.UpdatedAt = time.Now()
	return nil
}

func (r *InMemoryTouristRepository) SaveSafetyCheck(_ context.Context, check *models.SafetyCheck) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	check.ID = int64(len(r.checks) + 1)
	check.CheckedAt = time.Now()
	stored := *check
	r.checks = append(r.checks, &stored)
	return nil
}

func (r *InMemoryTouristRepository) GetSafetyCheckStats(_ context.Context, minutes int) (int, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	cutoff := time.Now().Add(-time.Duration(minutes) * time.Minute)
	seen := make(map[uuid.UUID]struct{})
	for _, check := range r.checks {
		if check.CheckedAt.After(cutoff) {
			seen[check.TouristID] = struct{}{}
		}
	}
	return len(seen), nil
}
