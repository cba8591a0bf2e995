package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/service"
)

// InMemoryAuthorityRepository - потокобезопасная реализация
// AuthorityRepository в памяти
type InMemoryAuthorityRepository struct {
	authorities map[uuid.UUID]*models.Authority
	mutex       sync.RWMutex
}

func NewInMemoryAuthorityRepository() *InMemoryAuthorityRepository {
	return &InMemoryAuthorityRepository{
		authorities: make(map[uuid.UUID]*models.Authority),
	}
}

var _ service.AuthorityRepository = (*InMemoryAuthorityRepository)(nil)

// Add регистрирует ответственного в хранилище
func (r *InMemoryAuthorityRepository) Add(authority *models.Authority) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if authority.ID == uuid.Nil {
		authority.ID = uuid.New()
	}
	stored := *authority
	r.authorities[authority.ID] = &stored
}

func (r *InMemoryAuthorityRepository) GetByID(_ context.Context, id uuid.UUID) (*models.Authority, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	authority, exists := r.authorities[id]
	if !exists {
		return nil, &models.NotFoundError{Entity: "authority", ID: id.String()}
	}
	copied := *authority
	return &copied, nil
}

// ListOnDuty возвращает дежурных в стабильном порядке по времени создания
func (r *InMemoryAuthorityRepository) ListOnDuty(_ context.Context, departments []models.Department) ([]*models.Authority, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	wanted := make(map[models.Department]struct{}, len(departments))
	for _, d := range departments {
		wanted[d] = struct{}{}
	}

	result := make([]*models.Authority, 0)
	for _, authority := range r.authorities {
		if !authority.OnDuty {
			continue
		}
		if len(wanted) > 0 {
			if _, ok := wanted[authority.Department]; !ok {
				continue
			}
		}
		copied := *authority
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}
