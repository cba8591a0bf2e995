package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/tourist_safety_system/internal/geo"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/service"
)

// InMemoryAlertRepository - потокобезопасная реализация AlertRepository в
// памяти. Используется в тестах и как хранилище без внешних зависимостей.
type InMemoryAlertRepository struct {
	alerts map[uuid.UUID]*models.Alert
	mutex  sync.RWMutex
}

func NewInMemoryAlertRepository() *InMemoryAlertRepository {
	return &InMemoryAlertRepository{
		alerts: make(map[uuid.UUID]*models.Alert),
	}
}

var _ service.AlertRepository = (*InMemoryAlertRepository)(nil)

func (r *InMemoryAlertRepository) Create(_ context.Context, alert *models.Alert) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if alert.ID == uuid.Nil {
		alert.ID = uuid.New()
	}
	now := time.Now()
	alert.CreatedAt = now
	alert.UpdatedAt = now

	stored := *alert
	r.alerts[alert.ID] = &stored
	return nil
}

func (r *InMemoryAlertRepository) GetByID(_ context.Context, id uuid.UUID) (*models.Alert, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	alert, exists := r.alerts[id]
	if !exists {
		return nil, &models.NotFoundError{Entity: "alert", ID: id.String()}
	}
	copied := *alert
	return &copied, nil
}

// UpdateStatus выполняет условное обновление по версии, как и реализация
// поверх Postgres
func (r *InMemoryAlertRepository) UpdateStatus(_ context.Context, alert *models.Alert, expectedVersion int64) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	stored, exists := r.alerts[alert.ID]
	if !exists {
		return &models.NotFoundError{Entity: "alert", ID: alert.ID.String()}
	}
	if stored.Version != expectedVersion {
		return models.ErrVersionConflict
	}

	stored.Status = alert.Status
	stored.Description = alert.Description
	stored.AuthorityID = alert.AuthorityID
	stored.Version = expectedVersion + 1
	stored.UpdatedAt = time.Now()

	alert.Version = stored.Version
	alert.UpdatedAt = stored.UpdatedAt
	return nil
}

func (r *InMemoryAlertRepository) FindRecentNear(_ context.Context, lat, lon, radiusMeters float64, since time.Time) ([]*models.Alert, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	p := models.Position{Latitude: lat, Longitude: lon}
	result := make([]*models.Alert, 0)
	for _, alert := range r.alerts {
		if alert.CreatedAt.Before(since) {
			continue
		}
		if geo.DistanceMeters(p, alert.Location) <= radiusMeters {
			copied := *alert
			result = append(result, &copied)
		}
	}
	return result, nil
}
