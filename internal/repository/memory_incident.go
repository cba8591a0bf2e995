package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/service"
)

// InMemoryIncidentRepository - потокобезопасная реализация
// IncidentRepository в памяти
type InMemoryIncidentRepository struct {
	incidents map[uuid.UUID]*models.Incident
	alerts    *InMemoryAlertRepository
	seq       map[string]int64
	mutex     sync.Mutex
}

// NewInMemoryIncidentRepository создает хранилище инцидентов; связанные
// тревоги складываются в переданный репозиторий тревог
func NewInMemoryIncidentRepository(alerts *InMemoryAlertRepository) *InMemoryIncidentRepository {
	return &InMemoryIncidentRepository{
		incidents: make(map[uuid.UUID]*models.Incident),
		alerts:    alerts,
		seq:       make(map[string]int64),
	}
}

var _ service.IncidentRepository = (*InMemoryIncidentRepository)(nil)

func (r *InMemoryIncidentRepository) CreateWithAlert(ctx context.Context, incident *models.Incident, alert *models.Alert) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if err := r.alerts.Create(ctx, alert); err != nil {
		return err
	}
	now := time.Now()
	incident.CreatedAt = now
	incident.UpdatedAt = now
	stored := *incident
	r.incidents[incident.ID] = &stored
	return nil
}

func (r *InMemoryIncidentRepository) GetByID(_ context.Context, id uuid.UUID) (*models.Incident, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	incident, exists := r.incidents[id]
	if !exists {
		return nil, &models.NotFoundError{Entity: "incident", ID: id.String()}
	}
	copied := *incident
	return &copied, nil
}

// NextReferenceSeq атомарно наращивает суточный счетчик, как INCR в Redis
func (r *InMemoryIncidentRepository) NextReferenceSeq(_ context.Context, day string) (int64, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.seq[day]++
	return r.seq[day], nil
}

func (r *InMemoryIncidentRepository) AssignAuthority(_ context.Context, incidentID, authorityID uuid.UUID) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	incident, exists := r.incidents[incidentID]
	if !exists {
		return &models.NotFoundError{Entity: "incident", ID: incidentID.String()}
	}
	id := authorityID
	incident.AssignedAuthorityID = &id
	incident.Status = models.IncidentStatusInProgress
	incident.UpdatedAt = time.Now()
	return nil
}
