package service

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/shenikar/tourist_safety_system/internal/geo"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/sirupsen/logrus"
)

// ZoneRepository определяет контракт для работы с бд геозон
type ZoneRepository interface {
	Create(ctx context.Context, zone *models.Zone) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Zone, error)
	Update(ctx context.Context, zone *models.Zone) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListZones(ctx context.Context, page, pageSize int) ([]*models.Zone, error)
	ListActive(ctx context.Context) ([]*models.Zone, error)
	GetZoneFromCache(ctx context.Context, id uuid.UUID) (*models.Zone, error)
	SetZoneCache(ctx context.Context, zone *models.Zone) error
	InvalidateZoneCache(ctx context.Context, id uuid.UUID) error
}

// ZoneService определяет контракт для бизнес-логики управления геозонами и
// запросов вхождения/близости. Запросы обслуживаются из снимка активных зон
// в памяти: читатели видят либо набор до мутации, либо после, никогда -
// промежуточный.
type ZoneService interface {
	CreateZone(ctx context.Context, zone *models.Zone) error
	GetZone(ctx context.Context, id uuid.UUID) (*models.Zone, error)
	UpdateZone(ctx context.Context, zone *models.Zone) error
	DeactivateZone(ctx context.Context, id uuid.UUID) error
	ListZones(ctx context.Context, page, pageSize int) ([]*models.Zone, error)
	Reload(ctx context.Context) error
	ActiveZones() []*models.Zone
	ContainingZones(p models.Position) []*models.Zone
	NearbyZones(p models.Position, radiusMeters float64) []models.ZoneDistance
	IsInRiskZone(p models.Position) bool
}

type zoneService struct {
	repo   ZoneRepository
	logger *logrus.Logger

	mu     sync.RWMutex
	active []*models.Zone
}

func NewZoneService(repo ZoneRepository, logger *logrus.Logger) ZoneService {
	return &zoneService{
		repo:   repo,
		logger: logger,
	}
}

// validateZone проверяет корректность данных зоны до любой записи
func validateZone(zone *models.Zone) error {
	if zone.Name == "" {
		return &models.ValidationError{Field: "name", Reason: "required"}
	}
	if zone.RadiusMeters <= 0 {
		return &models.ValidationError{Field: "radius_meters", Reason: "must be positive"}
	}
	if !zone.Center.Valid() {
		return &models.ValidationError{Field: "center", Reason: "coordinates out of range"}
	}
	return nil
}

// CreateZone создает геозону. Авторизация по роли - ответственность
// вызывающего, здесь проверяется только корректность данных.
func (s *zoneService) CreateZone(ctx context.Context, zone *models.Zone) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "zone",
		"method":  "CreateZone",
		"name":    zone.Name,
	})
	log.Info("Attempting to create a new zone")

	if err := validateZone(zone); err != nil {
		log.WithError(err).Warn("Zone validation failed")
		return err
	}

	zone.Active = true
	if err := s.repo.Create(ctx, zone); err != nil {
		log.WithError(err).Error("Failed to create zone in repository")
		return &models.CollaboratorError{Op: "zone create", Err: err}
	}

	s.reloadSnapshot(ctx, log)
	log.WithField("zone_id", zone.ID).Info("Zone created successfully")
	return nil
}

// GetZone получает зону по ID, сначала из кеша, затем из бд
func (s *zoneService) GetZone(ctx context.Context, id uuid.UUID) (*models.Zone, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "zone",
		"method":  "GetZone",
		"zone_id": id,
	})

	cached, err := s.repo.GetZoneFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read zone cache")
	}
	if cached != nil {
		return cached, nil
	}

	zone, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get zone from repository")
		return nil, err
	}

	if err := s.repo.SetZoneCache(ctx, zone); err != nil {
		log.WithError(err).Warn("Failed to set zone cache")
	}
	return zone, nil
}

// UpdateZone обновляет существующую зону
func (s *zoneService) UpdateZone(ctx context.Context, zone *models.Zone) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "zone",
		"method":  "UpdateZone",
		"zone_id": zone.ID,
	})
	log.Info("Attempting to update zone")

	if err := validateZone(zone); err != nil {
		log.WithError(err).Warn("Zone validation failed")
		return err
	}

	existing, err := s.repo.GetByID(ctx, zone.ID)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent zone")
		return err
	}

	existing.Name = zone.Name
	existing.Kind = zone.Kind
	existing.Center = zone.Center
	existing.RadiusMeters = zone.RadiusMeters
	existing.Region = zone.Region
	existing.Active = zone.Active

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update zone in repository")
		return &models.CollaboratorError{Op: "zone update", Err: err}
	}

	if err := s.repo.InvalidateZoneCache(ctx, zone.ID); err != nil {
		log.WithError(err).Warn("Failed to invalidate zone cache")
	}
	s.reloadSnapshot(ctx, log)
	log.Info("Zone updated successfully")
	return nil
}

// DeactivateZone деактивирует зону: она исчезает из всех запросов
func (s *zoneService) DeactivateZone(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "zone",
		"method":  "DeactivateZone",
		"zone_id": id,
	})
	log.Info("Attempting to deactivate zone")

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		log.WithError(err).Warn("Attempted to deactivate a non-existent zone")
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to deactivate zone in repository")
		return &models.CollaboratorError{Op: "zone deactivate", Err: err}
	}

	if err := s.repo.InvalidateZoneCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate zone cache")
	}
	s.reloadSnapshot(ctx, log)
	log.Info("Zone deactivated successfully")
	return nil
}

// ListZones возвращает список зон с пагинацией
func (s *zoneService) ListZones(ctx context.Context, page, pageSize int) ([]*models.Zone, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "zone",
		"method":    "ListZones",
		"page":      page,
		"page_size": pageSize,
	})

	zones, err := s.repo.ListZones(ctx, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list zones from repository")
		return nil, fmt.Errorf("service: could not list zones: %w", err)
	}
	return zones, nil
}

// Reload перечитывает снимок активных зон из бд. Вызывается при старте
// сервиса и после каждой мутации.
func (s *zoneService) Reload(ctx context.Context) error {
	zones, err := s.repo.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("service: could not load active zones: %w", err)
	}

	s.mu.Lock()
	s.active = zones
	s.mu.Unlock()
	return nil
}

// reloadSnapshot перечитывает снимок после мутации; при ошибке читатели
// продолжают видеть набор до мутации
func (s *zoneService) reloadSnapshot(ctx context.Context, log *logrus.Entry) {
	if err := s.Reload(ctx); err != nil {
		log.WithError(err).Error("Failed to reload zone snapshot after mutation")
	}
}

// ActiveZones возвращает текущий снимок активных зон
func (s *zoneService) ActiveZones() []*models.Zone {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// ContainingZones возвращает зоны, содержащие точку. Граница включается:
// точка ровно на расстоянии радиуса считается внутри.
func (s *zoneService) ContainingZones(p models.Position) []*models.Zone {
	s.mu.RLock()
	defer s.mu.RUnlock()

	containing := make([]*models.Zone, 0)
	for _, zone := range s.active {
		if geo.DistanceMeters(p, zone.Center) <= zone.RadiusMeters {
			containing = append(containing, zone)
		}
	}
	return containing
}

// NearbyZones возвращает зоны, центр которых в пределах radiusMeters от
// точки, по возрастанию расстояния. Чистый поиск по близости, радиус самой
// зоны не учитывается. Результат вычисляется заново при каждом вызове.
func (s *zoneService) NearbyZones(p models.Position, radiusMeters float64) []models.ZoneDistance {
	s.mu.RLock()
	defer s.mu.RUnlock()

	nearby := make([]models.ZoneDistance, 0)
	for _, zone := range s.active {
		d := geo.DistanceMeters(p, zone.Center)
		if d <= radiusMeters {
			nearby = append(nearby, models.ZoneDistance{Zone: zone, DistanceMeters: d})
		}
	}
	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].DistanceMeters < nearby[j].DistanceMeters
	})
	return nearby
}

// IsInRiskZone сообщает, попадает ли точка хотя бы в одну зону риска
func (s *zoneService) IsInRiskZone(p models.Position) bool {
	for _, zone := range s.ContainingZones(p) {
		if zone.Kind == models.ZoneKindRisk {
			return true
		}
	}
	return false
}
