package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/tourist_safety_system/internal/config"
	"github.com/shenikar/tourist_safety_system/internal/geo"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/notification"
	"github.com/sirupsen/logrus"
)

const (
	baseScore          = 85
	insideRiskPenalty  = 30
	nearRiskPenalty    = 15
	nightPenalty       = 10
	recentAlertPenalty = 5

	recentAlertRadiusMeters = 1000.0
	recentAlertWindow       = 24 * time.Hour

	nightStartHour = 22
	nightEndHour   = 5
)

// ZoneProvider - подмножество ZoneService, необходимое для оценки
type ZoneProvider interface {
	ActiveZones() []*models.Zone
	IsInRiskZone(p models.Position) bool
}

// ScoreService определяет контракт для вычисления оценки безопасности
// и обработки обновлений местоположения
type ScoreService interface {
	ComputeScore(p models.Position, now time.Time, recentAlerts []*models.Alert) int
	EvaluateLocation(ctx context.Context, touristID uuid.UUID, p models.Position) (int, error)
	GetSafetyScore(ctx context.Context, touristID uuid.UUID) (int, error)
	GetStats(ctx context.Context) (int, error)
}

type scoreService struct {
	zones        ZoneProvider
	touristRepo  TouristRepository
	alertRepo    AlertRepository
	publisher    notification.Publisher
	logger       *logrus.Logger
	cfg          *config.Config
	location     *time.Location
}

func NewScoreService(zones ZoneProvider, touristRepo TouristRepository, alertRepo AlertRepository, publisher notification.Publisher, logger *logrus.Logger, cfg *config.Config) ScoreService {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.WithError(err).Warnf("Invalid timezone %q, falling back to UTC", cfg.Timezone)
		loc = time.UTC
	}
	return &scoreService{
		zones:       zones,
		touristRepo: touristRepo,
		alertRepo:   alertRepo,
		publisher:   publisher,
		logger:      logger,
		cfg:         cfg,
		location:    loc,
	}
}

// ComputeScore вычисляет оценку безопасности точки в диапазоне [0,100].
// Детерминирована: одинаковые входные данные дают одинаковый результат.
// Штрафы от нескольких зон накапливаются независимо, без ограничения.
func (s *scoreService) ComputeScore(p models.Position, now time.Time, recentAlerts []*models.Alert) int {
	score := baseScore

	for _, zone := range s.zones.ActiveZones() {
		if zone.Kind != models.ZoneKindRisk {
			continue
		}
		d := geo.DistanceMeters(p, zone.Center)
		if d <= zone.RadiusMeters {
			score -= insideRiskPenalty
		} else if d <= 2*zone.RadiusMeters {
			score -= nearRiskPenalty
		}
	}

	// Ночные часы: [22,24) и [0,5] включительно
	hour := now.In(s.location).Hour()
	if hour >= nightStartHour || hour <= nightEndHour {
		score -= nightPenalty
	}

	for _, alert := range recentAlerts {
		if alert.Kind != models.AlertKindSOS && alert.Kind != models.AlertKindIncident {
			continue
		}
		age := now.Sub(alert.CreatedAt)
		if age < 0 || age > recentAlertWindow {
			continue
		}
		if geo.DistanceMeters(p, alert.Location) <= recentAlertRadiusMeters {
			score -= recentAlertPenalty
		}
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// EvaluateLocation обрабатывает обновление местоположения туриста:
// вычисляет оценку, обновляет кешированные позицию и оценку (последняя
// запись побеждает), сохраняет запись о проверке и ставит уведомление в
// очередь при входе в зону риска. Отказ поиска недавних тревог не блокирует
// обновление: возвращается предыдущая кешированная оценка либо базовая.
func (s *scoreService) EvaluateLocation(ctx context.Context, touristID uuid.UUID, p models.Position) (int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "score",
		"method":     "EvaluateLocation",
		"tourist_id": touristID,
	})
	log.Info("Evaluating tourist location")

	if !p.Valid() {
		return 0, &models.ValidationError{Field: "position", Reason: "coordinates out of range"}
	}

	tourist, err := s.touristRepo.GetByID(ctx, touristID)
	if err != nil {
		log.WithError(err).Warn("Failed to resolve tourist")
		return 0, err
	}

	now := time.Now()
	score := s.fallbackScore(tourist)

	recent, err := s.alertRepo.FindRecentNear(ctx, p.Latitude, p.Longitude, recentAlertRadiusMeters, now.Add(-recentAlertWindow))
	if err != nil {
		// Оценка не должна блокировать обновление местоположения
		log.WithError(err).Error("Failed to load recent alerts, using cached score")
	} else {
		score = s.ComputeScore(p, now, recent)
	}

	inRiskZone := s.zones.IsInRiskZone(p)

	if err := s.touristRepo.UpdateLocation(ctx, touristID, p, score); err != nil {
		log.WithError(err).Error("Failed to update tourist location")
		return 0, &models.CollaboratorError{Op: "tourist location update", Err: err}
	}

	check := &models.SafetyCheck{
		TouristID:  touristID,
		Latitude:   p.Latitude,
		Longitude:  p.Longitude,
		Score:      score,
		InRiskZone: inRiskZone,
	}
	if err := s.touristRepo.SaveSafetyCheck(ctx, check); err != nil {
		log.WithError(err).Error("Failed to save safety check")
	}

	if inRiskZone && tourist.Phone != "" {
		event := notification.Event{
			Channel:    notification.ChannelSMS,
			Recipients: []string{tourist.Phone},
			Subject:    "Risk zone warning",
			Body:       "You have entered a declared risk zone. Stay alert.",
			TouristID:  touristID.String(),
			Timestamp:  now,
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			log.WithError(err).Error("Failed to publish risk zone notification")
		}
	}

	log.WithFields(logrus.Fields{"score": score, "in_risk_zone": inRiskZone}).Info("Location evaluated")
	return score, nil
}

// fallbackScore возвращает предыдущую кешированную оценку туриста либо
// базовую, если местоположение еще не фиксировалось
func (s *scoreService) fallbackScore(tourist *models.Tourist) int {
	if tourist.LastPosition == nil {
		return baseScore
	}
	return tourist.SafetyScore
}

// GetSafetyScore возвращает текущую кешированную оценку туриста
func (s *scoreService) GetSafetyScore(ctx context.Context, touristID uuid.UUID) (int, error) {
	tourist, err := s.touristRepo.GetByID(ctx, touristID)
	if err != nil {
		return 0, err
	}
	return s.fallbackScore(tourist), nil
}

// GetStats возвращает количество уникальных туристов, проверивших
// местоположение за настроенное окно времени
func (s *scoreService) GetStats(ctx context.Context) (int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "score",
		"method":  "GetStats",
	})

	count, err := s.touristRepo.GetSafetyCheckStats(ctx, s.cfg.StatsTimeWindowMinutes)
	if err != nil {
		log.WithError(err).Error("Failed to get safety check stats")
		return 0, &models.CollaboratorError{Op: "safety check stats", Err: err}
	}
	return count, nil
}
