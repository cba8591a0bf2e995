package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/notification"
	"github.com/sirupsen/logrus"
)

// transitionRetries - количество повторов перехода при конфликте версий
const transitionRetries = 3

// alertTransitions - допустимые ребра жизненного цикла тревоги.
// Движение только вперед, переоткрытие из resolved не существует.
var alertTransitions = map[models.AlertStatus][]models.AlertStatus{
	models.AlertStatusActive:       {models.AlertStatusAcknowledged, models.AlertStatusResponding},
	models.AlertStatusAcknowledged: {models.AlertStatusResponding, models.AlertStatusResolved},
	models.AlertStatusResponding:   {models.AlertStatusResolved},
	models.AlertStatusResolved:     {models.AlertStatusClosed},
	models.AlertStatusClosed:       {},
}

// transitionAllowed проверяет, разрешен ли переход from -> to
func transitionAllowed(from, to models.AlertStatus) bool {
	for _, next := range alertTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Actor - действующее лицо операции с ролью
type Actor struct {
	ID   uuid.UUID
	Role models.Role
}

// AlertRepository определяет контракт для работы с бд тревог
type AlertRepository interface {
	Create(ctx context.Context, alert *models.Alert) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Alert, error)
	// UpdateStatus выполняет условное обновление: запись изменяется только
	// если её текущая версия равна expectedVersion, иначе возвращается
	// models.ErrVersionConflict
	UpdateStatus(ctx context.Context, alert *models.Alert, expectedVersion int64) error
	FindRecentNear(ctx context.Context, lat, lon, radiusMeters float64, since time.Time) ([]*models.Alert, error)
}

// AlertService определяет контракт для жизненного цикла тревог
type AlertService interface {
	CreateAlert(ctx context.Context, kind models.AlertKind, touristID uuid.UUID, location models.Position, severity models.Severity, message string) (*models.Alert, error)
	GetAlert(ctx context.Context, id uuid.UUID) (*models.Alert, error)
	Transition(ctx context.Context, alertID uuid.UUID, newStatus models.AlertStatus, actor Actor, responseNotes string) (*models.Alert, error)
}

type alertService struct {
	repo          AlertRepository
	touristRepo   TouristRepository
	authorityRepo AuthorityRepository
	publisher     notification.Publisher
	logger        *logrus.Logger
}

func NewAlertService(repo AlertRepository, touristRepo TouristRepository, authorityRepo AuthorityRepository, publisher notification.Publisher, logger *logrus.Logger) AlertService {
	return &alertService{
		repo:          repo,
		touristRepo:   touristRepo,
		authorityRepo: authorityRepo,
		publisher:     publisher,
		logger:        logger,
	}
}

func validateAlertInput(kind models.AlertKind, location models.Position, severity models.Severity) error {
	switch kind {
	case models.AlertKindSOS, models.AlertKindIncident, models.AlertKindManual:
	default:
		return &models.ValidationError{Field: "kind", Reason: "unknown alert kind"}
	}
	switch severity {
	case models.SeverityLow, models.SeverityMedium, models.SeverityHigh, models.SeverityCritical:
	default:
		return &models.ValidationError{Field: "severity", Reason: "unknown severity"}
	}
	if !location.Valid() {
		return &models.ValidationError{Field: "location", Reason: "coordinates out of range"}
	}
	return nil
}

// CreateAlert создает тревогу. Каждая новая тревога начинает жизнь в
// статусе active. Для SOS турист переводится в статус emergency и ставятся в
// очередь уведомления ответственным и экстренному контакту; отказ доставки
// логируется и не мешает созданию тревоги.
func (s *alertService) CreateAlert(ctx context.Context, kind models.AlertKind, touristID uuid.UUID, location models.Position, severity models.Severity, message string) (*models.Alert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "alert",
		"method":     "CreateAlert",
		"kind":       kind,
		"tourist_id": touristID,
	})
	log.Info("Attempting to create a new alert")

	if err := validateAlertInput(kind, location, severity); err != nil {
		log.WithError(err).Warn("Alert validation failed")
		return nil, err
	}

	tourist, err := s.touristRepo.GetByID(ctx, touristID)
	if err != nil {
		log.WithError(err).Warn("Failed to resolve tourist for alert")
		return nil, err
	}

	alert := &models.Alert{
		Kind:        kind,
		TouristID:   touristID,
		Location:    location,
		Severity:    severity,
		Status:      models.AlertStatusActive,
		Description: message,
		Version:     1,
	}
	if err := s.repo.Create(ctx, alert); err != nil {
		log.WithError(err).Error("Failed to create alert in repository")
		return nil, &models.CollaboratorError{Op: "alert create", Err: err}
	}

	if kind == models.AlertKindSOS {
		if err := s.touristRepo.UpdateStatus(ctx, touristID, models.TouristStatusEmergency); err != nil {
			// Тревога уже создана, поэтому только логируем
			log.WithError(err).Error("Failed to mark tourist as emergency")
		}
		s.notifySOS(ctx, alert, tourist, log)
	}

	log.WithField("alert_id", alert.ID).Info("Alert created successfully")
	return alert, nil
}

// notifySOS ставит в очередь уведомления о SOS: дежурным ответственным и
// экстренному контакту туриста. Вызывается не более одного раза на создание.
func (s *alertService) notifySOS(ctx context.Context, alert *models.Alert, tourist *models.Tourist, log *logrus.Entry) {
	body := fmt.Sprintf("SOS alert from %s at (%.5f, %.5f)", tourist.Name, alert.Location.Latitude, alert.Location.Longitude)

	onDuty, err := s.authorityRepo.ListOnDuty(ctx, nil)
	if err != nil {
		log.WithError(err).Error("Failed to list on-duty authorities for SOS notification")
	} else {
		recipients := make([]string, 0, len(onDuty))
		for _, authority := range onDuty {
			if authority.Phone != "" {
				recipients = append(recipients, authority.Phone)
			}
		}
		if len(recipients) > 0 {
			s.publish(ctx, notification.Event{
				Channel:    notification.ChannelSMS,
				Recipients: recipients,
				Subject:    "SOS alert",
				Body:       body,
				TouristID:  tourist.ID.String(),
				AlertID:    alert.ID.String(),
				Timestamp:  time.Now(),
			}, log)
		}
	}

	contact := tourist.EmergencyContact
	if contact.Phone != "" {
		s.publish(ctx, notification.Event{
			Channel:    notification.ChannelSMS,
			Recipients: []string{contact.Phone},
			Subject:    "SOS alert",
			Body:       body,
			TouristID:  tourist.ID.String(),
			AlertID:    alert.ID.String(),
			Timestamp:  time.Now(),
		}, log)
	}
	if contact.Email != "" {
		s.publish(ctx, notification.Event{
			Channel:    notification.ChannelEmail,
			Recipients: []string{contact.Email},
			Subject:    "SOS alert",
			Body:       body,
			TouristID:  tourist.ID.String(),
			AlertID:    alert.ID.String(),
			Timestamp:  time.Now(),
		}, log)
	}
}

// publish ставит событие в очередь; отказ доставки наблюдаем в логах,
// но никогда не всплывает как ошибка основной операции
func (s *alertService) publish(ctx context.Context, event notification.Event, log *logrus.Entry) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Error("Failed to publish notification event")
	}
}

// GetAlert получает тревогу по ID
func (s *alertService) GetAlert(ctx context.Context, id uuid.UUID) (*models.Alert, error) {
	alert, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return alert, nil
}

// Transition переводит тревогу в новый статус. Разрешено только актору с
// ролью authority. Переход проверяется по сохраненному статусу на момент
// фиксации: при конфликте версий запись перечитывается и проверяется заново,
// недостижимый переход завершается InvalidTransitionError без изменения
// состояния.
func (s *alertService) Transition(ctx context.Context, alertID uuid.UUID, newStatus models.AlertStatus, actor Actor, responseNotes string) (*models.Alert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "alert",
		"method":     "Transition",
		"alert_id":   alertID,
		"new_status": newStatus,
	})
	log.Info("Attempting alert transition")

	if actor.Role != models.RoleAuthority {
		log.Warnf("Transition attempted by role %q", actor.Role)
		return nil, &models.PermissionError{Role: actor.Role, Operation: "alert transition"}
	}

	switch newStatus {
	case models.AlertStatusActive, models.AlertStatusAcknowledged, models.AlertStatusResponding,
		models.AlertStatusResolved, models.AlertStatusClosed:
	default:
		return nil, &models.ValidationError{Field: "status", Reason: "unknown alert status"}
	}

	for attempt := 0; attempt < transitionRetries; attempt++ {
		alert, err := s.repo.GetByID(ctx, alertID)
		if err != nil {
			log.WithError(err).Warn("Failed to get alert for transition")
			return nil, err
		}

		if !transitionAllowed(alert.Status, newStatus) {
			log.Warnf("Invalid transition %s -> %s", alert.Status, newStatus)
			return nil, &models.InvalidTransitionError{From: alert.Status, To: newStatus}
		}

		updated := *alert
		updated.Status = newStatus
		if responseNotes != "" {
			updated.Description = responseNotes
		}
		if updated.AuthorityID == nil {
			authorityID := actor.ID
			updated.AuthorityID = &authorityID
		}

		err = s.repo.UpdateStatus(ctx, &updated, alert.Version)
		if errors.Is(err, models.ErrVersionConflict) {
			// Параллельный переход успел раньше: перечитываем и проверяем заново
			log.Warn("Version conflict on alert transition, revalidating")
			continue
		}
		if err != nil {
			log.WithError(err).Error("Failed to update alert status in repository")
			return nil, &models.CollaboratorError{Op: "alert transition", Err: err}
		}

		if newStatus == models.AlertStatusResolved && alert.Kind == models.AlertKindSOS {
			if err := s.touristRepo.UpdateStatus(ctx, alert.TouristID, models.TouristStatusActive); err != nil {
				log.WithError(err).Error("Failed to return tourist to active status")
			}
		}

		log.Info("Alert transition committed")
		return &updated, nil
	}

	return nil, &models.CollaboratorError{Op: "alert transition", Err: models.ErrVersionConflict}
}
