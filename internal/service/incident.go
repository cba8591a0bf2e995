package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/notification"
	"github.com/sirupsen/logrus"
)

// referenceNumberPrefix - префикс регистрационных номеров инцидентов
const referenceNumberPrefix = "TSS"

// IncidentRepository определяет контракт для работы с бд инцидентов
type IncidentRepository interface {
	// CreateWithAlert создает инцидент и связанную тревогу в одной транзакции
	CreateWithAlert(ctx context.Context, incident *models.Incident, alert *models.Alert) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	// NextReferenceSeq возвращает следующее значение счетчика номеров за
	// сутки. Счетчик монотонный, уникальность гарантирована, а не вероятностна.
	NextReferenceSeq(ctx context.Context, day string) (int64, error)
	AssignAuthority(ctx context.Context, incidentID, authorityID uuid.UUID) error
}

// AuthorityRepository определяет контракт для работы с бд ответственных
type AuthorityRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Authority, error)
	// ListOnDuty возвращает дежурных ответственных; пустой список служб
	// означает все службы
	ListOnDuty(ctx context.Context, departments []models.Department) ([]*models.Authority, error)
}

// AssignmentStrategy выбирает ответственного из пула кандидатов.
// Стратегия подключаемая: ранжирование можно заменить, не трогая сервис.
type AssignmentStrategy interface {
	Select(incident *models.Incident, candidates []*models.Authority) *models.Authority
}

// FirstMatchStrategy берет первого подходящего кандидата. Политика
// намеренно проста: без балансировки нагрузки и ранжирования по расстоянию.
type FirstMatchStrategy struct{}

func (FirstMatchStrategy) Select(_ *models.Incident, candidates []*models.Authority) *models.Authority {
	if len(candidates) == 0 {
		return nil
	}
	return candidates[0]
}

// FileIncidentInput - данные для регистрации инцидента
type FileIncidentInput struct {
	ReporterID   uuid.UUID
	Type         string
	Title        string
	Description  string
	Location     models.Position
	Severity     models.Severity
	Witnesses    []string
	EvidenceRefs []string
}

// IncidentService определяет контракт для регистрации инцидентов
type IncidentService interface {
	FileIncident(ctx context.Context, input FileIncidentInput) (*models.Incident, *models.Alert, error)
	GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error)
}

type incidentService struct {
	repo          IncidentRepository
	touristRepo   TouristRepository
	authorityRepo AuthorityRepository
	strategy      AssignmentStrategy
	publisher     notification.Publisher
	logger        *logrus.Logger
}

func NewIncidentService(repo IncidentRepository, touristRepo TouristRepository, authorityRepo AuthorityRepository, strategy AssignmentStrategy, publisher notification.Publisher, logger *logrus.Logger) IncidentService {
	if strategy == nil {
		strategy = FirstMatchStrategy{}
	}
	return &incidentService{
		repo:          repo,
		touristRepo:   touristRepo,
		authorityRepo: authorityRepo,
		strategy:      strategy,
		publisher:     publisher,
		logger:        logger,
	}
}

func validateIncidentInput(input FileIncidentInput) error {
	if input.Title == "" {
		return &models.ValidationError{Field: "title", Reason: "required"}
	}
	if input.Type == "" {
		return &models.ValidationError{Field: "type", Reason: "required"}
	}
	switch input.Severity {
	case models.SeverityLow, models.SeverityMedium, models.SeverityHigh, models.SeverityCritical:
	default:
		return &models.ValidationError{Field: "severity", Reason: "unknown severity"}
	}
	if !input.Location.Valid() {
		return &models.ValidationError{Field: "location", Reason: "coordinates out of range"}
	}
	return nil
}

// FileIncident регистрирует инцидент: присваивает уникальный
// регистрационный номер, атомарно создает инцидент и связанную тревогу
// (ровно одну, kind=incident, статус active, серьезность копируется) и
// пытается назначить дежурного ответственного. Отсутствие подходящего
// ответственного не фатально - инцидент остается незакрепленным.
func (s *incidentService) FileIncident(ctx context.Context, input FileIncidentInput) (*models.Incident, *models.Alert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "FileIncident",
		"reporter_id": input.ReporterID,
		"title":       input.Title,
	})
	log.Info("Attempting to file a new incident")

	if err := validateIncidentInput(input); err != nil {
		log.WithError(err).Warn("Incident validation failed")
		return nil, nil, err
	}

	if _, err := s.touristRepo.GetByID(ctx, input.ReporterID); err != nil {
		log.WithError(err).Warn("Failed to resolve incident reporter")
		return nil, nil, err
	}

	now := time.Now()
	day := now.UTC().Format("20060102")
	seq, err := s.repo.NextReferenceSeq(ctx, day)
	if err != nil {
		log.WithError(err).Error("Failed to generate incident reference number")
		return nil, nil, &models.CollaboratorError{Op: "incident reference number", Err: err}
	}
	referenceNumber := fmt.Sprintf("%s-%s-%06d", referenceNumberPrefix, day, seq)

	alert := &models.Alert{
		ID:          uuid.New(),
		Kind:        models.AlertKindIncident,
		TouristID:   input.ReporterID,
		Location:    input.Location,
		Severity:    input.Severity,
		Status:      models.AlertStatusActive,
		Description: fmt.Sprintf("Incident reported: %s", input.Title),
		Version:     1,
	}
	incident := &models.Incident{
		ID:              uuid.New(),
		ReporterID:      input.ReporterID,
		ReferenceNumber: referenceNumber,
		Type:            input.Type,
		Title:           input.Title,
		Description:     input.Description,
		Location:        input.Location,
		Severity:        input.Severity,
		Witnesses:       input.Witnesses,
		EvidenceRefs:    input.EvidenceRefs,
		AlertID:         alert.ID,
		Status:          models.IncidentStatusOpen,
	}

	if err := s.repo.CreateWithAlert(ctx, incident, alert); err != nil {
		log.WithError(err).Error("Failed to create incident with alert in repository")
		return nil, nil, &models.CollaboratorError{Op: "incident create", Err: err}
	}

	s.assignResponder(ctx, incident, log)

	log.WithFields(logrus.Fields{
		"incident_id":      incident.ID,
		"reference_number": incident.ReferenceNumber,
		"alert_id":         alert.ID,
	}).Info("Incident filed successfully")
	return incident, alert, nil
}

// eligibleDepartments возвращает службы, подходящие для инцидента данной
// серьезности
func eligibleDepartments(severity models.Severity) []models.Department {
	departments := []models.Department{models.DepartmentPolice, models.DepartmentTouristPolice}
	if severity == models.SeverityHigh || severity == models.SeverityCritical {
		departments = append(departments, models.DepartmentMedical)
	}
	return departments
}

// assignResponder выбирает дежурного ответственного по стратегии и
// закрепляет его за инцидентом. Любой отказ здесь не фатален.
func (s *incidentService) assignResponder(ctx context.Context, incident *models.Incident, log *logrus.Entry) {
	candidates, err := s.authorityRepo.ListOnDuty(ctx, eligibleDepartments(incident.Severity))
	if err != nil {
		log.WithError(err).Error("Failed to list on-duty authorities for assignment")
		return
	}

	chosen := s.strategy.Select(incident, candidates)
	if chosen == nil {
		log.Warn("No eligible responder on duty, incident left unassigned")
		return
	}

	if err := s.repo.AssignAuthority(ctx, incident.ID, chosen.ID); err != nil {
		log.WithError(err).Error("Failed to assign responder to incident")
		return
	}
	authorityID := chosen.ID
	incident.AssignedAuthorityID = &authorityID

	if chosen.Phone != "" {
		event := notification.Event{
			Channel:    notification.ChannelSMS,
			Recipients: []string{chosen.Phone},
			Subject:    fmt.Sprintf("Incident %s assigned", incident.ReferenceNumber),
			Body:       fmt.Sprintf("Incident %s (%s) assigned to you", incident.ReferenceNumber, incident.Title),
			AlertID:    incident.AlertID.String(),
			Timestamp:  time.Now(),
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			log.WithError(err).Error("Failed to publish assignment notification")
		}
	}

	log.WithField("authority_id", chosen.ID).Info("Responder assigned to incident")
}

// GetIncident получает инцидент по ID
func (s *incidentService) GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return incident, nil
}
