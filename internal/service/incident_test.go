package service_test

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/notification"
	notification_mocks "github.com/shenikar/tourist_safety_system/internal/notification/mocks"
	"github.com/shenikar/tourist_safety_system/internal/repository"
	"github.com/shenikar/tourist_safety_system/internal/service"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// incidentFixture собирает сервис инцидентов поверх хранилищ в памяти с
// моком публикатора уведомлений
type incidentFixture struct {
	svc         service.IncidentService
	incidents   *repository.InMemoryIncidentRepository
	alerts      *repository.InMemoryAlertRepository
	tourists    *repository.InMemoryTouristRepository
	authorities *repository.InMemoryAuthorityRepository
	publisher   *notification_mocks.MockPublisher
}

func newIncidentFixture(t *testing.T) *incidentFixture {
	ctrl := gomock.NewController(t)
	publisherMock := notification_mocks.NewMockPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	alerts := repository.NewInMemoryAlertRepository()
	incidents := repository.NewInMemoryIncidentRepository(alerts)
	tourists := repository.NewInMemoryTouristRepository()
	authorities := repository.NewInMemoryAuthorityRepository()

	svc := service.NewIncidentService(incidents, tourists, authorities, service.FirstMatchStrategy{}, publisherMock, logger)
	return &incidentFixture{
		svc:         svc,
		incidents:   incidents,
		alerts:      alerts,
		tourists:    tourists,
		authorities: authorities,
		publisher:   publisherMock,
	}
}

func (f *incidentFixture) addReporter() *models.Tourist {
	tourist := &models.Tourist{Name: "Иван", Phone: "+70000000001"}
	f.tourists.Add(tourist)
	return tourist
}

func validIncidentInput(reporterID uuid.UUID) service.FileIncidentInput {
	return service.FileIncidentInput{
		ReporterID:  reporterID,
		Type:        "theft",
		Title:       "Кража рюкзака",
		Description: "Рюкзак украден на смотровой площадке",
		Location:    models.Position{Latitude: 55.75, Longitude: 37.61},
		Severity:    models.SeverityMedium,
		Witnesses:   []string{"Петр"},
	}
}

var referenceNumberPattern = regexp.MustCompile(`^TSS-\d{8}-\d{6}$`)

func TestFileIncident_Success(t *testing.T) {
	// Подготовка
	f := newIncidentFixture(t)
	ctx := context.Background()
	reporter := f.addReporter()

	// Действие
	incident, alert, err := f.svc.FileIncident(ctx, validIncidentInput(reporter.ID))

	// Проверки
	require.NoError(t, err)
	require.NotNil(t, incident)
	require.NotNil(t, alert)

	assert.Regexp(t, referenceNumberPattern, incident.ReferenceNumber)
	assert.Contains(t, incident.ReferenceNumber, time.Now().UTC().Format("20060102"))
	assert.Equal(t, models.IncidentStatusOpen, incident.Status)

	// Связанная тревога: ровно одна, kind=incident, серьезность скопирована
	assert.Equal(t, alert.ID, incident.AlertID)
	assert.Equal(t, models.AlertKindIncident, alert.Kind)
	assert.Equal(t, models.AlertStatusActive, alert.Status)
	assert.Equal(t, incident.Severity, alert.Severity)
	assert.Equal(t, reporter.ID, alert.TouristID)

	stored, err := f.alerts.GetByID(ctx, alert.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AlertKindIncident, stored.Kind)
}

func TestFileIncident_ReferenceNumbersAreUnique(t *testing.T) {
	// Подготовка
	f := newIncidentFixture(t)
	reporter := f.addReporter()

	// Действие: параллельные регистрации в один момент времени
	const filings = 20
	refs := make([]string, filings)
	var wg sync.WaitGroup
	for i := 0; i < filings; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			incident, _, err := f.svc.FileIncident(context.Background(), validIncidentInput(reporter.ID))
			if assert.NoError(t, err) {
				refs[i] = incident.ReferenceNumber
			}
		}(i)
	}
	wg.Wait()

	// Проверки: номера различны
	seen := make(map[string]struct{}, filings)
	for _, ref := range refs {
		assert.Regexp(t, referenceNumberPattern, ref)
		_, duplicate := seen[ref]
		assert.False(t, duplicate, "duplicate reference number %s", ref)
		seen[ref] = struct{}{}
	}
}

func TestFileIncident_AssignsFirstEligibleResponder(t *testing.T) {
	// Подготовка
	f := newIncidentFixture(t)
	ctx := context.Background()
	reporter := f.addReporter()

	offDuty := &models.Authority{Name: "Свободен", Department: models.DepartmentPolice, OnDuty: false, Phone: "+70000000010", CreatedAt: time.Now().Add(-3 * time.Hour)}
	fire := &models.Authority{Name: "Пожарный", Department: models.DepartmentFire, OnDuty: true, Phone: "+70000000011", CreatedAt: time.Now().Add(-2 * time.Hour)}
	police := &models.Authority{Name: "Полицейский", Department: models.DepartmentPolice, OnDuty: true, Phone: "+70000000012", CreatedAt: time.Now().Add(-time.Hour)}
	f.authorities.Add(offDuty)
	f.authorities.Add(fire)
	f.authorities.Add(police)

	// Ожидания: SMS назначенному ответственному
	f.publisher.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(ctx context.Context, event notification.Event) {
			assert.Equal(t, notification.ChannelSMS, event.Channel)
			assert.Equal(t, []string{police.Phone}, event.Recipients)
		}).Return(nil).Times(1)

	// Действие
	incident, _, err := f.svc.FileIncident(ctx, validIncidentInput(reporter.ID))

	// Проверки: выбран первый подходящий, не пожарный и не свободный от смены
	require.NoError(t, err)
	require.NotNil(t, incident.AssignedAuthorityID)
	assert.Equal(t, police.ID, *incident.AssignedAuthorityID)

	stored, err := f.incidents.GetByID(ctx, incident.ID)
	require.NoError(t, err)
	assert.Equal(t, models.IncidentStatusInProgress, stored.Status)
}

func TestFileIncident_MedicalEligibleOnlyForHighSeverity(t *testing.T) {
	// Подготовка: на дежурстве только медики
	f := newIncidentFixture(t)
	ctx := context.Background()
	reporter := f.addReporter()

	medic := &models.Authority{Name: "Медик", Department: models.DepartmentMedical, OnDuty: true, Phone: "+70000000013"}
	f.authorities.Add(medic)

	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	// Действие: средняя серьезность медикам не назначается
	lowInput := validIncidentInput(reporter.ID)
	lowInput.Severity = models.SeverityMedium
	lowIncident, _, err := f.svc.FileIncident(ctx, lowInput)
	require.NoError(t, err)

	// Критическая — назначается
	criticalInput := validIncidentInput(reporter.ID)
	criticalInput.Severity = models.SeverityCritical
	criticalIncident, _, err := f.svc.FileIncident(ctx, criticalInput)
	require.NoError(t, err)

	// Проверки
	assert.Nil(t, lowIncident.AssignedAuthorityID)
	require.NotNil(t, criticalIncident.AssignedAuthorityID)
	assert.Equal(t, medic.ID, *criticalIncident.AssignedAuthorityID)
}

func TestFileIncident_NoResponderOnDutyIsNotFatal(t *testing.T) {
	// Подготовка: дежурных нет вовсе
	f := newIncidentFixture(t)
	ctx := context.Background()
	reporter := f.addReporter()

	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	incident, alert, err := f.svc.FileIncident(ctx, validIncidentInput(reporter.ID))

	// Проверки: инцидент зарегистрирован и остался незакрепленным
	require.NoError(t, err)
	require.NotNil(t, alert)
	assert.Nil(t, incident.AssignedAuthorityID)
	assert.Equal(t, models.IncidentStatusOpen, incident.Status)
}

func TestFileIncident_UnknownReporter(t *testing.T) {
	// Подготовка
	f := newIncidentFixture(t)
	ctx := context.Background()

	// Действие
	_, _, err := f.svc.FileIncident(ctx, validIncidentInput(uuid.New()))

	// Проверки
	require.Error(t, err)
	var notFoundErr *models.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}

func TestFileIncident_Validation(t *testing.T) {
	// Подготовка
	f := newIncidentFixture(t)
	ctx := context.Background()
	reporter := f.addReporter()

	cases := []struct {
		name   string
		mutate func(*service.FileIncidentInput)
	}{
		{"empty title", func(in *service.FileIncidentInput) { in.Title = "" }},
		{"empty type", func(in *service.FileIncidentInput) { in.Type = "" }},
		{"unknown severity", func(in *service.FileIncidentInput) { in.Severity = "extreme" }},
		{"invalid location", func(in *service.FileIncidentInput) { in.Location.Latitude = 95 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validIncidentInput(reporter.ID)
			tc.mutate(&input)

			// Действие
			_, _, err := f.svc.FileIncident(ctx, input)

			// Проверки
			require.Error(t, err)
			var validationErr *models.ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestGetIncident_Success(t *testing.T) {
	// Подготовка
	f := newIncidentFixture(t)
	ctx := context.Background()
	reporter := f.addReporter()
	filed, _, err := f.svc.FileIncident(ctx, validIncidentInput(reporter.ID))
	require.NoError(t, err)

	// Действие
	incident, err := f.svc.GetIncident(ctx, filed.ID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, filed.ReferenceNumber, incident.ReferenceNumber)
}

func TestGetIncident_NotFound(t *testing.T) {
	// Подготовка
	f := newIncidentFixture(t)
	ctx := context.Background()

	// Действие
	incident, err := f.svc.GetIncident(ctx, uuid.New())

	// Проверки
	require.Error(t, err)
	assert.Nil(t, incident)
}

func TestFirstMatchStrategy(t *testing.T) {
	// Подготовка
	strategy := service.FirstMatchStrategy{}
	first := &models.Authority{ID: uuid.New(), Name: "Первый"}
	second := &models.Authority{ID: uuid.New(), Name: "Второй"}

	// Проверки
	assert.Nil(t, strategy.Select(nil, nil))
	assert.Equal(t, first, strategy.Select(nil, []*models.Authority{first, second}))
}

func TestFileIncident_SequentialReferenceNumbers(t *testing.T) {
	// Подготовка
	f := newIncidentFixture(t)
	ctx := context.Background()
	reporter := f.addReporter()
	day := time.Now().UTC().Format("20060102")

	// Действие
	first, _, err := f.svc.FileIncident(ctx, validIncidentInput(reporter.ID))
	require.NoError(t, err)
	second, _, err := f.svc.FileIncident(ctx, validIncidentInput(reporter.ID))
	require.NoError(t, err)

	// Проверки: суточный счетчик монотонный
	assert.Equal(t, fmt.Sprintf("TSS-%s-%06d", day, 1), first.ReferenceNumber)
	assert.Equal(t, fmt.Sprintf("TSS-%s-%06d", day, 2), second.ReferenceNumber)
}
