package service_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/notification"
	notification_mocks "github.com/shenikar/tourist_safety_system/internal/notification/mocks"
	"github.com/shenikar/tourist_safety_system/internal/repository"
	"github.com/shenikar/tourist_safety_system/internal/service"
	"github.com/shenikar/tourist_safety_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// alertFixture собирает сервис тревог поверх хранилищ в памяти с моком
// публикатора уведомлений
type alertFixture struct {
	svc         service.AlertService
	alerts      *repository.InMemoryAlertRepository
	tourists    *repository.InMemoryTouristRepository
	authorities *repository.InMemoryAuthorityRepository
	publisher   *notification_mocks.MockPublisher
}

func newAlertFixture(t *testing.T) *alertFixture {
	ctrl := gomock.NewController(t)
	publisherMock := notification_mocks.NewMockPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	alerts := repository.NewInMemoryAlertRepository()
	tourists := repository.NewInMemoryTouristRepository()
	authorities := repository.NewInMemoryAuthorityRepository()

	svc := service.NewAlertService(alerts, tourists, authorities, publisherMock, logger)
	return &alertFixture{
		svc:         svc,
		alerts:      alerts,
		tourists:    tourists,
		authorities: authorities,
		publisher:   publisherMock,
	}
}

func (f *alertFixture) addTourist() *models.Tourist {
	tourist := &models.Tourist{
		Name:   "Иван",
		Phone:  "+70000000001",
		Status: models.TouristStatusActive,
		EmergencyContact: models.EmergencyContact{
			Name:  "Мария",
			Phone: "+70000000002",
			Email: "maria@example.com",
		},
	}
	f.tourists.Add(tourist)
	return tourist
}

var testLocation = models.Position{Latitude: 55.75, Longitude: 37.61}

func TestCreateAlert_SOS(t *testing.T) {
	// Подготовка
	f := newAlertFixture(t)
	ctx := context.Background()
	tourist := f.addTourist()

	onDuty := &models.Authority{Name: "Дежурный", Department: models.DepartmentPolice, OnDuty: true, Phone: "+70000000009"}
	f.authorities.Add(onDuty)

	// Ожидания: SMS дежурным, SMS и email экстренному контакту
	channels := make([]notification.Channel, 0, 3)
	f.publisher.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(ctx context.Context, event notification.Event) {
			channels = append(channels, event.Channel)
			assert.Equal(t, tourist.ID.String(), event.TouristID)
			assert.NotEmpty(t, event.Recipients)
		}).Return(nil).Times(3)

	// Действие
	alert, err := f.svc.CreateAlert(ctx, models.AlertKindSOS, tourist.ID, testLocation, models.SeverityCritical, "Help")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.AlertStatusActive, alert.Status)
	assert.Equal(t, int64(1), alert.Version)
	assert.ElementsMatch(t, []notification.Channel{notification.ChannelSMS, notification.ChannelSMS, notification.ChannelEmail}, channels)

	// Турист переведен в статус emergency
	stored, err := f.tourists.GetByID(ctx, tourist.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TouristStatusEmergency, stored.Status)
}

func TestCreateAlert_PublishFailureDoesNotFailCreation(t *testing.T) {
	// Подготовка
	f := newAlertFixture(t)
	ctx := context.Background()
	tourist := f.addTourist()

	// Ожидания: очередь недоступна, но тревога все равно создается
	f.publisher.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("очередь недоступна")).
		AnyTimes()

	// Действие
	alert, err := f.svc.CreateAlert(ctx, models.AlertKindSOS, tourist.ID, testLocation, models.SeverityHigh, "Help")

	// Проверки
	require.NoError(t, err)
	require.NotNil(t, alert)

	stored, err := f.alerts.GetByID(ctx, alert.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AlertStatusActive, stored.Status)
}

func TestCreateAlert_ManualDoesNotTouchTouristStatus(t *testing.T) {
	// Подготовка
	f := newAlertFixture(t)
	ctx := context.Background()
	tourist := f.addTourist()

	// Ожидания: для ручной тревоги уведомления не ставятся в очередь
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	_, err := f.svc.CreateAlert(ctx, models.AlertKindManual, tourist.ID, testLocation, models.SeverityLow, "Подозрительная активность")

	// Проверки
	require.NoError(t, err)
	stored, err := f.tourists.GetByID(ctx, tourist.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TouristStatusActive, stored.Status)
}

func TestCreateAlert_UnknownTourist(t *testing.T) {
	// Подготовка
	f := newAlertFixture(t)
	ctx := context.Background()

	// Действие
	_, err := f.svc.CreateAlert(ctx, models.AlertKindSOS, uuid.New(), testLocation, models.SeverityHigh, "Help")

	// Проверки
	require.Error(t, err)
	var notFoundErr *models.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}

func TestCreateAlert_Validation(t *testing.T) {
	// Подготовка
	f := newAlertFixture(t)
	ctx := context.Background()
	tourist := f.addTourist()

	cases := []struct {
		name     string
		kind     models.AlertKind
		location models.Position
		severity models.Severity
	}{
		{"unknown kind", models.AlertKind("panic"), testLocation, models.SeverityHigh},
		{"unknown severity", models.AlertKindSOS, testLocation, models.Severity("extreme")},
		{"longitude out of range", models.AlertKindSOS, models.Position{Latitude: 0, Longitude: 181}, models.SeverityHigh},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// Действие
			_, err := f.svc.CreateAlert(ctx, tc.kind, tourist.ID, tc.location, tc.severity, "")

			// Проверки
			require.Error(t, err)
			var validationErr *models.ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestTransition_RequiresAuthorityRole(t *testing.T) {
	// Подготовка
	f := newAlertFixture(t)
	ctx := context.Background()
	actor := service.Actor{ID: uuid.New(), Role: models.RoleTourist}

	// Действие
	_, err := f.svc.Transition(ctx, uuid.New(), models.AlertStatusAcknowledged, actor, "")

	// Проверки
	require.Error(t, err)
	var permissionErr *models.PermissionError
	assert.ErrorAs(t, err, &permissionErr)
}

// createActiveAlert заводит тревогу в статусе active для тестов переходов
func (f *alertFixture) createActiveAlert(t *testing.T, kind models.AlertKind) *models.Alert {
	t.Helper()
	ctx := context.Background()
	tourist := f.addTourist()
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	alert, err := f.svc.CreateAlert(ctx, kind, tourist.ID, testLocation, models.SeverityHigh, "Help")
	require.NoError(t, err)
	return alert
}

func TestTransition_FullLifecycle(t *testing.T) {
	// Подготовка
	f := newAlertFixture(t)
	ctx := context.Background()
	alert := f.createActiveAlert(t, models.AlertKindSOS)
	actor := service.Actor{ID: uuid.New(), Role: models.RoleAuthority}

	// Действие: полная цепочка вперед
	for _, next := range []models.AlertStatus{
		models.AlertStatusAcknowledged,
		models.AlertStatusResponding,
		models.AlertStatusResolved,
		models.AlertStatusClosed,
	} {
		updated, err := f.svc.Transition(ctx, alert.ID, next, actor, "")
		require.NoError(t, err, "transition to %s", next)
		assert.Equal(t, next, updated.Status)
	}

	// Проверки: версия выросла на каждый переход, ответственный закреплен
	stored, err := f.alerts.GetByID(ctx, alert.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), stored.Version)
	require.NotNil(t, stored.AuthorityID)
	assert.Equal(t, actor.ID, *stored.AuthorityID)

	// SOS разрешен: турист вернулся в статус active
	tourist, err := f.tourists.GetByID(ctx, stored.TouristID)
	require.NoError(t, err)
	assert.Equal(t, models.TouristStatusActive, tourist.Status)
}

func TestTransition_InvalidEdges(t *testing.T) {
	// Подготовка
	f := newAlertFixture(t)
	ctx := context.Background()
	actor := service.Actor{ID: uuid.New(), Role: models.RoleAuthority}

	cases := []struct {
		name    string
		prepare []models.AlertStatus
		attempt models.AlertStatus
	}{
		{"active to resolved", nil, models.AlertStatusResolved},
		{"active to closed", nil, models.AlertStatusClosed},
		{"acknowledged to active", []models.AlertStatus{models.AlertStatusAcknowledged}, models.AlertStatusActive},
		{"responding to acknowledged", []models.AlertStatus{models.AlertStatusResponding}, models.AlertStatusAcknowledged},
		{"resolved to responding", []models.AlertStatus{models.AlertStatusAcknowledged, models.AlertStatusResolved}, models.AlertStatusResponding},
		{"closed is terminal", []models.AlertStatus{models.AlertStatusAcknowledged, models.AlertStatusResolved, models.AlertStatusClosed}, models.AlertStatusAcknowledged},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			alert := f.createActiveAlert(t, models.AlertKindManual)
			for _, next := range tc.prepare {
				_, err := f.svc.Transition(ctx, alert.ID, next, actor, "")
				require.NoError(t, err)
			}
			before, err := f.alerts.GetByID(ctx, alert.ID)
			require.NoError(t, err)

			// Действие
			_, err = f.svc.Transition(ctx, alert.ID, tc.attempt, actor, "")

			// Проверки: отказ без изменения состояния
			require.Error(t, err)
			var transitionErr *models.InvalidTransitionError
			assert.ErrorAs(t, err, &transitionErr)

			after, getErr := f.alerts.GetByID(ctx, alert.ID)
			require.NoError(t, getErr)
			assert.Equal(t, before.Status, after.Status)
			assert.Equal(t, before.Version, after.Version)
		})
	}
}

func TestTransition_ResponseNotesOverwriteDescription(t *testing.T) {
	// Подготовка
	f := newAlertFixture(t)
	ctx := context.Background()
	alert := f.createActiveAlert(t, models.AlertKindManual)
	actor := service.Actor{ID: uuid.New(), Role: models.RoleAuthority}

	// Действие
	updated, err := f.svc.Transition(ctx, alert.ID, models.AlertStatusAcknowledged, actor, "Патруль выехал")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "Патруль выехал", updated.Description)
}

func TestTransition_VersionConflictRetries(t *testing.T) {
	// Подготовка: репозиторий-мок имитирует параллельный переход
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockAlertRepository(ctrl)
	touristMock := mocks.NewMockTouristRepository(ctrl)
	authorityMock := mocks.NewMockAuthorityRepository(ctrl)
	publisherMock := notification_mocks.NewMockPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	svc := service.NewAlertService(repoMock, touristMock, authorityMock, publisherMock, logger)

	ctx := context.Background()
	alertID := uuid.New()
	actor := service.Actor{ID: uuid.New(), Role: models.RoleAuthority}

	first := &models.Alert{ID: alertID, Kind: models.AlertKindManual, Status: models.AlertStatusActive, Version: 1}
	// Параллельный актор успел перевести тревогу в acknowledged
	second := &models.Alert{ID: alertID, Kind: models.AlertKindManual, Status: models.AlertStatusAcknowledged, Version: 2}

	gomock.InOrder(
		repoMock.EXPECT().GetByID(ctx, alertID).Return(first, nil),
		repoMock.EXPECT().UpdateStatus(ctx, gomock.Any(), int64(1)).Return(models.ErrVersionConflict),
		repoMock.EXPECT().GetByID(ctx, alertID).Return(second, nil),
		repoMock.EXPECT().UpdateStatus(ctx, gomock.Any(), int64(2)).Return(nil),
	)

	// Действие: переход в responding достижим и из active, и из acknowledged
	updated, err := svc.Transition(ctx, alertID, models.AlertStatusResponding, actor, "")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.AlertStatusResponding, updated.Status)
}

func TestTransition_VersionConflictRevalidatesEdge(t *testing.T) {
	// Подготовка: после конфликта версий переход стал недостижим
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockAlertRepository(ctrl)
	touristMock := mocks.NewMockTouristRepository(ctrl)
	authorityMock := mocks.NewMockAuthorityRepository(ctrl)
	publisherMock := notification_mocks.NewMockPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	svc := service.NewAlertService(repoMock, touristMock, authorityMock, publisherMock, logger)

	ctx := context.Background()
	alertID := uuid.New()
	actor := service.Actor{ID: uuid.New(), Role: models.RoleAuthority}

	first := &models.Alert{ID: alertID, Kind: models.AlertKindManual, Status: models.AlertStatusActive, Version: 1}
	// Параллельный актор уже разрешил тревогу
	second := &models.Alert{ID: alertID, Kind: models.AlertKindManual, Status: models.AlertStatusResolved, Version: 2}

	gomock.InOrder(
		repoMock.EXPECT().GetByID(ctx, alertID).Return(first, nil),
		repoMock.EXPECT().UpdateStatus(ctx, gomock.Any(), int64(1)).Return(models.ErrVersionConflict),
		repoMock.EXPECT().GetByID(ctx, alertID).Return(second, nil),
	)

	// Действие
	_, err := svc.Transition(ctx, alertID, models.AlertStatusAcknowledged, actor, "")

	// Проверки: переход по свежему состоянию невозможен
	require.Error(t, err)
	var transitionErr *models.InvalidTransitionError
	assert.ErrorAs(t, err, &transitionErr)
}

func TestTransition_UnknownStatus(t *testing.T) {
	// Подготовка
	f := newAlertFixture(t)
	ctx := context.Background()
	actor := service.Actor{ID: uuid.New(), Role: models.RoleAuthority}

	// Действие
	_, err := f.svc.Transition(ctx, uuid.New(), models.AlertStatus("archived"), actor, "")

	// Проверки
	require.Error(t, err)
	var validationErr *models.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}
