package service_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/tourist_safety_system/internal/config"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/notification"
	notification_mocks "github.com/shenikar/tourist_safety_system/internal/notification/mocks"
	"github.com/shenikar/tourist_safety_system/internal/service"
	"github.com/shenikar/tourist_safety_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestScoreService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestScoreService(t *testing.T) (service.ScoreService, *mocks.MockZoneProvider, *mocks.MockTouristRepository, *mocks.MockAlertRepository, *notification_mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	zonesMock := mocks.NewMockZoneProvider(ctrl)
	touristMock := mocks.NewMockTouristRepository(ctrl)
	alertMock := mocks.NewMockAlertRepository(ctrl)
	publisherMock := notification_mocks.NewMockPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		Timezone:               "UTC",
		StatsTimeWindowMinutes: 60,
	}

	svc := service.NewScoreService(zonesMock, touristMock, alertMock, publisherMock, logger, cfg)
	return svc, zonesMock, touristMock, alertMock, publisherMock
}

// riskZoneAt возвращает активную зону риска с заданным центром и радиусом
func riskZoneAt(lat, lon, radius float64) *models.Zone {
	return &models.Zone{
		ID:           uuid.New(),
		Name:         "Зона риска",
		Kind:         models.ZoneKindRisk,
		Center:       models.Position{Latitude: lat, Longitude: lon},
		RadiusMeters: radius,
		Active:       true,
	}
}

func TestComputeScore_InsideRiskZoneAtNightWithRecentAlert(t *testing.T) {
	// Подготовка: точка внутри зоны риска, ночь, один недавний SOS рядом
	svc, zonesMock, _, _, _ := newTestScoreService(t)
	point := models.Position{Latitude: 55.75, Longitude: 37.61}
	night := time.Date(2026, 3, 14, 23, 0, 0, 0, time.UTC)

	zonesMock.EXPECT().ActiveZones().Return([]*models.Zone{riskZoneAt(55.75, 37.61, 500)}).Times(1)

	recentAlerts := []*models.Alert{
		{Kind: models.AlertKindSOS, Location: point, CreatedAt: night.Add(-time.Hour)},
	}

	// Действие
	score := svc.ComputeScore(point, night, recentAlerts)

	// Проверки: 85 - 30 - 10 - 5
	assert.Equal(t, 40, score)
}

func TestComputeScore_NearRiskZone(t *testing.T) {
	// Подготовка: точка вне зоны, но в пределах двух радиусов от центра
	svc, zonesMock, _, _, _ := newTestScoreService(t)
	point := models.Position{Latitude: 55.75, Longitude: 37.61}
	day := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	// Центр примерно в 1.1 км севернее, радиус 1 км: внутри двойного радиуса
	zonesMock.EXPECT().ActiveZones().Return([]*models.Zone{riskZoneAt(55.76, 37.61, 1000)}).Times(1)

	// Действие
	score := svc.ComputeScore(point, day, nil)

	// Проверки: 85 - 15
	assert.Equal(t, 70, score)
}

func TestComputeScore_PenaltiesStackAndClampToZero(t *testing.T) {
	// Подготовка: три перекрывающиеся зоны риска, ночь, несколько тревог
	svc, zonesMock, _, _, _ := newTestScoreService(t)
	point := models.Position{Latitude: 55.75, Longitude: 37.61}
	night := time.Date(2026, 3, 14, 2, 0, 0, 0, time.UTC)

	zones := []*models.Zone{
		riskZoneAt(55.75, 37.61, 500),
		riskZoneAt(55.751, 37.61, 500),
		riskZoneAt(55.749, 37.61, 500),
	}
	zonesMock.EXPECT().ActiveZones().Return(zones).Times(1)

	alerts := make([]*models.Alert, 0, 3)
	for i := 0; i < 3; i++ {
		alerts = append(alerts, &models.Alert{Kind: models.AlertKindIncident, Location: point, CreatedAt: night.Add(-time.Hour)})
	}

	// Действие: 85 - 3*30 - 10 - 3*5 ушло бы в минус
	score := svc.ComputeScore(point, night, alerts)

	// Проверки
	assert.Equal(t, 0, score)
}

func TestComputeScore_NightHourBoundaries(t *testing.T) {
	// Подготовка: без зон и тревог штраф может дать только час суток
	svc, zonesMock, _, _, _ := newTestScoreService(t)
	point := models.Position{Latitude: 10, Longitude: 10}
	zonesMock.EXPECT().ActiveZones().Return(nil).AnyTimes()

	cases := []struct {
		hour     int
		expected int
	}{
		{21, 85}, // вечер, еще не ночь
		{22, 75}, // начало ночного окна
		{0, 75},
		{5, 75}, // последний ночной час, включительно
		{6, 85}, // утро
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("hour_%d", tc.hour), func(t *testing.T) {
			now := time.Date(2026, 3, 14, tc.hour, 30, 0, 0, time.UTC)
			assert.Equal(t, tc.expected, svc.ComputeScore(point, now, nil))
		})
	}
}

func TestComputeScore_IgnoresStaleAndManualAlerts(t *testing.T) {
	// Подготовка
	svc, zonesMock, _, _, _ := newTestScoreService(t)
	point := models.Position{Latitude: 55.75, Longitude: 37.61}
	day := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	zonesMock.EXPECT().ActiveZones().Return(nil).Times(1)

	alerts := []*models.Alert{
		// Старше суточного окна
		{Kind: models.AlertKindSOS, Location: point, CreatedAt: day.Add(-25 * time.Hour)},
		// Ручные тревоги в оценке не участвуют
		{Kind: models.AlertKindManual, Location: point, CreatedAt: day.Add(-time.Hour)},
		// Дальше километра
		{Kind: models.AlertKindSOS, Location: models.Position{Latitude: 55.85, Longitude: 37.61}, CreatedAt: day.Add(-time.Hour)},
	}

	// Действие
	score := svc.ComputeScore(point, day, alerts)

	// Проверки: ни одна тревога не прошла фильтры
	assert.Equal(t, 85, score)
}

func TestComputeScore_Deterministic(t *testing.T) {
	// Подготовка
	svc, zonesMock, _, _, _ := newTestScoreService(t)
	point := models.Position{Latitude: 55.75, Longitude: 37.61}
	now := time.Date(2026, 3, 14, 23, 0, 0, 0, time.UTC)
	zones := []*models.Zone{riskZoneAt(55.75, 37.61, 500)}
	zonesMock.EXPECT().ActiveZones().Return(zones).Times(2)

	// Действие и проверки: одинаковые входы дают одинаковый результат
	first := svc.ComputeScore(point, now, nil)
	second := svc.ComputeScore(point, now, nil)
	assert.Equal(t, first, second)
}

func TestEvaluateLocation_Success(t *testing.T) {
	// Подготовка
	svc, zonesMock, touristMock, alertMock, publisherMock := newTestScoreService(t)
	ctx := context.Background()
	touristID := uuid.New()
	point := models.Position{Latitude: 55.75, Longitude: 37.61}
	tourist := &models.Tourist{ID: touristID, Name: "Иван", Phone: "+70000000001"}

	// Ожидания
	touristMock.EXPECT().GetByID(ctx, touristID).Return(tourist, nil).Times(1)
	alertMock.EXPECT().
		FindRecentNear(ctx, point.Latitude, point.Longitude, 1000.0, gomock.Any()).
		Return(nil, nil).
		Times(1)
	zonesMock.EXPECT().ActiveZones().Return(nil).Times(1)
	zonesMock.EXPECT().IsInRiskZone(point).Return(false).Times(1)

	touristMock.EXPECT().
		UpdateLocation(ctx, touristID, point, gomock.Any()).
		Return(nil).
		Times(1)
	touristMock.EXPECT().
		SaveSafetyCheck(ctx, gomock.Any()).
		Do(func(ctx context.Context, check *models.SafetyCheck) {
			assert.Equal(t, touristID, check.TouristID)
			assert.False(t, check.InRiskZone)
		}).Return(nil).Times(1)

	// Вне зоны риска уведомление не ставится в очередь
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	score, err := svc.EvaluateLocation(ctx, touristID, point)

	// Проверки
	require.NoError(t, err)
	assert.GreaterOrEqual(t, score, 0)
	assert.LessOrEqual(t, score, 100)
}

func TestEvaluateLocation_RiskZoneNotification(t *testing.T) {
	// Подготовка
	svc, zonesMock, touristMock, alertMock, publisherMock := newTestScoreService(t)
	ctx := context.Background()
	touristID := uuid.New()
	point := models.Position{Latitude: 55.75, Longitude: 37.61}
	tourist := &models.Tourist{ID: touristID, Name: "Иван", Phone: "+70000000001"}

	// Ожидания
	touristMock.EXPECT().GetByID(ctx, touristID).Return(tourist, nil).Times(1)
	alertMock.EXPECT().FindRecentNear(ctx, point.Latitude, point.Longitude, 1000.0, gomock.Any()).Return(nil, nil).Times(1)
	zonesMock.EXPECT().ActiveZones().Return([]*models.Zone{riskZoneAt(55.75, 37.61, 500)}).Times(1)
	zonesMock.EXPECT().IsInRiskZone(point).Return(true).Times(1)
	touristMock.EXPECT().UpdateLocation(ctx, touristID, point, gomock.Any()).Return(nil).Times(1)
	touristMock.EXPECT().SaveSafetyCheck(ctx, gomock.Any()).Return(nil).Times(1)

	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(ctx context.Context, event notification.Event) {
			assert.Equal(t, notification.ChannelSMS, event.Channel)
			assert.Equal(t, []string{tourist.Phone}, event.Recipients)
			assert.Equal(t, touristID.String(), event.TouristID)
		}).Return(nil).Times(1)

	// Действие
	_, err := svc.EvaluateLocation(ctx, touristID, point)

	// Проверки
	require.NoError(t, err)
}

func TestEvaluateLocation_AlertLookupFailureDegradesToCachedScore(t *testing.T) {
	// Подготовка: поиск недавних тревог падает, но обновление не блокируется
	svc, zonesMock, touristMock, alertMock, publisherMock := newTestScoreService(t)
	ctx := context.Background()
	touristID := uuid.New()
	point := models.Position{Latitude: 55.75, Longitude: 37.61}
	lastPosition := models.Position{Latitude: 55.74, Longitude: 37.60}
	tourist := &models.Tourist{ID: touristID, Name: "Иван", LastPosition: &lastPosition, SafetyScore: 63}

	// Ожидания
	touristMock.EXPECT().GetByID(ctx, touristID).Return(tourist, nil).Times(1)
	alertMock.EXPECT().
		FindRecentNear(ctx, point.Latitude, point.Longitude, 1000.0, gomock.Any()).
		Return(nil, fmt.Errorf("redis недоступен")).
		Times(1)
	zonesMock.EXPECT().IsInRiskZone(point).Return(false).Times(1)

	// Сохраняется именно предыдущая кешированная оценка
	touristMock.EXPECT().UpdateLocation(ctx, touristID, point, 63).Return(nil).Times(1)
	touristMock.EXPECT().SaveSafetyCheck(ctx, gomock.Any()).Return(nil).Times(1)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	score, err := svc.EvaluateLocation(ctx, touristID, point)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 63, score)
}

func TestEvaluateLocation_InvalidPosition(t *testing.T) {
	// Подготовка
	svc, _, _, _, _ := newTestScoreService(t)
	ctx := context.Background()

	// Действие
	_, err := svc.EvaluateLocation(ctx, uuid.New(), models.Position{Latitude: 200, Longitude: 0})

	// Проверки
	require.Error(t, err)
	var validationErr *models.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestEvaluateLocation_LocationWriteFailure(t *testing.T) {
	// Подготовка
	svc, zonesMock, touristMock, alertMock, _ := newTestScoreService(t)
	ctx := context.Background()
	touristID := uuid.New()
	point := models.Position{Latitude: 55.75, Longitude: 37.61}
	tourist := &models.Tourist{ID: touristID, Name: "Иван"}

	// Ожидания
	touristMock.EXPECT().GetByID(ctx, touristID).Return(tourist, nil).Times(1)
	alertMock.EXPECT().FindRecentNear(ctx, point.Latitude, point.Longitude, 1000.0, gomock.Any()).Return(nil, nil).Times(1)
	zonesMock.EXPECT().ActiveZones().Return(nil).Times(1)
	zonesMock.EXPECT().IsInRiskZone(point).Return(false).Times(1)
	touristMock.EXPECT().UpdateLocation(ctx, touristID, point, gomock.Any()).Return(fmt.Errorf("бд недоступна")).Times(1)

	// Действие
	_, err := svc.EvaluateLocation(ctx, touristID, point)

	// Проверки: ошибка записи всплывает как отказ коллаборатора
	require.Error(t, err)
	var collaboratorErr *models.CollaboratorError
	assert.ErrorAs(t, err, &collaboratorErr)
}

func TestGetSafetyScore_FallsBackToBase(t *testing.T) {
	// Подготовка: местоположение еще не фиксировалось
	svc, _, touristMock, _, _ := newTestScoreService(t)
	ctx := context.Background()
	touristID := uuid.New()
	tourist := &models.Tourist{ID: touristID, Name: "Иван", SafetyScore: 0}

	// Ожидания
	touristMock.EXPECT().GetByID(ctx, touristID).Return(tourist, nil).Times(1)

	// Действие
	score, err := svc.GetSafetyScore(ctx, touristID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 85, score)
}

func TestGetStats_Success(t *testing.T) {
	// Подготовка
	svc, _, touristMock, _, _ := newTestScoreService(t)
	ctx := context.Background()
	expectedCount := 42

	// Ожидания
	touristMock.EXPECT().GetSafetyCheckStats(ctx, 60).Return(expectedCount, nil).Times(1)

	// Действие
	count, err := svc.GetStats(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedCount, count)
}
