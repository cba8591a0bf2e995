package service_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/tourist_safety_system/internal/geo"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/service"
	"github.com/shenikar/tourist_safety_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestZoneService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestZoneService(t *testing.T) (service.ZoneService, *mocks.MockZoneRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockZoneRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	svc := service.NewZoneService(repoMock, logger)
	return svc, repoMock
}

func validZone() *models.Zone {
	return &models.Zone{
		Name:         "Старый город",
		Kind:         models.ZoneKindRisk,
		Center:       models.Position{Latitude: 55.75, Longitude: 37.61},
		RadiusMeters: 500,
		Region:       "moscow",
	}
}

func TestCreateZone_Success(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestZoneService(t)
	ctx := context.Background()
	zone := validZone()

	// Ожидания
	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, z *models.Zone) error {
			// Симулируем, что БД присвоила ID
			z.ID = uuid.New()
			return nil
		}).Times(1)

	// После мутации перечитывается снимок активных зон
	repoMock.EXPECT().ListActive(ctx).Return([]*models.Zone{zone}, nil).Times(1)

	// Действие
	err := svc.CreateZone(ctx, zone)

	// Проверки
	require.NoError(t, err)
	assert.True(t, zone.Active)
	assert.NotEqual(t, uuid.Nil, zone.ID)
}

func TestCreateZone_ValidationFailed(t *testing.T) {
	// Подготовка
	svc, _ := newTestZoneService(t)
	ctx := context.Background()

	cases := []struct {
		name string
		zone *models.Zone
	}{
		{"empty name", &models.Zone{Kind: models.ZoneKindRisk, Center: models.Position{Latitude: 1, Longitude: 1}, RadiusMeters: 10}},
		{"zero radius", &models.Zone{Name: "z", Kind: models.ZoneKindRisk, Center: models.Position{Latitude: 1, Longitude: 1}, RadiusMeters: 0}},
		{"latitude out of range", &models.Zone{Name: "z", Kind: models.ZoneKindRisk, Center: models.Position{Latitude: 91, Longitude: 1}, RadiusMeters: 10}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// Действие
			err := svc.CreateZone(ctx, tc.zone)

			// Проверки: репозиторий не вызывается вовсе
			require.Error(t, err)
			var validationErr *models.ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestGetZone_Success_FromCache(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestZoneService(t)
	ctx := context.Background()
	zoneID := uuid.New()
	expectedZone := &models.Zone{ID: zoneID, Name: "Из кеша"}

	// Ожидания
	repoMock.EXPECT().
		GetZoneFromCache(ctx, zoneID).
		Return(expectedZone, nil).
		Times(1)

	// Действие
	zone, err := svc.GetZone(ctx, zoneID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedZone, zone)
}

func TestGetZone_Success_FromDB(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestZoneService(t)
	ctx := context.Background()
	zoneID := uuid.New()
	expectedZone := &models.Zone{ID: zoneID, Name: "Из БД"}

	// Ожидания
	// 1. Промах кеша
	repoMock.EXPECT().GetZoneFromCache(ctx, zoneID).Return(nil, nil).Times(1)
	// 2. Попадание в БД
	repoMock.EXPECT().GetByID(ctx, zoneID).Return(expectedZone, nil).Times(1)
	// 3. Запись в кеш
	repoMock.EXPECT().SetZoneCache(ctx, expectedZone).Return(nil).Times(1)

	// Действие
	zone, err := svc.GetZone(ctx, zoneID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedZone, zone)
}

func TestGetZone_NotFound(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestZoneService(t)
	ctx := context.Background()
	zoneID := uuid.New()
	repoError := &models.NotFoundError{Entity: "zone", ID: zoneID.String()}

	// Ожидания
	repoMock.EXPECT().GetZoneFromCache(ctx, zoneID).Return(nil, nil).Times(1)
	repoMock.EXPECT().GetByID(ctx, zoneID).Return(nil, repoError).Times(1)

	// Действие
	zone, err := svc.GetZone(ctx, zoneID)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, zone)
	var notFoundErr *models.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}

func TestUpdateZone_NotFound(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestZoneService(t)
	ctx := context.Background()
	zone := validZone()
	zone.ID = uuid.New()
	repoError := fmt.Errorf("не найдено")

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, zone.ID).Return(nil, repoError).Times(1)

	// Действие
	err := svc.UpdateZone(ctx, zone)

	// Проверки
	require.Error(t, err)
}

func TestDeactivateZone_Success(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestZoneService(t)
	ctx := context.Background()
	zoneID := uuid.New()
	existingZone := &models.Zone{ID: zoneID, Name: "Зона"}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, zoneID).Return(existingZone, nil).Times(1)
	repoMock.EXPECT().Delete(ctx, zoneID).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateZoneCache(ctx, zoneID).Return(nil).Times(1)
	repoMock.EXPECT().ListActive(ctx).Return([]*models.Zone{}, nil).Times(1)

	// Действие
	err := svc.DeactivateZone(ctx, zoneID)

	// Проверки
	require.NoError(t, err)
	assert.Empty(t, svc.ActiveZones())
}

// reloadWith загружает в сервис снимок из переданных зон
func reloadWith(t *testing.T, svc service.ZoneService, repoMock *mocks.MockZoneRepository, zones []*models.Zone) {
	t.Helper()
	ctx := context.Background()
	repoMock.EXPECT().ListActive(ctx).Return(zones, nil).Times(1)
	require.NoError(t, svc.Reload(ctx))
}

func TestContainingZones_BoundaryInclusive(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestZoneService(t)
	center := models.Position{Latitude: 55.75, Longitude: 37.61}
	point := models.Position{Latitude: 55.76, Longitude: 37.61}
	// Радиус зоны равен точному расстоянию до точки: граница включается
	boundary := geo.DistanceMeters(point, center)

	onBoundary := &models.Zone{ID: uuid.New(), Name: "На границе", Kind: models.ZoneKindRisk, Center: center, RadiusMeters: boundary, Active: true}
	tooSmall := &models.Zone{ID: uuid.New(), Name: "Чуть меньше", Kind: models.ZoneKindRisk, Center: center, RadiusMeters: boundary - 1, Active: true}
	reloadWith(t, svc, repoMock, []*models.Zone{onBoundary, tooSmall})

	// Действие
	containing := svc.ContainingZones(point)

	// Проверки
	require.Len(t, containing, 1)
	assert.Equal(t, onBoundary.ID, containing[0].ID)
}

func TestNearbyZones_SortedByDistance(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestZoneService(t)
	point := models.Position{Latitude: 55.75, Longitude: 37.61}

	far := &models.Zone{ID: uuid.New(), Name: "Дальняя", Kind: models.ZoneKindNeutral, Center: models.Position{Latitude: 55.77, Longitude: 37.61}, RadiusMeters: 100, Active: true}
	near := &models.Zone{ID: uuid.New(), Name: "Ближняя", Kind: models.ZoneKindNeutral, Center: models.Position{Latitude: 55.755, Longitude: 37.61}, RadiusMeters: 100, Active: true}
	outOfRange := &models.Zone{ID: uuid.New(), Name: "Вне радиуса", Kind: models.ZoneKindNeutral, Center: models.Position{Latitude: 56.75, Longitude: 37.61}, RadiusMeters: 100, Active: true}
	reloadWith(t, svc, repoMock, []*models.Zone{far, near, outOfRange})

	// Действие
	nearby := svc.NearbyZones(point, 5000)

	// Проверки: по возрастанию расстояния, радиус самой зоны не учитывается
	require.Len(t, nearby, 2)
	assert.Equal(t, near.ID, nearby[0].Zone.ID)
	assert.Equal(t, far.ID, nearby[1].Zone.ID)
	assert.Less(t, nearby[0].DistanceMeters, nearby[1].DistanceMeters)
}

func TestIsInRiskZone(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestZoneService(t)
	center := models.Position{Latitude: 55.75, Longitude: 37.61}

	riskZone := &models.Zone{ID: uuid.New(), Name: "Риск", Kind: models.ZoneKindRisk, Center: center, RadiusMeters: 1000, Active: true}
	neutralZone := &models.Zone{ID: uuid.New(), Name: "Нейтральная", Kind: models.ZoneKindNeutral, Center: center, RadiusMeters: 1000, Active: true}
	reloadWith(t, svc, repoMock, []*models.Zone{neutralZone, riskZone})

	// Проверки
	assert.True(t, svc.IsInRiskZone(center))
	assert.False(t, svc.IsInRiskZone(models.Position{Latitude: 56.75, Longitude: 37.61}))
}

func TestIsInRiskZone_NeutralOnly(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestZoneService(t)
	center := models.Position{Latitude: 55.75, Longitude: 37.61}
	neutralZone := &models.Zone{ID: uuid.New(), Name: "Нейтральная", Kind: models.ZoneKindNeutral, Center: center, RadiusMeters: 1000, Active: true}
	reloadWith(t, svc, repoMock, []*models.Zone{neutralZone})

	// Проверки: нейтральная зона не делает точку опасной
	assert.False(t, svc.IsInRiskZone(center))
}

func TestListZones_NormalizesPagination(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestZoneService(t)
	ctx := context.Background()
	expectedZones := []*models.Zone{{ID: uuid.New(), Name: "Зона 1"}}

	// Ожидания: некорректные page/pageSize приводятся к значениям по умолчанию
	repoMock.EXPECT().ListZones(ctx, 1, 20).Return(expectedZones, nil).Times(1)

	// Действие
	zones, err := svc.ListZones(ctx, 0, 500)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedZones, zones)
}
