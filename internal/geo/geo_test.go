package geo

import (
	"testing"

	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestDistanceMeters_SamePoint(t *testing.T) {
	p := models.Position{Latitude: 55.7558, Longitude: 37.6173}

	assert.Equal(t, 0.0, DistanceMeters(p, p))
}

func TestDistanceMeters_Symmetry(t *testing.T) {
	a := models.Position{Latitude: 55.7558, Longitude: 37.6173}
	b := models.Position{Latitude: 59.9343, Longitude: 30.3351}

	assert.Equal(t, DistanceMeters(a, b), DistanceMeters(b, a))
}

func TestDistanceMeters_KnownDistance(t *testing.T) {
	// Москва - Санкт-Петербург, около 634 км
	moscow := models.Position{Latitude: 55.7558, Longitude: 37.6173}
	spb := models.Position{Latitude: 59.9343, Longitude: 30.3351}

	d := DistanceMeters(moscow, spb)

	// Допуск 0.5% - стандартная погрешность гаверсинусов
	assert.InDelta(t, 634000, d, 634000*0.005)
}

func TestDistanceMeters_ShortDistance(t *testing.T) {
	// Один градус долготы на экваторе - около 111.19 км
	a := models.Position{Latitude: 0, Longitude: 0}
	b := models.Position{Latitude: 0, Longitude: 1}

	d := DistanceMeters(a, b)

	assert.InDelta(t, 111195, d, 111195*0.005)
}

func TestDistanceMeters_NonNegative(t *testing.T) {
	a := models.Position{Latitude: -90, Longitude: -180}
	b := models.Position{Latitude: 90, Longitude: 180}

	assert.GreaterOrEqual(t, DistanceMeters(a, b), 0.0)
}
