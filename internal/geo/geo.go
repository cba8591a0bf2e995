package geo

import (
	"math"

	"github.com/shenikar/tourist_safety_system/internal/models"
)

// earthRadiusMeters - средний радиус Земли для формулы гаверсинусов
const earthRadiusMeters = 6371000.0

// DistanceMeters возвращает расстояние по дуге большого круга между двумя
// точками (формула гаверсинусов). Детерминирована, без побочных эффектов.
func DistanceMeters(a, b models.Position) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}
