package models

import (
	"time"

	"github.com/google/uuid"
)

// ZoneKind - тип геозоны. Помимо предопределенных значений допускаются
// произвольные метки (например "construction").
type ZoneKind string

const (
	ZoneKindRisk    ZoneKind = "risk"
	ZoneKindNeutral ZoneKind = "neutral"
)

// Zone представляет круговую геозону с центром и радиусом
type Zone struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Kind         ZoneKind  `json:"kind"`
	Center       Position  `json:"center"`
	RadiusMeters float64   `json:"radius_meters"`
	Region       string    `json:"region"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ZoneDistance - зона вместе с расстоянием до точки запроса, для выдачи
// ближайших зон по возрастанию расстояния
type ZoneDistance struct {
	Zone           *Zone   `json:"zone"`
	DistanceMeters float64 `json:"distance_meters"`
}
