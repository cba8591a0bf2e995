package models

import (
	"time"

	"github.com/google/uuid"
)

// SafetyCheck представляет запись об оценке местоположения туриста
type SafetyCheck struct {
	ID         int64     `json:"id"`
	TouristID  uuid.UUID `json:"tourist_id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Score      int       `json:"score"`
	InRiskZone bool      `json:"in_risk_zone"`
	CheckedAt  time.Time `json:"checked_at"`
}
