package models

import (
	"time"

	"github.com/google/uuid"
)

// TouristStatus - текущее состояние туриста
type TouristStatus string

const (
	TouristStatusActive    TouristStatus = "active"
	TouristStatusEmergency TouristStatus = "emergency"
)

// EmergencyContact - контакт для экстренного оповещения, заявленный туристом
type EmergencyContact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// Tourist представляет отслеживаемого туриста. Позиция хранится одна,
// последняя запись побеждает; SafetyScore - кешированное производное значение.
type Tourist struct {
	ID               uuid.UUID        `json:"id"`
	Name             string           `json:"name"`
	Phone            string           `json:"phone"`
	Status           TouristStatus    `json:"status"`
	LastPosition     *Position        `json:"last_position,omitempty"`
	SafetyScore      int              `json:"safety_score"`
	LocationSharing  bool             `json:"location_sharing"`
	EmergencyContact EmergencyContact `json:"emergency_contact"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}
