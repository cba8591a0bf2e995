package models

import (
	"time"

	"github.com/google/uuid"
)

// AlertKind - тип тревоги
type AlertKind string

const (
	AlertKindSOS      AlertKind = "sos"
	AlertKindIncident AlertKind = "incident"
	AlertKindManual   AlertKind = "manual"
)

// AlertStatus - статус тревоги в жизненном цикле
type AlertStatus string

const (
	AlertStatusActive       AlertStatus = "active"
	AlertStatusAcknowledged AlertStatus = "acknowledged"
	AlertStatusResponding   AlertStatus = "responding"
	AlertStatusResolved     AlertStatus = "resolved"
	AlertStatusClosed       AlertStatus = "closed"
)

// Severity - уровень серьезности тревоги или инцидента
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Alert представляет отслеживаемую тревогу. Ссылки на туриста и
// ответственного - слабые, по идентификатору; Alert не владеет их жизненным
// циклом. Version используется для оптимистичной блокировки переходов статуса.
type Alert struct {
	ID          uuid.UUID   `json:"id"`
	Kind        AlertKind   `json:"kind"`
	TouristID   uuid.UUID   `json:"tourist_id"`
	Location    Position    `json:"location"`
	Severity    Severity    `json:"severity"`
	Status      AlertStatus `json:"status"`
	Description string      `json:"description"`
	AuthorityID *uuid.UUID  `json:"authority_id,omitempty"`
	Version     int64       `json:"version"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
