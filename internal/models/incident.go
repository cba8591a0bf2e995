package models

import (
	"time"

	"github.com/google/uuid"
)

// IncidentStatus - статус зарегистрированного инцидента
type IncidentStatus string

const (
	IncidentStatusOpen       IncidentStatus = "open"
	IncidentStatusInProgress IncidentStatus = "in_progress"
	IncidentStatusClosed     IncidentStatus = "closed"
)

// Incident представляет зарегистрированное сообщение об инциденте.
// ReferenceNumber уникален, присваивается один раз при создании и никогда
// не перегенерируется. Каждому инциденту соответствует ровно одна тревога.
type Incident struct {
	ID                  uuid.UUID      `json:"id"`
	ReporterID          uuid.UUID      `json:"reporter_id"`
	ReferenceNumber     string         `json:"reference_number"`
	Type                string         `json:"type"`
	Title               string         `json:"title"`
	Description         string         `json:"description"`
	Location            Position       `json:"location"`
	Severity            Severity       `json:"severity"`
	Witnesses           []string       `json:"witnesses,omitempty"`
	EvidenceRefs        []string       `json:"evidence_refs,omitempty"`
	AssignedAuthorityID *uuid.UUID     `json:"assigned_authority_id,omitempty"`
	AlertID             uuid.UUID      `json:"alert_id"`
	Status              IncidentStatus `json:"status"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}
