package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateZoneRequest DTO для создания геозоны
// @Description DTO для создания геозоны
type CreateZoneRequest struct {
	Name         string  `json:"name" validate:"required,min=2,max=255"`
	Kind         string  `json:"kind" validate:"required"`
	Latitude     float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude    float64 `json:"longitude" validate:"min=-180,max=180"`
	RadiusMeters float64 `json:"radius_meters" validate:"required,gt=0"`
	Region       string  `json:"region,omitempty"`
}

// UpdateZoneRequest DTO для обновления геозоны
// @Description DTO для обновления геозоны
type UpdateZoneRequest struct {
	Name         string  `json:"name" validate:"required,min=2,max=255"`
	Kind         string  `json:"kind" validate:"required"`
	Latitude     float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude    float64 `json:"longitude" validate:"min=-180,max=180"`
	RadiusMeters float64 `json:"radius_meters" validate:"required,gt=0"`
	Region       string  `json:"region,omitempty"`
	Active       bool    `json:"active"`
}

// ZoneResponse DTO для ответа с информацией о геозоне
// @Description DTO для ответа с информацией о геозоне
type ZoneResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Kind         string    `json:"kind"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	RadiusMeters float64   `json:"radius_meters"`
	Region       string    `json:"region,omitempty"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NearbyZoneResponse DTO для ответа о зоне рядом с точкой
// @Description DTO для ответа о зоне рядом с точкой
type NearbyZoneResponse struct {
	Zone           *ZoneResponse `json:"zone"`
	DistanceMeters float64       `json:"distance_meters"`
}

// LocationUpdateRequest DTO для обновления местоположения туриста
// @Description DTO для обновления местоположения туриста
type LocationUpdateRequest struct {
	TouristID string  `json:"tourist_id" validate:"required,uuid"`
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

// SafetyScoreResponse DTO для ответа с оценкой безопасности
// @Description DTO для ответа с оценкой безопасности
type SafetyScoreResponse struct {
	TouristID string `json:"tourist_id"`
	Score     int    `json:"score"`
}

// SOSRequest DTO для подачи сигнала SOS
// @Description DTO для подачи сигнала SOS
type SOSRequest struct {
	TouristID string  `json:"tourist_id" validate:"required,uuid"`
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
	Severity  string  `json:"severity" validate:"required,oneof=low medium high critical"`
	Message   string  `json:"message,omitempty"`
}

// AlertResponse DTO для ответа с информацией о тревоге
// @Description DTO для ответа с информацией о тревоге
type AlertResponse struct {
	ID          uuid.UUID  `json:"id"`
	Kind        string     `json:"kind"`
	TouristID   uuid.UUID  `json:"tourist_id"`
	Latitude    float64    `json:"latitude"`
	Longitude   float64    `json:"longitude"`
	Severity    string     `json:"severity"`
	Status      string     `json:"status"`
	Description string     `json:"description,omitempty"`
	AuthorityID *uuid.UUID `json:"authority_id,omitempty"`
	Version     int64      `json:"version"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TransitionRequest DTO для перевода тревоги в новый статус
// @Description DTO для перевода тревоги в новый статус
type TransitionRequest struct {
	Status        string `json:"status" validate:"required,oneof=active acknowledged responding resolved closed"`
	AuthorityID   string `json:"authority_id" validate:"required,uuid"`
	ResponseNotes string `json:"response_notes,omitempty"`
}

// FileIncidentRequest DTO для регистрации инцидента
// @Description DTO для регистрации инцидента
type FileIncidentRequest struct {
	ReporterID   string   `json:"reporter_id" validate:"required,uuid"`
	Type         string   `json:"type" validate:"required,min=2,max=100"`
	Title        string   `json:"title" validate:"required,min=2,max=255"`
	Description  string   `json:"description,omitempty"`
	Latitude     float64  `json:"latitude" validate:"min=-90,max=90"`
	Longitude    float64  `json:"longitude" validate:"min=-180,max=180"`
	Severity     string   `json:"severity" validate:"required,oneof=low medium high critical"`
	Witnesses    []string `json:"witnesses,omitempty"`
	EvidenceRefs []string `json:"evidence_refs,omitempty"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID                  uuid.UUID  `json:"id"`
	ReferenceNumber     string     `json:"reference_number"`
	ReporterID          uuid.UUID  `json:"reporter_id"`
	Type                string     `json:"type"`
	Title               string     `json:"title"`
	Description         string     `json:"description,omitempty"`
	Latitude            float64    `json:"latitude"`
	Longitude           float64    `json:"longitude"`
	Severity            string     `json:"severity"`
	Witnesses           []string   `json:"witnesses,omitempty"`
	EvidenceRefs        []string   `json:"evidence_refs,omitempty"`
	AssignedAuthorityID *uuid.UUID `json:"assigned_authority_id,omitempty"`
	AlertID             uuid.UUID  `json:"alert_id"`
	Status              string     `json:"status"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// FileIncidentResponse DTO для ответа на регистрацию инцидента
// @Description DTO для ответа на регистрацию инцидента
type FileIncidentResponse struct {
	Incident *IncidentResponse `json:"incident"`
	Alert    *AlertResponse    `json:"alert"`
}

// EmergencyContactResponse DTO для экстренного контакта туриста
// @Description DTO для экстренного контакта туриста
type EmergencyContactResponse struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// TouristResponse DTO для ответа с профилем туриста
// @Description DTO для ответа с профилем туриста
type TouristResponse struct {
	ID               uuid.UUID                `json:"id"`
	Name             string                   `json:"name"`
	Phone            string                   `json:"phone,omitempty"`
	Status           string                   `json:"status"`
	Latitude         *float64                 `json:"latitude,omitempty"`
	Longitude        *float64                 `json:"longitude,omitempty"`
	SafetyScore      int                      `json:"safety_score"`
	LocationSharing  bool                     `json:"location_sharing"`
	EmergencyContact EmergencyContactResponse `json:"emergency_contact"`
	CreatedAt        time.Time                `json:"created_at"`
	UpdatedAt        time.Time                `json:"updated_at"`
}

// AuthorityResponse DTO для ответа с профилем ответственного
// @Description DTO для ответа с профилем ответственного
type AuthorityResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Department string    `json:"department"`
	Region     string    `json:"region,omitempty"`
	OnDuty     bool      `json:"on_duty"`
	Phone      string    `json:"phone,omitempty"`
	Email      string    `json:"email,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	TouristCount int `json:"tourist_count"`
}
