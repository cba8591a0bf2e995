package models

import (
	"time"

	"github.com/google/uuid"
)

// Role - роль действующего лица. Проверяется на каждой операции,
// требующей полномочий, вместо инспекции типа во время выполнения.
type Role string

const (
	RoleTourist   Role = "tourist"
	RoleAuthority Role = "authority"
)

// Department - служба, к которой относится ответственный
type Department string

const (
	DepartmentPolice        Department = "police"
	DepartmentTouristPolice Department = "tourist_police"
	DepartmentMedical       Department = "medical"
	DepartmentFire          Department = "fire"
)

// Authority представляет ответственного (оператора служб реагирования)
type Authority struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Department Department `json:"department"`
	Region     string     `json:"region"`
	OnDuty     bool       `json:"on_duty"`
	Phone      string     `json:"phone"`
	Email      string     `json:"email"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
