package models

import (
	"time"
)

// Position представляет географическую точку (WGS 84) с временной меткой.
// После записи позиция не изменяется.
type Position struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}

// Valid проверяет, что координаты находятся в допустимых диапазонах
func (p Position) Valid() bool {
	return p.Latitude >= -90 && p.Latitude <= 90 &&
		p.Longitude >= -180 && p.Longitude <= 180
}
