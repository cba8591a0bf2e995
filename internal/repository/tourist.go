package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/service"
)

type TouristRepository struct {
	db *pgxpool.Pool
}

func NewTouristRepository(db *pgxpool.Pool) service.TouristRepository {
	return &TouristRepository{db: db}
}

// GetByID возвращает туриста по его UUID
func (r *TouristRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Tourist, error) {
	tourist := &models.Tourist{}
	query := `
		SELECT
			id,
			name,
			phone,
			status,
			ST_Y(last_position::geometry) as latitude,
			ST_X(last_position::geometry) as longitude,
			position_at,
			safety_score,
			location_sharing,
			contact_name,
			contact_phone,
			contact_email,
			created_at,
			updated_at
		FROM tourists
		WHERE id = $1;
	`
	var lat, lon *float64
	var positionAt *time.Time
	err := r.db.QueryRow(ctx, query, id).Scan(
		&tourist.ID,
		&tourist.Name,
		&tourist.Phone,
		&tourist.Status,
		&lat,
		&lon,
		&positionAt,
		&tourist.SafetyScore,
		&tourist.LocationSharing,
		&tourist.EmergencyContact.Name,
		&tourist.EmergencyContact.Phone,
		&tourist.EmergencyContact.Email,
		&tourist.CreatedAt,
		&tourist.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &models.NotFoundError{Entity: "tourist", ID: id.String()}
		}
		return nil, fmt.Errorf("failed to get tourist by id: %w", err)
	}

	if lat != nil && lon != nil && positionAt != nil {
		tourist.LastPosition = &models.Position{
			Latitude:  *lat,
			Longitude: *lon,
			Timestamp: *positionAt,
		}
	}
	return tourist, nil
}

// UpdateStatus изменяет статус туриста (active/emergency)
func (r *TouristRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.TouristStatus) error {
	query := `
		UPDATE tourists SET
			status = $1,
			updated_at = NOW()
		WHERE id = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update tourist status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return &models.NotFoundError{Entity: "tourist", ID: id.String()}
	}
	return nil
}

// UpdateLocation записывает последнюю позицию и кешированную оценку
func (r *TouristRepository) UpdateLocation(ctx context.Context, id uuid.UUID, p models.Position, score int) error {
	query := `
		UPDATE tourists SET
			last_position = ST_SetSRID(ST_MakePoint($1, $2), 4326),
			position_at = $3,
			safety_score = $4,
			updated_at = NOW()
		WHERE id = $5;
	`
	cmdTag, err := r.db.Exec(ctx, query, p.Longitude, p.Latitude, p.Timestamp, score, id)
	if err != nil {
		return fmt.Errorf("failed to update tourist location: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return &models.NotFoundError{Entity: "tourist", ID: id.String()}
	}
	return nil
}

// SaveSafetyCheck сохраняет запись о проверке местоположения в бд
func (r *TouristRepository) SaveSafetyCheck(ctx context.Context, check *models.SafetyCheck) error {
	query := `
		INSERT INTO safety_checks (tourist_id, location, score, in_risk_zone)
		VALUES ($1, ST_SetSRID(ST_MakePoint($2, $3), 4326), $4, $5) RETURNING id, checked_at;
	`
	err := r.db.QueryRow(ctx, query,
		check.TouristID,
		check.Longitude,
		check.Latitude,
		check.Score,
		check.InRiskZone,
	).Scan(&check.ID, &check.CheckedAt)
	if err != nil {
		return fmt.Errorf("failed to save safety check: %w", err)
	}
	return nil
}

// GetSafetyCheckStats возвращает количество уникальных туристов,
// проверивших местоположение за окно времени
func (r *TouristRepository) GetSafetyCheckStats(ctx context.Context, minutes int) (int, error) {
	query := `
		SELECT COUNT(DISTINCT tourist_id)
		FROM safety_checks
		WHERE checked_at >= NOW() - ($1 * INTERVAL '1 minute');
	`
	var count int
	err := r.db.QueryRow(ctx, query, minutes).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get safety check stats: %w", err)
	}
	return count, nil
}
