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

type AlertRepository struct {
	db *pgxpool.Pool
}

func NewAlertRepository(db *pgxpool.Pool) service.AlertRepository {
	return &AlertRepository{db: db}
}

const alertColumns = `
	id,
	kind,
	tourist_id,
	ST_Y(location::geometry) as latitude,
	ST_X(location::geometry) as longitude,
	severity,
	status,
	description,
	authority_id,
	version,
	created_at,
	updated_at`

func scanAlert(row pgx.Row) (*models.Alert, error) {
	alert := &models.Alert{}
	err := row.Scan(
		&alert.ID,
		&alert.Kind,
		&alert.TouristID,
		&alert.Location.Latitude,
		&alert.Location.Longitude,
		&alert.Severity,
		&alert.Status,
		&alert.Description,
		&alert.AuthorityID,
		&alert.Version,
		&alert.CreatedAt,
		&alert.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return alert, nil
}

// Create создает новую запись о тревоге в бд
func (r *AlertRepository) Create(ctx context.Context, alert *models.Alert) error {
	query := `
		INSERT INTO alerts (kind, tourist_id, location, severity, status, description, version)
		VALUES ($1, $2, ST_SetSRID(ST_MakePoint($3, $4), 4326), $5, $6, $7, $8) RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		alert.Kind,
		alert.TouristID,
		alert.Location.Longitude,
		alert.Location.Latitude,
		alert.Severity,
		alert.Status,
		alert.Description,
		alert.Version,
	).Scan(&alert.ID, &alert.CreatedAt, &alert.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create alert: %w", err)
	}
	return nil
}

// GetByID возвращает тревогу по её UUID
func (r *AlertRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Alert, error) {
	query := `SELECT ` + alertColumns + ` FROM alerts WHERE id = $1;`

	alert, err := scanAlert(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &models.NotFoundError{Entity: "alert", ID: id.String()}
		}
		return nil, fmt.Errorf("failed to get alert by id: %w", err)
	}
	return alert, nil
}

// UpdateStatus выполняет условное обновление статуса: строка изменяется
// только при совпадении версии, иначе возвращается ErrVersionConflict
func (r *AlertRepository) UpdateStatus(ctx context.Context, alert *models.Alert, expectedVersion int64) error {
	query := `
		UPDATE alerts SET
			status = $1,
			description = $2,
			authority_id = $3,
			version = version + 1,
			updated_at = NOW()
		WHERE id = $4 AND version = $5;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		alert.Status,
		alert.Description,
		alert.AuthorityID,
		alert.ID,
		expectedVersion,
	)
	if err != nil {
		return fmt.Errorf("failed to update alert status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return models.ErrVersionConflict
	}
	alert.Version = expectedVersion + 1
	alert.UpdatedAt = time.Now()
	return nil
}

// FindRecentNear находит тревоги, созданные не ранее since в пределах
// radiusMeters от точки
func (r *AlertRepository) FindRecentNear(ctx context.Context, lat, lon, radiusMeters float64, since time.Time) ([]*models.Alert, error) {
	query := `
		SELECT ` + alertColumns + `
		FROM alerts
		WHERE
			created_at >= $1
			AND ST_DWithin(
				location,
				ST_SetSRID(ST_MakePoint($2, $3), 4326)::geography,
				$4
			);
	`
	rows, err := r.db.Query(ctx, query, since, lon, lat, radiusMeters)
	if err != nil {
		return nil, fmt.Errorf("failed to find recent alerts near location: %w", err)
	}
	defer rows.Close()

	alerts := make([]*models.Alert, 0)
	for rows.Next() {
		alert, err := scanAlert(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alert row in FindRecentNear: %w", err)
		}
		alerts = append(alerts, alert)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in FindRecentNear: %w", err)
	}
	return alerts, nil
}
