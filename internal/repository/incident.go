package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/service"
)

// referenceSeqTTL - срок жизни суточного счетчика номеров в Redis.
// 48 часов покрывают запросы на границе суток.
const referenceSeqTTL = 48 * time.Hour

type IncidentRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewIncidentRepository(db *pgxpool.Pool, redisClient *redis.Client) service.IncidentRepository {
	return &IncidentRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// CreateWithAlert создает инцидент и связанную тревогу в одной транзакции:
// наблюдатель видит либо обе записи, либо ни одной
func (r *IncidentRepository) CreateWithAlert(ctx context.Context, incident *models.Incident, alert *models.Alert) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin incident transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	alertQuery := `
		INSERT INTO alerts (id, kind, tourist_id, location, severity, status, description, version)
		VALUES ($1, $2, $3, ST_SetSRID(ST_MakePoint($4, $5), 4326), $6, $7, $8, $9) RETURNING created_at, updated_at;
	`
	err = tx.QueryRow(ctx, alertQuery,
		alert.ID,
		alert.Kind,
		alert.TouristID,
		alert.Location.Longitude,
		alert.Location.Latitude,
		alert.Severity,
		alert.Status,
		alert.Description,
		alert.Version,
	).Scan(&alert.CreatedAt, &alert.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create linked alert: %w", err)
	}

	incidentQuery := `
		INSERT INTO incidents (id, reporter_id, reference_number, type, title, description, location, severity, witnesses, evidence_refs, alert_id, status)
		VALUES ($1, $2, $3, $4, $5, $6, ST_SetSRID(ST_MakePoint($7, $8), 4326), $9, $10, $11, $12, $13) RETURNING created_at, updated_at;
	`
	err = tx.QueryRow(ctx, incidentQuery,
		incident.ID,
		incident.ReporterID,
		incident.ReferenceNumber,
		incident.Type,
		incident.Title,
		incident.Description,
		incident.Location.Longitude,
		incident.Location.Latitude,
		incident.Severity,
		incident.Witnesses,
		incident.EvidenceRefs,
		incident.AlertID,
		incident.Status,
	).Scan(&incident.CreatedAt, &incident.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit incident transaction: %w", err)
	}
	return nil
}

// GetByID возвращает инцидент по его UUID
func (r *IncidentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	incident := &models.Incident{}
	query := `
		SELECT
			id,
			reporter_id,
			reference_number,
			type,
			title,
			description,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			severity,
			witnesses,
			evidence_refs,
			assigned_authority_id,
			alert_id,
			status,
			created_at,
			updated_at
		FROM incidents
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&incident.ID,
		&incident.ReporterID,
		&incident.ReferenceNumber,
		&incident.Type,
		&incident.Title,
		&incident.Description,
		&incident.Location.Latitude,
		&incident.Location.Longitude,
		&incident.Severity,
		&incident.Witnesses,
		&incident.EvidenceRefs,
		&incident.AssignedAuthorityID,
		&incident.AlertID,
		&incident.Status,
		&incident.CreatedAt,
		&incident.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &models.NotFoundError{Entity: "incident", ID: id.String()}
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}
	return incident, nil
}

// NextReferenceSeq возвращает следующее значение суточного счетчика
// регистрационных номеров. INCR атомарен, поэтому два инцидента в одну и ту
// же миллисекунду получают разные номера.
func (r *IncidentRepository) NextReferenceSeq(ctx context.Context, day string) (int64, error) {
	key := fmt.Sprintf("incident_seq:%s", day)
	seq, err := r.redisClient.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment incident reference counter: %w", err)
	}
	if seq == 1 {
		if err := r.redisClient.Expire(ctx, key, referenceSeqTTL).Err(); err != nil {
			return 0, fmt.Errorf("failed to set incident reference counter TTL: %w", err)
		}
	}
	return seq, nil
}

// AssignAuthority закрепляет ответственного за инцидентом
func (r *IncidentRepository) AssignAuthority(ctx context.Context, incidentID, authorityID uuid.UUID) error {
	query := `
		UPDATE incidents SET
			assigned_authority_id = $1,
			status = $2,
			updated_at = NOW()
		WHERE id = $3;
	`
	cmdTag, err := r.db.Exec(ctx, query, authorityID, models.IncidentStatusInProgress, incidentID)
	if err != nil {
		return fmt.Errorf("failed to assign authority to incident: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return &models.NotFoundError{Entity: "incident", ID: incidentID.String()}
	}
	return nil
}
