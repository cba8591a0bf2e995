package repository

import (
	"context"
	"encoding/json"
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

// zoneCacheTTL - срок жизни кеша зоны в Redis
const zoneCacheTTL = 5 * time.Minute

type ZoneRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewZoneRepository(db *pgxpool.Pool, redisClient *redis.Client) service.ZoneRepository {
	return &ZoneRepository{
		db:          db,
		redisClient: redisClient,
	}
}

const zoneColumns = `
	id,
	name,
	kind,
	ST_Y(center::geometry) as latitude,
	ST_X(center::geometry) as longitude,
	radius_meters,
	region,
	active,
	created_at,
	updated_at`

func scanZone(row pgx.Row) (*models.Zone, error) {
	zone := &models.Zone{}
	err := row.Scan(
		&zone.ID,
		&zone.Name,
		&zone.Kind,
		&zone.Center.Latitude,
		&zone.Center.Longitude,
		&zone.RadiusMeters,
		&zone.Region,
		&zone.Active,
		&zone.CreatedAt,
		&zone.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return zone, nil
}

// Create создает новую запись о геозоне в бд
func (r *ZoneRepository) Create(ctx context.Context, zone *models.Zone) error {
	query := `
		INSERT INTO zones (name, kind, center, radius_meters, region, active)
		VALUES ($1, $2, ST_SetSRID(ST_MakePoint($3, $4), 4326), $5, $6, $7) RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		zone.Name,
		zone.Kind,
		zone.Center.Longitude,
		zone.Center.Latitude,
		zone.RadiusMeters,
		zone.Region,
		zone.Active,
	).Scan(&zone.ID, &zone.CreatedAt, &zone.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create zone: %w", err)
	}
	return nil
}

// GetByID возвращает геозону по её UUID
func (r *ZoneRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Zone, error) {
	query := `SELECT ` + zoneColumns + ` FROM zones WHERE id = $1;`

	zone, err := scanZone(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &models.NotFoundError{Entity: "zone", ID: id.String()}
		}
		return nil, fmt.Errorf("failed to get zone by id: %w", err)
	}
	return zone, nil
}

// Update обновляет существующую геозону
func (r *ZoneRepository) Update(ctx context.Context, zone *models.Zone) error {
	query := `
		UPDATE zones SET
			name = $1,
			kind = $2,
			center = ST_SetSRID(ST_MakePoint($3, $4), 4326),
			radius_meters = $5,
			region = $6,
			active = $7,
			updated_at = NOW()
		WHERE id = $8;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		zone.Name,
		zone.Kind,
		zone.Center.Longitude,
		zone.Center.Latitude,
		zone.RadiusMeters,
		zone.Region,
		zone.Active,
		zone.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update zone: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return &models.NotFoundError{Entity: "zone", ID: zone.ID.String()}
	}
	return nil
}

// Delete(деактивация) снимает флаг active у геозоны
func (r *ZoneRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE zones SET
			active = FALSE,
			updated_at = NOW()
		WHERE id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate zone: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return &models.NotFoundError{Entity: "zone", ID: id.String()}
	}
	return nil
}

// ListZones возвращает список геозон с пагинацией
func (r *ZoneRepository) ListZones(ctx context.Context, page, pageSize int) ([]*models.Zone, error) {
	offset := (page - 1) * pageSize

	query := `SELECT ` + zoneColumns + ` FROM zones ORDER BY created_at DESC LIMIT $1 OFFSET $2;`
	rows, err := r.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list zones: %w", err)
	}
	defer rows.Close()

	zones := make([]*models.Zone, 0)
	for rows.Next() {
		zone, err := scanZone(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan zone row: %w", err)
		}
		zones = append(zones, zone)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return zones, nil
}

// ListActive возвращает все активные геозоны для снимка в памяти
func (r *ZoneRepository) ListActive(ctx context.Context) ([]*models.Zone, error) {
	query := `SELECT ` + zoneColumns + ` FROM zones WHERE active = TRUE;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active zones: %w", err)
	}
	defer rows.Close()

	zones := make([]*models.Zone, 0)
	for rows.Next() {
		zone, err := scanZone(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan zone row in ListActive: %w", err)
		}
		zones = append(zones, zone)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in ListActive: %w", err)
	}
	return zones, nil
}

// GetZoneFromCache пытается получить геозону из Redis
func (r *ZoneRepository) GetZoneFromCache(ctx context.Context, id uuid.UUID) (*models.Zone, error) {
	key := fmt.Sprintf("zone:%s", id.String())
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get zone from cache: %w", err)
	}

	zone := &models.Zone{}
	if err := json.Unmarshal(val, zone); err != nil {
		return nil, fmt.Errorf("failed to unmarshal zone from cache: %w", err)
	}
	return zone, nil
}

// SetZoneCache сохраняет геозону в Redis
func (r *ZoneRepository) SetZoneCache(ctx context.Context, zone *models.Zone) error {
	key := fmt.Sprintf("zone:%s", zone.ID.String())
	val, err := json.Marshal(zone)
	if err != nil {
		return fmt.Errorf("failed to marshal zone for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, key, val, zoneCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set zone in cache: %w", err)
	}
	return nil
}

// InvalidateZoneCache удаляет геозону из Redis кэша
func (r *ZoneRepository) InvalidateZoneCache(ctx context.Context, id uuid.UUID) error {
	key := fmt.Sprintf("zone:%s", id.String())
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate zone cache: %w", err)
	}
	return nil
}
