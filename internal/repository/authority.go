package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/service"
)

type AuthorityRepository struct {
	db *pgxpool.Pool
}

func NewAuthorityRepository(db *pgxpool.Pool) service.AuthorityRepository {
	return &AuthorityRepository{db: db}
}

const authorityColumns = `
	id,
	name,
	department,
	region,
	on_duty,
	phone,
	email,
	created_at,
	updated_at`

func scanAuthority(row pgx.Row) (*models.Authority, error) {
	authority := &models.Authority{}
	err := row.Scan(
		&authority.ID,
		&authority.Name,
		&authority.Department,
		&authority.Region,
		&authority.OnDuty,
		&authority.Phone,
		&authority.Email,
		&authority.CreatedAt,
		&authority.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return authority, nil
}

// GetByID возвращает ответственного по его UUID
func (r *AuthorityRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Authority, error) {
	query := `SELECT ` + authorityColumns + ` FROM authorities WHERE id = $1;`

	authority, err := scanAuthority(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &models.NotFoundError{Entity: "authority", ID: id.String()}
		}
		return nil, fmt.Errorf("failed to get authority by id: %w", err)
	}
	return authority, nil
}

// ListOnDuty возвращает дежурных ответственных указанных служб.
// Пустой список служб означает все службы. Порядок стабильный, по времени
// создания: стратегия первого совпадения выбирает самого раннего.
func (r *AuthorityRepository) ListOnDuty(ctx context.Context, departments []models.Department) ([]*models.Authority, error) {
	query := `SELECT ` + authorityColumns + ` FROM authorities WHERE on_duty = TRUE`
	args := []any{}
	if len(departments) > 0 {
		query += ` AND department = ANY($1)`
		names := make([]string, len(departments))
		for i, d := range departments {
			names[i] = string(d)
		}
		args = append(args, names)
	}
	query += ` ORDER BY created_at;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list on-duty authorities: %w", err)
	}
	defer rows.Close()

	authorities := make([]*models.Authority, 0)
	for rows.Next() {
		authority, err := scanAuthority(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan authority row: %w", err)
		}
		authorities = append(authorities, authority)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in ListOnDuty: %w", err)
	}
	return authorities, nil
}
