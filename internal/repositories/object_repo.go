package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/opsboard/backend/internal/models"
)

type ObjectRepo struct {
	pool *pgxpool.Pool
}

func NewObjectRepo(pool *pgxpool.Pool) *ObjectRepo {
	return &ObjectRepo{pool: pool}
}

func (r *ObjectRepo) Create(ctx context.Context, o *models.OperationalObject) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO objects (name, object_engineer_id, created_by)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, o.Name, o.ObjectEngineerID, o.CreatedBy,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
}

func (r *ObjectRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.OperationalObject, error) {
	var o models.OperationalObject
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, object_engineer_id, created_by, created_at, updated_at
		FROM objects WHERE id = $1
	`, id).Scan(&o.ID, &o.Name, &o.ObjectEngineerID, &o.CreatedBy, &o.CreatedAt, &o.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *ObjectRepo) List(ctx context.Context) ([]models.OperationalObject, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, object_engineer_id, created_by, created_at, updated_at
		FROM objects ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.OperationalObject
	for rows.Next() {
		var o models.OperationalObject
		if err := rows.Scan(&o.ID, &o.Name, &o.ObjectEngineerID, &o.CreatedBy, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *ObjectRepo) Update(ctx context.Context, o *models.OperationalObject) error {
	return r.pool.QueryRow(ctx, `
		UPDATE objects SET name = $2, object_engineer_id = $3, updated_at = now()
		WHERE id = $1
		RETURNING updated_at
	`, o.ID, o.Name, o.ObjectEngineerID).Scan(&o.UpdatedAt)
}

func (r *ObjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM objects WHERE id = $1`, id)
	return err
}

func (r *ObjectRepo) CountTasks(ctx context.Context, id uuid.UUID) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM tasks WHERE object_id = $1`, id).Scan(&n)
	return n, err
}
