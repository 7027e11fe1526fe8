package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/opsboard/backend/internal/models"
)

type ProfileRepo struct {
	pool *pgxpool.Pool
}

func NewProfileRepo(pool *pgxpool.Pool) *ProfileRepo {
	return &ProfileRepo{pool: pool}
}

func (r *ProfileRepo) Create(ctx context.Context, p *models.Profile) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO profiles (email, full_name, role, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, p.Email, p.FullName, p.Role, p.PasswordHash,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *ProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	var p models.Profile
	err := r.pool.QueryRow(ctx, `
		SELECT id, email, full_name, role, created_at, updated_at
		FROM profiles WHERE id = $1
	`, id).Scan(&p.ID, &p.Email, &p.FullName, &p.Role, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByEmail includes the password hash; it exists for login only.
func (r *ProfileRepo) GetByEmail(ctx context.Context, email string) (*models.Profile, error) {
	var p models.Profile
	err := r.pool.QueryRow(ctx, `
		SELECT id, email, full_name, role, password_hash, created_at, updated_at
		FROM profiles WHERE lower(email) = lower($1)
	`, email).Scan(&p.ID, &p.Email, &p.FullName, &p.Role, &p.PasswordHash, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProfileRepo) List(ctx context.Context) ([]models.Profile, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, email, full_name, role, created_at, updated_at
		FROM profiles ORDER BY full_name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Profile
	for rows.Next() {
		var p models.Profile
		if err := rows.Scan(&p.ID, &p.Email, &p.FullName, &p.Role, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// NamesByIDs resolves display names for a batch of user ids in one query.
// Missing ids are simply absent from the result map.
func (r *ProfileRepo) NamesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	names := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, full_name FROM profiles WHERE id = ANY($1)
	`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		names[id] = name
	}
	return names, rows.Err()
}

func (r *ProfileRepo) Update(ctx context.Context, p *models.Profile) error {
	return r.pool.QueryRow(ctx, `
		UPDATE profiles SET email = $2, full_name = $3, role = $4, updated_at = now()
		WHERE id = $1
		RETURNING updated_at
	`, p.ID, p.Email, p.FullName, p.Role).Scan(&p.UpdatedAt)
}

func (r *ProfileRepo) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE profiles SET password_hash = $2, updated_at = now() WHERE id = $1
	`, id, hash)
	return err
}

func (r *ProfileRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM profiles WHERE id = $1`, id)
	return err
}

// CountTaskReferences counts live task rows that point at the user as
// creator, assignee or team member. Deletion is refused while any exist.
func (r *ProfileRepo) CountTaskReferences(ctx context.Context, id uuid.UUID) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `
		SELECT count(*) FROM tasks t
		WHERE t.created_by = $1 OR t.assigned_to = $1
		   OR EXISTS (SELECT 1 FROM task_team_members m WHERE m.task_id = t.id AND m.user_id = $1)
	`, id).Scan(&n)
	return n, err
}
