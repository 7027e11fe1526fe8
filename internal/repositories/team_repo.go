package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TeamRepo struct {
	pool *pgxpool.Pool
}

func NewTeamRepo(pool *pgxpool.Pool) *TeamRepo {
	return &TeamRepo{pool: pool}
}

// Add is idempotent: re-adding an existing member is a no-op and the
// returned flag reports whether a row was actually inserted.
func (r *TeamRepo) Add(ctx context.Context, taskID, userID, addedBy uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		INSERT INTO task_team_members (task_id, user_id, added_by)
		VALUES ($1, $2, $3)
		ON CONFLICT (task_id, user_id) DO NOTHING
	`, taskID, userID, addedBy)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *TeamRepo) Remove(ctx context.Context, taskID, userID uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM task_team_members WHERE task_id = $1 AND user_id = $2
	`, taskID, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *TeamRepo) MemberIDs(ctx context.Context, taskID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT user_id FROM task_team_members WHERE task_id = $1
	`, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
