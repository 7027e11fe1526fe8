package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/opsboard/backend/internal/models"
)

type CommentRepo struct {
	pool *pgxpool.Pool
}

func NewCommentRepo(pool *pgxpool.Pool) *CommentRepo {
	return &CommentRepo{pool: pool}
}

func (r *CommentRepo) Insert(ctx context.Context, c *models.TaskComment) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO task_comments (task_id, author_id, body, client_msg_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, c.TaskID, c.AuthorID, c.Body, c.ClientMsgID,
	).Scan(&c.ID, &c.CreatedAt)
}

// FindByClientMsgID looks up a prior submission with the same client token.
// A hit means the client retried and the stored comment should be returned
// instead of inserting a duplicate.
func (r *CommentRepo) FindByClientMsgID(ctx context.Context, taskID, authorID uuid.UUID, clientMsgID string) (*models.TaskComment, error) {
	var c models.TaskComment
	err := r.pool.QueryRow(ctx, `
		SELECT id, task_id, author_id, body, client_msg_id, created_at
		FROM task_comments
		WHERE task_id = $1 AND author_id = $2 AND client_msg_id = $3
	`, taskID, authorID, clientMsgID).Scan(&c.ID, &c.TaskID, &c.AuthorID, &c.Body, &c.ClientMsgID, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CommentRepo) ListByTask(ctx context.Context, taskID uuid.UUID) ([]models.TaskComment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT c.id, c.task_id, c.author_id, p.full_name, c.body, c.client_msg_id, c.created_at
		FROM task_comments c
		LEFT JOIN profiles p ON p.id = c.author_id
		WHERE c.task_id = $1
		ORDER BY c.created_at ASC
	`, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.TaskComment
	for rows.Next() {
		var c models.TaskComment
		if err := rows.Scan(&c.ID, &c.TaskID, &c.AuthorID, &c.AuthorName, &c.Body, &c.ClientMsgID, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
