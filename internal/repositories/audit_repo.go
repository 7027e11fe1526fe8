package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/opsboard/backend/internal/models"
)

type AuditRepo struct {
	pool *pgxpool.Pool
}

func NewAuditRepo(pool *pgxpool.Pool) *AuditRepo {
	return &AuditRepo{pool: pool}
}

// Log appends one entry. Unknown actions are rejected here as the last line
// of defense; the table itself has no update or delete paths.
func (r *AuditRepo) Log(ctx context.Context, entry models.AuditLog) error {
	if !models.IsValidAuditAction(entry.Action) {
		return fmt.Errorf("unknown audit action %q", entry.Action)
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO audit_log (actor_id, action, entity_type, entity_id, meta)
		VALUES ($1, $2, $3, $4, $5)
	`, entry.ActorID, entry.Action, entry.EntityType, entry.EntityID, entry.Meta)
	return err
}

func (r *AuditRepo) ListByEntity(ctx context.Context, entityType string, entityID uuid.UUID, limit, offset int) ([]models.AuditLog, error) {
	if limit <= 0 {
		limit = 50
	}
	return r.query(ctx, `
		SELECT id, actor_id, action, entity_type, entity_id, meta, created_at
		FROM audit_log WHERE entity_type = $1 AND entity_id = $2
		ORDER BY created_at DESC LIMIT $3 OFFSET $4
	`, entityType, entityID, limit, offset)
}

func (r *AuditRepo) ListAll(ctx context.Context, limit, offset int) ([]models.AuditLog, error) {
	if limit <= 0 {
		limit = 100
	}
	return r.query(ctx, `
		SELECT id, actor_id, action, entity_type, entity_id, meta, created_at
		FROM audit_log
		ORDER BY created_at DESC LIMIT $1 OFFSET $2
	`, limit, offset)
}

func (r *AuditRepo) query(ctx context.Context, sql string, args ...any) ([]models.AuditLog, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []models.AuditLog
	for rows.Next() {
		var l models.AuditLog
		if err := rows.Scan(&l.ID, &l.ActorID, &l.Action, &l.EntityType, &l.EntityID, &l.Meta, &l.CreatedAt); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}
