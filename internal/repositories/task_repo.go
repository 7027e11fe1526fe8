package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/opsboard/backend/internal/models"
	"github.com/opsboard/backend/internal/rbac"
)

type TaskRepo struct {
	pool *pgxpool.Pool
}

func NewTaskRepo(pool *pgxpool.Pool) *TaskRepo {
	return &TaskRepo{pool: pool}
}

// ListKind selects which slice of the task table a listing covers.
const (
	ListMy      = "my"
	ListNew     = "new"
	ListArchive = "archive"
)

// TaskFilter narrows a listing. ViewerID plus RestrictToInvolved implement
// the visibility rule for non-admin viewers of the "new" feed.
type TaskFilter struct {
	Kind               string
	ViewerID           uuid.UUID
	RestrictToInvolved bool
	Status             *string
	Priority           *string
	ObjectID           *uuid.UUID
	AssigneeID         *uuid.UUID
	TeamMemberID       *uuid.UUID
	TitleQuery         string
	Due                string // "overdue", "today" or "week"
	Limit              int
	Offset             int
}

const taskWithRefsColumns = `
	t.id, t.title, t.description, t.object_id, t.status, t.priority,
	t.due_at, t.resume_at, t.pause_reason, t.created_by, t.assigned_to,
	t.accepted_at, t.completed_at, t.archived_at, t.created_at, t.updated_at,
	o.name, o.object_engineer_id, p.full_name
`

func scanTaskWithRefs(row pgx.Row, t *models.TaskWithRefs) error {
	return row.Scan(
		&t.ID, &t.Title, &t.Description, &t.ObjectID, &t.Status, &t.Priority,
		&t.DueAt, &t.ResumeAt, &t.PauseReason, &t.CreatedBy, &t.AssignedTo,
		&t.AcceptedAt, &t.CompletedAt, &t.ArchivedAt, &t.CreatedAt, &t.UpdatedAt,
		&t.ObjectName, &t.ObjectEngineerID, &t.AssigneeName,
	)
}

func (r *TaskRepo) Create(ctx context.Context, t *models.Task) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO tasks (title, description, object_id, status, priority, due_at, created_by, assigned_to)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`, t.Title, t.Description, t.ObjectID, t.Status, t.Priority, t.DueAt, t.CreatedBy, t.AssignedTo,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

func (r *TaskRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	var t models.Task
	err := r.pool.QueryRow(ctx, `
		SELECT id, title, description, object_id, status, priority, due_at,
		       resume_at, pause_reason, created_by, assigned_to,
		       accepted_at, completed_at, archived_at, created_at, updated_at
		FROM tasks WHERE id = $1
	`, id).Scan(
		&t.ID, &t.Title, &t.Description, &t.ObjectID, &t.Status, &t.Priority, &t.DueAt,
		&t.ResumeAt, &t.PauseReason, &t.CreatedBy, &t.AssignedTo,
		&t.AcceptedAt, &t.CompletedAt, &t.ArchivedAt, &t.CreatedAt, &t.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TaskRepo) GetWithRefs(ctx context.Context, id uuid.UUID) (*models.TaskWithRefs, error) {
	var t models.TaskWithRefs
	err := scanTaskWithRefs(r.pool.QueryRow(ctx, `
		SELECT `+taskWithRefsColumns+`
		FROM tasks t
		JOIN objects o ON o.id = t.object_id
		LEFT JOIN profiles p ON p.id = t.assigned_to
		WHERE t.id = $1
	`, id), &t)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	team, err := r.listTeam(ctx, id)
	if err != nil {
		return nil, err
	}
	t.TeamMembers = team
	return &t, nil
}

func (r *TaskRepo) listTeam(ctx context.Context, taskID uuid.UUID) ([]models.TeamEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT m.user_id, p.full_name, m.added_by, m.created_at
		FROM task_team_members m
		LEFT JOIN profiles p ON p.id = m.user_id
		WHERE m.task_id = $1
		ORDER BY m.created_at ASC
	`, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var team []models.TeamEntry
	for rows.Next() {
		var e models.TeamEntry
		if err := rows.Scan(&e.UserID, &e.MemberName, &e.AddedBy, &e.CreatedAt); err != nil {
			return nil, err
		}
		team = append(team, e)
	}
	return team, rows.Err()
}

// GetAccessRow loads exactly what the access predicates need: the task's
// identity fields, the team member ids and the object's engineer. One round
// trip per authorization check.
func (r *TaskRepo) GetAccessRow(ctx context.Context, id uuid.UUID) (*rbac.TaskAccess, []uuid.UUID, *uuid.UUID, error) {
	var ta rbac.TaskAccess
	var team []uuid.UUID
	var engineerID *uuid.UUID
	err := r.pool.QueryRow(ctx, `
		SELECT t.id, t.status, t.object_id, t.created_by, t.assigned_to,
		       o.object_engineer_id,
		       COALESCE(array_agg(m.user_id) FILTER (WHERE m.user_id IS NOT NULL), ARRAY[]::uuid[])
		FROM tasks t
		JOIN objects o ON o.id = t.object_id
		LEFT JOIN task_team_members m ON m.task_id = t.id
		WHERE t.id = $1
		GROUP BY t.id, t.status, t.object_id, t.created_by, t.assigned_to, o.object_engineer_id
	`, id).Scan(&ta.ID, &ta.Status, &ta.ObjectID, &ta.CreatedBy, &ta.AssignedTo, &engineerID, &team)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil, nil, nil
	}
	if err != nil {
		return nil, nil, nil, err
	}
	return &ta, team, engineerID, nil
}

func (r *TaskRepo) Update(ctx context.Context, t *models.Task) error {
	return r.pool.QueryRow(ctx, `
		UPDATE tasks SET title = $2, description = $3, object_id = $4, priority = $5,
		       due_at = $6, assigned_to = $7, updated_at = now()
		WHERE id = $1
		RETURNING updated_at
	`, t.ID, t.Title, t.Description, t.ObjectID, t.Priority, t.DueAt, t.AssignedTo).Scan(&t.UpdatedAt)
}

// ApplyStatus writes a direct transition. resume_at and pause_reason are
// cleared unconditionally so the pause fields never survive a transition.
// Lifecycle stamps are only written when the patch carries them.
func (r *TaskRepo) ApplyStatus(ctx context.Context, id uuid.UUID, p models.StatusPatch) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE tasks SET status = $2,
		       accepted_at = COALESCE(accepted_at, $3),
		       completed_at = COALESCE(completed_at, $4),
		       resume_at = NULL, pause_reason = NULL,
		       updated_at = now()
		WHERE id = $1
	`, id, p.Status, p.AcceptedAt, p.CompletedAt)
	return err
}

// Pause delegates to the pause_task procedure so the status flip and the
// pause metadata land in one atomic statement.
func (r *TaskRepo) Pause(ctx context.Context, id uuid.UUID, reason string, resumeAt time.Time) error {
	_, err := r.pool.Exec(ctx, `SELECT pause_task($1, $2, $3)`, id, reason, resumeAt)
	return err
}

// ArchiveDone stamps archived_at on done tasks older than the threshold via
// the archive_done_tasks procedure and reports how many rows it touched.
func (r *TaskRepo) ArchiveDone(ctx context.Context, thresholdHours int) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT archive_done_tasks($1)`, thresholdHours).Scan(&n)
	return n, err
}

func (r *TaskRepo) List(ctx context.Context, f TaskFilter) ([]models.TaskWithRefs, error) {
	query := `
		SELECT ` + taskWithRefsColumns + `
		FROM tasks t
		JOIN objects o ON o.id = t.object_id
		LEFT JOIN profiles p ON p.id = t.assigned_to
	`
	args := []any{}
	where := []string{}

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	involved := func(userID uuid.UUID) string {
		p := arg(userID)
		return fmt.Sprintf(`(t.assigned_to = %s OR EXISTS (
			SELECT 1 FROM task_team_members m WHERE m.task_id = t.id AND m.user_id = %s))`, p, p)
	}

	switch f.Kind {
	case ListArchive:
		where = append(where, "t.archived_at IS NOT NULL")
	case ListNew:
		where = append(where, "t.archived_at IS NULL", "t.status = 'new'")
		if f.RestrictToInvolved {
			where = append(where, involved(f.ViewerID))
		}
	default: // my
		where = append(where, "t.archived_at IS NULL", involved(f.ViewerID))
	}

	if f.Status != nil {
		where = append(where, "t.status = "+arg(*f.Status))
	}
	if f.Priority != nil {
		where = append(where, "t.priority = "+arg(*f.Priority))
	}
	if f.ObjectID != nil {
		where = append(where, "t.object_id = "+arg(*f.ObjectID))
	}
	if f.AssigneeID != nil {
		where = append(where, "t.assigned_to = "+arg(*f.AssigneeID))
	}
	if f.TeamMemberID != nil {
		where = append(where, "EXISTS (SELECT 1 FROM task_team_members m WHERE m.task_id = t.id AND m.user_id = "+arg(*f.TeamMemberID)+")")
	}
	if f.TitleQuery != "" {
		where = append(where, "t.title ILIKE "+arg("%"+f.TitleQuery+"%"))
	}
	switch f.Due {
	case "overdue":
		where = append(where, "t.due_at < now()", "t.status <> 'done'")
	case "today":
		where = append(where, "t.due_at >= date_trunc('day', now())", "t.due_at < date_trunc('day', now()) + interval '1 day'")
	case "week":
		where = append(where, "t.due_at >= now()", "t.due_at < now() + interval '7 days'")
	}

	for i, w := range where {
		if i == 0 {
			query += " WHERE " + w
		} else {
			query += " AND " + w
		}
	}
	query += " ORDER BY t.due_at ASC NULLS LAST, t.created_at DESC"
	if f.Limit > 0 {
		query += " LIMIT " + arg(f.Limit)
	}
	if f.Offset > 0 {
		query += " OFFSET " + arg(f.Offset)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.TaskWithRefs
	for rows.Next() {
		var t models.TaskWithRefs
		if err := scanTaskWithRefs(rows, &t); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
