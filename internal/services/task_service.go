package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/opsboard/backend/internal/apperr"
	"github.com/opsboard/backend/internal/events"
	"github.com/opsboard/backend/internal/models"
	"github.com/opsboard/backend/internal/rbac"
	"github.com/opsboard/backend/internal/repositories"
	"github.com/opsboard/backend/internal/tasksort"
)

const minPauseReasonLen = 5

type TaskService struct {
	taskRepo    *repositories.TaskRepo
	teamRepo    *repositories.TeamRepo
	commentRepo *repositories.CommentRepo
	objectRepo  *repositories.ObjectRepo
	profileRepo *repositories.ProfileRepo
	auditRepo   *repositories.AuditRepo
	notifier    *Notifier
	log         *zap.Logger
}

func NewTaskService(
	taskRepo *repositories.TaskRepo,
	teamRepo *repositories.TeamRepo,
	commentRepo *repositories.CommentRepo,
	objectRepo *repositories.ObjectRepo,
	profileRepo *repositories.ProfileRepo,
	auditRepo *repositories.AuditRepo,
	notifier *Notifier,
	log *zap.Logger,
) *TaskService {
	return &TaskService{
		taskRepo:    taskRepo,
		teamRepo:    teamRepo,
		commentRepo: commentRepo,
		objectRepo:  objectRepo,
		profileRepo: profileRepo,
		auditRepo:   auditRepo,
		notifier:    notifier,
		log:         log,
	}
}

type CreateTaskInput struct {
	Title       string
	Description *string
	ObjectID    uuid.UUID
	Priority    string
	DueAt       *time.Time
	AssignedTo  uuid.UUID
}

func (s *TaskService) Create(ctx context.Context, actor *models.Profile, in CreateTaskInput) (*models.TaskWithRefs, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return nil, apperr.Validation("title is required")
	}
	if in.Priority == "" {
		in.Priority = models.PriorityMedium
	}
	if !models.IsValidPriority(in.Priority) {
		return nil, apperr.Validation("unknown priority %q", in.Priority)
	}

	obj, err := s.objectRepo.GetByID(ctx, in.ObjectID)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, apperr.NotFound("object")
	}
	assignee, err := s.profileRepo.GetByID(ctx, in.AssignedTo)
	if err != nil {
		return nil, err
	}
	if assignee == nil {
		return nil, apperr.NotFound("assignee")
	}

	scoped := obj.ObjectEngineerID != nil && *obj.ObjectEngineerID == actor.ID
	if !rbac.CanCreateOrAssignTask(actor.Role, assignee.Role, scoped) {
		return nil, apperr.Authorization("")
	}

	task := &models.Task{
		Title:       in.Title,
		Description: in.Description,
		ObjectID:    in.ObjectID,
		Status:      models.TaskStatusNew,
		Priority:    in.Priority,
		DueAt:       in.DueAt,
		CreatedBy:   actor.ID,
		AssignedTo:  in.AssignedTo,
	}
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}

	if err := s.audit(ctx, actor.ID, models.AuditCreateTask, models.EntityTask, task.ID, map[string]any{
		"title":       task.Title,
		"object_id":   task.ObjectID.String(),
		"assigned_to": task.AssignedTo.String(),
		"priority":    task.Priority,
	}); err != nil {
		return nil, err
	}
	s.notifier.TaskEvent(events.EventTaskCreated, map[string]any{
		"task_id":     task.ID.String(),
		"assigned_to": task.AssignedTo.String(),
	})
	if task.AssignedTo != actor.ID {
		s.notifier.Push([]uuid.UUID{task.AssignedTo},
			"New task: "+task.Title, actor.FullName+" assigned a task to you", task.ID)
	}

	return s.taskRepo.GetWithRefs(ctx, task.ID)
}

type UpdateTaskInput struct {
	Title       *string
	Description *string
	ObjectID    *uuid.UUID
	Priority    *string
	DueAt       *time.Time
	ClearDueAt  bool
	AssignedTo  *uuid.UUID
}

func (s *TaskService) Update(ctx context.Context, actor *models.Profile, taskID uuid.UUID, in UpdateTaskInput) (*models.TaskWithRefs, error) {
	if !rbac.CanEditTasks(actor.Role) {
		return nil, apperr.Authorization("")
	}
	task, access, team, engineerID, err := s.loadTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if !rbac.CanReadTask(actor.Role, actor.ID, *access, team, engineerID) {
		return nil, apperr.Authorization("")
	}
	if task.ArchivedAt != nil {
		return nil, apperr.Conflict("task is archived")
	}

	meta := map[string]any{}
	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, apperr.Validation("title is required")
		}
		meta["title"] = title
		task.Title = title
	}
	if in.Description != nil {
		task.Description = in.Description
	}
	if in.Priority != nil {
		if !models.IsValidPriority(*in.Priority) {
			return nil, apperr.Validation("unknown priority %q", *in.Priority)
		}
		meta["priority"] = *in.Priority
		task.Priority = *in.Priority
	}
	if in.ClearDueAt {
		task.DueAt = nil
	} else if in.DueAt != nil {
		task.DueAt = in.DueAt
	}
	if in.ObjectID != nil && *in.ObjectID != task.ObjectID {
		obj, err := s.objectRepo.GetByID(ctx, *in.ObjectID)
		if err != nil {
			return nil, err
		}
		if obj == nil {
			return nil, apperr.NotFound("object")
		}
		meta["object_id"] = obj.ID.String()
		task.ObjectID = obj.ID
	}

	reassigned := in.AssignedTo != nil && *in.AssignedTo != task.AssignedTo
	if reassigned {
		target, err := s.profileRepo.GetByID(ctx, *in.AssignedTo)
		if err != nil {
			return nil, err
		}
		if target == nil {
			return nil, apperr.NotFound("assignee")
		}
		scoped := engineerID != nil && *engineerID == actor.ID
		if !rbac.CanCreateOrAssignTask(actor.Role, target.Role, scoped) {
			return nil, apperr.Authorization("")
		}
		task.AssignedTo = target.ID
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}

	if len(meta) > 0 {
		if err := s.audit(ctx, actor.ID, models.AuditUpdateTask, models.EntityTask, task.ID, meta); err != nil {
			return nil, err
		}
	}
	if reassigned {
		if err := s.audit(ctx, actor.ID, models.AuditAssignTask, models.EntityTask, task.ID, map[string]any{
			"assigned_to": task.AssignedTo.String(),
		}); err != nil {
			return nil, err
		}
		s.notifier.TaskEvent(events.EventTaskAssigned, map[string]any{
			"task_id":     task.ID.String(),
			"assigned_to": task.AssignedTo.String(),
		})
		if task.AssignedTo != actor.ID {
			s.notifier.Push([]uuid.UUID{task.AssignedTo},
				"Task assigned: "+task.Title, actor.FullName+" assigned a task to you", task.ID)
		}
	}

	return s.taskRepo.GetWithRefs(ctx, task.ID)
}

func (s *TaskService) Get(ctx context.Context, actor *models.Profile, taskID uuid.UUID) (*models.TaskWithRefs, error) {
	access, team, engineerID, err := s.taskRepo.GetAccessRow(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if access == nil {
		return nil, apperr.NotFound("task")
	}
	if !rbac.CanReadTask(actor.Role, actor.ID, *access, team, engineerID) {
		return nil, apperr.Authorization("")
	}
	t, err := s.taskRepo.GetWithRefs(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, apperr.NotFound("task")
	}
	return t, nil
}

type ListTasksInput struct {
	Kind         string
	Status       *string
	Priority     *string
	ObjectID     *uuid.UUID
	AssigneeID   *uuid.UUID
	TeamMemberID *uuid.UUID
	TitleQuery   string
	Due          string
	Sort         string
	Limit        int
	Offset       int
}

// feedRestricted reports whether a listing kind is narrowed to tasks the
// viewer participates in. Only the unassigned feed is scoped that way for
// non-superusers; the archive is a shared record and stays open to every
// authenticated role.
func feedRestricted(kind, role string) bool {
	return kind == repositories.ListNew && !rbac.IsSuperuser(role)
}

func (s *TaskService) List(ctx context.Context, actor *models.Profile, in ListTasksInput) ([]models.TaskWithRefs, error) {
	if in.Status != nil && !models.IsValidStatus(*in.Status) {
		return nil, apperr.Validation("unknown status %q", *in.Status)
	}
	if in.Priority != nil && !models.IsValidPriority(*in.Priority) {
		return nil, apperr.Validation("unknown priority %q", *in.Priority)
	}

	f := repositories.TaskFilter{
		Kind:         in.Kind,
		ViewerID:     actor.ID,
		Status:       in.Status,
		Priority:     in.Priority,
		ObjectID:     in.ObjectID,
		AssigneeID:   in.AssigneeID,
		TeamMemberID: in.TeamMemberID,
		TitleQuery:   strings.TrimSpace(in.TitleQuery),
		Due:          in.Due,
		Limit:        in.Limit,
		Offset:       in.Offset,
	}
	f.RestrictToInvolved = feedRestricted(in.Kind, actor.Role)

	tasks, err := s.taskRepo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return tasksort.Sort(tasks, in.Sort, time.Now()), nil
}

// UpdateStatus performs a direct transition. Paused is not reachable here;
// a request naming it is malformed, not merely forbidden.
func (s *TaskService) UpdateStatus(ctx context.Context, actor *models.Profile, taskID uuid.UUID, to string) (*models.TaskWithRefs, error) {
	return s.transition(ctx, actor, taskID, to, models.AuditStatusChange)
}

/// TakeInWork is the accept shortcut: the assignee (or a team member) pulls a
// task into in_progress. Audited as an accept rather than a plain status flip.
func (s *TaskService) TakeInWork(ctx context.Context, actor *models.Profile, taskID uuid.UUID) (*models.TaskWithRefs, error) {
	return s.transition(ctx, actor, taskID, models.TaskStatusInProgress, models.AuditAccept)
}

func (s *TaskService) transition(ctx context.Context, actor *models.Profile, taskID uuid.UUID, to, auditAction string) (*models.TaskWithRefs, error) {
	if !models.IsValidStatus(to) {
		return nil, apperr.Validation("unknown status %q", to)
	}
	if !models.CanSetStatusDirectly(to) {
		return nil, apperr.Validation("status %q requires the pause operation", to)
	}

	task, access, team, _, err := s.loadTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if !rbac.CanChangeStatus(*access, rbac.Actor{ID: actor.ID, Role: actor.Role}, team) {
		return nil, apperr.Authorization("")
	}
	if task.ArchivedAt != nil {
		return nil, apperr.Conflict("task is archived")
	}

	from := task.Status
	patch := models.BuildStatusPatch(task, to, time.Now())
	if err := s.taskRepo.ApplyStatus(ctx, task.ID, patch); err != nil {
		return nil, err
	}

	if err := s.audit(ctx, actor.ID, auditAction, models.EntityTask, task.ID, map[string]any{
		"from": from,
		"to":   to,
	}); err != nil {
		return nil, err
	}
	s.notifier.TaskEvent(events.EventTaskStatusChanged, map[string]any{
		"task_id": task.ID.String(),
		"from":    from,
		"to":      to,
	})
	s.notifyOthers(*access, team, actor.ID, statusTitle(to)+": "+task.Title,
		actor.FullName+" moved the task to "+to, task.ID)

	return s.taskRepo.GetWithRefs(ctx, task.ID)
}

// Pause validates its inputs before touching authorization, so a malformed
// request is reported as such even to callers who could never pause the task.
func (s *TaskService) Pause(ctx context.Context, actor *models.Profile, taskID uuid.UUID, reason string, resumeAt time.Time) (*models.TaskWithRefs, error) {
	reason = strings.TrimSpace(reason)
	if len([]rune(reason)) < minPauseReasonLen {
		return nil, apperr.Validation("pause reason must be at least %d characters", minPauseReasonLen)
	}
	if !resumeAt.After(time.Now()) {
		return nil, apperr.Validation("resume time must be in the future")
	}

	task, access, team, _, err := s.loadTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if !rbac.CanChangeStatus(*access, rbac.Actor{ID: actor.ID, Role: actor.Role}, team) {
		return nil, apperr.Authorization("")
	}
	if task.ArchivedAt != nil {
		return nil, apperr.Conflict("task is archived")
	}

	if err := s.taskRepo.Pause(ctx, task.ID, reason, resumeAt); err != nil {
		return nil, err
	}

	if err := s.audit(ctx, actor.ID, models.AuditPauseTask, models.EntityTask, task.ID, map[string]any{
		"reason":    reason,
		"resume_at": resumeAt.UTC().Format(time.RFC3339),
	}); err != nil {
		return nil, err
	}
	s.notifier.TaskEvent(events.EventTaskPaused, map[string]any{
		"task_id":   task.ID.String(),
		"resume_at": resumeAt.UTC().Format(time.RFC3339),
	})
	s.notifyOthers(*access, team, actor.ID, "Paused: "+task.Title,
		actor.FullName+" paused the task: "+reason, task.ID)

	return s.taskRepo.GetWithRefs(ctx, task.ID)
}

// commentAudit builds the trail entry for a new comment. Comments are
// recorded against the comment entity itself, so task history, which reads
// task-entity rows only, stays limited to workflow events.
func commentAudit(actorID uuid.UUID, c *models.TaskComment) models.AuditLog {
	return models.AuditLog{
		ActorID:    &actorID,
		Action:     models.AuditComment,
		EntityType: models.EntityComment,
		EntityID:   c.ID,
		Meta:       map[string]any{"task_id": c.TaskID.String()},
	}
}

// CommentResult carries the dedup signal alongside the stored comment so
// handlers can tell a retry apart from a fresh insert.
type CommentResult struct {
	Comment      *models.TaskComment
	Deduplicated bool
}

func (s *TaskService) AddComment(ctx context.Context, actor *models.Profile, taskID uuid.UUID, body string, clientMsgID *string) (*CommentResult, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, apperr.Validation("comment body is required")
	}

	_, access, team, engineerID, err := s.loadTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if !rbac.CanReadTask(actor.Role, actor.ID, *access, team, engineerID) {
		return nil, apperr.Authorization("")
	}

	if clientMsgID != nil && *clientMsgID != "" {
		prior, err := s.commentRepo.FindByClientMsgID(ctx, taskID, actor.ID, *clientMsgID)
		if err != nil {
			return nil, err
		}
		if prior != nil {
			return &CommentResult{Comment: prior, Deduplicated: true}, nil
		}
	}

	c := &models.TaskComment{
		TaskID:      taskID,
		AuthorID:    actor.ID,
		Body:        body,
		ClientMsgID: clientMsgID,
	}
	if err := s.commentRepo.Insert(ctx, c); err != nil {
		return nil, err
	}

	if err := s.auditRepo.Log(ctx, commentAudit(actor.ID, c)); err != nil {
		s.log.Error("audit log write failed", zap.String("action", models.AuditComment), zap.Error(err))
		return nil, apperr.Upstream(fmt.Errorf("audit log write: %w", err))
	}
	s.notifier.TaskEvent(events.EventTaskCommented, map[string]any{
		"task_id":    taskID.String(),
		"comment_id": c.ID.String(),
	})
	s.notifyOthers(*access, team, actor.ID, "New comment",
		actor.FullName+" commented on a task", taskID)

	return &CommentResult{Comment: c}, nil
}

func (s *TaskService) Comments(ctx context.Context, actor *models.Profile, taskID uuid.UUID) ([]models.TaskComment, error) {
	_, access, team, engineerID, err := s.loadTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if !rbac.CanReadTask(actor.Role, actor.ID, *access, team, engineerID) {
		return nil, apperr.Authorization("")
	}
	return s.commentRepo.ListByTask(ctx, taskID)
}

// History returns the task's audit trail with ids resolved to display names.
// Intentionally narrower than read access: techs and object engineers see the
// task but not its trail.
func (s *TaskService) History(ctx context.Context, actor *models.Profile, taskID uuid.UUID, limit, offset int) ([]models.TaskHistoryEvent, error) {
	switch actor.Role {
	case rbac.RoleAdmin, rbac.RoleChief, rbac.RoleLead, rbac.RoleEngineer:
	default:
		return nil, apperr.Authorization("")
	}
	_, access, team, engineerID, err := s.loadTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if !rbac.CanReadTask(actor.Role, actor.ID, *access, team, engineerID) {
		return nil, apperr.Authorization("")
	}

	logs, err := s.auditRepo.ListByEntity(ctx, models.EntityTask, taskID, limit, offset)
	if err != nil {
		return nil, err
	}
	return enrichAuditLogs(ctx, s.profileRepo, logs)
}

// enrichAuditLogs resolves actor ids and user-bearing meta fields to current
// display names in one batch lookup.
func enrichAuditLogs(ctx context.Context, profileRepo *repositories.ProfileRepo, logs []models.AuditLog) ([]models.TaskHistoryEvent, error) {
	idSet := map[uuid.UUID]bool{}
	collect := func(v any) {
		str, ok := v.(string)
		if !ok {
			return
		}
		if id, err := uuid.Parse(str); err == nil {
			idSet[id] = true
		}
	}
	for _, l := range logs {
		if l.ActorID != nil {
			idSet[*l.ActorID] = true
		}
		collect(l.Meta["user_id"])
		collect(l.Meta["assigned_to"])
	}
	ids := make([]uuid.UUID, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}
	names, err := profileRepo.NamesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	nameFor := func(v any) (string, bool) {
		str, ok := v.(string)
		if !ok {
			return "", false
		}
		id, err := uuid.Parse(str)
		if err != nil {
			return "", false
		}
		name, ok := names[id]
		return name, ok
	}

	out := make([]models.TaskHistoryEvent, 0, len(logs))
	for _, l := range logs {
		e := models.TaskHistoryEvent{
			ID:         l.ID,
			ActorID:    l.ActorID,
			Action:     l.Action,
			EntityType: l.EntityType,
			EntityID:   l.EntityID,
			Meta:       l.Meta,
			CreatedAt:  l.CreatedAt,
		}
		if e.Meta == nil {
			e.Meta = map[string]any{}
		}
		if l.ActorID != nil {
			if name, ok := names[*l.ActorID]; ok {
				e.ActorName = name
			}
		}
		if name, ok := nameFor(e.Meta["user_id"]); ok {
			e.Meta["user_name"] = name
		}
		if name, ok := nameFor(e.Meta["assigned_to"]); ok {
			e.Meta["assigned_to_name"] = name
		}
		out = append(out, e)
	}
	return out, nil
}

func (s *TaskService) AddTeamMember(ctx context.Context, actor *models.Profile, taskID, userID uuid.UUID) (*models.TaskWithRefs, error) {
	task, _, _, engineerID, err := s.loadTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	scoped := engineerID != nil && *engineerID == actor.ID
	if !rbac.CanManageTeamScoped(actor.Role, scoped) {
		return nil, apperr.Authorization("")
	}
	if task.ArchivedAt != nil {
		return nil, apperr.Conflict("task is archived")
	}

	member, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, apperr.NotFound("user")
	}

	added, err := s.teamRepo.Add(ctx, taskID, userID, actor.ID)
	if err != nil {
		return nil, err
	}
	if added {
		if err := s.audit(ctx, actor.ID, models.AuditTeamAddMember, models.EntityTask, taskID, map[string]any{
			"user_id": userID.String(),
		}); err != nil {
			return nil, err
		}
		if userID != actor.ID {
			s.notifier.Push([]uuid.UUID{userID},
				"Added to task: "+task.Title, actor.FullName+" added you to the task team", taskID)
		}
	}

	return s.taskRepo.GetWithRefs(ctx, taskID)
}

func (s *TaskService) RemoveTeamMember(ctx context.Context, actor *models.Profile, taskID, userID uuid.UUID) (*models.TaskWithRefs, error) {
	task, _, _, engineerID, err := s.loadTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	scoped := engineerID != nil && *engineerID == actor.ID
	if !rbac.CanManageTeamScoped(actor.Role, scoped) {
		return nil, apperr.Authorization("")
	}
	if task.ArchivedAt != nil {
		return nil, apperr.Conflict("task is archived")
	}

	removed, err := s.teamRepo.Remove(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}
	if removed {
		if err := s.audit(ctx, actor.ID, models.AuditTeamRemoveMember, models.EntityTask, taskID, map[string]any{
			"user_id": userID.String(),
		}); err != nil {
			return nil, err
		}
	}

	return s.taskRepo.GetWithRefs(ctx, taskID)
}

// ArchiveDone sweeps done tasks past the age threshold. Called by the worker
// ticker and the cron endpoint; actorless, so the audit trail shows a system
// event only through the published stream.
func (s *TaskService) ArchiveDone(ctx context.Context, thresholdHours int) (int, error) {
	n, err := s.taskRepo.ArchiveDone(ctx, thresholdHours)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.notifier.TaskEvent(events.EventTasksArchived, map[string]any{"count": n})
		s.log.Info("archived done tasks", zap.Int("count", n))
	}
	return n, nil
}

// loadTask fetches the task row and its access projection together, mapping
// absence to NotFound.
func (s *TaskService) loadTask(ctx context.Context, taskID uuid.UUID) (*models.Task, *rbac.TaskAccess, []uuid.UUID, *uuid.UUID, error) {
	access, team, engineerID, err := s.taskRepo.GetAccessRow(ctx, taskID)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	if access == nil {
		return nil, nil, nil, nil, apperr.NotFound("task")
	}
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	if task == nil {
		return nil, nil, nil, nil, apperr.NotFound("task")
	}
	return task, access, team, engineerID, nil
}

// audit appends the trail entry for a mutation. The trail is a hard
// requirement: a failed write fails the mutating call instead of reporting
// success without a record.
func (s *TaskService) audit(ctx context.Context, actorID uuid.UUID, action, entityType string, entityID uuid.UUID, meta map[string]any) error {
	err := s.auditRepo.Log(ctx, models.AuditLog{
		ActorID:    &actorID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Meta:       meta,
	})
	if err != nil {
		s.log.Error("audit log write failed", zap.String("action", action), zap.Error(err))
		return apperr.Upstream(fmt.Errorf("audit log write: %w", err))
	}
	return nil
}

// notifyOthers pushes to the creator and every participant except the actor.
func (s *TaskService) notifyOthers(access rbac.TaskAccess, team []uuid.UUID, actorID uuid.UUID, title, body string, taskID uuid.UUID) {
	targets := rbac.Participants(access, team)
	seen := map[uuid.UUID]bool{}
	var recipients []uuid.UUID
	for _, id := range append(targets, access.CreatedBy) {
		if id == actorID || seen[id] {
			continue
		}
		seen[id] = true
		recipients = append(recipients, id)
	}
	if len(recipients) > 0 {
		s.notifier.Push(recipients, title, body, taskID)
	}
}

func statusTitle(status string) string {
	switch status {
	case models.TaskStatusInProgress:
		return "In progress"
	case models.TaskStatusDone:
		return "Done"
	case models.TaskStatusNew:
		return "Reopened"
	}
	return "Updated"
}
