package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/opsboard/backend/internal/http/dto"
	"github.com/opsboard/backend/internal/middleware"
	"github.com/opsboard/backend/internal/repositories"
	"github.com/opsboard/backend/internal/services"
)

type TaskHandler struct {
	taskService *services.TaskService
	log         *zap.Logger
}

func NewTaskHandler(taskService *services.TaskService, log *zap.Logger) *TaskHandler {
	return &TaskHandler{taskService: taskService, log: log}
}

func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request")
	}
	objectID, err := uuid.Parse(req.ObjectID)
	if err != nil {
		return badRequest(c, "invalid object_id")
	}
	assignedTo, err := uuid.Parse(req.AssignedTo)
	if err != nil {
		return badRequest(c, "invalid assigned_to")
	}

	task, err := h.taskService.Create(c.Context(), middleware.GetProfile(c), services.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		ObjectID:    objectID,
		Priority:    req.Priority,
		DueAt:       req.DueAt,
		AssignedTo:  assignedTo,
	})
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: task})
}

func (h *TaskHandler) ListTasks(c *fiber.Ctx) error {
	in := services.ListTasksInput{
		Kind:       c.Query("kind", repositories.ListMy),
		TitleQuery: c.Query("q"),
		Due:        c.Query("due"),
		Sort:       c.Query("sort"),
		Limit:      100,
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			in.Limit = n
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			in.Offset = n
		}
	}
	if v := c.Query("status"); v != "" {
		in.Status = &v
	}
	if v := c.Query("priority"); v != "" {
		in.Priority = &v
	}
	if v := c.Query("object_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return badRequest(c, "invalid object_id")
		}
		in.ObjectID = &id
	}
	if v := c.Query("assignee_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return badRequest(c, "invalid assignee_id")
		}
		in.AssigneeID = &id
	}
	if v := c.Query("team_member_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return badRequest(c, "invalid team_member_id")
		}
		in.TeamMemberID = &id
	}

	tasks, err := h.taskService.List(c.Context(), middleware.GetProfile(c), in)
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: tasks})
}

func (h *TaskHandler) GetTask(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid task id")
	}
	task, err := h.taskService.Get(c.Context(), middleware.GetProfile(c), id)
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: task})
}

func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid task id")
	}
	var req dto.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request")
	}
	objectID, err := parseOptionalUUID(req.ObjectID)
	if err != nil {
		return badRequest(c, "invalid object_id")
	}
	assignedTo, err := parseOptionalUUID(req.AssignedTo)
	if err != nil {
		return badRequest(c, "invalid assigned_to")
	}

	task, err := h.taskService.Update(c.Context(), middleware.GetProfile(c), id, services.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		ObjectID:    objectID,
		Priority:    req.Priority,
		DueAt:       req.DueAt,
		ClearDueAt:  req.ClearDueAt,
		AssignedTo:  assignedTo,
	})
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: task})
}

func (h *TaskHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid task id")
	}
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request")
	}
	task, err := h.taskService.UpdateStatus(c.Context(), middleware.GetProfile(c), id, req.Status)
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: task})
}

func (h *TaskHandler) TakeInWork(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid task id")
	}
	task, err := h.taskService.TakeInWork(c.Context(), middleware.GetProfile(c), id)
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: task})
}

func (h *TaskHandler) PauseTask(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid task id")
	}
	var req dto.PauseTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request")
	}
	task, err := h.taskService.Pause(c.Context(), middleware.GetProfile(c), id, req.Reason, req.ResumeAt)
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: task})
}

func (h *TaskHandler) AddTeamMember(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid task id")
	}
	var req dto.TeamMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request")
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return badRequest(c, "invalid user_id")
	}
	task, err := h.taskService.AddTeamMember(c.Context(), middleware.GetProfile(c), id, userID)
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: task})
}

func (h *TaskHandler) RemoveTeamMember(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid task id")
	}
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}
	task, err := h.taskService.RemoveTeamMember(c.Context(), middleware.GetProfile(c), id, userID)
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: task})
}

func (h *TaskHandler) ListComments(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid task id")
	}
	comments, err := h.taskService.Comments(c.Context(), middleware.GetProfile(c), id)
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: comments})
}

func (h *TaskHandler) AddComment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid task id")
	}
	var req dto.AddCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request")
	}
	res, err := h.taskService.AddComment(c.Context(), middleware.GetProfile(c), id, req.Body, req.ClientMsgID)
	if err != nil {
		return fail(c, h.log, err)
	}
	status := fiber.StatusCreated
	if res.Deduplicated {
		status = fiber.StatusOK
	}
	return c.Status(status).JSON(dto.CommentResponse{OK: true, Deduplicated: res.Deduplicated, Data: res.Comment})
}

func (h *TaskHandler) GetHistory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid task id")
	}
	limit, offset := 50, 0
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			offset = n
		}
	}
	history, err := h.taskService.History(c.Context(), middleware.GetProfile(c), id, limit, offset)
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: history})
}
