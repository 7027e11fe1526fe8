package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/opsboard/backend/internal/http/dto"
	"github.com/opsboard/backend/internal/middleware"
	"github.com/opsboard/backend/internal/services"
)

type ObjectHandler struct {
	objectService *services.ObjectService
	log           *zap.Logger
}

func NewObjectHandler(objectService *services.ObjectService, log *zap.Logger) *ObjectHandler {
	return &ObjectHandler{objectService: objectService, log: log}
}

func (h *ObjectHandler) ListObjects(c *fiber.Ctx) error {
	objects, err := h.objectService.List(c.Context())
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: objects})
}

func (h *ObjectHandler) GetObject(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid object id")
	}
	obj, err := h.objectService.Get(c.Context(), id)
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: obj})
}

func (h *ObjectHandler) CreateObject(c *fiber.Ctx) error {
	var req dto.CreateObjectRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request")
	}
	engineerID, err := parseOptionalUUID(req.ObjectEngineerID)
	if err != nil {
		return badRequest(c, "invalid object_engineer_id")
	}
	obj, err := h.objectService.Create(c.Context(), middleware.GetProfile(c), req.Name, engineerID)
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: obj})
}

func (h *ObjectHandler) UpdateObject(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid object id")
	}
	var req dto.UpdateObjectRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request")
	}
	engineerID, err := parseOptionalUUID(req.ObjectEngineerID)
	if err != nil {
		return badRequest(c, "invalid object_engineer_id")
	}
	obj, err := h.objectService.Update(c.Context(), middleware.GetProfile(c), id, req.Name, engineerID, req.ClearEngineer)
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: obj})
}

func (h *ObjectHandler) DeleteObject(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid object id")
	}
	if err := h.objectService.Delete(c.Context(), middleware.GetProfile(c), id); err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true})
}

func parseOptionalUUID(s *string) (*uuid.UUID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
