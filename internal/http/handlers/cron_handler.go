package handlers

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/opsboard/backend/internal/config"
	"github.com/opsboard/backend/internal/http/dto"
	"github.com/opsboard/backend/internal/services"
)

// CronHandler exposes scheduled jobs to an external scheduler. Requests are
// authenticated by a shared secret header instead of a user token.
type CronHandler struct {
	taskService *services.TaskService
	cfg         *config.Config
	log         *zap.Logger
}

func NewCronHandler(taskService *services.TaskService, cfg *config.Config, log *zap.Logger) *CronHandler {
	return &CronHandler{taskService: taskService, cfg: cfg, log: log}
}

func (h *CronHandler) Archive(c *fiber.Ctx) error {
	secret := c.Get("X-Cron-Secret")
	if h.cfg.CronSecret == "" || subtle.ConstantTimeCompare([]byte(secret), []byte(h.cfg.CronSecret)) != 1 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "unauthorized"})
	}

	n, err := h.taskService.ArchiveDone(c.Context(), h.cfg.ArchiveThresholdHours)
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(dto.ArchiveResponse{OK: true, Archived: n})
}
