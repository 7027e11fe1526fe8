package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/opsboard/backend/internal/config"
	"github.com/opsboard/backend/internal/http/dto"
	"github.com/opsboard/backend/internal/middleware"
	"github.com/opsboard/backend/internal/models"
	"github.com/opsboard/backend/internal/push"
	"github.com/opsboard/backend/internal/repositories"
)

type PushHandler struct {
	pushRepo *repositories.PushRepo
	sender   *push.Sender
	cfg      *config.Config
	log      *zap.Logger
}

func NewPushHandler(pushRepo *repositories.PushRepo, sender *push.Sender, cfg *config.Config, log *zap.Logger) *PushHandler {
	return &PushHandler{pushRepo: pushRepo, sender: sender, cfg: cfg, log: log}
}

// GetVAPIDKey hands the public key to the browser for subscribe().
func (h *PushHandler) GetVAPIDKey(c *fiber.Ctx) error {
	return c.JSON(dto.SuccessResponse{OK: true, Data: fiber.Map{
		"public_key": h.cfg.VAPIDPublicKey,
		"enabled":    h.cfg.PushConfigured(),
	}})
}

func (h *PushHandler) Subscribe(c *fiber.Ctx) error {
	var req dto.PushSubscribeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request")
	}
	if req.Endpoint == "" || req.Keys.P256DH == "" || req.Keys.Auth == "" {
		return badRequest(c, "endpoint and keys are required")
	}

	sub := &models.PushSubscription{
		UserID:   middleware.GetUserID(c),
		Endpoint: req.Endpoint,
		P256DH:   req.Keys.P256DH,
		Auth:     req.Keys.Auth,
	}
	if err := h.pushRepo.Upsert(c.Context(), sub); err != nil {
		return fail(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: sub})
}

func (h *PushHandler) Unsubscribe(c *fiber.Ctx) error {
	var req dto.PushUnsubscribeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request")
	}
	if req.Endpoint == "" {
		return badRequest(c, "endpoint is required")
	}
	if err := h.pushRepo.DeleteByEndpoint(c.Context(), req.Endpoint); err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true})
}

// TestPush sends a sample notification to the caller's own devices so users
// can verify
// their browser setup end to end.
func (h *PushHandler) TestPush(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	res := h.sender.SendToUser(c.Context(), userID, push.Payload{
		Title: "Test notification",
		Body:  "Push notifications are working",
	})
	return c.JSON(dto.SuccessResponse{OK: true, Data: res})
}
