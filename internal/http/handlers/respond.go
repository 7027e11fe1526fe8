package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/opsboard/backend/internal/apperr"
	"github.com/opsboard/backend/internal/http/dto"
	"github.com/opsboard/backend/internal/middleware"
)

// fail maps a service error onto the response. Classified errors surface
// their message; everything else is logged and reported as a bare 500 so
// storage details never leak.
func fail(c *fiber.Ctx, log *zap.Logger, err error) error {
	code := apperr.StatusCode(err)
	msg := err.Error()
	if code == fiber.StatusInternalServerError {
		log.Error("request failed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		msg = "internal error"
	}
	reqID, _ := c.Locals(middleware.CtxRequestID).(string)
	return c.Status(code).JSON(dto.ErrorResponse{Error: msg, RequestID: reqID})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: msg})
}
