package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/opsboard/backend/internal/auth"
	"github.com/opsboard/backend/internal/config"
	"github.com/opsboard/backend/internal/models"
	"github.com/opsboard/backend/internal/repositories"
)

const (
	CtxUserID  = "user_id"
	CtxProfile = "profile"
)

// AuthMiddleware validates the bearer token and loads the caller's profile.
// The token carries only the user id; the role is read from the store on
// every request so role changes and deletions apply immediately. A valid
// token whose profile is gone is treated as unauthenticated.
func AuthMiddleware(cfg *config.Config, profileRepo *repositories.ProfileRepo, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing authorization header"})
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == authHeader {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid authorization format"})
		}

		claims, err := auth.ParseJWT(cfg.JWTSecret, tokenStr)
		if err != nil {
			log.Debug("jwt parse error", zap.Error(err))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid or expired token"})
		}

		profile, err := profileRepo.GetByID(c.Context(), claims.UserID)
		if err != nil {
			log.Error("profile lookup failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
		}
		if profile == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "account no longer exists"})
		}

		c.Locals(CtxUserID, claims.UserID)
		c.Locals(CtxProfile, profile)

		return c.Next()
	}
}

func GetUserID(c *fiber.Ctx) uuid.UUID {
	id, _ := c.Locals(CtxUserID).(uuid.UUID)
	return id
}

func GetProfile(c *fiber.Ctx) *models.Profile {
	p, _ := c.Locals(CtxProfile).(*models.Profile)
	return p
}
