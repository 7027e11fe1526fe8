package http

import (
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/opsboard/backend/internal/config"
	"github.com/opsboard/backend/internal/http/handlers"
	"github.com/opsboard/backend/internal/middleware"
	"github.com/opsboard/backend/internal/repositories"
)

func SetupRouter(
	app *fiber.App,
	cfg *config.Config,
	log *zap.Logger,
	rdb *redis.Client,
	profileRepo *repositories.ProfileRepo,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	objectHandler *handlers.ObjectHandler,
	taskHandler *handlers.TaskHandler,
	pushHandler *handlers.PushHandler,
	auditHandler *handlers.AuditHandler,
	cronHandler *handlers.CronHandler,
	wsHub *handlers.WSHub,
) {
	// Global middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID, X-Cron-Secret",
	}))
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware(log))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")

	// Auth (public)
	api.Post("/auth/login", authHandler.Login)

	// Scheduler hook (secret header, not a user token)
	api.Post("/cron/archive", cronHandler.Archive)

	api.Use(middleware.RateLimitMiddleware(rdb, cfg.RateLimitPerMinute, time.Minute))

	// Protected endpoints
	protected := api.Group("", middleware.AuthMiddleware(cfg, profileRepo, log))

	// Session
	protected.Get("/me", userHandler.GetMe)

	// Users
	protected.Get("/users", userHandler.ListUsers)
	protected.Post("/users", userHandler.CreateUser)
	protected.Get("/users/:id", userHandler.GetUser)
	protected.Put("/users/:id", userHandler.UpdateUser)
	protected.Delete("/users/:id", userHandler.DeleteUser)

	// Objects
	protected.Get("/objects", objectHandler.ListObjects)
	protected.Post("/objects", objectHandler.CreateObject)
	protected.Get("/objects/:id", objectHandler.GetObject)
	protected.Put("/objects/:id", objectHandler.UpdateObject)
	protected.Delete("/objects/:id", objectHandler.DeleteObject)

	// Tasks
	protected.Post("/tasks", taskHandler.CreateTask)
	protected.Get("/tasks", taskHandler.ListTasks)
	protected.Get("/tasks/:id", taskHandler.GetTask)
	protected.Put("/tasks/:id", taskHandler.UpdateTask)
	protected.Post("/tasks/:id/status", taskHandler.UpdateStatus)
	protected.Post("/tasks/:id/take", taskHandler.TakeInWork)
	protected.Post("/tasks/:id/pause", taskHandler.PauseTask)
	protected.Post("/tasks/:id/team", taskHandler.AddTeamMember)
	protected.Delete("/tasks/:id/team/:userId", taskHandler.RemoveTeamMember)
	protected.Get("/tasks/:id/comments", taskHandler.ListComments)
	protected.Post("/tasks/:id/comments", taskHandler.AddComment)
	protected.Get("/tasks/:id/history", taskHandler.GetHistory)

	// Push
	protected.Get("/push/vapid-key", pushHandler.GetVAPIDKey)
	protected.Post("/push/subscribe", pushHandler.Subscribe)
	protected.Post("/push/unsubscribe", pushHandler.Unsubscribe)
	protected.Post("/push/test", pushHandler.TestPush)

	// Audit (admin/chief)
	protected.Get("/audit", auditHandler.ListAudit)

	// WebSocket
	app.Use("/ws", handlers.WSUpgradeMiddleware())
	app.Get("/ws", websocket.New(wsHub.HandleWS))
}
