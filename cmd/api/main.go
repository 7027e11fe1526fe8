package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/opsboard/backend/internal/config"
	"github.com/opsboard/backend/internal/db"
	"github.com/opsboard/backend/internal/events"
	apphttp "github.com/opsboard/backend/internal/http"
	"github.com/opsboard/backend/internal/http/handlers"
	"github.com/opsboard/backend/internal/push"
	"github.com/opsboard/backend/internal/repositories"
	"github.com/opsboard/backend/internal/services"
)

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	cfg.Validate(log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database
	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, log)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	// Run migrations
	if err := db.RunMigrations(ctx, pool, "migrations", log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	// Redis
	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL, log)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	// Repositories
	profileRepo := repositories.NewProfileRepo(pool)
	objectRepo := repositories.NewObjectRepo(pool)
	taskRepo := repositories.NewTaskRepo(pool)
	teamRepo := repositories.NewTeamRepo(pool)
	commentRepo := repositories.NewCommentRepo(pool)
	auditRepo := repositories.NewAuditRepo(pool)
	pushRepo := repositories.NewPushRepo(pool)

	// Events
	publisher := events.NewRedisPublisher(rdb, log)
	subscriber := events.NewRedisSubscriber(rdb, log)

	// Services
	notifier := services.NewNotifier(publisher, log)
	authService := services.NewAuthService(profileRepo, cfg, log)
	userService := services.NewUserService(profileRepo, auditRepo, log)
	objectService := services.NewObjectService(objectRepo, profileRepo, auditRepo, log)
	taskService := services.NewTaskService(taskRepo, teamRepo, commentRepo, objectRepo, profileRepo, auditRepo, notifier, log)
	auditService := services.NewAuditService(auditRepo, profileRepo)
	pushSender := push.NewSender(pushRepo, cfg.VAPIDPublicKey, cfg.VAPIDPrivateKey, cfg.VAPIDSubject, log)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, log)
	userHandler := handlers.NewUserHandler(userService, log)
	objectHandler := handlers.NewObjectHandler(objectService, log)
	taskHandler := handlers.NewTaskHandler(taskService, log)
	pushHandler := handlers.NewPushHandler(pushRepo, pushSender, cfg, log)
	auditHandler := handlers.NewAuditHandler(auditService, log)
	cronHandler := handlers.NewCronHandler(taskService, cfg, log)
	wsHub := handlers.NewWSHub(cfg, subscriber, log)

	// Start WS hub
	wsHub.Start(ctx)

	// Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	apphttp.SetupRouter(app, cfg, log, rdb, profileRepo,
		authHandler, userHandler, objectHandler, taskHandler,
		pushHandler, auditHandler, cronHandler, wsHub)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")
		cancel()
		_ = app.Shutdown()
	}()

	addr := fmt.Sprintf(":%s", cfg.APIPort)
	log.Info("starting API server", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
