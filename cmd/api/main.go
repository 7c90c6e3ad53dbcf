package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"golang.org/x/sync/errgroup"

	"github.com/ecoquest/ecoquest/api/handlers"
	"github.com/ecoquest/ecoquest/api/middleware"
	"github.com/ecoquest/ecoquest/ecoquest"
	"github.com/ecoquest/ecoquest/ecoquest/database"
	"github.com/ecoquest/ecoquest/ecoquest/database/repositories"
	"github.com/ecoquest/ecoquest/ecoquest/logger"
	"github.com/ecoquest/ecoquest/ecoquest/quest"
	"github.com/ecoquest/ecoquest/ecoquest/quiz"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	configPath := "config.toml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	cfg, err := ecoquest.LoadConfig(configPath)
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	customHandler := logger.NewHandler("EcoQuest-API", cfg.Log.Level)
	slog.SetDefault(slog.New(customHandler))

	slog.Info("Starting EcoQuest API",
		slog.String("version", version),
		slog.String("commit", commit),
		slog.String("type", "sys"))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	slog.Info("Connecting to database...", slog.String("type", "db"))
	db, err := database.New(ctx, cfg.DB)
	if err != nil {
		slog.Error("Failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	if err := db.InitializeSchema(ctx); err != nil {
		slog.Error("Failed to initialize schema", slog.String("error", err.Error()))
		os.Exit(1)
	}

	bunDB := db.BunDB()
	store := repositories.NewStore(bunDB)
	userRepo := repositories.NewUserRepository(bunDB)
	counterRepo := repositories.NewCounterRepository(bunDB)
	quizRepo := repositories.NewQuizRepository(bunDB)

	catalog, err := quest.NewCatalog(repositories.NewQuestRepository(bunDB))
	if err != nil {
		slog.Error("Failed to build quest catalog", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dispatcher := quest.NewDispatcher(store,
		quest.NewStreakCalculator(store),
		quest.NewBadgeEvaluator(store))

	questService := quest.NewService(store, dispatcher)
	quizService := quiz.NewService(quizRepo, cfg.Game.QuizMultiplier)

	app := fiber.New(fiber.Config{
		AppName:      "EcoQuest API",
		ServerHeader: "EcoQuest",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	app.Use(recover.New())
	app.Use(middleware.SecurityHeaders())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "http://localhost:3000",
		AllowMethods: "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,X-Requested-With,X-User-ID,X-User-Role",
	}))
	app.Use(middleware.LoggingMiddleware())

	webApp := &handlers.App{
		Config:   cfg,
		DB:       db,
		Catalog:  catalog,
		Quests:   questService,
		Quiz:     quizService,
		Users:    userRepo,
		Counters: counterRepo,
		Version:  version,
		Commit:   commit,
	}

	setupRoutes(app, webApp)

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	slog.Info("Starting server", slog.String("address", address), slog.String("type", "sys"))

	g, gCtx := errgroup.WithContext(runCtx)
	g.Go(func() error {
		return app.Listen(address)
	})
	g.Go(func() error {
		return dispatcher.Run(gCtx)
	})
	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	})

	if err := g.Wait(); err != nil && runCtx.Err() == nil {
		slog.Error("Server error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("Server shutdown complete", slog.String("type", "sys"))
}

// setupRoutes configures all application routes
func setupRoutes(app *fiber.App, webApp *handlers.App) {
	app.Get("/health", handlers.HealthCheck(webApp))

	api := app.Group("/api")
	api.Use(middleware.APIRateLimit())

	// Quest catalog is readable without identity.
	api.Get("/quests", handlers.QuestsList(webApp))
	api.Get("/quests/:id", handlers.QuestsDetail(webApp))

	authed := api.Group("", middleware.AuthRequired())

	userQuests := authed.Group("/userquests")
	userQuests.Get("/", handlers.UserQuestsList(webApp))
	userQuests.Post("/", middleware.SubmitRateLimit(), handlers.UserQuestsStart(webApp))
	userQuests.Get("/:id", handlers.UserQuestsDetail(webApp))
	userQuests.Patch("/:id/progress", middleware.SubmitRateLimit(), handlers.UserQuestsProgress(webApp))
	userQuests.Post("/:id/complete", middleware.SubmitRateLimit(), handlers.UserQuestsComplete(webApp))

	users := authed.Group("/users")
	users.Get("/me", handlers.UsersMe(webApp))
	users.Get("/me/badges", handlers.UsersBadges(webApp))
	users.Get("/me/streak", handlers.UsersStreak(webApp))

	counters := authed.Group("/counters")
	counters.Get("/", handlers.CountersSummary(webApp))
	counters.Post("/:name/increment", handlers.CountersIncrement(webApp))
	counters.Post("/:name/decrement", handlers.CountersDecrement(webApp))

	quizGroup := authed.Group("/quiz")
	quizGroup.Get("/daily", handlers.QuizDaily(webApp))
	quizGroup.Post("/submit", middleware.SubmitRateLimit(), handlers.QuizSubmit(webApp))

	admin := app.Group("/admin")
	admin.Use(middleware.AuthRequired())
	admin.Use(middleware.AdminRequired())

	adminQuests := admin.Group("/quests")
	adminQuests.Post("/", middleware.AuditLogMiddleware("quest_create"), handlers.QuestsCreate(webApp))
	adminQuests.Put("/:id", middleware.AuditLogMiddleware("quest_update"), handlers.QuestsUpdate(webApp))
	adminQuests.Delete("/:id", middleware.AuditLogMiddleware("quest_delete"), handlers.QuestsDelete(webApp))

	app.Use(func(c *fiber.Ctx) error {
		slog.Warn("No route matched for request",
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.String("ip", c.IP()),
		)
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   "Not Found",
			"message": "The requested endpoint does not exist",
		})
	})
}
