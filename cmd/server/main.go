// @title         SkillLens API
// @version       2.1.0
// @description   Resume scoring, leaderboard, badges, workplace simulator, learning modules and career roadmaps.
// @BasePath      /
// @schemes       http
// @host          localhost:8080
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Authorization token: "Bearer <JWT>" or "<JWT>".
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	_ "github.com/artem13815/skilllens/docs"

	// internal imports
	"github.com/artem13815/skilllens/api/http"
	"github.com/artem13815/skilllens/api/http/handlers"
	"github.com/artem13815/skilllens/api/http/middleware"
	"github.com/artem13815/skilllens/pkg/auth"
	"github.com/artem13815/skilllens/pkg/badge"
	"github.com/artem13815/skilllens/pkg/cache"
	"github.com/artem13815/skilllens/pkg/catalog"
	"github.com/artem13815/skilllens/pkg/config"
	"github.com/artem13815/skilllens/pkg/health"
	"github.com/artem13815/skilllens/pkg/health/checkers"
	"github.com/artem13815/skilllens/pkg/leaderboard"
	"github.com/artem13815/skilllens/pkg/learning"
	"github.com/artem13815/skilllens/pkg/logger"
	pgrepo "github.com/artem13815/skilllens/pkg/repository/postgres"
	"github.com/artem13815/skilllens/pkg/resume"
	"github.com/artem13815/skilllens/pkg/roadmap"
	"github.com/artem13815/skilllens/pkg/security/jwt"
	"github.com/artem13815/skilllens/pkg/simulator"
	"github.com/artem13815/skilllens/pkg/stats"
	"github.com/artem13815/skilllens/pkg/storage/postgres"
)

func main() {
	// Load configuration from env/.env
	cfg := config.Load()

	log, err := logger.New(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid configuration", "error", err)
	}

	ctx := context.Background()

	// Connect to PostgreSQL and bring the schema up to date
	pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("postgres connect", "error", err)
	}
	defer pool.Close()
	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal("postgres migrate", "error", err)
	}

	store := cache.New(ctx, cfg.RedisURL, log)
	defer store.Close()

	cat, err := catalog.Load(cfg.CatalogDir)
	if err != nil {
		log.Fatal("load catalog", "error", err)
	}

	files, err := fileStore(cfg, log)
	if err != nil {
		log.Fatal("init file store", "error", err)
	}

	// Wire dependencies (Clean Architecture)
	userRepo := pgrepo.NewUserRepository(pool)
	scoreRepo := pgrepo.NewReadinessRepository(pool)
	resumeRepo := pgrepo.NewResumeRepository(pool)
	simRepo := pgrepo.NewSimulatorRepository(pool)
	progressRepo := pgrepo.NewProgressRepository(pool)
	roadmapRepo := pgrepo.NewRoadmapRepository(pool)
	statsRepo := pgrepo.NewStatsRepository(pool)

	// Token generator and logout denylist
	jwtGen := jwt.NewGenerator(cfg.JWTSecret, cfg.JWTIssuer, time.Duration(cfg.JWTTTLMinutes)*time.Minute)
	denylist := jwt.NewDenylist(store)

	boardUC := leaderboard.NewService(scoreRepo, store, cfg.LeaderboardCacheTTL)
	learningUC := learning.NewService(cat.Modules, scoreRepo, progressRepo)

	h := http.Handlers{
		Auth:        handlers.NewAuthHandler(auth.NewAuthService(userRepo, jwtGen, denylist, scoreRepo), log),
		Health:      handlers.NewHealthHandler(health.NewService(checkers.NewPostgresChecker(pool), checkers.NewRedisChecker(store))),
		Resume:      handlers.NewResumeHandler(resume.NewService(resumeRepo, scoreRepo, files, cat.Lexicon, boardUC, log), log, cfg.MaxUploadBytes),
		Leaderboard: handlers.NewLeaderboardHandler(boardUC, log),
		Badges:      handlers.NewBadgeHandler(badge.NewService(cat.Badges, scoreRepo, boardUC), log),
		Stats:       handlers.NewStatsHandler(stats.NewService(statsRepo, scoreRepo), log),
		Simulator:   handlers.NewSimulatorHandler(simulator.NewService(cat.Scenarios, simRepo), log),
		Learning:    handlers.NewLearningHandler(learningUC, log),
		Roadmap:     handlers.NewRoadmapHandler(roadmap.NewService(cat.Paths, roadmapRepo, scoreRepo, learningUC), log),
	}

	app := fiber.New(fiber.Config{
		AppName: "SkillLens " + handlers.Version,
		// Leave room for multipart overhead; the handler enforces the file limit itself.
		BodyLimit: int(cfg.MaxUploadBytes) + 1<<20,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.RequestLogger(log))
	app.Use(middleware.CORS(cfg.CORSOrigins))

	// JWT auth middleware for protected routes
	authMW := jwt.NewAuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer, denylist)
	limits := middleware.NewLimits(cfg.RateLimitMax, cfg.RateLimitWindow)

	// Register routes
	http.Register(app, h, authMW, limits)

	// Start server
	go func() {
		log.Info("HTTP server listening", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal("server stopped", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error("shutdown", "error", err)
	}
}

// fileStore keeps uploads in Cloudinary when configured, on local disk otherwise.
func fileStore(cfg config.Config, log *logger.Logger) (resume.FileStore, error) {
	if cfg.CloudinaryURL != "" {
		cld, err := resume.NewCloudinaryStore(cfg.CloudinaryURL, cfg.CloudinaryFolder)
		if err != nil {
			return nil, err
		}
		log.Info("resume files stored in cloudinary", "folder", cfg.CloudinaryFolder)
		return cld, nil
	}
	log.Info("resume files stored on disk", "dir", cfg.UploadDir)
	return resume.NewDiskStore(cfg.UploadDir), nil
}
