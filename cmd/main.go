package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hellofresh/health-go/v5"
	"github.com/hellofresh/health-go/v5/checks/pgx5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/yakoovad/orgsite/internal/api"
	"github.com/yakoovad/orgsite/internal/auth"
	"github.com/yakoovad/orgsite/internal/config"
	"github.com/yakoovad/orgsite/internal/db"
	"github.com/yakoovad/orgsite/internal/media"
	"github.com/yakoovad/orgsite/internal/repository"
	"github.com/yakoovad/orgsite/internal/service"
	"github.com/yakoovad/orgsite/pkg/logger"
	"go.uber.org/zap"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.NewLogger(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	log.Info("starting application", zap.String("env", cfg.Env), zap.String("version", version))

	auth.TokenSecretKey = cfg.TokenSecret

	ctx := logger.WithLogger(context.Background(), log)

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	if err = pool.Ping(ctx); err != nil {
		log.Fatal("failed to ping database", zap.Error(err))
	}

	log.Info("database connection established")

	if err = db.Migrate(ctx, pool); err != nil {
		log.Fatal("failed to apply migrations", zap.Error(err))
	}

	log.Info("migrations applied", zap.Strings("files", db.MigrationNames()))

	transactor := db.NewPgxTransactor(pool)
	storage := media.NewLocalStorage(cfg.MediaRoot)

	hackathonRepo := repository.NewPgxHackathonRepository(pool)
	careerRepo := repository.NewPgxCareerRepository(pool)
	contactRepo := repository.NewPgxContactRepository(pool)
	inquiryRepo := repository.NewPgxInquiryRepository(pool)
	mouRepo := repository.NewPgxMOURepository(pool)
	galleryRepo := repository.NewPgxGalleryRepository(pool)
	projectRepo := repository.NewPgxProjectRepository(pool)
	communityRepo := repository.NewPgxCommunityRepository(pool)
	adminRepo := repository.NewPgxAdminRepository(pool)

	hackathon := service.NewHackathonService(transactor).WithHackathonRepo(hackathonRepo)
	submission := service.NewSubmissionService(storage).WithCareerRepo(careerRepo).WithContactRepo(contactRepo).WithInquiryRepo(inquiryRepo)
	catalog := service.NewCatalogService(storage).WithMOURepo(mouRepo).WithGalleryRepo(galleryRepo).WithProjectRepo(projectRepo).WithCommunityRepo(communityRepo)
	admin := service.NewAdminService(cfg.TokenTTL).WithAdminRepo(adminRepo)

	if cfg.Admin.Bootstrap {
		created, err := admin.Bootstrap(ctx, cfg.Admin.Username, cfg.Admin.Email, cfg.Admin.Password)
		if err != nil {
			log.Fatal("failed to bootstrap admin", zap.Error(err))
		}
		log.Info("admin bootstrap finished", zap.String("username", cfg.Admin.Username), zap.Bool("created", created))
	}

	healthChecker, err := api.NewHealthChecker(version, health.Config{
		Name:    "postgres",
		Timeout: 2 * time.Second,
		Check:   pgx5.New(pgx5.Config{DSN: cfg.DatabaseURL}),
	})
	if err != nil {
		log.Fatal("failed to create health checker", zap.Error(err))
	}

	e := echo.New()
	e.HideBanner = true

	handler := api.NewHandler(log).
		WithHealthChecker(healthChecker).
		WithHackathonService(hackathon).
		WithSubmissionService(submission).
		WithCatalogService(catalog).
		WithAdminService(admin).
		WithMedia(cfg.MediaRoot, cfg.MediaURL).
		WithCORSOrigins(cfg.CORSOrigins)

	handler.RegisterRoutes(e)

	go func() {
		log.Info("server starting", zap.String("addr", cfg.HTTPAddr))
		if err := e.Start(cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
	defer cancel()

	if err = e.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shut down server", zap.Error(err))
	}
}
