package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/scrumish/internal/api/middleware"
	"github.com/linskybing/scrumish/internal/api/routes"
	"github.com/linskybing/scrumish/internal/application"
	"github.com/linskybing/scrumish/internal/config"
	"github.com/linskybing/scrumish/internal/config/db"
	"github.com/linskybing/scrumish/internal/cron"
	"github.com/linskybing/scrumish/internal/repository"
	"github.com/linskybing/scrumish/pkg/invite"
	"github.com/linskybing/scrumish/pkg/logger"
	"github.com/linskybing/scrumish/pkg/storage"
	log "github.com/sirupsen/logrus"
)

// @title Scrum-ish API
// @version 1.0
// @description Project, backlog and QA tracking for agile teams.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables, .env and CONFIG_FILE
	config.LoadConfig()
	logger.Init(config.LogLevel, config.LogFormat)

	// Initialize JWT signing key
	middleware.Init()

	db.Init()
	if err := db.Migrate(db.DB); err != nil {
		log.WithError(err).Fatal("Failed to migrate database")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos := repository.NewRepositories(db.DB)
	signer := invite.NewSigner(config.InviteSecret, config.Issuer, config.InviteTTL)
	services := application.New(repos, objectStore(ctx), signer, nil)

	if err := services.User.EnsureAdmin(); err != nil {
		log.WithError(err).Fatal("Failed to provision admin account")
	}

	cron.StartCleanupTask(ctx, services.Audit, config.AuditRetentionDays)

	if config.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.MetricsMiddleware())

	routes.RegisterRoutes(router, services, repos)

	srv := &http.Server{
		Addr:    ":" + config.ServerPort,
		Handler: router,
	}

	go func() {
		log.Infof("Starting API server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Failed to start")
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down API server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server shutdown failed")
	}
}

// objectStore connects to MinIO when an endpoint is configured. Without one
// attachments, evidence and logos are disabled.
func objectStore(ctx context.Context) storage.ObjectStore {
	if config.MinioEndpoint == "" {
		log.Warn("MINIO_ENDPOINT not set, file uploads are disabled")
		return nil
	}

	store, err := storage.NewMinioStore(storage.Options{
		Endpoint:  config.MinioEndpoint,
		AccessKey: config.MinioAccessKey,
		SecretKey: config.MinioSecretKey,
		Bucket:    config.MinioBucket,
		UseSSL:    config.MinioUseSSL,
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to create object store client")
	}
	if err := store.EnsureBucket(ctx); err != nil {
		log.WithError(err).Fatal("Failed to prepare object store bucket")
	}
	return store
}
