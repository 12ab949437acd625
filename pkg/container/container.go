package container

import (
	"context"
	"fmt"

	"ngo-cms-backend/internal/config"
	contacthandler "ngo-cms-backend/internal/domains/contact/handler"
	eventhandler "ngo-cms-backend/internal/domains/event/handler"
	eventrepo "ngo-cms-backend/internal/domains/event/repository"
	eventservice "ngo-cms-backend/internal/domains/event/service"
	mediahandler "ngo-cms-backend/internal/domains/media/handler"
	mediaservice "ngo-cms-backend/internal/domains/media/service"
	posthandler "ngo-cms-backend/internal/domains/post/handler"
	postrepo "ngo-cms-backend/internal/domains/post/repository"
	postservice "ngo-cms-backend/internal/domains/post/service"
	reporthandler "ngo-cms-backend/internal/domains/report/handler"
	reportrepo "ngo-cms-backend/internal/domains/report/repository"
	reportservice "ngo-cms-backend/internal/domains/report/service"
	"ngo-cms-backend/internal/infrastructure/cache"
	"ngo-cms-backend/internal/infrastructure/database"
	"ngo-cms-backend/internal/infrastructure/storage"
	pkgcache "ngo-cms-backend/pkg/cache"
	"ngo-cms-backend/pkg/logger"
)

// ============================================================
// DEPENDENCY INJECTION CONTAINER
// ============================================================
// Wiring order: config -> db -> cache -> storage -> repos -> services -> handlers
// Mọi dependency được khởi tạo một lần ở đây, handlers chỉ nhận interface

type Container struct {
	Config *config.Config

	DB      *database.PostgresDB
	Cache   pkgcache.Cache
	Storage *storage.MinIOStorage

	PostHandler    *posthandler.PostHandler
	EventHandler   *eventhandler.EventHandler
	ReportHandler  *reporthandler.ReportHandler
	MediaHandler   *mediahandler.MediaHandler
	ContactHandler *contacthandler.ContactHandler
}

func NewContainer(ctx context.Context) (*Container, error) {
	c := &Container{}

	// ========== STEP 1: Configuration ==========
	logger.Info("🔧 Loading configuration...", nil)
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	c.Config = cfg

	// ========== STEP 2: Database ==========
	logger.Info("📋 Connecting to PostgreSQL...", nil)
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}
	c.DB = database.NewPostgresDB(dbConfig)
	if err := c.DB.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}
	logger.Info("✅ PostgreSQL connected", nil)

	// ========== STEP 3: Cache ==========
	logger.Info("📋 Connecting to Redis...", nil)
	c.Cache = cache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := cache.Connect(ctx, c.Cache); err != nil {
		return nil, fmt.Errorf("failed to connect redis: %w", err)
	}
	logger.Info("✅ Redis connected", nil)

	// ========== STEP 4: Object Storage ==========
	logger.Info("📋 Connecting to MinIO...", nil)
	minioStorage, err := storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		return nil, fmt.Errorf("failed to init minio: %w", err)
	}
	c.Storage = minioStorage
	logger.Info("✅ MinIO ready", nil)

	// ========== STEP 5: Repositories -> Services -> Handlers ==========
	postRepository := postrepo.NewPostgresRepository(c.DB.Pool)
	postSvc := postservice.NewPostService(postRepository, c.Cache)
	c.PostHandler = posthandler.NewPostHandler(postSvc)

	eventRepository := eventrepo.NewPostgresRepository(c.DB.Pool)
	eventSvc := eventservice.NewEventService(eventRepository, c.Cache)
	c.EventHandler = eventhandler.NewEventHandler(eventSvc)

	reportRepository := reportrepo.NewPostgresRepository(c.DB.Pool)
	reportSvc := reportservice.NewReportService(reportRepository, c.Cache)
	c.ReportHandler = reporthandler.NewReportHandler(reportSvc)

	mediaSvc := mediaservice.NewMediaService(c.Storage)
	c.MediaHandler = mediahandler.NewMediaHandler(mediaSvc)

	c.ContactHandler = contacthandler.NewContactHandler(cfg.Contact.WhatsAppNumber)

	logger.Info("✅ Container initialized", nil)
	return c, nil
}

// Cleanup đóng các connection theo thứ tự ngược với init
func (c *Container) Cleanup() {
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			logger.Error("failed to close database", err)
		}
	}
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			logger.Error("failed to close cache", err)
		}
	}
	logger.Info("✅ Container cleaned up", nil)
}
