package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	classroomapp "github.com/safe/backend/internal/application/classroom"
	galleryapp "github.com/safe/backend/internal/application/gallery"
	identityapp "github.com/safe/backend/internal/application/identity"
	ledgerapp "github.com/safe/backend/internal/application/ledger"
	shopapp "github.com/safe/backend/internal/application/shop"
	"github.com/safe/backend/internal/infrastructure/auth"
	"github.com/safe/backend/internal/infrastructure/cache"
	"github.com/safe/backend/internal/infrastructure/config"
	"github.com/safe/backend/internal/infrastructure/logger"
	"github.com/safe/backend/internal/infrastructure/persistence"
	"github.com/safe/backend/internal/infrastructure/storage"
	"github.com/safe/backend/internal/interfaces/http/handler"
	"github.com/safe/backend/internal/interfaces/http/middleware"
	"github.com/safe/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
		Service:    cfg.App.Name,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting SAFE Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.Open(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	classRepo := persistence.NewGormClassRepository(db.DB)
	postRepo := persistence.NewGormPostRepository(db.DB)
	itemRepo := persistence.NewGormItemRepository(db.DB)
	inventoryRepo := persistence.NewGormInventoryRepository(db.DB)
	txRepo := persistence.NewGormTransactionRepository(db.DB)

	// Initialize JWT service and token blacklist
	jwtService := auth.NewJWTService(cfg.JWT)
	blacklist, err := cache.NewBlacklistFactory(cfg.Redis, cache.WithLogger(log)).Create()
	if err != nil {
		log.Fatal("Failed to create token blacklist", zap.Error(err))
	}

	// Initialize object storage for post images
	var objectStorage galleryapp.ObjectStorage
	if cfg.Storage.StubMode {
		log.Warn("Using stub object storage, uploads will not be persisted")
		objectStorage = storage.NewStubObjectStorage()
	} else {
		s3Storage, err := storage.NewS3ObjectStorage(&cfg.Storage, storage.WithLogger(log))
		if err != nil {
			log.Fatal("Failed to initialize object storage", zap.Error(err))
		}

		bucketCtx, cancelBucket := context.WithTimeout(context.Background(), 10*time.Second)
		if err := s3Storage.EnsureBucket(bucketCtx); err != nil {
			cancelBucket()
			log.Fatal("Failed to ensure storage bucket", zap.Error(err))
		}
		cancelBucket()
		objectStorage = s3Storage
	}

	// Initialize application services
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, log)
	classService := classroomapp.NewClassService(classRepo, userRepo, classroomapp.ClassServiceConfig{
		CodeAttempts:           cfg.Class.CodeAttempts,
		StudentDefaultPassword: cfg.Student.DefaultPassword,
		StudentNamePrefix:      cfg.Student.NamePrefix,
	}, log)
	postService := galleryapp.NewPostService(postRepo, userRepo, classRepo, txRepo, log)
	uploadService := galleryapp.NewUploadService(objectStorage, galleryapp.UploadServiceConfig{
		PresignExpiry: cfg.Storage.PresignExpiry,
		PublicBaseURL: cfg.Storage.PublicBaseURL,
	}, log)
	shopService := shopapp.NewShopService(itemRepo, inventoryRepo, userRepo, txRepo, log)
	pointService := ledgerapp.NewPointService(txRepo, userRepo, classRepo, log)

	// Set gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Report field names from json tags in binding errors
	middleware.SetupValidator()

	// Create gin engine with base middleware
	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	}
	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Token middleware with blacklist support
	jwtConfig := middleware.DefaultJWTConfig(jwtService)
	jwtConfig.TokenBlacklist = blacklist
	jwtConfig.Logger = log
	authMiddleware := middleware.JWTAuthMiddlewareWithConfig(jwtConfig)

	// Mount routes
	authRate := 0
	if cfg.HTTP.RateLimitEnabled {
		authRate = cfg.HTTP.RateLimitRequests
	}
	router.Setup(engine, router.Config{
		Handlers: router.Handlers{
			Auth:   handler.NewAuthHandler(authService),
			Class:  handler.NewClassHandler(classService),
			Post:   handler.NewPostHandler(postService, uploadService),
			Shop:   handler.NewShopHandler(shopService),
			Point:  handler.NewPointHandler(pointService),
			System: handler.NewSystemHandler(db.Ping),
		},
		AuthMiddleware:    authMiddleware,
		MaxBodyBytes:      cfg.HTTP.MaxBodySize,
		AuthRatePerMinute: authRate,
	})

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
