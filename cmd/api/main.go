// @title           Nomad Place API
// @version         1.0
// @description     카페 탐색, 평점, 커뮤니티 게시판 API

// @contact.name   API Support
// @contact.email  support@nomadplace.kr

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api/places

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "nomad-place-api/docs" // Swagger docs import

	"nomad-place-api/internal/client"
	"nomad-place-api/internal/config"
	"nomad-place-api/internal/database"
	"nomad-place-api/internal/job"
	"nomad-place-api/internal/metrics"
	"nomad-place-api/internal/repository"
	"nomad-place-api/internal/router"
	"nomad-place-api/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := initLogger(cfg.Logger.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Set Gin mode
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Starting Place Service",
		zap.String("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("base_path", cfg.Server.BasePath),
	)

	// Initialize database (실패해도 앱은 시작됨 - 파드 생존 보장)
	dbConfig := database.Config{
		DSN:             cfg.Database.GetDSN(),
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	db, err := database.New(dbConfig)
	if err != nil {
		logger.Warn("Failed to connect to database on startup, will retry in background",
			zap.Error(err))
		// 백그라운드에서 DB 연결 재시도 (5초 간격)
		database.NewAsync(dbConfig, 5*time.Second)
	} else {
		logger.Info("Database connected successfully")

		// Run auto migration (DB 연결된 경우만)
		if err := database.AutoMigrate(db); err != nil {
			logger.Warn("Failed to run database migrations", zap.Error(err))
		} else {
			logger.Info("Database migrations completed")
		}
	}

	// Initialize Redis (실패해도 카탈로그 캐시만 비활성화됨)
	if err := database.InitRedis(*cfg, logger); err != nil {
		logger.Warn("Failed to connect to Redis, catalog cache disabled", zap.Error(err))
	}
	redisClient := database.GetRedis()

	// Initialize metrics
	m := metrics.NewWithLogger(logger)
	logger.Info("Metrics initialized")

	// Initialize Naver map client
	naverClient := client.NewNaverMapClient(
		cfg.Naver.ClientID,
		cfg.Naver.ClientSecret,
		10*time.Second,
		logger,
		m,
	)

	// Business metrics collector and catalog seed job (DB 연결된 경우만)
	var collector *metrics.BusinessMetricsCollector
	var seedCron *cron.Cron
	if db != nil {
		collector = metrics.NewBusinessMetricsCollector(db, m, logger)
		collector.Start()

		// DB query metrics
		database.RegisterMetricsCallbacks(db, m)

		cafeRepo := repository.NewCafeRepository(db)
		profileRepo := repository.NewProfileRepository(db)
		cafeService := service.NewCafeService(cafeRepo, profileRepo, naverClient, redisClient, m, logger)
		seedJob := job.NewSeedJob(cafeRepo, cafeService, cfg.Seed.FilePath, logger)

		// 기동 시 1회 시드, 이후 스케줄에 따라 카탈로그 갱신
		go seedJob.Run()

		seedCron = cron.New()
		if _, err := seedCron.AddJob(cfg.Seed.Schedule, seedJob); err != nil {
			logger.Warn("Failed to schedule catalog seed job",
				zap.String("schedule", cfg.Seed.Schedule),
				zap.Error(err),
			)
		} else {
			seedCron.Start()
			logger.Info("Catalog seed job scheduled", zap.String("schedule", cfg.Seed.Schedule))
		}
	}

	// Setup router with all dependencies
	r := router.Setup(router.Config{
		DB:          db,
		RedisClient: redisClient,
		Logger:      logger,
		JWTSecret:   cfg.JWT.Secret,
		BasePath:    cfg.Server.BasePath,
		Metrics:     m,
		NaverClient: naverClient,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Place Service started successfully",
			zap.String("address", srv.Addr),
			zap.String("swagger", fmt.Sprintf("http://localhost:%s/swagger/index.html", cfg.Server.Port)),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	if seedCron != nil {
		seedCron.Stop()
	}
	if collector != nil {
		collector.Stop()
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
}

// initLogger initializes the zap logger with the specified level
func initLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      zapLevel == zapcore.DebugLevel,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}
