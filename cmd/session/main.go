package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mittalrohan/kirana/internal/pkg/config"
	"github.com/mittalrohan/kirana/internal/pkg/database"
	"github.com/mittalrohan/kirana/internal/pkg/health"
	"github.com/mittalrohan/kirana/internal/pkg/logger"
	"github.com/mittalrohan/kirana/internal/pkg/middleware"
	nsqpkg "github.com/mittalrohan/kirana/internal/pkg/nsq"
	"github.com/mittalrohan/kirana/internal/pkg/server"
	"github.com/mittalrohan/kirana/services/session/gateway"
	"github.com/mittalrohan/kirana/services/session/handler"
	httpHandler "github.com/mittalrohan/kirana/services/session/handler/http"
	"github.com/mittalrohan/kirana/services/session/repository"
	"github.com/mittalrohan/kirana/services/session/usecase"
)

func main() {
	appName := "session-service"
	configPath := os.Getenv("CONFIG_PATH")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	shutdownMgr := server.NewShutdownManager(zapLogger)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	shutdownMgr.Register(func(context.Context) error { return postgresClient.Close() })

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	shutdownMgr.Register(func(context.Context) error { return redisClient.Close() })

	producer, err := nsqpkg.NewProducer(configs.NSQ.Address)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
	}
	shutdownMgr.Register(func(context.Context) error {
		producer.Stop()
		return nil
	})

	sessionRepo := repository.NewSessionRepo(configs, postgresClient.GetDB(), redisClient)
	sessionGW := gateway.NewSessionGW(configs, producer, zapLogger)
	sessionUC := usecase.NewSessionUC(sessionRepo, sessionGW, configs)

	authHandler := httpHandler.NewAuthHandler(sessionUC)
	cartHandler := httpHandler.NewCartHandler(sessionUC)
	roleHandler := httpHandler.NewRoleHandler(sessionUC)
	h := handler.NewHandler(authHandler, cartHandler, roleHandler, configs)

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.EchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName)

	otpRateLimiter := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RedisClient: redisClient.GetClient(),
		Resource:    "otp-request",
		Limit:       10,
		Period:      time.Minute,
	})
	h.RegisterRoutes(e, otpRateLimiter)

	shutdownTimeout := time.Duration(configs.Server.ShutdownTimeout) * time.Second
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port, shutdownTimeout)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server exited with error", logger.Err(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := shutdownMgr.Shutdown(ctx); err != nil {
		zapLogger.Error("Cleanup finished with errors", logger.Err(err))
	}
}
