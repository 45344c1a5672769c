package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/pkg/config"
	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/pkg/database"
	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/pkg/discord"
	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/pkg/health"
	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/pkg/logger"
	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/pkg/metrics"
	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/pkg/middleware"
	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/pkg/retry"
	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/pkg/server"
	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/utils"
	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/services/guild/gateway"
	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/services/guild/handler"
	httpHandler "github.com/Modr3d/Seven-Knights-Rebirth-GBRS/services/guild/handler/http"
	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/services/guild/repository"
	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/services/guild/usecase"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	configs := config.InitConfig(configPath)
	if err := config.Validate(configs); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	shutdown := server.NewShutdownManager(zapLogger)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		shutdown.Shutdown(ctx)
	}()
	shutdown.Register("logger", func(context.Context) error {
		return zapLogger.Close()
	})

	healthService := health.NewHealthService()

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	shutdown.Register("postgres", func(context.Context) error {
		return postgresClient.Close()
	})
	healthService.AddChecker("postgres", postgresClient)

	if configs.Database.AutoMigrate {
		applied, err := database.Migrate(cmd.Context(), postgresClient.GetDB())
		if err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
		zapLogger.Info("Database migrated", logger.Int("applied", applied))
	}

	var rateLimitClient *redis.Client
	if configs.Redis.Host != "" {
		redisClient, err := database.NewRedisClient(configs.Redis)
		if err != nil {
			return fmt.Errorf("failed to connect to Redis: %w", err)
		}
		shutdown.Register("redis", func(context.Context) error {
			return redisClient.Close()
		})
		healthService.AddChecker("redis", redisClient)
		rateLimitClient = redisClient.GetClient()
	} else {
		zapLogger.Warn("REDIS_HOST not set, auth routes are not rate limited")
	}

	discordClient, err := discord.NewClient(configs.Discord.BotToken)
	if err != nil {
		return fmt.Errorf("failed to create Discord client: %w", err)
	}
	shutdown.Register("discord", discordClient.Close)

	appMetrics := metrics.New()

	// Initialize repository, gateway and usecase
	guildRepo := repository.NewGuildRepo(configs, postgresClient.GetDB())
	guildGW := gateway.NewGuildGW(discordClient, retry.New(gateway.DeliveryRetryConfig(), zapLogger))
	guildUC := usecase.NewGuildUC(guildRepo, guildGW, configs, appMetrics)

	// Handlers for HTTP
	guildHandler := handler.NewHandler(
		httpHandler.NewAuthHandler(guildUC),
		httpHandler.NewScoreHandler(guildUC),
		httpHandler.NewRosterHandler(guildUC),
		rateLimitClient,
		configs,
	)

	e := echo.New()
	e.HideBanner = true
	e.Validator = utils.NewRequestValidator()

	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(appMetrics.Middleware())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: configs.CORS.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	health.RegisterHealthEndpoints(e, appName, healthService)
	e.GET("/metrics", echo.WrapHandler(appMetrics.Handler()))
	guildHandler.RegisterRoutes(e)

	srv := server.NewGracefulServer(
		e,
		zapLogger,
		configs.Server.Host,
		configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second,
	)
	return srv.Start()
}
