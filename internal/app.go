package internal

import (
	"context"
	"fmt"
	"listing-service/internal/adapters/content_client"
	"listing-service/internal/adapters/content_repository"
	logger_adapter "listing-service/internal/adapters/logger"
	"listing-service/internal/adapters/mockcatalog"
	postgres_adapter "listing-service/internal/adapters/postgres"
	"listing-service/internal/adapters/rest"
	"listing-service/internal/configs"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"listing-service/internal/core/usecase"
	"listing-service/pkg/fluentlogger"
	"listing-service/pkg/postgres"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config    *configs.AppConfig
	dbPool    *pgxpool.Pool
	apiServer *rest.Server

	fluentClient *fluent.Fluent
	logger       port.LoggerPort
}

func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. Логгеры ---
	activeLoggers := []port.LoggerPort{
		logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
			Level:    logger_adapter.ParseLevel(appConfig.StdoutLogger.Level),
			IsJSON:   appConfig.StdoutLogger.IsJSON,
			UseColor: true,
		}),
	}
	stdoutLogger := activeLoggers[0]

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, logger_adapter.ParseLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiLoggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{"service_name": appConfig.AppName})
	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- 2. Каталог объектов ---
	fixture, err := mockcatalog.LoadFixture()
	if err != nil {
		appLogger.Error("Failed to load property fixture", err, nil)
		return nil, err
	}

	var (
		catalog port.PropertyCatalogPort
		dbPool  *pgxpool.Pool
	)
	switch appConfig.Catalog.Backend {
	case configs.CatalogBackendPostgres:
		dbPool, catalog, err = newPostgresCatalog(appConfig.Database, fixture, appLogger)
		if err != nil {
			return nil, err
		}
	default:
		latency := mockcatalog.Latency{}
		if appConfig.Catalog.LatencyEnabled {
			latency = mockcatalog.DefaultLatency
		}
		catalog = mockcatalog.NewCatalog(fixture, latency)
		appLogger.Info("Mock property catalog initialized", port.Fields{
			"properties":      len(fixture),
			"latency_enabled": appConfig.Catalog.LatencyEnabled,
		})
	}

	// --- 3. Контент-сервис ---
	contentClient := content_client.NewClient(appConfig.Content.BaseURL, appConfig.Content.APIKey, appConfig.Content.Plugins)
	contentRepo := content_repository.NewRepository(contentClient)
	appLogger.Info("Content service client configured", port.Fields{"base_url": appConfig.Content.BaseURL})

	// --- 4. Use cases и REST ---
	catalogHandler := rest.NewCatalogHandler(
		usecase.NewListPropertiesUseCase(catalog),
		usecase.NewGetPropertyByIDUseCase(catalog),
		usecase.NewFindPropertiesUseCase(catalog),
	)
	contentHandler := rest.NewContentHandler(
		usecase.NewGetHeroStatsUseCase(contentRepo),
		usecase.NewListContentPropertiesUseCase(contentRepo),
		usecase.NewGetContentPropertyUseCase(contentRepo),
	)
	apiServer := rest.NewServer(rest.ServerConfig{
		Port:           appConfig.Rest.Port,
		AllowedOrigins: appConfig.Rest.AllowedOrigins,
	}, catalogHandler, contentHandler, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	return &App{
		config:    appConfig,
		dbPool:    dbPool,
		apiServer: apiServer,

		fluentClient: fluentClient,
		logger:       appLogger,
	}, nil
}

func newPostgresCatalog(cfg configs.DBconfig, fixture []domain.Property, appLogger port.LoggerPort) (*pgxpool.Pool, port.PropertyCatalogPort, error) {
	ctx := contextkeys.ContextWithLogger(context.Background(), appLogger)

	dbPool, err := postgres.NewClient(ctx, postgres.Config{DatabaseURL: cfg.URL, MaxConns: cfg.MaxConns})
	if err != nil {
		appLogger.Error("Failed to connect to PostgreSQL", err, nil)
		return nil, nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	appLogger.Info("Successfully connected to PostgreSQL pool!", nil)

	catalog, err := postgres_adapter.NewPropertyCatalogAdapter(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, nil, fmt.Errorf("failed to create postgres catalog adapter: %w", err)
	}
	if err := catalog.EnsureSchema(ctx); err != nil {
		appLogger.Error("Failed to apply database schema", err, nil)
		dbPool.Close()
		return nil, nil, err
	}
	if cfg.SeedFixture {
		if _, err := catalog.Seed(ctx, fixture); err != nil {
			appLogger.Error("Failed to seed properties table", err, nil)
			dbPool.Close()
			return nil, nil, err
		}
	}

	return dbPool, catalog, nil
}

// Run запускает сервер и блокируется до сигнала остановки или ошибки сервера.
func (a *App) Run() error {
	defer a.shutdown()

	a.logger.Info("Application is starting...", nil)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- a.apiServer.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case err := <-serverErrors:
		if err != nil {
			a.logger.Error("Server failed, shutting down", err, nil)
			return err
		}
	}
	return nil
}

func (a *App) shutdown() {
	a.logger.Info("Shutdown sequence initiated...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.apiServer.Stop(ctx); err != nil {
		a.logger.Error("Error during API server shutdown", err, nil)
	}

	if a.dbPool != nil {
		a.dbPool.Close()
		a.logger.Info("PostgreSQL pool closed.", nil)
	}

	a.logger.Info("Application shut down gracefully.", nil)

	if a.fluentClient != nil {
		if err := a.fluentClient.Close(); err != nil {
			// fluent уже может быть недоступен, пишем напрямую в stderr
			fmt.Fprintf(os.Stderr, "ERROR: Error closing fluent client: %v\n", err)
		}
	}
}
