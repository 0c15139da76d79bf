package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	internalhttp "opsmeter/internal/http"
	"opsmeter/internal/ingestors"
	"opsmeter/internal/models"
	"opsmeter/internal/queries"
	"opsmeter/internal/shared/configs"
	"opsmeter/internal/shared/loggers"
	"opsmeter/internal/stores"
	"opsmeter/internal/streams"
	"opsmeter/internal/tracking"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	sampleQueue      *streams.PartitionedQueue[models.Sample]
	sampleConsumer   streams.SampleConsumer
	backgroundCtx    context.Context
	backgroundCancel context.CancelFunc
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "opsmeter").
		Logger()

	catalog, err := newMeterCatalog(config.Meters)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize meter catalog: %w", err)
	}

	// Initialize stream queue and the lanes owned by its workers
	sampleQueue := streams.NewPartitionedQueue[models.Sample]()
	lanes, err := tracking.NewMeterLanes(catalog, sampleQueue.PartitionCount(), sampleQueue.PartitionOf, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize meter lanes: %w", err)
	}

	// Initialize tracking service
	snapshotStore := stores.NewSnapshotStore()
	trackingService := tracking.NewTrackingService(snapshotStore)
	consumerLogger := appLogger.With().Str(loggers.FieldComponent, "consumer").Logger()
	tickInterval := time.Duration(config.Tracking.TickIntervalMs) * time.Millisecond
	sampleConsumer, err := streams.NewSampleConsumer(sampleQueue, lanes, trackingService, tickInterval, consumerLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sample consumer: %w", err)
	}

	// Initialize ingestion and query services
	sampleProducer := streams.NewSampleProducer(sampleQueue)
	ingestionService := ingestors.NewIngestionService(catalog, sampleProducer)
	queryService := queries.NewMeterQueryService(catalog, snapshotStore)

	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(ingestionService, queryService, httpLogger)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:         config,
		appLogger:      appLogger,
		server:         server,
		sampleQueue:    sampleQueue,
		sampleConsumer: sampleConsumer,
	}, nil
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting opsmeter service on port %d (log_level=%s, rate_meters=%d, aggregate_meters=%d, tick_interval_ms=%d)",
			app.config.Server.Port,
			app.config.Log.Level,
			len(app.config.Meters.Rates),
			len(app.config.Meters.Aggregates),
			app.config.Tracking.TickIntervalMs)

	app.backgroundCtx, app.backgroundCancel = context.WithCancel(context.Background())
	app.sampleConsumer.Start(app.backgroundCtx)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Stop accepting samples
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	// 2) Cancel background consumers
	if app.backgroundCancel != nil {
		app.backgroundCancel()
		app.appLogger.Info().Msg("Background consumers cancelled")
	}

	// 3) Wait for background consumers to finish, then release the queue
	app.sampleConsumer.Stop()
	app.sampleQueue.Close()
	app.appLogger.Info().Msg("Background consumers stopped")

	return nil
}
