// Package main is the entry point for the QPX trips service.
//
//	@title						QPX Trips API
//	@version					1.0.0
//	@description				Runs QPX Express flight searches, enriches every priced itinerary with airport and airline reference data and stores the resulting trips.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/gabrieltaylor/qpx/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/gabrieltaylor/qpx/docs"

	triphttp "github.com/gabrieltaylor/qpx/internal/adapter/http"
	"github.com/gabrieltaylor/qpx/internal/adapter/http/middleware"
	"github.com/gabrieltaylor/qpx/internal/adapter/postgres"
	"github.com/gabrieltaylor/qpx/internal/adapter/qpx"
	"github.com/gabrieltaylor/qpx/internal/adapter/refdata"
	"github.com/gabrieltaylor/qpx/internal/config"
	"github.com/gabrieltaylor/qpx/internal/infrastructure/logger"
	"github.com/gabrieltaylor/qpx/internal/infrastructure/timeutil"
	"github.com/gabrieltaylor/qpx/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
	startupTimeout  = 2 * time.Minute
)

func main() {
	cfg := config.MustLoad()
	log := setupLogger(cfg)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Msg("Configuration loaded")

	startupCtx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	db, err := setupDatabase(startupCtx, cfg, log)
	if err != nil {
		cancel()
		log.Fatal().Err(err).Msg("Failed to prepare database")
	}
	defer db.Close()

	airports := postgres.NewAirportRepository(db)
	airlines := postgres.NewAirlineRepository(db)
	trips := postgres.NewTripRepository(db)

	loader := refdata.NewLoader(airports, airlines, refdata.Config{
		AirportsFile:       cfg.ReferenceData.AirportsFile,
		AirlinesFile:       cfg.ReferenceData.AirlinesFile,
		FirstClassAirports: cfg.ReferenceData.FirstClassAirports,
	}, log)
	err = loader.LoadAll(startupCtx)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load reference data")
	}

	tripUseCase := usecase.NewTripSearchUseCase(usecase.Dependencies{
		Provider: newQPXClient(cfg, log),
		Airports: airports,
		Airlines: airlines,
		Trips:    trips,
		Clock:    timeutil.NewRealClock(),
		Logger:   log,
	}, &usecase.Config{
		Solutions:       cfg.QPX.MaxSolutions,
		PlacesAvailable: cfg.Trips.PlacesAvailableMean,
	})

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log)
	triphttp.RegisterRoutes(e, triphttp.NewTripHandler(tripUseCase))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, log)
}

// setupLogger builds the root logger from config.
func setupLogger(cfg *config.Config) *logger.Logger {
	return logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "qpx-trips",
	})
}

// setupDatabase connects to the trip store and creates missing tables.
func setupDatabase(ctx context.Context, cfg *config.Config, log *logger.Logger) (*sqlx.DB, error) {
	dsn, err := cfg.Database.DSN()
	if err != nil {
		return nil, err
	}

	db, err := postgres.Open(ctx, postgres.Config{
		DSN:             dsn,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnectAttempts: cfg.Database.ConnectAttempts,
	}, log)
	if err != nil {
		return nil, err
	}

	if err := postgres.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// newQPXClient assembles the HTTP transport, response cache and client.
func newQPXClient(cfg *config.Config, log *logger.Logger) *qpx.Client {
	var transport qpx.Transport = qpx.NewHTTPTransport(cfg.QPX.RequestTimeout)
	if cfg.QPX.CacheTTL > 0 {
		transport = qpx.NewCachedTransport(transport, qpx.NewResponseCache(), cfg.QPX.CacheTTL)
	}

	if cfg.QPX.APIKey == "" {
		log.Warn().Msg("QPX_API_KEY is not set, QPX will reject searches")
	}

	return qpx.NewClient(transport, qpx.Config{
		TripsURL: cfg.QPX.TripsURL,
		APIKey:   cfg.QPX.APIKey,
	}, log)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
