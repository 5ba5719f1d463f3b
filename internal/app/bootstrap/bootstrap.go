package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	quotaservice "emprende/contexts/admissions/quota-service"
	quotapostgres "emprende/contexts/admissions/quota-service/adapters/postgres"
	lotteryengine "emprende/contexts/evaluation/lottery-engine"
	"emprende/contexts/evaluation/lottery-engine/adapters/acta"
	"emprende/contexts/evaluation/lottery-engine/adapters/entropy"
	lotterypostgres "emprende/contexts/evaluation/lottery-engine/adapters/postgres"
	scoringservice "emprende/contexts/evaluation/scoring-service"
	scoringpostgres "emprende/contexts/evaluation/scoring-service/adapters/postgres"
	"emprende/internal/platform/config"
	"emprende/internal/platform/db"
	"emprende/internal/platform/httpserver"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	if cfg.AutoMigrate {
		if err := migrate(pg); err != nil {
			_ = pg.Close()
			return nil, err
		}
	}

	quotaRepo := quotapostgres.NewRepository(pg.DB, logger)
	quotaModule := quotaservice.NewModule(quotaservice.Dependencies{
		Configs:            quotaRepo,
		Capacities:         quotaRepo,
		Admissions:         quotaRepo,
		Clock:              quotapostgres.SystemClock{},
		IDGenerator:        quotapostgres.UUIDGenerator{},
		DefaultConvocation: cfg.DefaultConvocation,
		Logger:             logger,
	})

	scoringRepo := scoringpostgres.NewRepository(pg.DB, logger)
	scoringModule := scoringservice.NewModule(scoringservice.Dependencies{
		Criteria:    scoringRepo,
		Evaluations: scoringRepo,
		Applicants:  scoringRepo,
		Clock:       scoringpostgres.SystemClock{},
		IDGenerator: scoringpostgres.UUIDGenerator{},
		Logger:      logger,
	})

	lotteryRepo := lotterypostgres.NewRepository(pg.DB, logger)
	lotteryModule := lotteryengine.NewModule(lotteryengine.Dependencies{
		Records:     lotteryRepo,
		Renderer:    acta.TextRenderer{},
		Seeds:       entropy.CryptoSeedSource{},
		Clock:       lotterypostgres.SystemClock{},
		IDGenerator: lotterypostgres.UUIDGenerator{},
		Logger:      logger,
	})

	server := httpserver.New(quotaModule, scoringModule, lotteryModule, logger, normalizeAddr(cfg.HTTPPort))
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func migrate(pg *db.Postgres) error {
	if err := quotapostgres.AutoMigrate(pg.DB); err != nil {
		return err
	}
	if err := scoringpostgres.AutoMigrate(pg.DB); err != nil {
		return err
	}
	return lotterypostgres.AutoMigrate(pg.DB)
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
