package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/adoptly/adopt-api/internal/config"
	"github.com/adoptly/adopt-api/internal/platform/postgres"
	"github.com/adoptly/adopt-api/internal/service/auth"
	"github.com/adoptly/adopt-api/internal/store"
)

// application holds the dependency graph: configuration, logging, the
// database handle, stores and services. Handlers are built from it when
// the router is assembled.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	jwtService auth.JWTService

	userStore     store.UserStore
	petStore      store.PetStore
	adoptionStore store.AdoptionStore
	reviewStore   store.ReviewStore
	donationStore store.DonationStore
}

// newApplication wires stores and services on top of an established
// database connection.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	return &application{
		config:        cfg,
		logger:        logger,
		db:            db,
		jwtService:    jwtService,
		userStore:     postgres.NewPostgresUserStore(db, logger),
		petStore:      postgres.NewPostgresPetStore(db, logger),
		adoptionStore: postgres.NewPostgresAdoptionStore(db, logger),
		reviewStore:   postgres.NewPostgresReviewStore(db, logger),
		donationStore: postgres.NewPostgresDonationStore(db, logger),
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}
}
