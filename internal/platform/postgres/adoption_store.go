package postgres

import (
	"context"
	"log/slog"

	"github.com/adoptly/adopt-api/internal/domain"
	"github.com/adoptly/adopt-api/internal/platform/logger"
	"github.com/adoptly/adopt-api/internal/store"
)

// PostgresAdoptionStore implements the store.AdoptionStore interface using
// a PostgreSQL database as the storage backend.
type PostgresAdoptionStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAdoptionStore creates a new PostgreSQL implementation of the
// AdoptionStore interface.
func NewPostgresAdoptionStore(db store.DBTX, logger *slog.Logger) *PostgresAdoptionStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAdoptionStore{
		db:     db,
		logger: logger.With(slog.String("component", "adoption_store")),
	}
}

// Ensure PostgresAdoptionStore implements store.AdoptionStore.
var _ store.AdoptionStore = (*PostgresAdoptionStore)(nil)

// Create implements store.AdoptionStore.Create.
func (s *PostgresAdoptionStore) Create(ctx context.Context, adoption *domain.Adoption) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := adoption.Validate(); err != nil {
		log.Warn("adoption validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO adoptions (id, email, pet_id, phone, address, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(ctx, query,
		adoption.ID, adoption.Email, adoption.PetID,
		adoption.Phone, adoption.Address, adoption.CreatedAt)
	if err != nil {
		log.Error("failed to create adoption request",
			slog.String("error", err.Error()),
			slog.String("adoption_id", adoption.ID.String()))
		return MapError(err)
	}

	log.Info("adoption request created successfully",
		slog.String("adoption_id", adoption.ID.String()),
		slog.String("pet_id", adoption.PetID))
	return nil
}

// List implements store.AdoptionStore.List.
func (s *PostgresAdoptionStore) List(ctx context.Context) ([]domain.Adoption, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, email, pet_id, phone, address, created_at
		FROM adoptions
		ORDER BY created_at
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list adoption requests", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	adoptions := make([]domain.Adoption, 0)
	for rows.Next() {
		var a domain.Adoption
		if err := rows.Scan(&a.ID, &a.Email, &a.PetID, &a.Phone, &a.Address, &a.CreatedAt); err != nil {
			log.Error("failed to scan adoption row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		adoptions = append(adoptions, a)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return adoptions, nil
}
