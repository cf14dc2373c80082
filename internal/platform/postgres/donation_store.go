package postgres

import (
	"context"
	"log/slog"

	"github.com/adoptly/adopt-api/internal/domain"
	"github.com/adoptly/adopt-api/internal/platform/logger"
	"github.com/adoptly/adopt-api/internal/store"
)

// PostgresDonationStore implements the store.DonationStore interface using
// a PostgreSQL database as the storage backend.
type PostgresDonationStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresDonationStore creates a new PostgreSQL implementation of the
// DonationStore interface.
func NewPostgresDonationStore(db store.DBTX, logger *slog.Logger) *PostgresDonationStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresDonationStore{
		db:     db,
		logger: logger.With(slog.String("component", "donation_store")),
	}
}

// Ensure PostgresDonationStore implements store.DonationStore.
var _ store.DonationStore = (*PostgresDonationStore)(nil)

// Create implements store.DonationStore.Create.
func (s *PostgresDonationStore) Create(ctx context.Context, donation *domain.Donation) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := donation.Validate(); err != nil {
		log.Warn("donation validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO donations (id, email, amount, message, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(ctx, query,
		donation.ID, donation.Email, donation.Amount, donation.Message, donation.CreatedAt)
	if err != nil {
		log.Error("failed to create donation",
			slog.String("error", err.Error()),
			slog.String("donation_id", donation.ID.String()))
		return MapError(err)
	}

	log.Info("donation created successfully",
		slog.String("donation_id", donation.ID.String()))
	return nil
}

// List implements store.DonationStore.List.
func (s *PostgresDonationStore) List(ctx context.Context) ([]domain.Donation, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, email, amount, message, created_at
		FROM donations
		ORDER BY created_at
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list donations", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	donations := make([]domain.Donation, 0)
	for rows.Next() {
		var d domain.Donation
		if err := rows.Scan(&d.ID, &d.Email, &d.Amount, &d.Message, &d.CreatedAt); err != nil {
			log.Error("failed to scan donation row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		donations = append(donations, d)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return donations, nil
}
