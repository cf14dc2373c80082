package postgres

import (
	"context"
	"log/slog"

	"github.com/adoptly/adopt-api/internal/domain"
	"github.com/adoptly/adopt-api/internal/platform/logger"
	"github.com/adoptly/adopt-api/internal/store"
)

// PostgresReviewStore implements the store.ReviewStore interface using a
// PostgreSQL database as the storage backend.
type PostgresReviewStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresReviewStore creates a new PostgreSQL implementation of the
// ReviewStore interface.
func NewPostgresReviewStore(db store.DBTX, logger *slog.Logger) *PostgresReviewStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresReviewStore{
		db:     db,
		logger: logger.With(slog.String("component", "review_store")),
	}
}

// Ensure PostgresReviewStore implements store.ReviewStore.
var _ store.ReviewStore = (*PostgresReviewStore)(nil)

// Create implements store.ReviewStore.Create.
func (s *PostgresReviewStore) Create(ctx context.Context, review *domain.Review) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := review.Validate(); err != nil {
		log.Warn("review validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO reviews (id, email, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(ctx, query,
		review.ID, review.Email, review.Rating, review.Comment, review.CreatedAt)
	if err != nil {
		log.Error("failed to create review",
			slog.String("error", err.Error()),
			slog.String("review_id", review.ID.String()))
		return MapError(err)
	}

	log.Info("review created successfully",
		slog.String("review_id", review.ID.String()))
	return nil
}

// List implements store.ReviewStore.List.
func (s *PostgresReviewStore) List(ctx context.Context) ([]domain.Review, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, email, rating, comment, created_at
		FROM reviews
		ORDER BY created_at
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list reviews", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	reviews := make([]domain.Review, 0)
	for rows.Next() {
		var rv domain.Review
		if err := rows.Scan(&rv.ID, &rv.Email, &rv.Rating, &rv.Comment, &rv.CreatedAt); err != nil {
			log.Error("failed to scan review row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return reviews, nil
}
