package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/adoptly/adopt-api/internal/domain"
	"github.com/adoptly/adopt-api/internal/platform/logger"
	"github.com/adoptly/adopt-api/internal/store"
)

// PostgresUserStore implements the store.UserStore interface using a
// PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the
// UserStore interface. The connection is initialized and managed by the
// caller. If logger is nil, the default logger is used.
func NewPostgresUserStore(db store.DBTX, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore.
var _ store.UserStore = (*PostgresUserStore)(nil)

// CreateIfAbsent implements store.UserStore.CreateIfAbsent. The unique
// index on email plus ON CONFLICT DO NOTHING makes the insert atomic: two
// concurrent creates for the same email cannot both insert, so the
// check-then-insert race of a naive implementation cannot happen.
func (s *PostgresUserStore) CreateIfAbsent(ctx context.Context, user *domain.User) (*domain.User, bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during create",
			slog.String("error", err.Error()))
		return nil, false, err
	}

	query := `
		INSERT INTO users (id, name, email, photo_url, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO NOTHING
	`
	result, err := s.db.ExecContext(ctx, query,
		user.ID, user.Name, user.Email, user.PhotoURL, user.CreatedAt)
	if err != nil {
		log.Error("failed to create user",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return nil, false, MapError(err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, false, MapError(err)
	}

	if rows == 1 {
		log.Info("user created successfully",
			slog.String("user_id", user.ID.String()))
		return user, true, nil
	}

	// Conflict: another record already owns this email. Return it.
	existing, err := s.GetByEmail(ctx, user.Email)
	if err != nil {
		return nil, false, err
	}

	log.Debug("user already exists, returning stored record",
		slog.String("user_id", existing.ID.String()))
	return existing, false, nil
}

// List implements store.UserStore.List.
func (s *PostgresUserStore) List(ctx context.Context) ([]domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, email, photo_url, created_at
		FROM users
		ORDER BY created_at
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list users", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	users := make([]domain.User, 0)
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PhotoURL, &u.CreatedAt); err != nil {
			log.Error("failed to scan user row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return users, nil
}

// GetByEmail implements store.UserStore.GetByEmail.
func (s *PostgresUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, email, photo_url, created_at
		FROM users
		WHERE email = $1
	`

	var u domain.User
	err := s.db.QueryRowContext(ctx, query, strings.ToLower(strings.TrimSpace(email))).Scan(
		&u.ID, &u.Name, &u.Email, &u.PhotoURL, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found", slog.String("email_present", "true"))
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user by email", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	return &u, nil
}

// Delete implements store.UserStore.Delete. Zero removed rows is reported,
// not treated as an error.
func (s *PostgresUserStore) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete user",
			slog.String("error", err.Error()),
			slog.String("user_id", id.String()))
		return 0, MapError(err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, MapError(err)
	}

	log.Info("user delete executed",
		slog.String("user_id", id.String()),
		slog.Int64("deleted_count", deleted))
	return deleted, nil
}
