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

// PostgresPetStore implements the store.PetStore interface using a
// PostgreSQL database as the storage backend.
type PostgresPetStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresPetStore creates a new PostgreSQL implementation of the
// PetStore interface.
func NewPostgresPetStore(db store.DBTX, logger *slog.Logger) *PostgresPetStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresPetStore{
		db:     db,
		logger: logger.With(slog.String("component", "pet_store")),
	}
}

// Ensure PostgresPetStore implements store.PetStore.
var _ store.PetStore = (*PostgresPetStore)(nil)

// Create implements store.PetStore.Create.
func (s *PostgresPetStore) Create(ctx context.Context, pet *domain.Pet) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := pet.Validate(); err != nil {
		log.Warn("pet validation failed during create",
			slog.String("error", err.Error()),
			slog.String("pet_id", pet.ID.String()))
		return err
	}

	query := `
		INSERT INTO pets (id, pet_name, category, age, breed, location, description, image_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := s.db.ExecContext(ctx, query,
		pet.ID, pet.PetName, pet.Category, pet.Age,
		pet.Breed, pet.Location, pet.Description, pet.ImageURL, pet.CreatedAt)
	if err != nil {
		log.Error("failed to create pet",
			slog.String("error", err.Error()),
			slog.String("pet_id", pet.ID.String()))
		return MapError(err)
	}

	log.Info("pet created successfully",
		slog.String("pet_id", pet.ID.String()),
		slog.String("category", pet.Category))
	return nil
}

// List implements store.PetStore.List. An empty category returns the whole
// collection; otherwise rows are filtered by equality on category.
func (s *PostgresPetStore) List(ctx context.Context, category string) ([]domain.Pet, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, pet_name, category, age, breed, location, description, image_url, created_at
		FROM pets
	`
	var args []any
	category = strings.ToLower(strings.TrimSpace(category))
	if category != "" {
		query += ` WHERE category = $1`
		args = append(args, category)
	}
	query += ` ORDER BY created_at`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list pets", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	pets := make([]domain.Pet, 0)
	for rows.Next() {
		var p domain.Pet
		if err := rows.Scan(&p.ID, &p.PetName, &p.Category, &p.Age,
			&p.Breed, &p.Location, &p.Description, &p.ImageURL, &p.CreatedAt); err != nil {
			log.Error("failed to scan pet row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		pets = append(pets, p)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return pets, nil
}

// GetByID implements store.PetStore.GetByID.
func (s *PostgresPetStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Pet, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, pet_name, category, age, breed, location, description, image_url, created_at
		FROM pets
		WHERE id = $1
	`

	var p domain.Pet
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.PetName, &p.Category, &p.Age,
		&p.Breed, &p.Location, &p.Description, &p.ImageURL, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("pet not found", slog.String("pet_id", id.String()))
			return nil, store.ErrPetNotFound
		}
		log.Error("failed to get pet by ID",
			slog.String("error", err.Error()),
			slog.String("pet_id", id.String()))
		return nil, MapError(err)
	}

	return &p, nil
}

// Delete implements store.PetStore.Delete. Returns store.ErrPetNotFound
// when no rows were removed.
func (s *PostgresPetStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete pet",
			slog.String("error", err.Error()),
			slog.String("pet_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "pet"); err != nil {
		log.Debug("pet not found during delete", slog.String("pet_id", id.String()))
		return store.ErrPetNotFound
	}

	log.Info("pet deleted successfully", slog.String("pet_id", id.String()))
	return nil
}
