// Package profile persists business profiles so users can regenerate or
// redeploy a site without re-entering everything. The business payload is
// stored as a JSONB document; PATCH merges partial updates into it.
package profile

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"bizforge/internal/common/errors"
	"bizforge/internal/models"
)

// Store reads and writes saved profiles in Postgres.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Schema is applied at startup. JSONB keeps the business document
// schemaless so new profile fields never need a migration.
const Schema = `
CREATE TABLE IF NOT EXISTS saved_profiles (
	id         UUID PRIMARY KEY,
	business   JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
)`

// EnsureSchema creates the profiles table when missing.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("ensure saved_profiles schema: %w", err)
	}
	return nil
}

// Create stores a new profile and returns it with its generated ID.
func (s *Store) Create(ctx context.Context, biz models.BusinessInfo) (models.SavedProfile, error) {
	now := time.Now().UTC()
	saved := models.SavedProfile{
		ID:        uuid.NewString(),
		Business:  biz,
		CreatedAt: now,
		UpdatedAt: now,
	}

	payload, err := json.Marshal(saved.Business)
	if err != nil {
		return models.SavedProfile{}, errors.NewProfileStoreFailedError(err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO saved_profiles (id, business, created_at, updated_at) VALUES ($1, $2, $3, $4)`,
		saved.ID, payload, saved.CreatedAt, saved.UpdatedAt,
	)
	if err != nil {
		return models.SavedProfile{}, errors.NewProfileStoreFailedError(err)
	}
	return saved, nil
}

// Get loads one profile by ID.
func (s *Store) Get(ctx context.Context, id string) (models.SavedProfile, error) {
	var (
		saved   models.SavedProfile
		payload []byte
	)

	row := s.db.QueryRowContext(ctx,
		`SELECT id, business, created_at, updated_at FROM saved_profiles WHERE id = $1`, id)
	if err := row.Scan(&saved.ID, &payload, &saved.CreatedAt, &saved.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return models.SavedProfile{}, errors.NewProfileNotFoundError(id)
		}
		return models.SavedProfile{}, errors.NewProfileStoreFailedError(err)
	}

	if err := json.Unmarshal(payload, &saved.Business); err != nil {
		return models.SavedProfile{}, errors.NewProfileStoreFailedError(err)
	}
	return saved, nil
}

// Patch merges the supplied JSON fragment into the stored business document
// and returns the updated profile. Only top-level keys present in the patch
// are replaced; everything else is preserved.
func (s *Store) Patch(ctx context.Context, id string, patch json.RawMessage) (models.SavedProfile, error) {
	saved, err := s.Get(ctx, id)
	if err != nil {
		return models.SavedProfile{}, err
	}

	merged, err := mergeBusiness(saved.Business, patch)
	if err != nil {
		return models.SavedProfile{}, errors.NewProfileValidationFailedError(err.Error())
	}

	saved.Business = merged
	saved.UpdatedAt = time.Now().UTC()

	payload, err := json.Marshal(saved.Business)
	if err != nil {
		return models.SavedProfile{}, errors.NewProfileStoreFailedError(err)
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE saved_profiles SET business = $1, updated_at = $2 WHERE id = $3`,
		payload, saved.UpdatedAt, id,
	)
	if err != nil {
		return models.SavedProfile{}, errors.NewProfileStoreFailedError(err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return models.SavedProfile{}, errors.NewProfileNotFoundError(id)
	}
	return saved, nil
}

// mergeBusiness applies a top-level JSON merge: keys in the patch replace
// the stored value wholesale, absent keys are untouched.
func mergeBusiness(current models.BusinessInfo, patch json.RawMessage) (models.BusinessInfo, error) {
	base, err := json.Marshal(current)
	if err != nil {
		return models.BusinessInfo{}, err
	}

	var baseMap map[string]json.RawMessage
	if err := json.Unmarshal(base, &baseMap); err != nil {
		return models.BusinessInfo{}, err
	}

	var patchMap map[string]json.RawMessage
	if err := json.Unmarshal(patch, &patchMap); err != nil {
		return models.BusinessInfo{}, fmt.Errorf("invalid patch document: %w", err)
	}

	for key, value := range patchMap {
		baseMap[key] = value
	}

	mergedJSON, err := json.Marshal(baseMap)
	if err != nil {
		return models.BusinessInfo{}, err
	}

	var merged models.BusinessInfo
	if err := json.Unmarshal(mergedJSON, &merged); err != nil {
		return models.BusinessInfo{}, fmt.Errorf("patch does not fit the business shape: %w", err)
	}
	return merged, nil
}
