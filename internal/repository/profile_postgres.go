package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/futig/counsellor-backend/internal/entity"
	"github.com/futig/counsellor-backend/internal/repository/sqlc"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ProfileRepository defines the interface for profile persistence keyed by email
type ProfileRepository interface {
	GetProfile(ctx context.Context, email string) (*entity.Profile, error)
	UpsertProfile(ctx context.Context, profile *entity.Profile) (*entity.Profile, error)
	DeleteProfile(ctx context.Context, email string) error
}

var _ ProfileRepository = &ProfilePostgres{}

// ProfilePostgres implements ProfileRepository using PostgreSQL
type ProfilePostgres struct {
	db      *pgxpool.Pool
	queries *sqlc.Queries
}

func NewProfilePostgres(db *pgxpool.Pool) *ProfilePostgres {
	return &ProfilePostgres{
		db:      db,
		queries: sqlc.New(db),
	}
}

func (r *ProfilePostgres) GetProfile(ctx context.Context, email string) (*entity.Profile, error) {
	dbProfile, err := r.queries.GetProfileByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrProfileNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}

	return toEntityProfile(&dbProfile)
}

// UpsertProfile inserts the profile or replaces the one stored under the same
// email. An existing row keeps its id.
func (r *ProfilePostgres) UpsertProfile(ctx context.Context, profile *entity.Profile) (*entity.Profile, error) {
	params, err := toUpsertProfileParams(profile)
	if err != nil {
		return nil, err
	}

	dbProfile, err := r.queries.UpsertProfile(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("upsert profile: %w", err)
	}

	return toEntityProfile(&dbProfile)
}

func (r *ProfilePostgres) DeleteProfile(ctx context.Context, email string) error {
	if err := r.queries.DeleteProfileByEmail(ctx, email); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}

	return nil
}
