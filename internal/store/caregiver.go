package store

import (
	"context"
	"fmt"
	"time"

	"nightnurse/internal/utils"
	"nightnurse/pkg/types"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const caregiverTableName = "caregivers"

var caregiverColumns = utils.StructTagValues(types.Caregiver{})

type CaregiverRepository struct {
	pool *pgxpool.Pool
}

func NewCaregiverRepository(pool *pgxpool.Pool) *CaregiverRepository {
	return &CaregiverRepository{pool: pool}
}

func (r *CaregiverRepository) Upsert(ctx context.Context, caregiver *types.Caregiver) (bool, error) {
	now := time.Now()
	caregiver.CreatedAt = now
	caregiver.UpdatedAt = now

	query, args, err := psql().
		Insert(caregiverTableName).
		Columns("full_name", "email", "phone", "certs", "years_experience",
			"availability", "notes", "updates_opt_in", "created_at", "updated_at").
		Values(caregiver.FullName, caregiver.Email, caregiver.Phone, caregiver.Certs,
			caregiver.YearsExperience, caregiver.Availability, caregiver.Notes,
			caregiver.UpdatesOptIn, now, now).
		Suffix(`ON CONFLICT (email) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			phone = EXCLUDED.phone,
			certs = EXCLUDED.certs,
			years_experience = EXCLUDED.years_experience,
			availability = EXCLUDED.availability,
			notes = EXCLUDED.notes,
			updates_opt_in = EXCLUDED.updates_opt_in,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at, (xmax = 0) AS inserted`).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build caregiver upsert: %w", err)
	}

	var inserted bool
	err = r.pool.QueryRow(ctx, query, args...).Scan(&caregiver.ID, &caregiver.CreatedAt, &inserted)
	if err != nil {
		return false, fmt.Errorf("upsert caregiver: %w", err)
	}

	return !inserted, nil
}

func (r *CaregiverRepository) All(ctx context.Context) ([]*types.Caregiver, error) {
	query, args, err := psql().
		Select(caregiverColumns...).
		From(caregiverTableName).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build caregiver list query: %w", err)
	}

	caregivers := make([]*types.Caregiver, 0)
	if err := pgxscan.Select(ctx, r.pool, &caregivers, query, args...); err != nil {
		return nil, fmt.Errorf("select caregivers: %w", err)
	}

	return caregivers, nil
}

func (r *CaregiverRepository) Count(ctx context.Context) (int64, error) {
	query, args, err := psql().
		Select("COUNT(*)").
		From(caregiverTableName).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build caregiver count query: %w", err)
	}

	var count int64
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count caregivers: %w", err)
	}

	return count, nil
}
