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

const parentTableName = "parents"

var parentColumns = utils.StructTagValues(types.Parent{})

type ParentRepository struct {
	pool *pgxpool.Pool
}

func NewParentRepository(pool *pgxpool.Pool) *ParentRepository {
	return &ParentRepository{pool: pool}
}

// Upsert inserts the record or, if the email already has one, overwrites its
// mutable attributes in place. A single statement keyed on the unique email
// index so concurrent submissions for a new identity cannot both insert.
// xmax = 0 distinguishes a fresh insert from a conflict update.
func (r *ParentRepository) Upsert(ctx context.Context, parent *types.Parent) (bool, error) {
	now := time.Now()
	parent.CreatedAt = now
	parent.UpdatedAt = now

	query, args, err := psql().
		Insert(parentTableName).
		Columns("full_name", "email", "phone", "baby_timing", "start_timeframe",
			"notes", "updates_opt_in", "created_at", "updated_at").
		Values(parent.FullName, parent.Email, parent.Phone, parent.BabyTiming,
			parent.StartTimeframe, parent.Notes, parent.UpdatesOptIn, now, now).
		Suffix(`ON CONFLICT (email) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			phone = EXCLUDED.phone,
			baby_timing = EXCLUDED.baby_timing,
			start_timeframe = EXCLUDED.start_timeframe,
			notes = EXCLUDED.notes,
			updates_opt_in = EXCLUDED.updates_opt_in,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at, (xmax = 0) AS inserted`).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build parent upsert: %w", err)
	}

	var inserted bool
	err = r.pool.QueryRow(ctx, query, args...).Scan(&parent.ID, &parent.CreatedAt, &inserted)
	if err != nil {
		return false, fmt.Errorf("upsert parent: %w", err)
	}

	return !inserted, nil
}

// All returns every parent record, newest first. Ties on created_at break on
// id so export output stays deterministic.
func (r *ParentRepository) All(ctx context.Context) ([]*types.Parent, error) {
	query, args, err := psql().
		Select(parentColumns...).
		From(parentTableName).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build parent list query: %w", err)
	}

	parents := make([]*types.Parent, 0)
	if err := pgxscan.Select(ctx, r.pool, &parents, query, args...); err != nil {
		return nil, fmt.Errorf("select parents: %w", err)
	}

	return parents, nil
}

func (r *ParentRepository) Count(ctx context.Context) (int64, error) {
	query, args, err := psql().
		Select("COUNT(*)").
		From(parentTableName).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build parent count query: %w", err)
	}

	var count int64
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count parents: %w", err)
	}

	return count, nil
}
