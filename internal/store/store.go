// Package store owns the two identity-keyed collections. Each collection has
// a Postgres repository used in production and an in-memory twin with the
// same observable semantics used by tests.
package store

import (
	"context"

	"nightnurse/pkg/types"

	sq "github.com/Masterminds/squirrel"
)

// ParentRecorder is the reconciler contract for the parent collection.
// Upsert reports whether the email already had a record; All returns records
// newest-first by creation time.
type ParentRecorder interface {
	Upsert(ctx context.Context, parent *types.Parent) (duplicate bool, err error)
	All(ctx context.Context) ([]*types.Parent, error)
	Count(ctx context.Context) (int64, error)
}

// CaregiverRecorder is the reconciler contract for the caregiver collection.
type CaregiverRecorder interface {
	Upsert(ctx context.Context, caregiver *types.Caregiver) (duplicate bool, err error)
	All(ctx context.Context) ([]*types.Caregiver, error)
	Count(ctx context.Context) (int64, error)
}

func psql() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}
