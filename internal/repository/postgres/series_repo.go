package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"lbseries/internal/port"
)

type seriesRepo struct {
	db *sqlx.DB
}

// NewSeriesRepo creates a new PostgreSQL-backed SeriesRepository.
func NewSeriesRepo(db *sqlx.DB) port.SeriesRepository {
	return &seriesRepo{db: db}
}

// Next relies on the row lock taken by the upsert, so concurrent callers on
// the same prefix get distinct numbers.
func (r *seriesRepo) Next(ctx context.Context, prefix string) (int64, error) {
	var n int64
	err := r.db.GetContext(ctx, &n,
		`INSERT INTO naming_series (prefix, last_number, updated_at)
		 VALUES ($1, 1, NOW())
		 ON CONFLICT (prefix) DO UPDATE
		 SET last_number = naming_series.last_number + 1, updated_at = NOW()
		 RETURNING last_number`, prefix)
	if err != nil {
		return 0, fmt.Errorf("seriesRepo.Next: %w", err)
	}
	return n, nil
}

func (r *seriesRepo) Current(ctx context.Context, prefix string) (int64, error) {
	var n int64
	err := r.db.GetContext(ctx, &n, "SELECT last_number FROM naming_series WHERE prefix = $1", prefix)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("seriesRepo.Current: %w", err)
	}
	return n, nil
}
