package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"lbseries/internal/domain"
	"lbseries/internal/port"
)

type locationRepo struct {
	db *sqlx.DB
}

// NewLocationRepo creates a new PostgreSQL-backed LocationRepository.
func NewLocationRepo(db *sqlx.DB) port.LocationRepository {
	return &locationRepo{db: db}
}

func (r *locationRepo) GetByName(ctx context.Context, name string) (*domain.Location, error) {
	var loc domain.Location
	err := r.db.GetContext(ctx, &loc, "SELECT * FROM locations WHERE name = $1", name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("locationRepo.GetByName: %w", err)
	}
	return &loc, nil
}

func (r *locationRepo) List(ctx context.Context) ([]domain.Location, error) {
	var locs []domain.Location
	if err := r.db.SelectContext(ctx, &locs, "SELECT * FROM locations ORDER BY name"); err != nil {
		return nil, fmt.Errorf("locationRepo.List: %w", err)
	}
	return locs, nil
}
