package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"lbseries/internal/port"
)

type dimensionRepo struct {
	db *sqlx.DB
}

// NewDimensionRepo creates a new PostgreSQL-backed DimensionRepository.
func NewDimensionRepo(db *sqlx.DB) port.DimensionRepository {
	return &dimensionRepo{db: db}
}

func (r *dimensionRepo) IsEnabled(ctx context.Context, documentType string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM accounting_dimensions WHERE document_type = $1 AND disabled = FALSE)`,
		documentType)
	if err != nil {
		return false, fmt.Errorf("dimensionRepo.IsEnabled: %w", err)
	}
	return exists, nil
}
