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

type warehouseRepo struct {
	db *sqlx.DB
}

// NewWarehouseRepo creates a new PostgreSQL-backed WarehouseRepository.
func NewWarehouseRepo(db *sqlx.DB) port.WarehouseRepository {
	return &warehouseRepo{db: db}
}

func (r *warehouseRepo) GetByName(ctx context.Context, name string) (*domain.Warehouse, error) {
	var w domain.Warehouse
	err := r.db.GetContext(ctx, &w, "SELECT * FROM warehouses WHERE name = $1", name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("warehouseRepo.GetByName: %w", err)
	}
	return &w, nil
}

// descendantsQuery walks the parent links below the root. UNION drops
// repeated rows, so a cyclic parent chain still terminates.
const descendantsQuery = `
WITH RECURSIVE tree AS (
	SELECT w.* FROM warehouses w WHERE w.parent_warehouse = $1 AND w.name <> $1
	UNION
	SELECT w.* FROM warehouses w JOIN tree t ON w.parent_warehouse = t.name WHERE w.name <> $1
)
SELECT * FROM tree ORDER BY name`

func (r *warehouseRepo) Descendants(ctx context.Context, name string) ([]domain.Warehouse, error) {
	var ws []domain.Warehouse
	if err := r.db.SelectContext(ctx, &ws, descendantsQuery, name); err != nil {
		return nil, fmt.Errorf("warehouseRepo.Descendants: %w", err)
	}
	return ws, nil
}
