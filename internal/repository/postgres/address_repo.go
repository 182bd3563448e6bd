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

type addressRepo struct {
	db *sqlx.DB
}

// NewAddressRepo creates a new PostgreSQL-backed AddressRepository.
func NewAddressRepo(db *sqlx.DB) port.AddressRepository {
	return &addressRepo{db: db}
}

func (r *addressRepo) GetByName(ctx context.Context, name string) (*domain.Address, error) {
	var addr domain.Address
	err := r.db.GetContext(ctx, &addr, "SELECT * FROM addresses WHERE name = $1", name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("addressRepo.GetByName: %w", err)
	}
	return &addr, nil
}
