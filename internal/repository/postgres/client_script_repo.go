package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"lbseries/internal/domain"
	"lbseries/internal/port"
)

type clientScriptRepo struct {
	db *sqlx.DB
}

// NewClientScriptRepo creates a new PostgreSQL-backed ClientScriptRepository.
func NewClientScriptRepo(db *sqlx.DB) port.ClientScriptRepository {
	return &clientScriptRepo{db: db}
}

func (r *clientScriptRepo) Upsert(ctx context.Context, script *domain.ClientScript) error {
	script.UpdatedAt = time.Now().UTC()
	_, err := r.db.NamedExecContext(ctx,
		`INSERT INTO client_scripts (name, dt, view, enabled, script, asset_key, updated_at)
		 VALUES (:name, :dt, :view, :enabled, :script, :asset_key, :updated_at)
		 ON CONFLICT (name) DO UPDATE
		 SET dt = EXCLUDED.dt, view = EXCLUDED.view, enabled = EXCLUDED.enabled,
		     script = EXCLUDED.script, asset_key = EXCLUDED.asset_key, updated_at = EXCLUDED.updated_at`,
		script)
	if err != nil {
		return fmt.Errorf("clientScriptRepo.Upsert: %w", err)
	}
	return nil
}

func (r *clientScriptRepo) GetByName(ctx context.Context, name string) (*domain.ClientScript, error) {
	var s domain.ClientScript
	err := r.db.GetContext(ctx, &s, "SELECT * FROM client_scripts WHERE name = $1", name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("clientScriptRepo.GetByName: %w", err)
	}
	return &s, nil
}

func (r *clientScriptRepo) Delete(ctx context.Context, name string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM client_scripts WHERE name = $1", name)
	if err != nil {
		return fmt.Errorf("clientScriptRepo.Delete: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("clientScriptRepo.Delete: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
