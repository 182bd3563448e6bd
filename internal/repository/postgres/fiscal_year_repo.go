package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"lbseries/internal/domain"
	"lbseries/internal/port"
)

type fiscalYearRepo struct {
	db *sqlx.DB
}

// NewFiscalYearRepo creates a new PostgreSQL-backed FiscalYearRepository.
func NewFiscalYearRepo(db *sqlx.DB) port.FiscalYearRepository {
	return &fiscalYearRepo{db: db}
}

func (r *fiscalYearRepo) ListCovering(ctx context.Context, date time.Time) ([]domain.FiscalYear, error) {
	day := date.Format("2006-01-02")

	var years []domain.FiscalYear
	err := r.db.SelectContext(ctx, &years,
		`SELECT name, year_start_date, year_end_date, disabled
		 FROM fiscal_years
		 WHERE disabled = FALSE AND year_start_date <= $1::date AND year_end_date >= $1::date
		 ORDER BY year_start_date DESC, name DESC`, day)
	if err != nil {
		return nil, fmt.Errorf("fiscalYearRepo.ListCovering: %w", err)
	}
	if len(years) == 0 {
		return years, nil
	}

	names := make([]string, len(years))
	for i := range years {
		names[i] = years[i].Name
	}
	var links []struct {
		FiscalYear string `db:"fiscal_year"`
		Company    string `db:"company"`
	}
	err = r.db.SelectContext(ctx, &links,
		`SELECT fiscal_year, company FROM fiscal_year_companies
		 WHERE fiscal_year = ANY($1) ORDER BY company`, names)
	if err != nil {
		return nil, fmt.Errorf("fiscalYearRepo.ListCovering companies: %w", err)
	}

	byYear := make(map[string][]string, len(years))
	for _, l := range links {
		byYear[l.FiscalYear] = append(byYear[l.FiscalYear], l.Company)
	}
	for i := range years {
		years[i].Companies = byYear[years[i].Name]
	}
	return years, nil
}
