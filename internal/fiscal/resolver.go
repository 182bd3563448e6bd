// Package fiscal maps posting dates to short fiscal year codes.
package fiscal

import (
	"context"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"lbseries/internal/domain"
	"lbseries/internal/port"
)

// FallbackCode is returned when no enabled fiscal year covers the date.
const FallbackCode = "00"

// Resolver looks up the fiscal year enclosing a date. It never fails; lookup
// problems degrade to the fallback code.
type Resolver struct {
	repo     port.FiscalYearRepository
	fallback string
	log      logrus.FieldLogger
}

// NewResolver creates a Resolver. An empty fallback selects FallbackCode.
func NewResolver(repo port.FiscalYearRepository, fallback string, log logrus.FieldLogger) *Resolver {
	if fallback == "" {
		fallback = FallbackCode
	}
	return &Resolver{repo: repo, fallback: fallback, log: log.WithField("component", "fiscal")}
}

// Code returns the last two characters of the fiscal year covering date.
// Among overlapping years the most recent one linked to company wins, then
// the most recent one regardless of company.
func (r *Resolver) Code(ctx context.Context, date time.Time, company string) string {
	years, err := r.repo.ListCovering(ctx, date)
	if err != nil {
		r.log.Warnf("fiscal.Code: listing fiscal years for %s: %v", date.Format("2006-01-02"), err)
		return r.fallback
	}
	years = covering(years, date)
	if len(years) == 0 {
		return r.fallback
	}

	chosen := years[0].Name
	for i := range years {
		if linked(years[i].Companies, company) {
			chosen = years[i].Name
			break
		}
	}
	return r.suffix(chosen)
}

func (r *Resolver) suffix(name string) string {
	runes := []rune(name)
	if len(runes) < 2 {
		return r.fallback
	}
	return string(runes[len(runes)-2:])
}

// covering keeps enabled years that contain date, latest start first.
func covering(years []domain.FiscalYear, date time.Time) []domain.FiscalYear {
	out := make([]domain.FiscalYear, 0, len(years))
	for i := range years {
		if !years[i].Disabled && years[i].Covers(date) {
			out = append(out, years[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartDate.After(out[j].StartDate)
	})
	return out
}

func linked(companies []string, company string) bool {
	if company == "" {
		return false
	}
	for _, c := range companies {
		if c == company {
			return true
		}
	}
	return false
}
