// Package report writes the location coverage report.
package report

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Format is an export file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat accepts "csv" or "xlsx"; empty means csv.
func ParseFormat(s string) (Format, bool) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatCSV:
		return FormatCSV, true
	case FormatXLSX:
		return FormatXLSX, true
	}
	return "", false
}

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

// CoverageRow describes how one location resolves.
type CoverageRow struct {
	Location        string
	LocationName    string
	Code            string
	LinkedAddress   string
	LinkedWarehouse string
	WarehouseGroup  bool
	ValidWarehouses []string
	PlaceOfSupply   string
	Problems        []string
}

// columns defines the report header row.
var columns = []string{
	"Location",
	"Location Name",
	"Location Code",
	"Linked Address",
	"Linked Warehouse",
	"Warehouse Is Group",
	"Valid Warehouse Count",
	"Valid Warehouses",
	"Place of Supply",
	"Problems",
}

func (r *CoverageRow) cells() []string {
	return []string{
		r.Location,
		r.LocationName,
		r.Code,
		r.LinkedAddress,
		r.LinkedWarehouse,
		formatBool(r.WarehouseGroup),
		strconv.Itoa(len(r.ValidWarehouses)),
		strings.Join(r.ValidWarehouses, ", "),
		r.PlaceOfSupply,
		strings.Join(r.Problems, "; "),
	}
}

func formatBool(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a name for use in Content-Disposition.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns {name}_{YYYY-MM-DD}.{ext}.
func BuildFilename(name string, f Format, now time.Time) string {
	return fmt.Sprintf("%s_%s.%s", SanitizeFilename(name), now.Format("2006-01-02"), f)
}
