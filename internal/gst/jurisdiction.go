package gst

import (
	"regexp"
	"strings"

	"lbseries/internal/domain"
)

// DefaultHomeCountry is the country whose states carry GST numbers.
const DefaultHomeCountry = "India"

var gstinPattern = regexp.MustCompile(`^\d{2}[A-Z]{5}\d{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)

// ValidGSTIN reports whether s is a well-formed 15 character GSTIN.
func ValidGSTIN(s string) bool {
	return gstinPattern.MatchString(strings.ToUpper(strings.TrimSpace(s)))
}

// Deriver maps an address to its place-of-supply code.
type Deriver struct {
	homeCountry string
}

// NewDeriver creates a Deriver. An empty homeCountry selects DefaultHomeCountry.
func NewDeriver(homeCountry string) *Deriver {
	if homeCountry == "" {
		homeCountry = DefaultHomeCountry
	}
	return &Deriver{homeCountry: homeCountry}
}

// Derive returns the place-of-supply code of addr, or "" when none can be
// derived. Sources are tried in order: foreign country, GSTIN prefix, GST
// state number, GST state name, plain state name.
func (d *Deriver) Derive(addr *domain.Address) string {
	if addr == nil {
		return ""
	}
	if country := strings.TrimSpace(addr.Country); country != "" && !strings.EqualFold(country, d.homeCountry) {
		return Code(OtherCountriesNumber, stateNames[OtherCountriesNumber])
	}

	if gstin := strings.TrimSpace(addr.GSTIN); len(gstin) >= 2 {
		if code, ok := byNumber(gstin[:2]); ok {
			return code
		}
	}
	if addr.GSTStateNumber != "" {
		if code, ok := byNumber(addr.GSTStateNumber); ok {
			return code
		}
	}
	if addr.GSTState != "" {
		if code, ok := byName(addr.GSTState); ok {
			return code
		}
	}
	if addr.State != "" {
		if code, ok := byName(addr.State); ok {
			return code
		}
	}
	return ""
}

func byNumber(number string) (string, bool) {
	name, ok := StateName(number)
	if !ok {
		return "", false
	}
	return Code(normalizeNumber(number), name), true
}

func byName(name string) (string, bool) {
	num, ok := StateNumber(name)
	if !ok {
		return "", false
	}
	return Code(num, stateNames[num]), true
}

func normalizeNumber(number string) string {
	number = strings.TrimSpace(number)
	if len(number) == 1 {
		return "0" + number
	}
	return number
}
