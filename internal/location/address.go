package location

import (
	"strings"

	"lbseries/internal/domain"
)

// Display renders an address the way the host's default address template
// does: one non-empty line per part, joined with <br>.
func Display(addr *domain.Address) string {
	if addr == nil {
		return ""
	}
	var lines []string
	add := func(s string) {
		if s = strings.TrimSpace(s); s != "" {
			lines = append(lines, s)
		}
	}
	add(addr.AddressLine1)
	add(addr.AddressLine2)
	add(addr.City)
	add(addr.State)
	add(addr.Pincode)
	add(addr.Country)
	if addr.GSTIN != "" {
		add("GSTIN: " + addr.GSTIN)
	}
	return strings.Join(lines, "<br>")
}

// setAddress writes addr into the role's address field with its display text
// and copies the GSTIN when the address has one.
func setAddress(doc *domain.TransactionDocument, schema *domain.Schema, name string, addr *domain.Address) {
	display := Display(addr)
	if schema.Purchase {
		doc.BillingAddress = name
		doc.BillingAddressDisplay = display
	} else {
		doc.CompanyAddress = name
		doc.CompanyAddressDisplay = display
	}
	if addr != nil && addr.GSTIN != "" {
		doc.CompanyGSTIN = addr.GSTIN
	}
}
