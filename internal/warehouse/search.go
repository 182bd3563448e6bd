package warehouse

import (
	"encoding/json"
	"strings"

	"lbseries/internal/domain"
)

// DefaultPageLen applies when a picker asks for page_len 0.
const DefaultPageLen = 20

// Option is one picker row. It marshals as a [value, label] pair.
type Option struct {
	Value string
	Label string
}

func (o Option) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{o.Value, o.Label})
}

// Search filters candidates by a case-insensitive substring of name or
// warehouse name, then pages the result. Candidates must already be ordered.
func Search(candidates []domain.Warehouse, txt string, start, pageLen int) []Option {
	needle := strings.ToLower(strings.TrimSpace(txt))
	var matched []Option
	for i := range candidates {
		w := &candidates[i]
		if needle != "" &&
			!strings.Contains(strings.ToLower(w.Name), needle) &&
			!strings.Contains(strings.ToLower(w.WarehouseName), needle) {
			continue
		}
		matched = append(matched, Option{Value: w.Name, Label: w.WarehouseName})
	}
	return Page(matched, start, pageLen)
}

// Page slices options to [start, start+pageLen).
func Page(options []Option, start, pageLen int) []Option {
	if pageLen <= 0 {
		pageLen = DefaultPageLen
	}
	if start < 0 {
		start = 0
	}
	if start >= len(options) {
		return []Option{}
	}
	end := len(options)
	if pageLen < end-start {
		end = start + pageLen
	}
	return options[start:end]
}
