package naming

import (
	"fmt"
	"strings"

	"lbseries/internal/domain"
)

// SegmentKind identifies what a template segment renders.
type SegmentKind int

const (
	SegmentLiteral SegmentKind = iota
	SegmentDoctypeCode
	SegmentLocationCode
	SegmentFiscalCode
	SegmentCounter
)

const (
	placeholderDoctypeCode  = "{doctype_code}"
	placeholderLocationCode = "{location_code}"
	placeholderFiscalCode   = "FY"
)

// Segment is one element of a naming template.
type Segment struct {
	Kind  SegmentKind
	Text  string
	Width int
}

// Template is a parsed naming series pattern: an ordered list of segments
// whose last element is the running counter.
type Template struct {
	Source   string
	Segments []Segment
}

// Values holds the placeholder substitutions for one document.
type Values struct {
	DoctypeCode  string
	LocationCode string
	FiscalCode   string
}

// ParseTemplate parses series text such as "SI.{doctype_code}.{location_code}.FY.-.####".
// Segments are separated by '.', a run of '#' is the counter and must be the
// final segment.
func ParseTemplate(src string) (*Template, error) {
	if strings.TrimSpace(src) == "" {
		return nil, fmt.Errorf("%w: empty template", domain.ErrInvalidTemplate)
	}
	t := &Template{Source: src}
	parts := strings.Split(src, ".")
	for i, part := range parts {
		switch {
		case part == "":
			continue
		case part == placeholderDoctypeCode:
			t.Segments = append(t.Segments, Segment{Kind: SegmentDoctypeCode})
		case part == placeholderLocationCode:
			t.Segments = append(t.Segments, Segment{Kind: SegmentLocationCode})
		case part == placeholderFiscalCode:
			t.Segments = append(t.Segments, Segment{Kind: SegmentFiscalCode})
		case strings.Trim(part, "#") == "":
			if i != len(parts)-1 {
				return nil, fmt.Errorf("%w: counter marker must be the last segment in %q", domain.ErrInvalidTemplate, src)
			}
			t.Segments = append(t.Segments, Segment{Kind: SegmentCounter, Width: len(part)})
		case strings.ContainsAny(part, "{}#"):
			return nil, fmt.Errorf("%w: unknown placeholder %q in %q", domain.ErrInvalidTemplate, part, src)
		default:
			t.Segments = append(t.Segments, Segment{Kind: SegmentLiteral, Text: part})
		}
	}
	if len(t.Segments) == 0 || t.Segments[len(t.Segments)-1].Kind != SegmentCounter {
		return nil, fmt.Errorf("%w: missing counter marker in %q", domain.ErrInvalidTemplate, src)
	}
	return t, nil
}

// MustParseTemplate is like ParseTemplate but panics on error.
func MustParseTemplate(src string) *Template {
	t, err := ParseTemplate(src)
	if err != nil {
		panic(err)
	}
	return t
}

// Prefix renders every segment before the counter.
func (t *Template) Prefix(v Values) string {
	var b strings.Builder
	for _, s := range t.Segments {
		switch s.Kind {
		case SegmentLiteral:
			b.WriteString(s.Text)
		case SegmentDoctypeCode:
			b.WriteString(v.DoctypeCode)
		case SegmentLocationCode:
			b.WriteString(v.LocationCode)
		case SegmentFiscalCode:
			b.WriteString(v.FiscalCode)
		}
	}
	return b.String()
}

// CounterWidth is the zero-padded width of the running counter.
func (t *Template) CounterWidth() int {
	return t.Segments[len(t.Segments)-1].Width
}

// Format joins a rendered prefix and a counter value into the final name.
func (t *Template) Format(prefix string, counter int64) string {
	return fmt.Sprintf("%s%0*d", prefix, t.CounterWidth(), counter)
}

// Uses reports whether the template contains a segment of the given kind.
func (t *Template) Uses(kind SegmentKind) bool {
	for _, s := range t.Segments {
		if s.Kind == kind {
			return true
		}
	}
	return false
}

func (t *Template) String() string {
	return t.Source
}
