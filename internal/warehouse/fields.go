package warehouse

import (
	"lbseries/internal/domain"
)

// Change records one field written by AutoFill.
type Change struct {
	Table string
	Row   int
	Field string
	Value string
}

// AutoFill sets every empty recognized warehouse field to the single member
// of valid. It does nothing unless valid has exactly one member. Target
// warehouse fields are never touched.
func AutoFill(doc *domain.TransactionDocument, schema *domain.Schema, valid Set) []Change {
	only, ok := valid.Single()
	if !ok {
		return nil
	}

	var changes []Change
	for _, f := range domain.DocWarehouseFields {
		if schema.Has(f) && doc.Get(f) == "" {
			doc.Set(f, only)
			changes = append(changes, Change{Field: f, Value: only})
		}
	}
	for _, table := range domain.ChildTables {
		rows := doc.Rows(table)
		for _, f := range domain.ChildWarehouseFields {
			if !schema.TableHas(table, f) {
				continue
			}
			for i := range rows {
				if rows[i].Get(f) == "" {
					rows[i].Set(f, only)
					changes = append(changes, Change{Table: table, Row: rowIndex(&rows[i], i), Field: f, Value: only})
				}
			}
		}
	}
	return changes
}

// ValidateFields checks every non-empty recognized warehouse field against
// valid. The first offending field is reported with the full valid set.
func ValidateFields(doc *domain.TransactionDocument, schema *domain.Schema, valid Set, location string) error {
	allowed := append([]string{}, valid...)
	for _, f := range domain.DocWarehouseFields {
		if !schema.Has(f) {
			continue
		}
		if v := doc.Get(f); v != "" && !valid.Contains(v) {
			return &domain.FieldError{
				Err:      domain.ErrWarehouseNotAllowed,
				Field:    f,
				Value:    v,
				Location: location,
				Allowed:  allowed,
			}
		}
	}
	for _, table := range domain.ChildTables {
		rows := doc.Rows(table)
		for i := range rows {
			for _, f := range domain.ChildWarehouseFields {
				if !schema.TableHas(table, f) {
					continue
				}
				if v := rows[i].Get(f); v != "" && !valid.Contains(v) {
					return &domain.FieldError{
						Err:      domain.ErrWarehouseNotAllowed,
						Field:    f,
						Table:    table,
						Row:      rowIndex(&rows[i], i),
						Value:    v,
						Location: location,
						Allowed:  allowed,
					}
				}
			}
		}
	}
	return nil
}

// rowIndex prefers the framework's 1-based idx and falls back to position.
func rowIndex(row *domain.ChildRow, pos int) int {
	if row.Idx > 0 {
		return row.Idx
	}
	return pos + 1
}
