package domain

import (
	"bytes"
	"fmt"
	"strconv"
	"time"
)

// Check is the host framework's 0/1 checkbox. It decodes from JSON numbers,
// booleans or numeric strings and encodes as 0/1.
type Check bool

// UnmarshalJSON implements json.Unmarshaler.
func (c *Check) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch string(b) {
	case "null", `""`:
		*c = false
		return nil
	case "true":
		*c = true
		return nil
	case "false":
		*c = false
		return nil
	}
	s := string(bytes.Trim(b, `"`))
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid check value %s", b)
	}
	*c = n != 0
	return nil
}

// MarshalJSON implements json.Marshaler.
func (c Check) MarshalJSON() ([]byte, error) {
	if c {
		return []byte("1"), nil
	}
	return []byte("0"), nil
}

// ChildRow is a line row of a document's child table.
type ChildRow struct {
	Name            string `json:"name,omitempty"`
	Idx             int    `json:"idx"`
	ItemCode        string `json:"item_code,omitempty"`
	Warehouse       string `json:"warehouse,omitempty"`
	SWarehouse      string `json:"s_warehouse,omitempty"`
	SourceWarehouse string `json:"source_warehouse,omitempty"`
	TWarehouse      string `json:"t_warehouse,omitempty"`
	TargetWarehouse string `json:"target_warehouse,omitempty"`
}

func (r *ChildRow) field(name string) *string {
	switch name {
	case FieldWarehouse:
		return &r.Warehouse
	case FieldSWarehouse:
		return &r.SWarehouse
	case FieldSourceWarehouse:
		return &r.SourceWarehouse
	case FieldTWarehouse:
		return &r.TWarehouse
	case FieldTargetWarehouse:
		return &r.TargetWarehouse
	}
	return nil
}

// Get returns the value of a warehouse field on the row.
func (r *ChildRow) Get(name string) string {
	if p := r.field(name); p != nil {
		return *p
	}
	return ""
}

// Set assigns a warehouse field on the row. Unknown names are ignored.
func (r *ChildRow) Set(name, value string) {
	if p := r.field(name); p != nil {
		*p = value
	}
}

// TransactionDocument is the in-memory document instance handed over by the
// host framework during autoname and validate.
type TransactionDocument struct {
	DocType     DocType   `json:"doctype"`
	Name        string    `json:"name,omitempty"`
	IsNew       bool      `json:"is_new"`
	DocStatus   DocStatus `json:"docstatus"`
	Company     string    `json:"company"`
	PostingDate string    `json:"posting_date,omitempty"`

	Location         string `json:"location,omitempty"`
	ShippingLocation string `json:"shipping_location,omitempty"`
	DispatchLocation string `json:"dispatch_location,omitempty"`

	IsReturn         Check `json:"is_return"`
	IsDebitNote      Check `json:"is_debit_note"`
	IsRateAdjustment Check `json:"is_rate_adjustment"`

	DoctypeCode  string `json:"doctype_code"`
	LocationCode string `json:"location_code"`

	CompanyAddress        string `json:"company_address,omitempty"`
	CompanyAddressDisplay string `json:"company_address_display,omitempty"`
	BillingAddress        string `json:"billing_address,omitempty"`
	BillingAddressDisplay string `json:"billing_address_display,omitempty"`
	CompanyGSTIN          string `json:"company_gstin,omitempty"`
	ShippingAddress       string `json:"shipping_address,omitempty"`
	DispatchAddressName   string `json:"dispatch_address_name,omitempty"`
	PlaceOfSupply         string `json:"place_of_supply,omitempty"`

	Warehouse          string `json:"warehouse,omitempty"`
	SetWarehouse       string `json:"set_warehouse,omitempty"`
	SourceWarehouse    string `json:"source_warehouse,omitempty"`
	FromWarehouse      string `json:"from_warehouse,omitempty"`
	SetTargetWarehouse string `json:"set_target_warehouse,omitempty"`
	TargetWarehouse    string `json:"target_warehouse,omitempty"`
	ToWarehouse        string `json:"to_warehouse,omitempty"`

	Items        []ChildRow `json:"items,omitempty"`
	ItemDetails  []ChildRow `json:"item_details,omitempty"`
	StockEntries []ChildRow `json:"stock_entries,omitempty"`
}

func (d *TransactionDocument) field(name string) *string {
	switch name {
	case FieldLocation:
		return &d.Location
	case FieldShippingLocation:
		return &d.ShippingLocation
	case FieldDispatchLocation:
		return &d.DispatchLocation
	case FieldCompanyAddress:
		return &d.CompanyAddress
	case FieldBillingAddress:
		return &d.BillingAddress
	case FieldShippingAddress:
		return &d.ShippingAddress
	case FieldDispatchAddressName:
		return &d.DispatchAddressName
	case FieldWarehouse:
		return &d.Warehouse
	case FieldSetWarehouse:
		return &d.SetWarehouse
	case FieldSourceWarehouse:
		return &d.SourceWarehouse
	case FieldFromWarehouse:
		return &d.FromWarehouse
	case FieldSetTargetWarehouse:
		return &d.SetTargetWarehouse
	case FieldTargetWarehouse:
		return &d.TargetWarehouse
	case FieldToWarehouse:
		return &d.ToWarehouse
	}
	return nil
}

// Get returns a string field by its framework field name.
func (d *TransactionDocument) Get(name string) string {
	if p := d.field(name); p != nil {
		return *p
	}
	return ""
}

// Set assigns a string field by its framework field name. Unknown names are
// ignored.
func (d *TransactionDocument) Set(name, value string) {
	if p := d.field(name); p != nil {
		*p = value
	}
}

// Flag returns a checkbox field by name.
func (d *TransactionDocument) Flag(name string) bool {
	switch name {
	case FieldIsReturn:
		return bool(d.IsReturn)
	case FieldIsDebitNote:
		return bool(d.IsDebitNote)
	case FieldIsRateAdjustment:
		return bool(d.IsRateAdjustment)
	}
	return false
}

// Rows returns the rows of a child table. Elements may be modified in place.
func (d *TransactionDocument) Rows(table string) []ChildRow {
	switch table {
	case TableItems:
		return d.Items
	case TableItemDetails:
		return d.ItemDetails
	case TableStockEntries:
		return d.StockEntries
	}
	return nil
}

// LocationFor returns the location reference held in the given role.
func (d *TransactionDocument) LocationFor(role LocationRole) string {
	return d.Get(string(role))
}

// ParsePostingDate parses the posting date, falling back to today when unset.
func (d *TransactionDocument) ParsePostingDate(today time.Time) (time.Time, error) {
	if d.PostingDate == "" {
		return today, nil
	}
	for _, layout := range []string{"2006-01-02", "2006-01-02 15:04:05", time.RFC3339} {
		if t, err := time.Parse(layout, d.PostingDate); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &FieldError{Err: ErrInvalidPostingDate, Field: "posting_date", Value: d.PostingDate}
}

// Clone returns a deep copy of the document.
func (d *TransactionDocument) Clone() *TransactionDocument {
	c := *d
	c.Items = append([]ChildRow(nil), d.Items...)
	c.ItemDetails = append([]ChildRow(nil), d.ItemDetails...)
	c.StockEntries = append([]ChildRow(nil), d.StockEntries...)
	return &c
}
