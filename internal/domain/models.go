package domain

import (
	"time"
)

// Location is the organizational/geographic reference entity that drives
// address and warehouse defaults on transactions.
type Location struct {
	Name            string    `db:"name" json:"name"`
	LocationName    string    `db:"location_name" json:"location_name"`
	Code            string    `db:"lbs_location_code" json:"lbs_location_code"`
	LinkedAddress   string    `db:"linked_address" json:"linked_address"`
	LinkedWarehouse string    `db:"linked_warehouse" json:"linked_warehouse"`
	Company         string    `db:"company" json:"company"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// Warehouse is a node in the warehouse tree. Group warehouses are never
// valid transactional targets.
type Warehouse struct {
	Name            string    `db:"name" json:"name"`
	WarehouseName   string    `db:"warehouse_name" json:"warehouse_name"`
	ParentWarehouse string    `db:"parent_warehouse" json:"parent_warehouse"`
	IsGroup         bool      `db:"is_group" json:"is_group"`
	Disabled        bool      `db:"disabled" json:"disabled"`
	Company         string    `db:"company" json:"company"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// Assignable reports whether the warehouse may be set on a transaction.
func (w *Warehouse) Assignable() bool {
	return !w.IsGroup && !w.Disabled
}

// Address is a postal address with optional GST registration details.
type Address struct {
	Name           string    `db:"name" json:"name"`
	AddressTitle   string    `db:"address_title" json:"address_title"`
	AddressLine1   string    `db:"address_line1" json:"address_line1"`
	AddressLine2   string    `db:"address_line2" json:"address_line2"`
	City           string    `db:"city" json:"city"`
	State          string    `db:"state" json:"state"`
	Pincode        string    `db:"pincode" json:"pincode"`
	Country        string    `db:"country" json:"country"`
	GSTIN          string    `db:"gstin" json:"gstin"`
	GSTState       string    `db:"gst_state" json:"gst_state"`
	GSTStateNumber string    `db:"gst_state_number" json:"gst_state_number"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// FiscalYear is an accounting period. Its name conventionally ends in a
// four-digit year ("2024-2025").
type FiscalYear struct {
	Name      string    `db:"name" json:"name"`
	StartDate time.Time `db:"year_start_date" json:"year_start_date"`
	EndDate   time.Time `db:"year_end_date" json:"year_end_date"`
	Disabled  bool      `db:"disabled" json:"disabled"`
	Companies []string  `db:"-" json:"companies"`
}

// Covers reports whether date falls inside the period, inclusive on both ends.
func (f *FiscalYear) Covers(date time.Time) bool {
	d := truncateDay(date)
	return !d.Before(truncateDay(f.StartDate)) && !d.After(truncateDay(f.EndDate))
}

// AccountingDimension marks an entity type as an organizational dimension.
type AccountingDimension struct {
	Name         string `db:"name" json:"name"`
	DocumentType string `db:"document_type" json:"document_type"`
	Disabled     bool   `db:"disabled" json:"disabled"`
}

// ClientScript is a form script stored by the host framework.
type ClientScript struct {
	Name      string    `db:"name" json:"name"`
	DocType   string    `db:"dt" json:"dt"`
	View      string    `db:"view" json:"view"`
	Enabled   bool      `db:"enabled" json:"enabled"`
	Script    string    `db:"script" json:"script"`
	AssetKey  string    `db:"asset_key" json:"asset_key"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
