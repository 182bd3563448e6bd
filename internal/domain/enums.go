package domain

// DocType names a transactional document variant.
type DocType string

const (
	DocTypeSalesInvoice    DocType = "Sales Invoice"
	DocTypePurchaseInvoice DocType = "Purchase Invoice"
	DocTypeSalesOrder      DocType = "Sales Order"
	DocTypePurchaseOrder   DocType = "Purchase Order"
	DocTypeDeliveryNote    DocType = "Delivery Note"
	DocTypePurchaseReceipt DocType = "Purchase Receipt"
	DocTypeStockEntry      DocType = "Stock Entry"
)

// LocationRole identifies which location reference on a document is in play.
type LocationRole string

const (
	RolePrimary  LocationRole = "location"
	RoleShipping LocationRole = "shipping_location"
	RoleDispatch LocationRole = "dispatch_location"
)

// DocStatus mirrors the host framework's docstatus.
type DocStatus int

const (
	DocStatusDraft     DocStatus = 0
	DocStatusSubmitted DocStatus = 1
	DocStatusCancelled DocStatus = 2
)

// LocationDimension is the accounting dimension that must be active.
const LocationDimension = "Location"

// Document-level field names.
const (
	FieldLocation            = "location"
	FieldShippingLocation    = "shipping_location"
	FieldDispatchLocation    = "dispatch_location"
	FieldShippingAddress     = "shipping_address"
	FieldDispatchAddressName = "dispatch_address_name"
	FieldBillingAddress      = "billing_address"
	FieldCompanyAddress      = "company_address"
	FieldIsReturn            = "is_return"
	FieldIsDebitNote         = "is_debit_note"
	FieldIsRateAdjustment    = "is_rate_adjustment"
	FieldWarehouse           = "warehouse"
	FieldSetWarehouse        = "set_warehouse"
	FieldSourceWarehouse     = "source_warehouse"
	FieldFromWarehouse       = "from_warehouse"
	FieldSetTargetWarehouse  = "set_target_warehouse"
	FieldTargetWarehouse     = "target_warehouse"
	FieldSWarehouse          = "s_warehouse"
	FieldTWarehouse          = "t_warehouse"
	FieldToWarehouse         = "to_warehouse"
	TableItems               = "items"
	TableItemDetails         = "item_details"
	TableStockEntries        = "stock_entries"
)

// Warehouse field names the location rules act on. Target/destination
// fields are absent on purpose and stay untouched.
var (
	DocWarehouseFields   = []string{FieldWarehouse, FieldSetWarehouse, FieldSourceWarehouse, FieldFromWarehouse}
	ChildWarehouseFields = []string{FieldWarehouse, FieldSWarehouse, FieldSourceWarehouse}
	ChildTables          = []string{TableItems, TableItemDetails, TableStockEntries}
)

// IsTargetWarehouseField reports whether name is a destination warehouse field.
func IsTargetWarehouseField(name string) bool {
	switch name {
	case FieldTargetWarehouse, FieldSetTargetWarehouse, FieldTWarehouse, FieldToWarehouse:
		return true
	}
	return false
}
