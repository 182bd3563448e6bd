package domain

// Schema describes which optional fields a document type carries. Rules
// consult it before touching a field instead of probing the document.
type Schema struct {
	DocType   DocType
	Purchase  bool
	Secondary LocationRole
	Fields    map[string]bool
	Tables    map[string]map[string]bool
}

// Has reports whether the document type carries the document-level field.
func (s *Schema) Has(field string) bool {
	return s.Fields[field]
}

// TableHas reports whether the child table exists and carries the field.
func (s *Schema) TableHas(table, field string) bool {
	return s.Tables[table][field]
}

// AddressField is the field the primary location's address is copied into.
func (s *Schema) AddressField() string {
	if s.Purchase {
		return FieldBillingAddress
	}
	return FieldCompanyAddress
}

// SecondaryAddressField is the address field paired with the secondary
// location, or "" when the document type has none.
func (s *Schema) SecondaryAddressField() string {
	switch s.Secondary {
	case RoleShipping:
		return FieldShippingAddress
	case RoleDispatch:
		return FieldDispatchAddressName
	}
	return ""
}

func fields(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

var schemas = map[DocType]*Schema{
	DocTypeSalesInvoice: {
		DocType:   DocTypeSalesInvoice,
		Secondary: RoleDispatch,
		Fields: fields(FieldLocation, FieldDispatchLocation, FieldDispatchAddressName, FieldCompanyAddress,
			FieldIsReturn, FieldIsDebitNote, FieldIsRateAdjustment, FieldSetWarehouse, FieldSetTargetWarehouse),
		Tables: map[string]map[string]bool{TableItems: fields(FieldWarehouse, FieldTargetWarehouse)},
	},
	DocTypePurchaseInvoice: {
		DocType:   DocTypePurchaseInvoice,
		Purchase:  true,
		Secondary: RoleShipping,
		Fields: fields(FieldLocation, FieldShippingLocation, FieldShippingAddress, FieldBillingAddress,
			FieldIsReturn, FieldIsRateAdjustment, FieldSetWarehouse),
		Tables: map[string]map[string]bool{TableItems: fields(FieldWarehouse)},
	},
	DocTypeSalesOrder: {
		DocType:   DocTypeSalesOrder,
		Secondary: RoleDispatch,
		Fields:    fields(FieldLocation, FieldDispatchLocation, FieldDispatchAddressName, FieldCompanyAddress, FieldSetWarehouse),
		Tables:    map[string]map[string]bool{TableItems: fields(FieldWarehouse)},
	},
	DocTypePurchaseOrder: {
		DocType:   DocTypePurchaseOrder,
		Purchase:  true,
		Secondary: RoleShipping,
		Fields:    fields(FieldLocation, FieldShippingLocation, FieldShippingAddress, FieldBillingAddress, FieldSetWarehouse),
		Tables:    map[string]map[string]bool{TableItems: fields(FieldWarehouse)},
	},
	DocTypeDeliveryNote: {
		DocType:   DocTypeDeliveryNote,
		Secondary: RoleDispatch,
		Fields: fields(FieldLocation, FieldDispatchLocation, FieldDispatchAddressName, FieldCompanyAddress,
			FieldIsReturn, FieldSetWarehouse, FieldSetTargetWarehouse),
		Tables: map[string]map[string]bool{TableItems: fields(FieldWarehouse, FieldTargetWarehouse)},
	},
	DocTypePurchaseReceipt: {
		DocType:   DocTypePurchaseReceipt,
		Purchase:  true,
		Secondary: RoleShipping,
		Fields: fields(FieldLocation, FieldShippingLocation, FieldShippingAddress, FieldBillingAddress,
			FieldIsReturn, FieldSetWarehouse),
		Tables: map[string]map[string]bool{TableItems: fields(FieldWarehouse)},
	},
	DocTypeStockEntry: {
		DocType: DocTypeStockEntry,
		Fields:  fields(FieldLocation, FieldCompanyAddress, FieldWarehouse, FieldFromWarehouse, FieldToWarehouse),
		Tables:  map[string]map[string]bool{TableItems: fields(FieldSWarehouse, FieldTWarehouse)},
	},
}

// SchemaFor returns the field schema of a document type.
func SchemaFor(dt DocType) (*Schema, bool) {
	s, ok := schemas[dt]
	return s, ok
}

// TransactionDocTypes lists the document types the naming and validation
// hooks are registered for.
func TransactionDocTypes() []DocType {
	return []DocType{
		DocTypeSalesInvoice,
		DocTypePurchaseInvoice,
		DocTypeSalesOrder,
		DocTypePurchaseOrder,
		DocTypeDeliveryNote,
		DocTypePurchaseReceipt,
	}
}
