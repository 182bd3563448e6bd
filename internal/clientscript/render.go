// Package clientscript renders the form scripts that restrict warehouse
// pickers to a document's location.
package clientscript

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"lbseries/internal/domain"
)

// View is the form view the scripts attach to.
const View = "Form"

// Methods names the server query methods the scripts call.
type Methods struct {
	Warehouse      string
	ChildWarehouse string
}

// DefaultMethods returns the query method paths exposed by the host bridge.
func DefaultMethods() Methods {
	return Methods{
		Warehouse:      "lbseries.api.location_based_warehouse_query",
		ChildWarehouse: "lbseries.api.child_table_warehouse_query",
	}
}

// Name returns the script record name for a document type.
func Name(dt domain.DocType) string {
	return "Location Based Warehouse Filter - " + string(dt)
}

// Slug returns a storage-friendly identifier, e.g. "sales-invoice".
func Slug(dt domain.DocType) string {
	return strings.ReplaceAll(strings.ToLower(string(dt)), " ", "-")
}

var scriptTemplate = template.Must(template.New("warehouse_filter").Parse(`// Location-based warehouse filtering
frappe.ui.form.on({{.DocType}}, {
    location: function(frm) {
        set_warehouse_queries(frm);
    },
    refresh: function(frm) {
        set_warehouse_queries(frm);
    }
});

const warehouse_fields = {{.DocFields}};
const child_tables = {{.ChildTables}};
const child_warehouse_fields = {{.ChildFields}};

function set_warehouse_queries(frm) {
    if (!frm.doc.location) {
        clear_warehouse_fields(frm);
        return;
    }
    warehouse_fields.forEach(function(fieldname) {
        if (frm.fields_dict[fieldname]) {
            frm.set_query(fieldname, function() {
                return {
                    query: {{.WarehouseMethod}},
                    filters: {
                        location: frm.doc.location,
                        shipping_location: frm.doc.shipping_location || '',
                        dispatch_location: frm.doc.dispatch_location || ''
                    }
                };
            });
        }
    });
    child_tables.forEach(function(table_name) {
        if (!frm.fields_dict[table_name]) {
            return;
        }
        child_warehouse_fields.forEach(function(field_name) {
            frm.set_query(field_name, table_name, function() {
                return {
                    query: {{.ChildWarehouseMethod}},
                    filters: {
                        location: frm.doc.location,
                        parent_doctype: frm.doc.doctype,
                        parent: frm.doc.name || ''
                    }
                };
            });
        });
    });
}

function clear_warehouse_fields(frm) {
    const none = function() {
        return { filters: { name: ['in', []] } };
    };
    warehouse_fields.forEach(function(fieldname) {
        if (frm.fields_dict[fieldname]) {
            frm.set_query(fieldname, none);
        }
    });
    child_tables.forEach(function(table_name) {
        if (!frm.fields_dict[table_name]) {
            return;
        }
        child_warehouse_fields.forEach(function(field_name) {
            frm.set_query(field_name, table_name, none);
        });
    });
}
`))

type scriptData struct {
	DocType              string
	DocFields            string
	ChildTables          string
	ChildFields          string
	WarehouseMethod      string
	ChildWarehouseMethod string
}

// Render produces the script text for dt. Target warehouse fields are left
// unfiltered.
func Render(dt domain.DocType, m Methods) (string, error) {
	data := scriptData{
		DocType:              jsString(string(dt)),
		DocFields:            jsList(domain.DocWarehouseFields),
		ChildTables:          jsList(domain.ChildTables),
		ChildFields:          jsList(domain.ChildWarehouseFields),
		WarehouseMethod:      jsString(m.Warehouse),
		ChildWarehouseMethod: jsString(m.ChildWarehouse),
	}
	var buf bytes.Buffer
	if err := scriptTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("clientscript.Render %s: %w", dt, err)
	}
	return buf.String(), nil
}

func jsString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func jsList(items []string) string {
	b, _ := json.Marshal(items)
	return string(b)
}
