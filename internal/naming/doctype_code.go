package naming

import "lbseries/internal/domain"

// DoctypeCode derives the sub-kind code that distinguishes returns and debit
// notes within a series. Plain documents get "".
func DoctypeCode(doc *domain.TransactionDocument) string {
	switch doc.DocType {
	case domain.DocTypeSalesInvoice:
		if doc.IsDebitNote {
			return "DR"
		}
		if doc.IsReturn {
			return "CR"
		}
	case domain.DocTypePurchaseInvoice:
		if doc.IsReturn {
			return "DR"
		}
	case domain.DocTypeDeliveryNote:
		if doc.IsReturn {
			return "SR"
		}
	case domain.DocTypePurchaseReceipt:
		if doc.IsReturn {
			return "PR"
		}
	}
	return ""
}
