package domain

import "github.com/shopspring/decimal"

// GSTRate is the fixed tax rate applied to invoice subtotals.
var GSTRate = decimal.NewFromFloat(0.18)

// InvoiceItem is one line of the GST invoice helper's working list. The list
// is scoped to a single editing session and never persisted.
type InvoiceItem struct {
	ItemID    string          `json:"itemID"`
	Name      string          `json:"name"`
	Qty       decimal.Decimal `json:"qty"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// LineTotal is qty times unit price for a single item.
func (i InvoiceItem) LineTotal() decimal.Decimal {
	return i.Qty.Mul(i.UnitPrice)
}

// InvoiceTotals are the derived figures for the current working list.
type InvoiceTotals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// ComputeInvoiceTotals derives subtotal, 18% tax and grand total from the
// given line items.
func ComputeInvoiceTotals(items []InvoiceItem) InvoiceTotals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.LineTotal())
	}
	tax := subtotal.Mul(GSTRate)
	return InvoiceTotals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}
