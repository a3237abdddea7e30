package dto

import (
	"github.com/oshocredit/khata_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InvoiceItemRequest is the payload for adding or updating an invoice line
// item.
type InvoiceItemRequest struct {
	Name      string           `json:"name" binding:"required"`
	Qty       *decimal.Decimal `json:"qty" binding:"required"`
	UnitPrice *decimal.Decimal `json:"unitPrice" binding:"required"`
}

// InvoiceResponse is the current working list with its derived totals.
type InvoiceResponse struct {
	Items  []domain.InvoiceItem `json:"items"`
	Totals domain.InvoiceTotals `json:"totals"`
}
