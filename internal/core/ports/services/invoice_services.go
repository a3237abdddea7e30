package services

import (
	"github.com/oshocredit/khata_backend/internal/core/domain"
	"github.com/oshocredit/khata_backend/internal/dto"
)

// InvoiceSvcFacade maintains the GST invoice helper's working list of line
// items. The list is scoped to a single editing session: nothing is
// persisted, and Reset discards it without confirmation.
type InvoiceSvcFacade interface {
	AddItem(req dto.InvoiceItemRequest) (*domain.InvoiceItem, error)
	UpdateItem(itemID string, req dto.InvoiceItemRequest) (*domain.InvoiceItem, error)
	RemoveItem(itemID string) error
	Items() []domain.InvoiceItem
	Totals() domain.InvoiceTotals
	Reset()
}
