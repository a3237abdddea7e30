package services

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/oshocredit/khata_backend/internal/apperrors"
	"github.com/oshocredit/khata_backend/internal/core/domain"
	portssvc "github.com/oshocredit/khata_backend/internal/core/ports/services"
	"github.com/oshocredit/khata_backend/internal/dto"
)

var (
	ErrItemNameRequired = errors.New("item name is required")
	ErrQtyNotPositive   = errors.New("item quantity must be positive")
	ErrPriceNegative    = errors.New("item unit price cannot be negative")
)

// invoiceService keeps the GST helper's working list for the current
// editing session. Nothing here touches the snapshot store: closing the
// editor (Reset) discards the list without confirmation.
type invoiceService struct {
	mu    sync.Mutex
	items []domain.InvoiceItem
}

// NewInvoiceService creates a new InvoiceService with an empty working list.
func NewInvoiceService() portssvc.InvoiceSvcFacade {
	return &invoiceService{}
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

func (s *invoiceService) AddItem(req dto.InvoiceItemRequest) (*domain.InvoiceItem, error) {
	item, err := itemFromRequest(uuid.NewString(), req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, item)
	return &item, nil
}

func (s *invoiceService) UpdateItem(itemID string, req dto.InvoiceItemRequest) (*domain.InvoiceItem, error) {
	item, err := itemFromRequest(itemID, req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ItemID == itemID {
			s.items[i] = item
			return &item, nil
		}
	}
	return nil, fmt.Errorf("%w: invoice item %s", apperrors.ErrNotFound, itemID)
}

func (s *invoiceService) RemoveItem(itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ItemID == itemID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: invoice item %s", apperrors.ErrNotFound, itemID)
}

func (s *invoiceService) Items() []domain.InvoiceItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]domain.InvoiceItem, len(s.items))
	copy(items, s.items)
	return items
}

func (s *invoiceService) Totals() domain.InvoiceTotals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.ComputeInvoiceTotals(s.items)
}

func (s *invoiceService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

func itemFromRequest(itemID string, req dto.InvoiceItemRequest) (domain.InvoiceItem, error) {
	if req.Name == "" {
		return domain.InvoiceItem{}, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrItemNameRequired)
	}
	if req.Qty == nil || req.Qty.LessThanOrEqual(decimal.Zero) {
		return domain.InvoiceItem{}, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrQtyNotPositive)
	}
	if req.UnitPrice == nil || req.UnitPrice.IsNegative() {
		return domain.InvoiceItem{}, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrPriceNegative)
	}
	return domain.InvoiceItem{
		ItemID:    itemID,
		Name:      req.Name,
		Qty:       *req.Qty,
		UnitPrice: *req.UnitPrice,
	}, nil
}
