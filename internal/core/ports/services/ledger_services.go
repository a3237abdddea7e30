package services

import (
	"context"

	"github.com/oshocredit/khata_backend/internal/core/domain"
	"github.com/oshocredit/khata_backend/internal/dto"
)

// LedgerSvcFacade exposes the business rules of the ledger: party and
// transaction creation with all-or-nothing validation, filtering, and the
// derived aggregate figures.
type LedgerSvcFacade interface {
	AddParty(ctx context.Context, req dto.CreatePartyRequest) (*domain.Party, error)
	AddTransaction(ctx context.Context, partyID string, req dto.CreateTransactionRequest) (*domain.Party, error)
	ListParties(ctx context.Context, partyType domain.PartyType, search string) []domain.Party
	GetParty(ctx context.Context, partyID string) (*domain.Party, error)
	Stats(ctx context.Context) domain.Stats
}
