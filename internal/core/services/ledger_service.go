package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/oshocredit/khata_backend/internal/apperrors"
	"github.com/oshocredit/khata_backend/internal/core/domain"
	portssvc "github.com/oshocredit/khata_backend/internal/core/ports/services"
	"github.com/oshocredit/khata_backend/internal/dto"
	"github.com/oshocredit/khata_backend/internal/middleware"
)

var (
	ErrAmountRequired    = errors.New("transaction amount is required")
	ErrAmountNotPositive = errors.New("transaction amount must be positive")
	ErrNameRequired      = errors.New("party name is required")
	ErrPhoneRequired     = errors.New("party phone is required")
	ErrInvalidPartyType  = errors.New("party type must be CUSTOMER or SUPPLIER")
	ErrInvalidEntryType  = errors.New("transaction type must be CREDIT or DEBIT")
)

// ledgerService owns the ledger's business rules. Mutations validate fully
// before touching the session, so a rejected operation leaves no state
// behind.
type ledgerService struct {
	session portssvc.SessionSvcFacade
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(session portssvc.SessionSvcFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{session: session}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// AddParty validates and creates a new party with an empty ledger.
func (s *ledgerService) AddParty(ctx context.Context, req dto.CreatePartyRequest) (*domain.Party, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Name == "" {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrNameRequired)
	}
	if req.Phone == "" {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrPhoneRequired)
	}
	if !req.Type.Valid() {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrInvalidPartyType)
	}

	party := domain.Party{
		PartyID:      uuid.NewString(),
		Name:         req.Name,
		Phone:        req.Phone,
		Type:         req.Type,
		Transactions: []domain.Transaction{},
		CreatedAt:    time.Now(),
	}

	if err := s.session.AppendParty(ctx, party); err != nil {
		return nil, err
	}

	logger.Info("Party created",
		slog.String("party_id", party.PartyID),
		slog.String("party_type", string(party.Type)))
	return &party, nil
}

// AddTransaction validates and appends a ledger entry to the end of the
// party's sequence. Insertion order is preserved regardless of the entry's
// date; display sorting is a separate concern.
func (s *ledgerService) AddTransaction(ctx context.Context, partyID string, req dto.CreateTransactionRequest) (*domain.Party, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount == nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrAmountRequired)
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrAmountNotPositive)
	}
	if !req.Type.Valid() {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrInvalidEntryType)
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Amount:        *req.Amount,
		Type:          req.Type,
		Date:          date,
		Note:          req.Note,
		Attachments:   req.Attachments,
	}
	if err := txn.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
	}

	if err := s.session.AppendTransaction(ctx, partyID, txn); err != nil {
		return nil, err
	}

	logger.Info("Transaction recorded",
		slog.String("party_id", partyID),
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)),
		slog.String("amount", txn.Amount.String()))

	return s.session.FindParty(partyID)
}

// ListParties filters the party set by exact type and name/phone substring.
func (s *ledgerService) ListParties(ctx context.Context, partyType domain.PartyType, search string) []domain.Party {
	return domain.FilterParties(s.session.Parties(), partyType, search)
}

// GetParty returns a single party with its full ledger.
func (s *ledgerService) GetParty(ctx context.Context, partyID string) (*domain.Party, error) {
	return s.session.FindParty(partyID)
}

// Stats recomputes the aggregate business figures from the full party set.
func (s *ledgerService) Stats(ctx context.Context) domain.Stats {
	return domain.ComputeStats(s.session.Parties())
}
