package dto

import (
	"time"

	"github.com/oshocredit/khata_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest is the payload for appending a ledger entry to a
// party. Amount is a pointer so an absent field is distinguishable from
// zero; both are rejected by the service. Date is optional and defaults to
// now.
type CreateTransactionRequest struct {
	Amount      *decimal.Decimal       `json:"amount" binding:"required"`
	Type        domain.TransactionType `json:"type" binding:"required,oneof=CREDIT DEBIT"`
	Note        string                 `json:"note"`
	Date        *time.Time             `json:"date"`
	Attachments []string               `json:"attachments"`
}

// TransactionResponse is a single ledger entry as rendered in the party
// detail history.
type TransactionResponse struct {
	TransactionID string                 `json:"transactionID"`
	Amount        decimal.Decimal        `json:"amount"`
	SignedAmount  decimal.Decimal        `json:"signedAmount"`
	Type          domain.TransactionType `json:"type"`
	Date          time.Time              `json:"date"`
	Note          string                 `json:"note,omitempty"`
	Attachments   []string               `json:"attachments,omitempty"`
}

// ToTransactionResponse maps a domain transaction to its response shape.
func ToTransactionResponse(txn domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		Amount:        txn.Amount,
		SignedAmount:  txn.SignedAmount(),
		Type:          txn.Type,
		Date:          txn.Date,
		Note:          txn.Note,
		Attachments:   txn.Attachments,
	}
}
