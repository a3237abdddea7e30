package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates the direction of a ledger entry from the shop
// owner's point of view.
type TransactionType string

const (
	// Debit means value extended to the party (owner gave money/goods).
	Debit TransactionType = "DEBIT"
	// Credit means value received from the party (owner got money/goods).
	Credit TransactionType = "CREDIT"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == Debit || t == Credit
}

// Transaction is a single immutable ledger entry belonging to exactly one
// Party. The sign of its contribution to a balance is derived from Type,
// never stored.
type Transaction struct {
	TransactionID string          `json:"transactionID"`
	Amount        decimal.Decimal `json:"amount"` // positive value
	Type          TransactionType `json:"type"`
	Date          time.Time       `json:"date"`
	Note          string          `json:"note,omitempty"`
	Attachments   []string        `json:"attachments,omitempty"`
}

// SignedAmount returns the transaction's contribution to a party balance:
// positive for DEBIT (owner is owed), negative for CREDIT.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Type == Debit {
		return t.Amount
	}
	return t.Amount.Neg()
}

// Validate checks the invariants every stored transaction must satisfy.
func (t Transaction) Validate() error {
	if t.TransactionID == "" {
		return fmt.Errorf("transaction ID is required")
	}
	if !t.Type.Valid() {
		return fmt.Errorf("unknown transaction type %q", t.Type)
	}
	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("transaction amount must be positive, got %s", t.Amount)
	}
	return nil
}
