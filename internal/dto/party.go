package dto

import (
	"time"

	"github.com/oshocredit/khata_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePartyRequest is the payload for adding a customer or supplier.
type CreatePartyRequest struct {
	Name  string           `json:"name" binding:"required"`
	Phone string           `json:"phone" binding:"required,inphone"`
	Type  domain.PartyType `json:"type" binding:"required,oneof=CUSTOMER SUPPLIER"`
}

// PartyResponse is a party with its derived figures, as rendered in the
// party list and detail views.
type PartyResponse struct {
	PartyID          string                `json:"partyID"`
	Name             string                `json:"name"`
	Phone            string                `json:"phone"`
	Type             domain.PartyType      `json:"type"`
	Balance          decimal.Decimal       `json:"balance"`
	TotalGave        decimal.Decimal       `json:"totalGave"`
	TotalGot         decimal.Decimal       `json:"totalGot"`
	Transactions     []TransactionResponse `json:"transactions"`
	CreatedAt        time.Time             `json:"createdAt"`
	LastReminderSent *time.Time            `json:"lastReminderSent,omitempty"`
}

// ToPartyResponse maps a domain party to its response shape. Transactions
// are in display order (descending by date).
func ToPartyResponse(party domain.Party) PartyResponse {
	display := party.TransactionsForDisplay()
	txns := make([]TransactionResponse, 0, len(display))
	for _, txn := range display {
		txns = append(txns, ToTransactionResponse(txn))
	}
	return PartyResponse{
		PartyID:          party.PartyID,
		Name:             party.Name,
		Phone:            party.Phone,
		Type:             party.Type,
		Balance:          party.Balance(),
		TotalGave:        party.TotalByType(domain.Debit),
		TotalGot:         party.TotalByType(domain.Credit),
		Transactions:     txns,
		CreatedAt:        party.CreatedAt,
		LastReminderSent: party.LastReminderSent,
	}
}

// PartySummary is the lighter list-row shape: no transaction history.
type PartySummary struct {
	PartyID string           `json:"partyID"`
	Name    string           `json:"name"`
	Phone   string           `json:"phone"`
	Type    domain.PartyType `json:"type"`
	Balance decimal.Decimal  `json:"balance"`
}

// ToPartySummaries maps parties to list rows, preserving order.
func ToPartySummaries(parties []domain.Party) []PartySummary {
	rows := make([]PartySummary, 0, len(parties))
	for _, party := range parties {
		rows = append(rows, PartySummary{
			PartyID: party.PartyID,
			Name:    party.Name,
			Phone:   party.Phone,
			Type:    party.Type,
			Balance: party.Balance(),
		})
	}
	return rows
}
