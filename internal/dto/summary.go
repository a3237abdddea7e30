package dto

import "github.com/shopspring/decimal"

// PartyDigest is the per-party slice of ledger data handed to the summary
// advisor: just enough for a business summary, no phone numbers or notes.
type PartyDigest struct {
	Name             string          `json:"name"`
	Balance          decimal.Decimal `json:"balance"`
	TransactionCount int             `json:"txCount"`
}

// SummaryState is the single-slot result cell of the advisor call: the last
// stored text and whether a call is currently in flight.
type SummaryState struct {
	Text    string `json:"text"`
	Loading bool   `json:"loading"`
}
