package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReminderResponse reports a composed reminder hand-off: the deep link for
// the caller to open and the optimistically stamped timestamp.
type ReminderResponse struct {
	PartyID          string          `json:"partyID"`
	Balance          decimal.Decimal `json:"balance"`
	Message          string          `json:"message"`
	Link             string          `json:"link"`
	LastReminderSent time.Time       `json:"lastReminderSent"`
}
