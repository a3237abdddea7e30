package dto

import "github.com/oshocredit/khata_backend/internal/core/domain"

// BusinessReport is the REPORTS view payload: aggregate figures plus a
// per-party balance breakdown.
type BusinessReport struct {
	Stats         domain.Stats   `json:"stats"`
	Customers     []PartySummary `json:"customers"`
	Suppliers     []PartySummary `json:"suppliers"`
	PartyCount    int            `json:"partyCount"`
	EntryCount    int            `json:"entryCount"`
	RemindersSent int            `json:"remindersSent"`
}
