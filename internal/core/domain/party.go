package domain

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PartyType distinguishes the two kinds of counter-parties in the ledger.
type PartyType string

const (
	Customer PartyType = "CUSTOMER"
	Supplier PartyType = "SUPPLIER"
)

// Valid reports whether p is one of the known party types.
func (p PartyType) Valid() bool {
	return p == Customer || p == Supplier
}

// Party is a customer or supplier counter-party. It exclusively owns its
// transaction sequence, which is append-only and kept in insertion order.
// Balance is always derived from the transactions so it can never drift out
// of sync with them.
type Party struct {
	PartyID          string        `json:"partyID"`
	Name             string        `json:"name"`
	Phone            string        `json:"phone"`
	Type             PartyType     `json:"type"`
	Transactions     []Transaction `json:"transactions"`
	CreatedAt        time.Time     `json:"createdAt"`
	LastReminderSent *time.Time    `json:"lastReminderSent,omitempty"`
}

// Balance is the signed net of the party's ledger: DEBIT entries add,
// CREDIT entries subtract. Positive means the owner is owed money ("GIVE"),
// negative means the owner owes the party ("GOT"). An empty ledger is zero.
func (p Party) Balance() decimal.Decimal {
	total := decimal.Zero
	for _, txn := range p.Transactions {
		total = total.Add(txn.SignedAmount())
	}
	return total
}

// TotalByType sums the party's entries of a single transaction type.
func (p Party) TotalByType(t TransactionType) decimal.Decimal {
	total := decimal.Zero
	for _, txn := range p.Transactions {
		if txn.Type == t {
			total = total.Add(txn.Amount)
		}
	}
	return total
}

// TransactionsForDisplay returns a copy of the party's transactions sorted
// descending by date. The underlying sequence stays in insertion order; the
// sort is stable so same-date entries keep their relative order.
func (p Party) TransactionsForDisplay() []Transaction {
	display := make([]Transaction, len(p.Transactions))
	copy(display, p.Transactions)
	sort.SliceStable(display, func(i, j int) bool {
		return display[i].Date.After(display[j].Date)
	})
	return display
}

// Stats are the aggregate business figures shown on the dashboard. They are
// recomputed from the full party set on every read, never cached.
type Stats struct {
	TotalYouGave decimal.Decimal `json:"totalYouGave"`
	TotalYouGot  decimal.Decimal `json:"totalYouGot"`
	NetBalance   decimal.Decimal `json:"netBalance"`
}

// ComputeStats sums DEBIT and CREDIT amounts over all parties regardless of
// party type. An empty party set yields all zeros. The result is independent
// of party and transaction ordering.
func ComputeStats(parties []Party) Stats {
	gave := decimal.Zero
	got := decimal.Zero
	for _, party := range parties {
		for _, txn := range party.Transactions {
			if txn.Type == Debit {
				gave = gave.Add(txn.Amount)
			} else {
				got = got.Add(txn.Amount)
			}
		}
	}
	return Stats{
		TotalYouGave: gave,
		TotalYouGot:  got,
		NetBalance:   gave.Sub(got),
	}
}

// FilterParties keeps parties whose type matches exactly and whose name
// (case-insensitive) or phone contains search as a substring. Empty search
// matches all. Insertion order is preserved.
func FilterParties(parties []Party, partyType PartyType, search string) []Party {
	needle := strings.ToLower(search)
	filtered := make([]Party, 0, len(parties))
	for _, party := range parties {
		if party.Type != partyType {
			continue
		}
		if needle == "" ||
			strings.Contains(strings.ToLower(party.Name), needle) ||
			strings.Contains(party.Phone, search) {
			filtered = append(filtered, party)
		}
	}
	return filtered
}
