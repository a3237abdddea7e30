package services

import (
	"context"
	"time"

	"github.com/oshocredit/khata_backend/internal/core/domain"
)

// SessionSvcFacade owns the authoritative in-memory copy of the application
// state (parties plus user profile) for the active session and keeps it
// synchronized with the snapshot store. Every mutation persists the whole
// snapshot write-through; a persistence failure is reported to the log but
// the in-memory change is never rolled back.
type SessionSvcFacade interface {
	// Init loads prior state from the store. Absent or malformed data leaves
	// the session empty, which forces the login/onboarding flow.
	Init(ctx context.Context) error
	// Close performs the final save of the session lifecycle.
	Close(ctx context.Context) error

	// Profile returns the current user profile, or nil before onboarding.
	Profile() *domain.UserProfile
	// CreateProfile creates the singleton profile at first login. It fails
	// with ErrDuplicate while one already exists.
	CreateProfile(ctx context.Context, phone, shopName string) (*domain.UserProfile, error)

	// Parties returns a copy of the full party set in insertion order.
	Parties() []domain.Party
	// FindParty returns a copy of the party with the given ID.
	FindParty(partyID string) (*domain.Party, error)
	// AppendParty adds a new party to the end of the set.
	AppendParty(ctx context.Context, party domain.Party) error
	// AppendTransaction appends a transaction to the end of the identified
	// party's sequence.
	AppendTransaction(ctx context.Context, partyID string, txn domain.Transaction) error
	// StampReminder records when a reminder was last handed off for a party.
	StampReminder(ctx context.Context, partyID string, at time.Time) error
}
