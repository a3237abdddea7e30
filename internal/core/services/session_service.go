package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/oshocredit/khata_backend/internal/apperrors"
	"github.com/oshocredit/khata_backend/internal/core/domain"
	portsrepo "github.com/oshocredit/khata_backend/internal/core/ports/repositories"
	portssvc "github.com/oshocredit/khata_backend/internal/core/ports/services"
	"github.com/oshocredit/khata_backend/internal/middleware"
)

// sessionService holds the authoritative in-memory state for the active
// session. The logical model is a single actor, but the HTTP surface is
// concurrent, so a mutex serializes access. Every mutation persists the
// full snapshot write-through; persist failures are logged and swallowed
// because the in-memory state stays authoritative for the session.
type sessionService struct {
	store portsrepo.SnapshotStore

	mu      sync.Mutex
	parties []domain.Party
	user    *domain.UserProfile
}

// NewSessionService creates a session backed by the given snapshot store.
func NewSessionService(store portsrepo.SnapshotStore) portssvc.SessionSvcFacade {
	return &sessionService{store: store}
}

var _ portssvc.SessionSvcFacade = (*sessionService)(nil)

// Init loads prior state. Absent or malformed data (the store reports both
// as a nil snapshot) leaves the session empty, forcing onboarding.
func (s *sessionService) Init(ctx context.Context) error {
	snapshot, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrPersistence, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if snapshot == nil {
		s.parties = nil
		s.user = nil
		return nil
	}
	s.parties = snapshot.Parties
	s.user = snapshot.User
	return nil
}

// Close performs the final save of the session lifecycle.
func (s *sessionService) Close(ctx context.Context) error {
	s.mu.Lock()
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	if err := s.store.Save(ctx, snapshot); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrPersistence, err)
	}
	return nil
}

func (s *sessionService) Profile() *domain.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	profile := *s.user
	return &profile
}

func (s *sessionService) CreateProfile(ctx context.Context, phone, shopName string) (*domain.UserProfile, error) {
	if phone == "" {
		return nil, fmt.Errorf("%w: phone is required", apperrors.ErrValidation)
	}
	if shopName == "" {
		return nil, fmt.Errorf("%w: shop name is required", apperrors.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user != nil {
		return nil, fmt.Errorf("%w: a profile already exists", apperrors.ErrDuplicate)
	}

	profile := domain.UserProfile{
		UserID:    uuid.NewString(),
		ShopName:  shopName,
		Phone:     phone,
		Role:      domain.RoleUser,
		IsBlocked: false,
	}
	s.user = &profile
	s.persistLocked(ctx)

	created := profile
	return &created, nil
}

func (s *sessionService) Parties() []domain.Party {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyParties(s.parties)
}

func (s *sessionService) FindParty(partyID string) (*domain.Party, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, party := range s.parties {
		if party.PartyID == partyID {
			found := copyParty(party)
			return &found, nil
		}
	}
	return nil, fmt.Errorf("%w: party %s", apperrors.ErrNotFound, partyID)
}

func (s *sessionService) AppendParty(ctx context.Context, party domain.Party) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.parties = append(s.parties, party)
	s.persistLocked(ctx)
	return nil
}

func (s *sessionService) AppendTransaction(ctx context.Context, partyID string, txn domain.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.parties {
		if s.parties[i].PartyID == partyID {
			s.parties[i].Transactions = append(s.parties[i].Transactions, txn)
			s.persistLocked(ctx)
			return nil
		}
	}
	return fmt.Errorf("%w: party %s", apperrors.ErrNotFound, partyID)
}

func (s *sessionService) StampReminder(ctx context.Context, partyID string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.parties {
		if s.parties[i].PartyID == partyID {
			stamped := at
			s.parties[i].LastReminderSent = &stamped
			s.persistLocked(ctx)
			return nil
		}
	}
	return fmt.Errorf("%w: party %s", apperrors.ErrNotFound, partyID)
}

// snapshotLocked builds a snapshot of the current state. Callers must hold mu.
func (s *sessionService) snapshotLocked() domain.Snapshot {
	return domain.Snapshot{
		Parties: copyParties(s.parties),
		User:    s.user,
	}
}

// persistLocked writes the whole snapshot through to the store. A failure
// is reported but does not roll back the in-memory change. Callers must
// hold mu.
func (s *sessionService) persistLocked(ctx context.Context) {
	if err := s.store.Save(ctx, s.snapshotLocked()); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to persist snapshot, in-memory state remains authoritative",
			slog.String("error", err.Error()))
	}
}

func copyParty(party domain.Party) domain.Party {
	copied := party
	copied.Transactions = make([]domain.Transaction, len(party.Transactions))
	copy(copied.Transactions, party.Transactions)
	return copied
}

func copyParties(parties []domain.Party) []domain.Party {
	copied := make([]domain.Party, 0, len(parties))
	for _, party := range parties {
		copied = append(copied, copyParty(party))
	}
	return copied
}
