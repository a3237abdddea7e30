package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/oshocredit/khata_backend/internal/apperrors"
	portssvc "github.com/oshocredit/khata_backend/internal/core/ports/services"
	"github.com/oshocredit/khata_backend/internal/dto"
	"github.com/oshocredit/khata_backend/internal/middleware"
)

const (
	// SummaryFallback is stored when the advisor call fails for any reason.
	SummaryFallback = "Could not generate summary at this time."
	// SummaryKeyMissing is stored when no advisor credential is configured.
	SummaryKeyMissing = "AI summary is unavailable: no API key is configured."
)

// summaryService runs the one advisor call that may be in flight and keeps
// its single-slot result cell. A refresh while a call is running replaces
// the previous call's relevance: the slot only ever holds the latest
// completed text. Nothing is queued and nothing is cancelled; a result that
// lands after the user navigated away is still stored.
type summaryService struct {
	advisor portssvc.SummaryAdvisor
	session portssvc.SessionSvcFacade

	mu         sync.Mutex
	loading    bool
	text       string
	generation int
}

// NewSummaryService creates a new SummaryService.
func NewSummaryService(advisor portssvc.SummaryAdvisor, session portssvc.SessionSvcFacade) portssvc.SummarySvcFacade {
	return &summaryService{advisor: advisor, session: session}
}

var _ portssvc.SummarySvcFacade = (*summaryService)(nil)

// Refresh snapshots the ledger digest, sets the loading flag and performs
// the advisor call in the background. Errors are converted to fixed
// user-visible strings and never propagate out.
func (s *summaryService) Refresh(ctx context.Context) {
	logger := middleware.GetLoggerFromCtx(ctx)

	digests := s.digests()

	s.mu.Lock()
	s.loading = true
	s.generation++
	generation := s.generation
	s.mu.Unlock()

	// Detached from the request context: the call outlives the triggering
	// request and has no cancellation.
	go func() {
		text, err := s.advisor.BusinessSummary(context.Background(), digests)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrNoAPIKey):
				logger.Warn("Summary advisor credential missing")
				text = SummaryKeyMissing
			default:
				logger.Error("Summary advisor call failed", slog.String("error", err.Error()))
				text = SummaryFallback
			}
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		// A newer refresh owns the slot now; drop the stale result.
		if generation != s.generation {
			return
		}
		s.loading = false
		s.text = text
	}()
}

// Result returns the last stored text and whether a call is in flight.
func (s *summaryService) Result() dto.SummaryState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return dto.SummaryState{Text: s.text, Loading: s.loading}
}

// digests derives the advisor input from the current party set: name,
// balance and entry count only.
func (s *summaryService) digests() []dto.PartyDigest {
	parties := s.session.Parties()
	digests := make([]dto.PartyDigest, 0, len(parties))
	for _, party := range parties {
		digests = append(digests, dto.PartyDigest{
			Name:             party.Name,
			Balance:          party.Balance(),
			TransactionCount: len(party.Transactions),
		})
	}
	return digests
}
