package services

import (
	"context"

	"github.com/oshocredit/khata_backend/internal/dto"
)

// SummaryAdvisor is the external collaborator that turns per-party digests
// into a natural-language business summary. Implementations must surface
// failures as errors, never panics.
type SummaryAdvisor interface {
	BusinessSummary(ctx context.Context, digests []dto.PartyDigest) (string, error)
}

// SummarySvcFacade manages the one in-flight advisor call and its
// single-slot result cell. Refresh is fire-and-forget from the state
// machine's perspective: it sets the loading flag, performs the external
// call in the background, and stores the resulting text (or a fixed
// fallback) when it completes. Re-triggering replaces the previous call's
// relevance; calls are never queued.
type SummarySvcFacade interface {
	Refresh(ctx context.Context)
	Result() dto.SummaryState
}
