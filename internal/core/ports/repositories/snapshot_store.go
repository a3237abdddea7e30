package repositories

import (
	"context"

	"github.com/oshocredit/khata_backend/internal/core/domain"
)

// SnapshotStore is the external durable blob store holding the whole
// application state as one named record.
//
// Load returns (nil, nil) when no usable prior state exists: both a missing
// record and a malformed one are treated as absent so a bad blob can never
// crash startup, it just forces re-onboarding. Save replaces the whole
// record; there are no partial writes.
type SnapshotStore interface {
	Load(ctx context.Context) (*domain.Snapshot, error)
	Save(ctx context.Context, snapshot domain.Snapshot) error
}

// RepositoryProvider bundles the repository implementations handed to the
// service layer.
type RepositoryProvider struct {
	SnapshotStore SnapshotStore
}
