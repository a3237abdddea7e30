package blobstore_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/oshocredit/khata_backend/internal/adapters/blobstore"
	"github.com/oshocredit/khata_backend/internal/core/domain"
	portsrepo "github.com/oshocredit/khata_backend/internal/core/ports/repositories"
	"github.com/oshocredit/khata_backend/pkg/database"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*sql.DB, portsrepo.SnapshotStore) {
	t.Helper()
	db, err := database.NewSQLiteDB(filepath.Join(t.TempDir(), "khata_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store, err := blobstore.NewSQLiteSnapshotStore(db, "osho_credit_data")
	require.NoError(t, err)
	return db, store
}

func TestSQLiteSnapshotStore(t *testing.T) {
	ctx := context.Background()

	t.Run("missing record loads as absent", func(t *testing.T) {
		_, store := newTestStore(t)
		snapshot, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Nil(t, snapshot)
	})

	t.Run("save then load round-trips", func(t *testing.T) {
		_, store := newTestStore(t)
		stamp := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		saved := domain.Snapshot{
			User: &domain.UserProfile{Phone: "9876543210", ShopName: "Osho Kirana", Role: domain.RoleUser},
			Parties: []domain.Party{
				{
					PartyID: "p-1", Name: "Priya", Phone: "9876500002", Type: domain.Customer,
					CreatedAt:        stamp,
					LastReminderSent: &stamp,
					Transactions: []domain.Transaction{
						{TransactionID: "t-1", Amount: decimal.NewFromInt(500), Type: domain.Debit, Date: stamp, Note: "udhaar"},
					},
				},
			},
		}
		require.NoError(t, store.Save(ctx, saved))

		loaded, err := store.Load(ctx)
		require.NoError(t, err)
		require.NotNil(t, loaded)
		assert.Equal(t, saved.User.ShopName, loaded.User.ShopName)
		require.Len(t, loaded.Parties, 1)
		assert.Equal(t, "500", loaded.Parties[0].Transactions[0].Amount.String())
		require.NotNil(t, loaded.Parties[0].LastReminderSent)
		assert.True(t, stamp.Equal(*loaded.Parties[0].LastReminderSent))
	})

	t.Run("save replaces the record whole", func(t *testing.T) {
		_, store := newTestStore(t)
		require.NoError(t, store.Save(ctx, domain.Snapshot{Parties: []domain.Party{{PartyID: "p-1", Name: "Old"}}}))
		require.NoError(t, store.Save(ctx, domain.Snapshot{Parties: []domain.Party{{PartyID: "p-2", Name: "New"}}}))

		loaded, err := store.Load(ctx)
		require.NoError(t, err)
		require.Len(t, loaded.Parties, 1)
		assert.Equal(t, "p-2", loaded.Parties[0].PartyID)
	})

	t.Run("malformed body loads as absent", func(t *testing.T) {
		db, store := newTestStore(t)
		_, err := db.Exec(
			`INSERT INTO snapshots (name, body, updated_at) VALUES (?, ?, ?)`,
			"osho_credit_data", "{not json", time.Now().UTC().Format(time.RFC3339))
		require.NoError(t, err)

		snapshot, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Nil(t, snapshot)
	})

	t.Run("records are scoped by name", func(t *testing.T) {
		db, store := newTestStore(t)
		other, err := blobstore.NewSQLiteSnapshotStore(db, "other_shop")
		require.NoError(t, err)

		require.NoError(t, other.Save(ctx, domain.Snapshot{Parties: []domain.Party{{PartyID: "p-9"}}}))

		snapshot, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Nil(t, snapshot)
	})

	t.Run("empty record name rejected", func(t *testing.T) {
		db, _ := newTestStore(t)
		_, err := blobstore.NewSQLiteSnapshotStore(db, "")
		assert.Error(t, err)
	})
}
