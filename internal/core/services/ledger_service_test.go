package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/oshocredit/khata_backend/internal/apperrors"
	"github.com/oshocredit/khata_backend/internal/core/domain"
	portssvc "github.com/oshocredit/khata_backend/internal/core/ports/services"
	"github.com/oshocredit/khata_backend/internal/core/services"
	"github.com/oshocredit/khata_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLedger(t *testing.T) (portssvc.SessionSvcFacade, portssvc.LedgerSvcFacade) {
	t.Helper()
	_, session := newEmptySession(t)
	return session, services.NewLedgerService(session)
}

func decPtr(value int64) *decimal.Decimal {
	d := decimal.NewFromInt(value)
	return &d
}

func TestLedgerService_AddParty(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		req     dto.CreatePartyRequest
		wantErr error
	}{
		{
			name: "valid customer",
			req:  dto.CreatePartyRequest{Name: "Priya", Phone: "9876500002", Type: domain.Customer},
		},
		{
			name:    "empty name rejected",
			req:     dto.CreatePartyRequest{Name: "", Phone: "9999999999", Type: domain.Customer},
			wantErr: apperrors.ErrValidation,
		},
		{
			name:    "empty phone rejected",
			req:     dto.CreatePartyRequest{Name: "Priya", Phone: "", Type: domain.Customer},
			wantErr: apperrors.ErrValidation,
		},
		{
			name:    "unknown type rejected",
			req:     dto.CreatePartyRequest{Name: "Priya", Phone: "9999999999", Type: domain.PartyType("VENDOR")},
			wantErr: apperrors.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, ledger := newLedger(t)

			party, err := ledger.AddParty(ctx, tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, session.Parties(), "rejected party must not be stored")
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, party.PartyID)
			assert.Empty(t, party.Transactions)
			assert.False(t, party.CreatedAt.IsZero())
			assert.Len(t, session.Parties(), 1)
		})
	}
}

func TestLedgerService_AddTransactionValidation(t *testing.T) {
	ctx := context.Background()
	session, ledger := newLedger(t)

	created, err := ledger.AddParty(ctx, dto.CreatePartyRequest{Name: "Priya", Phone: "9876500002", Type: domain.Customer})
	require.NoError(t, err)

	tests := []struct {
		name string
		req  dto.CreateTransactionRequest
	}{
		{
			name: "absent amount",
			req:  dto.CreateTransactionRequest{Amount: nil, Type: domain.Debit},
		},
		{
			name: "zero amount",
			req:  dto.CreateTransactionRequest{Amount: decPtr(0), Type: domain.Debit},
		},
		{
			name: "negative amount",
			req:  dto.CreateTransactionRequest{Amount: decPtr(-100), Type: domain.Credit},
		},
		{
			name: "unknown type",
			req:  dto.CreateTransactionRequest{Amount: decPtr(100), Type: domain.TransactionType("TRANSFER")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ledger.AddTransaction(ctx, created.PartyID, tt.req)
			assert.ErrorIs(t, err, apperrors.ErrValidation)

			party, findErr := session.FindParty(created.PartyID)
			require.NoError(t, findErr)
			assert.Empty(t, party.Transactions, "rejected transaction must leave the sequence unchanged")
		})
	}

	t.Run("unknown party", func(t *testing.T) {
		_, err := ledger.AddTransaction(ctx, "missing", dto.CreateTransactionRequest{Amount: decPtr(100), Type: domain.Debit})
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestLedgerService_BalanceScenario(t *testing.T) {
	ctx := context.Background()
	_, ledger := newLedger(t)

	created, err := ledger.AddParty(ctx, dto.CreatePartyRequest{Name: "Ramesh", Phone: "9876500001", Type: domain.Supplier})
	require.NoError(t, err)

	// DEBIT 500, CREDIT 200, DEBIT 100 => owed 400
	for _, entry := range []dto.CreateTransactionRequest{
		{Amount: decPtr(500), Type: domain.Debit},
		{Amount: decPtr(200), Type: domain.Credit},
		{Amount: decPtr(100), Type: domain.Debit},
	} {
		_, err := ledger.AddTransaction(ctx, created.PartyID, entry)
		require.NoError(t, err)
	}

	party, err := ledger.GetParty(ctx, created.PartyID)
	require.NoError(t, err)
	assert.Equal(t, "400", party.Balance().String())
	assert.True(t, party.Balance().IsPositive(), "owner is owed, GIVE side")
}

func TestLedgerService_InsertionOrderIndependentOfDate(t *testing.T) {
	ctx := context.Background()
	_, ledger := newLedger(t)

	created, err := ledger.AddParty(ctx, dto.CreatePartyRequest{Name: "Priya", Phone: "9876500002", Type: domain.Customer})
	require.NoError(t, err)

	older := time.Now().AddDate(0, 0, -7)
	newer := time.Now()

	_, err = ledger.AddTransaction(ctx, created.PartyID, dto.CreateTransactionRequest{Amount: decPtr(10), Type: domain.Debit, Date: &newer})
	require.NoError(t, err)
	_, err = ledger.AddTransaction(ctx, created.PartyID, dto.CreateTransactionRequest{Amount: decPtr(20), Type: domain.Debit, Date: &older})
	require.NoError(t, err)

	party, err := ledger.GetParty(ctx, created.PartyID)
	require.NoError(t, err)

	// Backdated entry still lands at the end of the stored sequence.
	require.Len(t, party.Transactions, 2)
	assert.Equal(t, "10", party.Transactions[0].Amount.String())
	assert.Equal(t, "20", party.Transactions[1].Amount.String())

	// Display order sorts by date descending instead.
	display := party.TransactionsForDisplay()
	assert.Equal(t, "10", display[0].Amount.String())
}

func TestLedgerService_ListParties(t *testing.T) {
	ctx := context.Background()
	_, ledger := newLedger(t)

	for _, req := range []dto.CreatePartyRequest{
		{Name: "Ramesh", Phone: "9876500001", Type: domain.Supplier},
		{Name: "Priya", Phone: "9876500002", Type: domain.Customer},
		{Name: "Rajat", Phone: "9876500003", Type: domain.Supplier},
	} {
		_, err := ledger.AddParty(ctx, req)
		require.NoError(t, err)
	}

	suppliers := ledger.ListParties(ctx, domain.Supplier, "ra")
	require.Len(t, suppliers, 2)
	assert.Equal(t, "Ramesh", suppliers[0].Name)
	assert.Equal(t, "Rajat", suppliers[1].Name)
}

func TestLedgerService_Stats(t *testing.T) {
	ctx := context.Background()
	_, ledger := newLedger(t)

	t.Run("empty set is all zero", func(t *testing.T) {
		stats := ledger.Stats(ctx)
		assert.True(t, stats.TotalYouGave.IsZero())
		assert.True(t, stats.TotalYouGot.IsZero())
		assert.True(t, stats.NetBalance.IsZero())
	})

	customer, err := ledger.AddParty(ctx, dto.CreatePartyRequest{Name: "Priya", Phone: "9876500002", Type: domain.Customer})
	require.NoError(t, err)
	supplier, err := ledger.AddParty(ctx, dto.CreatePartyRequest{Name: "Ramesh", Phone: "9876500001", Type: domain.Supplier})
	require.NoError(t, err)

	_, err = ledger.AddTransaction(ctx, customer.PartyID, dto.CreateTransactionRequest{Amount: decPtr(500), Type: domain.Debit})
	require.NoError(t, err)
	_, err = ledger.AddTransaction(ctx, supplier.PartyID, dto.CreateTransactionRequest{Amount: decPtr(200), Type: domain.Credit})
	require.NoError(t, err)

	t.Run("sums across both party types", func(t *testing.T) {
		stats := ledger.Stats(ctx)
		assert.Equal(t, "500", stats.TotalYouGave.String())
		assert.Equal(t, "200", stats.TotalYouGot.String())
		assert.Equal(t, "300", stats.NetBalance.String())
	})
}
