package services

import (
	"context"

	"github.com/oshocredit/khata_backend/internal/dto"
)

// ReportingSvcFacade produces the REPORTS view data and the exportable
// party statement.
type ReportingSvcFacade interface {
	BusinessReport(ctx context.Context) dto.BusinessReport
	// PartyStatementPDF renders a party's ledger history as a PDF document.
	PartyStatementPDF(ctx context.Context, partyID string) ([]byte, error)
}
