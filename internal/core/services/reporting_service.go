package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/phpdave11/gofpdf"

	"github.com/oshocredit/khata_backend/internal/apperrors"
	"github.com/oshocredit/khata_backend/internal/core/domain"
	portssvc "github.com/oshocredit/khata_backend/internal/core/ports/services"
	"github.com/oshocredit/khata_backend/internal/dto"
)

// reportingService builds the REPORTS view payload and the exportable
// party statement.
type reportingService struct {
	session portssvc.SessionSvcFacade
}

// NewReportingService creates a new ReportingService.
func NewReportingService(session portssvc.SessionSvcFacade) portssvc.ReportingSvcFacade {
	return &reportingService{session: session}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// BusinessReport recomputes the aggregate figures and per-party balances
// from the full party set.
func (s *reportingService) BusinessReport(ctx context.Context) dto.BusinessReport {
	parties := s.session.Parties()

	entryCount := 0
	remindersSent := 0
	for _, party := range parties {
		entryCount += len(party.Transactions)
		if party.LastReminderSent != nil {
			remindersSent++
		}
	}

	return dto.BusinessReport{
		Stats:         domain.ComputeStats(parties),
		Customers:     dto.ToPartySummaries(domain.FilterParties(parties, domain.Customer, "")),
		Suppliers:     dto.ToPartySummaries(domain.FilterParties(parties, domain.Supplier, "")),
		PartyCount:    len(parties),
		EntryCount:    entryCount,
		RemindersSent: remindersSent,
	}
}

// PartyStatementPDF renders the party's ledger history as an A4 statement:
// shop and party header, dated entries in display order, totals and the
// closing balance. Amounts use "Rs." because the core PDF fonts have no
// rupee glyph.
func (s *reportingService) PartyStatementPDF(ctx context.Context, partyID string) ([]byte, error) {
	profile := s.session.Profile()
	if profile == nil {
		return nil, fmt.Errorf("%w: cannot export statements before onboarding", apperrors.ErrNoProfile)
	}

	party, err := s.session.FindParty(partyID)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Ledger Statement - "+party.Name, true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, profile.ShopName)
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, "Ledger statement for "+party.Name+" ("+party.Phone+")")
	pdf.Ln(10)

	// Table header
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(235, 235, 245)
	pdf.CellFormat(30, 8, "Date", "1", 0, "L", true, 0, "")
	pdf.CellFormat(70, 8, "Note", "1", 0, "L", true, 0, "")
	pdf.CellFormat(25, 8, "Type", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 8, "Gave (+)", "1", 0, "R", true, 0, "")
	pdf.CellFormat(30, 8, "Got (-)", "1", 0, "R", true, 0, "")
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, txn := range party.TransactionsForDisplay() {
		note := txn.Note
		if note == "" {
			note = "Cash Entry"
		}
		gave, got := "", ""
		if txn.Type == domain.Debit {
			gave = "Rs. " + txn.Amount.Round(2).String()
		} else {
			got = "Rs. " + txn.Amount.Round(2).String()
		}
		pdf.CellFormat(30, 7, txn.Date.Format("02 Jan 2006"), "1", 0, "L", false, 0, "")
		pdf.CellFormat(70, 7, note, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 7, string(txn.Type), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 7, gave, "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, got, "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	balance := party.Balance()
	balanceWord := "to receive"
	if balance.IsNegative() {
		balanceWord = "advance held"
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 10)
	pdf.Cell(0, 7, "Total gave: Rs. "+party.TotalByType(domain.Debit).Round(2).String())
	pdf.Ln(6)
	pdf.Cell(0, 7, "Total got: Rs. "+party.TotalByType(domain.Credit).Round(2).String())
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Closing balance: Rs. %s (%s)", balance.Abs().Round(2).String(), balanceWord))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render statement: %w", err)
	}
	return buf.Bytes(), nil
}
