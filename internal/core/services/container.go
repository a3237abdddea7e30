package services

import (
	portsrepo "github.com/oshocredit/khata_backend/internal/core/ports/repositories"
	portssvc "github.com/oshocredit/khata_backend/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies. The session service is built first since the
// other services read and mutate state through it.
func NewServiceContainer(
	repos portsrepo.RepositoryProvider,
	advisor portssvc.SummaryAdvisor,
	channel portssvc.MessageChannel,
) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Session = NewSessionService(repos.SnapshotStore)
	container.Ledger = NewLedgerService(container.Session)
	container.Summary = NewSummaryService(advisor, container.Session)
	container.Reminder = NewReminderService(container.Session, channel)
	container.Invoice = NewInvoiceService()
	container.Reporting = NewReportingService(container.Session)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.SessionSvcFacade   = (*sessionService)(nil)
	_ portssvc.LedgerSvcFacade    = (*ledgerService)(nil)
	_ portssvc.SummarySvcFacade   = (*summaryService)(nil)
	_ portssvc.ReminderSvcFacade  = (*reminderService)(nil)
	_ portssvc.InvoiceSvcFacade   = (*invoiceService)(nil)
	_ portssvc.ReportingSvcFacade = (*reportingService)(nil)
)
