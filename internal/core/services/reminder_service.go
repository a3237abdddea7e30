package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/oshocredit/khata_backend/internal/apperrors"
	portssvc "github.com/oshocredit/khata_backend/internal/core/ports/services"
	"github.com/oshocredit/khata_backend/internal/dto"
	"github.com/oshocredit/khata_backend/internal/middleware"
	"github.com/oshocredit/khata_backend/internal/utils"
)

// reminderService composes the bilingual balance reminder and hands it to
// the message channel.
type reminderService struct {
	session portssvc.SessionSvcFacade
	channel portssvc.MessageChannel
}

// NewReminderService creates a new ReminderService.
func NewReminderService(session portssvc.SessionSvcFacade, channel portssvc.MessageChannel) portssvc.ReminderSvcFacade {
	return &reminderService{session: session, channel: channel}
}

var _ portssvc.ReminderSvcFacade = (*reminderService)(nil)

// SendReminder composes the fixed-template message for the party's current
// balance and stamps lastReminderSent. The stamp is optimistic: the channel
// is fire-and-forget and delivery is never confirmed.
func (s *reminderService) SendReminder(ctx context.Context, partyID string) (*dto.ReminderResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	profile := s.session.Profile()
	if profile == nil {
		return nil, fmt.Errorf("%w: cannot send reminders before onboarding", apperrors.ErrNoProfile)
	}

	party, err := s.session.FindParty(partyID)
	if err != nil {
		return nil, err
	}

	balance := party.Balance()
	statusText := "pending balance"
	if balance.IsNegative() {
		statusText = "advance balance"
	}

	message := fmt.Sprintf(
		"Namaste %s,\n\nThis is a friendly reminder from *%s* (Osho Credit).\n\nYour current %s is *%s*.\n\nKripya ise jald se jald clear karein. Thank you! 🙏",
		party.Name, profile.ShopName, statusText, utils.FormatRupeesAbs(balance),
	)
	link := s.channel.DeepLink(party.Phone, message)

	now := time.Now()
	if err := s.session.StampReminder(ctx, partyID, now); err != nil {
		return nil, err
	}

	logger.Info("Reminder handed off",
		slog.String("party_id", partyID),
		slog.String("balance", balance.String()))

	return &dto.ReminderResponse{
		PartyID:          partyID,
		Balance:          balance,
		Message:          message,
		Link:             link,
		LastReminderSent: now,
	}, nil
}
