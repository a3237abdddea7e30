package services

import (
	"context"

	"github.com/oshocredit/khata_backend/internal/dto"
)

// MessageChannel is the external messaging side-channel. It addresses the
// recipient by phone number and carries URL-encoded free text; delivery is
// fire-and-forget and never confirmed.
type MessageChannel interface {
	DeepLink(phone, message string) string
}

// ReminderSvcFacade composes the bilingual balance reminder for a party and
// hands it to the message channel. The party's lastReminderSent timestamp is
// updated optimistically, whether or not the channel completes the send.
type ReminderSvcFacade interface {
	SendReminder(ctx context.Context, partyID string) (*dto.ReminderResponse, error)
}
