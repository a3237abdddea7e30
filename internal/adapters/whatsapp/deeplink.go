package whatsapp

import (
	"net/url"

	portssvc "github.com/oshocredit/khata_backend/internal/core/ports/services"
)

// DeepLinkChannel composes wa.me links that open a prefilled WhatsApp chat.
// The hand-off is fire-and-forget: the caller opens the link out of band and
// no delivery status is ever observed.
type DeepLinkChannel struct {
	countryCode string
}

// NewDeepLinkChannel creates a channel that prefixes recipient numbers with
// the given country code (e.g. "91").
func NewDeepLinkChannel(countryCode string) *DeepLinkChannel {
	return &DeepLinkChannel{countryCode: countryCode}
}

var _ portssvc.MessageChannel = (*DeepLinkChannel)(nil)

// DeepLink returns the wa.me URL addressing the phone number with the
// URL-encoded message text.
func (c *DeepLinkChannel) DeepLink(phone, message string) string {
	return "https://wa.me/" + c.countryCode + phone + "?text=" + url.QueryEscape(message)
}
