package whatsapp_test

import (
	"net/url"
	"testing"

	"github.com/oshocredit/khata_backend/internal/adapters/whatsapp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeepLink(t *testing.T) {
	channel := whatsapp.NewDeepLinkChannel("91")

	t.Run("prefixes country code", func(t *testing.T) {
		link := channel.DeepLink("9876500002", "hello")
		assert.Equal(t, "https://wa.me/919876500002?text=hello", link)
	})

	t.Run("message round-trips through encoding", func(t *testing.T) {
		message := "Namaste Priya,\n\nYour current pending balance is *₹450*. 🙏"
		link := channel.DeepLink("9876500002", message)

		parsed, err := url.Parse(link)
		require.NoError(t, err)
		assert.Equal(t, "wa.me", parsed.Host)
		assert.Equal(t, message, parsed.Query().Get("text"))
	})
}
