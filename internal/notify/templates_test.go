package notify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func confirmPayload() map[string]any {
	return map[string]any{
		"booking_id":     int64(7),
		"date":           "2024-06-10",
		"start_time":     "9:00",
		"end_time":       "13:00",
		"client_name":    "Laura",
		"hotel":          "Riad Dar Anika",
		"children_count": 2,
	}
}

func TestRenderLocales(t *testing.T) {
	fr := render("booking_confirmed_client", "fr", confirmPayload())
	assert.Equal(t, "Réservation confirmée", fr.Subject)
	assert.Contains(t, fr.Body, "Laura")
	assert.Contains(t, fr.Body, "9:00 - 13:00")

	en := render("booking_confirmed_client", "en", confirmPayload())
	assert.Equal(t, "Booking confirmed", en.Subject)

	// Unknown locales fall back to English.
	de := render("booking_confirmed_client", "de", confirmPayload())
	assert.Equal(t, en.Subject, de.Subject)
}

func TestRenderCancellationFeeLine(t *testing.T) {
	payload := confirmPayload()
	payload["has_fee"] = true

	msg := render("booking_cancelled_client", "en", payload)
	assert.Contains(t, msg.Body, "cancellation fee applies")

	payload["has_fee"] = false
	msg = render("booking_cancelled_client", "en", payload)
	assert.NotContains(t, msg.Body, "fee")
}

func TestRenderInvoice(t *testing.T) {
	payload := confirmPayload()
	payload["hours_worked"] = 4.5
	payload["total_price"] = "120"

	msg := render("invoice", "en", payload)
	assert.Contains(t, msg.Body, "4.5")
	assert.Contains(t, msg.Body, "120")
}

func TestRenderReviewRequestCarriesLink(t *testing.T) {
	payload := confirmPayload()
	payload["review_token"] = "https://callanannycare.com/review/tok-123"

	msg := render("review_request", "fr", payload)
	assert.Contains(t, msg.Body, "review/tok-123")
}

func TestRenderUnknownTemplateStillProducesOutput(t *testing.T) {
	msg := render("mystery", "en", confirmPayload())
	assert.Equal(t, "mystery", msg.Subject)
	assert.True(t, strings.Contains(msg.Body, "Laura"))
}
