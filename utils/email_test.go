package utils

import (
	"errors"
	"testing"

	"go-booking/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmailServiceConfig(t *testing.T) {
	_, err := NewEmailService(EmailConfig{Provider: EmailPostmark})
	assert.Error(t, err)
	_, err = NewEmailService(EmailConfig{Provider: EmailSendGrid})
	assert.Error(t, err)
	_, err = NewEmailService(EmailConfig{Provider: EmailSMTP})
	assert.Error(t, err)
	_, err = NewEmailService(EmailConfig{Provider: "pigeon"})
	assert.Error(t, err)

	for _, cfg := range []EmailConfig{
		{Provider: EmailPostmark, PostmarkToken: "token"},
		{Provider: EmailSendGrid, SendGridKey: "key"},
		{Provider: EmailSMTP, SMTPHost: "localhost", SMTPPort: 1025},
	} {
		es, err := NewEmailService(cfg)
		require.NoError(t, err)
		assert.Equal(t, cfg.Provider, es.Provider())
	}

	es, err := NewEmailService(EmailConfig{})
	require.NoError(t, err)
	assert.Equal(t, EmailNone, es.Provider())
	assert.NoError(t, es.SendEmail("a@example.com", "hi", "<p>hi</p>", ""))
}

func TestSendBookingStatusEmail(t *testing.T) {
	var got struct{ to, subject, html, text string }
	es := &EmailService{provider: "test", send: func(to, subject, htmlBody, textBody string) error {
		got.to, got.subject, got.html, got.text = to, subject, htmlBody, textBody
		return nil
	}}

	view := models.BookingView{
		Booking: models.Booking{Date: "2026-10-20", Time: "10:30", Status: models.BookingConfirmed, AdminComment: "Bring <towel>"},
		Service: &models.Service{Title: "Massage"},
		Shop:    &models.ShopSummary{Name: "Glow"},
	}
	require.NoError(t, es.SendBookingStatusEmail("alice@example.com", "Alice", view))

	assert.Equal(t, "alice@example.com", got.to)
	assert.Equal(t, "Booking Confirmed", got.subject)
	assert.Contains(t, got.text, "Your Massage booking at Glow on 2026-10-20 at 10:30 is now Confirmed.")
	assert.Contains(t, got.text, "Note from the shop: Bring <towel>")
	assert.Contains(t, got.html, "Bring &lt;towel&gt;")
	assert.NotContains(t, got.html, "<towel>")
}

func TestSendBookingStatusEmailWrapsFailure(t *testing.T) {
	es := &EmailService{provider: "test", send: func(string, string, string, string) error {
		return errors.New("smtp down")
	}}

	err := es.SendBookingStatusEmail("alice@example.com", "Alice", models.BookingView{
		Booking: models.Booking{Date: "2026-10-20", Time: "10:30", Status: models.BookingCancelled},
	})
	assert.EqualError(t, err, "failed to send email: smtp down")
}
