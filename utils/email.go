package utils

import (
	"fmt"
	"html"
	"log"
	"strings"

	"go-booking/models"

	"github.com/keighl/postmark"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"gopkg.in/gomail.v2"
)

// Email providers selectable with EMAIL_PROVIDER
const (
	EmailPostmark = "postmark"
	EmailSendGrid = "sendgrid"
	EmailSMTP     = "smtp"
	EmailNone     = "none"
)

// EmailConfig selects and configures the email backend
type EmailConfig struct {
	Provider      string
	Sender        string
	PostmarkToken string
	SendGridKey   string
	SMTPHost      string
	SMTPPort      int
	SMTPUsername  string
	SMTPPassword  string
}

// emailSender delivers one rendered message
type emailSender func(to, subject, htmlBody, textBody string) error

// EmailService handles sending emails through the configured provider
type EmailService struct {
	provider string
	send     emailSender
}

// NewEmailService initializes and returns a new EmailService instance
func NewEmailService(cfg EmailConfig) (*EmailService, error) {
	es := &EmailService{provider: cfg.Provider}

	switch cfg.Provider {
	case EmailPostmark:
		if cfg.PostmarkToken == "" {
			return nil, fmt.Errorf("POSTMARK_API_TOKEN is not set")
		}
		client := postmark.NewClient(cfg.PostmarkToken, "")
		es.send = func(to, subject, htmlBody, textBody string) error {
			_, err := client.SendEmail(postmark.Email{
				From:     cfg.Sender,
				To:       to,
				Subject:  subject,
				HtmlBody: htmlBody,
				TextBody: textBody,
			})
			return err
		}
	case EmailSendGrid:
		if cfg.SendGridKey == "" {
			return nil, fmt.Errorf("SENDGRID_API_KEY is not set")
		}
		client := sendgrid.NewSendClient(cfg.SendGridKey)
		from := mail.NewEmail("", cfg.Sender)
		es.send = func(to, subject, htmlBody, textBody string) error {
			message := mail.NewSingleEmail(from, subject, mail.NewEmail("", to), textBody, htmlBody)
			resp, err := client.Send(message)
			if err != nil {
				return err
			}
			if resp.StatusCode >= 400 {
				return fmt.Errorf("sendgrid responded %d: %s", resp.StatusCode, resp.Body)
			}
			return nil
		}
	case EmailSMTP:
		if cfg.SMTPHost == "" {
			return nil, fmt.Errorf("SMTP_HOST is not set")
		}
		dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
		es.send = func(to, subject, htmlBody, textBody string) error {
			m := gomail.NewMessage()
			m.SetHeader("From", cfg.Sender)
			m.SetHeader("To", to)
			m.SetHeader("Subject", subject)
			m.SetBody("text/plain", textBody)
			m.AddAlternative("text/html", htmlBody)
			return dialer.DialAndSend(m)
		}
	case EmailNone, "":
		es.provider = EmailNone
		es.send = func(to, subject, _, _ string) error {
			log.Printf("email disabled, dropping %q to %s", subject, to)
			return nil
		}
	default:
		return nil, fmt.Errorf("unknown email provider %q", cfg.Provider)
	}
	return es, nil
}

// Provider names the backend in use
func (es *EmailService) Provider() string {
	return es.provider
}

// SendEmail sends an email to the specified recipient. textContent falls
// back to htmlContent when empty.
func (es *EmailService) SendEmail(toEmail, subject, htmlContent, textContent string) error {
	if textContent == "" {
		textContent = htmlContent
	}
	if err := es.send(toEmail, subject, htmlContent, textContent); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendBookingStatusEmail tells a user their booking changed status
func (es *EmailService) SendBookingStatusEmail(toEmail, name string, booking models.BookingView) error {
	subject, htmlBody, textBody := bookingStatusEmail(name, booking)
	return es.SendEmail(toEmail, subject, htmlBody, textBody)
}

func bookingStatusEmail(name string, booking models.BookingView) (subject, htmlBody, textBody string) {
	what := "your booking"
	if booking.Service != nil {
		what = "your " + booking.Service.Title + " booking"
	}
	if booking.Shop != nil {
		what += " at " + booking.Shop.Name
	}
	status := capitalize(string(booking.Status))

	subject = fmt.Sprintf("Booking %s", status)
	text := fmt.Sprintf("Dear %s,\n\n%s on %s at %s is now %s.",
		name, capitalize(what), booking.Date, booking.Time, status)
	htmlBody = fmt.Sprintf("<strong>Dear %s,</strong><br><br>%s on <strong>%s</strong> at <strong>%s</strong> is now <strong>%s</strong>.",
		html.EscapeString(name), html.EscapeString(capitalize(what)), booking.Date, booking.Time, status)

	if booking.AdminComment != "" {
		text += "\n\nNote from the shop: " + booking.AdminComment
		htmlBody += "<br><br>Note from the shop: " + html.EscapeString(booking.AdminComment)
	}
	return subject, htmlBody, text
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
