// Package external provides adapters for external services
// These adapters implement ports for mail transport, chat notifications and rate limit storage.
package external

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/mail"
	"time"

	"gopkg.in/gomail.v2"

	"leadmail.app/internal/ports"
	"leadmail.app/pkg/errors"
)

const (
	defaultSendAttempts = 3
	defaultRetryDelay   = time.Second
)

// MailDialer sends gomail messages; *gomail.Dialer satisfies it
type MailDialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPEmailProviderAdapter implements EmailProvider port using SMTP
type SMTPEmailProviderAdapter struct {
	host       string
	dialer     MailDialer
	attempts   int
	retryDelay time.Duration
}

// EmailProviderConfig represents SMTP configuration
type EmailProviderConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	SSL      bool
	// Attempts defaults to 3, RetryDelay to one second; delays double per attempt
	Attempts   int
	RetryDelay time.Duration
}

// NewSMTPEmailProviderAdapter creates a new SMTP email provider adapter
func NewSMTPEmailProviderAdapter(config EmailProviderConfig) *SMTPEmailProviderAdapter {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)
	dialer.SSL = config.SSL
	if !config.SSL {
		dialer.TLSConfig = &tls.Config{ServerName: config.Host, MinVersion: tls.VersionTLS12}
	}
	return NewSMTPEmailProviderAdapterWithDialer(config, dialer)
}

// NewSMTPEmailProviderAdapterWithDialer creates an adapter over a custom dialer
func NewSMTPEmailProviderAdapterWithDialer(config EmailProviderConfig, dialer MailDialer) *SMTPEmailProviderAdapter {
	attempts := config.Attempts
	if attempts < 1 {
		attempts = defaultSendAttempts
	}
	delay := config.RetryDelay
	if delay <= 0 {
		delay = defaultRetryDelay
	}

	return &SMTPEmailProviderAdapter{
		host:       config.Host,
		dialer:     dialer,
		attempts:   attempts,
		retryDelay: delay,
	}
}

// Enabled reports whether an SMTP host is configured
func (p *SMTPEmailProviderAdapter) Enabled() bool {
	return p.host != ""
}

// SendEmail sends a multipart message, retrying with exponential backoff
func (p *SMTPEmailProviderAdapter) SendEmail(ctx context.Context, msg ports.EmailMessage) error {
	if !p.Enabled() {
		return errors.NewConfigurationError("SMTP host is not configured", nil)
	}
	if err := validateMessage(msg); err != nil {
		return err
	}

	m := p.buildMessage(msg)

	var lastErr error
	for attempt := 0; attempt < p.attempts; attempt++ {
		if lastErr = p.dialer.DialAndSend(m); lastErr == nil {
			return nil
		}
		if attempt == p.attempts-1 {
			break
		}

		delay := p.retryDelay << attempt
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return errors.NewEmailError("email send cancelled", ctx.Err())
		}
	}

	return errors.NewEmailError(fmt.Sprintf("failed to send email after %d attempts", p.attempts), lastErr)
}

func validateMessage(msg ports.EmailMessage) error {
	if len(msg.To) == 0 {
		return errors.NewValidationError("recipient email cannot be empty")
	}
	if msg.From == "" {
		return errors.NewValidationError("sender cannot be empty")
	}
	if msg.Subject == "" {
		return errors.NewValidationError("email subject cannot be empty")
	}
	if msg.TextBody == "" && msg.HTMLBody == "" {
		return errors.NewValidationError("email body cannot be empty")
	}
	return nil
}

// buildMessage constructs the email message
func (p *SMTPEmailProviderAdapter) buildMessage(msg ports.EmailMessage) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", msg.From)
	m.SetHeader("To", msg.To...)
	m.SetHeader("Subject", msg.Subject)
	if msg.ReplyTo != "" {
		m.SetHeader("Reply-To", msg.ReplyTo)
	}
	if msg.EnvelopeFrom != "" && !sameAddress(msg.From, msg.EnvelopeFrom) {
		// gomail takes the envelope sender from Sender when present
		m.SetHeader("Sender", msg.EnvelopeFrom)
	}

	switch {
	case msg.TextBody != "" && msg.HTMLBody != "":
		m.SetBody("text/plain", msg.TextBody)
		m.AddAlternative("text/html", msg.HTMLBody)
	case msg.TextBody != "":
		m.SetBody("text/plain", msg.TextBody)
	default:
		m.SetBody("text/html", msg.HTMLBody)
	}

	for _, a := range msg.Attachments {
		content := a.Content
		settings := []gomail.FileSetting{
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(content)
				return err
			}),
		}
		if a.ContentType != "" {
			settings = append(settings, gomail.SetHeader(map[string][]string{"Content-Type": {a.ContentType}}))
		}
		m.Attach(a.Filename, settings...)
	}

	return m
}

func sameAddress(header, address string) bool {
	parsed, err := mail.ParseAddress(header)
	if err != nil {
		return false
	}
	return parsed.Address == address
}
