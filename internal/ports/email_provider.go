package ports

import "context"

// EmailAttachment is a file attached to an outgoing email
type EmailAttachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

// EmailMessage represents a fully rendered email ready for transport
type EmailMessage struct {
	From         string
	To           []string
	ReplyTo      string
	EnvelopeFrom string
	Subject      string
	TextBody     string
	HTMLBody     string
	Attachments  []EmailAttachment
}

// EmailProvider defines the contract for email sending
type EmailProvider interface {
	SendEmail(ctx context.Context, msg EmailMessage) error
	Enabled() bool
}
