package lead

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"leadmail.app/internal/core/template"
	"leadmail.app/pkg/validation"
)

// Lead represents one website form submission
type Lead struct {
	ID          uuid.UUID
	Name        string
	Company     string
	Email       string
	Phone       string
	Message     string
	DocTypes    []string
	CreatedAt   time.Time
	IP          string
	Attachments []Attachment
}

// Attachment is a sample document uploaded with the lead
type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

// HasEmail reports whether the client left an email address
func (l Lead) HasEmail() bool {
	return l.Email != ""
}

// DisplayName joins name and company, e.g. "Ivan Ivanov ACME"
func (l Lead) DisplayName() string {
	return strings.TrimSpace(l.Name + " " + l.Company)
}

// OrderFields maps the lead onto the internal alert placeholders
func (l Lead) OrderFields(siteURL string) template.OrderNotificationFields {
	return template.OrderNotificationFields{
		Name:      l.Name,
		Company:   l.Company,
		Email:     l.Email,
		Phone:     l.Phone,
		Message:   l.Message,
		CreatedAt: l.CreatedAt.UTC().Format(time.RFC3339),
		IP:        l.IP,
		SiteURL:   siteURL,
	}
}

// NormalizeDocTypes trims document type tags and drops empty ones
func NormalizeDocTypes(values []string) []string {
	return validation.NormalizeList(values)
}

// Channel is a delivery destination for a lead
type Channel string

const (
	ChannelEmail     Channel = "email"
	ChannelTelegram  Channel = "telegram"
	ChannelAutoreply Channel = "autoreply"
)

// Channels lists delivery channels in processing order
var Channels = []Channel{ChannelEmail, ChannelTelegram, ChannelAutoreply}

// DeliveryStatus is the outcome of one channel
type DeliveryStatus int

const (
	DeliveryStatusUnknown DeliveryStatus = iota
	DeliveryStatusSent
	DeliveryStatusSkipped
	DeliveryStatusFailed
)

// String returns the string representation of the delivery status
func (s DeliveryStatus) String() string {
	switch s {
	case DeliveryStatusSent:
		return "sent"
	case DeliveryStatusSkipped:
		return "skipped"
	case DeliveryStatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// MarshalJSON renders the status by name
func (s DeliveryStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// DeliveryResult describes what happened on one channel
type DeliveryResult struct {
	Status DeliveryStatus `json:"status"`
	Reason string         `json:"reason,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func sent() DeliveryResult {
	return DeliveryResult{Status: DeliveryStatusSent}
}

func skipped(reason string) DeliveryResult {
	return DeliveryResult{Status: DeliveryStatusSkipped, Reason: reason}
}

func failed(err error) DeliveryResult {
	return DeliveryResult{Status: DeliveryStatusFailed, Error: err.Error()}
}

// SubmitParams carries raw form input
type SubmitParams struct {
	Name        string
	Company     string
	Email       string
	Phone       string
	Message     string
	DocTypes    []string
	Website     string
	IP          string
	Attachments []Attachment
}

// SubmitResult is returned to the form; Ignored is set for honeypot hits
type SubmitResult struct {
	LeadID  string                     `json:"leadId,omitempty"`
	Ignored bool                       `json:"-"`
	Results map[Channel]DeliveryResult `json:"results"`
}

// Lead outcomes reported to metrics
const (
	OutcomeAccepted = "accepted"
	OutcomeIgnored  = "ignored"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)
