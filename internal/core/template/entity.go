package template

import (
	"encoding/json"
	"strings"
)

// SetID identifies a template set
type SetID int

const (
	SetUnknown SetID = iota
	SetOrderNotification
	SetClientAutoreply
)

// String returns the string representation of the set identifier
func (s SetID) String() string {
	switch s {
	case SetOrderNotification:
		return "order_notification"
	case SetClientAutoreply:
		return "client_autoreply"
	default:
		return "unknown"
	}
}

// IsValid checks if the set identifier names a known set
func (s SetID) IsValid() bool {
	return s == SetOrderNotification || s == SetClientAutoreply
}

// SetIDFromString converts string to SetID enum
func SetIDFromString(s string) SetID {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "order_notification":
		return SetOrderNotification
	case "client_autoreply":
		return SetClientAutoreply
	default:
		return SetUnknown
	}
}

// MarshalJSON renders the set identifier by name
func (s SetID) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// FromMode is the policy for the visible sender of the internal lead alert
type FromMode int

const (
	FromModeUnknown FromMode = iota
	FromModeClient
	FromModeSystem
)

// String returns the string representation of the from mode
func (m FromMode) String() string {
	switch m {
	case FromModeClient:
		return "client"
	case FromModeSystem:
		return "system"
	default:
		return "unknown"
	}
}

// IsValid checks if the from mode is valid
func (m FromMode) IsValid() bool {
	return m == FromModeClient || m == FromModeSystem
}

// FromModeFromString converts string to FromMode enum
func FromModeFromString(s string) FromMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "client":
		return FromModeClient
	case "system":
		return FromModeSystem
	default:
		return FromModeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (m *FromMode) UnmarshalText(text []byte) error {
	*m = FromModeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (m FromMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Template parts
const (
	PartSubject = "subject"
	PartFrom    = "from"
	PartText    = "text"
	PartHTML    = "html"
)

// Parts lists template parts in render order
var Parts = []string{PartSubject, PartFrom, PartText, PartHTML}

// Set is a named bundle of subject, From, text and HTML format strings.
// Documented lists, per part, the placeholders the part is documented to accept.
type Set struct {
	ID         SetID
	Subject    string
	From       string
	Text       string
	HTML       string
	Documented map[string][]string
}

// Part returns the format string for a part name
func (s Set) Part(part string) string {
	switch part {
	case PartSubject:
		return s.Subject
	case PartFrom:
		return s.From
	case PartText:
		return s.Text
	case PartHTML:
		return s.HTML
	default:
		return ""
	}
}

// Placeholders returns placeholder names referenced by a part, in order of first use
func (s Set) Placeholders(part string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(s.Part(part), -1)
	seen := make(map[string]bool, len(matches))
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names
}

// Overrides replaces parts of a set; empty values keep the original part
type Overrides struct {
	Subject string
	From    string
	Text    string
	HTML    string
}

// WithOverrides returns a copy of the set with non-empty overrides applied.
// Override values have literal "\n" sequences decoded into newlines.
func (s Set) WithOverrides(o Overrides) Set {
	if o.Subject != "" {
		s.Subject = DecodeNewlines(o.Subject)
	}
	if o.From != "" {
		s.From = DecodeNewlines(o.From)
	}
	if o.Text != "" {
		s.Text = DecodeNewlines(o.Text)
	}
	if o.HTML != "" {
		s.HTML = DecodeNewlines(o.HTML)
	}
	return s
}

// Rendered is the output of a render: the four strings handed to mail transport
type Rendered struct {
	Subject    string `json:"subject"`
	FromHeader string `json:"fromHeader"`
	TextBody   string `json:"textBody"`
	HTMLBody   string `json:"htmlBody"`
}

// Fields is a record that exposes its placeholder bag
type Fields interface {
	Vars() map[string]string
}

// OrderNotificationFields feeds the internal "new lead" alert.
// Email, Phone, Message, IP and SiteURL are optional.
type OrderNotificationFields struct {
	Name      string
	Company   string
	Email     string
	Phone     string
	Message   string
	CreatedAt string
	IP        string
	SiteURL   string
}

// Vars builds the raw, OrDash and HTML-escaped placeholder values
func (f OrderNotificationFields) Vars() map[string]string {
	return map[string]string{
		"name":      f.Name,
		"company":   f.Company,
		"email":     f.Email,
		"phone":     f.Phone,
		"message":   f.Message,
		"createdAt": f.CreatedAt,
		"ip":        f.IP,

		"emailOrDash":   OrDash(f.Email),
		"phoneOrDash":   OrDash(f.Phone),
		"messageOrDash": OrDash(f.Message),
		"ipOrDash":      OrDash(f.IP),

		"nameHtml":      EscapeHTML(f.Name),
		"companyHtml":   EscapeHTML(OrDash(f.Company)),
		"emailHtml":     EscapeHTML(OrDash(f.Email)),
		"phoneHtml":     EscapeHTML(OrDash(f.Phone)),
		"messageHtml":   MultilineHTML(OrDash(f.Message)),
		"createdAtHtml": EscapeHTML(f.CreatedAt),
		"ipHtml":        EscapeHTML(OrDash(f.IP)),
		"siteUrl":       EscapeHTML(SiteURLOrDefault(f.SiteURL)),
	}
}

// ClientAutoreplyFields feeds the autoreply sent to the client.
// FromAddress is the system mailbox shown in the From header.
type ClientAutoreplyFields struct {
	Name        string
	SiteURL     string
	FromAddress string
}

// Vars builds the placeholder bag for the autoreply
func (f ClientAutoreplyFields) Vars() map[string]string {
	return map[string]string{
		"name":     f.Name,
		"nameHtml": EscapeHTML(f.Name),
		"email":    f.FromAddress,
		"siteUrl":  EscapeHTML(SiteURLOrDefault(f.SiteURL)),
	}
}

// SiteURLOrDefault returns DefaultSiteURL when url is blank
func SiteURLOrDefault(url string) string {
	if trimmed := strings.TrimSpace(url); trimmed != "" {
		return trimmed
	}
	return DefaultSiteURL
}
