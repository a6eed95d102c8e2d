package lead

import (
	"net/mail"
	"regexp"
	"strings"

	"leadmail.app/internal/core/template"
)

var angleAddressPattern = regexp.MustCompile(`<([^>]*)>`)

// Addressing holds the sender headers of the internal lead alert
type Addressing struct {
	From         string
	ReplyTo      string
	EnvelopeFrom string
}

// BuildAddressing applies the from mode to a rendered From header.
//
// In client mode with a client email the alert appears to come from the
// client: the display name is taken from the rendered header, the address is
// always the client's, and the envelope sender is the client email too.
// Otherwise the system address is used and the client goes into Reply-To.
func BuildAddressing(mode template.FromMode, fromHeader string, lead Lead, systemFrom string) Addressing {
	if mode == template.FromModeClient && lead.HasEmail() {
		name := strings.TrimSpace(fromHeader)
		if m := angleAddressPattern.FindStringSubmatch(name); m != nil {
			name = strings.TrimSpace(angleAddressPattern.ReplaceAllString(name, ""))
			if name == strings.TrimSpace(m[1]) {
				name = ""
			}
		} else if name == "" {
			name = lead.Name
		}

		from := formatAddress(name, lead.Email)
		return Addressing{
			From:         from,
			ReplyTo:      from,
			EnvelopeFrom: lead.Email,
		}
	}

	display := lead.DisplayName()
	addressing := Addressing{From: formatAddress(display, systemFrom)}
	if lead.HasEmail() {
		addressing.ReplyTo = formatAddress(display, lead.Email)
	}
	return addressing
}

// NormalizeFromHeader re-encodes a rendered "Name <address>" header,
// falling back to the bare address when the header does not parse.
func NormalizeFromHeader(header, fallback string) string {
	addr, err := mail.ParseAddress(header)
	if err != nil {
		return fallback
	}
	return addr.String()
}

func formatAddress(name, address string) string {
	if name == "" {
		return address
	}
	return (&mail.Address{Name: name, Address: address}).String()
}
