package template

import "strings"

// Dash replaces optional values left empty
const Dash = "-"

// DefaultSiteURL is used in links when no site URL is configured
const DefaultSiteURL = "#"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeHTML escapes & < > " and ' for HTML text and attribute contexts
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// MultilineHTML escapes s and turns line breaks into <br/>
func MultilineHTML(s string) string {
	escaped := EscapeHTML(strings.ReplaceAll(s, "\r\n", "\n"))
	return strings.ReplaceAll(escaped, "\n", "<br/>")
}

// OrDash returns s, or Dash when s is blank
func OrDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return Dash
	}
	return s
}

// DecodeNewlines turns literal "\n" sequences into newlines.
// Multi-line templates supplied through environment variables rely on it.
func DecodeNewlines(s string) string {
	return strings.ReplaceAll(s, `\n`, "\n")
}
