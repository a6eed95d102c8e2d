package template

import (
	"regexp"
	"strings"

	"leadmail.app/pkg/errors"
)

var (
	placeholderPattern = regexp.MustCompile(`\{([a-zA-Z0-9_]+)\}`)
	emptyParensPattern = regexp.MustCompile(`\s*\(\s*\)\s*`)
	emptyAnglePattern  = regexp.MustCompile(`<\s*>`)
	whitespacePattern  = regexp.MustCompile(`\s+`)
)

// Substitute replaces every {name} token in format with vars[name].
// The scan is a single pass over format, so substituted values are never re-expanded.
func Substitute(format string, vars map[string]string) (string, error) {
	return substitute("inline", format, vars)
}

func substitute(label, format string, vars map[string]string) (string, error) {
	var missing string
	out := placeholderPattern.ReplaceAllStringFunc(format, func(token string) string {
		key := token[1 : len(token)-1]
		value, ok := vars[key]
		if !ok {
			if missing == "" {
				missing = key
			}
			return token
		}
		return value
	})
	if missing != "" {
		return "", errors.NewMissingPlaceholderError(label, missing)
	}
	return out, nil
}

// Render produces the subject, From header, text body and HTML body of a set.
// The From header is cleaned so that absent optional parts leave no empty "()" or "<>".
func Render(set Set, fields Fields) (Rendered, error) {
	if fields == nil {
		return Rendered{}, errors.NewValidationError("template fields are required")
	}

	vars := fields.Vars()
	out := make(map[string]string, len(Parts))
	for _, part := range Parts {
		value, err := substitute(set.ID.String()+"."+part, set.Part(part), vars)
		if err != nil {
			return Rendered{}, err
		}
		out[part] = value
	}

	return Rendered{
		Subject:    strings.TrimSpace(whitespacePattern.ReplaceAllString(out[PartSubject], " ")),
		FromHeader: CleanFromHeader(out[PartFrom]),
		TextBody:   out[PartText],
		HTMLBody:   out[PartHTML],
	}, nil
}

// CleanFromHeader drops empty "()" and "<>" groups and collapses whitespace
func CleanFromHeader(s string) string {
	s = emptyParensPattern.ReplaceAllString(s, " ")
	s = emptyAnglePattern.ReplaceAllString(s, "")
	s = whitespacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Validate renders the set against sample fields for its schema, so an
// unknown placeholder surfaces before any lead is processed.
func (s Set) Validate() error {
	fields, ok := SampleFields(s.ID)
	if !ok {
		return errors.NewValidationError("unknown template set: " + s.ID.String())
	}
	for _, part := range Parts {
		if strings.TrimSpace(s.Part(part)) == "" && part != PartFrom {
			return errors.NewValidationError(s.ID.String() + "." + part + " template is empty")
		}
	}
	_, err := Render(s, fields)
	return err
}

// SampleFields returns a fully populated field bag for a set
func SampleFields(id SetID) (Fields, bool) {
	switch id {
	case SetOrderNotification:
		return OrderNotificationFields{
			Name:      "Ivan Ivanov",
			Company:   "ACME Corp",
			Email:     "ivan@acme.com",
			Phone:     "+7 900 000-00-00",
			Message:   "Need invoice parsing.\nAbout 300 documents a month.",
			CreatedAt: "2025-01-15 10:30",
			IP:        "203.0.113.7",
			SiteURL:   "https://doclogic.example",
		}, true
	case SetClientAutoreply:
		return ClientAutoreplyFields{
			Name:        "Ivan Ivanov",
			SiteURL:     "https://doclogic.example",
			FromAddress: "notifications@doclogic.example",
		}, true
	default:
		return nil, false
	}
}
