package template

import (
	_ "embed"
)

var (
	//go:embed defaults/order_notification.txt
	orderNotificationText string
	//go:embed defaults/order_notification.html
	orderNotificationHTML string
	//go:embed defaults/client_autoreply.txt
	clientAutoreplyText string
	//go:embed defaults/client_autoreply.html
	clientAutoreplyHTML string
)

const (
	orderNotificationSubject = "DocLogic: новый запрос от {name} {company}"
	orderNotificationFrom    = "{name} ({company}) <{email}>"
	clientAutoreplySubject   = "DocLogic: запрос получен"
	clientAutoreplyFrom      = "DocLogic автоматизация <{email}>"
)

// DefaultOrderNotificationSet returns the built-in internal lead alert
func DefaultOrderNotificationSet() Set {
	return Set{
		ID:      SetOrderNotification,
		Subject: orderNotificationSubject,
		From:    orderNotificationFrom,
		Text:    orderNotificationText,
		HTML:    orderNotificationHTML,
		Documented: map[string][]string{
			PartSubject: {"name", "company"},
			PartFrom:    {"name", "company", "email"},
			PartText: {
				"name", "company", "email", "phone", "message", "createdAt", "ip",
				"emailOrDash", "phoneOrDash", "messageOrDash", "ipOrDash",
			},
			PartHTML: {
				"nameHtml", "companyHtml", "emailHtml", "phoneHtml",
				"messageHtml", "createdAtHtml", "ipHtml", "siteUrl",
			},
		},
	}
}

// DefaultClientAutoreplySet returns the built-in autoreply
func DefaultClientAutoreplySet() Set {
	return Set{
		ID:      SetClientAutoreply,
		Subject: clientAutoreplySubject,
		From:    clientAutoreplyFrom,
		Text:    clientAutoreplyText,
		HTML:    clientAutoreplyHTML,
		Documented: map[string][]string{
			PartSubject: {"name"},
			PartFrom:    {"email"},
			PartText:    {"name"},
			PartHTML:    {"nameHtml", "siteUrl"},
		},
	}
}

// DefaultSets returns both built-in sets
func DefaultSets() []Set {
	return []Set{DefaultOrderNotificationSet(), DefaultClientAutoreplySet()}
}
