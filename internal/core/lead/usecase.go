package lead

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"leadmail.app/internal/core/template"
	"leadmail.app/internal/ports"
	"leadmail.app/pkg/errors"
	"leadmail.app/pkg/validation"
)

const chatAlertFormat = "🆕 DocLogic — новый запрос\n" +
	"Имя: {name}\n" +
	"Компания: {company}\n" +
	"Email: {emailOrDash}\n" +
	"Телефон: {phoneOrDash}\n" +
	"Комментарий: {messageOrDash}"

type UseCase struct {
	templates     *template.Registry
	emailProvider ports.EmailProvider
	chatNotifier  ports.ChatNotifier
	config        ports.ConfigProvider
	logger        ports.Logger
	metrics       ports.DeliveryMetrics
	now           func() time.Time
}

type UseCaseDependencies struct {
	Templates     *template.Registry
	EmailProvider ports.EmailProvider
	ChatNotifier  ports.ChatNotifier
	Config        ports.ConfigProvider
	Logger        ports.Logger
	Metrics       ports.DeliveryMetrics
	// Clock defaults to time.Now
	Clock func() time.Time
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Templates == nil {
		return nil, errors.NewValidationError("template registry is required")
	}
	if deps.EmailProvider == nil {
		return nil, errors.NewValidationError("email provider is required")
	}
	if deps.ChatNotifier == nil {
		return nil, errors.NewValidationError("chat notifier is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}

	return &UseCase{
		templates:     deps.Templates,
		emailProvider: deps.EmailProvider,
		chatNotifier:  deps.ChatNotifier,
		config:        deps.Config,
		logger:        deps.Logger,
		metrics:       deps.Metrics,
		now:           clock,
	}, nil
}

// Submit validates a form submission and fans it out to every delivery channel.
// A failing channel is reported in the result and never stops the others.
func (uc *UseCase) Submit(ctx context.Context, params SubmitParams) (*SubmitResult, error) {
	if validation.IsNotEmpty(params.Website) {
		uc.logger.Info("Honeypot field filled, ignoring submission", ports.F("ip", params.IP))
		uc.metrics.RecordLead(OutcomeIgnored)
		return &SubmitResult{Ignored: true, Results: map[Channel]DeliveryResult{}}, nil
	}

	appConfig := uc.config.GetAppConfig()

	lead, err := uc.buildLead(params, appConfig)
	if err != nil {
		uc.metrics.RecordLead(OutcomeRejected)
		return nil, err
	}

	uc.logger.Debug("Processing lead",
		ports.F("leadID", lead.ID.String()),
		ports.F("docTypes", lead.DocTypes),
		ports.F("attachments", len(lead.Attachments)))

	alert, err := uc.render(template.SetOrderNotification, lead.OrderFields(appConfig.SiteURL))
	if err != nil {
		uc.metrics.RecordLead(OutcomeFailed)
		return nil, fmt.Errorf("render order notification: %w", err)
	}

	leadConfig := uc.config.GetLeadConfig()

	results := make(map[Channel]DeliveryResult, len(Channels))
	results[ChannelEmail] = uc.deliverAlert(ctx, lead, alert, leadConfig)
	results[ChannelTelegram] = uc.deliverChatAlert(ctx, lead)
	results[ChannelAutoreply] = uc.deliverAutoreply(ctx, lead, appConfig, leadConfig)

	for _, channel := range Channels {
		uc.metrics.RecordDelivery(string(channel), results[channel].Status.String())
	}
	uc.metrics.RecordLead(OutcomeAccepted)

	uc.logger.Info("Lead processed",
		ports.F("leadID", lead.ID.String()),
		ports.F("name", lead.Name),
		ports.F("company", lead.Company),
		ports.F("email", results[ChannelEmail].Status.String()),
		ports.F("telegram", results[ChannelTelegram].Status.String()),
		ports.F("autoreply", results[ChannelAutoreply].Status.String()))

	return &SubmitResult{LeadID: lead.ID.String(), Results: results}, nil
}

func (uc *UseCase) buildLead(params SubmitParams, appConfig ports.AppConfig) (Lead, error) {
	lead := Lead{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(params.Name),
		Company:     strings.TrimSpace(params.Company),
		Email:       strings.TrimSpace(params.Email),
		Phone:       strings.TrimSpace(params.Phone),
		Message:     strings.TrimSpace(params.Message),
		DocTypes:    NormalizeDocTypes(params.DocTypes),
		CreatedAt:   uc.now(),
		IP:          strings.TrimSpace(params.IP),
		Attachments: params.Attachments,
	}

	if lead.Name == "" {
		return Lead{}, errors.NewValidationError("missing name")
	}
	if lead.Email == "" && lead.Phone == "" {
		return Lead{}, errors.NewValidationError("missing contact (email or phone)")
	}
	if lead.Email != "" && !validation.IsValidEmail(lead.Email) {
		return Lead{}, errors.NewValidationError("invalid email format")
	}

	if appConfig.MaxAttachments > 0 && len(lead.Attachments) > appConfig.MaxAttachments {
		return Lead{}, errors.NewValidationError(fmt.Sprintf("too many attachments: at most %d allowed", appConfig.MaxAttachments))
	}
	maxSize := int64(appConfig.MaxAttachmentMB) << 20
	for _, a := range lead.Attachments {
		if maxSize > 0 && int64(len(a.Content)) > maxSize {
			return Lead{}, errors.NewValidationError(fmt.Sprintf("attachment %q exceeds %d MB", a.Filename, appConfig.MaxAttachmentMB))
		}
	}

	return lead, nil
}

func (uc *UseCase) render(id template.SetID, fields template.Fields) (template.Rendered, error) {
	rendered, err := uc.templates.Render(id, fields)
	uc.metrics.RecordRender(id.String(), err == nil)
	return rendered, err
}

func (uc *UseCase) deliverAlert(ctx context.Context, lead Lead, alert template.Rendered, cfg ports.LeadConfig) DeliveryResult {
	if !uc.emailProvider.Enabled() {
		uc.logger.Warn("Email transport not configured, skipping lead alert", ports.F("leadID", lead.ID.String()))
		return skipped("email transport not configured")
	}
	if len(cfg.To) == 0 {
		err := errors.NewConfigurationError("lead recipient is not configured", nil)
		uc.logger.Error("Lead alert not sent", ports.F("leadID", lead.ID.String()), ports.F("error", err))
		return failed(err)
	}

	addressing := BuildAddressing(template.FromModeFromString(cfg.FromMode), alert.FromHeader, lead, cfg.SystemFrom)
	msg := ports.EmailMessage{
		From:         addressing.From,
		To:           cfg.To,
		ReplyTo:      addressing.ReplyTo,
		EnvelopeFrom: addressing.EnvelopeFrom,
		Subject:      alert.Subject,
		TextBody:     alert.TextBody,
		HTMLBody:     alert.HTMLBody,
		Attachments:  toEmailAttachments(lead.Attachments),
	}

	if err := uc.emailProvider.SendEmail(ctx, msg); err != nil {
		uc.logger.Error("Failed to send lead alert",
			ports.F("leadID", lead.ID.String()),
			ports.F("error", err))
		return failed(err)
	}

	uc.logger.Info("Lead alert sent", ports.F("leadID", lead.ID.String()), ports.F("to", strings.Join(cfg.To, ",")))
	return sent()
}

func (uc *UseCase) deliverChatAlert(ctx context.Context, lead Lead) DeliveryResult {
	if !uc.chatNotifier.Enabled() {
		return skipped("telegram not configured")
	}

	text, err := ChatAlertText(lead)
	if err != nil {
		return failed(err)
	}

	if err := uc.chatNotifier.SendMessage(ctx, text); err != nil {
		uc.logger.Error("Failed to send chat alert",
			ports.F("leadID", lead.ID.String()),
			ports.F("error", err))
		return failed(err)
	}
	return sent()
}

func (uc *UseCase) deliverAutoreply(ctx context.Context, lead Lead, appConfig ports.AppConfig, cfg ports.LeadConfig) DeliveryResult {
	if !lead.HasEmail() {
		return skipped("no email")
	}
	if !uc.emailProvider.Enabled() {
		return skipped("email transport not configured")
	}

	rendered, err := uc.render(template.SetClientAutoreply, template.ClientAutoreplyFields{
		Name:        lead.Name,
		SiteURL:     appConfig.SiteURL,
		FromAddress: cfg.AutoreplyFrom,
	})
	if err != nil {
		uc.logger.Error("Failed to render autoreply", ports.F("leadID", lead.ID.String()), ports.F("error", err))
		return failed(err)
	}

	msg := ports.EmailMessage{
		From:     NormalizeFromHeader(rendered.FromHeader, cfg.AutoreplyFrom),
		To:       []string{lead.Email},
		Subject:  rendered.Subject,
		TextBody: rendered.TextBody,
		HTMLBody: rendered.HTMLBody,
	}

	if err := uc.emailProvider.SendEmail(ctx, msg); err != nil {
		uc.logger.Error("Failed to send autoreply",
			ports.F("leadID", lead.ID.String()),
			ports.F("error", err))
		return failed(err)
	}

	uc.logger.Info("Autoreply sent", ports.F("leadID", lead.ID.String()))
	return sent()
}

// ChatAlertText renders the short plain text alert posted to the team chat
func ChatAlertText(lead Lead) (string, error) {
	return template.Substitute(chatAlertFormat, lead.OrderFields("").Vars())
}

func toEmailAttachments(attachments []Attachment) []ports.EmailAttachment {
	if len(attachments) == 0 {
		return nil
	}
	out := make([]ports.EmailAttachment, 0, len(attachments))
	for _, a := range attachments {
		out = append(out, ports.EmailAttachment{
			Filename:    a.Filename,
			ContentType: a.ContentType,
			Content:     a.Content,
		})
	}
	return out
}
