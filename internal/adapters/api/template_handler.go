package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"leadmail.app/internal/core/template"
	"leadmail.app/pkg/errors"
)

// TemplateSetURI binds the :set path parameter
type TemplateSetURI struct {
	Set string `uri:"set" binding:"required,template_set"`
}

// TemplateSetInfo describes a registered template set
type TemplateSetInfo struct {
	ID           template.SetID      `json:"id"`
	Placeholders map[string][]string `json:"placeholders"`
}

// PreviewFields carries the field values of a preview render
type PreviewFields struct {
	Name        string `json:"name" binding:"required,max=200"`
	Company     string `json:"company"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Message     string `json:"message"`
	CreatedAt   string `json:"createdAt"`
	IP          string `json:"ip"`
	SiteURL     string `json:"siteUrl"`
	FromAddress string `json:"fromAddress"`
}

// PreviewOverrides replaces template parts for a preview render
type PreviewOverrides struct {
	Subject string `json:"subject"`
	From    string `json:"from"`
	Text    string `json:"text"`
	HTML    string `json:"html"`
}

// RenderRequest represents the preview render request
type RenderRequest struct {
	Fields    PreviewFields    `json:"fields"`
	Overrides PreviewOverrides `json:"overrides"`
}

// listTemplates handles GET /api/templates requests
func (s *HTTPServerAdapter) listTemplates(c *gin.Context) {
	ids := s.templates.IDs()
	sets := make([]TemplateSetInfo, 0, len(ids))
	for _, id := range ids {
		set, ok := s.templates.Get(id)
		if !ok {
			continue
		}
		sets = append(sets, TemplateSetInfo{ID: id, Placeholders: set.Documented})
	}

	c.JSON(http.StatusOK, gin.H{"sets": sets})
}

// renderTemplate handles POST /api/templates/:set/render requests
func (s *HTTPServerAdapter) renderTemplate(c *gin.Context) {
	var uri TemplateSetURI
	if err := c.ShouldBindUri(&uri); err != nil {
		s.handleError(c, errors.NewNotFoundError("template set not found: "+c.Param("set")))
		return
	}

	var req RenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, errors.NewValidationError("Invalid request format"))
		return
	}

	id := template.SetIDFromString(uri.Set)
	set, ok := s.templates.Get(id)
	if !ok {
		s.handleError(c, errors.NewNotFoundError("template set not found: "+uri.Set))
		return
	}

	set = set.WithOverrides(template.Overrides{
		Subject: req.Overrides.Subject,
		From:    req.Overrides.From,
		Text:    req.Overrides.Text,
		HTML:    req.Overrides.HTML,
	})

	rendered, err := template.Render(set, previewFields(id, req.Fields))
	if err != nil {
		slog.Debug("Preview render failed", "set", uri.Set, "error", err)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, rendered)
}

func previewFields(id template.SetID, f PreviewFields) template.Fields {
	if id == template.SetClientAutoreply {
		return template.ClientAutoreplyFields{
			Name:        f.Name,
			SiteURL:     f.SiteURL,
			FromAddress: f.FromAddress,
		}
	}
	return template.OrderNotificationFields{
		Name:      f.Name,
		Company:   f.Company,
		Email:     f.Email,
		Phone:     f.Phone,
		Message:   f.Message,
		CreatedAt: f.CreatedAt,
		IP:        f.IP,
		SiteURL:   f.SiteURL,
	}
}
