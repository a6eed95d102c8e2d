package api

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"leadmail.app/internal/core/lead"
	"leadmail.app/pkg/errors"
)

const (
	samplesField      = "samples"
	maxJSONBodyBytes  = 1 << 20
	multipartOverhead = 1 << 20
)

// LeadRequest represents the lead form submission
type LeadRequest struct {
	Name     string   `json:"name" form:"name" binding:"max=200"`
	Company  string   `json:"company" form:"company" binding:"max=200"`
	Email    string   `json:"email" form:"email" binding:"max=254"`
	Phone    string   `json:"phone" form:"phone" binding:"max=64"`
	Message  string   `json:"message" form:"message" binding:"max=5000"`
	DocTypes DocTypes `json:"doc_types" form:"doc_types" binding:"doc_types"`
	Website  string   `json:"website" form:"website"`
}

// DocTypes accepts either a single string or a list in JSON bodies
type DocTypes []string

// UnmarshalJSON implements json.Unmarshaler
func (d *DocTypes) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*d = list
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	*d = DocTypes{single}
	return nil
}

// LeadResponse is returned for accepted submissions
type LeadResponse struct {
	OK      bool                                 `json:"ok"`
	LeadID  string                               `json:"leadId,omitempty"`
	Results map[lead.Channel]lead.DeliveryResult `json:"results,omitempty"`
}

// submitLead handles POST /api/lead requests
func (s *HTTPServerAdapter) submitLead(c *gin.Context) {
	multipartBody := c.ContentType() == binding.MIMEMultipartPOSTForm
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.maxBodyBytes(multipartBody))

	var httpReq LeadRequest
	if err := c.ShouldBind(&httpReq); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, errors.NewValidationError("Invalid request format"))
		return
	}

	var attachments []lead.Attachment
	if multipartBody {
		var err error
		if attachments, err = s.readSamples(c); err != nil {
			slog.Error("Attachment read error", "error", err)
			s.handleError(c, err)
			return
		}
	}

	params := lead.SubmitParams{
		Name:        httpReq.Name,
		Company:     httpReq.Company,
		Email:       httpReq.Email,
		Phone:       httpReq.Phone,
		Message:     httpReq.Message,
		DocTypes:    httpReq.DocTypes,
		Website:     httpReq.Website,
		IP:          c.ClientIP(),
		Attachments: attachments,
	}

	result, err := s.leadUseCase.Submit(c.Request.Context(), params)
	if err != nil {
		slog.Error("Lead submission error", "error", err, "ip", params.IP)
		s.handleError(c, err)
		return
	}

	if result.Ignored {
		c.JSON(http.StatusOK, LeadResponse{OK: true})
		return
	}

	c.JSON(http.StatusOK, LeadResponse{OK: true, LeadID: result.LeadID, Results: result.Results})
}

func (s *HTTPServerAdapter) maxBodyBytes(multipartBody bool) int64 {
	if !multipartBody {
		return maxJSONBodyBytes
	}
	return int64(s.config.MaxAttachments)*int64(s.config.MaxAttachmentMB)<<20 + multipartOverhead
}

// readSamples loads uploaded sample files into memory
func (s *HTTPServerAdapter) readSamples(c *gin.Context) ([]lead.Attachment, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, errors.NewValidationError("Invalid request format")
	}

	files := form.File[samplesField]
	if len(files) > s.config.MaxAttachments {
		return nil, errors.NewValidationError(fmt.Sprintf("too many attachments: at most %d allowed", s.config.MaxAttachments))
	}

	attachments := make([]lead.Attachment, 0, len(files))
	for _, fh := range files {
		content, err := readFile(fh)
		if err != nil {
			return nil, errors.NewValidationError(fmt.Sprintf("failed to read attachment %q", fh.Filename))
		}
		attachments = append(attachments, lead.Attachment{
			Filename:    fh.Filename,
			ContentType: strings.TrimSpace(fh.Header.Get("Content-Type")),
			Content:     content,
		})
	}
	return attachments, nil
}

func readFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Warn("Failed to close uploaded file", "error", closeErr)
		}
	}()
	return io.ReadAll(f)
}
