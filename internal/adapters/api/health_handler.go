package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"leadmail.app/internal/ports"
)

// HealthResponse reports overall and per-component health
type HealthResponse struct {
	OK         bool                          `json:"ok"`
	Components map[string]ports.HealthStatus `json:"components"`
}

// health handles GET /health requests
func (s *HTTPServerAdapter) health(c *gin.Context) {
	components := s.healthChecker.CheckAll(c.Request.Context())

	ok := true
	for _, status := range components {
		if status.Status == "unhealthy" {
			ok = false
		}
	}

	statusCode := http.StatusOK
	if !ok {
		statusCode = http.StatusServiceUnavailable
	}
	c.JSON(statusCode, HealthResponse{OK: ok, Components: components})
}
