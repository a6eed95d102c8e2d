package api

import (
	"log/slog"
	"strconv"

	"github.com/gin-gonic/gin"

	"leadmail.app/internal/ports"
	"leadmail.app/pkg/errors"
)

// RateLimitMiddleware limits requests per client IP within a fixed window.
// Store failures let the request through.
func RateLimitMiddleware(store ports.RateLimitStore, opts RateLimitOptions) gin.HandlerFunc {
	limit := int64(opts.MaxRequests)
	windowSeconds := strconv.Itoa(int(opts.Window.Seconds()))

	return func(c *gin.Context) {
		ip := c.ClientIP()

		count, err := store.Increment(c.Request.Context(), ip, opts.Window)
		if err != nil {
			slog.Warn("Rate limit store unavailable, allowing request", "ip", ip, "error", err)
			c.Next()
			return
		}

		remaining := limit - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("RateLimit-Limit", strconv.FormatInt(limit, 10))
		c.Header("RateLimit-Remaining", strconv.FormatInt(remaining, 10))
		c.Header("RateLimit-Reset", windowSeconds)

		if count > limit {
			slog.Warn("Rate limit exceeded", "ip", ip, "count", count)
			c.Header("Retry-After", windowSeconds)
			statusCode, message := errorStatus(errors.NewRateLimitError("Too many requests, please try again later."))
			c.AbortWithStatusJSON(statusCode, ErrorResponse{Error: message})
			return
		}

		c.Next()
	}
}
