package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	obscontext "github.com/smallbiznis/panorama/internal/observability/context"
	"go.uber.org/zap"
)

const (
	contextAdminIDKey = "admin_id"
	bearerPrefix      = "bearer "
)

// CORS allows any origin, matching the API's browser clients.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-Id")
		h.Set("Access-Control-Expose-Headers", "X-Request-Id, Content-Disposition")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// BearerAuth requires a valid login token and stores the admin id on the
// request context.
func (s *Server) BearerAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
			AbortWithError(c, errUnauthorized)
			return
		}

		claims, err := s.authSvc.VerifyToken(c.Request.Context(), header[len(bearerPrefix):])
		if err != nil {
			AbortWithError(c, err)
			return
		}

		c.Set(contextAdminIDKey, claims.UserID)
		c.Request = c.Request.WithContext(obscontext.WithAdminID(c.Request.Context(), claims.UserID))
		c.Next()
	}
}

// LoginRateLimit throttles /login per client IP. Limiter failures let the
// request through.
func (s *Server) LoginRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.loginLimiter.Enabled() {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		res, err := s.loginLimiter.Allow(ctx, c.ClientIP())
		if err != nil {
			s.log.Warn("login rate limiter unavailable", zap.Error(err))
			c.Next()
			return
		}
		if !res.Allowed {
			s.obsMetrics.RecordRateLimitDenied(ctx, "login")
			if seconds := int(res.RetryAfter.Seconds() + 0.999); seconds > 0 {
				c.Header("Retry-After", strconv.Itoa(seconds))
			}
			AbortWithError(c, errRateLimited)
			return
		}
		c.Next()
	}
}
