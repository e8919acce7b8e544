// internal/httpapi/middleware.go
package httpapi

import (
	"context"
	goerrors "errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	commonauth "jobboard-api/internal/common/auth"
	"jobboard-api/internal/common/errors"
	"jobboard-api/internal/common/observability"
	"jobboard-api/internal/models"
)

const (
	ctxUserID    = "userID"
	ctxUserRole  = "userRole"
	ctxSessionID = "sessionID"
)

// SessionVerifier resolves a bearer token into a live session.
type SessionVerifier interface {
	VerifySession(ctx context.Context, token string) (*models.Session, *commonauth.Claims, error)
}

// RequireAuth resolves the bearer token before any allow/deny decision.
// No token or a dead session answers 401 with a login redirect.
func RequireAuth(verifier SessionVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{
					"code":    errors.ErrCodeUnauthorized,
					"message": "authentication required",
				},
				"redirectTo": "/login",
			})
			return
		}

		session, claims, err := verifier.VerifySession(c.Request.Context(), token)
		if err != nil {
			code := errors.ErrCodeUnauthorized
			var stdErr *errors.StandardError
			if goerrors.As(err, &stdErr) {
				code = stdErr.Code
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{
					"code":    code,
					"message": "session is not valid",
				},
				"redirectTo": "/login",
			})
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxUserRole, session.Role)
		c.Set(ctxSessionID, session.ID)
		c.Next()
	}
}

// RequireRole allows the request only when the verified session carries
// the required role. A mismatched session is sent to its own dashboard
// rather than failed outright.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionRole := c.GetString(ctxUserRole)
		if sessionRole == role {
			c.Next()
			return
		}

		own := &models.UserProfile{Role: sessionRole}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error": gin.H{
				"code":    errors.ErrCodeForbiddenRole,
				"message": "this area belongs to another role",
			},
			"redirectTo": own.DashboardPath(),
		})
	}
}

// Metrics records a counter and duration per route.
func Metrics(obs *observability.Observability) gin.HandlerFunc {
	return func(c *gin.Context) {
		if obs == nil {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		obs.RecordRequest(c.Request.Context(), route, c.Request.Method, c.Writer.Status())
		obs.RecordDuration(c.Request.Context(), route, float64(time.Since(start).Milliseconds()))
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
