package http

import (
	"log/slog"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	authDomain "github.com/hearthside/hearth/internal/auth/domain"
	authService "github.com/hearthside/hearth/internal/auth/service"
	apperrors "github.com/hearthside/hearth/internal/errors"
	"github.com/hearthside/hearth/internal/httputil"
)

// sessionCookieName is the cookie the browser client carries its session in.
const sessionCookieName = "session_token"

// SessionMiddleware authenticates requests against the external session
// store and resolves the session's user and family into the request context.
//
// The token is read from the session cookie, or from a Bearer Authorization
// header for non-browser clients. Downstream handlers access the verified
// session via GetSession().
//
// Error handling:
//   - Missing or empty token → 401 Unauthorized
//   - Unknown or revoked token → 401 Unauthorized
//   - Expired session → 401 Unauthorized
//   - Session store outage → 503 Service Unavailable
func SessionMiddleware(store authService.SessionStore, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractSessionToken(c)
		if token == "" {
			logger.Debug("authentication failed: no session token")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		session, err := store.Get(c.Request.Context(), token)
		if err != nil {
			logger.Debug("authentication failed", slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		if session.IsExpired(time.Now().UTC()) {
			logger.Debug("authentication failed: session expired",
				slog.String("user_id", session.UserID.String()))
			httputil.HandleErrorGin(c, authDomain.ErrSessionExpired, logger)
			c.Abort()
			return
		}

		ctx := WithSession(c.Request.Context(), session)
		c.Request = c.Request.WithContext(ctx)

		logger.Debug("authentication successful",
			slog.String("user_id", session.UserID.String()),
			slog.String("family_id", session.FamilyID.String()))

		c.Next()
	}
}

// extractSessionToken reads the session token from the cookie, falling back
// to a Bearer Authorization header.
func extractSessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(sessionCookieName); err == nil && cookie != "" {
		return cookie
	}

	const bearerPrefix = "bearer "
	header := c.GetHeader("Authorization")
	if len(header) > len(bearerPrefix) &&
		strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return header[len(bearerPrefix):]
	}
	return ""
}
