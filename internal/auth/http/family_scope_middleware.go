package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperrors "github.com/hearthside/hearth/internal/errors"
	"github.com/hearthside/hearth/internal/httputil"
)

// FamilyScopeMiddleware enforces that the family named in the route belongs
// to the authenticated session. Must run after SessionMiddleware.
//
// Every data route is scoped by a :family_id path parameter; a session can
// only reach its own family's records.
//
// Error handling:
//   - No session in context → 401 Unauthorized (SessionMiddleware not run)
//   - Malformed family_id parameter → 422 Unprocessable Entity
//   - Family mismatch → 403 Forbidden
func FamilyScopeMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := GetSession(c.Request.Context())
		if !ok || session == nil {
			logger.Error("family scope middleware: no session in context")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		familyID, err := uuid.Parse(c.Param("family_id"))
		if err != nil {
			httputil.HandleErrorGin(c,
				apperrors.Wrap(apperrors.ErrInvalidInput, "invalid family id"), logger)
			c.Abort()
			return
		}

		if familyID != session.FamilyID {
			logger.Debug("family scope rejected",
				slog.String("user_id", session.UserID.String()),
				slog.String("requested_family_id", familyID.String()))
			httputil.HandleErrorGin(c, apperrors.ErrForbidden, logger)
			c.Abort()
			return
		}

		c.Next()
	}
}
