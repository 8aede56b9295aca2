// Package http provides HTTP handlers for the user profile.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authHTTP "github.com/hearthside/hearth/internal/auth/http"
	apperrors "github.com/hearthside/hearth/internal/errors"
	"github.com/hearthside/hearth/internal/httputil"
	"github.com/hearthside/hearth/internal/user/http/dto"
	userUseCase "github.com/hearthside/hearth/internal/user/usecase"
)

// UserHandler handles HTTP requests for the authenticated user's profile.
type UserHandler struct {
	userUseCase userUseCase.UserUseCase
	logger      *slog.Logger
}

// NewUserHandler creates a new user handler.
func NewUserHandler(useCase userUseCase.UserUseCase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: useCase,
		logger:      logger,
	}
}

// MeHandler returns the decrypted profile of the session's user.
// GET /v1/users/me
// Returns 200 OK with the profile data.
func (h *UserHandler) MeHandler(c *gin.Context) {
	session, ok := authHTTP.GetSession(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	user, err := h.userUseCase.Get(c.Request.Context(), session.UserID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapUserToResponse(user))
}
