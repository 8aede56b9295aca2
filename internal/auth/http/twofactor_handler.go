package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authUseCase "github.com/hearthside/hearth/internal/auth/usecase"
	"github.com/hearthside/hearth/internal/auth/http/dto"
	apperrors "github.com/hearthside/hearth/internal/errors"
	"github.com/hearthside/hearth/internal/httputil"
	customValidation "github.com/hearthside/hearth/internal/validation"
)

// TwoFactorHandler handles HTTP requests for two-factor enrolment. All routes
// require an authenticated session.
type TwoFactorHandler struct {
	twoFactorUseCase authUseCase.TwoFactorUseCase
	logger           *slog.Logger
}

// NewTwoFactorHandler creates a new two-factor handler.
func NewTwoFactorHandler(useCase authUseCase.TwoFactorUseCase, logger *slog.Logger) *TwoFactorHandler {
	return &TwoFactorHandler{
		twoFactorUseCase: useCase,
		logger:           logger,
	}
}

// SetupHandler starts two-factor enrolment for the session's user.
// POST /v1/twofactor/setup
// Returns 201 Created with the secret and provisioning URI, shown once.
func (h *TwoFactorHandler) SetupHandler(c *gin.Context) {
	session, ok := GetSession(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	setup, err := h.twoFactorUseCase.Setup(c.Request.Context(), session.UserID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapTwoFactorSetupToResponse(setup))
}

// VerifyHandler checks a submitted code; the first success enables
// two-factor.
// POST /v1/twofactor/verify
// Returns 204 No Content on success.
func (h *TwoFactorHandler) VerifyHandler(c *gin.Context) {
	session, ok := GetSession(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	var req dto.TwoFactorVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	if err := h.twoFactorUseCase.Verify(c.Request.Context(), session.UserID, req.Code); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// DisableHandler turns two-factor off for the session's user.
// DELETE /v1/twofactor
// Returns 204 No Content.
func (h *TwoFactorHandler) DisableHandler(c *gin.Context) {
	session, ok := GetSession(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	if err := h.twoFactorUseCase.Disable(c.Request.Context(), session.UserID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
