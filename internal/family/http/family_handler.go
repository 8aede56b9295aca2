// Package http provides HTTP handlers for family and member management.
// Responses carry decrypted views produced by the use cases; handlers never
// see ciphertext or key material.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hearthside/hearth/internal/family/http/dto"
	familyUseCase "github.com/hearthside/hearth/internal/family/usecase"
	"github.com/hearthside/hearth/internal/httputil"
	customValidation "github.com/hearthside/hearth/internal/validation"
)

// FamilyHandler handles HTTP requests for family management operations.
type FamilyHandler struct {
	familyUseCase familyUseCase.FamilyUseCase
	logger        *slog.Logger
}

// NewFamilyHandler creates a new family handler with required dependencies.
func NewFamilyHandler(useCase familyUseCase.FamilyUseCase, logger *slog.Logger) *FamilyHandler {
	return &FamilyHandler{
		familyUseCase: useCase,
		logger:        logger,
	}
}

// CreateHandler provisions a new family with its own encryption key.
// POST /v1/families
// Returns 201 Created with the family data.
func (h *FamilyHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateFamilyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	family, err := h.familyUseCase.Create(c.Request.Context(), req.Name)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapFamilyToResponse(family))
}

// GetHandler retrieves a family.
// GET /v1/families/:family_id
// Returns 200 OK with the decrypted family data.
func (h *FamilyHandler) GetHandler(c *gin.Context) {
	familyID, ok := parseFamilyID(c, h.logger)
	if !ok {
		return
	}

	family, err := h.familyUseCase.Get(c.Request.Context(), familyID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapFamilyToResponse(family))
}

// RenameHandler changes a family's display name.
// PUT /v1/families/:family_id
// Returns 200 OK with the updated family data.
func (h *FamilyHandler) RenameHandler(c *gin.Context) {
	familyID, ok := parseFamilyID(c, h.logger)
	if !ok {
		return
	}

	var req dto.RenameFamilyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	family, err := h.familyUseCase.Rename(c.Request.Context(), familyID, req.Name)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapFamilyToResponse(family))
}

// parseFamilyID extracts and validates the family_id URL parameter.
func parseFamilyID(c *gin.Context, logger *slog.Logger) (uuid.UUID, bool) {
	familyID, err := uuid.Parse(c.Param("family_id"))
	if err != nil {
		httputil.HandleValidationErrorGin(
			c,
			fmt.Errorf("invalid family id: %w", err),
			logger,
		)
		return uuid.Nil, false
	}
	return familyID, true
}
