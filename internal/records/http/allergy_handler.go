package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hearthside/hearth/internal/httputil"
	recordsDomain "github.com/hearthside/hearth/internal/records/domain"
	"github.com/hearthside/hearth/internal/records/http/dto"
	recordsUseCase "github.com/hearthside/hearth/internal/records/usecase"
	customValidation "github.com/hearthside/hearth/internal/validation"
)

// AllergyHandler handles HTTP requests for allergy management.
type AllergyHandler struct {
	allergyUseCase recordsUseCase.AllergyUseCase
	logger         *slog.Logger
}

// NewAllergyHandler creates a new allergy handler with required dependencies.
func NewAllergyHandler(useCase recordsUseCase.AllergyUseCase, logger *slog.Logger) *AllergyHandler {
	return &AllergyHandler{
		allergyUseCase: useCase,
		logger:         logger,
	}
}

// CreateHandler adds an allergy for a family member.
// POST /v1/families/:family_id/allergies
// Returns 201 Created with the allergy data.
func (h *AllergyHandler) CreateHandler(c *gin.Context) {
	familyID, ok := parseFamilyID(c, h.logger)
	if !ok {
		return
	}

	input, ok := h.bindAllergyRequest(c)
	if !ok {
		return
	}

	allergy, err := h.allergyUseCase.Create(c.Request.Context(), familyID, input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapAllergyToResponse(allergy))
}

// GetHandler retrieves one allergy of a family.
// GET /v1/families/:family_id/allergies/:allergy_id
// Returns 200 OK with the decrypted allergy data.
func (h *AllergyHandler) GetHandler(c *gin.Context) {
	familyID, allergyID, ok := h.parseIDs(c)
	if !ok {
		return
	}

	allergy, err := h.allergyUseCase.Get(c.Request.Context(), familyID, allergyID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAllergyToResponse(allergy))
}

// ListHandler retrieves a page of a family's allergies, by default ordered
// by severity. Supports offset/limit and sort_by/sort_order query parameters.
// GET /v1/families/:family_id/allergies
// Returns 200 OK with the decrypted allergy list.
func (h *AllergyHandler) ListHandler(c *gin.Context) {
	familyID, ok := parseFamilyID(c, h.logger)
	if !ok {
		return
	}

	opts, ok := parseListOptions(c, h.logger, "severity", "created_at")
	if !ok {
		return
	}

	allergies, err := h.allergyUseCase.List(c.Request.Context(), familyID, opts)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAllergiesToListResponse(allergies))
}

// UpdateHandler replaces an allergy's data.
// PUT /v1/families/:family_id/allergies/:allergy_id
// Returns 200 OK with the updated allergy data.
func (h *AllergyHandler) UpdateHandler(c *gin.Context) {
	familyID, allergyID, ok := h.parseIDs(c)
	if !ok {
		return
	}

	input, ok := h.bindAllergyRequest(c)
	if !ok {
		return
	}

	allergy, err := h.allergyUseCase.Update(c.Request.Context(), familyID, allergyID, input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAllergyToResponse(allergy))
}

// DeleteHandler removes an allergy.
// DELETE /v1/families/:family_id/allergies/:allergy_id
// Returns 204 No Content.
func (h *AllergyHandler) DeleteHandler(c *gin.Context) {
	familyID, allergyID, ok := h.parseIDs(c)
	if !ok {
		return
	}

	if err := h.allergyUseCase.Delete(c.Request.Context(), familyID, allergyID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AllergyHandler) parseIDs(c *gin.Context) (familyID, allergyID uuid.UUID, ok bool) {
	familyID, ok = parseFamilyID(c, h.logger)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	allergyID, err := uuid.Parse(c.Param("allergy_id"))
	if err != nil {
		httputil.HandleValidationErrorGin(
			c,
			fmt.Errorf("invalid allergy id: %w", err),
			h.logger,
		)
		return uuid.Nil, uuid.Nil, false
	}
	return familyID, allergyID, true
}

func (h *AllergyHandler) bindAllergyRequest(c *gin.Context) (*recordsDomain.AllergyInput, bool) {
	var req dto.AllergyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return nil, false
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return nil, false
	}
	input, err := req.ToInput()
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return nil, false
	}
	return input, true
}
