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

// ConditionHandler handles HTTP requests for condition management.
type ConditionHandler struct {
	conditionUseCase recordsUseCase.ConditionUseCase
	logger           *slog.Logger
}

// NewConditionHandler creates a new condition handler with required dependencies.
func NewConditionHandler(useCase recordsUseCase.ConditionUseCase, logger *slog.Logger) *ConditionHandler {
	return &ConditionHandler{
		conditionUseCase: useCase,
		logger:           logger,
	}
}

// CreateHandler adds a condition for a family member.
// POST /v1/families/:family_id/conditions
// Returns 201 Created with the condition data.
func (h *ConditionHandler) CreateHandler(c *gin.Context) {
	familyID, ok := parseFamilyID(c, h.logger)
	if !ok {
		return
	}

	input, ok := h.bindConditionRequest(c)
	if !ok {
		return
	}

	condition, err := h.conditionUseCase.Create(c.Request.Context(), familyID, input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapConditionToResponse(condition))
}

// GetHandler retrieves one condition of a family.
// GET /v1/families/:family_id/conditions/:condition_id
// Returns 200 OK with the decrypted condition data.
func (h *ConditionHandler) GetHandler(c *gin.Context) {
	familyID, conditionID, ok := h.parseIDs(c)
	if !ok {
		return
	}

	condition, err := h.conditionUseCase.Get(c.Request.Context(), familyID, conditionID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapConditionToResponse(condition))
}

// ListHandler retrieves a page of a family's conditions, by default ordered
// by status. Supports offset/limit and sort_by/sort_order query parameters.
// GET /v1/families/:family_id/conditions
// Returns 200 OK with the decrypted condition list.
func (h *ConditionHandler) ListHandler(c *gin.Context) {
	familyID, ok := parseFamilyID(c, h.logger)
	if !ok {
		return
	}

	opts, ok := parseListOptions(c, h.logger, "status", "diagnosed_date", "created_at")
	if !ok {
		return
	}

	conditions, err := h.conditionUseCase.List(c.Request.Context(), familyID, opts)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapConditionsToListResponse(conditions))
}

// UpdateHandler replaces a condition's data.
// PUT /v1/families/:family_id/conditions/:condition_id
// Returns 200 OK with the updated condition data.
func (h *ConditionHandler) UpdateHandler(c *gin.Context) {
	familyID, conditionID, ok := h.parseIDs(c)
	if !ok {
		return
	}

	input, ok := h.bindConditionRequest(c)
	if !ok {
		return
	}

	condition, err := h.conditionUseCase.Update(c.Request.Context(), familyID, conditionID, input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapConditionToResponse(condition))
}

// DeleteHandler removes a condition.
// DELETE /v1/families/:family_id/conditions/:condition_id
// Returns 204 No Content.
func (h *ConditionHandler) DeleteHandler(c *gin.Context) {
	familyID, conditionID, ok := h.parseIDs(c)
	if !ok {
		return
	}

	if err := h.conditionUseCase.Delete(c.Request.Context(), familyID, conditionID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ConditionHandler) parseIDs(c *gin.Context) (familyID, conditionID uuid.UUID, ok bool) {
	familyID, ok = parseFamilyID(c, h.logger)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	conditionID, err := uuid.Parse(c.Param("condition_id"))
	if err != nil {
		httputil.HandleValidationErrorGin(
			c,
			fmt.Errorf("invalid condition id: %w", err),
			h.logger,
		)
		return uuid.Nil, uuid.Nil, false
	}
	return familyID, conditionID, true
}

func (h *ConditionHandler) bindConditionRequest(c *gin.Context) (*recordsDomain.ConditionInput, bool) {
	var req dto.ConditionRequest
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
