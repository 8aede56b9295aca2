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

// MedicationHandler handles HTTP requests for medication management.
type MedicationHandler struct {
	medicationUseCase recordsUseCase.MedicationUseCase
	logger            *slog.Logger
}

// NewMedicationHandler creates a new medication handler with required dependencies.
func NewMedicationHandler(useCase recordsUseCase.MedicationUseCase, logger *slog.Logger) *MedicationHandler {
	return &MedicationHandler{
		medicationUseCase: useCase,
		logger:            logger,
	}
}

// CreateHandler adds a medication for a family member.
// POST /v1/families/:family_id/medications
// Returns 201 Created with the medication data.
func (h *MedicationHandler) CreateHandler(c *gin.Context) {
	familyID, ok := parseFamilyID(c, h.logger)
	if !ok {
		return
	}

	input, ok := h.bindMedicationRequest(c)
	if !ok {
		return
	}

	medication, err := h.medicationUseCase.Create(c.Request.Context(), familyID, input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapMedicationToResponse(medication))
}

// GetHandler retrieves one medication of a family.
// GET /v1/families/:family_id/medications/:medication_id
// Returns 200 OK with the decrypted medication data.
func (h *MedicationHandler) GetHandler(c *gin.Context) {
	familyID, medicationID, ok := h.parseIDs(c)
	if !ok {
		return
	}

	medication, err := h.medicationUseCase.Get(c.Request.Context(), familyID, medicationID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapMedicationToResponse(medication))
}

// ListHandler retrieves a page of a family's medications. Supports
// offset/limit and sort_by/sort_order query parameters.
// GET /v1/families/:family_id/medications
// Returns 200 OK with the decrypted medication list.
func (h *MedicationHandler) ListHandler(c *gin.Context) {
	familyID, ok := parseFamilyID(c, h.logger)
	if !ok {
		return
	}

	opts, ok := parseListOptions(c, h.logger, "start_date", "end_date", "created_at")
	if !ok {
		return
	}

	medications, err := h.medicationUseCase.List(c.Request.Context(), familyID, opts)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapMedicationsToListResponse(medications))
}

// UpdateHandler replaces a medication's data.
// PUT /v1/families/:family_id/medications/:medication_id
// Returns 200 OK with the updated medication data.
func (h *MedicationHandler) UpdateHandler(c *gin.Context) {
	familyID, medicationID, ok := h.parseIDs(c)
	if !ok {
		return
	}

	input, ok := h.bindMedicationRequest(c)
	if !ok {
		return
	}

	medication, err := h.medicationUseCase.Update(c.Request.Context(), familyID, medicationID, input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapMedicationToResponse(medication))
}

// DeleteHandler removes a medication.
// DELETE /v1/families/:family_id/medications/:medication_id
// Returns 204 No Content.
func (h *MedicationHandler) DeleteHandler(c *gin.Context) {
	familyID, medicationID, ok := h.parseIDs(c)
	if !ok {
		return
	}

	if err := h.medicationUseCase.Delete(c.Request.Context(), familyID, medicationID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *MedicationHandler) parseIDs(c *gin.Context) (familyID, medicationID uuid.UUID, ok bool) {
	familyID, ok = parseFamilyID(c, h.logger)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	medicationID, err := uuid.Parse(c.Param("medication_id"))
	if err != nil {
		httputil.HandleValidationErrorGin(
			c,
			fmt.Errorf("invalid medication id: %w", err),
			h.logger,
		)
		return uuid.Nil, uuid.Nil, false
	}
	return familyID, medicationID, true
}

func (h *MedicationHandler) bindMedicationRequest(c *gin.Context) (*recordsDomain.MedicationInput, bool) {
	var req dto.MedicationRequest
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
