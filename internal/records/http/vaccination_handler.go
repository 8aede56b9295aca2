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

// VaccinationHandler handles HTTP requests for vaccination management.
type VaccinationHandler struct {
	vaccinationUseCase recordsUseCase.VaccinationUseCase
	logger             *slog.Logger
}

// NewVaccinationHandler creates a new vaccination handler with required dependencies.
func NewVaccinationHandler(useCase recordsUseCase.VaccinationUseCase, logger *slog.Logger) *VaccinationHandler {
	return &VaccinationHandler{
		vaccinationUseCase: useCase,
		logger:             logger,
	}
}

// CreateHandler adds a vaccination for a family member.
// POST /v1/families/:family_id/vaccinations
// Returns 201 Created with the vaccination data.
func (h *VaccinationHandler) CreateHandler(c *gin.Context) {
	familyID, ok := parseFamilyID(c, h.logger)
	if !ok {
		return
	}

	input, ok := h.bindVaccinationRequest(c)
	if !ok {
		return
	}

	vaccination, err := h.vaccinationUseCase.Create(c.Request.Context(), familyID, input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapVaccinationToResponse(vaccination))
}

// GetHandler retrieves one vaccination of a family.
// GET /v1/families/:family_id/vaccinations/:vaccination_id
// Returns 200 OK with the decrypted vaccination data.
func (h *VaccinationHandler) GetHandler(c *gin.Context) {
	familyID, vaccinationID, ok := h.parseIDs(c)
	if !ok {
		return
	}

	vaccination, err := h.vaccinationUseCase.Get(c.Request.Context(), familyID, vaccinationID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapVaccinationToResponse(vaccination))
}

// ListHandler retrieves a page of a family's vaccinations, by default ordered
// by date. Supports offset/limit and sort_by/sort_order query parameters.
// GET /v1/families/:family_id/vaccinations
// Returns 200 OK with the decrypted vaccination list.
func (h *VaccinationHandler) ListHandler(c *gin.Context) {
	familyID, ok := parseFamilyID(c, h.logger)
	if !ok {
		return
	}

	opts, ok := parseListOptions(c, h.logger, "date", "created_at")
	if !ok {
		return
	}

	vaccinations, err := h.vaccinationUseCase.List(c.Request.Context(), familyID, opts)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapVaccinationsToListResponse(vaccinations))
}

// UpdateHandler replaces a vaccination's data.
// PUT /v1/families/:family_id/vaccinations/:vaccination_id
// Returns 200 OK with the updated vaccination data.
func (h *VaccinationHandler) UpdateHandler(c *gin.Context) {
	familyID, vaccinationID, ok := h.parseIDs(c)
	if !ok {
		return
	}

	input, ok := h.bindVaccinationRequest(c)
	if !ok {
		return
	}

	vaccination, err := h.vaccinationUseCase.Update(c.Request.Context(), familyID, vaccinationID, input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapVaccinationToResponse(vaccination))
}

// DeleteHandler removes a vaccination.
// DELETE /v1/families/:family_id/vaccinations/:vaccination_id
// Returns 204 No Content.
func (h *VaccinationHandler) DeleteHandler(c *gin.Context) {
	familyID, vaccinationID, ok := h.parseIDs(c)
	if !ok {
		return
	}

	if err := h.vaccinationUseCase.Delete(c.Request.Context(), familyID, vaccinationID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *VaccinationHandler) parseIDs(c *gin.Context) (familyID, vaccinationID uuid.UUID, ok bool) {
	familyID, ok = parseFamilyID(c, h.logger)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	vaccinationID, err := uuid.Parse(c.Param("vaccination_id"))
	if err != nil {
		httputil.HandleValidationErrorGin(
			c,
			fmt.Errorf("invalid vaccination id: %w", err),
			h.logger,
		)
		return uuid.Nil, uuid.Nil, false
	}
	return familyID, vaccinationID, true
}

func (h *VaccinationHandler) bindVaccinationRequest(c *gin.Context) (*recordsDomain.VaccinationInput, bool) {
	var req dto.VaccinationRequest
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
