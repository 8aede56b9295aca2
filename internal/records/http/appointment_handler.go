// Package http provides HTTP handlers for health-record management.
// Responses carry decrypted views produced by the use cases; handlers never
// see ciphertext or key material.
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

// AppointmentHandler handles HTTP requests for appointment management.
type AppointmentHandler struct {
	appointmentUseCase recordsUseCase.AppointmentUseCase
	logger             *slog.Logger
}

// NewAppointmentHandler creates a new appointment handler with required dependencies.
func NewAppointmentHandler(useCase recordsUseCase.AppointmentUseCase, logger *slog.Logger) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUseCase: useCase,
		logger:             logger,
	}
}

// CreateHandler adds an appointment for a family member.
// POST /v1/families/:family_id/appointments
// Returns 201 Created with the appointment data.
func (h *AppointmentHandler) CreateHandler(c *gin.Context) {
	familyID, ok := parseFamilyID(c, h.logger)
	if !ok {
		return
	}

	input, ok := h.bindAppointmentRequest(c)
	if !ok {
		return
	}

	appointment, err := h.appointmentUseCase.Create(c.Request.Context(), familyID, input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapAppointmentToResponse(appointment))
}

// GetHandler retrieves one appointment of a family.
// GET /v1/families/:family_id/appointments/:appointment_id
// Returns 200 OK with the decrypted appointment data.
func (h *AppointmentHandler) GetHandler(c *gin.Context) {
	familyID, appointmentID, ok := h.parseIDs(c)
	if !ok {
		return
	}

	appointment, err := h.appointmentUseCase.Get(c.Request.Context(), familyID, appointmentID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAppointmentToResponse(appointment))
}

// ListHandler retrieves a page of a family's appointments, by default
// ordered by date. Supports offset/limit and sort_by/sort_order query
// parameters.
// GET /v1/families/:family_id/appointments
// Returns 200 OK with the decrypted appointment list.
func (h *AppointmentHandler) ListHandler(c *gin.Context) {
	familyID, ok := parseFamilyID(c, h.logger)
	if !ok {
		return
	}

	opts, ok := parseListOptions(c, h.logger, "date", "created_at")
	if !ok {
		return
	}

	appointments, err := h.appointmentUseCase.List(c.Request.Context(), familyID, opts)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAppointmentsToListResponse(appointments))
}

// UpdateHandler replaces an appointment's data.
// PUT /v1/families/:family_id/appointments/:appointment_id
// Returns 200 OK with the updated appointment data.
func (h *AppointmentHandler) UpdateHandler(c *gin.Context) {
	familyID, appointmentID, ok := h.parseIDs(c)
	if !ok {
		return
	}

	input, ok := h.bindAppointmentRequest(c)
	if !ok {
		return
	}

	appointment, err := h.appointmentUseCase.Update(c.Request.Context(), familyID, appointmentID, input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAppointmentToResponse(appointment))
}

// DeleteHandler removes an appointment.
// DELETE /v1/families/:family_id/appointments/:appointment_id
// Returns 204 No Content.
func (h *AppointmentHandler) DeleteHandler(c *gin.Context) {
	familyID, appointmentID, ok := h.parseIDs(c)
	if !ok {
		return
	}

	if err := h.appointmentUseCase.Delete(c.Request.Context(), familyID, appointmentID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AppointmentHandler) parseIDs(c *gin.Context) (familyID, appointmentID uuid.UUID, ok bool) {
	familyID, ok = parseFamilyID(c, h.logger)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	appointmentID, err := uuid.Parse(c.Param("appointment_id"))
	if err != nil {
		httputil.HandleValidationErrorGin(
			c,
			fmt.Errorf("invalid appointment id: %w", err),
			h.logger,
		)
		return uuid.Nil, uuid.Nil, false
	}
	return familyID, appointmentID, true
}

func (h *AppointmentHandler) bindAppointmentRequest(c *gin.Context) (*recordsDomain.AppointmentInput, bool) {
	var req dto.AppointmentRequest
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

// parseListOptions extracts pagination and ordering query parameters.
// allowed names the entity's plain sortable columns.
func parseListOptions(c *gin.Context, logger *slog.Logger, allowed ...string) (recordsDomain.ListOptions, bool) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, logger)
		return recordsDomain.ListOptions{}, false
	}
	sortBy, desc, err := httputil.ParseSort(c, allowed...)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, logger)
		return recordsDomain.ListOptions{}, false
	}
	return recordsDomain.ListOptions{
		Limit:    limit,
		Offset:   offset,
		SortBy:   sortBy,
		SortDesc: desc,
	}, true
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
