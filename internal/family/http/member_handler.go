package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	familyDomain "github.com/hearthside/hearth/internal/family/domain"
	"github.com/hearthside/hearth/internal/family/http/dto"
	familyUseCase "github.com/hearthside/hearth/internal/family/usecase"
	"github.com/hearthside/hearth/internal/httputil"
	customValidation "github.com/hearthside/hearth/internal/validation"
)

// MemberHandler handles HTTP requests for family member management.
type MemberHandler struct {
	memberUseCase familyUseCase.MemberUseCase
	logger        *slog.Logger
}

// NewMemberHandler creates a new member handler with required dependencies.
func NewMemberHandler(useCase familyUseCase.MemberUseCase, logger *slog.Logger) *MemberHandler {
	return &MemberHandler{
		memberUseCase: useCase,
		logger:        logger,
	}
}

// CreateHandler adds a member to a family.
// POST /v1/families/:family_id/members
// Returns 201 Created with the member data.
func (h *MemberHandler) CreateHandler(c *gin.Context) {
	familyID, ok := parseFamilyID(c, h.logger)
	if !ok {
		return
	}

	input, ok := h.bindMemberRequest(c)
	if !ok {
		return
	}

	member, err := h.memberUseCase.Create(c.Request.Context(), familyID, input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapMemberToResponse(member))
}

// GetHandler retrieves one member of a family.
// GET /v1/families/:family_id/members/:member_id
// Returns 200 OK with the decrypted member data.
func (h *MemberHandler) GetHandler(c *gin.Context) {
	familyID, memberID, ok := h.parseIDs(c)
	if !ok {
		return
	}

	member, err := h.memberUseCase.Get(c.Request.Context(), familyID, memberID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapMemberToResponse(member))
}

// ListHandler retrieves a page of a family's members. Supports offset/limit
// and sort_by/sort_order query parameters.
// GET /v1/families/:family_id/members
// Returns 200 OK with the decrypted member list.
func (h *MemberHandler) ListHandler(c *gin.Context) {
	familyID, ok := parseFamilyID(c, h.logger)
	if !ok {
		return
	}

	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}
	sortBy, desc, err := httputil.ParseSort(c, "birth_date", "created_at")
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	members, err := h.memberUseCase.List(c.Request.Context(), familyID, familyDomain.ListOptions{
		Limit:    limit,
		Offset:   offset,
		SortBy:   sortBy,
		SortDesc: desc,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapMembersToListResponse(members))
}

// UpdateHandler replaces a member's data.
// PUT /v1/families/:family_id/members/:member_id
// Returns 200 OK with the updated member data.
func (h *MemberHandler) UpdateHandler(c *gin.Context) {
	familyID, memberID, ok := h.parseIDs(c)
	if !ok {
		return
	}

	input, ok := h.bindMemberRequest(c)
	if !ok {
		return
	}

	member, err := h.memberUseCase.Update(c.Request.Context(), familyID, memberID, input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapMemberToResponse(member))
}

// DeleteHandler removes a member from a family.
// DELETE /v1/families/:family_id/members/:member_id
// Returns 204 No Content.
func (h *MemberHandler) DeleteHandler(c *gin.Context) {
	familyID, memberID, ok := h.parseIDs(c)
	if !ok {
		return
	}

	if err := h.memberUseCase.Delete(c.Request.Context(), familyID, memberID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *MemberHandler) parseIDs(c *gin.Context) (familyID, memberID uuid.UUID, ok bool) {
	familyID, ok = parseFamilyID(c, h.logger)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	memberID, err := uuid.Parse(c.Param("member_id"))
	if err != nil {
		httputil.HandleValidationErrorGin(
			c,
			fmt.Errorf("invalid member id: %w", err),
			h.logger,
		)
		return uuid.Nil, uuid.Nil, false
	}
	return familyID, memberID, true
}

func (h *MemberHandler) bindMemberRequest(c *gin.Context) (*familyDomain.MemberInput, bool) {
	var req dto.MemberRequest
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
