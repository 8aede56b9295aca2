package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	cryptoDomain "github.com/hearthside/hearth/internal/crypto/domain"
	familyDomain "github.com/hearthside/hearth/internal/family/domain"
	"github.com/hearthside/hearth/internal/family/http/dto"
	httpMocks "github.com/hearthside/hearth/internal/family/http/mocks"
)

func setupMemberTestHandler(t *testing.T) (*MemberHandler, *httpMocks.MockMemberUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockUseCase := &httpMocks.MockMemberUseCase{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewMemberHandler(mockUseCase, logger), mockUseCase
}

func memberRequest() dto.MemberRequest {
	relation := "daughter"
	birthDate := "2015-03-14"
	return dto.MemberRequest{
		FirstName: "Ana",
		LastName:  "Silva",
		Relation:  &relation,
		BirthDate: &birthDate,
		Gender:    "female",
	}
}

func TestMemberHandler_CreateHandler(t *testing.T) {
	familyID := uuid.Must(uuid.NewV7())
	basePath := "/v1/families/" + familyID.String() + "/members"

	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupMemberTestHandler(t)

		memberID := uuid.Must(uuid.NewV7())
		mockUseCase.On("Create", mock.Anything, familyID, mock.Anything).
			Return(&familyDomain.MemberOutput{
				ID:        memberID,
				FamilyID:  familyID,
				FirstName: "Ana",
				LastName:  "Silva",
				Gender:    "female",
			}, nil).
			Once()

		c, w := createTestContext(http.MethodPost, basePath, memberRequest())
		c.Params = gin.Params{{Key: "family_id", Value: familyID.String()}}
		handler.CreateHandler(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response dto.MemberResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, memberID.String(), response.ID)
		assert.Equal(t, "Ana", response.FirstName)
	})

	t.Run("Error_MissingFirstName", func(t *testing.T) {
		handler, mockUseCase := setupMemberTestHandler(t)

		request := memberRequest()
		request.FirstName = ""
		c, w := createTestContext(http.MethodPost, basePath, request)
		c.Params = gin.Params{{Key: "family_id", Value: familyID.String()}}
		handler.CreateHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		mockUseCase.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Error_BadBirthDate", func(t *testing.T) {
		handler, _ := setupMemberTestHandler(t)

		badDate := "14/03/2015"
		request := memberRequest()
		request.BirthDate = &badDate
		c, w := createTestContext(http.MethodPost, basePath, request)
		c.Params = gin.Params{{Key: "family_id", Value: familyID.String()}}
		handler.CreateHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Error_MissingKeyRecord", func(t *testing.T) {
		handler, mockUseCase := setupMemberTestHandler(t)

		mockUseCase.On("Create", mock.Anything, familyID, mock.Anything).
			Return(nil, cryptoDomain.ErrMissingKeyRecord).
			Once()

		c, w := createTestContext(http.MethodPost, basePath, memberRequest())
		c.Params = gin.Params{{Key: "family_id", Value: familyID.String()}}
		handler.CreateHandler(c)

		// A family without a key record is an internal invariant violation,
		// never a client error.
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestMemberHandler_ListHandler(t *testing.T) {
	familyID := uuid.Must(uuid.NewV7())
	basePath := "/v1/families/" + familyID.String() + "/members"

	t.Run("Success_Defaults", func(t *testing.T) {
		handler, mockUseCase := setupMemberTestHandler(t)

		mockUseCase.On("List", mock.Anything, familyID, familyDomain.ListOptions{Limit: 50}).
			Return([]*familyDomain.MemberOutput{
				{ID: uuid.Must(uuid.NewV7()), FamilyID: familyID, FirstName: "Ana"},
				{ID: uuid.Must(uuid.NewV7()), FamilyID: familyID, FirstName: "Bruno"},
			}, nil).
			Once()

		c, w := createTestContext(http.MethodGet, basePath, nil)
		c.Params = gin.Params{{Key: "family_id", Value: familyID.String()}}
		handler.ListHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.ListMembersResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Len(t, response.Data, 2)
	})

	t.Run("Success_SortedByBirthDate", func(t *testing.T) {
		handler, mockUseCase := setupMemberTestHandler(t)

		mockUseCase.On("List", mock.Anything, familyID, familyDomain.ListOptions{
			Limit:    25,
			SortBy:   "birth_date",
			SortDesc: true,
		}).
			Return([]*familyDomain.MemberOutput{
				{ID: uuid.Must(uuid.NewV7()), FamilyID: familyID, FirstName: "Bruno"},
			}, nil).
			Once()

		c, w := createTestContext(http.MethodGet,
			basePath+"?limit=25&sort_by=birth_date&sort_order=desc", nil)
		c.Params = gin.Params{{Key: "family_id", Value: familyID.String()}}
		handler.ListHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Error_BadSortColumn", func(t *testing.T) {
		handler, mockUseCase := setupMemberTestHandler(t)

		c, w := createTestContext(http.MethodGet, basePath+"?sort_by=first_name", nil)
		c.Params = gin.Params{{Key: "family_id", Value: familyID.String()}}
		handler.ListHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		mockUseCase.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestMemberHandler_DeleteHandler(t *testing.T) {
	familyID := uuid.Must(uuid.NewV7())
	memberID := uuid.Must(uuid.NewV7())
	path := "/v1/families/" + familyID.String() + "/members/" + memberID.String()

	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupMemberTestHandler(t)

		mockUseCase.On("Delete", mock.Anything, familyID, memberID).Return(nil).Once()

		c, w := createTestContext(http.MethodDelete, path, nil)
		c.Params = gin.Params{
			{Key: "family_id", Value: familyID.String()},
			{Key: "member_id", Value: memberID.String()},
		}
		handler.DeleteHandler(c)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		handler, mockUseCase := setupMemberTestHandler(t)

		mockUseCase.On("Delete", mock.Anything, familyID, memberID).
			Return(familyDomain.ErrMemberNotFound).
			Once()

		c, w := createTestContext(http.MethodDelete, path, nil)
		c.Params = gin.Params{
			{Key: "family_id", Value: familyID.String()},
			{Key: "member_id", Value: memberID.String()},
		}
		handler.DeleteHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
