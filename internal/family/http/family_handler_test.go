package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	cryptoDomain "github.com/hearthside/hearth/internal/crypto/domain"
	familyDomain "github.com/hearthside/hearth/internal/family/domain"
	"github.com/hearthside/hearth/internal/family/http/dto"
	httpMocks "github.com/hearthside/hearth/internal/family/http/mocks"
)

func setupFamilyTestHandler(t *testing.T) (*FamilyHandler, *httpMocks.MockFamilyUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockUseCase := &httpMocks.MockFamilyUseCase{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewFamilyHandler(mockUseCase, logger), mockUseCase
}

func createTestContext(method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	return c, w
}

func TestFamilyHandler_CreateHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupFamilyTestHandler(t)

		familyID := uuid.Must(uuid.NewV7())
		now := time.Now().UTC()
		mockUseCase.On("Create", mock.Anything, "Silva Household").
			Return(&familyDomain.FamilyOutput{
				ID:        familyID,
				Name:      "Silva Household",
				CreatedAt: now,
				UpdatedAt: now,
			}, nil).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/families", dto.CreateFamilyRequest{Name: "Silva Household"})
		handler.CreateHandler(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response dto.FamilyResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, familyID.String(), response.ID)
		assert.Equal(t, "Silva Household", response.Name)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_EmptyName", func(t *testing.T) {
		handler, mockUseCase := setupFamilyTestHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/families", dto.CreateFamilyRequest{Name: ""})
		handler.CreateHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		mockUseCase.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Error_KeyServiceUnavailable", func(t *testing.T) {
		handler, mockUseCase := setupFamilyTestHandler(t)

		mockUseCase.On("Create", mock.Anything, "Silva Household").
			Return(nil, cryptoDomain.ErrKeyServiceUnavailable).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/families", dto.CreateFamilyRequest{Name: "Silva Household"})
		handler.CreateHandler(c)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestFamilyHandler_GetHandler(t *testing.T) {
	familyID := uuid.Must(uuid.NewV7())

	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupFamilyTestHandler(t)

		mockUseCase.On("Get", mock.Anything, familyID).
			Return(&familyDomain.FamilyOutput{ID: familyID, Name: "Silva Household"}, nil).
			Once()

		c, w := createTestContext(http.MethodGet, "/v1/families/"+familyID.String(), nil)
		c.Params = gin.Params{{Key: "family_id", Value: familyID.String()}}
		handler.GetHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Error_InvalidID", func(t *testing.T) {
		handler, _ := setupFamilyTestHandler(t)

		c, w := createTestContext(http.MethodGet, "/v1/families/not-a-uuid", nil)
		c.Params = gin.Params{{Key: "family_id", Value: "not-a-uuid"}}
		handler.GetHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		handler, mockUseCase := setupFamilyTestHandler(t)

		mockUseCase.On("Get", mock.Anything, familyID).
			Return(nil, familyDomain.ErrFamilyNotFound).
			Once()

		c, w := createTestContext(http.MethodGet, "/v1/families/"+familyID.String(), nil)
		c.Params = gin.Params{{Key: "family_id", Value: familyID.String()}}
		handler.GetHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestFamilyHandler_RenameHandler(t *testing.T) {
	familyID := uuid.Must(uuid.NewV7())

	handler, mockUseCase := setupFamilyTestHandler(t)
	mockUseCase.On("Rename", mock.Anything, familyID, "Souza Household").
		Return(&familyDomain.FamilyOutput{ID: familyID, Name: "Souza Household"}, nil).
		Once()

	c, w := createTestContext(http.MethodPut, "/v1/families/"+familyID.String(), dto.RenameFamilyRequest{Name: "Souza Household"})
	c.Params = gin.Params{{Key: "family_id", Value: familyID.String()}}
	handler.RenameHandler(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.FamilyResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Souza Household", response.Name)
}
