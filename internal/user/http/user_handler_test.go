package http

import (
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
	"github.com/stretchr/testify/require"

	authDomain "github.com/hearthside/hearth/internal/auth/domain"
	authHTTP "github.com/hearthside/hearth/internal/auth/http"
	userDomain "github.com/hearthside/hearth/internal/user/domain"
	"github.com/hearthside/hearth/internal/user/http/dto"
	httpMocks "github.com/hearthside/hearth/internal/user/http/mocks"
)

func setupUserTestHandler(t *testing.T) (*UserHandler, *httpMocks.MockUserUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	mockUseCase := &httpMocks.MockUserUseCase{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewUserHandler(mockUseCase, logger), mockUseCase
}

func createMeContext(session *authDomain.Session) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	req := httptest.NewRequest(http.MethodGet, "/v1/users/me", nil)
	if session != nil {
		req = req.WithContext(authHTTP.WithSession(req.Context(), session))
	}
	c.Request = req
	return c, w
}

func TestUserHandler_MeHandler(t *testing.T) {
	userID := uuid.Must(uuid.NewV7())
	familyID := uuid.Must(uuid.NewV7())
	session := &authDomain.Session{
		Token:     "opaque-token",
		UserID:    userID,
		FamilyID:  familyID,
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}

	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupUserTestHandler(t)
		mockUseCase.On("Get", mock.Anything, userID).
			Return(&userDomain.UserOutput{
				ID:          userID,
				FamilyID:    familyID,
				Email:       "ada@example.com",
				FirstName:   "Ada",
				LastName:    "Lovelace",
				TOTPEnabled: true,
			}, nil).
			Once()

		c, w := createMeContext(session)
		handler.MeHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp dto.UserResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "ada@example.com", resp.Email)
		assert.Equal(t, "Ada", resp.FirstName)
		assert.True(t, resp.TOTPEnabled)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("NoSession", func(t *testing.T) {
		handler, mockUseCase := setupUserTestHandler(t)

		c, w := createMeContext(nil)
		handler.MeHandler(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockUseCase.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("UserGone", func(t *testing.T) {
		handler, mockUseCase := setupUserTestHandler(t)
		mockUseCase.On("Get", mock.Anything, userID).
			Return(nil, userDomain.ErrUserNotFound).
			Once()

		c, w := createMeContext(session)
		handler.MeHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
