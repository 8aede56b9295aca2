package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	authDomain "github.com/hearthside/hearth/internal/auth/domain"
	authHTTP "github.com/hearthside/hearth/internal/auth/http"
	authMocks "github.com/hearthside/hearth/internal/auth/http/mocks"
	serviceMocks "github.com/hearthside/hearth/internal/auth/service/mocks"
	familyHTTP "github.com/hearthside/hearth/internal/family/http"
	familyMocks "github.com/hearthside/hearth/internal/family/http/mocks"
	recordsHTTP "github.com/hearthside/hearth/internal/records/http"
	recordsMocks "github.com/hearthside/hearth/internal/records/http/mocks"
	userDomain "github.com/hearthside/hearth/internal/user/domain"
	userHTTP "github.com/hearthside/hearth/internal/user/http"
	userMocks "github.com/hearthside/hearth/internal/user/http/mocks"
)

// setupFullRouter wires a server with mocked use cases behind real handlers,
// mirroring the assembly done by the DI container.
func setupFullRouter(t *testing.T, sessionStore *serviceMocks.MockSessionStore, userUseCase *userMocks.MockUserUseCase) *Server {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	server := NewServer(nil, "localhost", 8080, logger)

	server.SetupRouter(RouterConfig{
		SessionStore:        sessionStore,
		FamilyHandler:       familyHTTP.NewFamilyHandler(&familyMocks.MockFamilyUseCase{}, logger),
		MemberHandler:       familyHTTP.NewMemberHandler(&familyMocks.MockMemberUseCase{}, logger),
		AppointmentHandler:  recordsHTTP.NewAppointmentHandler(&recordsMocks.MockAppointmentUseCase{}, logger),
		MedicationHandler:   recordsHTTP.NewMedicationHandler(&recordsMocks.MockMedicationUseCase{}, logger),
		AllergyHandler:      recordsHTTP.NewAllergyHandler(&recordsMocks.MockAllergyUseCase{}, logger),
		ConditionHandler:    recordsHTTP.NewConditionHandler(&recordsMocks.MockConditionUseCase{}, logger),
		VaccinationHandler:  recordsHTTP.NewVaccinationHandler(&recordsMocks.MockVaccinationUseCase{}, logger),
		NotificationHandler: recordsHTTP.NewNotificationHandler(&recordsMocks.MockNotificationUseCase{}, logger),
		UserHandler:         userHTTP.NewUserHandler(userUseCase, logger),
		TwoFactorHandler:    authHTTP.NewTwoFactorHandler(&authMocks.MockTwoFactorUseCase{}, logger),
	})

	return server
}

func TestSetupRouter(t *testing.T) {
	t.Run("Success_HealthWithoutSession", func(t *testing.T) {
		server := setupFullRouter(t, &serviceMocks.MockSessionStore{}, &userMocks.MockUserUseCase{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		server.GetHandler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Error_MissingSessionToken", func(t *testing.T) {
		server := setupFullRouter(t, &serviceMocks.MockSessionStore{}, &userMocks.MockUserUseCase{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/users/me", nil)
		server.GetHandler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Success_SessionResolvedThroughRouter", func(t *testing.T) {
		session := &authDomain.Session{
			Token:     "session-token",
			UserID:    uuid.Must(uuid.NewV7()),
			FamilyID:  uuid.Must(uuid.NewV7()),
			ExpiresAt: time.Now().UTC().Add(time.Hour),
		}

		sessionStore := &serviceMocks.MockSessionStore{}
		sessionStore.On("Get", mock.Anything, "session-token").Return(session, nil)

		userUseCase := &userMocks.MockUserUseCase{}
		userUseCase.On("Get", mock.Anything, session.UserID).Return(&userDomain.UserOutput{
			ID:       session.UserID,
			FamilyID: session.FamilyID,
			Email:    "ada@example.com",
		}, nil)

		server := setupFullRouter(t, sessionStore, userUseCase)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/users/me", nil)
		req.Header.Set("Authorization", "Bearer session-token")
		server.GetHandler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		sessionStore.AssertExpectations(t)
		userUseCase.AssertExpectations(t)
	})

	t.Run("Error_ForeignFamilyScope", func(t *testing.T) {
		session := &authDomain.Session{
			Token:     "session-token",
			UserID:    uuid.Must(uuid.NewV7()),
			FamilyID:  uuid.Must(uuid.NewV7()),
			ExpiresAt: time.Now().UTC().Add(time.Hour),
		}

		sessionStore := &serviceMocks.MockSessionStore{}
		sessionStore.On("Get", mock.Anything, "session-token").Return(session, nil)

		server := setupFullRouter(t, sessionStore, &userMocks.MockUserUseCase{})

		otherFamily := uuid.Must(uuid.NewV7())
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/families/"+otherFamily.String()+"/members", nil)
		req.Header.Set("Authorization", "Bearer session-token")
		server.GetHandler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
