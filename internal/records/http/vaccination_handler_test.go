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

	recordsDomain "github.com/hearthside/hearth/internal/records/domain"
	"github.com/hearthside/hearth/internal/records/http/dto"
	httpMocks "github.com/hearthside/hearth/internal/records/http/mocks"
)

func setupVaccinationTestHandler(t *testing.T) (*VaccinationHandler, *httpMocks.MockVaccinationUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockUseCase := &httpMocks.MockVaccinationUseCase{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewVaccinationHandler(mockUseCase, logger), mockUseCase
}

func vaccinationRequest(memberID uuid.UUID) dto.VaccinationRequest {
	notes := "second dose"
	date := "2026-03-14"
	return dto.VaccinationRequest{
		MemberID: memberID.String(),
		Name:     "Influenza quadrivalent",
		Notes:    &notes,
		Date:     &date,
	}
}

func TestVaccinationHandler_CreateHandler(t *testing.T) {
	familyID := uuid.Must(uuid.NewV7())
	memberID := uuid.Must(uuid.NewV7())
	basePath := "/v1/families/" + familyID.String() + "/vaccinations"

	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupVaccinationTestHandler(t)

		mockUseCase.On("Create", mock.Anything, familyID, mock.Anything).
			Return(&recordsDomain.VaccinationOutput{
				ID:       uuid.Must(uuid.NewV7()),
				FamilyID: familyID,
				MemberID: memberID,
				Name:     "Influenza quadrivalent",
			}, nil).
			Once()

		c, w := createTestContext(http.MethodPost, basePath, vaccinationRequest(memberID))
		c.Params = gin.Params{{Key: "family_id", Value: familyID.String()}}
		handler.CreateHandler(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response dto.VaccinationResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Influenza quadrivalent", response.Name)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_MissingName", func(t *testing.T) {
		handler, mockUseCase := setupVaccinationTestHandler(t)

		request := vaccinationRequest(memberID)
		request.Name = ""
		c, w := createTestContext(http.MethodPost, basePath, request)
		c.Params = gin.Params{{Key: "family_id", Value: familyID.String()}}
		handler.CreateHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		mockUseCase.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Error_BadDate", func(t *testing.T) {
		handler, _ := setupVaccinationTestHandler(t)

		request := vaccinationRequest(memberID)
		badDate := "14/03/2026"
		request.Date = &badDate
		c, w := createTestContext(http.MethodPost, basePath, request)
		c.Params = gin.Params{{Key: "family_id", Value: familyID.String()}}
		handler.CreateHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestVaccinationHandler_ListHandler(t *testing.T) {
	familyID := uuid.Must(uuid.NewV7())
	basePath := "/v1/families/" + familyID.String() + "/vaccinations"

	t.Run("Success_SortedPage", func(t *testing.T) {
		handler, mockUseCase := setupVaccinationTestHandler(t)

		mockUseCase.On("List", mock.Anything, familyID, recordsDomain.ListOptions{
			Limit:    5,
			SortBy:   "date",
			SortDesc: true,
		}).
			Return([]*recordsDomain.VaccinationOutput{
				{ID: uuid.Must(uuid.NewV7()), FamilyID: familyID, Name: "Tetanus booster"},
			}, nil).
			Once()

		c, w := createTestContext(http.MethodGet, basePath+"?limit=5&sort_by=date&sort_order=desc", nil)
		c.Params = gin.Params{{Key: "family_id", Value: familyID.String()}}
		handler.ListHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.ListVaccinationsResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Len(t, response.Data, 1)
	})

	t.Run("Error_BadSortColumn", func(t *testing.T) {
		handler, mockUseCase := setupVaccinationTestHandler(t)

		c, w := createTestContext(http.MethodGet, basePath+"?sort_by=name", nil)
		c.Params = gin.Params{{Key: "family_id", Value: familyID.String()}}
		handler.ListHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		mockUseCase.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestVaccinationHandler_DeleteHandler(t *testing.T) {
	familyID := uuid.Must(uuid.NewV7())
	vaccinationID := uuid.Must(uuid.NewV7())
	path := "/v1/families/" + familyID.String() + "/vaccinations/" + vaccinationID.String()

	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupVaccinationTestHandler(t)

		mockUseCase.On("Delete", mock.Anything, familyID, vaccinationID).Return(nil).Once()

		c, w := createTestContext(http.MethodDelete, path, nil)
		c.Params = gin.Params{
			{Key: "family_id", Value: familyID.String()},
			{Key: "vaccination_id", Value: vaccinationID.String()},
		}
		handler.DeleteHandler(c)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("NotFound", func(t *testing.T) {
		handler, mockUseCase := setupVaccinationTestHandler(t)

		mockUseCase.On("Delete", mock.Anything, familyID, vaccinationID).
			Return(recordsDomain.ErrVaccinationNotFound).
			Once()

		c, w := createTestContext(http.MethodDelete, path, nil)
		c.Params = gin.Params{
			{Key: "family_id", Value: familyID.String()},
			{Key: "vaccination_id", Value: vaccinationID.String()},
		}
		handler.DeleteHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func setupNotificationTestHandler(t *testing.T) (*NotificationHandler, *httpMocks.MockNotificationUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockUseCase := &httpMocks.MockNotificationUseCase{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewNotificationHandler(mockUseCase, logger), mockUseCase
}

func TestNotificationHandler_ListHandler(t *testing.T) {
	familyID := uuid.Must(uuid.NewV7())
	handler, mockUseCase := setupNotificationTestHandler(t)

	mockUseCase.On("List", mock.Anything, familyID).
		Return([]*recordsDomain.NotificationOutput{
			{ID: uuid.Must(uuid.NewV7()), FamilyID: familyID, Message: "Medication refill due"},
			{ID: uuid.Must(uuid.NewV7()), FamilyID: familyID, Message: "Welcome", IsRead: true},
		}, nil).
		Once()

	c, w := createTestContext(http.MethodGet, "/v1/families/"+familyID.String()+"/notifications", nil)
	c.Params = gin.Params{{Key: "family_id", Value: familyID.String()}}
	handler.ListHandler(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.ListNotificationsResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response.Data, 2)
	assert.Equal(t, "Medication refill due", response.Data[0].Message)
	assert.True(t, response.Data[1].IsRead)
}

func TestNotificationHandler_MarkReadHandler(t *testing.T) {
	familyID := uuid.Must(uuid.NewV7())
	notificationID := uuid.Must(uuid.NewV7())
	path := "/v1/families/" + familyID.String() + "/notifications/" + notificationID.String() + "/mark-read"

	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupNotificationTestHandler(t)

		mockUseCase.On("MarkRead", mock.Anything, familyID, notificationID).Return(nil).Once()

		c, w := createTestContext(http.MethodPost, path, nil)
		c.Params = gin.Params{
			{Key: "family_id", Value: familyID.String()},
			{Key: "notification_id", Value: notificationID.String()},
		}
		handler.MarkReadHandler(c)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("NotFound", func(t *testing.T) {
		handler, mockUseCase := setupNotificationTestHandler(t)

		mockUseCase.On("MarkRead", mock.Anything, familyID, notificationID).
			Return(recordsDomain.ErrNotificationNotFound).
			Once()

		c, w := createTestContext(http.MethodPost, path, nil)
		c.Params = gin.Params{
			{Key: "family_id", Value: familyID.String()},
			{Key: "notification_id", Value: notificationID.String()},
		}
		handler.MarkReadHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Error_BadID", func(t *testing.T) {
		handler, mockUseCase := setupNotificationTestHandler(t)

		c, w := createTestContext(http.MethodPost, path, nil)
		c.Params = gin.Params{
			{Key: "family_id", Value: familyID.String()},
			{Key: "notification_id", Value: "not-a-uuid"},
		}
		handler.MarkReadHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		mockUseCase.AssertNotCalled(t, "MarkRead", mock.Anything, mock.Anything, mock.Anything)
	})
}
