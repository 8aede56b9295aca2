package usecase_test

import (
	"context"
	"crypto/rand"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/hearthside/hearth/internal/crypto/domain"
	cryptoService "github.com/hearthside/hearth/internal/crypto/service"
	serviceMocks "github.com/hearthside/hearth/internal/crypto/service/mocks"
	cryptoUsecase "github.com/hearthside/hearth/internal/crypto/usecase"
	cryptoUsecaseMocks "github.com/hearthside/hearth/internal/crypto/usecase/mocks"
	databaseMocks "github.com/hearthside/hearth/internal/database/mocks"
	apperrors "github.com/hearthside/hearth/internal/errors"
	outboxDomain "github.com/hearthside/hearth/internal/outbox/domain"
	userDomain "github.com/hearthside/hearth/internal/user/domain"
	userService "github.com/hearthside/hearth/internal/user/service"
	"github.com/hearthside/hearth/internal/user/usecase"
	userMocks "github.com/hearthside/hearth/internal/user/usecase/mocks"
)

// userTestStack wires a real field codec, password service, and family key
// use case over mocked persistence and key service.
type userTestStack struct {
	userRepo        *userMocks.MockUserRepository
	outboxRepo      *userMocks.MockOutboxEventRepository
	familyKeyRepo   *cryptoUsecaseMocks.MockFamilyKeyRepository
	dekManager      *serviceMocks.MockDekManager
	fieldCodec      *cryptoService.FieldCodec
	keyUseCase      cryptoUsecase.FamilyKeyUseCase
	passwordService userService.PasswordService
	dek             []byte
}

func newUserTestStack(t *testing.T) *userTestStack {
	t.Helper()
	dek := make([]byte, cryptoDomain.KeySize)
	_, err := rand.Read(dek)
	require.NoError(t, err)

	fieldCodec, err := cryptoService.NewFieldCodec(cryptoService.NewAEADManager(), cryptoDomain.AESGCM)
	require.NoError(t, err)

	passwordService, err := userService.NewPasswordService()
	require.NoError(t, err)

	stack := &userTestStack{
		userRepo:        &userMocks.MockUserRepository{},
		outboxRepo:      &userMocks.MockOutboxEventRepository{},
		familyKeyRepo:   &cryptoUsecaseMocks.MockFamilyKeyRepository{},
		dekManager:      &serviceMocks.MockDekManager{},
		fieldCodec:      fieldCodec,
		passwordService: passwordService,
		dek:             dek,
	}
	stack.keyUseCase = cryptoUsecase.NewFamilyKeyUseCase(stack.familyKeyRepo, stack.dekManager, 0)
	return stack
}

func (s *userTestStack) expectResolve(familyID uuid.UUID) {
	s.familyKeyRepo.On("GetByFamilyID", mock.Anything, familyID).Return(&cryptoDomain.FamilyKey{
		FamilyID:   familyID,
		WrappedDek: "wrapped-dek",
		CreatedAt:  time.Now().UTC(),
	}, nil)
	s.dekManager.On("Unwrap", mock.Anything, "wrapped-dek").Return(s.dek, nil)
}

func (s *userTestStack) newUseCase() usecase.UserUseCase {
	return usecase.NewUserUseCase(
		&databaseMocks.MockTxManager{},
		s.userRepo,
		s.outboxRepo,
		s.keyUseCase,
		s.fieldCodec,
		s.passwordService,
	)
}

// sealUser builds a stored user row: encrypted names, hashed password,
// no attached key.
func (s *userTestStack) sealUser(
	t *testing.T,
	familyID uuid.UUID,
	email, password, firstName, lastName string,
) *userDomain.User {
	t.Helper()
	hash, err := s.passwordService.Hash(password)
	require.NoError(t, err)

	now := time.Now().UTC()
	user := &userDomain.User{
		ID:           uuid.Must(uuid.NewV7()),
		FamilyID:     familyID,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	key := make([]byte, len(s.dek))
	copy(key, s.dek)
	handle, err := cryptoDomain.NewKeyHandle(familyID, key)
	require.NoError(t, err)
	defer handle.Close()

	require.NoError(t, cryptoDomain.Attach(handle, user))
	require.NoError(t, s.fieldCodec.SetField(user, "first_name", &firstName))
	require.NoError(t, s.fieldCodec.SetField(user, "last_name", &lastName))
	user.AttachKey(nil)
	return user
}

func userInput(familyID uuid.UUID) *userDomain.UserInput {
	return &userDomain.UserInput{
		FamilyID:  familyID,
		Email:     "Ada.Lovelace@Example.com",
		Password:  "Sup3r-secret!",
		FirstName: "Ada",
		LastName:  "Lovelace",
	}
}

func TestUserUseCase_Create(t *testing.T) {
	ctx := context.Background()
	familyID := uuid.Must(uuid.NewV7())

	t.Run("Success", func(t *testing.T) {
		stack := newUserTestStack(t)
		stack.expectResolve(familyID)

		var stored *userDomain.User
		stack.userRepo.On("Create", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				stored = args.Get(1).(*userDomain.User)
			}).
			Return(nil)
		stack.outboxRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		output, err := stack.newUseCase().Create(ctx, userInput(familyID))
		require.NoError(t, err)

		assert.Equal(t, "ada.lovelace@example.com", output.Email)
		assert.Equal(t, "Ada", output.FirstName)
		assert.Equal(t, "Lovelace", output.LastName)
		assert.False(t, output.TOTPEnabled)

		// The stored row holds ciphertext names and a password hash only.
		require.NotNil(t, stored)
		firstName := stored.FirstName.Ciphertext()
		require.NotNil(t, firstName)
		assert.True(t, strings.HasPrefix(*firstName, cryptoDomain.ArmorPrefix))
		assert.NotContains(t, *firstName, "Ada")
		assert.NotEqual(t, "Sup3r-secret!", stored.PasswordHash)
		assert.Nil(t, stored.TOTPSecret)

		// The outbox event carries identifiers only.
		event := stack.outboxRepo.Calls[0].Arguments.Get(1).(*outboxDomain.OutboxEvent)
		assert.Equal(t, "user.created", event.EventType)
		assert.NotContains(t, event.Payload, "Ada")
		assert.NotContains(t, event.Payload, "Sup3r-secret!")
		assert.Contains(t, event.Payload, stored.ID.String())
	})

	t.Run("WeakPasswordRejected", func(t *testing.T) {
		stack := newUserTestStack(t)
		input := userInput(familyID)
		input.Password = "password"

		_, err := stack.newUseCase().Create(ctx, input)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		stack.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("MissingFamilyRejected", func(t *testing.T) {
		stack := newUserTestStack(t)
		input := userInput(uuid.Nil)

		_, err := stack.newUseCase().Create(ctx, input)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}

func TestUserUseCase_Authenticate(t *testing.T) {
	ctx := context.Background()
	familyID := uuid.Must(uuid.NewV7())

	t.Run("Success", func(t *testing.T) {
		stack := newUserTestStack(t)
		stack.expectResolve(familyID)
		stored := stack.sealUser(t, familyID, "ada@example.com", "Sup3r-secret!", "Ada", "Lovelace")
		stack.userRepo.On("GetByEmail", mock.Anything, "ada@example.com").Return(stored, nil)

		output, err := stack.newUseCase().Authenticate(ctx, "Ada@Example.com", "Sup3r-secret!")
		require.NoError(t, err)
		assert.Equal(t, stored.ID, output.ID)
		assert.Equal(t, "Ada", output.FirstName)
		assert.Equal(t, "Lovelace", output.LastName)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		stack := newUserTestStack(t)
		stored := stack.sealUser(t, familyID, "ada@example.com", "Sup3r-secret!", "Ada", "Lovelace")
		stack.userRepo.On("GetByEmail", mock.Anything, "ada@example.com").Return(stored, nil)

		_, err := stack.newUseCase().Authenticate(ctx, "ada@example.com", "wrong-password")
		assert.ErrorIs(t, err, userDomain.ErrInvalidCredentials)
		// The family key is never resolved for a failed login.
		stack.familyKeyRepo.AssertNotCalled(t, "GetByFamilyID", mock.Anything, mock.Anything)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		stack := newUserTestStack(t)
		stack.userRepo.On("GetByEmail", mock.Anything, "nobody@example.com").
			Return(nil, userDomain.ErrUserNotFound)

		_, err := stack.newUseCase().Authenticate(ctx, "nobody@example.com", "Sup3r-secret!")
		assert.ErrorIs(t, err, userDomain.ErrInvalidCredentials)
	})
}

func TestUserUseCase_Get(t *testing.T) {
	ctx := context.Background()
	familyID := uuid.Must(uuid.NewV7())

	stack := newUserTestStack(t)
	stack.expectResolve(familyID)
	stored := stack.sealUser(t, familyID, "ada@example.com", "Sup3r-secret!", "Ada", "Lovelace")
	stored.TOTPEnabled = true
	stack.userRepo.On("GetByID", mock.Anything, stored.ID).Return(stored, nil)

	output, err := stack.newUseCase().Get(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", output.Email)
	assert.Equal(t, "Ada", output.FirstName)
	assert.True(t, output.TOTPEnabled)
}
