package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	cryptoService "github.com/hearthside/hearth/internal/crypto/service"
	cryptoUsecase "github.com/hearthside/hearth/internal/crypto/usecase"
	"github.com/hearthside/hearth/internal/database"
	apperrors "github.com/hearthside/hearth/internal/errors"
	outboxDomain "github.com/hearthside/hearth/internal/outbox/domain"
	userDomain "github.com/hearthside/hearth/internal/user/domain"
	userService "github.com/hearthside/hearth/internal/user/service"
	appValidation "github.com/hearthside/hearth/internal/validation"
)

// userUseCase implements the UserUseCase interface.
type userUseCase struct {
	txManager        database.TxManager
	userRepo         UserRepository
	outboxRepo       OutboxEventRepository
	familyKeyUseCase cryptoUsecase.FamilyKeyUseCase
	fieldCodec       *cryptoService.FieldCodec
	passwordService  userService.PasswordService
}

// NewUserUseCase creates a new UserUseCase instance.
func NewUserUseCase(
	txManager database.TxManager,
	userRepo UserRepository,
	outboxRepo OutboxEventRepository,
	familyKeyUseCase cryptoUsecase.FamilyKeyUseCase,
	fieldCodec *cryptoService.FieldCodec,
	passwordService userService.PasswordService,
) UserUseCase {
	return &userUseCase{
		txManager:        txManager,
		userRepo:         userRepo,
		outboxRepo:       outboxRepo,
		familyKeyUseCase: familyKeyUseCase,
		fieldCodec:       fieldCodec,
		passwordService:  passwordService,
	}
}

// validateCreateInput validates the registration input.
func (u *userUseCase) validateCreateInput(input *userDomain.UserInput) error {
	err := validation.ValidateStruct(input,
		validation.Field(&input.Email,
			validation.Required.Error("email is required"),
			appValidation.NotBlank,
			appValidation.Email,
			validation.Length(5, 255).Error("email must be between 5 and 255 characters"),
		),
		validation.Field(&input.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 128).Error("password must be between 8 and 128 characters"),
			appValidation.PasswordStrength{
				MinLength:      8,
				RequireUpper:   true,
				RequireLower:   true,
				RequireNumber:  true,
				RequireSpecial: true,
			},
		),
		validation.Field(&input.FirstName,
			validation.Required.Error("first name is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("first name must be between 1 and 255 characters"),
		),
		validation.Field(&input.LastName,
			validation.Required.Error("last name is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("last name must be between 1 and 255 characters"),
		),
	)
	if err != nil {
		return appValidation.WrapValidationError(err)
	}
	if input.FamilyID == uuid.Nil {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "family id is required")
	}
	return nil
}

// Create registers a user in an existing family.
func (u *userUseCase) Create(
	ctx context.Context,
	input *userDomain.UserInput,
) (*userDomain.UserOutput, error) {
	if err := u.validateCreateInput(input); err != nil {
		return nil, err
	}

	passwordHash, err := u.passwordService.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &userDomain.User{
		ID:           uuid.Must(uuid.NewV7()),
		FamilyID:     input.FamilyID,
		Email:        strings.TrimSpace(strings.ToLower(input.Email)),
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	handle, err := u.familyKeyUseCase.Attach(ctx, input.FamilyID, user)
	if err != nil {
		return nil, err
	}
	defer handle.Close()

	if err := u.fieldCodec.Set(user, &user.FirstName, &input.FirstName); err != nil {
		return nil, err
	}
	if err := u.fieldCodec.Set(user, &user.LastName, &input.LastName); err != nil {
		return nil, err
	}

	err = u.txManager.WithTx(ctx, func(txCtx context.Context) error {
		if err := u.userRepo.Create(txCtx, user); err != nil {
			return err
		}

		// The event payload carries identifiers only; profile plaintext
		// never leaves the encrypted columns.
		payload, err := json.Marshal(map[string]any{
			"user_id":   user.ID,
			"family_id": user.FamilyID,
		})
		if err != nil {
			return apperrors.Wrap(err, "failed to marshal event payload")
		}

		event := &outboxDomain.OutboxEvent{
			ID:        uuid.Must(uuid.NewV7()),
			EventType: "user.created",
			Payload:   string(payload),
			Status:    outboxDomain.OutboxEventStatusPending,
		}
		return u.outboxRepo.Create(txCtx, event)
	})
	if err != nil {
		return nil, err
	}

	return &userDomain.UserOutput{
		ID:        user.ID,
		FamilyID:  user.FamilyID,
		Email:     user.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}, nil
}

// Get returns the decrypted view of one user.
func (u *userUseCase) Get(
	ctx context.Context,
	userID uuid.UUID,
) (*userDomain.UserOutput, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	handle, err := u.familyKeyUseCase.Attach(ctx, user.FamilyID, user)
	if err != nil {
		return nil, err
	}
	defer handle.Close()

	return u.toOutput(user)
}

// Authenticate verifies an email/password pair.
func (u *userUseCase) Authenticate(
	ctx context.Context,
	email, password string,
) (*userDomain.UserOutput, error) {
	user, err := u.userRepo.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return nil, userDomain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !u.passwordService.Compare(password, user.PasswordHash) {
		return nil, userDomain.ErrInvalidCredentials
	}

	handle, err := u.familyKeyUseCase.Attach(ctx, user.FamilyID, user)
	if err != nil {
		return nil, err
	}
	defer handle.Close()

	return u.toOutput(user)
}

// toOutput decrypts a hydrated user into its plaintext view.
func (u *userUseCase) toOutput(user *userDomain.User) (*userDomain.UserOutput, error) {
	firstName, err := u.fieldCodec.Get(user, &user.FirstName)
	if err != nil {
		return nil, err
	}
	lastName, err := u.fieldCodec.Get(user, &user.LastName)
	if err != nil {
		return nil, err
	}

	output := &userDomain.UserOutput{
		ID:          user.ID,
		FamilyID:    user.FamilyID,
		Email:       user.Email,
		TOTPEnabled: user.TOTPEnabled,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
	if firstName != nil {
		output.FirstName = *firstName
	}
	if lastName != nil {
		output.LastName = *lastName
	}
	return output, nil
}
