package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/hearthside/hearth/internal/auth/domain"
	authService "github.com/hearthside/hearth/internal/auth/service"
	cryptoService "github.com/hearthside/hearth/internal/crypto/service"
)

// twoFactorUseCase implements the TwoFactorUseCase interface.
type twoFactorUseCase struct {
	userRepo    UserRepository
	secretBox   *cryptoService.SecretBox
	totpService authService.TOTPService
	issuer      string
	now         func() time.Time
}

// NewTwoFactorUseCase creates a new TwoFactorUseCase instance. The issuer
// names this deployment in authenticator apps.
func NewTwoFactorUseCase(
	userRepo UserRepository,
	secretBox *cryptoService.SecretBox,
	totpService authService.TOTPService,
	issuer string,
) TwoFactorUseCase {
	return &twoFactorUseCase{
		userRepo:    userRepo,
		secretBox:   secretBox,
		totpService: totpService,
		issuer:      issuer,
		now:         time.Now,
	}
}

// Setup generates and stores a sealed TOTP seed for the user.
func (t *twoFactorUseCase) Setup(
	ctx context.Context,
	userID uuid.UUID,
) (*authDomain.TwoFactorSetup, error) {
	user, err := t.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.TOTPEnabled {
		return nil, authDomain.ErrTwoFactorAlreadyEnabled
	}

	secret, err := t.totpService.GenerateSecret()
	if err != nil {
		return nil, err
	}

	sealed, err := t.secretBox.Encrypt(secret)
	if err != nil {
		return nil, err
	}

	user.TOTPSecret = &sealed
	user.TOTPEnabled = false
	user.UpdatedAt = t.now().UTC()
	if err := t.userRepo.UpdateTwoFactor(ctx, user); err != nil {
		return nil, err
	}

	return &authDomain.TwoFactorSetup{
		Secret:       secret,
		ProvisionURI: t.totpService.ProvisionURI(user.Email, t.issuer, secret),
	}, nil
}

// Verify checks a code against the user's sealed seed, enabling two-factor
// on the first success.
func (t *twoFactorUseCase) Verify(ctx context.Context, userID uuid.UUID, code string) error {
	user, err := t.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.TOTPSecret == nil {
		return authDomain.ErrTwoFactorNotConfigured
	}

	secret, err := t.secretBox.Decrypt(*user.TOTPSecret)
	if err != nil {
		return err
	}

	if !t.totpService.Verify(strings.TrimSpace(code), secret, t.now().UTC()) {
		return authDomain.ErrInvalidTwoFactorCode
	}

	if !user.TOTPEnabled {
		user.TOTPEnabled = true
		user.UpdatedAt = t.now().UTC()
		return t.userRepo.UpdateTwoFactor(ctx, user)
	}
	return nil
}

// Disable clears the user's seed and turns two-factor off.
func (t *twoFactorUseCase) Disable(ctx context.Context, userID uuid.UUID) error {
	user, err := t.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	user.TOTPSecret = nil
	user.TOTPEnabled = false
	user.UpdatedAt = t.now().UTC()
	return t.userRepo.UpdateTwoFactor(ctx, user)
}
