package app

import (
	"fmt"

	authService "github.com/hearthside/hearth/internal/auth/service"
	authUseCase "github.com/hearthside/hearth/internal/auth/usecase"
)

// SessionStore returns the session store used by the session middleware.
func (c *Container) SessionStore() authService.SessionStore {
	c.sessionStoreInit.Do(func() {
		c.sessionStore = authService.NewMemorySessionStore()
	})
	return c.sessionStore
}

// TOTPService returns the TOTP verification service.
func (c *Container) TOTPService() authService.TOTPService {
	c.totpServiceInit.Do(func() {
		c.totpService = authService.NewTOTPService()
	})
	return c.totpService
}

// TwoFactorUseCase returns the two-factor enrollment use case.
func (c *Container) TwoFactorUseCase() (authUseCase.TwoFactorUseCase, error) {
	var err error
	c.twoFactorInit.Do(func() {
		c.twoFactorUseCase, err = c.initTwoFactorUseCase()
		if err != nil {
			c.initErrors["twoFactorUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["twoFactorUseCase"]; exists {
		return nil, storedErr
	}
	return c.twoFactorUseCase, nil
}

// initTwoFactorUseCase creates the two-factor use case with all its dependencies.
func (c *Container) initTwoFactorUseCase() (authUseCase.TwoFactorUseCase, error) {
	userRepo, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for two-factor use case: %w", err)
	}

	secretBox, err := c.SecretBox()
	if err != nil {
		return nil, fmt.Errorf("failed to get secret box: %w", err)
	}

	useCase := authUseCase.NewTwoFactorUseCase(
		userRepo,
		secretBox,
		c.TOTPService(),
		c.config.TOTPIssuer,
	)

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics: %w", err)
	}

	return authUseCase.NewTwoFactorUseCaseWithMetrics(useCase, businessMetrics), nil
}
