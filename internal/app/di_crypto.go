package app

import (
	"context"
	"encoding/base64"
	"fmt"

	cryptoDomain "github.com/hearthside/hearth/internal/crypto/domain"
	cryptoRepository "github.com/hearthside/hearth/internal/crypto/repository"
	cryptoService "github.com/hearthside/hearth/internal/crypto/service"
	cryptoUseCase "github.com/hearthside/hearth/internal/crypto/usecase"
)

// KMSService returns the KMS service.
func (c *Container) KMSService() cryptoService.KMSService {
	c.kmsServiceInit.Do(func() {
		c.kmsService = cryptoService.NewKMSService()
	})
	return c.kmsService
}

// AEADManager returns the AEAD manager service.
func (c *Container) AEADManager() cryptoService.AEADManager {
	c.aeadManagerInit.Do(func() {
		c.aeadManager = cryptoService.NewAEADManager()
	})
	return c.aeadManager
}

// DekManager returns the DEK manager backed by the configured KMS keeper.
func (c *Container) DekManager() (cryptoService.DekManager, error) {
	var err error
	c.dekManagerInit.Do(func() {
		c.dekManager, err = c.initDekManager()
		if err != nil {
			c.initErrors["dekManager"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["dekManager"]; exists {
		return nil, storedErr
	}
	return c.dekManager, nil
}

// FieldCodec returns the field codec configured with the field algorithm.
func (c *Container) FieldCodec() (*cryptoService.FieldCodec, error) {
	var err error
	c.fieldCodecInit.Do(func() {
		c.fieldCodec, err = cryptoService.NewFieldCodec(
			c.AEADManager(),
			cryptoDomain.Algorithm(c.config.FieldAlgorithm),
		)
		if err != nil {
			c.initErrors["fieldCodec"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["fieldCodec"]; exists {
		return nil, storedErr
	}
	return c.fieldCodec, nil
}

// SecretBox returns the application secret box keyed by APP_SECRET_KEY.
func (c *Container) SecretBox() (*cryptoService.SecretBox, error) {
	var err error
	c.secretBoxInit.Do(func() {
		c.secretBox, err = c.initSecretBox()
		if err != nil {
			c.initErrors["secretBox"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["secretBox"]; exists {
		return nil, storedErr
	}
	return c.secretBox, nil
}

// FamilyKeyRepository returns the family key repository based on the database driver.
func (c *Container) FamilyKeyRepository() (cryptoUseCase.FamilyKeyRepository, error) {
	var err error
	c.familyKeyRepoInit.Do(func() {
		c.familyKeyRepo, err = c.initFamilyKeyRepository()
		if err != nil {
			c.initErrors["familyKeyRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["familyKeyRepo"]; exists {
		return nil, storedErr
	}
	return c.familyKeyRepo, nil
}

// FamilyKeyUseCase returns the family key use case.
func (c *Container) FamilyKeyUseCase() (cryptoUseCase.FamilyKeyUseCase, error) {
	var err error
	c.familyKeyUseCaseInit.Do(func() {
		c.familyKeyUseCase, err = c.initFamilyKeyUseCase()
		if err != nil {
			c.initErrors["familyKeyUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["familyKeyUseCase"]; exists {
		return nil, storedErr
	}
	return c.familyKeyUseCase, nil
}

// initDekManager opens the KMS keeper for the configured KEK and wraps it
// into a DEK manager.
func (c *Container) initDekManager() (cryptoService.DekManager, error) {
	if c.config.KMSKeyURI == "" {
		return nil, fmt.Errorf("KMS_KEY_URI is not configured")
	}

	keeper, err := c.KMSService().OpenKeeper(context.Background(), c.config.KMSKeyURI)
	if err != nil {
		return nil, fmt.Errorf("failed to open KMS keeper: %w", err)
	}

	return cryptoService.NewDekManager(cryptoService.NewKMSKeyWrapper(keeper)), nil
}

// initSecretBox decodes APP_SECRET_KEY and creates the secret box.
func (c *Container) initSecretBox() (*cryptoService.SecretBox, error) {
	if c.config.AppSecretKey == "" {
		return nil, fmt.Errorf("APP_SECRET_KEY is not configured")
	}

	key, err := base64.StdEncoding.DecodeString(c.config.AppSecretKey)
	if err != nil {
		return nil, fmt.Errorf("APP_SECRET_KEY is not valid base64: %w", err)
	}

	secretBox, err := cryptoService.NewSecretBox(c.AEADManager(), key)
	if err != nil {
		return nil, fmt.Errorf("failed to create secret box: %w", err)
	}

	return secretBox, nil
}

// initFamilyKeyRepository creates the family key repository based on the database driver.
func (c *Container) initFamilyKeyRepository() (cryptoUseCase.FamilyKeyRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for family key repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return cryptoRepository.NewPostgreSQLFamilyKeyRepository(db), nil
	case "mysql":
		return cryptoRepository.NewMySQLFamilyKeyRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initFamilyKeyUseCase creates the family key use case with optional DEK caching.
func (c *Container) initFamilyKeyUseCase() (cryptoUseCase.FamilyKeyUseCase, error) {
	familyKeyRepo, err := c.FamilyKeyRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get family key repository: %w", err)
	}

	dekManager, err := c.DekManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get dek manager: %w", err)
	}

	cacheTTL := c.config.DekCacheTTL
	if !c.config.DekCacheEnabled {
		cacheTTL = 0
	}

	useCase := cryptoUseCase.NewFamilyKeyUseCase(familyKeyRepo, dekManager, cacheTTL)

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics: %w", err)
	}

	return cryptoUseCase.NewFamilyKeyUseCaseWithMetrics(useCase, businessMetrics), nil
}
