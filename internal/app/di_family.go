package app

import (
	"fmt"

	familyRepository "github.com/hearthside/hearth/internal/family/repository"
	familyUseCase "github.com/hearthside/hearth/internal/family/usecase"
)

// FamilyRepository returns the family repository based on the database driver.
func (c *Container) FamilyRepository() (familyUseCase.FamilyRepository, error) {
	var err error
	c.familyRepoInit.Do(func() {
		c.familyRepo, err = c.initFamilyRepository()
		if err != nil {
			c.initErrors["familyRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["familyRepo"]; exists {
		return nil, storedErr
	}
	return c.familyRepo, nil
}

// MemberRepository returns the family member repository based on the database driver.
func (c *Container) MemberRepository() (familyUseCase.MemberRepository, error) {
	var err error
	c.memberRepoInit.Do(func() {
		c.memberRepo, err = c.initMemberRepository()
		if err != nil {
			c.initErrors["memberRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["memberRepo"]; exists {
		return nil, storedErr
	}
	return c.memberRepo, nil
}

// FamilyUseCase returns the family use case instance.
func (c *Container) FamilyUseCase() (familyUseCase.FamilyUseCase, error) {
	var err error
	c.familyUseCaseInit.Do(func() {
		c.familyUseCase, err = c.initFamilyUseCase()
		if err != nil {
			c.initErrors["familyUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["familyUseCase"]; exists {
		return nil, storedErr
	}
	return c.familyUseCase, nil
}

// MemberUseCase returns the family member use case instance.
func (c *Container) MemberUseCase() (familyUseCase.MemberUseCase, error) {
	var err error
	c.memberUseCaseInit.Do(func() {
		c.memberUseCase, err = c.initMemberUseCase()
		if err != nil {
			c.initErrors["memberUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["memberUseCase"]; exists {
		return nil, storedErr
	}
	return c.memberUseCase, nil
}

// initFamilyRepository creates the family repository based on the database driver.
func (c *Container) initFamilyRepository() (familyUseCase.FamilyRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for family repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return familyRepository.NewPostgreSQLFamilyRepository(db), nil
	case "mysql":
		return familyRepository.NewMySQLFamilyRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initMemberRepository creates the member repository based on the database driver.
func (c *Container) initMemberRepository() (familyUseCase.MemberRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for member repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return familyRepository.NewPostgreSQLMemberRepository(db), nil
	case "mysql":
		return familyRepository.NewMySQLMemberRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initFamilyUseCase creates the family use case with all its dependencies.
func (c *Container) initFamilyUseCase() (familyUseCase.FamilyUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for family use case: %w", err)
	}

	familyRepo, err := c.FamilyRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get family repository: %w", err)
	}

	familyKeyUseCase, err := c.FamilyKeyUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get family key use case: %w", err)
	}

	fieldCodec, err := c.FieldCodec()
	if err != nil {
		return nil, fmt.Errorf("failed to get field codec: %w", err)
	}

	useCase := familyUseCase.NewFamilyUseCase(txManager, familyRepo, familyKeyUseCase, fieldCodec)

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics: %w", err)
	}

	return familyUseCase.NewFamilyUseCaseWithMetrics(useCase, businessMetrics), nil
}

// initMemberUseCase creates the member use case with all its dependencies.
func (c *Container) initMemberUseCase() (familyUseCase.MemberUseCase, error) {
	memberRepo, err := c.MemberRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get member repository: %w", err)
	}

	familyKeyUseCase, err := c.FamilyKeyUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get family key use case: %w", err)
	}

	fieldCodec, err := c.FieldCodec()
	if err != nil {
		return nil, fmt.Errorf("failed to get field codec: %w", err)
	}

	useCase := familyUseCase.NewMemberUseCase(memberRepo, familyKeyUseCase, fieldCodec)

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics: %w", err)
	}

	return familyUseCase.NewMemberUseCaseWithMetrics(useCase, businessMetrics), nil
}
