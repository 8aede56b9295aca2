package app

import (
	"fmt"

	recordsRepository "github.com/hearthside/hearth/internal/records/repository"
	recordsUseCase "github.com/hearthside/hearth/internal/records/usecase"
)

// RecordsRepositories initializes the health record repositories together,
// since they always share the same driver selection.
func (c *Container) RecordsRepositories() error {
	var err error
	c.recordsReposInit.Do(func() {
		err = c.initRecordsRepositories()
		if err != nil {
			c.initErrors["recordsRepos"] = err
		}
	})
	if err != nil {
		return err
	}
	if storedErr, exists := c.initErrors["recordsRepos"]; exists {
		return storedErr
	}
	return nil
}

// AppointmentUseCase returns the appointment use case instance.
func (c *Container) AppointmentUseCase() (recordsUseCase.AppointmentUseCase, error) {
	if err := c.ensureRecordsUseCases(); err != nil {
		return nil, err
	}
	return c.appointmentUseCase, nil
}

// MedicationUseCase returns the medication use case instance.
func (c *Container) MedicationUseCase() (recordsUseCase.MedicationUseCase, error) {
	if err := c.ensureRecordsUseCases(); err != nil {
		return nil, err
	}
	return c.medicationUseCase, nil
}

// AllergyUseCase returns the allergy use case instance.
func (c *Container) AllergyUseCase() (recordsUseCase.AllergyUseCase, error) {
	if err := c.ensureRecordsUseCases(); err != nil {
		return nil, err
	}
	return c.allergyUseCase, nil
}

// ConditionUseCase returns the condition use case instance.
func (c *Container) ConditionUseCase() (recordsUseCase.ConditionUseCase, error) {
	if err := c.ensureRecordsUseCases(); err != nil {
		return nil, err
	}
	return c.conditionUseCase, nil
}

// VaccinationUseCase returns the vaccination use case instance.
func (c *Container) VaccinationUseCase() (recordsUseCase.VaccinationUseCase, error) {
	if err := c.ensureRecordsUseCases(); err != nil {
		return nil, err
	}
	return c.vaccinationUseCase, nil
}

// NotificationUseCase returns the notification use case instance.
func (c *Container) NotificationUseCase() (recordsUseCase.NotificationUseCase, error) {
	if err := c.ensureRecordsUseCases(); err != nil {
		return nil, err
	}
	return c.notificationUseCase, nil
}

// ensureRecordsUseCases initializes all record use cases on first access.
func (c *Container) ensureRecordsUseCases() error {
	var err error
	c.recordsUseCasesInit.Do(func() {
		err = c.initRecordsUseCases()
		if err != nil {
			c.initErrors["recordsUseCases"] = err
		}
	})
	if err != nil {
		return err
	}
	if storedErr, exists := c.initErrors["recordsUseCases"]; exists {
		return storedErr
	}
	return nil
}

// initRecordsRepositories creates all record repositories based on the database driver.
func (c *Container) initRecordsRepositories() error {
	db, err := c.DB()
	if err != nil {
		return fmt.Errorf("failed to get database for records repositories: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		c.appointmentRepo = recordsRepository.NewPostgreSQLAppointmentRepository(db)
		c.medicationRepo = recordsRepository.NewPostgreSQLMedicationRepository(db)
		c.allergyRepo = recordsRepository.NewPostgreSQLAllergyRepository(db)
		c.conditionRepo = recordsRepository.NewPostgreSQLConditionRepository(db)
		c.vaccinationRepo = recordsRepository.NewPostgreSQLVaccinationRepository(db)
		c.notificationRepo = recordsRepository.NewPostgreSQLNotificationRepository(db)
	case "mysql":
		c.appointmentRepo = recordsRepository.NewMySQLAppointmentRepository(db)
		c.medicationRepo = recordsRepository.NewMySQLMedicationRepository(db)
		c.allergyRepo = recordsRepository.NewMySQLAllergyRepository(db)
		c.conditionRepo = recordsRepository.NewMySQLConditionRepository(db)
		c.vaccinationRepo = recordsRepository.NewMySQLVaccinationRepository(db)
		c.notificationRepo = recordsRepository.NewMySQLNotificationRepository(db)
	default:
		return fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}

	return nil
}

// initRecordsUseCases creates all record use cases with their shared dependencies.
func (c *Container) initRecordsUseCases() error {
	if err := c.RecordsRepositories(); err != nil {
		return err
	}

	familyKeyUseCase, err := c.FamilyKeyUseCase()
	if err != nil {
		return fmt.Errorf("failed to get family key use case: %w", err)
	}

	fieldCodec, err := c.FieldCodec()
	if err != nil {
		return fmt.Errorf("failed to get field codec: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return fmt.Errorf("failed to get business metrics: %w", err)
	}

	c.appointmentUseCase = recordsUseCase.NewAppointmentUseCaseWithMetrics(
		recordsUseCase.NewAppointmentUseCase(c.appointmentRepo, familyKeyUseCase, fieldCodec),
		businessMetrics,
	)
	c.medicationUseCase = recordsUseCase.NewMedicationUseCaseWithMetrics(
		recordsUseCase.NewMedicationUseCase(c.medicationRepo, familyKeyUseCase, fieldCodec),
		businessMetrics,
	)
	c.allergyUseCase = recordsUseCase.NewAllergyUseCaseWithMetrics(
		recordsUseCase.NewAllergyUseCase(c.allergyRepo, familyKeyUseCase, fieldCodec),
		businessMetrics,
	)
	c.conditionUseCase = recordsUseCase.NewConditionUseCaseWithMetrics(
		recordsUseCase.NewConditionUseCase(c.conditionRepo, familyKeyUseCase, fieldCodec),
		businessMetrics,
	)
	c.vaccinationUseCase = recordsUseCase.NewVaccinationUseCaseWithMetrics(
		recordsUseCase.NewVaccinationUseCase(c.vaccinationRepo, familyKeyUseCase, fieldCodec),
		businessMetrics,
	)
	c.notificationUseCase = recordsUseCase.NewNotificationUseCaseWithMetrics(
		recordsUseCase.NewNotificationUseCase(c.notificationRepo, familyKeyUseCase, fieldCodec),
		businessMetrics,
	)

	return nil
}
