package domain

import (
	"github.com/hearthside/hearth/internal/errors"
)

// Record-specific error definitions.
var (
	// ErrAppointmentNotFound indicates the requested appointment does not exist.
	ErrAppointmentNotFound = errors.Wrap(errors.ErrNotFound, "appointment not found")

	// ErrMedicationNotFound indicates the requested medication does not exist.
	ErrMedicationNotFound = errors.Wrap(errors.ErrNotFound, "medication not found")

	// ErrAllergyNotFound indicates the requested allergy does not exist.
	ErrAllergyNotFound = errors.Wrap(errors.ErrNotFound, "allergy not found")

	// ErrConditionNotFound indicates the requested condition does not exist.
	ErrConditionNotFound = errors.Wrap(errors.ErrNotFound, "condition not found")

	// ErrVaccinationNotFound indicates the requested vaccination does not exist.
	ErrVaccinationNotFound = errors.Wrap(errors.ErrNotFound, "vaccination not found")

	// ErrNotificationNotFound indicates the requested notification does not exist.
	ErrNotificationNotFound = errors.Wrap(errors.ErrNotFound, "notification not found")
)
