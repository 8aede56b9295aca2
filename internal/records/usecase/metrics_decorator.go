package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hearthside/hearth/internal/metrics"
	recordsDomain "github.com/hearthside/hearth/internal/records/domain"
)

func recordMetrics(
	ctx context.Context,
	m metrics.BusinessMetrics,
	operation string,
	start time.Time,
	err error,
) {
	status := "success"
	if err != nil {
		status = "error"
	}
	m.RecordOperation(ctx, "records", operation, status)
	m.RecordDuration(ctx, "records", operation, time.Since(start), status)
}

// appointmentUseCaseWithMetrics decorates AppointmentUseCase with metrics
// instrumentation.
type appointmentUseCaseWithMetrics struct {
	next    AppointmentUseCase
	metrics metrics.BusinessMetrics
}

// NewAppointmentUseCaseWithMetrics wraps an AppointmentUseCase with metrics recording.
func NewAppointmentUseCaseWithMetrics(useCase AppointmentUseCase, m metrics.BusinessMetrics) AppointmentUseCase {
	return &appointmentUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (a *appointmentUseCaseWithMetrics) Create(
	ctx context.Context,
	familyID uuid.UUID,
	input *recordsDomain.AppointmentInput,
) (*recordsDomain.AppointmentOutput, error) {
	start := time.Now()
	output, err := a.next.Create(ctx, familyID, input)
	recordMetrics(ctx, a.metrics, "appointment_create", start, err)
	return output, err
}

func (a *appointmentUseCaseWithMetrics) Get(
	ctx context.Context,
	familyID, appointmentID uuid.UUID,
) (*recordsDomain.AppointmentOutput, error) {
	start := time.Now()
	output, err := a.next.Get(ctx, familyID, appointmentID)
	recordMetrics(ctx, a.metrics, "appointment_get", start, err)
	return output, err
}

func (a *appointmentUseCaseWithMetrics) List(
	ctx context.Context,
	familyID uuid.UUID,
	opts recordsDomain.ListOptions,
) ([]*recordsDomain.AppointmentOutput, error) {
	start := time.Now()
	outputs, err := a.next.List(ctx, familyID, opts)
	recordMetrics(ctx, a.metrics, "appointment_list", start, err)
	return outputs, err
}

func (a *appointmentUseCaseWithMetrics) Update(
	ctx context.Context,
	familyID, appointmentID uuid.UUID,
	input *recordsDomain.AppointmentInput,
) (*recordsDomain.AppointmentOutput, error) {
	start := time.Now()
	output, err := a.next.Update(ctx, familyID, appointmentID, input)
	recordMetrics(ctx, a.metrics, "appointment_update", start, err)
	return output, err
}

func (a *appointmentUseCaseWithMetrics) Delete(ctx context.Context, familyID, appointmentID uuid.UUID) error {
	start := time.Now()
	err := a.next.Delete(ctx, familyID, appointmentID)
	recordMetrics(ctx, a.metrics, "appointment_delete", start, err)
	return err
}

// medicationUseCaseWithMetrics decorates MedicationUseCase with metrics
// instrumentation.
type medicationUseCaseWithMetrics struct {
	next    MedicationUseCase
	metrics metrics.BusinessMetrics
}

// NewMedicationUseCaseWithMetrics wraps a MedicationUseCase with metrics recording.
func NewMedicationUseCaseWithMetrics(useCase MedicationUseCase, m metrics.BusinessMetrics) MedicationUseCase {
	return &medicationUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (d *medicationUseCaseWithMetrics) Create(
	ctx context.Context,
	familyID uuid.UUID,
	input *recordsDomain.MedicationInput,
) (*recordsDomain.MedicationOutput, error) {
	start := time.Now()
	output, err := d.next.Create(ctx, familyID, input)
	recordMetrics(ctx, d.metrics, "medication_create", start, err)
	return output, err
}

func (d *medicationUseCaseWithMetrics) Get(
	ctx context.Context,
	familyID, medicationID uuid.UUID,
) (*recordsDomain.MedicationOutput, error) {
	start := time.Now()
	output, err := d.next.Get(ctx, familyID, medicationID)
	recordMetrics(ctx, d.metrics, "medication_get", start, err)
	return output, err
}

func (d *medicationUseCaseWithMetrics) List(
	ctx context.Context,
	familyID uuid.UUID,
	opts recordsDomain.ListOptions,
) ([]*recordsDomain.MedicationOutput, error) {
	start := time.Now()
	outputs, err := d.next.List(ctx, familyID, opts)
	recordMetrics(ctx, d.metrics, "medication_list", start, err)
	return outputs, err
}

func (d *medicationUseCaseWithMetrics) Update(
	ctx context.Context,
	familyID, medicationID uuid.UUID,
	input *recordsDomain.MedicationInput,
) (*recordsDomain.MedicationOutput, error) {
	start := time.Now()
	output, err := d.next.Update(ctx, familyID, medicationID, input)
	recordMetrics(ctx, d.metrics, "medication_update", start, err)
	return output, err
}

func (d *medicationUseCaseWithMetrics) Delete(ctx context.Context, familyID, medicationID uuid.UUID) error {
	start := time.Now()
	err := d.next.Delete(ctx, familyID, medicationID)
	recordMetrics(ctx, d.metrics, "medication_delete", start, err)
	return err
}

// allergyUseCaseWithMetrics decorates AllergyUseCase with metrics
// instrumentation.
type allergyUseCaseWithMetrics struct {
	next    AllergyUseCase
	metrics metrics.BusinessMetrics
}

// NewAllergyUseCaseWithMetrics wraps an AllergyUseCase with metrics recording.
func NewAllergyUseCaseWithMetrics(useCase AllergyUseCase, m metrics.BusinessMetrics) AllergyUseCase {
	return &allergyUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (a *allergyUseCaseWithMetrics) Create(
	ctx context.Context,
	familyID uuid.UUID,
	input *recordsDomain.AllergyInput,
) (*recordsDomain.AllergyOutput, error) {
	start := time.Now()
	output, err := a.next.Create(ctx, familyID, input)
	recordMetrics(ctx, a.metrics, "allergy_create", start, err)
	return output, err
}

func (a *allergyUseCaseWithMetrics) Get(
	ctx context.Context,
	familyID, allergyID uuid.UUID,
) (*recordsDomain.AllergyOutput, error) {
	start := time.Now()
	output, err := a.next.Get(ctx, familyID, allergyID)
	recordMetrics(ctx, a.metrics, "allergy_get", start, err)
	return output, err
}

func (a *allergyUseCaseWithMetrics) List(
	ctx context.Context,
	familyID uuid.UUID,
	opts recordsDomain.ListOptions,
) ([]*recordsDomain.AllergyOutput, error) {
	start := time.Now()
	outputs, err := a.next.List(ctx, familyID, opts)
	recordMetrics(ctx, a.metrics, "allergy_list", start, err)
	return outputs, err
}

func (a *allergyUseCaseWithMetrics) Update(
	ctx context.Context,
	familyID, allergyID uuid.UUID,
	input *recordsDomain.AllergyInput,
) (*recordsDomain.AllergyOutput, error) {
	start := time.Now()
	output, err := a.next.Update(ctx, familyID, allergyID, input)
	recordMetrics(ctx, a.metrics, "allergy_update", start, err)
	return output, err
}

func (a *allergyUseCaseWithMetrics) Delete(ctx context.Context, familyID, allergyID uuid.UUID) error {
	start := time.Now()
	err := a.next.Delete(ctx, familyID, allergyID)
	recordMetrics(ctx, a.metrics, "allergy_delete", start, err)
	return err
}

// conditionUseCaseWithMetrics decorates ConditionUseCase with metrics
// instrumentation.
type conditionUseCaseWithMetrics struct {
	next    ConditionUseCase
	metrics metrics.BusinessMetrics
}

// NewConditionUseCaseWithMetrics wraps a ConditionUseCase with metrics recording.
func NewConditionUseCaseWithMetrics(useCase ConditionUseCase, m metrics.BusinessMetrics) ConditionUseCase {
	return &conditionUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (c *conditionUseCaseWithMetrics) Create(
	ctx context.Context,
	familyID uuid.UUID,
	input *recordsDomain.ConditionInput,
) (*recordsDomain.ConditionOutput, error) {
	start := time.Now()
	output, err := c.next.Create(ctx, familyID, input)
	recordMetrics(ctx, c.metrics, "condition_create", start, err)
	return output, err
}

func (c *conditionUseCaseWithMetrics) Get(
	ctx context.Context,
	familyID, conditionID uuid.UUID,
) (*recordsDomain.ConditionOutput, error) {
	start := time.Now()
	output, err := c.next.Get(ctx, familyID, conditionID)
	recordMetrics(ctx, c.metrics, "condition_get", start, err)
	return output, err
}

func (c *conditionUseCaseWithMetrics) List(
	ctx context.Context,
	familyID uuid.UUID,
	opts recordsDomain.ListOptions,
) ([]*recordsDomain.ConditionOutput, error) {
	start := time.Now()
	outputs, err := c.next.List(ctx, familyID, opts)
	recordMetrics(ctx, c.metrics, "condition_list", start, err)
	return outputs, err
}

func (c *conditionUseCaseWithMetrics) Update(
	ctx context.Context,
	familyID, conditionID uuid.UUID,
	input *recordsDomain.ConditionInput,
) (*recordsDomain.ConditionOutput, error) {
	start := time.Now()
	output, err := c.next.Update(ctx, familyID, conditionID, input)
	recordMetrics(ctx, c.metrics, "condition_update", start, err)
	return output, err
}

func (c *conditionUseCaseWithMetrics) Delete(ctx context.Context, familyID, conditionID uuid.UUID) error {
	start := time.Now()
	err := c.next.Delete(ctx, familyID, conditionID)
	recordMetrics(ctx, c.metrics, "condition_delete", start, err)
	return err
}

// vaccinationUseCaseWithMetrics decorates VaccinationUseCase with metrics
// instrumentation.
type vaccinationUseCaseWithMetrics struct {
	next    VaccinationUseCase
	metrics metrics.BusinessMetrics
}

// NewVaccinationUseCaseWithMetrics wraps a VaccinationUseCase with metrics recording.
func NewVaccinationUseCaseWithMetrics(useCase VaccinationUseCase, m metrics.BusinessMetrics) VaccinationUseCase {
	return &vaccinationUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (v *vaccinationUseCaseWithMetrics) Create(
	ctx context.Context,
	familyID uuid.UUID,
	input *recordsDomain.VaccinationInput,
) (*recordsDomain.VaccinationOutput, error) {
	start := time.Now()
	output, err := v.next.Create(ctx, familyID, input)
	recordMetrics(ctx, v.metrics, "vaccination_create", start, err)
	return output, err
}

func (v *vaccinationUseCaseWithMetrics) Get(
	ctx context.Context,
	familyID, vaccinationID uuid.UUID,
) (*recordsDomain.VaccinationOutput, error) {
	start := time.Now()
	output, err := v.next.Get(ctx, familyID, vaccinationID)
	recordMetrics(ctx, v.metrics, "vaccination_get", start, err)
	return output, err
}

func (v *vaccinationUseCaseWithMetrics) List(
	ctx context.Context,
	familyID uuid.UUID,
	opts recordsDomain.ListOptions,
) ([]*recordsDomain.VaccinationOutput, error) {
	start := time.Now()
	outputs, err := v.next.List(ctx, familyID, opts)
	recordMetrics(ctx, v.metrics, "vaccination_list", start, err)
	return outputs, err
}

func (v *vaccinationUseCaseWithMetrics) Update(
	ctx context.Context,
	familyID, vaccinationID uuid.UUID,
	input *recordsDomain.VaccinationInput,
) (*recordsDomain.VaccinationOutput, error) {
	start := time.Now()
	output, err := v.next.Update(ctx, familyID, vaccinationID, input)
	recordMetrics(ctx, v.metrics, "vaccination_update", start, err)
	return output, err
}

func (v *vaccinationUseCaseWithMetrics) Delete(ctx context.Context, familyID, vaccinationID uuid.UUID) error {
	start := time.Now()
	err := v.next.Delete(ctx, familyID, vaccinationID)
	recordMetrics(ctx, v.metrics, "vaccination_delete", start, err)
	return err
}

// notificationUseCaseWithMetrics decorates NotificationUseCase with metrics
// instrumentation.
type notificationUseCaseWithMetrics struct {
	next    NotificationUseCase
	metrics metrics.BusinessMetrics
}

// NewNotificationUseCaseWithMetrics wraps a NotificationUseCase with metrics recording.
func NewNotificationUseCaseWithMetrics(useCase NotificationUseCase, m metrics.BusinessMetrics) NotificationUseCase {
	return &notificationUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (n *notificationUseCaseWithMetrics) Notify(
	ctx context.Context,
	familyID uuid.UUID,
	message string,
) (*recordsDomain.NotificationOutput, error) {
	start := time.Now()
	output, err := n.next.Notify(ctx, familyID, message)
	recordMetrics(ctx, n.metrics, "notification_notify", start, err)
	return output, err
}

func (n *notificationUseCaseWithMetrics) List(
	ctx context.Context,
	familyID uuid.UUID,
) ([]*recordsDomain.NotificationOutput, error) {
	start := time.Now()
	outputs, err := n.next.List(ctx, familyID)
	recordMetrics(ctx, n.metrics, "notification_list", start, err)
	return outputs, err
}

func (n *notificationUseCaseWithMetrics) MarkRead(ctx context.Context, familyID, notificationID uuid.UUID) error {
	start := time.Now()
	err := n.next.MarkRead(ctx, familyID, notificationID)
	recordMetrics(ctx, n.metrics, "notification_mark_read", start, err)
	return err
}
