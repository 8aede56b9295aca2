package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	cryptoDomain "github.com/hearthside/hearth/internal/crypto/domain"
	cryptoService "github.com/hearthside/hearth/internal/crypto/service"
	cryptoUsecase "github.com/hearthside/hearth/internal/crypto/usecase"
	recordsDomain "github.com/hearthside/hearth/internal/records/domain"
)

// appointmentUseCase implements the AppointmentUseCase interface.
type appointmentUseCase struct {
	appointmentRepo  AppointmentRepository
	familyKeyUseCase cryptoUsecase.FamilyKeyUseCase
	fieldCodec       *cryptoService.FieldCodec
}

// NewAppointmentUseCase creates a new AppointmentUseCase instance.
func NewAppointmentUseCase(
	appointmentRepo AppointmentRepository,
	familyKeyUseCase cryptoUsecase.FamilyKeyUseCase,
	fieldCodec *cryptoService.FieldCodec,
) AppointmentUseCase {
	return &appointmentUseCase{
		appointmentRepo:  appointmentRepo,
		familyKeyUseCase: familyKeyUseCase,
		fieldCodec:       fieldCodec,
	}
}

// Create adds an appointment for a family member.
func (a *appointmentUseCase) Create(
	ctx context.Context,
	familyID uuid.UUID,
	input *recordsDomain.AppointmentInput,
) (*recordsDomain.AppointmentOutput, error) {
	now := time.Now().UTC()
	appointment := &recordsDomain.Appointment{
		ID:        uuid.Must(uuid.NewV7()),
		FamilyID:  familyID,
		MemberID:  input.MemberID,
		Date:      input.Date,
		CreatedAt: now,
		UpdatedAt: now,
	}

	handle, err := a.familyKeyUseCase.Attach(ctx, familyID, appointment)
	if err != nil {
		return nil, err
	}
	defer handle.Close()

	if err := a.encryptInput(appointment, input); err != nil {
		return nil, err
	}

	if err := a.appointmentRepo.Create(ctx, appointment); err != nil {
		return nil, err
	}

	return a.toOutput(appointment)
}

// Get returns the decrypted view of one appointment.
func (a *appointmentUseCase) Get(
	ctx context.Context,
	familyID, appointmentID uuid.UUID,
) (*recordsDomain.AppointmentOutput, error) {
	appointment, err := a.appointmentRepo.GetByID(ctx, familyID, appointmentID)
	if err != nil {
		return nil, err
	}

	handle, err := a.familyKeyUseCase.Attach(ctx, familyID, appointment)
	if err != nil {
		return nil, err
	}
	defer handle.Close()

	return a.toOutput(appointment)
}

// List returns the decrypted views of a page of a family's appointments.
func (a *appointmentUseCase) List(
	ctx context.Context,
	familyID uuid.UUID,
	opts recordsDomain.ListOptions,
) ([]*recordsDomain.AppointmentOutput, error) {
	appointments, err := a.appointmentRepo.ListByFamilyID(ctx, familyID, opts)
	if err != nil {
		return nil, err
	}

	// One key resolution covers the whole batch.
	hydratables := make([]cryptoDomain.Hydratable, len(appointments))
	for i, appointment := range appointments {
		hydratables[i] = appointment
	}
	handle, err := a.familyKeyUseCase.Attach(ctx, familyID, hydratables...)
	if err != nil {
		return nil, err
	}
	defer handle.Close()

	outputs := make([]*recordsDomain.AppointmentOutput, 0, len(appointments))
	for _, appointment := range appointments {
		output, err := a.toOutput(appointment)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, output)
	}
	return outputs, nil
}

// Update replaces an appointment's data.
func (a *appointmentUseCase) Update(
	ctx context.Context,
	familyID, appointmentID uuid.UUID,
	input *recordsDomain.AppointmentInput,
) (*recordsDomain.AppointmentOutput, error) {
	appointment, err := a.appointmentRepo.GetByID(ctx, familyID, appointmentID)
	if err != nil {
		return nil, err
	}

	handle, err := a.familyKeyUseCase.Attach(ctx, familyID, appointment)
	if err != nil {
		return nil, err
	}
	defer handle.Close()

	if err := a.encryptInput(appointment, input); err != nil {
		return nil, err
	}
	appointment.MemberID = input.MemberID
	appointment.Date = input.Date
	appointment.UpdatedAt = time.Now().UTC()

	if err := a.appointmentRepo.Update(ctx, appointment); err != nil {
		return nil, err
	}

	return a.toOutput(appointment)
}

// Delete removes an appointment.
func (a *appointmentUseCase) Delete(ctx context.Context, familyID, appointmentID uuid.UUID) error {
	return a.appointmentRepo.Delete(ctx, familyID, appointmentID)
}

// encryptInput seals the input's sensitive values into the appointment's
// fields. The appointment must already carry an attached key.
func (a *appointmentUseCase) encryptInput(
	appointment *recordsDomain.Appointment,
	input *recordsDomain.AppointmentInput,
) error {
	if err := a.fieldCodec.Set(appointment, &appointment.Title, &input.Title); err != nil {
		return err
	}
	if err := a.fieldCodec.Set(appointment, &appointment.Doctor, input.Doctor); err != nil {
		return err
	}
	if err := a.fieldCodec.Set(appointment, &appointment.Location, input.Location); err != nil {
		return err
	}
	return a.fieldCodec.Set(appointment, &appointment.Notes, input.Notes)
}

// toOutput decrypts a hydrated appointment into its plaintext view.
func (a *appointmentUseCase) toOutput(
	appointment *recordsDomain.Appointment,
) (*recordsDomain.AppointmentOutput, error) {
	title, err := a.fieldCodec.Get(appointment, &appointment.Title)
	if err != nil {
		return nil, err
	}
	doctor, err := a.fieldCodec.Get(appointment, &appointment.Doctor)
	if err != nil {
		return nil, err
	}
	location, err := a.fieldCodec.Get(appointment, &appointment.Location)
	if err != nil {
		return nil, err
	}
	notes, err := a.fieldCodec.Get(appointment, &appointment.Notes)
	if err != nil {
		return nil, err
	}

	output := &recordsDomain.AppointmentOutput{
		ID:        appointment.ID,
		FamilyID:  appointment.FamilyID,
		MemberID:  appointment.MemberID,
		Doctor:    doctor,
		Location:  location,
		Notes:     notes,
		Date:      appointment.Date,
		CreatedAt: appointment.CreatedAt,
		UpdatedAt: appointment.UpdatedAt,
	}
	if title != nil {
		output.Title = *title
	}
	return output, nil
}
