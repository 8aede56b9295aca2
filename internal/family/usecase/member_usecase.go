package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	cryptoDomain "github.com/hearthside/hearth/internal/crypto/domain"
	cryptoService "github.com/hearthside/hearth/internal/crypto/service"
	cryptoUsecase "github.com/hearthside/hearth/internal/crypto/usecase"
	familyDomain "github.com/hearthside/hearth/internal/family/domain"
)

// memberUseCase implements the MemberUseCase interface.
type memberUseCase struct {
	memberRepo       MemberRepository
	familyKeyUseCase cryptoUsecase.FamilyKeyUseCase
	fieldCodec       *cryptoService.FieldCodec
}

// NewMemberUseCase creates a new MemberUseCase instance.
func NewMemberUseCase(
	memberRepo MemberRepository,
	familyKeyUseCase cryptoUsecase.FamilyKeyUseCase,
	fieldCodec *cryptoService.FieldCodec,
) MemberUseCase {
	return &memberUseCase{
		memberRepo:       memberRepo,
		familyKeyUseCase: familyKeyUseCase,
		fieldCodec:       fieldCodec,
	}
}

// Create adds a member to a family.
func (m *memberUseCase) Create(
	ctx context.Context,
	familyID uuid.UUID,
	input *familyDomain.MemberInput,
) (*familyDomain.MemberOutput, error) {
	now := time.Now().UTC()
	member := &familyDomain.FamilyMember{
		ID:        uuid.Must(uuid.NewV7()),
		FamilyID:  familyID,
		BirthDate: input.BirthDate,
		Gender:    input.Gender,
		CreatedAt: now,
		UpdatedAt: now,
	}

	handle, err := m.familyKeyUseCase.Attach(ctx, familyID, member)
	if err != nil {
		return nil, err
	}
	defer handle.Close()

	if err := m.encryptInput(member, input); err != nil {
		return nil, err
	}

	if err := m.memberRepo.Create(ctx, member); err != nil {
		return nil, err
	}

	return m.toOutput(member)
}

// Get returns the decrypted view of one member.
func (m *memberUseCase) Get(
	ctx context.Context,
	familyID, memberID uuid.UUID,
) (*familyDomain.MemberOutput, error) {
	member, err := m.memberRepo.GetByID(ctx, familyID, memberID)
	if err != nil {
		return nil, err
	}

	handle, err := m.familyKeyUseCase.Attach(ctx, familyID, member)
	if err != nil {
		return nil, err
	}
	defer handle.Close()

	return m.toOutput(member)
}

// List returns the decrypted views of a page of a family's members.
func (m *memberUseCase) List(
	ctx context.Context,
	familyID uuid.UUID,
	opts familyDomain.ListOptions,
) ([]*familyDomain.MemberOutput, error) {
	members, err := m.memberRepo.ListByFamilyID(ctx, familyID, opts)
	if err != nil {
		return nil, err
	}

	// One key resolution covers the whole batch.
	hydratables := make([]cryptoDomain.Hydratable, len(members))
	for i, member := range members {
		hydratables[i] = member
	}
	handle, err := m.familyKeyUseCase.Attach(ctx, familyID, hydratables...)
	if err != nil {
		return nil, err
	}
	defer handle.Close()

	outputs := make([]*familyDomain.MemberOutput, 0, len(members))
	for _, member := range members {
		output, err := m.toOutput(member)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, output)
	}
	return outputs, nil
}

// Update replaces a member's data.
func (m *memberUseCase) Update(
	ctx context.Context,
	familyID, memberID uuid.UUID,
	input *familyDomain.MemberInput,
) (*familyDomain.MemberOutput, error) {
	member, err := m.memberRepo.GetByID(ctx, familyID, memberID)
	if err != nil {
		return nil, err
	}

	handle, err := m.familyKeyUseCase.Attach(ctx, familyID, member)
	if err != nil {
		return nil, err
	}
	defer handle.Close()

	if err := m.encryptInput(member, input); err != nil {
		return nil, err
	}
	member.BirthDate = input.BirthDate
	member.Gender = input.Gender
	member.UpdatedAt = time.Now().UTC()

	if err := m.memberRepo.Update(ctx, member); err != nil {
		return nil, err
	}

	return m.toOutput(member)
}

// Delete removes a member.
func (m *memberUseCase) Delete(ctx context.Context, familyID, memberID uuid.UUID) error {
	return m.memberRepo.Delete(ctx, familyID, memberID)
}

// encryptInput seals the input's sensitive values into the member's fields.
// The member must already carry an attached key.
func (m *memberUseCase) encryptInput(
	member *familyDomain.FamilyMember,
	input *familyDomain.MemberInput,
) error {
	if err := m.fieldCodec.Set(member, &member.FirstName, &input.FirstName); err != nil {
		return err
	}
	if err := m.fieldCodec.Set(member, &member.LastName, &input.LastName); err != nil {
		return err
	}
	if err := m.fieldCodec.Set(member, &member.Relation, input.Relation); err != nil {
		return err
	}
	if err := m.fieldCodec.Set(member, &member.BloodType, input.BloodType); err != nil {
		return err
	}
	return m.fieldCodec.Set(member, &member.PhoneNumber, input.PhoneNumber)
}

// toOutput decrypts a hydrated member into its plaintext view.
func (m *memberUseCase) toOutput(
	member *familyDomain.FamilyMember,
) (*familyDomain.MemberOutput, error) {
	firstName, err := m.fieldCodec.Get(member, &member.FirstName)
	if err != nil {
		return nil, err
	}
	lastName, err := m.fieldCodec.Get(member, &member.LastName)
	if err != nil {
		return nil, err
	}
	relation, err := m.fieldCodec.Get(member, &member.Relation)
	if err != nil {
		return nil, err
	}
	bloodType, err := m.fieldCodec.Get(member, &member.BloodType)
	if err != nil {
		return nil, err
	}
	phoneNumber, err := m.fieldCodec.Get(member, &member.PhoneNumber)
	if err != nil {
		return nil, err
	}

	output := &familyDomain.MemberOutput{
		ID:          member.ID,
		FamilyID:    member.FamilyID,
		Relation:    relation,
		BloodType:   bloodType,
		PhoneNumber: phoneNumber,
		BirthDate:   member.BirthDate,
		Gender:      member.Gender,
		CreatedAt:   member.CreatedAt,
		UpdatedAt:   member.UpdatedAt,
	}
	if firstName != nil {
		output.FirstName = *firstName
	}
	if lastName != nil {
		output.LastName = *lastName
	}
	return output, nil
}
