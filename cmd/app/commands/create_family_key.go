package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	cryptoDomain "github.com/hearthside/hearth/internal/crypto/domain"
	cryptoUseCase "github.com/hearthside/hearth/internal/crypto/usecase"
)

// RunCreateFamilyKey backfills a wrapped data key for a family that has no
// key record. Families created through the API get their key in the same
// transaction; this command covers rows imported or repaired by hand.
//
// Refuses to touch a family that already has a key record: replacing a key
// would orphan every ciphertext sealed under the old one.
func RunCreateFamilyKey(
	ctx context.Context,
	useCase cryptoUseCase.FamilyKeyUseCase,
	logger *slog.Logger,
	familyID string,
	io IOTuple,
) error {
	parsedFamilyID, err := uuid.Parse(familyID)
	if err != nil {
		return fmt.Errorf("invalid family id %q: %w", familyID, err)
	}

	// Check for an existing record first
	handle, err := useCase.Resolve(ctx, parsedFamilyID)
	if err == nil {
		handle.Close()
		return fmt.Errorf("family %s already has a key record", parsedFamilyID)
	}
	if !errors.Is(err, cryptoDomain.ErrMissingKeyRecord) {
		return fmt.Errorf("failed to check existing key record: %w", err)
	}

	familyKey, newHandle, err := useCase.CreateKeyRecord(ctx, parsedFamilyID)
	if err != nil {
		return fmt.Errorf("failed to create key record: %w", err)
	}
	defer newHandle.Close()

	if err := useCase.PersistKeyRecord(ctx, familyKey); err != nil {
		return fmt.Errorf("failed to persist key record: %w", err)
	}

	logger.Info("family key created", slog.String("family_id", parsedFamilyID.String()))

	fmt.Fprintln(io.Writer, "# Family key created")
	fmt.Fprintf(io.Writer, "Family ID: %s\n", parsedFamilyID)

	return nil
}
