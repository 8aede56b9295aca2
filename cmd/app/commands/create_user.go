package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	userDomain "github.com/hearthside/hearth/internal/user/domain"
	userUsecase "github.com/hearthside/hearth/internal/user/usecase"
)

// RunCreateUser creates a user account in an existing family.
//
// The password is hashed before storage and the profile names are encrypted
// with the family key; neither is echoed back. Output format is "text" or
// "json".
func RunCreateUser(
	ctx context.Context,
	useCase userUsecase.UserUseCase,
	logger *slog.Logger,
	familyID, email, password, firstName, lastName, format string,
	io IOTuple,
) error {
	parsedFamilyID, err := uuid.Parse(familyID)
	if err != nil {
		return fmt.Errorf("invalid family id %q: %w", familyID, err)
	}

	output, err := useCase.Create(ctx, &userDomain.UserInput{
		FamilyID:  parsedFamilyID,
		Email:     email,
		Password:  password,
		FirstName: firstName,
		LastName:  lastName,
	})
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	logger.Info("user created",
		slog.String("user_id", output.ID.String()),
		slog.String("family_id", output.FamilyID.String()),
	)

	if format == "json" {
		encoder := json.NewEncoder(io.Writer)
		encoder.SetIndent("", "  ")
		return encoder.Encode(map[string]string{
			"id":        output.ID.String(),
			"family_id": output.FamilyID.String(),
			"email":     output.Email,
		})
	}

	fmt.Fprintln(io.Writer, "# User created")
	fmt.Fprintf(io.Writer, "ID:        %s\n", output.ID)
	fmt.Fprintf(io.Writer, "Family ID: %s\n", output.FamilyID)
	fmt.Fprintf(io.Writer, "Email:     %s\n", output.Email)

	return nil
}
