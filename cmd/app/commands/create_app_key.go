package commands

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	cryptoDomain "github.com/hearthside/hearth/internal/crypto/domain"
)

// RunCreateAppKey generates a cryptographically secure 32-byte application
// secret key and prints it base64-encoded, ready to use as APP_SECRET_KEY.
// The key seals application-level secrets such as TOTP seeds; key material is
// zeroed from memory after encoding.
func RunCreateAppKey(io IOTuple) error {
	key := make([]byte, cryptoDomain.KeySize)
	if _, err := rand.Read(key); err != nil {
		return fmt.Errorf("failed to generate application secret key: %w", err)
	}

	encoded := base64.StdEncoding.EncodeToString(key)
	cryptoDomain.Zero(key)

	fmt.Fprintln(io.Writer, "# Application Secret Key")
	fmt.Fprintln(io.Writer, "# Copy this environment variable to your .env file or secrets manager")
	fmt.Fprintln(io.Writer)
	fmt.Fprintf(io.Writer, "APP_SECRET_KEY=\"%s\"\n", encoded)

	return nil
}
