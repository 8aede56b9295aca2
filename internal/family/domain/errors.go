package domain

import (
	"github.com/hearthside/hearth/internal/errors"
)

// Family-specific error definitions.
var (
	// ErrFamilyNotFound indicates the requested family does not exist.
	ErrFamilyNotFound = errors.Wrap(errors.ErrNotFound, "family not found")

	// ErrMemberNotFound indicates the requested family member does not exist.
	ErrMemberNotFound = errors.Wrap(errors.ErrNotFound, "family member not found")
)
