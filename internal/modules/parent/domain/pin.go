package domain

import (
	"fmt"
	"strings"

	apperrors "brightbuddy/internal/platform/errors"
)

const PINLength = 4

func ValidatePIN(pin string) error {
	if len(pin) != PINLength {
		return fmt.Errorf("%w: PIN must be %d digits", apperrors.ErrInvalidInput, PINLength)
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return fmt.Errorf("%w: PIN must be %d digits", apperrors.ErrInvalidInput, PINLength)
		}
	}
	return nil
}

// IsLegacyPIN reports whether a stored value is a plain PIN written before hashing.
func IsLegacyPIN(stored string) bool {
	return !strings.HasPrefix(stored, "$") && ValidatePIN(stored) == nil
}
