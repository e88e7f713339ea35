// Package validate holds the pure request validation used before any store
// access: required-header presence and identifier format checks.
package validate

import (
	"net/http"
	"regexp"

	"github.com/andean-bank/movements-backend/internal/errs"
	"github.com/andean-bank/movements-backend/internal/models"
)

var (
	savingsPattern  = regexp.MustCompile(`^AHO-\d{6}$`)
	checkingPattern = regexp.MustCompile(`^COR-\d{6}$`)
	cardPattern     = regexp.MustCompile(`^TARJ-\d{10}$`)
	movementPattern = regexp.MustCompile(`^mov-\w+$`)
)

// MissingHeaders returns the required header names that are absent or empty,
// preserving the declared order. Lookup is case-insensitive.
func MissingHeaders(required []string, h http.Header) []string {
	var missing []string
	for _, name := range required {
		if h.Get(name) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

// AccountIdentifier checks the identifier format for the given account kind.
func AccountIdentifier(kind models.AccountKind, identifier string) error {
	switch kind {
	case models.KindSavings:
		if !savingsPattern.MatchString(identifier) {
			return errs.NewInvalidAccountNumberError()
		}
	case models.KindChecking:
		if !checkingPattern.MatchString(identifier) {
			return errs.NewInvalidAccountNumberError()
		}
	case models.KindCard:
		if !cardPattern.MatchString(identifier) {
			return errs.NewInvalidCardNumberError()
		}
	default:
		return errs.NewInvalidAccountNumberError()
	}
	return nil
}

// MovementID checks the movement identifier format.
func MovementID(id string) error {
	if !movementPattern.MatchString(id) {
		return errs.NewInvalidMovementIDError()
	}
	return nil
}
