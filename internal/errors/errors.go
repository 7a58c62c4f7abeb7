package errors

import (
	"github.com/cockroachdb/errors"
)

// Sentinel errors used as marks. Components never return these directly;
// they build an error with NewError/WithError and Mark it with one of these
// so callers can classify without string matching.
var (
	ErrValidation       = errors.New("validation_error")
	ErrNotFound         = errors.New("not_found")
	ErrAlreadyExists    = errors.New("already_exists")
	ErrDatabase         = errors.New("database_error")
	ErrInvalidOperation = errors.New("invalid_operation")
	ErrInternal         = errors.New("internal_error")

	// ErrCadenceMismatch marks a requested billing cadence that disagrees with
	// the cadence mandated by the plan. Never silently corrected.
	ErrCadenceMismatch = errors.New("cadence_mismatch")
)

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

func IsDatabase(err error) bool {
	return errors.Is(err, ErrDatabase)
}

func IsInvalidOperation(err error) bool {
	return errors.Is(err, ErrInvalidOperation)
}

func IsCadenceMismatch(err error) bool {
	return errors.Is(err, ErrCadenceMismatch)
}
