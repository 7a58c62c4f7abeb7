package validator

import (
	"sync"

	"github.com/go-playground/validator/v10"

	ierr "github.com/petshield/petshield/internal/errors"
)

var (
	validate *validator.Validate
	once     sync.Once
)

func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// ValidateRequest validates a request struct against its validate tags and
// returns a marked validation error on failure.
func ValidateRequest(req any) error {
	if err := getValidator().Struct(req); err != nil {
		return ierr.WithError(err).
			WithHint("Request validation failed").
			Mark(ierr.ErrValidation)
	}
	return nil
}
