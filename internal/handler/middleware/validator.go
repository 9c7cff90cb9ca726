package middleware

import (
	"car-rental-ops/internal/domain/fleet"
	"car-rental-ops/internal/pkg/errs"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	minRegistrationLen = 2
	maxRegistrationLen = 10
)

// RegisterValidators adds the custom binding tags to gin's validator engine.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errs.New("gin binding engine is not go-playground/validator")
	}
	return v.RegisterValidation("registration", validateRegistration)
}

// validateRegistration accepts plates that normalize to 2-10 letters or digits.
func validateRegistration(fl validator.FieldLevel) bool {
	return IsValidRegistration(fl.Field().String())
}

func IsValidRegistration(raw string) bool {
	key := fleet.NormalizeRegistration(raw)
	if len(key) < minRegistrationLen || len(key) > maxRegistrationLen {
		return false
	}
	for _, r := range key {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}
