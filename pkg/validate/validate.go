package validate

import (
	"math"

	"github.com/go-playground/validator/v10"
)

// New returns a validator with the service's custom rules registered.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("scale2", twoFractionDigits)
	return v
}

// twoFractionDigits accepts amounts representable at the money scale of
// two fraction digits. Anything finer would be silently rounded by the
// NUMERIC(14,2) columns, so it is rejected up front.
func twoFractionDigits(fl validator.FieldLevel) bool {
	scaled := fl.Field().Float() * 100
	return math.Abs(scaled-math.Round(scaled)) < 1e-9
}
