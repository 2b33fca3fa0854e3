package currency

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ValidationTag is the struct tag that checks a code against the default registry.
//
//	type Invoice struct {
//	    Currency string `validate:"required,currency_code"`
//	}
const ValidationTag = "currency_code"

// ErrValidatorInit is returned when the validation tag cannot be registered.
var ErrValidatorInit = errors.New("currency validator initialization failed")

var (
	validate     *validator.Validate
	validateOnce sync.Once
	errValidate  error
)

// RegisterValidation installs the currency_code tag on v. Currency fields are
// validated through their code, so the tag works on both string and Currency
// fields.
func RegisterValidation(v *validator.Validate) error {
	if v == nil {
		return fmt.Errorf("%w: nil validator", ErrValidatorInit)
	}

	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if c, ok := field.Interface().(Currency); ok {
			return c.code
		}

		return nil
	}, Currency{})

	if err := v.RegisterValidation(ValidationTag, validateCode); err != nil {
		return fmt.Errorf("%w: failed to register '%s': %w", ErrValidatorInit, ValidationTag, err)
	}

	return nil
}

// Validator returns a shared validator with the currency_code tag installed.
func Validator() (*validator.Validate, error) {
	validateOnce.Do(func() {
		vld := validator.New(validator.WithRequiredStructEnabled())
		if err := RegisterValidation(vld); err != nil {
			errValidate = err

			return
		}

		validate = vld
	})

	return validate, errValidate
}

func validateCode(fl validator.FieldLevel) bool {
	code, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	registry, err := Default()
	if err != nil {
		return false
	}

	return registry.Contains(code)
}
