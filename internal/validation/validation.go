package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9. ()-]{7,25}$`)

// Register wires the custom rules into gin's binding validator. It must be
// called once before the router starts handling requests.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}

	// Report fields under their JSON names so error details match the wire format
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		return fmt.Errorf("failed to register notblank rule: %w", err)
	}

	return v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
}

// FieldErrors flattens a binding error into a field -> message map covering
// every violated field, not just the first one.
func FieldErrors(err error) map[string]any {
	details := make(map[string]any)

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		// Malformed JSON, type mismatches, empty body
		details["body"] = err.Error()
		return details
	}

	for _, fieldErr := range validationErrs {
		details[fieldErr.Field()] = messageFor(fieldErr)
	}
	return details
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "notblank":
		return "must not be blank"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "email":
		return "must be a valid email address"
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "phone":
		return "must be a valid phone number"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
