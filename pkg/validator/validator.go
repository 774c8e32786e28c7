package validator

import (
	"errors"
	"reflect"
	"sort"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// ValidationError carries one message per offending field, keyed by the
// field's JSON name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, e.Fields[k])
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// NewValidationError builds a single-field error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return &CustomValidator{
		validator: v,
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// Check validates i and converts failures into a *ValidationError.
func (cv *CustomValidator) Check(i interface{}) error {
	err := cv.Validate(i)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	return &ValidationError{Fields: cv.FormatValidationErrors(err)}
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			label := Humanize(field)
			switch e.Tag() {
			case "required":
				errors[field] = label + " is required"
			case "email":
				errors[field] = label + " must be a valid email address"
			case "eqfield":
				if e.Param() == "Password" {
					errors[field] = "Passwords do not match"
				} else {
					errors[field] = label + " must match " + Humanize(e.Param())
				}
			case "min":
				errors[field] = label + " must be at least " + e.Param()
			case "max":
				errors[field] = label + " must be at most " + e.Param()
			case "gte":
				errors[field] = label + " must be greater than or equal to " + e.Param()
			case "lte":
				errors[field] = label + " must be less than or equal to " + e.Param()
			case "oneof":
				errors[field] = label + " must be one of " + e.Param()
			case "datetime":
				errors[field] = label + " must be a date in the format " + e.Param()
			default:
				errors[field] = label + " is invalid"
			}
		}
	}

	return errors
}

// Humanize turns a field name such as "confirmPassword" or "FirstName" into
// "Confirm password" / "First name".
func Humanize(field string) string {
	var b strings.Builder
	for i, r := range field {
		switch {
		case i == 0:
			b.WriteRune(unicode.ToUpper(r))
		case unicode.IsUpper(r):
			b.WriteRune(' ')
			b.WriteRune(unicode.ToLower(r))
		case r == '_':
			b.WriteRune(' ')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
