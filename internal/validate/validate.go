// Package validate wraps go-playground/validator with the request rules of
// this API and turns failures into per-field message lists for the error
// body.
package validate

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// ValidationError carries one human-readable message per failed field.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New()

	// Error messages use the JSON field names clients actually sent.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	_ = v.RegisterValidation("password", validPassword)
	_ = v.RegisterValidation("notblank", notBlank)

	return &Validator{validate: v}
}

// Struct validates s and returns a *ValidationError on failure, nil
// otherwise.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		messages = append(messages, messageFor(fe))
	}

	return &ValidationError{Messages: messages}
}

func messageFor(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return "please enter a valid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must contain at most %s items", field, fe.Param())
	case "notblank":
		return fmt.Sprintf("%s must not be empty", field)
	case "password":
		return "password must be 6-16 characters long with at least one uppercase letter, one lowercase letter and one number, and no spaces"
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// validPassword enforces the registration password policy: 6-16 characters,
// at least one uppercase, one lowercase and one digit, no spaces.
func validPassword(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if count := utf8.RuneCountInString(value); count < 6 || count > 16 {
		return false
	}
	if strings.ContainsRune(value, ' ') {
		return false
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range value {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	return hasUpper && hasLower && hasDigit
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
