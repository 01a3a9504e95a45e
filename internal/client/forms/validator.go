// Package forms validates the input collected by the screens.
//
// Each form is a struct with validator tags; Validate trims it and returns
// a *ValidationError listing every failed field. ValidationError wraps
// common.ErrValidation.
package forms

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/dmitrijs2005/churchhub/internal/common"
)

// Form is implemented by the form types of this package.
type Form interface {
	normalize()
}

// FieldError describes one rejected field.
type FieldError struct {
	Field   string
	Message string
}

type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+" "+f.Message)
	}
	return strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() error { return common.ErrValidation }

// Message returns the message for field, "" if it passed.
func (e *ValidationError) Message(field string) string {
	for _, f := range e.Fields {
		if f.Field == field {
			return f.Message
		}
	}
	return ""
}

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// registration only fails on an empty tag or nil func
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("phone", validatePhone)
	_ = v.RegisterValidation("amount", validateAmount)

	return &Validator{v: v}
}

// Validate normalizes f in place and checks it.
func (v *Validator) Validate(f Form) error {
	f.normalize()

	err := v.v.Struct(f)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return fmt.Errorf("validate form: %w", err)
	}

	out := &ValidationError{Fields: make([]FieldError, 0, len(ve))}
	for _, fe := range ve {
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "is required"
	case "email":
		return "must be a valid email"
	case "min":
		return "must be at least " + fe.Param() + " characters long"
	case "max":
		return "must be at most " + fe.Param() + " characters long"
	case "phone":
		return "must be a valid phone number"
	case "amount":
		return "must be a number greater than zero"
	default:
		return fmt.Sprintf("failed validation (%s)", fe.Tag())
	}
}

var phonePattern = regexp.MustCompile(`^\+?[0-9 ()-]{7,20}$`)

// validatePhone accepts an optional leading "+", digits, spaces, dashes and
// parentheses, with at least 7 digits.
func validatePhone(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if !phonePattern.MatchString(s) {
		return false
	}
	digits := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= 7
}

func validateAmount(fl validator.FieldLevel) bool {
	_, err := ParseAmount(fl.Field().String())
	return err == nil
}

var errBadAmount = errors.New("amount must be a number greater than zero")

// ParseAmount reads a donation amount such as "25", "25.50" or "$ 10".
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return 0, errBadAmount
	}
	return f, nil
}
