// Package validation wraps go-playground/validator with storefront rules and domain errors.
package validation

import (
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	domainerrors "pluma/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/(\d{2})$`)

// Validator validates request and payment structs.
type Validator struct {
	v   *validator.Validate
	now func() time.Time
}

// New creates a validator with the card_expiry rule registered.
func New() *Validator {
	val := &Validator{v: validator.New(), now: time.Now}

	// Report fields by their JSON names
	val.v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}

		return name
	})

	// Registration only fails for an empty tag or nil func.
	_ = val.v.RegisterValidation("card_expiry", val.validateCardExpiry)

	return val
}

// Validate returns ErrValidationFailed listing every invalid field, or nil.
func (val *Validator) Validate(s any) error {
	fields, err := val.Check(s)
	if err != nil {
		return err
	}
	if len(fields) == 0 {
		return nil
	}

	return domainerrors.ErrValidationFailed.WithDetails(FormatFields(fields))
}

// Check returns a field -> message map of validation failures.
func (val *Validator) Check(s any) (map[string]string, error) {
	err := val.v.Struct(s)
	if err == nil {
		return nil, nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil, errors.WithStack(err)
	}

	fields := make(map[string]string, len(validationErrs))
	for _, e := range validationErrs {
		fields[e.Field()] = friendlyMessage(e)
	}

	return fields, nil
}

// FormatFields renders fields as "field: message" pairs in a stable order.
func FormatFields(fields map[string]string) string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	slices.Sort(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+fields[name])
	}

	return strings.Join(parts, "; ")
}

// validateCardExpiry accepts MM/YY for the current month or later.
func (val *Validator) validateCardExpiry(fl validator.FieldLevel) bool {
	match := expiryPattern.FindStringSubmatch(fl.Field().String())
	if match == nil {
		return false
	}

	month, _ := strconv.Atoi(match[1])
	year, _ := strconv.Atoi(match[2])
	year += 2000

	now := val.now()
	if year != now.Year() {
		return year > now.Year()
	}

	return month >= int(now.Month())
}

func friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "é obrigatório"
	case "email":
		return "deve ser um e-mail válido"
	case "min":
		return "deve ter pelo menos " + e.Param() + " caracteres"
	case "max":
		return "deve ter no máximo " + e.Param() + " caracteres"
	case "gte":
		return "deve ser maior ou igual a " + e.Param()
	case "numeric":
		return "deve conter apenas números"
	case "credit_card":
		return "número de cartão inválido"
	case "card_expiry":
		return "validade inválida ou expirada (MM/AA)"
	case "eqfield":
		return "deve ser igual a " + e.Param()
	case "oneof":
		return "deve ser um de: " + e.Param()
	default:
		return "é inválido"
	}
}
