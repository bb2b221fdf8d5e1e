package checkout

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/kitchcrafter/storefront/internal/domain/shared"
)

// Form carries the raw checkout input exactly as the shopper typed it.
// Struct field order is guard order: the first failing field produces
// the user-facing message.
type Form struct {
	Name          string `validate:"required"`
	Email         string `validate:"required,email"`
	Phone         string `validate:"required"`
	Address       string `validate:"required"`
	City          string `validate:"required"`
	PaymentMethod string `validate:"required"`
	Notes         string
}

// fieldLabels maps struct fields to the labels shown in validation
// messages, matching the checkout form captions.
var fieldLabels = map[string]string{
	"Name":          "nombre completo",
	"Email":         "correo electrónico",
	"Phone":         "teléfono",
	"Address":       "dirección",
	"City":          "ciudad/departamento",
	"PaymentMethod": "método de pago",
}

// trimmed returns a copy with surrounding whitespace removed from
// every field, so a string of spaces does not pass the required guard.
func (f Form) trimmed() Form {
	return Form{
		Name:          strings.TrimSpace(f.Name),
		Email:         strings.TrimSpace(f.Email),
		Phone:         strings.TrimSpace(f.Phone),
		Address:       strings.TrimSpace(f.Address),
		City:          strings.TrimSpace(f.City),
		PaymentMethod: strings.TrimSpace(f.PaymentMethod),
		Notes:         strings.TrimSpace(f.Notes),
	}
}

// validateForm runs the field guards in declaration order and converts
// the first failure to a domain error: a blank required field names
// the specific field, a malformed email is reported as an email-format
// error rather than a missing field.
func validateForm(v *validator.Validate, form Form) *shared.DomainError {
	err := v.Struct(form)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return shared.ErrInvalidInput
	}

	first := validationErrors[0]
	if first.Tag() == "email" {
		return shared.ErrInvalidEmailFormat
	}
	label, ok := fieldLabels[first.StructField()]
	if !ok {
		label = first.StructField()
	}
	return shared.NewMissingFieldError(label)
}
