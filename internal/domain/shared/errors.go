package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrEmptyCart           = NewDomainError("EMPTY_CART", "Agrega productos antes de finalizar la compra")
	ErrInvalidEmailFormat  = NewDomainError("INVALID_EMAIL", "El correo electrónico no tiene un formato válido")
	ErrDuplicateSubmission = NewDomainError("DUPLICATE_SUBMISSION", "Ya hay una orden en proceso de envío")
	ErrInvalidInput        = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrInvalidState        = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
)

// NewMissingFieldError reports a required checkout field that is blank.
// The field name is the user-facing label, not the struct field name.
func NewMissingFieldError(field string) *DomainError {
	return &DomainError{
		Code:    "MISSING_FIELD",
		Message: "Por favor completa el campo requerido: " + field,
	}
}

// NewDeliveryFailureError wraps the classified message for a failed
// order delivery.
func NewDeliveryFailureError(message string) *DomainError {
	return &DomainError{
		Code:    "DELIVERY_FAILURE",
		Message: message,
	}
}
