package order

import (
	"time"

	"github.com/kitchcrafter/storefront/internal/domain/cart"
	"github.com/kitchcrafter/storefront/internal/domain/shared"
	"github.com/kitchcrafter/storefront/internal/domain/shared/valueobject"
)

// PaymentMethod represents how the customer intends to pay
type PaymentMethod string

const (
	PaymentTransfer PaymentMethod = "transferencia"
	PaymentCash     PaymentMethod = "efectivo"
	PaymentCard     PaymentMethod = "tarjeta"
)

// IsValid checks if the method is one the storefront accepts
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentTransfer, PaymentCash, PaymentCard:
		return true
	}
	return false
}

// String returns the string representation of the payment method
func (m PaymentMethod) String() string {
	return string(m)
}

// Customer holds the contact and delivery details collected at checkout
type Customer struct {
	Name    string
	Email   string
	Phone   string
	Address string
	City    cart.Zone
}

// Order is the immutable snapshot built at the moment of submission.
// Cart mutations after the snapshot must not alter an in-flight order.
type Order struct {
	Reference     string
	SubmittedAt   time.Time
	Customer      Customer
	PaymentMethod PaymentMethod
	Notes         string
	Items         []cart.LineItem
	Subtotal      valueobject.Money
	Shipping      valueobject.Money
	Total         valueobject.Money
}

// New builds an order snapshot from the frozen cart contents and the
// validated customer details, minting a fresh reference. Every
// submission attempt gets its own reference; nothing is reused across
// retries.
func New(customer Customer, payment PaymentMethod, notes string, items []cart.LineItem, subtotal, shipping valueobject.Money, now time.Time) (*Order, error) {
	if len(items) == 0 {
		return nil, shared.ErrEmptyCart
	}
	if !payment.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Selecciona un método de pago")
	}

	frozen := make([]cart.LineItem, len(items))
	copy(frozen, items)

	return &Order{
		Reference:     NewReference(now),
		SubmittedAt:   now,
		Customer:      customer,
		PaymentMethod: payment,
		Notes:         notes,
		Items:         frozen,
		Subtotal:      subtotal,
		Shipping:      shipping,
		Total:         subtotal.Add(shipping),
	}, nil
}
