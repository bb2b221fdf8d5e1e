package cart

import (
	"github.com/kitchcrafter/storefront/internal/domain/shared/valueobject"
)

// LineItem represents one product entry in the cart.
// JSON field names match the persisted snapshot format.
type LineItem struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	UnitPrice valueobject.Money `json:"price"`
	Quantity  int64             `json:"quantity"`
}

// LineTotal returns unit price times quantity
func (i LineItem) LineTotal() valueobject.Money {
	return i.UnitPrice.MultiplyByInt(i.Quantity)
}
