package cart

import (
	"github.com/kitchcrafter/storefront/internal/domain/shared/valueobject"
)

// Cart holds the ordered list of line items for one shopper session.
// Insertion order is display order. At most one line item exists per
// product id; adding an existing id increments its quantity instead.
// Cart is pure state - persistence and notification live in the
// application layer.
type Cart struct {
	items []LineItem
}

// NewCart creates an empty cart
func NewCart() *Cart {
	return &Cart{}
}

// Restore rebuilds a cart from a persisted snapshot. Entries that
// violate the cart invariants (duplicate ids, quantities below one,
// negative prices) are repaired rather than rejected: duplicates merge
// into the first occurrence and unusable entries are dropped. A stale
// or hand-edited snapshot must never prevent startup.
func Restore(items []LineItem) *Cart {
	c := NewCart()
	for _, item := range items {
		if item.ID == "" || item.Quantity < 1 || item.UnitPrice.IsNegative() {
			continue
		}
		if existing := c.find(item.ID); existing != nil {
			existing.Quantity += item.Quantity
			continue
		}
		c.items = append(c.items, item)
	}
	return c
}

// Add puts one unit of the product into the cart. A product already
// present gains one unit; a new product is appended with quantity 1.
// The unit price is taken as given, pricing is the catalog's problem.
func (c *Cart) Add(id, name string, unitPrice valueobject.Money) {
	if existing := c.find(id); existing != nil {
		existing.Quantity++
		return
	}
	c.items = append(c.items, LineItem{
		ID:        id,
		Name:      name,
		UnitPrice: unitPrice,
		Quantity:  1,
	})
}

// Remove deletes the line item with the given id. Removing an absent
// id is a silent no-op.
func (c *Cart) Remove(id string) {
	for i, item := range c.items {
		if item.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// SetQuantity sets the quantity for an existing line item. A quantity
// below one removes the item; an absent id is a no-op.
func (c *Cart) SetQuantity(id string, quantity int64) {
	if quantity < 1 {
		c.Remove(id)
		return
	}
	if item := c.find(id); item != nil {
		item.Quantity = quantity
	}
}

// Clear empties the cart. Idempotent.
func (c *Cart) Clear() {
	c.items = nil
}

// Items returns a copy of the line items in display order
func (c *Cart) Items() []LineItem {
	items := make([]LineItem, len(c.items))
	copy(items, c.items)
	return items
}

// IsEmpty returns true when the cart holds no line items
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Len returns the number of distinct line items
func (c *Cart) Len() int {
	return len(c.items)
}

// UnitCount returns the total number of units across all line items,
// the number shown on the cart badge.
func (c *Cart) UnitCount() int64 {
	var count int64
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

// Subtotal returns the sum of all line totals
func (c *Cart) Subtotal() valueobject.Money {
	subtotal := valueobject.Zero()
	for _, item := range c.items {
		subtotal = subtotal.Add(item.LineTotal())
	}
	return subtotal
}

func (c *Cart) find(id string) *LineItem {
	for i := range c.items {
		if c.items[i].ID == id {
			return &c.items[i]
		}
	}
	return nil
}
