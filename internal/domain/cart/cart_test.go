package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kitchcrafter/storefront/internal/domain/shared/valueobject"
)

func price(f float64) valueobject.Money {
	return valueobject.NewMoneyFromFloat(f)
}

func TestCart_Add(t *testing.T) {
	t.Run("appends new items in insertion order", func(t *testing.T) {
		c := NewCart()
		c.Add("press-maiz", "Press&Maiz", price(50))
		c.Add("combo-tamal", "Combo Tamal", price(75))

		items := c.Items()
		require.Len(t, items, 2)
		assert.Equal(t, "press-maiz", items[0].ID)
		assert.Equal(t, "combo-tamal", items[1].ID)
		assert.EqualValues(t, 1, items[0].Quantity)
	})

	t.Run("same id twice yields one item with quantity 2", func(t *testing.T) {
		c := NewCart()
		c.Add("press-maiz", "Press&Maiz", price(50))
		c.Add("press-maiz", "Press&Maiz", price(50))

		items := c.Items()
		require.Len(t, items, 1)
		assert.EqualValues(t, 2, items[0].Quantity)
		assert.Equal(t, "100.00", c.Subtotal().StringFixed())
	})
}

func TestCart_Remove(t *testing.T) {
	c := NewCart()
	c.Add("a", "A", price(10))
	c.Add("b", "B", price(20))

	c.Remove("a")
	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "b", items[0].ID)

	// absent id is a silent no-op
	c.Remove("missing")
	assert.Equal(t, 1, c.Len())
}

func TestCart_SetQuantity(t *testing.T) {
	t.Run("updates quantity of existing item", func(t *testing.T) {
		c := NewCart()
		c.Add("a", "A", price(10))
		c.SetQuantity("a", 5)
		assert.EqualValues(t, 5, c.Items()[0].Quantity)
		assert.Equal(t, "50.00", c.Subtotal().StringFixed())
	})

	t.Run("zero is equivalent to remove", func(t *testing.T) {
		c := NewCart()
		c.Add("a", "A", price(10))
		c.SetQuantity("a", 0)
		assert.True(t, c.IsEmpty())
		assert.Equal(t, "0.00", c.Subtotal().StringFixed())
	})

	t.Run("negative is equivalent to remove", func(t *testing.T) {
		c := NewCart()
		c.Add("a", "A", price(10))
		c.SetQuantity("a", -3)
		assert.True(t, c.IsEmpty())
	})

	t.Run("absent id is a no-op", func(t *testing.T) {
		c := NewCart()
		c.Add("a", "A", price(10))
		c.SetQuantity("ghost", 4)
		assert.Equal(t, 1, c.Len())
		assert.EqualValues(t, 1, c.Items()[0].Quantity)
	})
}

func TestCart_Clear(t *testing.T) {
	c := NewCart()
	c.Add("a", "A", price(10))
	c.Clear()
	assert.True(t, c.IsEmpty())

	// idempotent
	c.Clear()
	assert.True(t, c.IsEmpty())
}

func TestCart_UnitCount(t *testing.T) {
	c := NewCart()
	assert.EqualValues(t, 0, c.UnitCount())

	c.Add("a", "A", price(10))
	c.Add("a", "A", price(10))
	c.Add("b", "B", price(20))
	assert.EqualValues(t, 3, c.UnitCount())
}

func TestCart_SubtotalMatchesItemSet(t *testing.T) {
	// arbitrary mutation sequence: subtotal must always equal the sum
	// over the surviving item set, and ids must stay unique
	c := NewCart()
	c.Add("a", "A", price(12.50))
	c.Add("b", "B", price(3.33))
	c.Add("a", "A", price(12.50))
	c.SetQuantity("b", 7)
	c.Add("c", "C", price(99.99))
	c.Remove("c")
	c.SetQuantity("a", 3)

	seen := map[string]bool{}
	expected := valueobject.Zero()
	for _, item := range c.Items() {
		require.False(t, seen[item.ID], "duplicate id %s", item.ID)
		seen[item.ID] = true
		expected = expected.Add(item.LineTotal())
	}
	assert.True(t, c.Subtotal().Equals(expected))
	assert.Equal(t, "60.81", c.Subtotal().StringFixed())
}

func TestRestore(t *testing.T) {
	t.Run("round-trips a valid snapshot", func(t *testing.T) {
		c := NewCart()
		c.Add("a", "A", price(10))
		c.Add("b", "B", price(20))
		c.SetQuantity("b", 2)

		restored := Restore(c.Items())
		assert.Equal(t, c.Items(), restored.Items())
	})

	t.Run("repairs invariant violations", func(t *testing.T) {
		restored := Restore([]LineItem{
			{ID: "a", Name: "A", UnitPrice: price(10), Quantity: 1},
			{ID: "", Name: "ghost", UnitPrice: price(5), Quantity: 1},
			{ID: "b", Name: "B", UnitPrice: price(20), Quantity: 0},
			{ID: "a", Name: "A", UnitPrice: price(10), Quantity: 2},
		})

		items := restored.Items()
		require.Len(t, items, 1)
		assert.Equal(t, "a", items[0].ID)
		assert.EqualValues(t, 3, items[0].Quantity)
	})
}

func TestShippingRule(t *testing.T) {
	rule := NewShippingRule(price(30))

	tests := []struct {
		zone Zone
		fee  string
	}{
		{ZoneGuatemala, "0.00"},
		{ZoneSacatepequez, "0.00"},
		{ZoneInterior, "30.00"},
		{ZoneUnknown, "0.00"},
	}
	for _, tt := range tests {
		t.Run(string(tt.zone), func(t *testing.T) {
			assert.Equal(t, tt.fee, rule.FeeFor(tt.zone).StringFixed())
		})
	}

	t.Run("zero fee reproduces free shipping everywhere", func(t *testing.T) {
		free := NewShippingRule(valueobject.Zero())
		assert.True(t, free.FeeFor(ZoneInterior).IsZero())
	})
}

func TestParseZone(t *testing.T) {
	assert.Equal(t, ZoneGuatemala, ParseZone("guatemala"))
	assert.Equal(t, ZoneSacatepequez, ParseZone(" Sacatepequez "))
	assert.Equal(t, ZoneInterior, ParseZone("INTERIOR"))
	assert.Equal(t, ZoneUnknown, ParseZone("quetzaltenango"))
	assert.Equal(t, ZoneUnknown, ParseZone(""))

	assert.True(t, ZoneInterior.IsKnown())
	assert.False(t, ZoneUnknown.IsKnown())
}
