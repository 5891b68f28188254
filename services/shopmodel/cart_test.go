package shopmodel

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func apple() *Item {
	return &Item{ID: 1, Name: "Apple", Price: 2.5, Stock: 10}
}

func banana() *Item {
	return &Item{ID: 2, Name: "Banana", Price: 1.0, Stock: 5}
}

func TestCartAddItem(t *testing.T) {

	t.Run("Entries are unique by item id", func(t *testing.T) {
		cart := NewShoppingCart()

		cart.AddItem(apple(), 1)
		cart.AddItem(apple(), 1)
		cart.AddItem(apple(), 1)

		assert.Equal(t, 1, cart.ItemCount())
		assert.Equal(t, 3, cart.Entries[0].Quantity)
	})

	t.Run("Merge is capped at stock", func(t *testing.T) {
		cart := NewShoppingCart()
		item := &Item{ID: 1, Name: "Apple", Price: 2.5, Stock: 3}

		cart.AddItem(item, 2)
		cart.AddItem(item, 5)

		assert.Equal(t, 3, cart.Entries[0].Quantity)
	})

	t.Run("Merge at stock is a no-op", func(t *testing.T) {
		cart := NewShoppingCart()
		item := &Item{ID: 1, Name: "Apple", Price: 2.5, Stock: 3}

		cart.AddItem(item, 3)
		cart.AddItem(item, 1)

		assert.Equal(t, 3, cart.Entries[0].Quantity)
	})

	t.Run("Order of entries is preserved", func(t *testing.T) {
		cart := NewShoppingCart()

		cart.AddItem(apple(), 1)
		cart.AddItem(banana(), 1)

		assert.Equal(t, "Apple", cart.Entries[0].Item.Name)
		assert.Equal(t, "Banana", cart.Entries[1].Item.Name)
	})
}

func TestCartQuantities(t *testing.T) {

	t.Run("Increase is capped at stock", func(t *testing.T) {
		cart := NewShoppingCart()
		item := &Item{ID: 1, Name: "Apple", Price: 2.5, Stock: 2}
		cart.AddItem(item, 1)

		cart.IncreaseQuantity(item.ID)
		cart.IncreaseQuantity(item.ID)
		cart.IncreaseQuantity(item.ID)

		assert.Equal(t, 2, cart.Entries[0].Quantity)
	})

	t.Run("Decrease never goes below one", func(t *testing.T) {
		cart := NewShoppingCart()
		cart.AddItem(apple(), 2)

		cart.DecreaseQuantity(1)
		cart.DecreaseQuantity(1)
		cart.DecreaseQuantity(1)

		assert.Equal(t, 1, cart.Entries[0].Quantity)
	})

	t.Run("Unknown item id is ignored", func(t *testing.T) {
		cart := NewShoppingCart()
		cart.AddItem(apple(), 2)

		cart.IncreaseQuantity(999)
		cart.DecreaseQuantity(999)

		assert.Equal(t, 2, cart.Entries[0].Quantity)
	})

	t.Run("Remove item", func(t *testing.T) {
		cart := NewShoppingCart()
		cart.AddItem(apple(), 2)
		cart.AddItem(banana(), 1)

		cart.RemoveItem(1)

		assert.Equal(t, 1, cart.ItemCount())
		assert.Equal(t, "Banana", cart.Entries[0].Item.Name)
	})

	t.Run("Remove unknown item is a no-op", func(t *testing.T) {
		cart := NewShoppingCart()
		cart.AddItem(apple(), 2)

		cart.RemoveItem(999)

		assert.Equal(t, 1, cart.ItemCount())
	})
}

func TestCartPricing(t *testing.T) {

	t.Run("Total price reflects current entries", func(t *testing.T) {
		cart := NewShoppingCart()
		cart.AddItem(apple(), 2)  // 2 x 2.50
		cart.AddItem(banana(), 3) // 3 x 1.00

		assert.InDelta(t, 8.0, cart.TotalPrice(), 1e-9)
		assert.Equal(t, "$8.00", cart.FormattedTotal())

		cart.RemoveItem(2)
		assert.InDelta(t, 5.0, cart.TotalPrice(), 1e-9)
	})

	t.Run("Empty cart totals zero", func(t *testing.T) {
		cart := NewShoppingCart()
		assert.Equal(t, "$0.00", cart.FormattedTotal())
		assert.True(t, cart.IsEmpty())
	})
}

func TestCartSerialization(t *testing.T) {

	t.Run("Round trip", func(t *testing.T) {
		cart := NewShoppingCart()
		cart.AddItem(apple(), 2)

		flattened := cart.ToJSON()
		data, err := json.Marshal(flattened)
		assert.NoError(t, err)
		assert.JSONEq(t, `[{"id":1,"name":"Apple","price":2.5,"stock":10,"quantity":2}]`, string(data))

		restored, err := CartFromJSON(data)
		assert.NoError(t, err)
		assert.Equal(t, 1, restored.ItemCount())
		assert.Equal(t, "Apple", restored.Entries[0].Item.Name)
		assert.Equal(t, 2, restored.Entries[0].Quantity)
	})

	t.Run("Nested entry form is accepted", func(t *testing.T) {
		cart, err := CartFromJSON([]byte(`[{"item":{"id":1,"name":"Apple","price":2.5,"stock":10},"quantity":2}]`))
		assert.NoError(t, err)
		assert.Equal(t, 1, cart.ItemCount())
		assert.Equal(t, "Apple", cart.Entries[0].Item.Name)
		assert.Equal(t, 2, cart.Entries[0].Quantity)
	})

	t.Run("Quantity defaults to one when absent", func(t *testing.T) {
		cart, err := CartFromJSON([]byte(`[{"id":1,"name":"Apple","price":2.5,"stock":10}]`))
		assert.NoError(t, err)
		assert.Equal(t, 1, cart.Entries[0].Quantity)
	})

	t.Run("Quantity defaults to one when zero", func(t *testing.T) {
		cart, err := CartFromJSON([]byte(`[{"id":1,"name":"Apple","price":2.5,"stock":10,"quantity":0}]`))
		assert.NoError(t, err)
		assert.Equal(t, 1, cart.Entries[0].Quantity)
	})

	t.Run("Lenient on shape", func(t *testing.T) {
		for _, payload := range []string{"", "null", "{}", `"cart"`, "42"} {
			cart, err := CartFromJSON([]byte(payload))
			assert.NoError(t, err, payload)
			assert.True(t, cart.IsEmpty(), payload)
		}
	})

	t.Run("Non-object elements are skipped", func(t *testing.T) {
		cart, err := CartFromJSON([]byte(`[null, 42, {"id":1,"name":"Apple","price":2.5,"stock":10,"quantity":2}]`))
		assert.NoError(t, err)
		assert.Equal(t, 1, cart.ItemCount())
	})

	t.Run("Entry without item id fails", func(t *testing.T) {
		_, err := CartFromJSON([]byte(`[{"name":"Apple","price":2.5,"stock":10,"quantity":2}]`))
		assert.Error(t, err)
	})
}
