package shopmodel

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomerCheckout(t *testing.T) {

	t.Run("Checkout empties the cart and keeps the snapshot", func(t *testing.T) {
		customer := NewCustomer()
		customer.AddToCart(apple(), 2)
		customer.AddToCart(banana(), 3)

		snapshot := customer.Checkout()

		assert.Equal(t, 0, customer.Cart.ItemCount())
		assert.InDelta(t, 8.0, snapshot.Total, 1e-9)
		assert.Len(t, snapshot.Entries, 2)
	})

	t.Run("Old cart reference keeps the pre-checkout state", func(t *testing.T) {
		customer := NewCustomer()
		customer.AddToCart(apple(), 2)

		before := customer.Cart
		customer.Checkout()

		assert.Equal(t, 1, before.ItemCount())
		assert.Equal(t, 0, customer.Cart.ItemCount())
	})
}

func TestCustomerSerialization(t *testing.T) {

	t.Run("Round trip", func(t *testing.T) {
		customer := Customer{
			ID:       42,
			Name:     "Eva",
			Email:    "eva@example.com",
			Password: "secret",
			Cart:     NewShoppingCart(),
		}
		customer.AddToCart(apple(), 2)

		data, err := json.Marshal(customer.ToJSON())
		assert.NoError(t, err)

		restored := CustomerFromJSON(data)
		assert.Equal(t, 42, restored.ID)
		assert.Equal(t, "Eva", restored.Name)
		assert.Equal(t, "eva@example.com", restored.Email)
		assert.Equal(t, 1, restored.Cart.ItemCount())
		assert.Equal(t, 2, restored.Cart.Entries[0].Quantity)
	})

	t.Run("Corrupt blob degrades to anonymous customer", func(t *testing.T) {
		restored := CustomerFromJSON([]byte(`{{{not json`))
		assert.True(t, restored.IsAnonymous())
		assert.True(t, restored.Cart.IsEmpty())
	})

	t.Run("Corrupt cart degrades to empty cart", func(t *testing.T) {
		restored := CustomerFromJSON([]byte(`{"id":42,"name":"Eva","cart":{"bogus":true}}`))
		assert.Equal(t, 42, restored.ID)
		assert.True(t, restored.Cart.IsEmpty())
	})

	t.Run("Cart entry without identity degrades to empty cart", func(t *testing.T) {
		restored := CustomerFromJSON([]byte(`{"id":42,"cart":[{"name":"Apple","quantity":2}]}`))
		assert.Equal(t, 42, restored.ID)
		assert.True(t, restored.Cart.IsEmpty())
	})
}
