package shopmodel

import (
	"encoding/json"
)

// Customer owns exactly one shopping cart. An id of 0 means the customer is
// anonymous (not registered with the backend yet).
type Customer struct {
	ID       int
	Name     string
	Email    string
	Password string
	Cart     ShoppingCart
}

func NewCustomer() Customer {
	return Customer{
		Cart: NewShoppingCart(),
	}
}

func (cu Customer) IsAnonymous() bool {
	return cu.ID == 0
}

func (cu *Customer) AddToCart(item *Item, quantity int) {
	cu.Cart.AddItem(item, quantity)
}

func (cu *Customer) RemoveFromCart(itemID int) {
	cu.Cart.RemoveItem(itemID)
}

// CheckoutSnapshot is the cart's state at the moment of checkout,
// independent of whatever happens to the cart afterwards.
type CheckoutSnapshot struct {
	Total   float64
	Entries []CartEntry
}

// Checkout snapshots the cart and replaces it with a brand-new empty one.
// The old cart value is not cleared in place: anyone still holding it keeps
// the pre-checkout state.
func (cu *Customer) Checkout() CheckoutSnapshot {
	snapshot := CheckoutSnapshot{
		Total:   cu.Cart.TotalPrice(),
		Entries: cu.Cart.Entries,
	}

	cu.Cart = NewShoppingCart()

	return snapshot
}

// CustomerJSON is the persisted blob: the customer's fields with the cart
// flattened in.
type CustomerJSON struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Password string          `json:"password"`
	Cart     []CartEntryJSON `json:"cart"`
}

func (cu Customer) ToJSON() CustomerJSON {
	return CustomerJSON{
		ID:       cu.ID,
		Name:     cu.Name,
		Email:    cu.Email,
		Password: cu.Password,
		Cart:     cu.Cart.ToJSON(),
	}
}

// CurrentCustomerKey is the slot under which the single local shopper is kept.
const CurrentCustomerKey = "customer"

// StoredCustomer is the persisted form of a customer: one JSON document,
// parsed leniently on the way out so a corrupt blob cannot lock a shopper out.
type StoredCustomer struct {
	Data string `datastore:",noindex"`
}

func (sc StoredCustomer) Customer() Customer {
	return CustomerFromJSON([]byte(sc.Data))
}

func (cu Customer) Stored() (StoredCustomer, error) {
	data, err := json.Marshal(cu.ToJSON())
	if err != nil {
		return StoredCustomer{}, err
	}
	return StoredCustomer{Data: string(data)}, nil
}

type customerWire struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Password string          `json:"password"`
	Cart     json.RawMessage `json:"cart"`
}

// CustomerFromJSON never fails: a corrupt blob degrades to a fresh anonymous
// customer and corrupt cart data degrades to an empty cart.
func CustomerFromJSON(data []byte) Customer {
	var wire customerWire
	err := json.Unmarshal(data, &wire)
	if err != nil {
		return NewCustomer()
	}

	cart, err := CartFromJSON(wire.Cart)
	if err != nil {
		cart = NewShoppingCart()
	}

	return Customer{
		ID:       wire.ID,
		Name:     wire.Name,
		Email:    wire.Email,
		Password: wire.Password,
		Cart:     cart,
	}
}
