package shopmodel

import (
	"time"
)

// taxRate is a modeling constant, not configuration.
const taxRate = 0.10

// Order is a derived snapshot of a cart at checkout time. It references the
// same items, with the quantities copied, and is independent of the cart it
// was taken from.
type Order struct {
	UserID int
	Lines  []OrderLine
	Date   time.Time
}

type OrderLine struct {
	Item     *Item
	Quantity int
}

func NewOrderFromCart(customer Customer, date time.Time) Order {
	lines := make([]OrderLine, 0, len(customer.Cart.Entries))
	for _, entry := range customer.Cart.Entries {
		lines = append(lines, OrderLine{
			Item:     entry.Item,
			Quantity: entry.Quantity,
		})
	}

	return Order{
		UserID: customer.ID,
		Lines:  lines,
		Date:   date,
	}
}

// OrderFromCartData reconstructs an order from persisted cart JSON.
func OrderFromCartData(userID int, cartData []byte, date time.Time) (Order, error) {
	cart, err := CartFromJSON(cartData)
	if err != nil {
		return Order{}, err
	}

	return NewOrderFromCart(Customer{ID: userID, Cart: cart}, date), nil
}

func (o Order) Subtotal() float64 {
	var subtotal float64
	for _, line := range o.Lines {
		subtotal += line.Item.Price * float64(line.Quantity)
	}
	return subtotal
}

func (o Order) Tax() float64 {
	return o.Subtotal() * taxRate
}

func (o Order) Total() float64 {
	return o.Subtotal() + o.Tax()
}

// OrderJSON is the checkout submission payload: item identity only, the
// backend re-resolves pricing.
type OrderJSON struct {
	UserID int             `json:"user_id"`
	Items  []OrderLineJSON `json:"items"`
	Date   string          `json:"date"`
}

type OrderLineJSON struct {
	ID       int `json:"id"`
	Quantity int `json:"quantity"`
}

func (o Order) ToJSON() OrderJSON {
	items := make([]OrderLineJSON, 0, len(o.Lines))
	for _, line := range o.Lines {
		items = append(items, OrderLineJSON{
			ID:       line.Item.ID,
			Quantity: line.Quantity,
		})
	}

	return OrderJSON{
		UserID: o.UserID,
		Items:  items,
		Date:   o.Date.UTC().Format(time.RFC3339),
	}
}
