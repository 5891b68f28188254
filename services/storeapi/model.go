package storeapi

import (
	"github.com/MarcGrol/shopclient/services/shopmodel"
)

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Account struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// OrderSummary is a read-only view on a previously placed order.
type OrderSummary struct {
	ID    int                       `json:"id"`
	Date  string                    `json:"date"`
	Items []shopmodel.OrderLineJSON `json:"items"`
	Total float64                   `json:"total"`
}
