package shopmodel

import (
	"encoding/json"
	"fmt"

	"github.com/MarcGrol/shopclient/lib/myerrors"
)

// Item is a single catalogue product. The stock field is a local mirror of
// the backend's stock level: the backend remains authoritative.
type Item struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

func (i Item) FormattedPrice() string {
	return fmt.Sprintf("$%.2f", i.Price)
}

func (i Item) IsAvailable() bool {
	return i.Stock > 0
}

// DecreaseStock lowers the stock level, but never below zero: when less than
// amount is in stock the call leaves the stock untouched.
func (i *Item) DecreaseStock(amount int) {
	if i.Stock >= amount {
		i.Stock -= amount
	}
}

func (i *Item) IncreaseStock(amount int) {
	i.Stock += amount
}

// itemJSON is the wire shape of an item. Pointers distinguish absent fields
// from zero values: identity and the numeric fields are mandatory.
type itemJSON struct {
	ID    *int     `json:"id"`
	Name  string   `json:"name"`
	Price *float64 `json:"price"`
	Stock *int     `json:"stock"`
}

func ItemFromJSON(data []byte) (Item, error) {
	var raw itemJSON
	err := json.Unmarshal(data, &raw)
	if err != nil {
		return Item{}, myerrors.NewInvalidInputErrorf("error parsing item: %s", err)
	}

	return itemFromWire(raw)
}

func itemFromWire(raw itemJSON) (Item, error) {
	if raw.ID == nil {
		return Item{}, myerrors.NewInvalidInputErrorf("item without id")
	}
	if raw.Price == nil {
		return Item{}, myerrors.NewInvalidInputErrorf("item %d without price", *raw.ID)
	}
	if raw.Stock == nil {
		return Item{}, myerrors.NewInvalidInputErrorf("item %d without stock", *raw.ID)
	}

	return Item{
		ID:    *raw.ID,
		Name:  raw.Name,
		Price: *raw.Price,
		Stock: *raw.Stock,
	}, nil
}
