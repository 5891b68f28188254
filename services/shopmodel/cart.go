package shopmodel

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// CartEntry pairs an item with the quantity the shopper wants. The item is
// shared by reference: the catalogue, the cart and an order snapshot all see
// the same Item value.
type CartEntry struct {
	Item     *Item
	Quantity int
}

// ShoppingCart is an ordered collection of entries, unique by item id.
// Entries always have a positive quantity: an entry that would reach zero is
// removed instead.
type ShoppingCart struct {
	Entries []CartEntry
}

func NewShoppingCart() ShoppingCart {
	return ShoppingCart{
		Entries: []CartEntry{},
	}
}

// AddItem merges into an existing entry for the same item id, or appends a
// new entry. On the merge path the resulting quantity is capped at the
// item's stock level; when the entry is already at or above stock the add is
// a no-op.
//
// TODO the new-entry path does not cap the requested quantity against stock
// while the merge path does; kept as observed until product decides which
// behavior is intended.
func (sc *ShoppingCart) AddItem(item *Item, quantity int) {
	existing := sc.findEntry(item.ID)
	if existing != nil {
		if existing.Quantity < item.Stock {
			existing.Quantity += quantity
			if existing.Quantity > item.Stock {
				existing.Quantity = item.Stock
			}
		}
		return
	}

	sc.Entries = append(sc.Entries, CartEntry{
		Item:     item,
		Quantity: quantity,
	})
}

func (sc *ShoppingCart) RemoveItem(itemID int) {
	kept := make([]CartEntry, 0, len(sc.Entries))
	for _, entry := range sc.Entries {
		if entry.Item.ID != itemID {
			kept = append(kept, entry)
		}
	}
	sc.Entries = kept
}

// IncreaseQuantity bumps the entry's quantity by one, capped at the item's
// stock level. Unknown item ids are ignored.
func (sc *ShoppingCart) IncreaseQuantity(itemID int) {
	entry := sc.findEntry(itemID)
	if entry != nil && entry.Quantity < entry.Item.Stock {
		entry.Quantity++
	}
}

// DecreaseQuantity lowers the entry's quantity by one with a floor of 1.
// Removing the last unit requires an explicit RemoveItem.
func (sc *ShoppingCart) DecreaseQuantity(itemID int) {
	entry := sc.findEntry(itemID)
	if entry != nil && entry.Quantity > 1 {
		entry.Quantity--
	}
}

func (sc ShoppingCart) TotalPrice() float64 {
	var total float64
	for _, entry := range sc.Entries {
		total += entry.Item.Price * float64(entry.Quantity)
	}
	return total
}

func (sc ShoppingCart) FormattedTotal() string {
	return fmt.Sprintf("$%.2f", sc.TotalPrice())
}

func (sc ShoppingCart) ItemCount() int {
	return len(sc.Entries)
}

func (sc ShoppingCart) IsEmpty() bool {
	return len(sc.Entries) == 0
}

func (sc *ShoppingCart) findEntry(itemID int) *CartEntry {
	for i := range sc.Entries {
		if sc.Entries[i].Item.ID == itemID {
			return &sc.Entries[i]
		}
	}
	return nil
}

// CartEntryJSON is the flattened wire shape of an entry: the item's fields
// with the quantity merged in.
type CartEntryJSON struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	Quantity int     `json:"quantity"`
}

func (sc ShoppingCart) ToJSON() []CartEntryJSON {
	flattened := make([]CartEntryJSON, 0, len(sc.Entries))
	for _, entry := range sc.Entries {
		flattened = append(flattened, CartEntryJSON{
			ID:       entry.Item.ID,
			Name:     entry.Item.Name,
			Price:    entry.Item.Price,
			Stock:    entry.Item.Stock,
			Quantity: entry.Quantity,
		})
	}
	return flattened
}

// cartEntryWire is the union of the two wire shapes that have been in use
// for cart entries: the flattened form (item fields inline) and the nested
// {"item": {...}, "quantity": n} form.
type cartEntryWire struct {
	itemJSON
	Item     *itemJSON `json:"item"`
	Quantity *int      `json:"quantity"`
}

// normalize picks the item fields from whichever shape was used and defaults
// the quantity to 1 when it is absent or zero.
func (w cartEntryWire) normalize() (itemJSON, int) {
	raw := w.itemJSON
	if w.Item != nil {
		raw = *w.Item
	}

	quantity := 1
	if w.Quantity != nil && *w.Quantity != 0 {
		quantity = *w.Quantity
	}

	return raw, quantity
}

// CartFromJSON is deliberately lenient about the overall payload shape:
// null, a non-array or unparsable data all yield an empty cart rather than
// an error. Individual entries are strict about item identity.
func CartFromJSON(data []byte) (ShoppingCart, error) {
	cart := NewShoppingCart()

	if len(data) == 0 {
		return cart, nil
	}

	var elements []json.RawMessage
	err := json.Unmarshal(data, &elements)
	if err != nil {
		return cart, nil
	}

	for _, element := range elements {
		trimmed := bytes.TrimSpace(element)
		if len(trimmed) == 0 || trimmed[0] != '{' {
			// only objects can describe an entry
			continue
		}

		var wire cartEntryWire
		err := json.Unmarshal(trimmed, &wire)
		if err != nil {
			return NewShoppingCart(), err
		}

		rawItem, quantity := wire.normalize()
		item, err := itemFromWire(rawItem)
		if err != nil {
			return NewShoppingCart(), err
		}

		cart.Entries = append(cart.Entries, CartEntry{
			Item:     &item,
			Quantity: quantity,
		})
	}

	return cart, nil
}
