package cart

import "github.com/arpitapatill/Online-Pharmacy-Team3/internal/catalog"

// Item is a catalog product plus the quantity of it sitting in the cart.
type Item struct {
	catalog.Product
	Quantity int `json:"quantity"`
}

// Add returns the cart with the product added. An existing entry (matched by
// product id) gets its quantity bumped by one; otherwise a new entry with
// quantity 1 is appended. Products without an id are ignored.
func Add(items []Item, p catalog.Product) []Item {
	if p.ID == "" {
		return items
	}
	for i := range items {
		if items[i].ID == p.ID {
			items[i].Quantity++
			return items
		}
	}
	return append(items, Item{Product: p, Quantity: 1})
}

// Remove drops the entry with the given id, if present.
func Remove(items []Item, id catalog.ID) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if it.ID != id {
			out = append(out, it)
		}
	}
	return out
}

// SetQuantity sets the quantity of the entry with the given id. A quantity of
// zero or less removes the entry: the cart never holds a zero-quantity item.
func SetQuantity(items []Item, id catalog.ID, quantity int) []Item {
	if quantity <= 0 {
		return Remove(items, id)
	}
	for i := range items {
		if items[i].ID == id {
			items[i].Quantity = quantity
			break
		}
	}
	return items
}

// Total is the cart subtotal: price times quantity, summed.
func Total(items []Item) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Price * float64(it.Quantity)
	}
	return sum
}

// Count is the number of units across all entries.
func Count(items []Item) int {
	n := 0
	for _, it := range items {
		n += it.Quantity
	}
	return n
}
