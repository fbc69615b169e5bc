package models

import "fmt"

// CartItem is one line in a cart: a product in a chosen size, with the unit
// price captured at the moment it was added. Identity is the composite
// (product id, size) pair, so the same product in two sizes makes two lines.
type CartItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Image     string `json:"image"`
	PriceKey  string `json:"price_key"`
	Size      string `json:"size"`       // selected size label, e.g. 250g / 500g / 1kg / 1L
	UnitPrice int64  `json:"unit_price"` // whole rupees, captured at add time
	Qty       int    `json:"qty"`
}

// LineKey returns the composite key identifying this line within a cart.
func (i CartItem) LineKey() string {
	return LineKey(i.ProductID, i.Size)
}

// LineKey builds the composite (product, size) cart line key.
func LineKey(productID, size string) string {
	return fmt.Sprintf("%s__%s", productID, size)
}

// Cart is the ordered collection of line items for one session, with its
// derived values. Order is insertion order and carries no pricing meaning.
type Cart struct {
	Items []CartItem `json:"items"`
}

// Count is the sum of quantities over all line items.
func (c Cart) Count() int {
	var n int
	for _, it := range c.Items {
		n += it.Qty
	}
	return n
}

// Subtotal is the sum of unit price times quantity over all line items.
// All inputs are whole rupees, so the result is exact.
func (c Cart) Subtotal() int64 {
	var s int64
	for _, it := range c.Items {
		s += it.UnitPrice * int64(it.Qty)
	}
	return s
}
