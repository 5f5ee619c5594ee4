package domain

import catalogdomain "github.com/vibevapes/storefront/internal/catalog/domain"

// Line is one cart entry: a product plus a quantity. Quantity is always at
// least 1; a line that would drop to 0 is removed from the cart instead.
type Line struct {
	Product  catalogdomain.Product `json:"product"`
	Quantity int                   `json:"quantity"`
}

func (l Line) Total() catalogdomain.Money {
	return l.Product.Price.Mul(l.Quantity)
}
