package domain

import (
	"time"

	cartdomain "github.com/vibevapes/storefront/internal/cart/domain"
	catalogdomain "github.com/vibevapes/storefront/internal/catalog/domain"
)

type Customer struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// Order is an immutable record of a completed checkout. Items is a snapshot
// of the cart lines at checkout time; later cart mutations never touch it.
type Order struct {
	ID       string              `json:"id"`
	Date     time.Time           `json:"date"`
	Items    []cartdomain.Line   `json:"items"`
	Total    catalogdomain.Money `json:"total"`
	Customer Customer            `json:"customer"`
}
