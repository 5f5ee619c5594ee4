package domain

import "fmt"

// Money is an amount in minor units (cents), so price arithmetic stays exact.
type Money struct {
	Currency string `json:"currency"`
	Amount   int64  `json:"amount"`
}

// Mul scales the amount by a quantity.
func (m Money) Mul(qty int) Money {
	return Money{Currency: m.Currency, Amount: m.Amount * int64(qty)}
}

// Add panics on currency mismatch; the catalog is single-currency so a
// mismatch is a programming error.
func (m Money) Add(o Money) Money {
	if m.Currency == "" {
		return o
	}
	if o.Currency != "" && o.Currency != m.Currency {
		panic(fmt.Sprintf("currency mismatch: %s vs %s", m.Currency, o.Currency))
	}
	return Money{Currency: m.Currency, Amount: m.Amount + o.Amount}
}

// Float returns the amount in major units for display payloads.
func (m Money) Float() float64 {
	return float64(m.Amount) / 100
}

// Color is the presentation tag attached to every product.
type Color string

const (
	ColorCyan   Color = "cyan"
	ColorPurple Color = "purple"
	ColorPink   Color = "pink"
)

type Product struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Price       Money    `json:"price"`
	ImageURL    string   `json:"imageUrl"`
	Flavors     []string `json:"flavors"`
	Color       Color    `json:"color"`
	Description string   `json:"description"`
}
