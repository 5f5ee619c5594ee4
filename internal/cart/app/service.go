package app

import (
	"sync"

	catalogdomain "github.com/vibevapes/storefront/internal/catalog/domain"
	"github.com/vibevapes/storefront/internal/cart/domain"
)

// Service is the cart store for the running session. Lines keep insertion
// order, at most one line exists per product id, and the aggregates are
// recomputed from the lines on every read so they can never drift.
//
// The cart lives in memory only; it is created empty at startup and is not
// persisted anywhere.
type Service struct {
	mu    sync.Mutex
	lines []domain.Line
	open  bool
}

func NewService() *Service {
	return &Service{}
}

// Add increments the quantity of an existing line for the product, or
// appends a new line with quantity 1. It never fails.
func (s *Service) Add(p catalogdomain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].Product.ID == p.ID {
			s.lines[i].Quantity++
			return
		}
	}
	s.lines = append(s.lines, domain.Line{Product: p, Quantity: 1})
}

// Remove deletes the line for the product id. Unknown ids are a no-op.
func (s *Service) Remove(productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.removeLocked(productID)
}

// SetQuantity sets the line's quantity. A quantity of zero or less removes
// the line; unknown ids are a no-op.
func (s *Service) SetQuantity(productID, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if qty <= 0 {
		s.removeLocked(productID)
		return
	}
	for i := range s.lines {
		if s.lines[i].Product.ID == productID {
			s.lines[i].Quantity = qty
			return
		}
	}
}

// Clear empties the cart. The open flag is untouched.
func (s *Service) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
}

// Toggle flips the sidebar visibility flag. UI state only.
func (s *Service) Toggle() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.open = !s.open
}

func (s *Service) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.open
}

// Lines returns a copy of the current lines in insertion order.
func (s *Service) Lines() []domain.Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// ItemCount is the sum of quantities over all lines.
func (s *Service) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, l := range s.lines {
		count += l.Quantity
	}
	return count
}

// Total is the sum of price x quantity over all lines.
func (s *Service) Total() catalogdomain.Money {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total catalogdomain.Money
	for _, l := range s.lines {
		total = total.Add(l.Total())
	}
	return total
}

func (s *Service) removeLocked(productID int) {
	for i := range s.lines {
		if s.lines[i].Product.ID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return
		}
	}
}
