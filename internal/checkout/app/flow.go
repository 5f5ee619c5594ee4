package app

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	cartdomain "github.com/vibevapes/storefront/internal/cart/domain"
	catalogdomain "github.com/vibevapes/storefront/internal/catalog/domain"
	orderdomain "github.com/vibevapes/storefront/internal/order/domain"
)

type Stage string

const (
	StageForm    Stage = "form"
	StageLoading Stage = "loading"
	StageSuccess Stage = "success"
)

var (
	ErrEmptyCart = errors.New("cart is empty")
	ErrBusy      = errors.New("checkout already in progress")
)

// FieldErrors maps a form field to its validation message. A non-empty map
// means the submission never left the form stage.
type FieldErrors map[string]string

type Cart interface {
	Lines() []cartdomain.Line
	Clear()
}

type Orders interface {
	Add(ctx context.Context, items []cartdomain.Line, total catalogdomain.Money, customer orderdomain.Customer) orderdomain.Order
}

// Flow sequences a checkout: form -> loading -> success. On a valid submit
// it waits the configured processing delay, records the order, clears the
// cart and lands on success. Only one submission runs at a time.
type Flow struct {
	mu    sync.Mutex
	stage Stage

	cart   Cart
	orders Orders
	delay  time.Duration
	log    *slog.Logger
}

func NewFlow(cart Cart, orders Orders, delay time.Duration, log *slog.Logger) *Flow {
	return &Flow{
		stage:  StageForm,
		cart:   cart,
		orders: orders,
		delay:  delay,
		log:    log,
	}
}

func (f *Flow) Stage() Stage {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.stage
}

// Reset returns the flow to the form stage, e.g. when the success screen is
// dismissed. It does not reopen the cart.
func (f *Flow) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.stage = StageForm
}

// Submit validates the customer fields and, when valid, runs the checkout to
// completion. Validation failures are returned as FieldErrors without
// touching either store. Cancelling the context during the processing delay
// aborts back to the form stage without recording an order.
func (f *Flow) Submit(ctx context.Context, name, address string) (orderdomain.Order, FieldErrors, error) {
	name = strings.TrimSpace(name)
	address = strings.TrimSpace(address)

	f.mu.Lock()
	if f.stage != StageForm {
		f.mu.Unlock()
		return orderdomain.Order{}, nil, ErrBusy
	}

	fieldErrs := FieldErrors{}
	if name == "" {
		fieldErrs["name"] = "O nome completo é obrigatório."
	}
	if address == "" {
		fieldErrs["address"] = "O endereço de entrega é obrigatório."
	}
	if len(fieldErrs) > 0 {
		f.mu.Unlock()
		return orderdomain.Order{}, fieldErrs, nil
	}

	items := f.cart.Lines()
	if len(items) == 0 {
		f.mu.Unlock()
		return orderdomain.Order{}, nil, ErrEmptyCart
	}
	// The total is derived from the captured snapshot, not a second cart
	// read, so a concurrent cart mutation cannot make an order's total
	// disagree with its own items.
	var total catalogdomain.Money
	for _, l := range items {
		total = total.Add(l.Total())
	}
	f.stage = StageLoading
	f.mu.Unlock()

	if err := f.wait(ctx); err != nil {
		f.mu.Lock()
		f.stage = StageForm
		f.mu.Unlock()
		return orderdomain.Order{}, nil, err
	}

	order := f.orders.Add(ctx, items, total, orderdomain.Customer{Name: name, Address: address})
	f.cart.Clear()

	f.mu.Lock()
	f.stage = StageSuccess
	f.mu.Unlock()

	f.log.Info("order placed",
		slog.String("order_id", order.ID),
		slog.Int64("total", order.Total.Amount),
		slog.Int("items", len(order.Items)),
	)
	return order, nil, nil
}

// wait simulates the payment-processing delay.
func (f *Flow) wait(ctx context.Context) error {
	if f.delay <= 0 {
		return nil
	}

	t := time.NewTimer(f.delay)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
