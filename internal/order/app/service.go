package app

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	cartdomain "github.com/vibevapes/storefront/internal/cart/domain"
	catalogdomain "github.com/vibevapes/storefront/internal/catalog/domain"
	"github.com/vibevapes/storefront/internal/order/domain"
	"github.com/vibevapes/storefront/pkg/kvstore"
)

// StorageKey holds the serialized order history, one JSON array per the
// whole list. The key name is kept from the original storefront.
const StorageKey = "vibeVapesOrders"

// Service is the order store: an in-memory list of placed orders, most
// recent first, mirrored to the storage boundary after every mutation.
type Service struct {
	mu     sync.Mutex
	store  kvstore.Store
	log    *slog.Logger
	orders []domain.Order

	now func() time.Time
}

func NewService(store kvstore.Store, log *slog.Logger) *Service {
	return &Service{
		store: store,
		log:   log,
		now:   time.Now,
	}
}

// Load reads the persisted order history. A missing key means no prior
// orders. A record that fails to parse is discarded and deleted so the next
// run starts clean; the error is logged, never returned.
func (s *Service) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.store.Get(ctx, StorageKey)
	if errors.Is(err, kvstore.ErrNotFound) {
		return
	}
	if err != nil {
		s.log.Error("failed to read order history", slog.Any("err", err))
		return
	}

	var orders []domain.Order
	if err := json.Unmarshal(raw, &orders); err != nil {
		s.log.Error("discarding corrupt order history", slog.Any("err", err))
		if delErr := s.store.Delete(ctx, StorageKey); delErr != nil {
			s.log.Error("failed to clear corrupt order history", slog.Any("err", delErr))
		}
		return
	}

	s.orders = orders
}

// Add records a new order built from the given cart snapshot and prepends
// it to the history. The full list is persisted afterwards; persistence is
// best effort and a write failure only logs.
func (s *Service) Add(ctx context.Context, items []cartdomain.Line, total catalogdomain.Money, customer domain.Customer) domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	order := domain.Order{
		ID:       now.Format(time.RFC3339Nano),
		Date:     now,
		Items:    items,
		Total:    total,
		Customer: customer,
	}

	s.orders = append([]domain.Order{order}, s.orders...)
	s.persistLocked(ctx)
	return order
}

// Orders returns a copy of the history, most recent first.
func (s *Service) Orders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// persistLocked writes the whole list to the storage boundary. An empty
// list is never written, so a fresh session cannot clobber a previously
// persisted history before Load has run.
func (s *Service) persistLocked(ctx context.Context) {
	if len(s.orders) == 0 {
		return
	}

	raw, err := json.Marshal(s.orders)
	if err != nil {
		s.log.Error("failed to encode order history", slog.Any("err", err))
		return
	}
	if err := s.store.Set(ctx, StorageKey, raw); err != nil {
		s.log.Error("failed to persist order history", slog.Any("err", err))
	}
}
