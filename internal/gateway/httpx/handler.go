package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	cartapp "github.com/vibevapes/storefront/internal/cart/app"
	catalogapp "github.com/vibevapes/storefront/internal/catalog/app"
	catalogdomain "github.com/vibevapes/storefront/internal/catalog/domain"
	checkoutapp "github.com/vibevapes/storefront/internal/checkout/app"
	orderapp "github.com/vibevapes/storefront/internal/order/app"
	vibeapp "github.com/vibevapes/storefront/internal/vibe/app"
	"github.com/vibevapes/storefront/pkg/metrics"
)

// Describer is the flavor-description side of the AI boundary.
type Describer interface {
	GenerateFlavorDescription(ctx context.Context, productName string, flavors []string) string
	DescribeAll(ctx context.Context, products []catalogdomain.Product) map[int]string
}

// Handler exposes the storefront's UI-facing operations over HTTP.
type Handler struct {
	catalog  *catalogapp.Service
	cart     *cartapp.Service
	orders   *orderapp.Service
	checkout *checkoutapp.Flow
	vibe     *vibeapp.Service
	describe Describer
	metrics  *metrics.StoreMetrics // nil-safe: counting skipped if nil
	log      *slog.Logger
}

func NewHandler(
	catalog *catalogapp.Service,
	cart *cartapp.Service,
	orders *orderapp.Service,
	checkout *checkoutapp.Flow,
	vibe *vibeapp.Service,
	describe Describer,
	m *metrics.StoreMetrics,
	log *slog.Logger,
) *Handler {
	return &Handler{
		catalog:  catalog,
		cart:     cart,
		orders:   orders,
		checkout: checkout,
		vibe:     vibe,
		describe: describe,
		metrics:  m,
		log:      log,
	}
}

// --- catalog ---

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.ListProducts(r.Context())
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapProducts(products))
}

func (h *Handler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.SearchProducts(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapProducts(products))
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "product id must be an integer")
		return
	}

	p, err := h.catalog.GetProduct(r.Context(), id)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapProduct(p))
}

// DescribeProduct returns an AI-generated flavor description. The AI call
// never fails; provider problems surface as the fixed fallback text.
func (h *Handler) DescribeProduct(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "product id must be an integer")
		return
	}

	p, err := h.catalog.GetProduct(r.Context(), id)
	if err != nil {
		writeAppError(w, err)
		return
	}

	text := h.describe.GenerateFlavorDescription(r.Context(), p.Name, p.Flavors)
	h.countAICall("description", "ok")
	writeJSON(w, http.StatusOK, DescriptionResponse{ProductID: p.ID, Description: text})
}

// DescribeAllProducts generates descriptions for the whole catalog in one
// call, for prewarming the product grid.
func (h *Handler) DescribeAllProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.ListProducts(r.Context())
	if err != nil {
		writeAppError(w, err)
		return
	}

	descriptions := h.describe.DescribeAll(r.Context(), products)
	h.countAICall("description_batch", "ok")

	out := make([]DescriptionResponse, 0, len(products))
	for _, p := range products {
		out = append(out, DescriptionResponse{ProductID: p.ID, Description: descriptions[p.ID]})
	}
	writeJSON(w, http.StatusOK, out)
}

// --- cart ---

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.cartResponse())
}

func (h *Handler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	var req AddCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}

	p, err := h.catalog.GetProduct(r.Context(), req.ProductID)
	if err != nil {
		writeAppError(w, err)
		return
	}

	h.cart.Add(p)
	h.countCartOp("add")
	writeJSON(w, http.StatusOK, h.cartResponse())
}

func (h *Handler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "product id must be an integer")
		return
	}

	var req UpdateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}

	h.cart.SetQuantity(id, req.Quantity)
	h.countCartOp("set_quantity")
	writeJSON(w, http.StatusOK, h.cartResponse())
}

func (h *Handler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "product id must be an integer")
		return
	}

	h.cart.Remove(id)
	h.countCartOp("remove")
	writeJSON(w, http.StatusOK, h.cartResponse())
}

func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	h.cart.Clear()
	h.countCartOp("clear")
	writeJSON(w, http.StatusOK, h.cartResponse())
}

func (h *Handler) ToggleCart(w http.ResponseWriter, r *http.Request) {
	h.cart.Toggle()
	h.countCartOp("toggle")
	writeJSON(w, http.StatusOK, h.cartResponse())
}

// --- checkout ---

func (h *Handler) SubmitCheckout(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}

	order, fieldErrs, err := h.checkout.Submit(r.Context(), req.Name, req.Address)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			// Client went away mid-checkout; nothing to answer.
			return
		}
		writeAppError(w, err)
		return
	}
	if len(fieldErrs) > 0 {
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error:  "VALIDATION_FAILED",
			Fields: fieldErrs,
		})
		return
	}

	if h.metrics != nil {
		h.metrics.OrdersPlaced.Inc()
	}
	writeJSON(w, http.StatusCreated, mapOrder(order))
}

func (h *Handler) CheckoutStage(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, StageResponse{Stage: string(h.checkout.Stage())})
}

func (h *Handler) ResetCheckout(w http.ResponseWriter, r *http.Request) {
	h.checkout.Reset()
	writeJSON(w, http.StatusOK, StageResponse{Stage: string(h.checkout.Stage())})
}

// --- orders ---

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, mapOrders(h.orders.Orders()))
}

// --- vibe quiz ---

func (h *Handler) VibeQuestions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.vibe.Questions())
}

func (h *Handler) StartVibeSession(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusCreated, h.vibe.Start())
}

func (h *Handler) GetVibeSession(w http.ResponseWriter, r *http.Request) {
	sess, err := h.vibe.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

func (h *Handler) AnswerVibeSession(w http.ResponseWriter, r *http.Request) {
	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}

	sess, err := h.vibe.Answer(r.Context(), chi.URLParam(r, "id"), req.Answer)
	if err != nil {
		writeAppError(w, err)
		return
	}

	switch sess.Stage {
	case vibeapp.StageResult:
		h.countAICall("recommendation", "ok")
	case vibeapp.StageError:
		h.countAICall("recommendation", "error")
	}
	writeJSON(w, http.StatusOK, sess)
}

func (h *Handler) RetryVibeSession(w http.ResponseWriter, r *http.Request) {
	sess, err := h.vibe.Retry(chi.URLParam(r, "id"))
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

// --- helpers ---

func (h *Handler) cartResponse() CartResponse {
	return CartResponse{
		Lines:     mapLines(h.cart.Lines()),
		ItemCount: h.cart.ItemCount(),
		Total:     h.cart.Total().Float(),
		Open:      h.cart.IsOpen(),
	}
}

func (h *Handler) countCartOp(op string) {
	if h.metrics != nil {
		h.metrics.CartOps.WithLabelValues(op).Inc()
	}
}

func (h *Handler) countAICall(op, outcome string) {
	if h.metrics != nil {
		h.metrics.AICalls.WithLabelValues(op, outcome).Inc()
	}
}

func productID(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}
