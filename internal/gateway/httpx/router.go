package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/vibevapes/storefront/internal/gateway/httpx/middlewares"
	"github.com/vibevapes/storefront/pkg/metrics"
)

func NewRouter(handler *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/products", func(r chi.Router) {
		r.Get("/", handler.ListProducts)
		r.Get("/search", handler.SearchProducts)
		r.Get("/descriptions", handler.DescribeAllProducts)
		r.Get("/{id}", handler.GetProduct)
		r.Get("/{id}/description", handler.DescribeProduct)
	})

	r.Route("/cart", func(r chi.Router) {
		r.Get("/", handler.GetCart)
		r.Delete("/", handler.ClearCart)
		r.Post("/toggle", handler.ToggleCart)
		r.Post("/items", handler.AddCartItem)
		r.Patch("/items/{id}", handler.UpdateCartItem)
		r.Delete("/items/{id}", handler.RemoveCartItem)
	})

	r.Route("/checkout", func(r chi.Router) {
		r.Get("/", handler.CheckoutStage)
		r.Post("/", handler.SubmitCheckout)
		r.Post("/reset", handler.ResetCheckout)
	})

	r.Get("/orders", handler.ListOrders)

	r.Route("/vibe", func(r chi.Router) {
		r.Get("/questions", handler.VibeQuestions)
		r.Post("/sessions", handler.StartVibeSession)
		r.Get("/sessions/{id}", handler.GetVibeSession)
		r.Post("/sessions/{id}/answers", handler.AnswerVibeSession)
		r.Post("/sessions/{id}/retry", handler.RetryVibeSession)
	})

	return r
}
