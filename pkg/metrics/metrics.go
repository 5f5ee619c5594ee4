package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type StoreMetrics struct {
	CartOps      *prometheus.CounterVec
	OrdersPlaced prometheus.Counter
	AICalls      *prometheus.CounterVec
}

func NewStoreMetrics() *StoreMetrics {
	cartOps := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "vibevapes",
		Name:      "cart_operations_total",
		Help:      "Cart mutations by operation.",
	}, []string{"op"})
	ordersPlaced := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "vibevapes",
		Name:      "orders_placed_total",
		Help:      "Orders recorded by the order store.",
	})
	aiCalls := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "vibevapes",
		Name:      "ai_calls_total",
		Help:      "Calls to the generative AI boundary by operation and outcome.",
	}, []string{"op", "outcome"})

	prometheus.MustRegister(cartOps, ordersPlaced, aiCalls)
	return &StoreMetrics{CartOps: cartOps, OrdersPlaced: ordersPlaced, AICalls: aiCalls}
}

func Handler() http.Handler {
	return promhttp.Handler()
}
