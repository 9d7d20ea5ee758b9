package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RouterMetrics holds all Prometheus metrics for the swap module
type RouterMetrics struct {
	// Swap metrics
	SwapsTotal  *prometheus.CounterVec
	SwapHops    prometheus.Histogram
	SwapsFailed prometheus.Counter

	// Liquidity metrics
	LiquidityAddsTotal    prometheus.Counter
	LiquidityRemovesTotal prometheus.Counter

	// Pool metrics
	PoolCreationsTotal prometheus.Counter
}

var (
	routerMetricsOnce sync.Once
	routerMetrics     *RouterMetrics
)

// NewRouterMetrics creates and registers router metrics (singleton pattern)
func NewRouterMetrics() *RouterMetrics {
	routerMetricsOnce.Do(func() {
		routerMetrics = &RouterMetrics{
			SwapsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "impossible",
					Subsystem: "swap",
					Name:      "swaps_total",
					Help:      "Total number of swaps executed",
				},
				[]string{"status"},
			),
			SwapHops: promauto.NewHistogram(
				prometheus.HistogramOpts{
					Namespace: "impossible",
					Subsystem: "swap",
					Name:      "swap_hops",
					Help:      "Number of hops per executed swap",
					Buckets:   []float64{1, 2, 3, 4, 5},
				},
			),
			SwapsFailed: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "impossible",
					Subsystem: "swap",
					Name:      "swaps_failed_total",
					Help:      "Total number of swaps rejected or reverted",
				},
			),
			LiquidityAddsTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "impossible",
					Subsystem: "swap",
					Name:      "liquidity_adds_total",
					Help:      "Total liquidity deposit operations",
				},
			),
			LiquidityRemovesTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "impossible",
					Subsystem: "swap",
					Name:      "liquidity_removes_total",
					Help:      "Total liquidity withdrawal operations",
				},
			),
			PoolCreationsTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "impossible",
					Subsystem: "swap",
					Name:      "pool_creations_total",
					Help:      "Total number of pools created",
				},
			),
		}
	})
	return routerMetrics
}

// GetRouterMetrics returns the singleton router metrics instance
func GetRouterMetrics() *RouterMetrics {
	if routerMetrics == nil {
		return NewRouterMetrics()
	}
	return routerMetrics
}

// All hooks below are nil-safe so a keeper without metrics attached skips
// instrumentation entirely.

// SwapExecuted records a successful swap with its hop count.
func (m *RouterMetrics) SwapExecuted(hops int) {
	if m == nil {
		return
	}
	m.SwapsTotal.WithLabelValues("success").Inc()
	m.SwapHops.Observe(float64(hops))
}

// SwapFailed records a rejected or reverted swap.
func (m *RouterMetrics) SwapFailed() {
	if m == nil {
		return
	}
	m.SwapsTotal.WithLabelValues("failure").Inc()
	m.SwapsFailed.Inc()
}

// LiquidityAdded records a deposit operation.
func (m *RouterMetrics) LiquidityAdded() {
	if m == nil {
		return
	}
	m.LiquidityAddsTotal.Inc()
}

// LiquidityRemoved records a withdrawal operation.
func (m *RouterMetrics) LiquidityRemoved() {
	if m == nil {
		return
	}
	m.LiquidityRemovesTotal.Inc()
}

// PoolCreated records a pool registration.
func (m *RouterMetrics) PoolCreated() {
	if m == nil {
		return
	}
	m.PoolCreationsTotal.Inc()
}
