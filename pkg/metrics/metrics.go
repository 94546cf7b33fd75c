// Package metrics provides Prometheus instrumentation for the coach service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// TradesTotal counts paper trades by action and outcome status.
	TradesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "frugal_trades_total",
		Help: "Total number of paper trades processed",
	}, []string{"action", "status"})

	// TradeLatency tracks the time spent holding a position lock.
	TradeLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "frugal_trade_latency_seconds",
		Help:    "Ledger mutation latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"action"})

	// LessonAdvances counts lesson advance attempts by result.
	LessonAdvances = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "frugal_lesson_advances_total",
		Help: "Lesson advance attempts",
	}, []string{"result"})

	// TextGenerationFallbacks counts LLM calls replaced by a fallback text.
	TextGenerationFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "frugal_text_generation_fallbacks_total",
		Help: "Text generation failures recovered with a fallback",
	}, []string{"operation"})

	// HTTPRequestsTotal counts HTTP requests by method, route and status.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "frugal_http_requests_total",
		Help: "Total HTTP requests",
	}, []string{"method", "path", "status"})

	// HTTPRequestDuration tracks request duration by method and route.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "frugal_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
	}, []string{"method", "path"})
)

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware records request count and latency. The route pattern is used as
// the path label to keep cardinality bounded.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			status := strconv.Itoa(c.Response().Status)
			HTTPRequestsTotal.WithLabelValues(c.Request().Method, path, status).Inc()
			HTTPRequestDuration.WithLabelValues(c.Request().Method, path).Observe(time.Since(start).Seconds())
			return nil
		}
	}
}
