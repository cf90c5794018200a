// Package metrics exposes Prometheus counters for the HTTP API and for
// generated and validated container numbers.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Request metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"route", "code"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25},
		},
		[]string{"route"},
	)

	// Business metrics
	numbersGeneratedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "container_numbers_generated_total",
			Help: "Total number of container numbers generated",
		},
	)

	validationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "container_number_validations_total",
			Help: "Total number of container number validations",
		},
		[]string{"result"},
	)
)

// Middleware records count and latency per route template.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequestsTotal.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
		httpRequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the Prometheus exposition format.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}

// RecordGenerated counts n freshly generated numbers.
func RecordGenerated(n int) {
	numbersGeneratedTotal.Add(float64(n))
}

// RecordValidation counts one validation by outcome ("valid", "format",
// "check_digit").
func RecordValidation(result string) {
	validationsTotal.WithLabelValues(result).Inc()
}
