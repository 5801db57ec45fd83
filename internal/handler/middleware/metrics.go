package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "budget",
	Subsystem: "http",
	Name:      "requests_total",
	Help:      "Total HTTP requests by method, route and status code.",
}, []string{"method", "route", "status"})

var httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "budget",
	Subsystem: "http",
	Name:      "request_duration_seconds",
	Help:      "HTTP request latency by method and route.",
	Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
}, []string{"method", "route"})

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		// FullPath keeps label cardinality bounded: ":month" not "2025-03"
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		httpRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
