// Package metrics holds the Prometheus collectors for scans, classification and HTTP traffic.
//
// Each Metrics owns its registry so that tests and multiple servers in one process never
// collide on registration.
package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all application metrics.
type Metrics struct {
	Registry *prometheus.Registry

	// Scan metrics
	ScansTotal         *prometheus.CounterVec
	ScanDuration       prometheus.Histogram
	BooksAddedTotal    prometheus.Counter
	BooksRemovedTotal  prometheus.Counter
	ScanFilesFound     prometheus.Gauge
	ScanTruncatedTotal prometheus.Counter

	// Classification metrics
	ClassifiedTotal *prometheus.CounterVec

	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// New creates a Metrics instance registered on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	f := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		ScansTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "library_scans_total",
				Help: "Total number of library scans by outcome",
			},
			[]string{"status", "mode"},
		),
		ScanDuration: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "library_scan_duration_seconds",
				Help:    "Duration of library scans in seconds",
				Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
			},
		),
		BooksAddedTotal: f.NewCounter(
			prometheus.CounterOpts{
				Name: "library_books_added_total",
				Help: "Total number of books inserted by scans",
			},
		),
		BooksRemovedTotal: f.NewCounter(
			prometheus.CounterOpts{
				Name: "library_books_removed_total",
				Help: "Total number of books deleted by scans",
			},
		),
		ScanFilesFound: f.NewGauge(
			prometheus.GaugeOpts{
				Name: "library_scan_files_found",
				Help: "Number of book files found by the most recent scan",
			},
		),
		ScanTruncatedTotal: f.NewCounter(
			prometheus.CounterOpts{
				Name: "library_scan_truncated_total",
				Help: "Total number of scans that hit the file cap",
			},
		),

		ClassifiedTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "library_books_classified_total",
				Help: "Total number of books assigned a genre by source",
			},
			[]string{"source"},
		),

		RequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "library_http_requests_total",
				Help: "Total number of API requests by method, route, and status",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "library_http_request_duration_seconds",
				Help:    "Histogram of request durations by method and route",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"method", "route"},
		),
	}
}

// ObserveScan records the outcome of one scan.
func (m *Metrics) ObserveScan(mode string, started time.Time, added, removed, found int, truncated bool, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	m.ScansTotal.WithLabelValues(status, mode).Inc()
	m.ScanDuration.Observe(time.Since(started).Seconds())
	if err != nil {
		return
	}
	m.BooksAddedTotal.Add(float64(added))
	m.BooksRemovedTotal.Add(float64(removed))
	m.ScanFilesFound.Set(float64(found))
	if truncated {
		m.ScanTruncatedTotal.Inc()
	}
}

// Middleware counts requests by matched route.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		route := c.Route().Path
		m.RequestsTotal.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		m.RequestDuration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{}))
}
