package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics.
// It implements usecase.Metrics.
type Metrics struct {
	// Sale metrics
	SalesCreated prometheus.Counter
	SoldQuantity prometheus.Counter
	SalesRevenue prometheus.Counter
	SalesProfit  prometheus.Counter
	SaleQuantity prometheus.Histogram
	SaleErrors   *prometheus.CounterVec

	// Cashbook metrics
	CashbookEntries *prometheus.CounterVec
	ReportCache     *prometheus.CounterVec

	// Database metrics
	DBConnections *prometheus.GaugeVec

	// Rate limiting metrics
	RateLimitHits prometheus.Counter
}

// New creates and registers all Prometheus metrics on the default registerer.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer creates all Prometheus metrics and registers them on reg.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		SalesCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "bhaiyapos_sales_created_total",
			Help: "Total number of sales recorded",
		}),
		SoldQuantity: factory.NewCounter(prometheus.CounterOpts{
			Name: "bhaiyapos_sold_quantity_total",
			Help: "Total fabric quantity sold",
		}),
		SalesRevenue: factory.NewCounter(prometheus.CounterOpts{
			Name: "bhaiyapos_sales_revenue_total",
			Help: "Total sales revenue",
		}),
		SalesProfit: factory.NewCounter(prometheus.CounterOpts{
			Name: "bhaiyapos_sales_profit_total",
			Help: "Total FIFO profit on profitable sales",
		}),
		SaleQuantity: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "bhaiyapos_sale_quantity",
			Help:    "Quantity sold per sale",
			Buckets: []float64{0.5, 1, 2, 5, 10, 25, 50, 100, 250},
		}),
		SaleErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bhaiyapos_sale_errors_total",
				Help: "Total number of failed sales by reason",
			},
			[]string{"reason"},
		),

		CashbookEntries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bhaiyapos_cashbook_entries_total",
				Help: "Total cashbook entries recorded by source",
			},
			[]string{"source"},
		),
		ReportCache: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bhaiyapos_report_cache_requests_total",
				Help: "Cashbook report cache lookups by result",
			},
			[]string{"result"},
		),

		DBConnections: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "bhaiyapos_db_connections",
				Help: "Database pool connections by state",
			},
			[]string{"state"},
		),

		RateLimitHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "bhaiyapos_rate_limit_hits_total",
			Help: "Total requests rejected by the rate limiter",
		}),
	}
}

// RecordSale records a completed sale.
func (m *Metrics) RecordSale(quantity, revenue, profit float64) {
	m.SalesCreated.Inc()
	m.SoldQuantity.Add(quantity)
	m.SalesRevenue.Add(revenue)
	m.SaleQuantity.Observe(quantity)

	// Counters are monotonic; loss-making sales are visible in the logs.
	if profit > 0 {
		m.SalesProfit.Add(profit)
	}
}

// RecordSaleError records a failed sale.
func (m *Metrics) RecordSaleError(reason string) {
	m.SaleErrors.WithLabelValues(reason).Inc()
}

// RecordCashbookEntry records a stored cashbook entry or payment.
func (m *Metrics) RecordCashbookEntry(source string) {
	m.CashbookEntries.WithLabelValues(source).Inc()
}

// RecordReportCache records a report cache lookup.
func (m *Metrics) RecordReportCache(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.ReportCache.WithLabelValues(result).Inc()
}

// RecordRateLimitHit records a request rejected by the rate limiter.
func (m *Metrics) RecordRateLimitHit() {
	m.RateLimitHits.Inc()
}

// SetDBConnections publishes pool connection counts.
func (m *Metrics) SetDBConnections(total, idle, acquired int32) {
	m.DBConnections.WithLabelValues("total").Set(float64(total))
	m.DBConnections.WithLabelValues("idle").Set(float64(idle))
	m.DBConnections.WithLabelValues("acquired").Set(float64(acquired))
}
