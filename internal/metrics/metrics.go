// Package metrics описывает prometheus метрики сервиса. Метрики регистрируются
// в дефолтном реестре при импорте пакета и отдаются хендлером promhttp на /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const prefix = "eats"

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	BillingChargesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_billing_charges_total",
			Help: "Total number of subscription charge attempts by result",
		},
		[]string{"result"},
	)

	BillingBatchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    prefix + "_billing_batch_duration_seconds",
			Help:    "Duration of a billing batch run in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// Результаты списания для лейбла result метрики BillingChargesTotal.
const (
	ChargeResultSucceeded = "succeeded"
	ChargeResultFailed    = "failed"
)

// RecordCharge инкрементирует счетчик списаний.
func RecordCharge(result string) {
	BillingChargesTotal.WithLabelValues(result).Inc()
}
