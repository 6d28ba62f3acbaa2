// Package telemetry holds the process-wide Prometheus metrics for the
// decoder and the order book. Metrics are package-level vars registered
// once at startup through Register, in the style of a small service's
// metrics file rather than a full DI container.
package telemetry

import "github.com/prometheus/client_golang/prometheus"

var (
	MessagesDecoded = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "chronos_itch_messages_decoded_total",
		Help: "ITCH messages successfully decoded, by message type.",
	}, []string{"type"})

	MessagesUnknown = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "chronos_itch_messages_unknown_total",
		Help: "ITCH messages of a known length but unmodeled type, skipped by the decoder.",
	})

	Executions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "chronos_book_executions_total",
		Help: "Fills reported by the matching engine, by maker side.",
	}, []string{"maker_side"})

	OrderCount = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "chronos_book_order_count",
		Help: "Orders currently resting in the book.",
	})

	DecodeBatchBytes = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "chronos_decode_batch_bytes",
		Help:    "Size in bytes of each buffer handed to ParseStream.",
		Buckets: prometheus.ExponentialBuckets(64, 2, 12),
	})
)

// Register adds every metric in this package to reg. Call once at
// startup, against prometheus.DefaultRegisterer or a test-local
// registry.
func Register(reg prometheus.Registerer) {
	reg.MustRegister(
		MessagesDecoded,
		MessagesUnknown,
		Executions,
		OrderCount,
		DecodeBatchBytes,
	)
}
