// Package metrics defines the custom Prometheus metrics for the storefront
// API. It is the single source of truth for metric names, labels, and help
// strings.
//
// Every metric is registered with the default registry through promauto when
// the package is imported; /metrics serves them via promhttp.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "cafe"

// ── Order metrics ─────────────────────────────────────────────────────────────

// OrdersCreatedTotal counts newly created orders.
// Label:
//   - order_type: "pickup", "delivery", or "dine-in"
var OrdersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of orders created, by order type.",
	},
	[]string{"order_type"},
)

// OrderStatusUpdatesTotal counts applied order status changes.
// Labels:
//   - status: the new order status (e.g. "confirmed")
//   - source: "staff" or "payment_webhook"
var OrderStatusUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "order_status_updates_total",
		Help:      "Total number of order status changes, by new status and source.",
	},
	[]string{"status", "source"},
)

// OrderTotalMismatchTotal counts orders whose submitted total differs from
// the sum of their lines.
var OrderTotalMismatchTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "order_total_mismatch_total",
		Help:      "Total number of orders accepted with a total that does not match their items.",
	},
)

// OrderQueueDepth tracks the number of order writes waiting in each serializer worker.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var OrderQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "order_queue_depth",
		Help:      "Current number of order writes pending in each serializer worker channel.",
	},
	[]string{"worker_id"},
)

// ── Payment metrics ───────────────────────────────────────────────────────────

// PaymentIntentsTotal counts payment intent requests.
// Label:
//   - result: "created", "unavailable", "provider_error", or "error"
var PaymentIntentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payment_intents_total",
		Help:      "Total number of payment intent requests, by result.",
	},
	[]string{"result"},
)

// PaymentWebhookEventsTotal counts provider webhook deliveries.
// Labels:
//   - type: provider event type (e.g. "payment_intent.succeeded")
//   - outcome: processing outcome (e.g. "confirmed", "ignored", "duplicate")
var PaymentWebhookEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payment_webhook_events_total",
		Help:      "Total number of payment webhook events, by type and outcome.",
	},
	[]string{"type", "outcome"},
)

// ── Reservation metrics ───────────────────────────────────────────────────────

// ReservationsCreatedTotal counts booked tables.
var ReservationsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reservations_created_total",
		Help:      "Total number of reservations created.",
	},
)

// ── HTTP metrics ──────────────────────────────────────────────────────────────

// HTTPRequestDuration measures request latency.
// Labels:
//   - method: HTTP method
//   - route: the matched route pattern (e.g. "/api/orders/:id/status")
//   - code: response status code
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests, by method, route, and status code.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route", "code"},
)
