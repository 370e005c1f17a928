// Package metrics defines and registers the custom Prometheus metrics of the
// doctors portal API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Collectors register with the default registry on package init through
// promauto; HTTP request metrics come from the echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "doctors_portal"

// ── Appointment metrics ───────────────────────────────────────────────────────

// AppointmentsCreatedTotal counts appointments stored through POST /appointments.
var AppointmentsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appointments_created_total",
		Help:      "Total number of appointments booked.",
	},
)

// AppointmentsPaidTotal counts payment attachments that matched an appointment.
var AppointmentsPaidTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appointments_paid_total",
		Help:      "Total number of appointments marked as paid.",
	},
)

// ── Doctor metrics ────────────────────────────────────────────────────────────

var DoctorsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "doctors_created_total",
		Help:      "Total number of doctor profiles created.",
	},
)

// ── Identity metrics ──────────────────────────────────────────────────────────

// IdentityVerificationsTotal counts bearer-token verification outcomes.
// Label:
//   - result: "verified", "failed", or "absent" (no bearer token sent)
var IdentityVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "identity_verifications_total",
		Help:      "Total number of bearer-token verifications, by result.",
	},
	[]string{"result"},
)

// AdminPromotionsTotal counts admin promotion attempts.
// Label:
//   - result: "granted" or "denied"
var AdminPromotionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "admin_promotions_total",
		Help:      "Total number of admin promotion attempts, by result.",
	},
	[]string{"result"},
)

// ── Payment metrics ───────────────────────────────────────────────────────────

// PaymentIntentsTotal counts payment-intent requests.
// Label:
//   - result: "created", "replayed" (idempotency hit), "conflict" (key reused
//     for another amount), or "failed"
var PaymentIntentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payment_intents_total",
		Help:      "Total number of payment intent requests, by result.",
	},
	[]string{"result"},
)

// PaymentProviderDuration measures round trips to the payment processor.
var PaymentProviderDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "payment_provider_duration_seconds",
		Help:      "Duration of payment intent calls to the payment processor.",
		Buckets:   prometheus.DefBuckets,
	},
)
