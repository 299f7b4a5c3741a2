// Package metrics defines the custom Prometheus metrics of the stall booking
// API. Request-level metrics (latency, status codes) come from the
// echoprometheus middleware; the counters here cover the domain decisions.
//
// All metrics register with the default registry on import, which is the
// registry served at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "carnival"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "unknown_user", "bad_password" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// GateDecisionsTotal counts role gate outcomes.
// Labels:
//   - route: the matched route path (e.g. "/users/:id")
//   - decision: "allow", "unauthenticated", "forbidden" or "error"
var GateDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gate_decisions_total",
		Help:      "Total number of role gate decisions, by route and decision.",
	},
	[]string{"route", "decision"},
)

// RegistrationChecksTotal counts registration validations.
// Label:
//   - result: "valid" or "invalid"
var RegistrationChecksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registration_checks_total",
		Help:      "Total number of registration validations, by result.",
	},
	[]string{"result"},
)

// ── Booking metrics ───────────────────────────────────────────────────────────

// BookingsCreatedTotal counts newly created bookings. The stall type is
// vendor-supplied free text and is kept out of the label set.
// Label:
//   - pitch: "assigned" or "unassigned"
var BookingsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Total number of bookings created, by pitch assignment.",
	},
	[]string{"pitch"},
)
