// Package metrics defines and registers all custom Prometheus metrics
// for the Legal Suite API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register themselves with the default registry at import time
// via promauto; the HTTP layer exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "legalsuite"

// LoginsTotal counts password login attempts.
// Label:
//   - result: "success", "invalid_credentials", or "not_found"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of password login attempts, by result.",
	},
	[]string{"result"},
)

// OTPIssuedTotal counts one-time passcodes generated and dispatched.
var OTPIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "otp_issued_total",
		Help:      "Total number of one-time passcodes issued.",
	},
)

// OTPVerifiedTotal counts passcode verification attempts.
// Label:
//   - result: "success" or "failure"
var OTPVerifiedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "otp_verified_total",
		Help:      "Total number of passcode verification attempts, by result.",
	},
	[]string{"result"},
)

// OTPRateLimitedTotal counts passcode requests rejected by the limiter.
var OTPRateLimitedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "otp_rate_limited_total",
		Help:      "Total number of passcode requests rejected by the rate limiter.",
	},
)

// AppointmentsBookedTotal counts appointments created through the
// booking endpoint.
var AppointmentsBookedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appointments_booked_total",
		Help:      "Total number of appointments booked.",
	},
)

// AppointmentTransitionsTotal counts status updates on appointments.
// Labels:
//   - to: the requested target status
//   - result: "success" or "failure"
var AppointmentTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appointment_transitions_total",
		Help:      "Total number of appointment status transitions, by target status and result.",
	},
	[]string{"to", "result"},
)
