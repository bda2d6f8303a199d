// Package metrics defines and registers all custom Prometheus metrics for the
// residential complex API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the router exposes them on GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "residential"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// RegistrationsTotal counts successful account registrations.
// Label:
//   - role: the role assigned to the new account (e.g. "tenant", "owner")
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered, by role.",
	},
	[]string{"role"},
)

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "invalid" (bad email or password), or "disabled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RateLimitedTotal counts requests rejected by the rate limiter.
// Label:
//   - scope: the limiter scope that rejected the request (e.g. "auth")
var RateLimitedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_total",
		Help:      "Total number of requests rejected by the rate limiter.",
	},
	[]string{"scope"},
)

// ── Notification metrics ──────────────────────────────────────────────────────

// NotificationsDispatchedTotal counts notifications persisted by the dispatcher.
// Labels:
//   - type: notification type (e.g. "maintenance", "booking_checkin")
//   - recipient_type: resolved audience ("all", "owners", "staff", "user", ...)
var NotificationsDispatchedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_dispatched_total",
		Help:      "Total number of notifications successfully dispatched.",
	},
	[]string{"type", "recipient_type"},
)

// NotificationsErrorsTotal counts notifications that failed to persist.
var NotificationsErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_errors_total",
		Help:      "Total number of notifications that failed dispatching.",
	},
)

// NotificationDispatchDuration measures how long a single notification takes
// from dequeue to persistence.
var NotificationDispatchDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "notification_dispatch_duration_seconds",
		Help:      "Duration of notification dispatch from dequeue to persistence.",
		Buckets:   prometheus.DefBuckets,
	},
)
