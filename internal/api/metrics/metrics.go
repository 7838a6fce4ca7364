// Package metrics defines and registers all custom Prometheus metrics for
// the Drive-time API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at package load;
// the /metrics route exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "drivetime"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "invalid_credentials", "rate_limited", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AuthDeniedTotal counts requests rejected by the access guard.
// Label:
//   - reason: "missing_header", "malformed", "bad_signature", "expired",
//     "unknown_subject", or "forbidden"
var AuthDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_denied_total",
		Help:      "Total number of requests denied by authentication or authorization.",
	},
	[]string{"reason"},
)

// ── Student metrics ───────────────────────────────────────────────────────────

// StudentsCreatedTotal counts newly enrolled students.
// Label:
//   - status: initial status of the record ("enrolled", "active", "completed")
var StudentsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "students_created_total",
		Help:      "Total number of students created, by initial status.",
	},
	[]string{"status"},
)
