// Package metrics defines and registers the custom Prometheus metrics for
// the registration API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Collectors register themselves with the default registry at package init;
// per-request HTTP metrics come from the echoprometheus middleware instead.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "userportal"

// RegistrationsTotal counts registration attempts by outcome.
// Label:
//   - result: "created", "duplicate", "invalid", or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of user registration attempts, by outcome.",
	},
	[]string{"result"},
)

// AdminLoginsTotal counts admin login attempts by outcome.
// Label:
//   - result: "success", "unauthorized", or "error"
var AdminLoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "admin_logins_total",
		Help:      "Total number of admin login attempts, by outcome.",
	},
	[]string{"result"},
)

// AuthRejectionsTotal counts requests turned away by the access gate.
// Label:
//   - reason: "missing_token", "invalid_token", or "forbidden"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected before reaching a protected handler.",
	},
	[]string{"reason"},
)
