// Package metrics defines and registers all custom Prometheus metrics for
// the VisaPro API. It is the single source of truth for metric names,
// labels, and help strings.
//
// The promauto constructors register with the default registry at package
// load; the /metrics endpoint is mounted by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "visapro"

// AuthFailuresTotal counts rejected authentication attempts.
// Label:
//   - reason: "missing_credential", "invalid_credential", "unknown_subject",
//     "account_deleted", "account_blocked", or "forbidden"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of rejected authentication and authorization attempts.",
	},
	[]string{"reason"},
)

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// EntitiesCreatedTotal counts catalog records created through the admin API.
// Label:
//   - collection: the target collection (e.g. "countries", "hotels")
var EntitiesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entities_created_total",
		Help:      "Total number of catalog entities created, by collection.",
	},
	[]string{"collection"},
)
