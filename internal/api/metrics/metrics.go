// Package metrics defines and registers all custom Prometheus metrics for
// the notes management API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time and
// are exposed through the /metrics endpoint wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "notes"

// BoardsCreatedTotal counts boards created through the API.
var BoardsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "boards_created_total",
		Help:      "Total number of boards created.",
	},
)

// NotesCreatedTotal counts notes created through the API.
var NotesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notes_created_total",
		Help:      "Total number of notes created.",
	},
)

// LifecycleSeedsTotal counts starter-dataset seeds.
// Label:
//   - trigger: "register" (one-time onboarding) or "login" (demo session)
var LifecycleSeedsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "lifecycle_seeds_total",
		Help:      "Total number of starter datasets seeded, by trigger.",
	},
	[]string{"trigger"},
)

// LifecyclePurgesTotal counts demo-account purges performed at logout.
var LifecyclePurgesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "lifecycle_purges_total",
		Help:      "Total number of demo account purges.",
	},
)
