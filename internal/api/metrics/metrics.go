// Package metrics defines all custom Prometheus metrics for the movies API.
// It is the single source of truth for metric names, labels, and help
// strings. Metrics are registered with the default registry via promauto at
// package load; request-level HTTP metrics come from the echoprometheus
// middleware wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "movies_api"

// RegistrationsTotal counts successfully created accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of user accounts registered.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// MoviesCreatedTotal counts movies created.
// Label:
//   - source: "api" (manual create) or "seed" (catalog import)
var MoviesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "movies_created_total",
		Help:      "Total number of movies created, by source.",
	},
	[]string{"source"},
)

// MoviesSeededTotal counts catalog records imported by the seed endpoint.
var MoviesSeededTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "movies_seeded_total",
		Help:      "Total number of movies imported from the external catalog.",
	},
)
