// Package metrics defines and registers all custom Prometheus metrics for
// the DotWatch API. It is the single source of truth for metric names,
// labels, and help strings; metrics register with the default registry at
// package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dotwatch"

// UsersCreatedTotal counts successfully registered users.
var UsersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of users successfully created.",
	},
)

// AdminsCreatedTotal counts successfully registered company admins.
var AdminsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "admins_created_total",
		Help:      "Total number of admins successfully created.",
	},
)

// MachinesCreatedTotal counts successfully registered machines.
var MachinesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "machines_created_total",
		Help:      "Total number of machines successfully created.",
	},
)

// DuplicateCreatesTotal counts create attempts rejected by the duplicate
// guard, labelled by entity ("user", "admin", "machine"). A rising rate
// usually means a frontend retry loop or a signup race.
var DuplicateCreatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "duplicate_creates_total",
		Help:      "Total number of create attempts rejected as duplicates, by entity.",
	},
	[]string{"entity"},
)
