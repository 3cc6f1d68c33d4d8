// Package metrics defines and registers all custom Prometheus metrics for the
// job board API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register with the default Prometheus registry at package init; the
// router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "jobboard"

// ── Account metrics ───────────────────────────────────────────────────────────

// RegistrationsTotal counts accounts created, including bulk entries.
// Labels:
//   - role: "candidate" or "employer"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered, by role.",
	},
	[]string{"role"},
)

// LoginsTotal counts login attempts.
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

// ── Job metrics ───────────────────────────────────────────────────────────────

// JobsCreatedTotal counts job postings created.
// Label:
//   - job_type: "remote", "full-time", or "part-time"
var JobsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "jobs_created_total",
		Help:      "Total number of job postings created, by job type.",
	},
	[]string{"job_type"},
)

// JobListCacheTotal counts job listing cache lookups.
// Label:
//   - result: "hit" or "miss"
var JobListCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "job_list_cache_total",
		Help:      "Total number of job listing cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)

// ── Application metrics ───────────────────────────────────────────────────────

// ApplicationsCreatedTotal counts job applications submitted.
var ApplicationsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "applications_created_total",
		Help:      "Total number of job applications submitted.",
	},
)
