// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package console

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Operation names used as metric labels.
const (
	OpRegister     = "register"
	OpLogin        = "login"
	OpAuthenticate = "authenticate"
)

// Status values for operation metrics.
const (
	StatusSuccess            = "success"
	StatusInvalidCredentials = "invalid_credentials"
	StatusUserExists         = "user_exists"
	StatusError              = "error"
	StatusNotFound           = "not_found"
)

// AuthOperations counts auth operations by outcome.
// Use RegisterMetrics to register this with a Prometheus registry.
var AuthOperations = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "holoauth_auth_operations_total",
		Help: "Total number of auth operations by operation and status",
	},
	[]string{"operation", "status"},
)

// AuthDuration observes how long auth operations take. Register and login
// are dominated by key derivation.
// Use RegisterMetrics to register this with a Prometheus registry.
var AuthDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "holoauth_auth_operation_duration_seconds",
		Help:    "Auth operation duration in seconds",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"operation"},
)

// RegisterMetrics registers console metrics with the given Prometheus registry.
// Panics if registration fails (following prometheus convention).
func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(AuthOperations)
	reg.MustRegister(AuthDuration)
}

// RecordOperation counts one operation and observes its duration.
func RecordOperation(operation, status string, duration time.Duration) {
	AuthOperations.WithLabelValues(operation, status).Inc()
	AuthDuration.WithLabelValues(operation).Observe(duration.Seconds())
}
