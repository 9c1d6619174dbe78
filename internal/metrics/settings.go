// SPDX-License-Identifier: MIT

// Package metrics provides Prometheus metrics for the settings store.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result label values.
const (
	ResultOK         = "ok"
	ResultMissing    = "missing"
	ResultParseError = "parse_error"
	ResultReadError  = "read_error"
	ResultWriteError = "write_error"
	ResultHit        = "hit"
	ResultMiss       = "miss"
)

var (
	// LoadTotal counts config.json load attempts by outcome.
	LoadTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "settings_load_total",
		Help: "Total number of settings load attempts, by result.",
	}, []string{"result"})

	// GenerateTotal counts initial config generations by outcome.
	GenerateTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "settings_generate_total",
		Help: "Total number of initial settings file generations, by result.",
	}, []string{"result"})

	// LookupTotal counts key lookups by hit or miss.
	LookupTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "settings_lookup_total",
		Help: "Total number of settings key lookups, by result.",
	}, []string{"result"})

	// Keys tracks the number of keys in the active mapping of each settings file.
	Keys = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "settings_keys",
		Help: "Number of keys in the currently loaded settings, by file path.",
	}, []string{"path"})
)

// RecordLoad increments the load counter for the given result.
func RecordLoad(result string) {
	LoadTotal.WithLabelValues(result).Inc()
}

// RecordGenerate increments the generate counter for the given result.
func RecordGenerate(result string) {
	GenerateTotal.WithLabelValues(result).Inc()
}

// RecordLookup increments the lookup counter.
func RecordLookup(found bool) {
	if found {
		LookupTotal.WithLabelValues(ResultHit).Inc()
		return
	}
	LookupTotal.WithLabelValues(ResultMiss).Inc()
}

// SetKeys publishes the size of the active mapping loaded from path.
func SetKeys(path string, n int) {
	Keys.WithLabelValues(path).Set(float64(n))
}
