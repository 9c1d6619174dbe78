// SPDX-License-Identifier: MIT

package metrics_test

import (
	"testing"

	"github.com/ManuGH/settings/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordLoad(t *testing.T) {
	tests := []struct {
		name   string
		result string
	}{
		{name: "success", result: metrics.ResultOK},
		{name: "missing file", result: metrics.ResultMissing},
		{name: "parse failure", result: metrics.ResultParseError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(metrics.LoadTotal.WithLabelValues(tt.result))
			metrics.RecordLoad(tt.result)
			after := testutil.ToFloat64(metrics.LoadTotal.WithLabelValues(tt.result))
			assert.Equal(t, before+1, after)
		})
	}
}

func TestRecordGenerate(t *testing.T) {
	before := testutil.ToFloat64(metrics.GenerateTotal.WithLabelValues(metrics.ResultWriteError))
	metrics.RecordGenerate(metrics.ResultWriteError)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.GenerateTotal.WithLabelValues(metrics.ResultWriteError)))
}

func TestRecordLookup(t *testing.T) {
	hits := testutil.ToFloat64(metrics.LookupTotal.WithLabelValues(metrics.ResultHit))
	misses := testutil.ToFloat64(metrics.LookupTotal.WithLabelValues(metrics.ResultMiss))

	metrics.RecordLookup(true)
	metrics.RecordLookup(false)
	metrics.RecordLookup(false)

	assert.Equal(t, hits+1, testutil.ToFloat64(metrics.LookupTotal.WithLabelValues(metrics.ResultHit)))
	assert.Equal(t, misses+2, testutil.ToFloat64(metrics.LookupTotal.WithLabelValues(metrics.ResultMiss)))
}

func TestSetKeys_PerPath(t *testing.T) {
	metrics.SetKeys("/a/config.json", 3)
	metrics.SetKeys("/b/config.json", 1)
	assert.Equal(t, float64(3), testutil.ToFloat64(metrics.Keys.WithLabelValues("/a/config.json")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.Keys.WithLabelValues("/b/config.json")))

	metrics.SetKeys("/a/config.json", 0)
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.Keys.WithLabelValues("/a/config.json")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.Keys.WithLabelValues("/b/config.json")))
}
