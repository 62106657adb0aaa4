package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackendMetricsObserveRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewBackendMetrics(reg)

	m.ObserveRequest("list_slots", OutcomeSuccess, 20*time.Millisecond)
	m.ObserveRequest("list_slots", OutcomeSuccess, 30*time.Millisecond)
	m.ObserveRequest("list_slots", OutcomeFailure, 5*time.Millisecond)

	families, err := reg.Gather()
	require.NoError(t, err)

	counts := map[string]float64{}
	var observations uint64
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			switch family.GetName() {
			case "medportal_backend_requests_total":
				for _, label := range metric.GetLabel() {
					if label.GetName() == "outcome" {
						counts[label.GetValue()] += metric.GetCounter().GetValue()
					}
				}
			case "medportal_backend_request_duration_seconds":
				observations += metric.GetHistogram().GetSampleCount()
			}
		}
	}

	assert.Equal(t, float64(2), counts[OutcomeSuccess])
	assert.Equal(t, float64(1), counts[OutcomeFailure])
	assert.Equal(t, uint64(3), observations)
}

func TestBackendMetricsNilSafe(t *testing.T) {
	var m *BackendMetrics
	m.ObserveRequest("create_slot", OutcomeFailure, time.Second)
}
