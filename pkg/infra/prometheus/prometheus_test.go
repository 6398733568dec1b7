package prometheus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := Gatherer().Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() != name {
			continue
		}
		for _, m := range f.GetMetric() {
			matched := 0
			for _, lp := range m.GetLabel() {
				if labels[lp.GetName()] == lp.GetValue() {
					matched++
				}
			}
			if matched == len(labels) {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func TestInitialize_Idempotent(t *testing.T) {
	assert.NotPanics(t, func() {
		Initialize(MetricsConfig{Enabled: true, EnableLatency: true})
		Initialize(MetricsConfig{Enabled: true, EnableLatency: false})
	})
	assert.False(t, Config.EnableLatency)
}

func TestStageTotal(t *testing.T) {
	labels := map[string]string{"stage": "speech", "outcome": "success"}
	before := counterValue(t, "tutorgate_stage_total", labels)

	StageTotal.WithLabelValues("speech", "success").Inc()

	assert.Equal(t, before+1, counterValue(t, "tutorgate_stage_total", labels))
}

func TestGatherer_ExposesMetrics(t *testing.T) {
	Sessions.Set(3)
	SessionsSwept.Add(0)

	families, err := Gatherer().Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["tutorgate_sessions"])
	assert.True(t, names["tutorgate_sessions_swept_total"])
}
