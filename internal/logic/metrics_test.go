package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricsRecord(t *testing.T) {
	m := NewMetrics()
	m.Record("DeMorgan")
	m.Record("DeMorgan")
	m.RecordRollback("Consensus")

	assert.Equal(t, 2, m.RuleApplications["DeMorgan"])
	assert.Equal(t, 1, m.RuleApplications["Consensus_Rollback"])
}

func TestMetricsNilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.Record("DeMorgan")
		m.RecordRollback("Consensus")
	})
}

func TestMetricsString(t *testing.T) {
	m := NewMetrics()
	m.OriginalNodes = 7
	m.OptimizedNodes = 5
	m.Iterations = 2
	m.Record("Absorption")

	out := m.String()
	assert.Contains(t, out, "nodes 7 -> 5")
	assert.Contains(t, out, "2 iterations")
	assert.Contains(t, out, "Absorption: 1")
}
