package logic

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Metrics accumulates bookkeeping for a single optimize run. It is
// created fresh per top-level call, written only by the rewrite engine,
// and read-only afterward.
type Metrics struct {
	OriginalNodes  int
	OptimizedNodes int
	Iterations     int
	Elapsed        time.Duration

	// RuleApplications maps rule name to the number of times the rule
	// changed the tree. Discarded applications are tracked separately
	// under "<Rule>_Rollback" keys.
	RuleApplications map[string]int
}

// NewMetrics returns an empty metrics record.
func NewMetrics() *Metrics {
	return &Metrics{RuleApplications: make(map[string]int)}
}

// Record notes one application of the named rule.
func (m *Metrics) Record(rule string) {
	if m == nil {
		return
	}
	if m.RuleApplications == nil {
		m.RuleApplications = make(map[string]int)
	}
	m.RuleApplications[rule]++
}

// RecordRollback notes one discarded application of the named rule.
func (m *Metrics) RecordRollback(rule string) {
	m.Record(rule + "_Rollback")
}

// String renders a stable summary, rules sorted by name.
func (m *Metrics) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "nodes %d -> %d, %d iterations, %s",
		m.OriginalNodes, m.OptimizedNodes, m.Iterations, m.Elapsed)
	names := make([]string, 0, len(m.RuleApplications))
	for name := range m.RuleApplications {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&sb, "\n  %s: %d", name, m.RuleApplications[name])
	}
	return sb.String()
}
