package rewrite

import (
	"time"

	"github.com/alexv/logicopt/internal/logic"
)

// Engine runs the ordered rule pipeline over a tree to a fixed point.
// Rules marked rollback-protected have their output discarded whenever
// it grew the tree; the comparison is node count only.
type Engine struct {
	limits   logic.Limits
	rules    []Rule
	rollback map[string]bool
}

// NewEngine creates an engine with the standard rule order and the
// given resource limits.
func NewEngine(limits logic.Limits) *Engine {
	return &Engine{
		limits: limits,
		rules: []Rule{
			DeMorganRule{},
			ConstantsRule{},
			AbsorptionRule{},
			ComplementRule{},
			AssociativityRule{},
			ConsensusRule{},
			RedundancyRule{},
			CommutativityRule{},
			FactorizationRule{},
		},
		rollback: map[string]bool{
			"Consensus":     true,
			"Factorization": true,
		},
	}
}

// Rules returns the names of the pipeline rules in application order.
func (e *Engine) Rules() []string {
	names := make([]string, len(e.rules))
	for i, r := range e.rules {
		names[i] = r.Name()
	}
	return names
}

// Optimize reduces the tree to a smaller-or-equal logically equivalent
// form. The iteration and wall-clock bounds are checked once per
// fixed-point iteration; violating either is fatal and aborts the call.
// Metrics may be nil.
func (e *Engine) Optimize(n logic.Node, m *logic.Metrics) (logic.Node, error) {
	if err := logic.ValidateVariableCount(n, e.limits); err != nil {
		return nil, err
	}

	start := time.Now()
	if m != nil {
		m.OriginalNodes = logic.Count(n)
	}

	current := n
	for iter := 1; ; iter++ {
		if iter > e.limits.MaxIterations {
			return nil, logic.ErrIterationLimit
		}
		if time.Since(start) > e.limits.MaxDuration {
			return nil, logic.ErrTimeLimit
		}

		next := current
		for _, rule := range e.rules {
			applied := rule.Apply(next)
			if logic.Equal(applied, next) {
				continue
			}
			m.Record(rule.Name())
			if e.rollback[rule.Name()] && logic.Count(applied) > logic.Count(next) {
				m.RecordRollback(rule.Name())
				continue
			}
			next = applied
		}

		if logic.Equal(next, current) {
			current = next
			if m != nil {
				m.Iterations = iter
			}
			break
		}
		current = next
	}

	if m != nil {
		m.OptimizedNodes = logic.Count(current)
		m.Elapsed = time.Since(start)
	}
	return current, nil
}

// Optimize runs a fresh default engine over the tree.
func Optimize(n logic.Node, m *logic.Metrics) (logic.Node, error) {
	return NewEngine(logic.DefaultLimits()).Optimize(n, m)
}
