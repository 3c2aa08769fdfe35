// Package logicopt simplifies propositional-logic expressions. It
// parses an infix boolean formula, rewrites it to a smaller equivalent
// form with an ordered fixed-point rule pipeline, converts the result
// to conjunctive or disjunctive normal form under explicit budgets, and
// can fold primitive encodings back into derived operators for display.
package logicopt

import (
	"errors"

	"github.com/alexv/logicopt/internal/logic"
	"github.com/alexv/logicopt/internal/normalform"
	"github.com/alexv/logicopt/internal/pattern"
	"github.com/alexv/logicopt/internal/rewrite"
)

// ErrTooComplex is the recoverable signal that normal-form distribution
// ran out of budget; the corresponding Result field then holds the
// optimized but undistributed form.
var ErrTooComplex = normalform.ErrTooComplex

// Parse builds an expression tree from text under the default limits.
func Parse(text string) (logic.Node, error) {
	return logic.Parse(text)
}

// Optimize reduces a tree to a smaller-or-equal equivalent form.
// Metrics may be nil.
func Optimize(n logic.Node, m *logic.Metrics) (logic.Node, error) {
	return rewrite.Optimize(n, m)
}

// ToCNF converts a tree to conjunctive normal form.
func ToCNF(n logic.Node) (logic.Node, error) {
	return normalform.ToCNF(n, logic.DefaultLimits())
}

// ToDNF converts a tree to disjunctive normal form.
func ToDNF(n logic.Node) (logic.Node, error) {
	return normalform.ToDNF(n, logic.DefaultLimits())
}

// FoldPatterns folds XOR and implication encodings for display.
func FoldPatterns(n logic.Node) logic.Node {
	return pattern.Fold(n)
}

// Render returns the precedence-aware textual form of a tree.
func Render(n logic.Node) string {
	return logic.Render(n)
}

// VariablesOf returns the sorted variable names of a tree, constants
// excluded.
func VariablesOf(n logic.Node) []string {
	return logic.Variables(n)
}

// Evaluate computes the truth value of a tree under an assignment.
func Evaluate(n logic.Node, assignment map[string]bool) (bool, error) {
	return logic.Evaluate(n, assignment)
}

// Result bundles everything one analysis run produces. It is consumed
// by the CLI, the formatter and the exporters; none of them influence
// the rewrite itself.
type Result struct {
	Input     string
	Original  logic.Node
	Optimized logic.Node
	Folded    logic.Node
	CNF       logic.Node
	DNF       logic.Node
	Metrics   *logic.Metrics

	// CNFTooComplex / DNFTooComplex mark conversions that exceeded the
	// distribution budget; the CNF/DNF fields then fall back to the
	// optimized form.
	CNFTooComplex bool
	DNFTooComplex bool
}

// Analyze parses, optimizes and converts an expression with the
// default limits.
func Analyze(text string) (*Result, error) {
	return AnalyzeWithLimits(text, logic.DefaultLimits())
}

// AnalyzeWithLimits runs the full pipeline: parse, optimize with
// metrics, convert to both normal forms, and fold display patterns.
// Over-budget normal forms degrade to the optimized tree instead of
// failing the run.
func AnalyzeWithLimits(text string, limits logic.Limits) (*Result, error) {
	original, err := logic.ParseWithLimits(text, limits)
	if err != nil {
		return nil, err
	}

	metrics := logic.NewMetrics()
	optimized, err := rewrite.NewEngine(limits).Optimize(original, metrics)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Input:     text,
		Original:  original,
		Optimized: optimized,
		Folded:    pattern.Fold(optimized),
		Metrics:   metrics,
	}

	cnf, err := normalform.ToCNF(optimized, limits)
	if err != nil {
		if !errors.Is(err, normalform.ErrTooComplex) {
			return nil, err
		}
		result.CNFTooComplex = true
	}
	result.CNF = cnf

	dnf, err := normalform.ToDNF(optimized, limits)
	if err != nil {
		if !errors.Is(err, normalform.ErrTooComplex) {
			return nil, err
		}
		result.DNFTooComplex = true
	}
	result.DNF = dnf

	return result, nil
}
