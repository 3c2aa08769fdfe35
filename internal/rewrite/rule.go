package rewrite

import "github.com/alexv/logicopt/internal/logic"

// Rule is a single simplification pass. Apply must be a pure function
// of its input tree: it returns a logically equivalent tree and never
// mutates the one it was given.
type Rule interface {
	// Name returns the rule name used in metrics.
	Name() string

	// Apply rewrites the tree, returning the input unchanged-or-equal
	// when the rule does not match.
	Apply(n logic.Node) logic.Node
}
