package rewrite

import "github.com/alexv/logicopt/internal/logic"

// CommutativityRule canonically reorders flattened AND/OR term lists by
// ascending complexity, tie-broken by a stable structural key. The
// reordering changes nothing semantically; it exists so factorization
// finds common factors deterministically regardless of input order.
type CommutativityRule struct{}

func (CommutativityRule) Name() string { return "Commutativity" }

func (r CommutativityRule) Apply(n logic.Node) logic.Node {
	switch x := n.(type) {
	case logic.NotNode:
		return logic.NotNode{Operand: r.Apply(x.Operand)}

	case logic.BinaryNode:
		left := r.Apply(x.Left)
		right := r.Apply(x.Right)
		node := logic.BinaryNode{Op: x.Op, Left: left, Right: right, ForceParens: x.ForceParens}
		if x.Op != logic.OpAnd && x.Op != logic.OpOr {
			return node
		}
		terms := flatten(node, x.Op)
		sortTerms(terms)
		return rebuild(x.Op, terms, x.ForceParens)

	default:
		return n
	}
}
