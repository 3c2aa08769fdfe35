package rewrite

import "github.com/alexv/logicopt/internal/logic"

// AssociativityRule flattens nested same-operator chains into one term
// list, removes structural duplicates, and reassembles the list as a
// right-fold chain. The original node's ForceParens flag is re-applied
// to the outermost result only.
type AssociativityRule struct{}

func (AssociativityRule) Name() string { return "Associativity" }

func (r AssociativityRule) Apply(n logic.Node) logic.Node {
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
		terms := dedupeTerms(flatten(node, x.Op))
		return rebuild(x.Op, terms, x.ForceParens)

	default:
		return n
	}
}
