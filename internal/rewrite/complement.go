package rewrite

import "github.com/alexv/logicopt/internal/logic"

// ComplementRule collapses whole flattened chains containing a pair of
// complementary terms: any AND chain with X and !X becomes 0, any OR
// chain with X and !X becomes 1. Unlike ConstantsRule this looks across
// the full n-ary term list, not just the two direct children.
type ComplementRule struct{}

func (ComplementRule) Name() string { return "Complement" }

func (r ComplementRule) Apply(n logic.Node) logic.Node {
	switch x := n.(type) {
	case logic.NotNode:
		return logic.NotNode{Operand: r.Apply(x.Operand)}

	case logic.BinaryNode:
		left := r.Apply(x.Left)
		right := r.Apply(x.Right)
		node := logic.BinaryNode{Op: x.Op, Left: left, Right: right, ForceParens: x.ForceParens}
		switch x.Op {
		case logic.OpAnd:
			if hasComplementPair(flatten(node, logic.OpAnd)) {
				return logic.False()
			}
		case logic.OpOr:
			if hasComplementPair(flatten(node, logic.OpOr)) {
				return logic.True()
			}
		}
		return node

	default:
		return n
	}
}
