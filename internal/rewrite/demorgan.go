package rewrite

import "github.com/alexv/logicopt/internal/logic"

// DeMorganRule pushes negation inward: !(A&B) becomes !A|!B and
// !(A|B) becomes !A&!B, recursively. Negations of anything else are
// left in place while their operands are still normalized.
type DeMorganRule struct{}

func (DeMorganRule) Name() string { return "DeMorgan" }

func (r DeMorganRule) Apply(n logic.Node) logic.Node {
	switch x := n.(type) {
	case logic.NotNode:
		if bin, ok := x.Operand.(logic.BinaryNode); ok {
			switch bin.Op {
			case logic.OpAnd:
				return logic.Or(r.Apply(logic.Not(bin.Left)), r.Apply(logic.Not(bin.Right)))
			case logic.OpOr:
				return logic.And(r.Apply(logic.Not(bin.Left)), r.Apply(logic.Not(bin.Right)))
			}
		}
		return logic.NotNode{Operand: r.Apply(x.Operand)}

	case logic.BinaryNode:
		return logic.BinaryNode{Op: x.Op, Left: r.Apply(x.Left), Right: r.Apply(x.Right), ForceParens: x.ForceParens}

	default:
		return n
	}
}
