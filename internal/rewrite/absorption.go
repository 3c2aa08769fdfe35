package rewrite

import "github.com/alexv/logicopt/internal/logic"

// AbsorptionRule collapses subsumed operands:
//
//	A op A     -> A
//	A&(A|B)    -> A        A|(A&B)    -> A      (either operand order)
//	A&(!A|B)   -> A&B      A|(!A&B)   -> A|B    (extended form)
type AbsorptionRule struct{}

func (AbsorptionRule) Name() string { return "Absorption" }

func (r AbsorptionRule) Apply(n logic.Node) logic.Node {
	switch x := n.(type) {
	case logic.NotNode:
		return logic.NotNode{Operand: r.Apply(x.Operand)}

	case logic.BinaryNode:
		left := r.Apply(x.Left)
		right := r.Apply(x.Right)
		if x.Op != logic.OpAnd && x.Op != logic.OpOr {
			return logic.BinaryNode{Op: x.Op, Left: left, Right: right, ForceParens: x.ForceParens}
		}
		if logic.Equal(left, right) {
			return left
		}
		if result, ok := r.absorb(x.Op, left, right, x.ForceParens); ok {
			return result
		}
		if result, ok := r.absorb(x.Op, right, left, x.ForceParens); ok {
			return result
		}
		return logic.BinaryNode{Op: x.Op, Left: left, Right: right, ForceParens: x.ForceParens}

	default:
		return n
	}
}

// absorb tries to absorb other into keep for keep op other, where other
// is a chain of the dual operator.
func (r AbsorptionRule) absorb(op logic.BinaryOp, keep, other logic.Node, forceParens bool) (logic.Node, bool) {
	dual := logic.OpOr
	if op == logic.OpOr {
		dual = logic.OpAnd
	}
	bin, ok := other.(logic.BinaryNode)
	if !ok || bin.Op != dual {
		return nil, false
	}
	terms := flatten(bin, dual)

	// Standard absorption: the kept operand appears in the dual chain.
	if containsTerm(terms, keep) {
		return keep, true
	}

	// Extended absorption: the dual chain contains the complement of the
	// kept operand; those occurrences contribute nothing and are removed.
	remaining := make([]logic.Node, 0, len(terms))
	for _, t := range terms {
		if !isComplement(t, keep) {
			remaining = append(remaining, t)
		}
	}
	if len(remaining) == len(terms) {
		return nil, false
	}
	reduced := rebuild(dual, remaining, false)
	return logic.BinaryNode{Op: op, Left: keep, Right: reduced, ForceParens: forceParens}, true
}
