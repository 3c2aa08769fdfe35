package rewrite

import "github.com/alexv/logicopt/internal/logic"

// ConstantsRule folds double negation, constant operands and
// directly-adjacent complementary operands:
//
//	!!A -> A    A&0 -> 0    A&1 -> A    A&!A -> 0
//	!1 -> 0     A|1 -> 1    A|0 -> A    A|!A -> 1
type ConstantsRule struct{}

func (ConstantsRule) Name() string { return "Constants" }

func (r ConstantsRule) Apply(n logic.Node) logic.Node {
	switch x := n.(type) {
	case logic.NotNode:
		operand := r.Apply(x.Operand)
		if inner, ok := operand.(logic.NotNode); ok {
			return inner.Operand
		}
		if logic.IsTrue(operand) {
			return logic.False()
		}
		if logic.IsFalse(operand) {
			return logic.True()
		}
		return logic.NotNode{Operand: operand}

	case logic.BinaryNode:
		left := r.Apply(x.Left)
		right := r.Apply(x.Right)
		switch x.Op {
		case logic.OpAnd:
			if logic.IsFalse(left) || logic.IsFalse(right) {
				return logic.False()
			}
			if logic.IsTrue(left) {
				return right
			}
			if logic.IsTrue(right) {
				return left
			}
			if isComplement(left, right) {
				return logic.False()
			}
		case logic.OpOr:
			if logic.IsTrue(left) || logic.IsTrue(right) {
				return logic.True()
			}
			if logic.IsFalse(left) {
				return right
			}
			if logic.IsFalse(right) {
				return left
			}
			if isComplement(left, right) {
				return logic.True()
			}
		}
		return logic.BinaryNode{Op: x.Op, Left: left, Right: right, ForceParens: x.ForceParens}

	default:
		return n
	}
}
