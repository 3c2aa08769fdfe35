// Package normalform converts optimized expression trees to conjunctive
// or disjunctive normal form under an explicit distribution budget.
// Naive distribution is worst-case exponential in formula size, so the
// converter degrades explicitly instead of hanging: when the budget runs
// out it stops distributing and reports ErrTooComplex, leaving the
// caller its undistributed input to fall back on.
package normalform

import (
	"errors"

	"github.com/alexv/logicopt/internal/logic"
	"github.com/alexv/logicopt/internal/rewrite"
)

// ErrTooComplex signals that distribution exceeded its call or depth
// budget. It is recoverable: callers may use the undistributed form
// returned alongside it.
var ErrTooComplex = errors.New("normal form conversion too complex")

// Distribution caps. The call counter bounds total work, the depth
// counter bounds a single recursion spine.
const (
	maxDistributionCalls = 10000
	maxDistributionDepth = 15
)

// budget tracks distribution work for one conversion. It is threaded
// through the recursive calls, so concurrent conversions never share
// counters. The depth counter measures nested re-distributions, not
// plain tree depth: only a distribution step that has to distribute its
// own output again deepens it.
type budget struct {
	calls int
	depth int
}

func (b *budget) enter() error {
	b.calls++
	if b.calls > maxDistributionCalls {
		return ErrTooComplex
	}
	return nil
}

func (b *budget) deepen() error {
	b.depth++
	if b.depth > maxDistributionDepth {
		return ErrTooComplex
	}
	return nil
}

func (b *budget) surface() {
	b.depth--
}

// ToCNF converts the tree to conjunctive normal form: the full rewrite
// engine runs first for size reduction, then OR is distributed over AND
// bottom-up, then tautological conjuncts are removed. On ErrTooComplex
// the optimized but undistributed tree is returned with the error.
func ToCNF(n logic.Node, limits logic.Limits) (logic.Node, error) {
	optimized, err := rewrite.NewEngine(limits).Optimize(n, nil)
	if err != nil {
		return nil, err
	}
	b := &budget{}
	distributed, err := distributeOr(optimized, b)
	if err != nil {
		return optimized, err
	}
	return cleanCNF(distributed), nil
}

// ToDNF converts the tree to disjunctive normal form: negations are
// first pushed down to the literals, then AND is distributed over OR
// bottom-up and exact duplicate OR-terms are removed. The rewrite
// engine is deliberately not run afterward: factorization and friends
// would fold the result back out of normal form.
func ToDNF(n logic.Node, limits logic.Limits) (logic.Node, error) {
	b := &budget{}
	distributed, err := distributeAnd(toNNF(n), b)
	if err != nil {
		return n, err
	}
	terms := dedupe(flattenOp(distributed, logic.OpOr))
	return reassemble(logic.OpOr, terms), nil
}

// toNNF pushes negation down to the literals: De Morgan over AND/OR
// chains, double negation elimination, and folding of negated
// constants. Distribution alone cannot repair a negated compound, so
// this runs first.
func toNNF(n logic.Node) logic.Node {
	switch x := n.(type) {
	case logic.NotNode:
		switch inner := x.Operand.(type) {
		case logic.NotNode:
			return toNNF(inner.Operand)
		case logic.VarNode:
			if logic.IsTrue(inner) {
				return logic.False()
			}
			if logic.IsFalse(inner) {
				return logic.True()
			}
			return logic.NotNode{Operand: inner}
		case logic.BinaryNode:
			switch inner.Op {
			case logic.OpAnd:
				return logic.Or(toNNF(logic.Not(inner.Left)), toNNF(logic.Not(inner.Right)))
			case logic.OpOr:
				return logic.And(toNNF(logic.Not(inner.Left)), toNNF(logic.Not(inner.Right)))
			}
		}
		return logic.NotNode{Operand: toNNF(x.Operand)}

	case logic.BinaryNode:
		return logic.BinaryNode{Op: x.Op, Left: toNNF(x.Left), Right: toNNF(x.Right), ForceParens: x.ForceParens}

	default:
		return n
	}
}

// distributeOr pushes OR below AND: A|(B&C) -> (A|B)&(A|C).
func distributeOr(n logic.Node, b *budget) (logic.Node, error) {
	if err := b.enter(); err != nil {
		return nil, err
	}

	switch x := n.(type) {
	case logic.NotNode:
		operand, err := distributeOr(x.Operand, b)
		if err != nil {
			return nil, err
		}
		return logic.NotNode{Operand: operand}, nil

	case logic.BinaryNode:
		left, err := distributeOr(x.Left, b)
		if err != nil {
			return nil, err
		}
		right, err := distributeOr(x.Right, b)
		if err != nil {
			return nil, err
		}
		if x.Op == logic.OpOr {
			if and, ok := right.(logic.BinaryNode); ok && and.Op == logic.OpAnd {
				return redistribute(logic.And(
					logic.Or(left, and.Left),
					logic.Or(left, and.Right),
				), b, distributeOr)
			}
			if and, ok := left.(logic.BinaryNode); ok && and.Op == logic.OpAnd {
				return redistribute(logic.And(
					logic.Or(and.Left, right),
					logic.Or(and.Right, right),
				), b, distributeOr)
			}
		}
		return logic.BinaryNode{Op: x.Op, Left: left, Right: right, ForceParens: x.ForceParens}, nil

	default:
		return n, nil
	}
}

// redistribute runs fn on a freshly distributed node, charging one level
// of nesting depth against the budget.
func redistribute(n logic.Node, b *budget, fn func(logic.Node, *budget) (logic.Node, error)) (logic.Node, error) {
	if err := b.deepen(); err != nil {
		return nil, err
	}
	defer b.surface()
	return fn(n, b)
}

// distributeAnd pushes AND below OR: A&(B|C) -> (A&B)|(A&C).
func distributeAnd(n logic.Node, b *budget) (logic.Node, error) {
	if err := b.enter(); err != nil {
		return nil, err
	}

	switch x := n.(type) {
	case logic.NotNode:
		operand, err := distributeAnd(x.Operand, b)
		if err != nil {
			return nil, err
		}
		return logic.NotNode{Operand: operand}, nil

	case logic.BinaryNode:
		left, err := distributeAnd(x.Left, b)
		if err != nil {
			return nil, err
		}
		right, err := distributeAnd(x.Right, b)
		if err != nil {
			return nil, err
		}
		if x.Op == logic.OpAnd {
			if or, ok := right.(logic.BinaryNode); ok && or.Op == logic.OpOr {
				return redistribute(logic.Or(
					logic.And(left, or.Left),
					logic.And(left, or.Right),
				), b, distributeAnd)
			}
			if or, ok := left.(logic.BinaryNode); ok && or.Op == logic.OpOr {
				return redistribute(logic.Or(
					logic.And(or.Left, right),
					logic.And(or.Right, right),
				), b, distributeAnd)
			}
		}
		return logic.BinaryNode{Op: x.Op, Left: left, Right: right, ForceParens: x.ForceParens}, nil

	default:
		return n, nil
	}
}

// cleanCNF removes tautological clauses (containing X and !X, or the
// literal 1) and strips the false literal from the remaining clauses.
func cleanCNF(n logic.Node) logic.Node {
	conjuncts := flattenOp(n, logic.OpAnd)
	kept := make([]logic.Node, 0, len(conjuncts))
	for _, clause := range conjuncts {
		literals := flattenOp(clause, logic.OpOr)
		if isTautology(literals) {
			continue
		}
		trimmed := make([]logic.Node, 0, len(literals))
		for _, lit := range literals {
			if !logic.IsFalse(lit) {
				trimmed = append(trimmed, lit)
			}
		}
		trimmed = dedupe(trimmed)
		if len(trimmed) == 0 {
			return logic.False()
		}
		kept = append(kept, reassemble(logic.OpOr, trimmed))
	}
	if len(kept) == 0 {
		return logic.True()
	}
	kept = dedupe(kept)
	return reassemble(logic.OpAnd, kept)
}

func isTautology(literals []logic.Node) bool {
	for i, a := range literals {
		if logic.IsTrue(a) {
			return true
		}
		for _, b := range literals[i+1:] {
			if complementary(a, b) {
				return true
			}
		}
	}
	return false
}

func complementary(a, b logic.Node) bool {
	if not, ok := a.(logic.NotNode); ok && logic.Equal(not.Operand, b) {
		return true
	}
	if not, ok := b.(logic.NotNode); ok && logic.Equal(not.Operand, a) {
		return true
	}
	return false
}

func flattenOp(n logic.Node, op logic.BinaryOp) []logic.Node {
	if bin, ok := n.(logic.BinaryNode); ok && bin.Op == op {
		return append(flattenOp(bin.Left, op), flattenOp(bin.Right, op)...)
	}
	return []logic.Node{n}
}

func dedupe(terms []logic.Node) []logic.Node {
	result := make([]logic.Node, 0, len(terms))
	for _, t := range terms {
		duplicate := false
		for _, kept := range result {
			if logic.Equal(t, kept) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			result = append(result, t)
		}
	}
	return result
}

func reassemble(op logic.BinaryOp, terms []logic.Node) logic.Node {
	if len(terms) == 1 {
		return terms[0]
	}
	result := terms[len(terms)-1]
	for i := len(terms) - 2; i >= 0; i-- {
		result = logic.BinaryNode{Op: op, Left: terms[i], Right: result}
	}
	return result
}

// IsCNF reports whether the tree is a conjunction of disjunctions of
// literals.
func IsCNF(n logic.Node) bool {
	for _, clause := range flattenOp(n, logic.OpAnd) {
		for _, lit := range flattenOp(clause, logic.OpOr) {
			if !isLiteral(lit) {
				return false
			}
		}
	}
	return true
}

// IsDNF reports whether the tree is a disjunction of conjunctions of
// literals.
func IsDNF(n logic.Node) bool {
	for _, term := range flattenOp(n, logic.OpOr) {
		for _, lit := range flattenOp(term, logic.OpAnd) {
			if !isLiteral(lit) {
				return false
			}
		}
	}
	return true
}

func isLiteral(n logic.Node) bool {
	switch x := n.(type) {
	case logic.VarNode:
		return true
	case logic.NotNode:
		_, ok := x.Operand.(logic.VarNode)
		return ok
	default:
		return false
	}
}
