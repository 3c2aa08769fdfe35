package rewrite

import "github.com/alexv/logicopt/internal/logic"

// FactorizationRule factors in two directions. Forward: a factor present
// in every term of an OR is extracted, A&B | A&C | A&D -> A&(B|C|D).
// Reverse: an AND of two ORs sharing exactly one operand is rewritten,
// (A|B)&(A|C) -> A|(B&C), with the remainder kept in forced parentheses
// for display fidelity.
//
// Both directions can grow the tree on unprofitable input, so the engine
// runs this rule under rollback protection.
type FactorizationRule struct{}

func (FactorizationRule) Name() string { return "Factorization" }

func (r FactorizationRule) Apply(n logic.Node) logic.Node {
	switch x := n.(type) {
	case logic.NotNode:
		return logic.NotNode{Operand: r.Apply(x.Operand)}

	case logic.BinaryNode:
		left := r.Apply(x.Left)
		right := r.Apply(x.Right)
		node := logic.BinaryNode{Op: x.Op, Left: left, Right: right, ForceParens: x.ForceParens}
		switch x.Op {
		case logic.OpOr:
			if result, ok := factorForward(node); ok {
				return result
			}
		case logic.OpAnd:
			if result, ok := factorReverse(node); ok {
				return result
			}
		}
		return node

	default:
		return n
	}
}

// factorForward extracts a factor common to every term of an OR chain.
// A term stripped of its last factor collapses to the literal 1.
func factorForward(node logic.BinaryNode) (logic.Node, bool) {
	terms := flatten(node, logic.OpOr)
	if len(terms) < 2 {
		return nil, false
	}
	for _, factor := range andFactors(terms[0]) {
		if !factorInAllTerms(factor, terms) {
			continue
		}
		stripped := make([]logic.Node, len(terms))
		for i, t := range terms {
			stripped[i] = removeFactor(t, factor)
		}
		inner := rebuild(logic.OpOr, stripped, false)
		return logic.BinaryNode{
			Op:          logic.OpAnd,
			Left:        factor,
			Right:       inner,
			ForceParens: node.ForceParens,
		}, true
	}
	return nil, false
}

func factorInAllTerms(factor logic.Node, terms []logic.Node) bool {
	for _, t := range terms {
		if !containsTerm(andFactors(t), factor) {
			return false
		}
	}
	return true
}

// removeFactor drops one occurrence of factor from the term's AND
// factors, collapsing to the literal 1 when nothing remains.
func removeFactor(term, factor logic.Node) logic.Node {
	factors := andFactors(term)
	for i, f := range factors {
		if logic.Equal(f, factor) {
			rest := append(append([]logic.Node(nil), factors[:i]...), factors[i+1:]...)
			return rebuild(logic.OpAnd, rest, false)
		}
	}
	return term
}

// factorReverse rewrites an AND of two OR nodes sharing exactly one
// operand. The non-common remainder is wrapped in a forced-parenthesis
// AND so the rendered form keeps its grouping.
func factorReverse(node logic.BinaryNode) (logic.Node, bool) {
	l, lok := node.Left.(logic.BinaryNode)
	rr, rok := node.Right.(logic.BinaryNode)
	if !lok || !rok || l.Op != logic.OpOr || rr.Op != logic.OpOr {
		return nil, false
	}
	common, restL, restR, ok := sharedSide(l, rr)
	if !ok {
		return nil, false
	}
	return logic.BinaryNode{
		Op:          logic.OpOr,
		Left:        common,
		Right:       logic.Binary(logic.OpAnd, restL, restR, true),
		ForceParens: node.ForceParens,
	}, true
}
