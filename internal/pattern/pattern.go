// Package pattern reconstructs derived operators from their primitive
// OR/AND encodings. It is a best-effort cosmetic pass: expressions that
// do not match any pattern are returned untouched, and folded nodes are
// for display only, never fed back into the rewrite engine.
package pattern

import "github.com/alexv/logicopt/internal/logic"

// Fold scans the flattened OR term list of the tree and folds
// recognizable encodings back into derived operators:
//
//	(A&!B)|(!A&B) -> A^B    (any term or variable order)
//	!A|B          -> A->B
//
// Matching pairs are replaced one at a time until no pair remains; the
// surviving terms are re-ORed left to right.
func Fold(n logic.Node) logic.Node {
	switch x := n.(type) {
	case logic.NotNode:
		return logic.NotNode{Operand: Fold(x.Operand)}

	case logic.BinaryNode:
		left := Fold(x.Left)
		right := Fold(x.Right)
		node := logic.BinaryNode{Op: x.Op, Left: left, Right: right, ForceParens: x.ForceParens}
		if x.Op != logic.OpOr {
			return node
		}
		terms := flattenOr(node)
		terms = foldPairs(terms, matchXor)
		terms = foldPairs(terms, matchImp)
		if len(terms) == 1 {
			return terms[0]
		}
		result := terms[0]
		for _, t := range terms[1:] {
			result = logic.Or(result, t)
		}
		if bin, ok := result.(logic.BinaryNode); ok {
			bin.ForceParens = x.ForceParens
			return bin
		}
		return result

	default:
		return n
	}
}

// foldPairs repeatedly finds one matching term pair, replaces the two
// terms with the folded node at the position of the first, and rescans.
func foldPairs(terms []logic.Node, match func(a, b logic.Node) (logic.Node, bool)) []logic.Node {
	for {
		folded := false
		for i := 0; i < len(terms) && !folded; i++ {
			for j := i + 1; j < len(terms); j++ {
				node, ok := match(terms[i], terms[j])
				if !ok {
					continue
				}
				terms[i] = node
				terms = append(terms[:j], terms[j+1:]...)
				folded = true
				break
			}
		}
		if !folded {
			return terms
		}
	}
}

// literal describes a variable or its negation.
type literal struct {
	name    string
	negated bool
}

// asLiteral extracts a literal from a node, excluding the constant
// names.
func asLiteral(n logic.Node) (literal, bool) {
	switch x := n.(type) {
	case logic.VarNode:
		if logic.IsConstant(x) {
			return literal{}, false
		}
		return literal{name: x.Name}, true
	case logic.NotNode:
		v, ok := x.Operand.(logic.VarNode)
		if !ok || logic.IsConstant(v) {
			return literal{}, false
		}
		return literal{name: v.Name, negated: true}, true
	default:
		return literal{}, false
	}
}

// twoLiteralTerm extracts the two literals of an AND term with exactly
// two literal factors.
func twoLiteralTerm(n logic.Node) (literal, literal, bool) {
	bin, ok := n.(logic.BinaryNode)
	if !ok || bin.Op != logic.OpAnd {
		return literal{}, literal{}, false
	}
	first, ok := asLiteral(bin.Left)
	if !ok {
		return literal{}, literal{}, false
	}
	second, ok := asLiteral(bin.Right)
	if !ok {
		return literal{}, literal{}, false
	}
	return first, second, true
}

// matchXor folds two AND-terms over the same two variables with exactly
// opposite negation patterns into an XOR of the variables. The operand
// order follows the first term.
func matchXor(a, b logic.Node) (logic.Node, bool) {
	a1, a2, ok := twoLiteralTerm(a)
	if !ok {
		return nil, false
	}
	b1, b2, ok := twoLiteralTerm(b)
	if !ok {
		return nil, false
	}
	if a1.name == a2.name || a1.negated == a2.negated {
		return nil, false
	}
	// Align b's literals with a's variable order.
	if b1.name == a2.name {
		b1, b2 = b2, b1
	}
	if b1.name != a1.name || b2.name != a2.name {
		return nil, false
	}
	if b1.negated == a1.negated || b2.negated == a2.negated {
		return nil, false
	}
	return logic.Xor(logic.Var(a1.name), logic.Var(a2.name)), true
}

// matchImp folds a negated single variable and a non-negated single
// variable into an implication: !A with B becomes A->B.
func matchImp(a, b logic.Node) (logic.Node, bool) {
	la, aok := asLiteral(a)
	lb, bok := asLiteral(b)
	if !aok || !bok {
		return nil, false
	}
	switch {
	case la.negated && !lb.negated:
		return logic.Imp(logic.Var(la.name), logic.Var(lb.name)), true
	case lb.negated && !la.negated:
		return logic.Imp(logic.Var(lb.name), logic.Var(la.name)), true
	default:
		return nil, false
	}
}

func flattenOr(n logic.Node) []logic.Node {
	if bin, ok := n.(logic.BinaryNode); ok && bin.Op == logic.OpOr {
		return append(flattenOr(bin.Left), flattenOr(bin.Right)...)
	}
	return []logic.Node{n}
}
