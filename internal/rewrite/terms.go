package rewrite

import (
	"sort"
	"strings"

	"github.com/alexv/logicopt/internal/logic"
)

// flatten collects the ordered term list of a same-operator chain.
// Nested chains of the same operator are merged into one list; any other
// node (including a forced-parenthesis group of a different operator)
// stays a single term.
func flatten(n logic.Node, op logic.BinaryOp) []logic.Node {
	if bin, ok := n.(logic.BinaryNode); ok && bin.Op == op {
		return append(flatten(bin.Left, op), flatten(bin.Right, op)...)
	}
	return []logic.Node{n}
}

// rebuild reassembles a term list as a right-fold binary chain,
// applying forceParens to the outermost node only. An empty list yields
// the operator's identity element.
func rebuild(op logic.BinaryOp, terms []logic.Node, forceParens bool) logic.Node {
	if len(terms) == 0 {
		if op == logic.OpAnd {
			return logic.True()
		}
		return logic.False()
	}
	if len(terms) == 1 {
		return terms[0]
	}
	result := terms[len(terms)-1]
	for i := len(terms) - 2; i >= 0; i-- {
		result = logic.BinaryNode{Op: op, Left: terms[i], Right: result}
	}
	bin := result.(logic.BinaryNode)
	bin.ForceParens = forceParens
	return bin
}

// andFactors returns the AND-factor list of a term: the flattened
// conjunction chain, or the term itself as a single factor.
func andFactors(n logic.Node) []logic.Node {
	return flatten(n, logic.OpAnd)
}

// isComplement reports whether a and b are structural complements
// (one is the negation of the other).
func isComplement(a, b logic.Node) bool {
	if not, ok := a.(logic.NotNode); ok && logic.Equal(not.Operand, b) {
		return true
	}
	if not, ok := b.(logic.NotNode); ok && logic.Equal(not.Operand, a) {
		return true
	}
	return false
}

// containsTerm reports whether list holds a term structurally equal to t.
func containsTerm(list []logic.Node, t logic.Node) bool {
	for _, term := range list {
		if logic.Equal(term, t) {
			return true
		}
	}
	return false
}

// hasComplementPair reports whether any two terms in the list are
// structural complements.
func hasComplementPair(terms []logic.Node) bool {
	for i := 0; i < len(terms); i++ {
		for j := i + 1; j < len(terms); j++ {
			if isComplement(terms[i], terms[j]) {
				return true
			}
		}
	}
	return false
}

// dedupeTerms removes structural duplicates, keeping first occurrences.
func dedupeTerms(terms []logic.Node) []logic.Node {
	result := make([]logic.Node, 0, len(terms))
	for _, t := range terms {
		if !containsTerm(result, t) {
			result = append(result, t)
		}
	}
	return result
}

// absorbs reports whether s absorbs t inside a disjunction: s equals t,
// or every AND-factor of s occurs among t's AND-factors.
func absorbs(s, t logic.Node) bool {
	tf := andFactors(t)
	for _, f := range andFactors(s) {
		if !containsTerm(tf, f) {
			return false
		}
	}
	return true
}

// removeAbsorbed drops every term absorbed by another surviving term.
// Mutually absorbing (equal) terms keep their first occurrence.
func removeAbsorbed(terms []logic.Node) []logic.Node {
	dropped := make([]bool, len(terms))
	for i := range terms {
		for j := range terms {
			if i == j || dropped[j] || dropped[i] {
				continue
			}
			if absorbs(terms[j], terms[i]) {
				if absorbs(terms[i], terms[j]) && j > i {
					continue
				}
				dropped[i] = true
			}
		}
	}
	result := make([]logic.Node, 0, len(terms))
	for i, t := range terms {
		if !dropped[i] {
			result = append(result, t)
		}
	}
	return result
}

// complexity scores a node for canonical term ordering: variables are
// cheapest, negations next, binary nodes grow with their children.
func complexity(n logic.Node) int {
	switch x := n.(type) {
	case logic.VarNode:
		return 1
	case logic.NotNode:
		return 2
	case logic.BinaryNode:
		return 3 + complexity(x.Left) + complexity(x.Right)
	default:
		return 1
	}
}

// canonicalKey produces a child-order-independent structural key for a
// node: commutative chains are keyed on their sorted flattened terms.
func canonicalKey(n logic.Node) string {
	switch x := n.(type) {
	case logic.VarNode:
		return x.Name
	case logic.NotNode:
		return "!" + canonicalKey(x.Operand)
	case logic.BinaryNode:
		if commutative(x.Op) {
			terms := flatten(x, x.Op)
			keys := make([]string, len(terms))
			for i, t := range terms {
				keys[i] = canonicalKey(t)
			}
			sort.Strings(keys)
			return x.Op.String() + "(" + strings.Join(keys, ",") + ")"
		}
		return x.Op.String() + "(" + canonicalKey(x.Left) + "," + canonicalKey(x.Right) + ")"
	default:
		return "?"
	}
}

func commutative(op logic.BinaryOp) bool {
	switch op {
	case logic.OpAnd, logic.OpOr, logic.OpXor, logic.OpNand, logic.OpNor:
		return true
	}
	return false
}

// sortTerms orders a term list by ascending complexity, tie-broken by
// canonical key, so later rules see common factors deterministically.
func sortTerms(terms []logic.Node) {
	sort.SliceStable(terms, func(i, j int) bool {
		ci, cj := complexity(terms[i]), complexity(terms[j])
		if ci != cj {
			return ci < cj
		}
		return canonicalKey(terms[i]) < canonicalKey(terms[j])
	})
}
