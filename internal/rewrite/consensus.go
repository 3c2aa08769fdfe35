package rewrite

import "github.com/alexv/logicopt/internal/logic"

// ConsensusRule derives implied terms inside a disjunction: for two
// AND-terms where a factor of one is the complement of a factor of the
// other, the AND of all remaining factors is a consequence of the pair
// and is unioned into the OR. Afterward absorbed terms are removed.
//
// The rule can grow the tree while searching for a smaller global form,
// so the engine runs it under rollback protection.
type ConsensusRule struct{}

func (ConsensusRule) Name() string { return "Consensus" }

func (r ConsensusRule) Apply(n logic.Node) logic.Node {
	switch x := n.(type) {
	case logic.NotNode:
		return logic.NotNode{Operand: r.Apply(x.Operand)}

	case logic.BinaryNode:
		left := r.Apply(x.Left)
		right := r.Apply(x.Right)
		node := logic.BinaryNode{Op: x.Op, Left: left, Right: right, ForceParens: x.ForceParens}
		if x.Op != logic.OpOr {
			return node
		}

		terms := flatten(node, logic.OpOr)
		if len(terms) < 2 {
			return node
		}
		result := append([]logic.Node(nil), terms...)
		added := false
		for i := 0; i < len(terms); i++ {
			for j := i + 1; j < len(terms); j++ {
				cons := consensusTerm(terms[i], terms[j])
				if cons == nil || containsTerm(result, cons) {
					continue
				}
				result = append(result, cons)
				added = true
			}
		}
		if !added {
			return node
		}
		return rebuild(logic.OpOr, removeAbsorbed(result), x.ForceParens)

	default:
		return n
	}
}

// consensusTerm synthesizes the consensus of two terms, or nil when the
// terms carry no complementary factor pair or the result would contain
// an internal contradiction.
func consensusTerm(a, b logic.Node) logic.Node {
	fa := andFactors(a)
	fb := andFactors(b)
	for i, x := range fa {
		for j, y := range fb {
			if !isComplement(x, y) {
				continue
			}
			rest := make([]logic.Node, 0, len(fa)+len(fb)-2)
			rest = append(rest, fa[:i]...)
			rest = append(rest, fa[i+1:]...)
			for k, f := range fb {
				if k != j {
					rest = append(rest, f)
				}
			}
			rest = dedupeTerms(rest)
			if len(rest) == 0 || hasComplementPair(rest) {
				return nil
			}
			return rebuild(logic.OpAnd, rest, false)
		}
	}
	return nil
}
