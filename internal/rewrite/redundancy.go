package rewrite

import "github.com/alexv/logicopt/internal/logic"

// RedundancyRule cleans a disjunction term-by-term: terms absorbed by a
// surviving sibling are dropped, an AND-term that is itself the
// consensus of two other surviving terms is dropped, and finally two
// direct-sibling AND chains sharing one side are merged,
// (A&B)|(A&C) -> A&(B|C).
type RedundancyRule struct{}

func (RedundancyRule) Name() string { return "Redundancy" }

func (r RedundancyRule) Apply(n logic.Node) logic.Node {
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

		terms := removeAbsorbed(flatten(node, logic.OpOr))
		terms = dropConsensusTerms(terms)
		result := rebuild(logic.OpOr, terms, x.ForceParens)
		return mergeSharedFactor(result)

	default:
		return n
	}
}

// dropConsensusTerms removes any term that is the consensus of two
// other surviving terms. Dropping one term can make another droppable
// pair invalid, so the scan restarts after every removal.
func dropConsensusTerms(terms []logic.Node) []logic.Node {
	for {
		removed := false
		for i := range terms {
			if isConsensusOfOthers(terms, i) {
				terms = append(terms[:i:i], terms[i+1:]...)
				removed = true
				break
			}
		}
		if !removed {
			return terms
		}
	}
}

func isConsensusOfOthers(terms []logic.Node, i int) bool {
	key := canonicalKey(terms[i])
	for j := range terms {
		for k := j + 1; k < len(terms); k++ {
			if j == i || k == i {
				continue
			}
			cons := consensusTerm(terms[j], terms[k])
			if cons != nil && canonicalKey(cons) == key {
				return true
			}
		}
	}
	return false
}

// mergeSharedFactor merges two direct-sibling AND chains of a two-term
// OR that share one side: (A&B)|(A&C) -> A&(B|C).
func mergeSharedFactor(n logic.Node) logic.Node {
	bin, ok := n.(logic.BinaryNode)
	if !ok || bin.Op != logic.OpOr {
		return n
	}
	l, lok := bin.Left.(logic.BinaryNode)
	rr, rok := bin.Right.(logic.BinaryNode)
	if !lok || !rok || l.Op != logic.OpAnd || rr.Op != logic.OpAnd {
		return n
	}
	common, restL, restR, ok := sharedSide(l, rr)
	if !ok {
		return n
	}
	return logic.BinaryNode{
		Op:          logic.OpAnd,
		Left:        common,
		Right:       logic.Or(restL, restR),
		ForceParens: bin.ForceParens,
	}
}

// sharedSide finds the single operand the two binary nodes have in
// common, checking all four left/right combinations.
func sharedSide(a, b logic.BinaryNode) (common, restA, restB logic.Node, ok bool) {
	type match struct{ common, restA, restB logic.Node }
	var found []match
	if logic.Equal(a.Left, b.Left) {
		found = append(found, match{a.Left, a.Right, b.Right})
	}
	if logic.Equal(a.Left, b.Right) {
		found = append(found, match{a.Left, a.Right, b.Left})
	}
	if logic.Equal(a.Right, b.Left) {
		found = append(found, match{a.Right, a.Left, b.Right})
	}
	if logic.Equal(a.Right, b.Right) {
		found = append(found, match{a.Right, a.Left, b.Left})
	}
	if len(found) != 1 {
		return nil, nil, nil, false
	}
	return found[0].common, found[0].restA, found[0].restB, true
}
