package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexv/logicopt/internal/logic"
)

func mustParse(t *testing.T, text string) logic.Node {
	t.Helper()
	node, err := logic.Parse(text)
	require.NoError(t, err)
	return node
}

func assertRewrites(t *testing.T, rule Rule, input, want string) {
	t.Helper()
	got := rule.Apply(mustParse(t, input))
	assert.Equal(t, want, logic.Render(got), "%s(%q)", rule.Name(), input)
}

func assertUnchanged(t *testing.T, rule Rule, input string) {
	t.Helper()
	node := mustParse(t, input)
	got := rule.Apply(node)
	assert.True(t, logic.Equal(got, node),
		"%s(%q) = %q, want unchanged", rule.Name(), input, logic.Render(got))
}

func TestDeMorganRule(t *testing.T) {
	rule := DeMorganRule{}
	assertRewrites(t, rule, "!(a & b)", "!a | !b")
	assertRewrites(t, rule, "!(a | b)", "!a & !b")
	assertRewrites(t, rule, "!(a & b & c)", "!a | !b | !c")
	assertRewrites(t, rule, "c | !(a | b)", "c | !a & !b")
	assertUnchanged(t, rule, "!a | !b")
	assertUnchanged(t, rule, "!a")
}

func TestConstantsRule(t *testing.T) {
	rule := ConstantsRule{}
	assertRewrites(t, rule, "!!a", "a")
	assertRewrites(t, rule, "!1", "0")
	assertRewrites(t, rule, "!0", "1")
	assertRewrites(t, rule, "a & 1", "a")
	assertRewrites(t, rule, "1 & a", "a")
	assertRewrites(t, rule, "a & 0", "0")
	assertRewrites(t, rule, "a | 1", "1")
	assertRewrites(t, rule, "a | 0", "a")
	assertRewrites(t, rule, "a & !a", "0")
	assertRewrites(t, rule, "a | !a", "1")
	assertUnchanged(t, rule, "a & b")
}

func TestAbsorptionRule(t *testing.T) {
	rule := AbsorptionRule{}
	assertRewrites(t, rule, "a & a", "a")
	assertRewrites(t, rule, "a | a", "a")
	assertRewrites(t, rule, "a | a & b", "a")
	assertRewrites(t, rule, "a & (a | b)", "a")
	assertRewrites(t, rule, "a | !a & b", "a | b")
	assertRewrites(t, rule, "a & (!a | b)", "a & b")
	assertUnchanged(t, rule, "a | b & c")
}

func TestComplementRule(t *testing.T) {
	rule := ComplementRule{}
	assertRewrites(t, rule, "a & b & !a", "0")
	assertRewrites(t, rule, "a | b | !a", "1")
	assertUnchanged(t, rule, "a & b & c")
	assertUnchanged(t, rule, "a | !b")
}

func TestAssociativityRule(t *testing.T) {
	rule := AssociativityRule{}
	assertRewrites(t, rule, "a | (b | a)", "a | b")
	assertRewrites(t, rule, "a & b & (a & c)", "a & b & c")
	assertRewrites(t, rule, "a | b | c", "a | b | c")
}

func TestConsensusRule(t *testing.T) {
	rule := ConsensusRule{}

	// The consensus term b & c absorbs the wider b & c & d.
	assertRewrites(t, rule, "a & b | !a & c | b & c & d", "a & b | !a & c | b & c")

	// No complementary pair, nothing to add.
	assertUnchanged(t, rule, "a & b | c & d")
}

func TestConsensusRuleGrowsWithoutAbsorption(t *testing.T) {
	// When the consensus term absorbs nothing the rewrite grows the
	// tree; the engine is responsible for rolling that back.
	rule := ConsensusRule{}
	input := mustParse(t, "a & b | !a & c")
	got := rule.Apply(input)
	assert.Greater(t, logic.Count(got), logic.Count(input))

	truth, err := logic.Evaluate(got, map[string]bool{"a": false, "b": true, "c": false})
	require.NoError(t, err)
	assert.False(t, truth)
}

func TestRedundancyRule(t *testing.T) {
	rule := RedundancyRule{}
	assertRewrites(t, rule, "a | a & b", "a")
	assertRewrites(t, rule, "a & b | !a & c | b & c", "a & b | !a & c")
	assertRewrites(t, rule, "a & b | a & c", "a & (b | c)")
	assertUnchanged(t, rule, "a & b | c & d")
}

func TestCommutativityRule(t *testing.T) {
	rule := CommutativityRule{}
	assertRewrites(t, rule, "a & b | c", "c | a & b")
	assertRewrites(t, rule, "b & a", "a & b")
	assertUnchanged(t, rule, "a | b")
}

func TestCommutativityRuleDeterministic(t *testing.T) {
	rule := CommutativityRule{}
	a := rule.Apply(mustParse(t, "c | b | a"))
	b := rule.Apply(mustParse(t, "b | a | c"))
	assert.Equal(t, logic.Render(a), logic.Render(b))
}

func TestFactorizationRule(t *testing.T) {
	rule := FactorizationRule{}
	assertRewrites(t, rule, "a & b | a & c", "a & (b | c)")
	assertRewrites(t, rule, "(a | b) & (a | c)", "a | (b & c)")
	assertRewrites(t, rule, "a | a & b", "a & (1 | b)")
	assertUnchanged(t, rule, "a & b | c & d")
}

func TestRulesArePure(t *testing.T) {
	for _, rule := range NewEngine(logic.DefaultLimits()).rules {
		input := mustParse(t, "!(a & b) | a & a | c & !c")
		before := logic.Render(input)
		rule.Apply(input)
		assert.Equal(t, before, logic.Render(input), "rule %s mutated its input", rule.Name())
	}
}
