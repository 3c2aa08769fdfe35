package normalform

import (
	"fmt"
	"strings"
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

func assertEquivalent(t *testing.T, original, converted logic.Node) {
	t.Helper()
	vars := logic.Variables(original)
	for i := 0; i < 1<<len(vars); i++ {
		assignment := make(map[string]bool, len(vars))
		for j, name := range vars {
			assignment[name] = i&(1<<(len(vars)-1-j)) != 0
		}
		want, err := logic.Evaluate(original, assignment)
		require.NoError(t, err)
		got, err := logic.Evaluate(converted, assignment)
		require.NoError(t, err)
		assert.Equal(t, want, got,
			"%q and %q disagree under %v", logic.Render(original), logic.Render(converted), assignment)
	}
}

func TestToCNF(t *testing.T) {
	inputs := []string{
		"a",
		"!a",
		"a & b",
		"a | b",
		"a | b & c",
		"(a | b) & c",
		"a & b | !a & c",
		"a & b | c & d",
		"!(a & b) | c",
		"(a & b) | (!a & !b)",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			node := mustParse(t, input)
			got, err := ToCNF(node, logic.DefaultLimits())
			require.NoError(t, err)
			assert.True(t, IsCNF(got), "got %q", logic.Render(got))
			assertEquivalent(t, node, got)
		})
	}
}

func TestToCNFConstantResults(t *testing.T) {
	got, err := ToCNF(mustParse(t, "a | !a"), logic.DefaultLimits())
	require.NoError(t, err)
	assert.True(t, logic.IsTrue(got))

	got, err = ToCNF(mustParse(t, "a & !a"), logic.DefaultLimits())
	require.NoError(t, err)
	assert.True(t, logic.IsFalse(got))
}

func TestToCNFDropsTautologicalClauses(t *testing.T) {
	// Distributing (a&b)|(!a&!b) produces the tautologies a|!a and
	// b|!b; neither may survive in the result.
	got, err := ToCNF(mustParse(t, "(a & b) | (!a & !b)"), logic.DefaultLimits())
	require.NoError(t, err)
	rendered := logic.Render(got)
	assert.NotContains(t, rendered, "a | !a")
	assert.NotContains(t, rendered, "b | !b")
}

func TestToDNF(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"a", "a"},
		{"(a | b) & c", "a & c | b & c"},
		{"a & (b | c)", "a & b | a & c"},
		{"(a | a) & b", "a & b"},
		{"a & b | c", "a & b | c"},
		{"!(a | b)", "!a & !b"},
		{"!(a & b) & c", "!a & c | !b & c"},
		{"!!a | b", "a | b"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			node := mustParse(t, tt.input)
			got, err := ToDNF(node, logic.DefaultLimits())
			require.NoError(t, err)
			assert.Equal(t, tt.want, logic.Render(got))
			assert.True(t, IsDNF(got))
			assertEquivalent(t, node, got)
		})
	}
}

func TestToDNFNegatedCompounds(t *testing.T) {
	// Distribution alone cannot repair a negated compound or a negated
	// constant; the shape guarantee must hold for these too.
	inputs := []string{
		"!(a & b)",
		"!(a | b & c) | !d",
		"!(b & d) & !c & a & 0 | c",
		"a & !!0 & !d",
		"!!(a | b) & !(c | d)",
		"!(!a & !(b | c))",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			node := mustParse(t, input)
			got, err := ToDNF(node, logic.DefaultLimits())
			require.NoError(t, err)
			assert.True(t, IsDNF(got), "got %q", logic.Render(got))
			assertEquivalent(t, node, got)
		})
	}
}

func TestToCNFTooComplex(t *testing.T) {
	// An OR of 16 two-variable AND-terms distributes into 2^16 clauses,
	// far past the budget. The call must degrade, not hang.
	terms := make([]string, 16)
	for i := range terms {
		terms[i] = fmt.Sprintf("(a%d & b%d)", i, i)
	}
	node := mustParse(t, strings.Join(terms, " | "))

	got, err := ToCNF(node, logic.DefaultLimits())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTooComplex)
	require.NotNil(t, got)
	assert.False(t, IsCNF(got))
}

func TestToDNFTooComplex(t *testing.T) {
	terms := make([]string, 16)
	for i := range terms {
		terms[i] = fmt.Sprintf("(a%d | b%d)", i, i)
	}
	node := mustParse(t, strings.Join(terms, " & "))

	got, err := ToDNF(node, logic.DefaultLimits())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTooComplex)
	assert.True(t, logic.Equal(got, node))
}

func TestIsCNF(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"a", true},
		{"!a", true},
		{"a | !b", true},
		{"(a | b) & (c | !d)", true},
		{"a & b | c", false},
		{"!(a | b)", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsCNF(mustParse(t, tt.input)), "input %q", tt.input)
	}
}

func TestIsDNF(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"a", true},
		{"a & !b", true},
		{"a & b | c & !d", true},
		{"(a | b) & c", false},
		{"!(a & b)", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsDNF(mustParse(t, tt.input)), "input %q", tt.input)
	}
}
