package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrecedence(t *testing.T) {
	// '!' binds tighter than '&', which binds tighter than '|'.
	node, err := Parse("!a & b | c")
	require.NoError(t, err)

	or, ok := node.(BinaryNode)
	require.True(t, ok)
	assert.Equal(t, OpOr, or.Op)

	and, ok := or.Left.(BinaryNode)
	require.True(t, ok)
	assert.Equal(t, OpAnd, and.Op)
	assert.IsType(t, NotNode{}, and.Left)
	assert.Equal(t, Var("c"), or.Right)
}

func TestParseLeftAssociative(t *testing.T) {
	node, err := Parse("a & b & c")
	require.NoError(t, err)
	assert.True(t, Equal(node, And(And(Var("a"), Var("b")), Var("c"))))
}

func TestParseDoubleNegation(t *testing.T) {
	node, err := Parse("!!a")
	require.NoError(t, err)
	assert.True(t, Equal(node, Not(Not(Var("a")))))
}

func TestParseConstants(t *testing.T) {
	node, err := Parse("0 | 1")
	require.NoError(t, err)

	or, ok := node.(BinaryNode)
	require.True(t, ok)
	assert.True(t, IsFalse(or.Left))
	assert.True(t, IsTrue(or.Right))
}

func TestParseKeepsGrouping(t *testing.T) {
	node, err := Parse("(a | b) & c")
	require.NoError(t, err)

	and, ok := node.(BinaryNode)
	require.True(t, ok)
	grouped, ok := and.Left.(BinaryNode)
	require.True(t, ok)
	assert.True(t, grouped.ForceParens)
	assert.Equal(t, "(a | b) & c", Render(node))
}

func TestParseRedundantParens(t *testing.T) {
	node, err := Parse("((a))")
	require.NoError(t, err)
	assert.True(t, Equal(node, Var("a")))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"blank input", "   "},
		{"trailing operand", "a b"},
		{"dangling operator", "a &"},
		{"leading operator", "| a"},
		{"empty group", "()"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)
			var parseErr *ParseError
			assert.ErrorAs(t, err, &parseErr)
		})
	}
}

func TestParseUnbalancedParens(t *testing.T) {
	for _, input := range []string{"(a", "a)", ")a(", "((a | b)"} {
		_, err := Parse(input)
		require.Error(t, err, "input %q", input)
	}
}

func TestParseRenderRoundTrip(t *testing.T) {
	inputs := []string{
		"a",
		"!a",
		"!!a",
		"a & b",
		"a | b & c",
		"(a | b) & c",
		"a | (b & c)",
		"!(a & b)",
		"a & b | c & d",
		"!(a | !(b & c))",
	}
	for _, input := range inputs {
		node, err := Parse(input)
		require.NoError(t, err, "input %q", input)
		rendered := Render(node)

		again, err := Parse(rendered)
		require.NoError(t, err, "rendered %q", rendered)
		assert.Equal(t, rendered, Render(again), "input %q", input)
		assert.True(t, Equal(node, again), "input %q", input)
	}
}
