package logicopt

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexv/logicopt/internal/logic"
	"github.com/alexv/logicopt/internal/normalform"
)

func TestAnalyze(t *testing.T) {
	result, err := Analyze("!(a & b)")
	require.NoError(t, err)

	assert.Equal(t, "!(a & b)", result.Input)
	assert.Equal(t, "!(a & b)", Render(result.Original))
	assert.Equal(t, "!a | !b", Render(result.Optimized))
	assert.Equal(t, 4, result.Metrics.OriginalNodes)
	assert.Equal(t, 5, result.Metrics.OptimizedNodes)
	assert.Equal(t, 1, result.Metrics.RuleApplications["DeMorgan"])
	assert.False(t, result.CNFTooComplex)
	assert.False(t, result.DNFTooComplex)
	assert.True(t, normalform.IsCNF(result.CNF))
	assert.True(t, normalform.IsDNF(result.DNF))
}

func TestAnalyzeFoldsPatterns(t *testing.T) {
	result, err := Analyze("!a | b")
	require.NoError(t, err)
	assert.Equal(t, "a -> b", Render(result.Folded))
}

func TestAnalyzeConsensus(t *testing.T) {
	result, err := Analyze("a & b | !a & c")
	require.NoError(t, err)

	assert.GreaterOrEqual(t, result.Metrics.RuleApplications["Consensus"], 1)
	assert.True(t, normalform.IsCNF(result.CNF))

	for _, a := range []bool{false, true} {
		for _, b := range []bool{false, true} {
			for _, c := range []bool{false, true} {
				assignment := map[string]bool{"a": a, "b": b, "c": c}
				want, err := Evaluate(result.Original, assignment)
				require.NoError(t, err)
				got, err := Evaluate(result.CNF, assignment)
				require.NoError(t, err)
				assert.Equal(t, want, got, "assignment %v", assignment)
			}
		}
	}
}

func TestAnalyzeParseError(t *testing.T) {
	_, err := Analyze("a &")
	require.Error(t, err)
	var parseErr *logic.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestAnalyzeTooComplexDegrades(t *testing.T) {
	// 16 two-variable AND terms blow the CNF distribution budget; the
	// result must still carry a usable fallback tree.
	terms := make([]string, 16)
	for i := range terms {
		terms[i] = fmt.Sprintf("x%d & y%d", i, i)
	}
	result, err := Analyze(strings.Join(terms, " | "))
	require.NoError(t, err)
	assert.True(t, result.CNFTooComplex)
	require.NotNil(t, result.CNF)
	assert.True(t, logic.Equal(result.CNF, result.Optimized))
}

func TestOptimizeFacade(t *testing.T) {
	node, err := Parse("a | a & b")
	require.NoError(t, err)
	got, err := Optimize(node, nil)
	require.NoError(t, err)
	assert.Equal(t, "a", Render(got))
}

func TestNormalFormFacades(t *testing.T) {
	node, err := Parse("(a | b) & c")
	require.NoError(t, err)

	cnf, err := ToCNF(node)
	require.NoError(t, err)
	assert.True(t, normalform.IsCNF(cnf))

	dnf, err := ToDNF(node)
	require.NoError(t, err)
	assert.Equal(t, "a & c | b & c", Render(dnf))
}

func TestFoldPatternsFacade(t *testing.T) {
	node, err := Parse("a & !b | !a & b")
	require.NoError(t, err)
	assert.Equal(t, "a ^ b", Render(FoldPatterns(node)))
}

func TestVariablesOf(t *testing.T) {
	node, err := Parse("b | a & 1")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, VariablesOf(node))
}
