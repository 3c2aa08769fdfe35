package truthtable

import (
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

func TestEnumerate(t *testing.T) {
	table, err := Enumerate(mustParse(t, "a & b"))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, table.Variables)
	require.Len(t, table.Rows, 4)

	// Most-significant variable first: 00, 01, 10, 11.
	assert.Equal(t, []bool{false, false}, table.Rows[0].Inputs)
	assert.Equal(t, []bool{false, true}, table.Rows[1].Inputs)
	assert.Equal(t, []bool{true, false}, table.Rows[2].Inputs)
	assert.Equal(t, []bool{true, true}, table.Rows[3].Inputs)

	values := make([]bool, 4)
	for i, row := range table.Rows {
		values[i] = row.Value
	}
	assert.Equal(t, []bool{false, false, false, true}, values)
}

func TestEnumerateConstant(t *testing.T) {
	table, err := Enumerate(mustParse(t, "1"))
	require.NoError(t, err)
	assert.Empty(t, table.Variables)
	require.Len(t, table.Rows, 1)
	assert.True(t, table.Rows[0].Value)
}

func TestEnumerateTooManyVariables(t *testing.T) {
	terms := make([]string, MaxVariables+1)
	for i := range terms {
		terms[i] = "v" + strings.Repeat("x", i)
	}
	_, err := Enumerate(mustParse(t, strings.Join(terms, " & ")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too many variables")
}

func TestTableString(t *testing.T) {
	table, err := Enumerate(mustParse(t, "a | b"))
	require.NoError(t, err)
	out := table.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Contains(t, lines[0], "a")
	assert.Contains(t, lines[0], "b")
	assert.True(t, strings.HasSuffix(lines[2], "0"))
	assert.True(t, strings.HasSuffix(lines[5], "1"))
}

func TestFromCSV(t *testing.T) {
	csvData := "a,b,out\n0,0,0\n0,1,1\n1,0,1\n1,1,1\n"
	node, err := FromCSV(strings.NewReader(csvData))
	require.NoError(t, err)

	// The synthesized minterm form must match a | b on every row.
	want := mustParse(t, "a | b")
	for _, a := range []bool{false, true} {
		for _, b := range []bool{false, true} {
			assignment := map[string]bool{"a": a, "b": b}
			wantVal, err := logic.Evaluate(want, assignment)
			require.NoError(t, err)
			gotVal, err := logic.Evaluate(node, assignment)
			require.NoError(t, err)
			assert.Equal(t, wantVal, gotVal, "a=%v b=%v", a, b)
		}
	}
}

func TestFromCSVAllFalse(t *testing.T) {
	node, err := FromCSV(strings.NewReader("a,out\n0,0\n1,0\n"))
	require.NoError(t, err)
	assert.True(t, logic.IsFalse(node))
}

func TestFromCSVErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"header only", "a,b,out\n"},
		{"no input columns", "out\n1\n"},
		{"short row", "a,b,out\n0,1\n"},
		{"bad cell", "a,out\nx,1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromCSV(strings.NewReader(tt.data))
			assert.Error(t, err)
		})
	}
}
