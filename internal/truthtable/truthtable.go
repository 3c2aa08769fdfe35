// Package truthtable enumerates and pretty-prints truth tables, and
// synthesizes expressions from truth tables imported as CSV. It only
// consumes the core's tree type and evaluator.
package truthtable

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/alexv/logicopt/internal/logic"
)

// MaxVariables caps enumeration; beyond it the table would not be
// printable anyway.
const MaxVariables = 20

// Row is one assignment and the expression's value under it. Inputs
// align with the table's variable order.
type Row struct {
	Inputs []bool
	Value  bool
}

// Table is a fully enumerated truth table.
type Table struct {
	Variables []string
	Rows      []Row
}

// Enumerate computes the truth table of the tree over all assignments
// to its variables, most-significant variable first.
func Enumerate(n logic.Node) (*Table, error) {
	vars := logic.Variables(n)
	if len(vars) > MaxVariables {
		return nil, fmt.Errorf("too many variables for truth table: %d > %d", len(vars), MaxVariables)
	}

	table := &Table{Variables: vars}
	total := 1 << len(vars)
	assignment := make(map[string]bool, len(vars))
	for i := 0; i < total; i++ {
		inputs := make([]bool, len(vars))
		for j, name := range vars {
			val := i&(1<<(len(vars)-1-j)) != 0
			inputs[j] = val
			assignment[name] = val
		}
		value, err := logic.Evaluate(n, assignment)
		if err != nil {
			return nil, err
		}
		table.Rows = append(table.Rows, Row{Inputs: inputs, Value: value})
	}
	return table, nil
}

// String renders the table with one column per variable and a result
// column.
func (t *Table) String() string {
	var sb strings.Builder
	for _, name := range t.Variables {
		sb.WriteString(name)
		sb.WriteString(" | ")
	}
	sb.WriteString("=\n")
	for range t.Variables {
		sb.WriteString("--|-")
	}
	sb.WriteString("-\n")
	for _, row := range t.Rows {
		for j, val := range row.Inputs {
			sb.WriteString(bit(val))
			sb.WriteString(strings.Repeat(" ", len(t.Variables[j])-1))
			sb.WriteString(" | ")
		}
		sb.WriteString(bit(row.Value))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func bit(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// FromCSV reads a truth table and synthesizes the matching expression
// as a disjunction of minterms. The header names the input variables;
// the last column is the result. Cells must be 0 or 1.
func FromCSV(r io.Reader) (logic.Node, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading truth table csv: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("truth table csv needs a header and at least one row")
	}
	header := records[0]
	if len(header) < 2 {
		return nil, fmt.Errorf("truth table csv needs at least one input column and a result column")
	}
	vars := header[: len(header)-1 : len(header)-1]

	var minterms []logic.Node
	for lineNo, record := range records[1:] {
		if len(record) != len(header) {
			return nil, fmt.Errorf("row %d: expected %d cells, got %d", lineNo+2, len(header), len(record))
		}
		values := make([]bool, len(record))
		for i, cell := range record {
			val, err := parseBit(strings.TrimSpace(cell))
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", lineNo+2, err)
			}
			values[i] = val
		}
		if !values[len(values)-1] {
			continue
		}
		minterms = append(minterms, minterm(vars, values))
	}

	if len(minterms) == 0 {
		return logic.False(), nil
	}
	result := minterms[0]
	for _, t := range minterms[1:] {
		result = logic.Or(result, t)
	}
	return result, nil
}

// minterm builds the conjunction of literals matching one true row.
func minterm(vars []string, values []bool) logic.Node {
	var term logic.Node
	for i, name := range vars {
		var lit logic.Node = logic.Var(name)
		if !values[i] {
			lit = logic.Not(lit)
		}
		if term == nil {
			term = lit
		} else {
			term = logic.And(term, lit)
		}
	}
	return term
}

func parseBit(cell string) (bool, error) {
	switch cell {
	case "0":
		return false, nil
	case "1":
		return true, nil
	default:
		return false, fmt.Errorf("invalid truth table cell %q", cell)
	}
}
