// Package export emits expression trees in external text formats:
// DIMACS for SAT solvers, BLIF and Verilog for logic synthesis, LaTeX
// and C-style source for documents and code. Exporters only read the
// tree; they never transform it.
package export

import (
	"fmt"
	"strings"

	"github.com/alexv/logicopt/internal/logic"
	"github.com/alexv/logicopt/internal/normalform"
)

// DIMACS renders a CNF tree in DIMACS clause format. The tree must
// already be in conjunctive normal form.
func DIMACS(n logic.Node) (string, error) {
	var sb strings.Builder
	if logic.IsTrue(n) {
		sb.WriteString("p cnf 0 0\n")
		return sb.String(), nil
	}
	if logic.IsFalse(n) {
		sb.WriteString("p cnf 0 1\n0\n")
		return sb.String(), nil
	}
	if !normalform.IsCNF(n) {
		return "", fmt.Errorf("expression is not in conjunctive normal form")
	}

	vars := logic.Variables(n)
	index := make(map[string]int, len(vars))
	for i, name := range vars {
		index[name] = i + 1
		fmt.Fprintf(&sb, "c %d %s\n", i+1, name)
	}

	var clauses [][]int
	for _, clause := range conjuncts(n) {
		var lits []int
		skip := false
		for _, lit := range disjuncts(clause) {
			switch {
			case logic.IsTrue(lit):
				skip = true
			case logic.IsFalse(lit):
				// contributes nothing to the clause
			default:
				name, negated := literalOf(lit)
				id := index[name]
				if negated {
					id = -id
				}
				lits = append(lits, id)
			}
		}
		if !skip {
			clauses = append(clauses, lits)
		}
	}

	fmt.Fprintf(&sb, "p cnf %d %d\n", len(vars), len(clauses))
	for _, clause := range clauses {
		for _, lit := range clause {
			fmt.Fprintf(&sb, "%d ", lit)
		}
		sb.WriteString("0\n")
	}
	return sb.String(), nil
}

// BLIF renders the tree as a single-output BLIF netlist with one
// .names block per gate.
func BLIF(n logic.Node) (string, error) {
	var sb strings.Builder
	vars := logic.Variables(n)
	sb.WriteString(".model logicopt\n")
	sb.WriteString(".inputs " + strings.Join(vars, " ") + "\n")
	sb.WriteString(".outputs out\n")

	e := &blifEmitter{sb: &sb}
	wire, err := e.emit(n)
	if err != nil {
		return "", err
	}
	fmt.Fprintf(&sb, ".names %s out\n1 1\n", wire)
	sb.WriteString(".end\n")
	return sb.String(), nil
}

type blifEmitter struct {
	sb   *strings.Builder
	next int
}

func (e *blifEmitter) fresh() string {
	e.next++
	return fmt.Sprintf("n%d", e.next)
}

func (e *blifEmitter) emit(n logic.Node) (string, error) {
	switch x := n.(type) {
	case logic.VarNode:
		if logic.IsConstant(x) {
			wire := e.fresh()
			if logic.IsTrue(x) {
				fmt.Fprintf(e.sb, ".names %s\n1\n", wire)
			} else {
				fmt.Fprintf(e.sb, ".names %s\n", wire)
			}
			return wire, nil
		}
		return x.Name, nil

	case logic.NotNode:
		in, err := e.emit(x.Operand)
		if err != nil {
			return "", err
		}
		wire := e.fresh()
		fmt.Fprintf(e.sb, ".names %s %s\n0 1\n", in, wire)
		return wire, nil

	case logic.BinaryNode:
		left, err := e.emit(x.Left)
		if err != nil {
			return "", err
		}
		right, err := e.emit(x.Right)
		if err != nil {
			return "", err
		}
		wire := e.fresh()
		rows, err := gateRows(x.Op)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(e.sb, ".names %s %s %s\n%s", left, right, wire, rows)
		return wire, nil

	default:
		return "", fmt.Errorf("unknown node type %T", n)
	}
}

func gateRows(op logic.BinaryOp) (string, error) {
	switch op {
	case logic.OpAnd:
		return "11 1\n", nil
	case logic.OpOr:
		return "1- 1\n-1 1\n", nil
	case logic.OpXor:
		return "10 1\n01 1\n", nil
	case logic.OpNand:
		return "0- 1\n-0 1\n", nil
	case logic.OpNor:
		return "00 1\n", nil
	case logic.OpImp:
		return "0- 1\n-1 1\n", nil
	default:
		return "", fmt.Errorf("unknown operator %v", op)
	}
}

// Verilog renders the tree as a combinational module with one assign.
func Verilog(n logic.Node) (string, error) {
	body, err := renderDialect(n, dialectVerilog)
	if err != nil {
		return "", err
	}
	vars := logic.Variables(n)
	var sb strings.Builder
	sb.WriteString("module logicopt(")
	for _, name := range vars {
		sb.WriteString("input " + name + ", ")
	}
	sb.WriteString("output out);\n")
	fmt.Fprintf(&sb, "  assign out = %s;\nendmodule\n", body)
	return sb.String(), nil
}

// LaTeX renders the tree with logic symbols for use in math mode.
func LaTeX(n logic.Node) (string, error) {
	return renderDialect(n, dialectLaTeX)
}

// CCode renders the tree as a C boolean expression over int variables.
func CCode(n logic.Node) (string, error) {
	return renderDialect(n, dialectC)
}

type dialect struct {
	not      string
	trueLit  string
	falseLit string
	ops      map[logic.BinaryOp]string
}

var (
	dialectVerilog = dialect{
		not: "~", trueLit: "1'b1", falseLit: "1'b0",
		ops: map[logic.BinaryOp]string{
			logic.OpAnd: "&", logic.OpOr: "|", logic.OpXor: "^",
		},
	}
	dialectLaTeX = dialect{
		not: "\\lnot ", trueLit: "1", falseLit: "0",
		ops: map[logic.BinaryOp]string{
			logic.OpAnd: "\\land", logic.OpOr: "\\lor", logic.OpXor: "\\oplus",
			logic.OpImp: "\\rightarrow",
		},
	}
	dialectC = dialect{
		not: "!", trueLit: "1", falseLit: "0",
		ops: map[logic.BinaryOp]string{
			logic.OpAnd: "&&", logic.OpOr: "||", logic.OpXor: "!=",
		},
	}
)

// renderDialect renders fully parenthesized so no dialect precedence
// table is needed.
func renderDialect(n logic.Node, d dialect) (string, error) {
	switch x := n.(type) {
	case logic.VarNode:
		if logic.IsTrue(x) {
			return d.trueLit, nil
		}
		if logic.IsFalse(x) {
			return d.falseLit, nil
		}
		return x.Name, nil

	case logic.NotNode:
		operand, err := renderDialect(x.Operand, d)
		if err != nil {
			return "", err
		}
		if _, isVar := x.Operand.(logic.VarNode); isVar {
			return d.not + operand, nil
		}
		return d.not + "(" + operand + ")", nil

	case logic.BinaryNode:
		op, ok := d.ops[x.Op]
		if !ok {
			// Lower the operators a dialect lacks onto their encodings.
			switch x.Op {
			case logic.OpImp:
				return renderDialect(logic.Or(logic.Not(x.Left), x.Right), d)
			case logic.OpNand:
				return renderDialect(logic.Not(logic.And(x.Left, x.Right)), d)
			case logic.OpNor:
				return renderDialect(logic.Not(logic.Or(x.Left, x.Right)), d)
			case logic.OpXor:
				return renderDialect(logic.Or(
					logic.And(x.Left, logic.Not(x.Right)),
					logic.And(logic.Not(x.Left), x.Right),
				), d)
			default:
				return "", fmt.Errorf("unknown operator %v", x.Op)
			}
		}
		left, err := renderDialect(x.Left, d)
		if err != nil {
			return "", err
		}
		right, err := renderDialect(x.Right, d)
		if err != nil {
			return "", err
		}
		return "(" + left + " " + op + " " + right + ")", nil

	default:
		return "", fmt.Errorf("unknown node type %T", n)
	}
}

func conjuncts(n logic.Node) []logic.Node {
	if bin, ok := n.(logic.BinaryNode); ok && bin.Op == logic.OpAnd {
		return append(conjuncts(bin.Left), conjuncts(bin.Right)...)
	}
	return []logic.Node{n}
}

func disjuncts(n logic.Node) []logic.Node {
	if bin, ok := n.(logic.BinaryNode); ok && bin.Op == logic.OpOr {
		return append(disjuncts(bin.Left), disjuncts(bin.Right)...)
	}
	return []logic.Node{n}
}

func literalOf(n logic.Node) (name string, negated bool) {
	if not, ok := n.(logic.NotNode); ok {
		v := not.Operand.(logic.VarNode)
		return v.Name, true
	}
	return n.(logic.VarNode).Name, false
}
