package logic

import (
	"sort"
	"strings"
)

// Node represents a node in a boolean expression tree.
// Trees are immutable values: every transformation builds new nodes
// and never mutates an existing one.
type Node interface {
	isNode()
	String() string
}

// VarNode represents a variable reference. The reserved names "0" and "1"
// denote the boolean constants false and true.
type VarNode struct {
	Name string
}

func (VarNode) isNode() {}
func (n VarNode) String() string {
	return Render(n)
}

// NotNode represents a logical negation.
type NotNode struct {
	Operand Node
}

func (NotNode) isNode() {}
func (n NotNode) String() string {
	return Render(n)
}

// BinaryOp represents binary boolean operators.
type BinaryOp int

const (
	_ BinaryOp = iota
	OpAnd
	OpOr
	OpXor
	OpNand
	OpNor
	OpImp
)

func (op BinaryOp) String() string {
	switch op {
	case OpAnd:
		return "&"
	case OpOr:
		return "|"
	case OpXor:
		return "^"
	case OpNand:
		return "~&"
	case OpNor:
		return "~|"
	case OpImp:
		return "->"
	default:
		return "?"
	}
}

// BinaryNode represents a binary expression. ForceParens only affects
// rendering, never semantics; rules that rebuild a node from the same
// logical children must carry it forward explicitly.
type BinaryNode struct {
	Op          BinaryOp
	Left        Node
	Right       Node
	ForceParens bool
}

func (BinaryNode) isNode() {}
func (n BinaryNode) String() string {
	return Render(n)
}

// Helper functions to construct AST nodes

// Var creates a variable reference node.
func Var(name string) Node {
	return VarNode{Name: name}
}

// True returns the constant-true node.
func True() Node {
	return VarNode{Name: "1"}
}

// False returns the constant-false node.
func False() Node {
	return VarNode{Name: "0"}
}

// Not creates a negation node.
func Not(operand Node) Node {
	return NotNode{Operand: operand}
}

// And creates a conjunction node.
func And(left, right Node) Node {
	return BinaryNode{Op: OpAnd, Left: left, Right: right}
}

// Or creates a disjunction node.
func Or(left, right Node) Node {
	return BinaryNode{Op: OpOr, Left: left, Right: right}
}

// Xor creates an exclusive-or node.
func Xor(left, right Node) Node {
	return BinaryNode{Op: OpXor, Left: left, Right: right}
}

// Imp creates an implication node.
func Imp(left, right Node) Node {
	return BinaryNode{Op: OpImp, Left: left, Right: right}
}

// Binary creates a binary node with an explicit parenthesization flag.
func Binary(op BinaryOp, left, right Node, forceParens bool) Node {
	return BinaryNode{Op: op, Left: left, Right: right, ForceParens: forceParens}
}

// IsTrue reports whether n is the constant-true node.
func IsTrue(n Node) bool {
	v, ok := n.(VarNode)
	return ok && v.Name == "1"
}

// IsFalse reports whether n is the constant-false node.
func IsFalse(n Node) bool {
	v, ok := n.(VarNode)
	return ok && v.Name == "0"
}

// IsConstant reports whether n is one of the constant nodes.
func IsConstant(n Node) bool {
	return IsTrue(n) || IsFalse(n)
}

// Equal reports structural equality of two trees. ForceParens is a
// rendering hint and is ignored here.
func Equal(a, b Node) bool {
	switch x := a.(type) {
	case VarNode:
		y, ok := b.(VarNode)
		return ok && x.Name == y.Name
	case NotNode:
		y, ok := b.(NotNode)
		return ok && Equal(x.Operand, y.Operand)
	case BinaryNode:
		y, ok := b.(BinaryNode)
		return ok && x.Op == y.Op && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	default:
		return false
	}
}

// Clone returns a deep copy of the tree.
func Clone(n Node) Node {
	switch x := n.(type) {
	case VarNode:
		return VarNode{Name: x.Name}
	case NotNode:
		return NotNode{Operand: Clone(x.Operand)}
	case BinaryNode:
		return BinaryNode{Op: x.Op, Left: Clone(x.Left), Right: Clone(x.Right), ForceParens: x.ForceParens}
	default:
		return n
	}
}

// Count returns the number of nodes in the tree.
func Count(n Node) int {
	switch x := n.(type) {
	case VarNode:
		return 1
	case NotNode:
		return 1 + Count(x.Operand)
	case BinaryNode:
		return 1 + Count(x.Left) + Count(x.Right)
	default:
		return 1
	}
}

// Operator precedence for rendering. Negation binds tightest, then
// conjunction, then disjunction. Derived operators never appear in
// parsed input; implication binds loosest and the rest sit at the
// level of the primitive they generalize.
const (
	precImp = iota
	precOr
	precAnd
	precNot
)

func precedence(n Node) int {
	switch x := n.(type) {
	case VarNode:
		return precNot + 1
	case NotNode:
		return precNot
	case BinaryNode:
		switch x.Op {
		case OpAnd, OpNand:
			return precAnd
		case OpOr, OpNor, OpXor:
			return precOr
		case OpImp:
			return precImp
		}
	}
	return precNot + 1
}

// Render produces the textual form of a tree. Parentheses are inserted
// where precedence requires them; a node with ForceParens set is always
// parenthesized when it appears below the root.
func Render(n Node) string {
	var sb strings.Builder
	renderInto(&sb, n, precImp, true)
	return sb.String()
}

func renderInto(sb *strings.Builder, n Node, parent int, root bool) {
	switch x := n.(type) {
	case VarNode:
		sb.WriteString(x.Name)
	case NotNode:
		sb.WriteByte('!')
		renderInto(sb, x.Operand, precNot, false)
	case BinaryNode:
		prec := precedence(n)
		parens := !root && (x.ForceParens || prec < parent || derivedOp(x.Op))
		if parens {
			sb.WriteByte('(')
		}
		renderInto(sb, x.Left, prec, false)
		sb.WriteByte(' ')
		sb.WriteString(x.Op.String())
		sb.WriteByte(' ')
		renderInto(sb, x.Right, prec, false)
		if parens {
			sb.WriteByte(')')
		}
	}
}

// derivedOp reports whether op is one of the operators reconstructed by
// pattern folding. They are always parenthesized below the root so the
// rendered form stays unambiguous next to the primitive operators.
func derivedOp(op BinaryOp) bool {
	switch op {
	case OpXor, OpNand, OpNor, OpImp:
		return true
	}
	return false
}

// Variables returns the sorted set of variable names occurring in the
// tree. The constant literals "0" and "1" are excluded.
func Variables(n Node) []string {
	seen := make(map[string]bool)
	collectVariables(n, seen)
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func collectVariables(n Node, seen map[string]bool) {
	switch x := n.(type) {
	case VarNode:
		if x.Name != "0" && x.Name != "1" {
			seen[x.Name] = true
		}
	case NotNode:
		collectVariables(x.Operand, seen)
	case BinaryNode:
		collectVariables(x.Left, seen)
		collectVariables(x.Right, seen)
	}
}
