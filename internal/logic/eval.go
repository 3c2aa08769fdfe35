package logic

import "fmt"

// Evaluate computes the truth value of the tree under the given variable
// assignment. It returns ErrUnboundVariable (wrapped with the variable
// name) when a referenced variable has no binding.
func Evaluate(n Node, assignment map[string]bool) (bool, error) {
	switch x := n.(type) {
	case VarNode:
		switch x.Name {
		case "0":
			return false, nil
		case "1":
			return true, nil
		}
		val, ok := assignment[x.Name]
		if !ok {
			return false, fmt.Errorf("%w: %s", ErrUnboundVariable, x.Name)
		}
		return val, nil

	case NotNode:
		val, err := Evaluate(x.Operand, assignment)
		if err != nil {
			return false, err
		}
		return !val, nil

	case BinaryNode:
		left, err := Evaluate(x.Left, assignment)
		if err != nil {
			return false, err
		}
		right, err := Evaluate(x.Right, assignment)
		if err != nil {
			return false, err
		}
		switch x.Op {
		case OpAnd:
			return left && right, nil
		case OpOr:
			return left || right, nil
		case OpXor:
			return left != right, nil
		case OpNand:
			return !(left && right), nil
		case OpNor:
			return !(left || right), nil
		case OpImp:
			return !left || right, nil
		default:
			return false, fmt.Errorf("unknown operator %v", x.Op)
		}

	default:
		return false, fmt.Errorf("unknown node type %T", n)
	}
}
