package logic

import "time"

// Limits bounds the resources a single optimize call may consume.
type Limits struct {
	MaxExprLen      int
	MaxNestingDepth int
	MaxVariables    int
	MaxIterations   int
	MaxDuration     time.Duration
}

// DefaultLimits returns the standard resource bounds.
func DefaultLimits() Limits {
	return Limits{
		MaxExprLen:      10000,
		MaxNestingDepth: 50,
		MaxVariables:    100,
		MaxIterations:   50,
		MaxDuration:     30 * time.Second,
	}
}

// ValidateSource checks the raw expression text before lexing:
// overall length, parenthesis nesting depth, and parenthesis balance.
func ValidateSource(text string, limits Limits) error {
	if len(text) > limits.MaxExprLen {
		return &ValidationError{Check: "expression length", Limit: limits.MaxExprLen, Actual: len(text)}
	}

	depth, maxDepth := 0, 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '(':
			depth++
			if depth > maxDepth {
				maxDepth = depth
			}
		case ')':
			depth--
			if depth < 0 {
				return &ValidationError{Check: "unbalanced parentheses", Limit: 0, Actual: depth}
			}
		}
	}
	if depth != 0 {
		return &ValidationError{Check: "unbalanced parentheses", Limit: 0, Actual: depth}
	}
	if maxDepth > limits.MaxNestingDepth {
		return &ValidationError{Check: "nesting depth", Limit: limits.MaxNestingDepth, Actual: maxDepth}
	}
	return nil
}

// ValidateVariableCount checks the distinct variable count of a parsed
// tree before rewriting starts.
func ValidateVariableCount(n Node, limits Limits) error {
	if count := len(Variables(n)); count > limits.MaxVariables {
		return &ValidationError{Check: "variable count", Limit: limits.MaxVariables, Actual: count}
	}
	return nil
}
