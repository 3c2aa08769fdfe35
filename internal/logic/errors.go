package logic

import (
	"errors"
	"fmt"
)

// LexError reports an invalid character or malformed literal in the input.
type LexError struct {
	Pos int
	Msg string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at position %d: %s", e.Pos, e.Msg)
}

// ParseError reports a structural grammar violation.
type ParseError struct {
	Pos int
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at position %d: %s", e.Pos, e.Msg)
}

// ValidationError reports a resource limit violated before rewriting starts.
type ValidationError struct {
	Check  string
	Limit  int
	Actual int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s %d exceeds limit %d", e.Check, e.Actual, e.Limit)
}

// Fatal rewrite-termination guards. Hitting either one means the rule
// pipeline is not converging; the optimize call is aborted, never retried.
var (
	ErrIterationLimit = errors.New("optimization iteration limit exceeded")
	ErrTimeLimit      = errors.New("optimization time limit exceeded")
)

// ErrUnboundVariable is returned by Evaluate when the assignment is
// missing a variable used by the expression.
var ErrUnboundVariable = errors.New("unbound variable")
