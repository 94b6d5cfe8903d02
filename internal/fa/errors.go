package fa

import "errors"

var (
	// ErrMalformedExpression is returned when an operator finds fewer
	// operands than it needs, or when the expression does not reduce to
	// exactly one automaton.
	ErrMalformedExpression = errors.New("malformed expression")

	// ErrInvalidSymbol is returned when Epsilon is used where a concrete
	// alphabet symbol is required.
	ErrInvalidSymbol = errors.New("invalid alphabet symbol")
)
