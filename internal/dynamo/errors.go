package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for problem setup and evaluation.
var (
	// ErrInvalidProblem indicates a parameter set that violates the problem invariants.
	ErrInvalidProblem = errors.New("dynamo: invalid problem parameters")

	// ErrDomainFault indicates a fractional power of a negative number was taken
	// while evaluating the equation, leaving NaN in a series.
	ErrDomainFault = errors.New("dynamo: equation evaluated outside its real domain")

	// ErrUnknownMethod indicates a method name with no registered stepper.
	ErrUnknownMethod = errors.New("dynamo: unknown integration method")
)

// DomainError locates the first invalid value of a series.
type DomainError struct {
	Method string  `json:"method"`
	Series string  `json:"series"`
	Index  int     `json:"index"`
	X      float64 `json:"x"`
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s %s: index %d (x=%.4f): %v", e.Method, e.Series, e.Index, e.X, ErrDomainFault)
}

func (e *DomainError) Unwrap() error {
	return ErrDomainFault
}
