package quantum

import (
	"errors"
	"fmt"
)

// ErrInvalidQuantumNumbers indicates an (n, l, m) triple violating the
// quantum number constraints. It is never recovered or defaulted.
var ErrInvalidQuantumNumbers = errors.New("quantum: invalid quantum numbers")

// NumberError reports which constraint an (n, l, m) triple violated.
type NumberError struct {
	N, L, M    int
	Constraint string
}

func (e *NumberError) Error() string {
	return fmt.Sprintf("invalid quantum numbers (n=%d, l=%d, m=%d): %s", e.N, e.L, e.M, e.Constraint)
}

func (e *NumberError) Unwrap() error {
	return ErrInvalidQuantumNumbers
}
