package quantum

import "fmt"

// State is a validated, immutable (n, l, m) quantum number triple
// identifying a single hydrogen-like orbital.
type State struct {
	N int // principal quantum number, n >= 1
	L int // azimuthal quantum number, 0 <= l <= n-1
	M int // magnetic quantum number, -l <= m <= l
}

// Validate checks the quantum number constraints and returns a State.
// Any violation returns a *NumberError; no numeric evaluation may run
// before this gate.
func Validate(n, l, m int) (State, error) {
	switch {
	case n < 1:
		return State{}, &NumberError{N: n, L: l, M: m, Constraint: "n must be >= 1"}
	case l < 0:
		return State{}, &NumberError{N: n, L: l, M: m, Constraint: "l must be >= 0"}
	case l > n-1:
		return State{}, &NumberError{N: n, L: l, M: m, Constraint: "l must be < n"}
	case m < -l || m > l:
		return State{}, &NumberError{N: n, L: l, M: m, Constraint: "|m| must be <= l"}
	}
	return State{N: n, L: l, M: m}, nil
}

// MustValidate is Validate for statically known triples (presets, tests).
func MustValidate(n, l, m int) State {
	s, err := Validate(n, l, m)
	if err != nil {
		panic(err)
	}
	return s
}

// subshell letters in spectroscopic order: s, p, d, f, then alphabetic
// skipping j.
var subshells = []rune("spdfghiklmnoqrtuvwxyz")

// Subshell returns the spectroscopic letter for l ("s", "p", "d", ...).
func Subshell(l int) string {
	if l >= 0 && l < len(subshells) {
		return string(subshells[l])
	}
	return fmt.Sprintf("(l=%d)", l)
}

// Label formats the orbital in the conventional style, e.g. "3d, m=-2".
func (s State) Label() string {
	return fmt.Sprintf("%d%s, m=%d", s.N, Subshell(s.L), s.M)
}

// ShortLabel formats just the shell and subshell, e.g. "3d".
func (s State) ShortLabel() string {
	return fmt.Sprintf("%d%s", s.N, Subshell(s.L))
}

func (s State) String() string { return s.Label() }
