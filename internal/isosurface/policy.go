package isosurface

import (
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/TurbulentGoat/orbitals/internal/field"
)

// Mode selects how the isolevel is derived from the density field. A
// fixed absolute threshold would not generalize across n: peak density
// varies by orders of magnitude between shells.
type Mode int

const (
	// MaxFraction places the isolevel at Fraction times the field's
	// peak density.
	MaxFraction Mode = iota
	// ProbabilityMass places the isolevel so that the enclosed region
	// holds Mass of the total sampled probability.
	ProbabilityMass
)

func (m Mode) String() string {
	switch m {
	case MaxFraction:
		return "max-fraction"
	case ProbabilityMass:
		return "probability-mass"
	}
	return "unknown"
}

// Policy is the tunable isolevel selection.
type Policy struct {
	Mode     Mode
	Fraction float64 // of peak density, MaxFraction mode
	Mass     float64 // enclosed probability, ProbabilityMass mode
}

func DefaultPolicy() Policy {
	return Policy{Mode: MaxFraction, Fraction: 0.01, Mass: 0.9}
}

// Isolevel computes the density threshold for the given field.
func (p Policy) Isolevel(density field.Field, grid *field.Grid) float64 {
	switch p.Mode {
	case ProbabilityMass:
		return massIsolevel(density, p.Mass)
	default:
		return p.Fraction * density.MaxAbs()
	}
}

// massIsolevel finds the density value such that all points at or above
// it account for the requested share of the total sampled probability.
// The total is taken from the field itself rather than assumed to be 1,
// so discretization error does not bias the threshold.
func massIsolevel(density field.Field, mass float64) float64 {
	if len(density) == 0 {
		return 0
	}
	if mass <= 0 {
		return density.MaxAbs()
	}
	if mass >= 1 {
		return 0
	}

	sorted := make([]float64, len(density))
	copy(sorted, density)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))

	total := floats.Sum(sorted)
	if total <= 0 {
		return 0
	}

	target := mass * total
	acc := 0.0
	for _, v := range sorted {
		acc += v
		if acc >= target {
			return v
		}
	}
	return sorted[len(sorted)-1]
}
