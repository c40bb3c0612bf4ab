package analysis

import (
	"errors"

	"gonum.org/v1/gonum/floats"

	"github.com/TurbulentGoat/orbitals/internal/field"
	"github.com/TurbulentGoat/orbitals/internal/orbital"
	"github.com/TurbulentGoat/orbitals/internal/volume"
)

var ErrGridMismatch = errors.New("analysis: fields have different lengths")

// Normalization returns the probability mass of a density field under
// the midpoint rule. For a well-resolved bound state this approaches 1
// as the grid tightens; the remainder is the mass outside the box plus
// discretization error.
func Normalization(density field.Field, g *field.Grid) float64 {
	return density.Sum() * g.CellVolume()
}

// Overlap returns the discretized inner product of two real amplitude
// fields sampled on the same grid. Eigenstates with different quantum
// numbers should overlap near zero.
func Overlap(a, b field.Field, g *field.Grid) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrGridMismatch
	}
	return floats.Dot(a, b) * g.CellVolume(), nil
}

// RadialDistribution samples the shell probability density
// P(r) = r^2 R(r)^2 at n evenly spaced radii in (0, rmax]. It returns
// the radii and the corresponding P values.
func RadialDistribution(n, l int, rmax float64, samples int) (rs, ps []float64) {
	rs = make([]float64, samples)
	ps = make([]float64, samples)
	step := rmax / float64(samples)
	for i := range rs {
		r := step * float64(i+1)
		R := orbital.RadialAt(n, l, r)
		rs[i] = r
		ps[i] = r * r * R * R
	}
	return rs, ps
}

// RadialPeak returns the most probable radius, the argmax of P(r),
// located by a dense scan out to the sampling extent for n.
func RadialPeak(n, l int) float64 {
	const samples = 4096
	rmax := volume.DefaultExtentScale * float64(n*n)
	rs, ps := RadialDistribution(n, l, rmax, samples)
	return rs[floats.MaxIdx(ps)]
}
