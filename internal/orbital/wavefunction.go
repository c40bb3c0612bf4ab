package orbital

import (
	"math"

	"github.com/TurbulentGoat/orbitals/internal/field"
	"github.com/TurbulentGoat/orbitals/internal/quantum"
)

// rEpsilon is the radius below which the spherical angles are
// degenerate. Inside it theta is taken as 0 and phi as 0 by convention;
// the amplitude there is 0 for l > 0 (the rho^l factor) and the finite
// radial value for l = 0, so no NaN can leak into the field.
const rEpsilon = 1e-12

// Evaluator composes the radial and angular parts into the signed
// amplitude psi(x, y, z) for one quantum state. It is stateless after
// construction and safe for concurrent use across grid ranges.
type Evaluator struct {
	state       quantum.State
	radialNorm  float64
	angularNorm float64
}

func NewEvaluator(s quantum.State) *Evaluator {
	return &Evaluator{
		state:       s,
		radialNorm:  radialNorm(s.N, s.L),
		angularNorm: angularNorm(s.L, s.M),
	}
}

func (e *Evaluator) State() quantum.State { return e.state }

// At evaluates the signed amplitude at one Cartesian point.
func (e *Evaluator) At(x, y, z float64) float64 {
	r := math.Sqrt(x*x + y*y + z*z)

	var cosTheta, phi float64
	if r < rEpsilon {
		if e.state.L > 0 {
			return 0
		}
		cosTheta, phi = 1, 0
	} else {
		cosTheta = z / r
		if cosTheta > 1 {
			cosTheta = 1
		} else if cosTheta < -1 {
			cosTheta = -1
		}
		phi = math.Atan2(y, x)
	}

	rad := radialAt(e.state.N, e.state.L, e.radialNorm, r)
	ang := angularAt(e.state.L, e.state.M, e.angularNorm, cosTheta, phi)
	return rad * ang
}

// EvaluateRange fills out[start:end] with the amplitude at the grid
// points in [start, end). Ranges may be evaluated concurrently; each
// range writes only its own slice of out.
func (e *Evaluator) EvaluateRange(g *field.Grid, out field.Field, start, end int) {
	for idx := start; idx < end; idx++ {
		x, y, z := g.Coords(idx)
		out[idx] = e.At(x, y, z)
	}
}

// Evaluate computes the full signed amplitude field serially. Callers
// needing parallelism go through volume.Sampler instead.
func (e *Evaluator) Evaluate(g *field.Grid) field.Field {
	out := make(field.Field, g.Len())
	e.EvaluateRange(g, out, 0, g.Len())
	return out
}

// Density returns the probability density |psi|^2 for an amplitude field.
func Density(amplitude field.Field) field.Field {
	return amplitude.Square()
}
