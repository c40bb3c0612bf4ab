package field

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Grid is a cubic Cartesian sampling lattice spanning [-Extent, Extent]
// on each axis with K points per axis. Points are ordered x-major:
// index = (i*K + j)*K + k for axes (x, y, z). A Grid is write-once per
// request and never mutated after construction.
type Grid struct {
	K      int
	Extent float64
	axis   []float64
}

// NewGrid builds the shared per-axis coordinate array. K must be >= 2.
func NewGrid(k int, extent float64) *Grid {
	axis := make([]float64, k)
	step := 2 * extent / float64(k-1)
	for i := range axis {
		axis[i] = -extent + float64(i)*step
	}
	// Guard against accumulated rounding at the far edge.
	axis[k-1] = extent
	return &Grid{K: k, Extent: extent, axis: axis}
}

// Len returns the total number of grid points, K^3.
func (g *Grid) Len() int { return g.K * g.K * g.K }

// Axis returns the shared per-axis coordinates. Callers must not modify it.
func (g *Grid) Axis() []float64 { return g.axis }

// Step returns the spacing between adjacent grid points.
func (g *Grid) Step() float64 { return 2 * g.Extent / float64(g.K-1) }

// CellVolume returns the volume element dV for numeric integration.
func (g *Grid) CellVolume() float64 {
	h := g.Step()
	return h * h * h
}

// Index maps (i, j, k) axis indices to the flat point index.
func (g *Grid) Index(i, j, k int) int { return (i*g.K+j)*g.K + k }

// At returns the Cartesian coordinates of point (i, j, k).
func (g *Grid) At(i, j, k int) (x, y, z float64) {
	return g.axis[i], g.axis[j], g.axis[k]
}

// Coords returns the Cartesian coordinates of a flat point index.
func (g *Grid) Coords(idx int) (x, y, z float64) {
	k := idx % g.K
	j := (idx / g.K) % g.K
	i := idx / (g.K * g.K)
	return g.axis[i], g.axis[j], g.axis[k]
}

// Field holds one real value per grid point, paired 1:1 with a Grid.
// It stores either signed amplitude psi or density |psi|^2.
type Field []float64

func (f Field) Clone() Field {
	c := make(Field, len(f))
	copy(c, f)
	return c
}

// IsValid reports whether the field is free of NaN and Inf. A field
// containing non-finite values is an internal invariant violation.
func (f Field) IsValid() bool {
	for _, v := range f {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// MaxAbs returns the largest absolute value in the field.
func (f Field) MaxAbs() float64 {
	m := 0.0
	for _, v := range f {
		if a := math.Abs(v); a > m {
			m = a
		}
	}
	return m
}

// Square returns the element-wise square, i.e. density from amplitude.
func (f Field) Square() Field {
	d := make(Field, len(f))
	floats.MulTo(d, f, f)
	return d
}

// Sum returns the sum of all values using compensated summation.
func (f Field) Sum() float64 { return floats.Sum(f) }

// Dot returns the inner product with another field of equal length.
func (f Field) Dot(other Field) float64 { return floats.Dot(f, other) }
