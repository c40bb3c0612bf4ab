package volume

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/TurbulentGoat/orbitals/internal/field"
	"github.com/TurbulentGoat/orbitals/internal/orbital"
	"github.com/TurbulentGoat/orbitals/internal/quantum"
)

const (
	// DefaultExtentScale sets the cube half-width R = scale * n^2. The
	// orbital's mean radius grows as n^2 ((3n^2 - l(l+1))/2 in Bohr
	// radii), so a fixed extent would clip high-n orbitals or waste
	// resolution on low-n ones. 3.5 leaves margin past the outermost
	// visually significant lobe up to at least n=10.
	DefaultExtentScale = 3.5

	// DefaultMaxPoints caps the total evaluated points K^3 for
	// interactive recomputation.
	DefaultMaxPoints = 1 << 21

	// chunkSize is the number of grid points a worker claims at a time.
	chunkSize = 8192
)

// ErrResolutionTooHigh indicates a requested grid resolution whose K^3
// exceeds the compute ceiling. It is surfaced, never silently downgraded.
var ErrResolutionTooHigh = errors.New("volume: resolution too high")

// ResolutionError carries the offending point count so the caller can
// retry with a lower quality.
type ResolutionError struct {
	K       int
	Points  int
	Ceiling int
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("grid resolution %d^3 = %d points exceeds ceiling %d", e.K, e.Points, e.Ceiling)
}

func (e *ResolutionError) Unwrap() error { return ErrResolutionTooHigh }

// qualityResolution maps the single user-facing quality knob to points
// per axis.
var qualityResolution = []int{32, 48, 64, 80, 96}

// ResolutionFor converts a quality level (1..5, clamped) to grid points
// per axis.
func ResolutionFor(quality int) int {
	if quality < 1 {
		quality = 1
	}
	if quality > len(qualityResolution) {
		quality = len(qualityResolution)
	}
	return qualityResolution[quality-1]
}

// Sampler builds Cartesian sampling grids and evaluates a wavefunction
// over them in parallel. The zero value is not usable; construct with
// NewSampler.
type Sampler struct {
	ExtentScale float64
	MaxPoints   int
	Workers     int
}

func NewSampler() *Sampler {
	return &Sampler{
		ExtentScale: DefaultExtentScale,
		MaxPoints:   DefaultMaxPoints,
		Workers:     runtime.NumCPU(),
	}
}

// Extent returns the cube half-width for a state.
func (s *Sampler) Extent(state quantum.State) float64 {
	return s.ExtentScale * float64(state.N*state.N)
}

// Sample builds the grid for state at k points per axis and fills the
// signed amplitude field. The grid and field are written exactly once;
// if ctx is canceled mid-computation both are simply discarded and the
// context error is returned.
func (s *Sampler) Sample(ctx context.Context, state quantum.State, k int) (*field.Grid, field.Field, error) {
	if k < 2 {
		k = 2
	}
	points := k * k * k
	if points > s.MaxPoints {
		return nil, nil, &ResolutionError{K: k, Points: points, Ceiling: s.MaxPoints}
	}

	grid := field.NewGrid(k, s.Extent(state))
	amplitude := make(field.Field, grid.Len())
	eval := orbital.NewEvaluator(state)

	err := parallelFor(ctx, grid.Len(), chunkSize, s.Workers, func(start, end int) {
		eval.EvaluateRange(grid, amplitude, start, end)
	})
	if err != nil {
		return nil, nil, err
	}

	if !amplitude.IsValid() {
		// The evaluator clamps every degenerate point, so this is an
		// internal invariant violation rather than a user input problem.
		return nil, nil, fmt.Errorf("volume: non-finite amplitude for %v", state)
	}
	return grid, amplitude, nil
}
