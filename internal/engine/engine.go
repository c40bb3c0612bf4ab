package engine

import (
	"context"
	"time"

	"github.com/TurbulentGoat/orbitals/internal/field"
	"github.com/TurbulentGoat/orbitals/internal/isosurface"
	"github.com/TurbulentGoat/orbitals/internal/orbital"
	"github.com/TurbulentGoat/orbitals/internal/quantum"
	"github.com/TurbulentGoat/orbitals/internal/volume"
)

// Representation selects the renderable payload kind.
type Representation int

const (
	// PointCloud emits thresholded grid points; adequate for scatter
	// renderers and always available.
	PointCloud Representation = iota
	// TriangleMesh emits a marching-tetrahedra surface mesh.
	TriangleMesh
)

// DefaultQuality is the quality level used when a request leaves it 0.
const DefaultQuality = 3

// Request is one orbital selection: raw quantum numbers plus optional
// quality/resolution and isolevel overrides. The zero values of Quality,
// K and Iso select the defaults.
type Request struct {
	N, L, M int
	Quality int               // 1..5, mapped to grid resolution
	K       int               // explicit points per axis, overrides Quality
	Iso     isosurface.Policy // zero value means DefaultPolicy
	Rep     Representation
}

func (r Request) resolution() int {
	if r.K > 0 {
		return r.K
	}
	q := r.Quality
	if q == 0 {
		q = DefaultQuality
	}
	return volume.ResolutionFor(q)
}

func (r Request) policy() isosurface.Policy {
	if r.Iso.Fraction == 0 && r.Iso.Mass == 0 {
		return isosurface.DefaultPolicy()
	}
	return r.Iso
}

// Stats summarizes the sampled field for display and diagnostics.
type Stats struct {
	GridPoints  int
	PeakDensity float64
	// SampledMass is the probability mass captured by the grid; it
	// approaches 1 as resolution and extent grow.
	SampledMass float64
	SurfacePoints int // cloud points or mesh vertices
}

// Result is the renderable payload handed to the UI layer: geometry
// with per-element sign tags plus the metadata needed for labels and
// debugging. Results are immutable once returned.
type Result struct {
	State    quantum.State
	Label    string
	Extent   float64
	K        int
	Isolevel float64
	Rep      Representation

	Mesh  *isosurface.Mesh       // set when Rep == TriangleMesh
	Cloud *isosurface.PointCloud // set when Rep == PointCloud

	Grid      *field.Grid
	Amplitude field.Field
	Density   field.Field

	Stats   Stats
	Elapsed time.Duration
}

// Engine computes renderable orbital isosurfaces. It is safe for
// concurrent use; every request is processed on write-once buffers.
type Engine struct {
	sampler *volume.Sampler
	cache   *resultCache
}

func New() *Engine {
	return &Engine{sampler: volume.NewSampler()}
}

// NewCached wraps the engine with a read-through result cache keyed on
// the full request tuple. Entries are inserted once and never mutated.
func NewCached() *Engine {
	e := New()
	e.cache = newResultCache()
	return e
}

// Sampler exposes the sampler for tuning (extent scale, worker count).
func (e *Engine) Sampler() *volume.Sampler { return e.sampler }

// Compute runs one selection through validation, sampling and surface
// extraction. Validation failures are returned before any array
// allocation; a canceled context aborts between grid chunks with no
// partial state kept.
func (e *Engine) Compute(ctx context.Context, req Request) (*Result, error) {
	state, err := quantum.Validate(req.N, req.L, req.M)
	if err != nil {
		return nil, err
	}

	if e.cache != nil {
		if res, ok := e.cache.get(keyOf(req)); ok {
			return res, nil
		}
	}

	start := time.Now()

	k := req.resolution()
	grid, amplitude, err := e.sampler.Sample(ctx, state, k)
	if err != nil {
		return nil, err
	}

	density := orbital.Density(amplitude)
	policy := req.policy()
	isolevel := policy.Isolevel(density, grid)

	res := &Result{
		State:     state,
		Label:     state.Label(),
		Extent:    grid.Extent,
		K:         grid.K,
		Isolevel:  isolevel,
		Rep:       req.Rep,
		Grid:      grid,
		Amplitude: amplitude,
		Density:   density,
		Stats: Stats{
			GridPoints:  grid.Len(),
			PeakDensity: density.MaxAbs(),
			SampledMass: density.Sum() * grid.CellVolume(),
		},
	}

	switch req.Rep {
	case TriangleMesh:
		res.Mesh = isosurface.ExtractMesh(amplitude, density, grid, isolevel)
		res.Stats.SurfacePoints = len(res.Mesh.Vertices)
	default:
		res.Cloud = isosurface.ExtractPoints(amplitude, density, grid, isolevel)
		res.Stats.SurfacePoints = len(res.Cloud.Points)
	}

	res.Elapsed = time.Since(start)

	if e.cache != nil {
		e.cache.put(keyOf(req), res)
	}
	return res, nil
}
