package engine

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/TurbulentGoat/orbitals/internal/isosurface"
	"github.com/TurbulentGoat/orbitals/internal/quantum"
	"github.com/TurbulentGoat/orbitals/internal/volume"
)

func TestComputeValidatesFirst(t *testing.T) {
	eng := New()

	tests := []struct{ n, l, m int }{
		{2, 2, 0},
		{3, 1, 2},
		{0, 0, 0},
	}
	for _, tt := range tests {
		_, err := eng.Compute(context.Background(), Request{N: tt.n, L: tt.l, M: tt.m})
		if !errors.Is(err, quantum.ErrInvalidQuantumNumbers) {
			t.Errorf("(%d,%d,%d): err = %v, want ErrInvalidQuantumNumbers", tt.n, tt.l, tt.m, err)
		}
	}
}

func TestComputeResolutionTooHigh(t *testing.T) {
	eng := New()
	_, err := eng.Compute(context.Background(), Request{N: 1, L: 0, M: 0, K: 512})
	if !errors.Is(err, volume.ErrResolutionTooHigh) {
		t.Errorf("err = %v, want ErrResolutionTooHigh", err)
	}
}

func TestCompute1sMetadata(t *testing.T) {
	eng := New()
	res, err := eng.Compute(context.Background(), Request{N: 1, L: 0, M: 0, Quality: 2})
	if err != nil {
		t.Fatal(err)
	}

	if res.Label != "1s, m=0" {
		t.Errorf("label = %q, want %q", res.Label, "1s, m=0")
	}
	if res.K != volume.ResolutionFor(2) {
		t.Errorf("K = %d, want %d", res.K, volume.ResolutionFor(2))
	}
	if res.Extent != volume.DefaultExtentScale {
		t.Errorf("extent = %v, want %v for n=1", res.Extent, volume.DefaultExtentScale)
	}
	if res.Isolevel <= 0 {
		t.Errorf("isolevel = %v, want > 0", res.Isolevel)
	}
	if res.Cloud == nil || res.Cloud.Empty() {
		t.Error("expected non-empty point cloud for 1s")
	}
	if res.Stats.SurfacePoints != len(res.Cloud.Points) {
		t.Error("stats disagree with payload size")
	}
}

func TestComputeSampledMassApproachesOne(t *testing.T) {
	eng := New()

	massAt := func(k int) float64 {
		res, err := eng.Compute(context.Background(), Request{N: 2, L: 1, M: 0, K: k})
		if err != nil {
			t.Fatal(err)
		}
		return res.Stats.SampledMass
	}

	coarse := massAt(16)
	fine := massAt(64)

	if math.Abs(fine-1) > 0.05 {
		t.Errorf("sampled mass at K=64 = %v, want within 0.05 of 1", fine)
	}
	if math.Abs(fine-1) > math.Abs(coarse-1)+1e-6 {
		t.Errorf("mass error should tighten with resolution: K=16 -> %v, K=64 -> %v", coarse, fine)
	}
}

func TestComputeOrthogonalityS_States(t *testing.T) {
	// Discretized <psi_100 | psi_200> on matching grids. Extents differ
	// per n, so fix the grid via the same state extent by comparing
	// (2,1,0) against (2,1,1) and (2,0,0): same n, same grid.
	eng := New()
	ctx := context.Background()

	a, err := eng.Compute(ctx, Request{N: 2, L: 1, M: 0, K: 48})
	if err != nil {
		t.Fatal(err)
	}
	b, err := eng.Compute(ctx, Request{N: 2, L: 0, M: 0, K: 48})
	if err != nil {
		t.Fatal(err)
	}

	dot := a.Amplitude.Dot(b.Amplitude) * a.Grid.CellVolume()
	if math.Abs(dot) > 0.01 {
		t.Errorf("<2p_z|2s> = %v, want ~0", dot)
	}
}

func TestComputeMeshRepresentation(t *testing.T) {
	eng := New()
	res, err := eng.Compute(context.Background(), Request{N: 2, L: 1, M: 0, Quality: 2, Rep: TriangleMesh})
	if err != nil {
		t.Fatal(err)
	}
	if res.Mesh == nil || res.Mesh.Empty() {
		t.Fatal("expected mesh payload")
	}
	if res.Cloud != nil {
		t.Error("cloud should be nil for mesh representation")
	}
}

func TestComputeEmptyResultNotError(t *testing.T) {
	eng := New()
	res, err := eng.Compute(context.Background(), Request{
		N: 1, L: 0, M: 0, Quality: 1,
		// Fraction > 1 pushes the isolevel above the peak density.
		Iso: isosurface.Policy{Mode: isosurface.MaxFraction, Fraction: 2},
	})
	if err != nil {
		t.Fatalf("empty result should not be an error: %v", err)
	}
	if !res.Cloud.Empty() {
		t.Error("expected empty cloud")
	}
}

func TestComputeCanceled(t *testing.T) {
	eng := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := eng.Compute(ctx, Request{N: 4, L: 2, M: 1, Quality: 5})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestCachedEngineReuses(t *testing.T) {
	eng := NewCached()
	ctx := context.Background()
	req := Request{N: 3, L: 1, M: -1, Quality: 1}

	first, err := eng.Compute(ctx, req)
	if err != nil {
		t.Fatal(err)
	}
	second, err := eng.Compute(ctx, req)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("cached engine should return the stored result pointer")
	}

	// A different tuple must not hit the same entry.
	other, err := eng.Compute(ctx, Request{N: 3, L: 1, M: 0, Quality: 1})
	if err != nil {
		t.Fatal(err)
	}
	if other == first {
		t.Error("distinct requests share a cache entry")
	}
}

func TestComputeDeterministic(t *testing.T) {
	eng := New()
	ctx := context.Background()
	req := Request{N: 3, L: 2, M: 2, Quality: 1}

	a, err := eng.Compute(ctx, req)
	if err != nil {
		t.Fatal(err)
	}
	b, err := eng.Compute(ctx, req)
	if err != nil {
		t.Fatal(err)
	}

	if len(a.Cloud.Points) != len(b.Cloud.Points) {
		t.Fatalf("point counts differ: %d vs %d", len(a.Cloud.Points), len(b.Cloud.Points))
	}
	for i := range a.Cloud.Points {
		if a.Cloud.Points[i] != b.Cloud.Points[i] || a.Cloud.Signs[i] != b.Cloud.Signs[i] {
			t.Fatalf("outputs differ at %d", i)
		}
	}
	if a.Isolevel != b.Isolevel {
		t.Errorf("isolevels differ: %v vs %v", a.Isolevel, b.Isolevel)
	}
}
