package volume

import (
	"context"
	"errors"
	"math"
	"sync/atomic"
	"testing"

	"github.com/TurbulentGoat/orbitals/internal/orbital"
	"github.com/TurbulentGoat/orbitals/internal/quantum"
)

func TestExtentScalesWithN(t *testing.T) {
	s := NewSampler()
	e1 := s.Extent(quantum.MustValidate(1, 0, 0))
	e3 := s.Extent(quantum.MustValidate(3, 0, 0))
	if math.Abs(e3/e1-9) > 1e-12 {
		t.Errorf("extent ratio n=3/n=1 = %v, want 9 (n^2 scaling)", e3/e1)
	}
}

func TestResolutionFor(t *testing.T) {
	tests := []struct{ quality, want int }{
		{-3, 32}, {0, 32}, {1, 32}, {3, 64}, {5, 96}, {99, 96},
	}
	for _, tt := range tests {
		if got := ResolutionFor(tt.quality); got != tt.want {
			t.Errorf("ResolutionFor(%d) = %d, want %d", tt.quality, got, tt.want)
		}
	}
}

func TestSampleResolutionCeiling(t *testing.T) {
	s := NewSampler()
	s.MaxPoints = 64 * 64 * 64

	_, _, err := s.Sample(context.Background(), quantum.MustValidate(1, 0, 0), 128)
	if err == nil {
		t.Fatal("expected ResolutionTooHigh, got nil")
	}
	if !errors.Is(err, ErrResolutionTooHigh) {
		t.Errorf("error does not wrap ErrResolutionTooHigh: %v", err)
	}
	var re *ResolutionError
	if !errors.As(err, &re) {
		t.Fatalf("expected *ResolutionError, got %T", err)
	}
	if re.Points != 128*128*128 {
		t.Errorf("Points = %d, want %d", re.Points, 128*128*128)
	}
}

func TestSampleMatchesSerialEvaluation(t *testing.T) {
	s := NewSampler()
	state := quantum.MustValidate(3, 2, -1)

	grid, got, err := s.Sample(context.Background(), state, 24)
	if err != nil {
		t.Fatal(err)
	}

	want := orbital.NewEvaluator(state).Evaluate(grid)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("parallel sample diverges from serial at %d: %v != %v", i, got[i], want[i])
		}
	}
}

func TestSampleDeterministic(t *testing.T) {
	s := NewSampler()
	state := quantum.MustValidate(2, 1, 1)

	_, a, err := s.Sample(context.Background(), state, 20)
	if err != nil {
		t.Fatal(err)
	}
	_, b, err := s.Sample(context.Background(), state, 20)
	if err != nil {
		t.Fatal(err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("identical requests differ at point %d", i)
		}
	}
}

func TestSampleCanceled(t *testing.T) {
	s := NewSampler()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := s.Sample(ctx, quantum.MustValidate(5, 2, 0), 64)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestParallelForCoversRange(t *testing.T) {
	var covered [1000]int32
	err := parallelFor(context.Background(), len(covered), 7, 4, func(start, end int) {
		for i := start; i < end; i++ {
			atomic.AddInt32(&covered[i], 1)
		}
	})
	if err != nil {
		t.Fatal(err)
	}
	for i, c := range covered {
		if c != 1 {
			t.Fatalf("index %d visited %d times, want 1", i, c)
		}
	}
}

func BenchmarkSample(b *testing.B) {
	s := NewSampler()
	state := quantum.MustValidate(4, 2, 0)
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := s.Sample(ctx, state, 48); err != nil {
			b.Fatal(err)
		}
	}
}
