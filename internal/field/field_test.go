package field

import (
	"math"
	"testing"
)

func TestGridAxis(t *testing.T) {
	g := NewGrid(5, 10.0)

	axis := g.Axis()
	if len(axis) != 5 {
		t.Fatalf("axis length = %d, want 5", len(axis))
	}
	if axis[0] != -10.0 || axis[4] != 10.0 {
		t.Errorf("axis endpoints = %v, %v, want -10, 10", axis[0], axis[4])
	}
	if math.Abs(axis[2]) > 1e-12 {
		t.Errorf("axis midpoint = %v, want 0", axis[2])
	}
	if g.Len() != 125 {
		t.Errorf("Len() = %d, want 125", g.Len())
	}
	if math.Abs(g.Step()-5.0) > 1e-12 {
		t.Errorf("Step() = %v, want 5", g.Step())
	}
}

func TestGridIndexRoundTrip(t *testing.T) {
	g := NewGrid(7, 3.0)

	for i := 0; i < g.K; i++ {
		for j := 0; j < g.K; j++ {
			for k := 0; k < g.K; k++ {
				idx := g.Index(i, j, k)
				x, y, z := g.Coords(idx)
				xi, yj, zk := g.At(i, j, k)
				if x != xi || y != yj || z != zk {
					t.Fatalf("Coords(%d) = (%v,%v,%v), At = (%v,%v,%v)", idx, x, y, z, xi, yj, zk)
				}
			}
		}
	}
}

func TestGridCellVolume(t *testing.T) {
	g := NewGrid(11, 5.0)
	// step = 1, cell volume = 1
	if math.Abs(g.CellVolume()-1.0) > 1e-12 {
		t.Errorf("CellVolume() = %v, want 1", g.CellVolume())
	}
}

func TestFieldIsValid(t *testing.T) {
	tests := []struct {
		name  string
		f     Field
		valid bool
	}{
		{"empty", Field{}, true},
		{"normal", Field{1, -2, 0.5}, true},
		{"nan", Field{1, math.NaN()}, false},
		{"inf", Field{math.Inf(1)}, false},
		{"neg inf", Field{math.Inf(-1)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestFieldSquare(t *testing.T) {
	f := Field{2, -3, 0}
	d := f.Square()
	want := Field{4, 9, 0}
	for i := range want {
		if d[i] != want[i] {
			t.Errorf("Square()[%d] = %v, want %v", i, d[i], want[i])
		}
	}
	// Original amplitude untouched.
	if f[1] != -3 {
		t.Error("Square mutated the source field")
	}
}

func TestFieldMaxAbs(t *testing.T) {
	f := Field{0.1, -7.5, 3}
	if got := f.MaxAbs(); got != 7.5 {
		t.Errorf("MaxAbs() = %v, want 7.5", got)
	}
	if got := (Field{}).MaxAbs(); got != 0 {
		t.Errorf("MaxAbs() of empty = %v, want 0", got)
	}
}

func TestFieldDot(t *testing.T) {
	a := Field{1, 2, 3}
	b := Field{4, 5, 6}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot = %v, want 32", got)
	}
}
