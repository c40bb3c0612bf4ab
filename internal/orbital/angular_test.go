package orbital

import (
	"math"
	"testing"
)

// sphereIntegral integrates f(theta, phi) |times| sin(theta) over the
// full sphere with a midpoint rule.
func sphereIntegral(f func(theta, phi float64) float64) float64 {
	const nt, np = 400, 400
	dt := math.Pi / nt
	dp := 2 * math.Pi / np
	sum := 0.0
	for i := 0; i < nt; i++ {
		theta := (float64(i) + 0.5) * dt
		st := math.Sin(theta)
		for j := 0; j < np; j++ {
			phi := (float64(j) + 0.5) * dp
			sum += f(theta, phi) * st
		}
	}
	return sum * dt * dp
}

func TestAngularConstantS(t *testing.T) {
	// Y_{0,0} = 1/sqrt(4 pi) everywhere.
	want := 1 / math.Sqrt(4*math.Pi)
	for _, theta := range []float64{0, 0.3, 1.5, math.Pi} {
		for _, phi := range []float64{0, 1, 4} {
			if got := AngularAt(0, 0, theta, phi); math.Abs(got-want) > 1e-14 {
				t.Errorf("Y_{0,0}(%v,%v) = %v, want %v", theta, phi, got, want)
			}
		}
	}
}

func TestAngularKnownForms(t *testing.T) {
	// Real harmonics for l = 1:
	//   Y_{1,0}  = sqrt(3/4pi) cos(theta)          (p_z)
	//   Y_{1,1}  = sqrt(3/4pi) sin(theta) cos(phi) (p_x)
	//   Y_{1,-1} = sqrt(3/4pi) sin(theta) sin(phi) (p_y)
	c := math.Sqrt(3 / (4 * math.Pi))
	angles := []struct{ theta, phi float64 }{
		{0.2, 0.7}, {1.1, 2.0}, {2.5, 5.0}, {math.Pi / 2, 0},
	}
	for _, a := range angles {
		if got, want := AngularAt(1, 0, a.theta, a.phi), c*math.Cos(a.theta); math.Abs(got-want) > 1e-13 {
			t.Errorf("Y_{1,0}(%v,%v) = %v, want %v", a.theta, a.phi, got, want)
		}
		if got, want := AngularAt(1, 1, a.theta, a.phi), c*math.Sin(a.theta)*math.Cos(a.phi); math.Abs(got-want) > 1e-13 {
			t.Errorf("Y_{1,1}(%v,%v) = %v, want %v", a.theta, a.phi, got, want)
		}
		if got, want := AngularAt(1, -1, a.theta, a.phi), c*math.Sin(a.theta)*math.Sin(a.phi); math.Abs(got-want) > 1e-13 {
			t.Errorf("Y_{1,-1}(%v,%v) = %v, want %v", a.theta, a.phi, got, want)
		}
	}
}

func TestAngularOrthonormality(t *testing.T) {
	cases := []struct{ l, m int }{
		{0, 0}, {1, 0}, {1, 1}, {1, -1}, {2, 0}, {2, 2}, {3, -2}, {4, 4}, {6, -3},
	}
	for _, c := range cases {
		got := sphereIntegral(func(theta, phi float64) float64 {
			y := AngularAt(c.l, c.m, theta, phi)
			return y * y
		})
		if math.Abs(got-1) > 1e-4 {
			t.Errorf("int |Y_{%d,%d}|^2 dOmega = %v, want 1", c.l, c.m, got)
		}
	}
}

func TestAngularOrthogonality(t *testing.T) {
	pairs := []struct{ l1, m1, l2, m2 int }{
		{0, 0, 1, 0},
		{1, 0, 1, 1},
		{1, 1, 1, -1},
		{2, 1, 3, 1},
		{2, 2, 2, -2},
	}
	for _, p := range pairs {
		got := sphereIntegral(func(theta, phi float64) float64 {
			return AngularAt(p.l1, p.m1, theta, phi) * AngularAt(p.l2, p.m2, theta, phi)
		})
		if math.Abs(got) > 1e-4 {
			t.Errorf("<Y_{%d,%d}|Y_{%d,%d}> = %v, want 0", p.l1, p.m1, p.l2, p.m2, got)
		}
	}
}

func TestAngularSignStructure(t *testing.T) {
	// p_z is positive in the upper half space, negative below.
	if v := AngularAt(1, 0, 0.3, 1.0); v <= 0 {
		t.Errorf("Y_{1,0} upper hemisphere = %v, want > 0", v)
	}
	if v := AngularAt(1, 0, math.Pi-0.3, 1.0); v >= 0 {
		t.Errorf("Y_{1,0} lower hemisphere = %v, want < 0", v)
	}
}

func TestLegendreStableForHighL(t *testing.T) {
	for l := 0; l <= 25; l++ {
		for m := 0; m <= l; m++ {
			for _, x := range []float64{-1, -0.5, 0, 0.5, 1} {
				v := legendre(l, m, x)
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("P_%d^%d(%v) = %v", l, m, x, v)
				}
			}
		}
	}
}
