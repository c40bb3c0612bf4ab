package orbital

import "math"

// Angular evaluates the real spherical harmonic Y_{l,m} at each
// (theta[i], phi[i]) pair. The real linear combination is deliberate:
// it yields a sign-bearing field whose positive and negative lobes match
// the textbook p_x/p_y/p_z style orbital pictures, which is what the
// two-color isosurface rendering needs. Complex eigenfunctions would
// lose that sign structure.
//
//	m = 0:  N P_l^0(cos theta)
//	m > 0:  sqrt2 N P_l^m(cos theta) cos(m phi)
//	m < 0:  sqrt2 N P_l^|m|(cos theta) sin(|m| phi)
func Angular(l, m int, theta, phi []float64) []float64 {
	norm := angularNorm(l, m)
	out := make([]float64, len(theta))
	for i := range theta {
		out[i] = angularAt(l, m, norm, math.Cos(theta[i]), phi[i])
	}
	return out
}

// AngularAt evaluates the real Y_{l,m} at a single direction.
func AngularAt(l, m int, theta, phi float64) float64 {
	return angularAt(l, m, angularNorm(l, m), math.Cos(theta), phi)
}

// angularNorm computes sqrt((2l+1)/(4 pi) (l-|m|)!/(l+|m|)!) in log
// space, same stability rationale as radialNorm.
func angularNorm(l, m int) float64 {
	if m < 0 {
		m = -m
	}
	lgNum, _ := math.Lgamma(float64(l - m + 1))
	lgDen, _ := math.Lgamma(float64(l + m + 1))
	return math.Exp(0.5 * (math.Log(float64(2*l+1)/(4*math.Pi)) + lgNum - lgDen))
}

func angularAt(l, m int, norm, cosTheta, phi float64) float64 {
	am := m
	if am < 0 {
		am = -am
	}
	p := legendre(l, am, cosTheta)
	switch {
	case m == 0:
		return norm * p
	case m > 0:
		return math.Sqrt2 * norm * p * math.Cos(float64(m)*phi)
	default:
		return math.Sqrt2 * norm * p * math.Sin(float64(am)*phi)
	}
}

// legendre evaluates the associated Legendre polynomial P_l^m(x) for
// m >= 0 by upward recurrence in l, without the Condon-Shortley phase
// (the phase cancels in the real-harmonic combination anyway):
//
//	P_m^m     = (2m-1)!! (1-x^2)^{m/2}
//	P_{m+1}^m = x (2m+1) P_m^m
//	(l-m) P_l^m = x (2l-1) P_{l-1}^m - (l+m-1) P_{l-2}^m
func legendre(l, m int, x float64) float64 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	pmm := 1.0
	if m > 0 {
		s := math.Sqrt((1 - x) * (1 + x))
		fact := 1.0
		for i := 0; i < m; i++ {
			pmm *= fact * s
			fact += 2
		}
	}
	if l == m {
		return pmm
	}

	pmm1 := x * float64(2*m+1) * pmm
	if l == m+1 {
		return pmm1
	}

	var pl float64
	for ll := m + 2; ll <= l; ll++ {
		pl = (x*float64(2*ll-1)*pmm1 - float64(ll+m-1)*pmm) / float64(ll-m)
		pmm, pmm1 = pmm1, pl
	}
	return pl
}
