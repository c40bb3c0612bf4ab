package orbital

import "math"

// Radial evaluates the normalized hydrogen radial function R_{n,l} at
// each r (in units of the Bohr radius, a0 = 1). The quantum numbers must
// already be validated. Negative r is treated as 0.
func Radial(n, l int, r []float64) []float64 {
	norm := radialNorm(n, l)
	out := make([]float64, len(r))
	for i, ri := range r {
		out[i] = radialAt(n, l, norm, ri)
	}
	return out
}

// RadialAt evaluates R_{n,l} at a single radius.
func RadialAt(n, l int, r float64) float64 {
	return radialAt(n, l, radialNorm(n, l), r)
}

// radialNorm computes sqrt((2/n)^3 (n-l-1)! / (2n (n+l)!)) through
// log-gamma. The factorial ratio overflows float64 well before n=15 if
// computed directly; in log space it is stable for any n the caller can
// reasonably ask for.
func radialNorm(n, l int) float64 {
	fn := float64(n)
	lgNum, _ := math.Lgamma(float64(n - l))     // (n-l-1)!
	lgDen, _ := math.Lgamma(float64(n + l + 1)) // (n+l)!
	return math.Exp(0.5 * (3*math.Log(2/fn) - math.Log(2*fn) + lgNum - lgDen))
}

func radialAt(n, l int, norm, r float64) float64 {
	if r < 0 {
		r = 0
	}
	rho := 2 * r / float64(n)
	// rho^l factor: R(0) = 0 whenever l > 0.
	if rho == 0 && l > 0 {
		return 0
	}
	lag := laguerre(n-l-1, float64(2*l+1), rho)
	return norm * math.Exp(-rho/2) * math.Pow(rho, float64(l)) * lag
}

// laguerre evaluates the generalized Laguerre polynomial L_k^alpha(x)
// by the three-term recurrence
//
//	(i+1) L_{i+1} = (2i+1+alpha-x) L_i - (i+alpha) L_{i-1}
//
// which stays accurate where the closed-form factorial sum loses
// precision for degrees beyond ~15.
func laguerre(k int, alpha, x float64) float64 {
	if k <= 0 {
		return 1
	}
	prev := 1.0
	cur := 1 + alpha - x
	for i := 1; i < k; i++ {
		fi := float64(i)
		next := ((2*fi+1+alpha-x)*cur - (fi+alpha)*prev) / (fi + 1)
		prev, cur = cur, next
	}
	return cur
}
