// Package analysis provides diagnostic quantities for computed orbitals.
//
// The package operates on sampled fields and on the analytic radial part:
//
//   - [Normalization]: discretized probability mass of a density field
//   - [Overlap]: inner product of two amplitude fields on a shared grid
//   - [RadialDistribution]: the shell probability density r^2 R^2
//   - [RadialPeak]: most probable radius of a shell
//
// # Orthogonality Checks
//
// Distinct eigenstates sampled on the same grid should have a small
// overlap:
//
//	s, _ := analysis.Overlap(psi2s, psi2p, grid)
//	if math.Abs(s) > 0.05 {
//	    // Grid too coarse for these states
//	}
package analysis
