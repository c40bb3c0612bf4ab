package quantum

import "sort"

// Sequence enumerates all orbitals with principal quantum number up to
// maxN in Aufbau filling order: increasing n+l, ties broken by lower n
// (Madelung rule), then by m.
func Sequence(maxN int) []State {
	var seq []State
	for n := 1; n <= maxN; n++ {
		for l := 0; l < n; l++ {
			for m := -l; m <= l; m++ {
				seq = append(seq, State{N: n, L: l, M: m})
			}
		}
	}
	sort.SliceStable(seq, func(i, j int) bool {
		a, b := seq[i], seq[j]
		if a.N+a.L != b.N+b.L {
			return a.N+a.L < b.N+b.L
		}
		if a.N != b.N {
			return a.N < b.N
		}
		return a.M < b.M
	})
	return seq
}

// Configurations maps the first ten elements to their ground-state
// electron configurations, for the table command.
var Configurations = []struct {
	Element string
	Config  string
}{
	{"Hydrogen", "1s1"},
	{"Helium", "1s2"},
	{"Lithium", "1s2 2s1"},
	{"Beryllium", "1s2 2s2"},
	{"Boron", "1s2 2s2 2p1"},
	{"Carbon", "1s2 2s2 2p2"},
	{"Nitrogen", "1s2 2s2 2p3"},
	{"Oxygen", "1s2 2s2 2p4"},
	{"Fluorine", "1s2 2s2 2p5"},
	{"Neon", "1s2 2s2 2p6"},
}
