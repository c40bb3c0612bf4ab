package isosurface

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/TurbulentGoat/orbitals/internal/field"
)

// Each grid cell is split into six tetrahedra sharing the main diagonal
// between corner 0 (0,0,0) and corner 7 (1,1,1). Corner numbering packs
// the axis offsets as x<<2 | y<<1 | z.
var cellTetrahedra = [6][4]int{
	{0, 5, 1, 7},
	{0, 1, 3, 7},
	{0, 3, 2, 7},
	{0, 2, 6, 7},
	{0, 6, 4, 7},
	{0, 4, 5, 7},
}

type edgeKey struct{ a, b int }

func makeEdgeKey(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// extractor accumulates the mesh while walking cells, deduplicating
// crossing vertices on shared edges.
type extractor struct {
	amplitude field.Field
	density   field.Field
	grid      *field.Grid
	isolevel  float64

	mesh  *Mesh
	edges map[edgeKey]int
}

// ExtractMesh extracts the isolevel surface of the density field as a
// triangle mesh via marching tetrahedra, a marching-cubes-style
// per-cell algorithm without the 256-case table. Per-vertex signs are
// interpolated from the signed amplitude so each lobe carries its
// wavefunction sign. An isolevel above the peak density yields an empty
// mesh.
func ExtractMesh(amplitude, density field.Field, grid *field.Grid, isolevel float64) *Mesh {
	ex := &extractor{
		amplitude: amplitude,
		density:   density,
		grid:      grid,
		isolevel:  isolevel,
		mesh:      &Mesh{},
		edges:     make(map[edgeKey]int),
	}

	k := grid.K
	var corners [8]int
	for i := 0; i < k-1; i++ {
		for j := 0; j < k-1; j++ {
			for l := 0; l < k-1; l++ {
				for c := 0; c < 8; c++ {
					corners[c] = grid.Index(i+(c>>2)&1, j+(c>>1)&1, l+c&1)
				}
				for _, tet := range cellTetrahedra {
					ex.marchTet(corners[tet[0]], corners[tet[1]], corners[tet[2]], corners[tet[3]])
				}
			}
		}
	}
	return ex.mesh
}

// marchTet emits 0, 1 or 2 triangles for one tetrahedron depending on
// how many of its corners lie inside the surface.
func (ex *extractor) marchTet(a, b, c, d int) {
	in := func(p int) bool { return ex.density[p] > ex.isolevel }

	var inside, outside [4]int
	ni, no := 0, 0
	for _, p := range [4]int{a, b, c, d} {
		if in(p) {
			inside[ni] = p
			ni++
		} else {
			outside[no] = p
			no++
		}
	}

	switch ni {
	case 1:
		// One corner inside: single triangle across the three edges
		// leaving it.
		v0 := ex.crossing(inside[0], outside[0])
		v1 := ex.crossing(inside[0], outside[1])
		v2 := ex.crossing(inside[0], outside[2])
		ex.mesh.Faces = append(ex.mesh.Faces, [3]int{v0, v1, v2})
	case 2:
		// Two inside: the surface cuts a quad, split into two triangles.
		v0 := ex.crossing(inside[0], outside[0])
		v1 := ex.crossing(inside[0], outside[1])
		v2 := ex.crossing(inside[1], outside[1])
		v3 := ex.crossing(inside[1], outside[0])
		ex.mesh.Faces = append(ex.mesh.Faces, [3]int{v0, v1, v2}, [3]int{v0, v2, v3})
	case 3:
		v0 := ex.crossing(inside[0], outside[0])
		v1 := ex.crossing(inside[1], outside[0])
		v2 := ex.crossing(inside[2], outside[0])
		ex.mesh.Faces = append(ex.mesh.Faces, [3]int{v0, v1, v2})
	}
}

// crossing returns the mesh vertex where the surface crosses the edge
// between two grid points, creating and sign-tagging it on first use.
func (ex *extractor) crossing(p1, p2 int) int {
	key := makeEdgeKey(p1, p2)
	if v, ok := ex.edges[key]; ok {
		return v
	}

	d1, d2 := ex.density[p1], ex.density[p2]
	t := 0.5
	if d1 != d2 {
		t = (ex.isolevel - d1) / (d2 - d1)
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
	}

	x1, y1, z1 := ex.grid.Coords(p1)
	x2, y2, z2 := ex.grid.Coords(p2)
	pos := r3.Vec{
		X: x1 + t*(x2-x1),
		Y: y1 + t*(y2-y1),
		Z: z1 + t*(z2-z1),
	}

	// The vertex belongs to the lobe of its inside endpoint (p1 in
	// every call site), whose amplitude sign is unambiguous; the
	// interpolated amplitude could sit arbitrarily close to zero next
	// to a nodal plane.
	idx := len(ex.mesh.Vertices)
	ex.mesh.Vertices = append(ex.mesh.Vertices, pos)
	ex.mesh.Signs = append(ex.mesh.Signs, signOf(ex.amplitude[p1]))
	ex.edges[key] = idx
	return idx
}
