package isosurface

import "gonum.org/v1/gonum/spatial/r3"

// Mesh is a triangle surface with a per-vertex sign tag (+1/-1) carrying
// the local sign of the wavefunction for two-color lobe rendering.
type Mesh struct {
	Vertices []r3.Vec
	Faces    [][3]int
	Signs    []int8
}

func (m *Mesh) Empty() bool { return len(m.Faces) == 0 }

// PointCloud is the thresholded fallback representation: every grid
// point whose density exceeds the isolevel, tagged by amplitude sign.
type PointCloud struct {
	Points []r3.Vec
	Values []float64
	Signs  []int8
}

func (p *PointCloud) Empty() bool { return len(p.Points) == 0 }
