package export

import (
	"bufio"
	"fmt"
	"io"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/TurbulentGoat/orbitals/internal/engine"
)

// Phase colors baked into PLY vertex colors so viewers show the lobes
// without extra material setup.
var (
	plyPositive = [3]uint8{255, 95, 95}
	plyNegative = [3]uint8{95, 135, 255}
	plyNeutral  = [3]uint8{204, 204, 204}
)

func signColor(sign int8) [3]uint8 {
	switch {
	case sign > 0:
		return plyPositive
	case sign < 0:
		return plyNegative
	}
	return plyNeutral
}

// WritePLY serializes a result to ASCII PLY. Meshes carry faces; point
// clouds export as a colored vertex list, which most viewers render
// directly.
func WritePLY(w io.Writer, res *engine.Result) error {
	bw := bufio.NewWriter(w)

	var verts []r3.Vec
	var signs []int8
	var faces [][3]int
	if res.Rep == engine.TriangleMesh {
		verts, signs, faces = res.Mesh.Vertices, res.Mesh.Signs, res.Mesh.Faces
	} else {
		verts, signs = res.Cloud.Points, res.Cloud.Signs
	}

	fmt.Fprintln(bw, "ply")
	fmt.Fprintln(bw, "format ascii 1.0")
	fmt.Fprintf(bw, "comment %s isosurface at %.3e\n", res.Label, res.Isolevel)
	fmt.Fprintf(bw, "element vertex %d\n", len(verts))
	fmt.Fprintln(bw, "property float x")
	fmt.Fprintln(bw, "property float y")
	fmt.Fprintln(bw, "property float z")
	fmt.Fprintln(bw, "property uchar red")
	fmt.Fprintln(bw, "property uchar green")
	fmt.Fprintln(bw, "property uchar blue")
	if faces != nil {
		fmt.Fprintf(bw, "element face %d\n", len(faces))
		fmt.Fprintln(bw, "property list uchar int vertex_indices")
	}
	fmt.Fprintln(bw, "end_header")

	for i, v := range verts {
		c := signColor(signs[i])
		fmt.Fprintf(bw, "%g %g %g %d %d %d\n", v.X, v.Y, v.Z, c[0], c[1], c[2])
	}
	for _, f := range faces {
		fmt.Fprintf(bw, "3 %d %d %d\n", f[0], f[1], f[2])
	}
	return bw.Flush()
}
