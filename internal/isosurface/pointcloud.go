package isosurface

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/TurbulentGoat/orbitals/internal/field"
)

// ExtractPoints emits every grid point whose density exceeds the
// isolevel, tagged with the amplitude sign. An isolevel above the peak
// density yields an empty cloud, not an error.
func ExtractPoints(amplitude, density field.Field, grid *field.Grid, isolevel float64) *PointCloud {
	pc := &PointCloud{}
	for idx, d := range density {
		if d <= isolevel {
			continue
		}
		x, y, z := grid.Coords(idx)
		pc.Points = append(pc.Points, r3.Vec{X: x, Y: y, Z: z})
		pc.Values = append(pc.Values, d)
		pc.Signs = append(pc.Signs, signOf(amplitude[idx]))
	}
	return pc
}

func signOf(v float64) int8 {
	if v < 0 {
		return -1
	}
	return 1
}
