package viz

import (
	"sort"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/TurbulentGoat/orbitals/internal/isosurface"
)

type projectedDot struct {
	x, y  int
	depth float64
	sign  int8
}

// RenderCloud draws an isosurface point cloud to the canvas. World
// coordinates are normalized by extent so every orbital fills the same
// screen area regardless of n. Far points draw first so near ones win
// the sign tag where lobes overlap on screen.
func RenderCloud(c *Canvas, cloud *isosurface.PointCloud, cam *Camera, extent float64) {
	if c == nil || cloud == nil || cam == nil || extent <= 0 {
		return
	}
	cw, ch := c.Width*2, c.Height*4
	inv := 1 / extent

	dots := make([]projectedDot, 0, len(cloud.Points))
	for i, p := range cloud.Points {
		x, y, d, vis := cam.Project(r3.Scale(inv, p), cw, ch)
		if !vis {
			continue
		}
		dots = append(dots, projectedDot{x, y, d, cloud.Signs[i]})
	}
	sort.Slice(dots, func(i, j int) bool { return dots[i].depth < dots[j].depth })
	for _, d := range dots {
		c.SetSigned(d.x, d.y, d.sign)
	}
}

// RenderMesh draws a triangle mesh as a wireframe, one edge per
// triangle side.
func RenderMesh(c *Canvas, m *isosurface.Mesh, cam *Camera, extent float64) {
	if c == nil || m == nil || cam == nil || extent <= 0 {
		return
	}
	cw, ch := c.Width*2, c.Height*4
	inv := 1 / extent

	type vertex2 struct {
		x, y int
		ok   bool
	}
	proj := make([]vertex2, len(m.Vertices))
	for i, v := range m.Vertices {
		x, y, _, vis := cam.Project(r3.Scale(inv, v), cw, ch)
		proj[i] = vertex2{x, y, vis}
	}
	for _, f := range m.Faces {
		for e := 0; e < 3; e++ {
			a, b := proj[f[e]], proj[f[(e+1)%3]]
			if a.ok || b.ok {
				c.DrawLine(a.x, a.y, b.x, b.y)
			}
		}
	}
}

// RenderAxes draws the coordinate axes scaled to half the view.
func RenderAxes(c *Canvas, cam *Camera) {
	cw, ch := c.Width*2, c.Height*4
	o := r3.Vec{}
	for _, axis := range []r3.Vec{{X: 0.5}, {Y: 0.5}, {Z: 0.5}} {
		x0, y0, _, v0 := cam.Project(o, cw, ch)
		x1, y1, _, v1 := cam.Project(axis, cw, ch)
		if v0 || v1 {
			c.DrawLine(x0, y0, x1, y1)
		}
	}
}
