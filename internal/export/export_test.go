package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/TurbulentGoat/orbitals/internal/engine"
	"github.com/TurbulentGoat/orbitals/internal/viz"
)

func computeResult(t *testing.T, req engine.Request) *engine.Result {
	t.Helper()
	res, err := engine.New().Compute(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func TestWriteJSONPoints(t *testing.T) {
	res := computeResult(t, engine.Request{N: 2, L: 1, M: 0, Quality: 1})

	var buf bytes.Buffer
	if err := WriteJSON(&buf, res); err != nil {
		t.Fatal(err)
	}

	var p Payload
	if err := json.Unmarshal(buf.Bytes(), &p); err != nil {
		t.Fatal(err)
	}
	if p.Representation != "points" {
		t.Errorf("representation = %q", p.Representation)
	}
	if len(p.Points) != len(res.Cloud.Points) {
		t.Errorf("exported %d points, want %d", len(p.Points), len(res.Cloud.Points))
	}
	if p.Mesh != nil {
		t.Error("mesh should be omitted for point clouds")
	}
	if p.N != 2 || p.L != 1 || p.M != 0 {
		t.Errorf("quantum numbers = (%d,%d,%d)", p.N, p.L, p.M)
	}
}

func TestWriteJSONMesh(t *testing.T) {
	res := computeResult(t, engine.Request{N: 1, L: 0, M: 0, Quality: 1, Rep: engine.TriangleMesh})

	var buf bytes.Buffer
	if err := WriteJSON(&buf, res); err != nil {
		t.Fatal(err)
	}

	var p Payload
	if err := json.Unmarshal(buf.Bytes(), &p); err != nil {
		t.Fatal(err)
	}
	if p.Representation != "mesh" || p.Mesh == nil {
		t.Fatal("expected mesh payload")
	}
	if len(p.Mesh.Vertices) != len(res.Mesh.Vertices) {
		t.Errorf("exported %d vertices, want %d", len(p.Mesh.Vertices), len(res.Mesh.Vertices))
	}
	if len(p.Points) != 0 {
		t.Error("points should be omitted for meshes")
	}
}

func TestWritePLYMesh(t *testing.T) {
	res := computeResult(t, engine.Request{N: 1, L: 0, M: 0, Quality: 1, Rep: engine.TriangleMesh})

	var buf bytes.Buffer
	if err := WritePLY(&buf, res); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "ply\nformat ascii 1.0\n") {
		t.Error("missing PLY header")
	}
	if !strings.Contains(out, fmt.Sprintf("element vertex %d", len(res.Mesh.Vertices))) {
		t.Error("vertex count missing from header")
	}
	if !strings.Contains(out, fmt.Sprintf("element face %d", len(res.Mesh.Faces))) {
		t.Error("face count missing from header")
	}

	// Body length: header lines + one line per vertex + one per face.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	var bodyStart int
	for i, l := range lines {
		if l == "end_header" {
			bodyStart = i + 1
			break
		}
	}
	body := lines[bodyStart:]
	if len(body) != len(res.Mesh.Vertices)+len(res.Mesh.Faces) {
		t.Errorf("body lines = %d, want %d", len(body), len(res.Mesh.Vertices)+len(res.Mesh.Faces))
	}
}

func TestWritePLYPointCloud(t *testing.T) {
	res := computeResult(t, engine.Request{N: 2, L: 1, M: 0, Quality: 1})

	var buf bytes.Buffer
	if err := WritePLY(&buf, res); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if strings.Contains(out, "element face") {
		t.Error("point cloud export should not declare faces")
	}
	if !strings.Contains(out, "property uchar red") {
		t.Error("missing color properties")
	}
}

func TestCanvasToSVG(t *testing.T) {
	c := viz.NewCanvas(4, 4)
	c.SetSigned(0, 0, 1)
	c.SetSigned(4, 8, -1)

	svg := CanvasToSVG(c, 4, "", "")
	if !strings.Contains(svg, "<svg") || !strings.Contains(svg, "</svg>") {
		t.Fatal("not an SVG document")
	}
	if !strings.Contains(svg, "#ff5f5f") {
		t.Error("positive lobe color missing")
	}
	if !strings.Contains(svg, "#5f87ff") {
		t.Error("negative lobe color missing")
	}
	if CanvasToSVG(nil, 4, "", "") != "" {
		t.Error("nil canvas should produce empty output")
	}
}

func TestRadialToSVG(t *testing.T) {
	rs := []float64{0.5, 1, 1.5, 2}
	ps := []float64{0.1, 0.5, 0.3, 0.05}
	svg := RadialToSVG(rs, ps, 400, 200, "#00ff00")
	if !strings.Contains(svg, "<path") {
		t.Error("missing path element")
	}
	if RadialToSVG(rs[:1], ps[:1], 400, 200, "#00ff00") != "" {
		t.Error("single point should produce empty output")
	}
}
