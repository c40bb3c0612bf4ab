package export

import (
	"encoding/json"
	"io"

	"github.com/TurbulentGoat/orbitals/internal/engine"
)

// Payload is the JSON export schema. Exactly one of Points or Mesh is
// populated depending on the result representation.
type Payload struct {
	Label          string       `json:"label"`
	N              int          `json:"n"`
	L              int          `json:"l"`
	M              int          `json:"m"`
	Resolution     int          `json:"resolution"`
	Extent         float64      `json:"extent"`
	Isolevel       float64      `json:"isolevel"`
	Representation string       `json:"representation"`
	PeakDensity    float64      `json:"peak_density"`
	SampledMass    float64      `json:"sampled_mass"`
	Points         []PointJSON  `json:"points,omitempty"`
	Mesh           *MeshJSON    `json:"mesh,omitempty"`
}

type PointJSON struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Z       float64 `json:"z"`
	Density float64 `json:"density"`
	Sign    int8    `json:"sign"`
}

type MeshJSON struct {
	Vertices [][3]float64 `json:"vertices"`
	Faces    [][3]int     `json:"faces"`
	Signs    []int8       `json:"signs"`
}

// WriteJSON serializes a result to w.
func WriteJSON(w io.Writer, res *engine.Result) error {
	p := Payload{
		Label:       res.Label,
		N:           res.State.N,
		L:           res.State.L,
		M:           res.State.M,
		Resolution:  res.K,
		Extent:      res.Extent,
		Isolevel:    res.Isolevel,
		PeakDensity: res.Stats.PeakDensity,
		SampledMass: res.Stats.SampledMass,
	}

	switch res.Rep {
	case engine.TriangleMesh:
		p.Representation = "mesh"
		m := &MeshJSON{
			Vertices: make([][3]float64, len(res.Mesh.Vertices)),
			Faces:    res.Mesh.Faces,
			Signs:    res.Mesh.Signs,
		}
		for i, v := range res.Mesh.Vertices {
			m.Vertices[i] = [3]float64{v.X, v.Y, v.Z}
		}
		p.Mesh = m
	default:
		p.Representation = "points"
		p.Points = make([]PointJSON, len(res.Cloud.Points))
		for i, pt := range res.Cloud.Points {
			p.Points[i] = PointJSON{
				X: pt.X, Y: pt.Y, Z: pt.Z,
				Density: res.Cloud.Values[i],
				Sign:    res.Cloud.Signs[i],
			}
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}
