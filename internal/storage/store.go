package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/TurbulentGoat/orbitals/internal/engine"
	"github.com/TurbulentGoat/orbitals/internal/isosurface"
)

// Store persists computed orbital runs under a data directory, one
// subdirectory per run: metadata.json plus the geometry as CSV.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID             string    `json:"id"`
	Label          string    `json:"label"`
	N              int       `json:"n"`
	L              int       `json:"l"`
	M              int       `json:"m"`
	K              int       `json:"resolution"`
	Extent         float64   `json:"extent"`
	Isolevel       float64   `json:"isolevel"`
	Representation string    `json:"representation"`
	Timestamp      time.Time `json:"timestamp"`
	PeakDensity    float64   `json:"peak_density"`
	SampledMass    float64   `json:"sampled_mass"`
	SurfacePoints  int       `json:"surface_points"`
	ElapsedMS      float64   `json:"elapsed_ms"`
}

// Save writes a result to a new run directory and returns the run ID.
func (s *Store) Save(res *engine.Result) (string, error) {
	rep := "points"
	if res.Rep == engine.TriangleMesh {
		rep = "mesh"
	}
	runID := fmt.Sprintf("%d%s_m%d_%d", res.State.N, shortSubshell(res), res.State.M, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:             runID,
		Label:          res.Label,
		N:              res.State.N,
		L:              res.State.L,
		M:              res.State.M,
		K:              res.K,
		Extent:         res.Extent,
		Isolevel:       res.Isolevel,
		Representation: rep,
		Timestamp:      time.Now(),
		PeakDensity:    res.Stats.PeakDensity,
		SampledMass:    res.Stats.SampledMass,
		SurfacePoints:  res.Stats.SurfacePoints,
		ElapsedMS:      float64(res.Elapsed.Microseconds()) / 1000,
	}

	if err := writeJSON(filepath.Join(runDir, "metadata.json"), meta); err != nil {
		return "", err
	}

	switch res.Rep {
	case engine.TriangleMesh:
		if err := writeMesh(runDir, res.Mesh); err != nil {
			return "", err
		}
	default:
		if err := writePoints(filepath.Join(runDir, "points.csv"), res.Cloud); err != nil {
			return "", err
		}
	}
	return runID, nil
}

func shortSubshell(res *engine.Result) string {
	// "3d, m=-2" -> "d"; fall back to the l value if the label format
	// ever changes.
	lbl := res.State.ShortLabel()
	if len(lbl) > 1 {
		return lbl[1:]
	}
	return strconv.Itoa(res.State.L)
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writePoints(path string, pc *isosurface.PointCloud) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"x", "y", "z", "density", "sign"}); err != nil {
		return err
	}
	for i, p := range pc.Points {
		row := []string{
			formatFloat(p.X), formatFloat(p.Y), formatFloat(p.Z),
			strconv.FormatFloat(pc.Values[i], 'e', 9, 64),
			strconv.Itoa(int(pc.Signs[i])),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

func writeMesh(runDir string, m *isosurface.Mesh) error {
	f, err := os.Create(filepath.Join(runDir, "vertices.csv"))
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"x", "y", "z", "sign"}); err != nil {
		return err
	}
	for i, v := range m.Vertices {
		row := []string{formatFloat(v.X), formatFloat(v.Y), formatFloat(v.Z), strconv.Itoa(int(m.Signs[i]))}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	ff, err := os.Create(filepath.Join(runDir, "faces.csv"))
	if err != nil {
		return err
	}
	defer ff.Close()

	fw := csv.NewWriter(ff)
	defer fw.Flush()
	if err := fw.Write([]string{"v0", "v1", "v2"}); err != nil {
		return err
	}
	for _, face := range m.Faces {
		row := []string{strconv.Itoa(face[0]), strconv.Itoa(face[1]), strconv.Itoa(face[2])}
		if err := fw.Write(row); err != nil {
			return err
		}
	}
	return fw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// List returns metadata for every stored run, skipping unreadable
// entries.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadPoints reads a stored point cloud back.
func (s *Store) LoadPoints(runID string) (*isosurface.PointCloud, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "points.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	pc := &isosurface.PointCloud{}
	for i, rec := range records {
		if i == 0 || len(rec) < 5 {
			continue
		}
		x, err1 := strconv.ParseFloat(rec[0], 64)
		y, err2 := strconv.ParseFloat(rec[1], 64)
		z, err3 := strconv.ParseFloat(rec[2], 64)
		d, err4 := strconv.ParseFloat(rec[3], 64)
		sg, err5 := strconv.Atoi(rec[4])
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil || err5 != nil {
			continue
		}
		pc.Points = append(pc.Points, r3.Vec{X: x, Y: y, Z: z})
		pc.Values = append(pc.Values, d)
		pc.Signs = append(pc.Signs, int8(sg))
	}
	return pc, nil
}
