package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/TurbulentGoat/orbitals/internal/engine"
	"github.com/TurbulentGoat/orbitals/internal/isosurface"
)

const (
	DefaultQuality     = 3
	DefaultIsoMode     = "max-fraction"
	DefaultIsoFraction = 0.01
	DefaultIsoMass     = 0.9
	DefaultDataDir     = ".orbitals"
)

type Config struct {
	Orbital        OrbitalConfig `yaml:"orbital"`
	Quality        int           `yaml:"quality"`
	Resolution     int           `yaml:"resolution"` // explicit K, overrides quality
	Iso            IsoConfig     `yaml:"isolevel"`
	Representation string        `yaml:"representation"` // points | mesh
	DataDir        string        `yaml:"data_dir"`
}

type OrbitalConfig struct {
	N int `yaml:"n"`
	L int `yaml:"l"`
	M int `yaml:"m"`
}

type IsoConfig struct {
	Mode     string  `yaml:"mode"` // max-fraction | probability-mass
	Fraction float64 `yaml:"fraction"`
	Mass     float64 `yaml:"mass"`
}

func DefaultConfig() *Config {
	return &Config{
		Orbital: OrbitalConfig{N: 1, L: 0, M: 0},
		Quality: DefaultQuality,
		Iso: IsoConfig{
			Mode:     DefaultIsoMode,
			Fraction: DefaultIsoFraction,
			Mass:     DefaultIsoMass,
		},
		Representation: "points",
		DataDir:        DefaultDataDir,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Request converts the config to an engine request. Unknown enum
// strings are rejected rather than defaulted.
func (c *Config) Request() (engine.Request, error) {
	req := engine.Request{
		N:       c.Orbital.N,
		L:       c.Orbital.L,
		M:       c.Orbital.M,
		Quality: c.Quality,
		K:       c.Resolution,
	}

	switch c.Iso.Mode {
	case "", DefaultIsoMode:
		req.Iso = isosurface.Policy{Mode: isosurface.MaxFraction, Fraction: c.Iso.Fraction, Mass: c.Iso.Mass}
	case "probability-mass":
		req.Iso = isosurface.Policy{Mode: isosurface.ProbabilityMass, Fraction: c.Iso.Fraction, Mass: c.Iso.Mass}
	default:
		return engine.Request{}, fmt.Errorf("unknown isolevel mode: %s", c.Iso.Mode)
	}

	switch c.Representation {
	case "", "points":
		req.Rep = engine.PointCloud
	case "mesh":
		req.Rep = engine.TriangleMesh
	default:
		return engine.Request{}, fmt.Errorf("unknown representation: %s", c.Representation)
	}

	return req, nil
}
