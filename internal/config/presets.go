package config

import "sort"

// Presets maps familiar orbital names to configurations. The n/l/m
// assignments for the real p and d orbitals follow the standard real
// spherical harmonic convention (m > 0 are the cos(m phi) combinations).
var Presets = map[string]*Config{
	"1s":     presetOrbital(1, 0, 0),
	"2s":     presetOrbital(2, 0, 0),
	"2pz":    presetOrbital(2, 1, 0),
	"2px":    presetOrbital(2, 1, 1),
	"2py":    presetOrbital(2, 1, -1),
	"3s":     presetOrbital(3, 0, 0),
	"3pz":    presetOrbital(3, 1, 0),
	"3dz2":   presetOrbital(3, 2, 0),
	"3dxz":   presetOrbital(3, 2, 1),
	"3dyz":   presetOrbital(3, 2, -1),
	"3dx2y2": presetOrbital(3, 2, 2),
	"3dxy":   presetOrbital(3, 2, -2),
	"4s":     presetOrbital(4, 0, 0),
	"4fz3":   presetOrbital(4, 3, 0),
}

func presetOrbital(n, l, m int) *Config {
	cfg := DefaultConfig()
	cfg.Orbital = OrbitalConfig{N: n, L: l, M: m}
	return cfg
}

func GetPreset(name string) *Config {
	return Presets[name]
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
