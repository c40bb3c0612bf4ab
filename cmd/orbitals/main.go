package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/TurbulentGoat/orbitals/internal/analysis"
	"github.com/TurbulentGoat/orbitals/internal/config"
	"github.com/TurbulentGoat/orbitals/internal/engine"
	"github.com/TurbulentGoat/orbitals/internal/export"
	"github.com/TurbulentGoat/orbitals/internal/quantum"
	"github.com/TurbulentGoat/orbitals/internal/storage"
	"github.com/TurbulentGoat/orbitals/internal/tui"
	"github.com/TurbulentGoat/orbitals/internal/viz"
)

var (
	dataDir     string
	configFile  string
	preset      string
	nFlag       int
	lFlag       int
	mFlag       int
	quality     int
	resolution  int
	isoMode     string
	isoFraction float64
	isoMass     float64
	rep         string
	// export-svg knobs
	svgScale float64
	rotX     float64
	rotY     float64
	// table
	maxN int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "orbitals",
		Short: "hydrogen orbital isosurface lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the interactive viewer when no command given.
			return runLive(cmd, args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")

	computeCmd := &cobra.Command{
		Use:   "compute",
		Short: "compute an orbital isosurface and save the run",
		RunE:  runCompute,
	}
	addOrbitalFlags(computeCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive orbital viewer",
		RunE:  runLive,
	}
	addOrbitalFlags(liveCmd)
	addOrbitalFlags(rootCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot the radial distribution of a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "normalization and orthogonality of the requested orbital",
		RunE:  analyzeOrbital,
	}
	addOrbitalFlags(analyzeCmd)

	exportJSONCmd := &cobra.Command{
		Use:   "export-json",
		Short: "compute an orbital and write JSON to stdout",
		RunE:  exportJSON,
	}
	addOrbitalFlags(exportJSONCmd)

	exportPLYCmd := &cobra.Command{
		Use:   "export-ply",
		Short: "compute an orbital and write an ASCII PLY to stdout",
		RunE:  exportPLY,
	}
	addOrbitalFlags(exportPLYCmd)

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg",
		Short: "compute an orbital and write a projected SVG to stdout",
		RunE:  exportSVG,
	}
	addOrbitalFlags(exportSVGCmd)
	exportSVGCmd.Flags().Float64Var(&svgScale, "scale", 4, "pixels per braille sub-pixel")
	exportSVGCmd.Flags().Float64Var(&rotX, "rot-x", 0.4, "x rotation (radians)")
	exportSVGCmd.Flags().Float64Var(&rotY, "rot-y", 0.6, "y rotation (radians)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list named orbital presets",
		RunE:  listPresetsCmd,
	}

	tableCmd := &cobra.Command{
		Use:   "table",
		Short: "print orbitals in energy-ordered (aufbau) sequence",
		RunE:  printTable,
	}
	tableCmd.Flags().IntVar(&maxN, "max-n", 4, "highest shell to include")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark sampling across quality levels",
		RunE:  benchQualities,
	}
	addOrbitalFlags(benchCmd)

	rootCmd.AddCommand(computeCmd, liveCmd, listCmd, plotCmd, analyzeCmd,
		exportJSONCmd, exportPLYCmd, exportSVGCmd, presetsCmd, tableCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addOrbitalFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&nFlag, "n", 1, "principal quantum number")
	cmd.Flags().IntVar(&lFlag, "l", 0, "azimuthal quantum number")
	cmd.Flags().IntVar(&mFlag, "m", 0, "magnetic quantum number")
	cmd.Flags().IntVar(&quality, "quality", config.DefaultQuality, "quality level 1-5")
	cmd.Flags().IntVar(&resolution, "resolution", 0, "explicit grid points per axis (overrides quality)")
	cmd.Flags().StringVar(&isoMode, "iso-mode", config.DefaultIsoMode, "isolevel mode: max-fraction | probability-mass")
	cmd.Flags().Float64Var(&isoFraction, "iso-fraction", config.DefaultIsoFraction, "isolevel as a fraction of peak density")
	cmd.Flags().Float64Var(&isoMass, "iso-mass", config.DefaultIsoMass, "probability mass enclosed by the isosurface")
	cmd.Flags().StringVar(&rep, "rep", "points", "representation: points | mesh")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "named orbital preset")
}

// buildRequest resolves preset, config file, and flags in that order;
// explicitly set flags win.
func buildRequest(cmd *cobra.Command) (engine.Request, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return engine.Request{}, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return engine.Request{}, fmt.Errorf("failed to load config: %w", err)
		}
		if preset != "" {
			// Preset picks the orbital, file supplies the rest.
			loaded.Orbital = cfg.Orbital
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("n") {
		cfg.Orbital.N = nFlag
	}
	if flags.Changed("l") {
		cfg.Orbital.L = lFlag
	}
	if flags.Changed("m") {
		cfg.Orbital.M = mFlag
	}
	if flags.Changed("quality") {
		cfg.Quality = quality
	}
	if flags.Changed("resolution") {
		cfg.Resolution = resolution
	}
	if flags.Changed("iso-mode") {
		cfg.Iso.Mode = isoMode
	}
	if flags.Changed("iso-fraction") {
		cfg.Iso.Fraction = isoFraction
	}
	if flags.Changed("iso-mass") {
		cfg.Iso.Mass = isoMass
	}
	if flags.Changed("rep") {
		cfg.Representation = rep
	}
	if cfg.DataDir != "" && !cmd.Flags().Changed("data") {
		dataDir = cfg.DataDir
	}

	return cfg.Request()
}

func runCompute(cmd *cobra.Command, args []string) error {
	req, err := buildRequest(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	res, err := engine.New().Compute(context.Background(), req)
	if err != nil {
		return err
	}

	runID, err := st.Save(res)
	if err != nil {
		return err
	}

	fmt.Printf("computed %s in %v\n", res.Label, res.Elapsed.Round(time.Millisecond))
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("grid: %d^3, extent %.1f a0\n", res.K, res.Extent)
	fmt.Printf("isolevel: %.4e (peak density %.4e)\n", res.Isolevel, res.Stats.PeakDensity)
	fmt.Printf("mass in box: %.4f\n", res.Stats.SampledMass)
	fmt.Printf("surface points: %d\n", res.Stats.SurfacePoints)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	req, err := buildRequest(cmd)
	if err != nil {
		return err
	}
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	return tui.Run(engine.NewCached(), st, req)
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tORBITAL\tTIME\tGRID\tISOLEVEL\tREP\tPOINTS")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d^3\t%.3e\t%s\t%d\n",
			run.ID,
			run.Label,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.K,
			run.Isolevel,
			run.Representation,
			run.SurfacePoints,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("orbital: %s\n", meta.Label)
	fmt.Printf("peak density: %.4e, mass in box: %.4f\n\n", meta.PeakDensity, meta.SampledMass)

	rs, ps := analysis.RadialDistribution(meta.N, meta.L, meta.Extent, 160)
	graph := asciigraph.Plot(ps,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("P(r) = r^2 R^2, r in (0, %.1f] a0", rs[len(rs)-1])),
	)
	fmt.Println(graph)
	fmt.Printf("\nmost probable radius: %.2f a0\n", analysis.RadialPeak(meta.N, meta.L))
	return nil
}

func analyzeOrbital(cmd *cobra.Command, args []string) error {
	req, err := buildRequest(cmd)
	if err != nil {
		return err
	}

	state, err := quantum.Validate(req.N, req.L, req.M)
	if err != nil {
		return err
	}

	eng := engine.NewCached()
	res, err := eng.Compute(context.Background(), req)
	if err != nil {
		return err
	}

	mass := analysis.Normalization(res.Density, res.Grid)
	fmt.Printf("orbital: %s\n", res.Label)
	fmt.Printf("grid: %d^3, extent %.1f a0\n", res.K, res.Extent)
	fmt.Printf("normalization (box integral of |psi|^2): %.6f\n", mass)
	fmt.Printf("most probable radius: %.2f a0\n", analysis.RadialPeak(state.N, state.L))
	fmt.Printf("radial nodes: %d, angular nodes: %d\n", state.N-state.L-1, state.L)

	// Overlap against the other states of the same shell, same grid.
	fmt.Println("\noverlaps within the shell:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STATE\t<a|b>")
	for l := 0; l < state.N; l++ {
		for mm := -l; mm <= l; mm++ {
			if l == state.L && mm == state.M {
				continue
			}
			other := req
			other.L, other.M = l, mm
			ores, err := eng.Compute(context.Background(), other)
			if err != nil {
				return err
			}
			s, err := analysis.Overlap(res.Amplitude, ores.Amplitude, res.Grid)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s\t%+.2e\n", ores.Label, s)
		}
	}
	return w.Flush()
}

func exportJSON(cmd *cobra.Command, args []string) error {
	req, err := buildRequest(cmd)
	if err != nil {
		return err
	}
	res, err := engine.New().Compute(context.Background(), req)
	if err != nil {
		return err
	}
	return export.WriteJSON(os.Stdout, res)
}

func exportPLY(cmd *cobra.Command, args []string) error {
	req, err := buildRequest(cmd)
	if err != nil {
		return err
	}
	res, err := engine.New().Compute(context.Background(), req)
	if err != nil {
		return err
	}
	return export.WritePLY(os.Stdout, res)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	req, err := buildRequest(cmd)
	if err != nil {
		return err
	}
	res, err := engine.New().Compute(context.Background(), req)
	if err != nil {
		return err
	}

	canvas := viz.NewCanvas(100, 50)
	camera := viz.NewCamera()
	camera.RotateX(rotX)
	camera.RotateY(rotY)
	if res.Rep == engine.TriangleMesh {
		viz.RenderMesh(canvas, res.Mesh, camera, res.Extent)
	} else {
		viz.RenderCloud(canvas, res.Cloud, camera, res.Extent)
	}

	theme := viz.CurrentTheme
	_, err = fmt.Fprintln(os.Stdout, export.CanvasToSVG(canvas, svgScale, string(theme.Positive), string(theme.Negative)))
	return err
}

func listPresetsCmd(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tN\tL\tM\tLABEL")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		state, err := quantum.Validate(p.Orbital.N, p.Orbital.L, p.Orbital.M)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\n", name, state.N, state.L, state.M, state.Label())
	}
	return w.Flush()
}

func printTable(cmd *cobra.Command, args []string) error {
	states := quantum.Sequence(maxN)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ORBITAL\tN\tL\tM\tN+L\tRADIAL NODES")
	for _, s := range states {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%d\n", s.Label(), s.N, s.L, s.M, s.N+s.L, s.N-s.L-1)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println("\nground-state configurations:")
	cw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(cw, "ELEMENT\tCONFIGURATION")
	for _, c := range quantum.Configurations {
		fmt.Fprintf(cw, "%s\t%s\n", c.Element, c.Config)
	}
	return cw.Flush()
}

func benchQualities(cmd *cobra.Command, args []string) error {
	req, err := buildRequest(cmd)
	if err != nil {
		return err
	}
	req.K = 0 // quality drives the grid here

	fmt.Printf("benchmarking (%d,%d,%d)\n\n", req.N, req.L, req.M)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "QUALITY\tGRID\tPOINTS\tTIME\tPOINTS/SEC\tSURFACE")

	eng := engine.New()
	for q := 1; q <= 5; q++ {
		req.Quality = q
		res, err := eng.Compute(context.Background(), req)
		if err != nil {
			return err
		}
		points := res.K * res.K * res.K
		perSec := float64(points) / res.Elapsed.Seconds()
		fmt.Fprintf(w, "%d\t%d^3\t%d\t%v\t%.0f\t%d\n",
			q, res.K, points, res.Elapsed.Round(time.Millisecond), perSec, res.Stats.SurfacePoints)
	}
	return w.Flush()
}
