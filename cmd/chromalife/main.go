package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/mvikstrom/chromalife/internal/analysis"
	"github.com/mvikstrom/chromalife/internal/cell"
	"github.com/mvikstrom/chromalife/internal/census"
	"github.com/mvikstrom/chromalife/internal/config"
	"github.com/mvikstrom/chromalife/internal/engine"
	"github.com/mvikstrom/chromalife/internal/rules"
	"github.com/mvikstrom/chromalife/internal/seed"
	"github.com/mvikstrom/chromalife/internal/sim"
	"github.com/mvikstrom/chromalife/internal/store"
)

var (
	dataDir string

	width     int
	height    int
	maxWidth  int
	maxHeight int
	gens      int
	runSeed   int64
	scanMode  string

	chaosPreset string
	customProb  float64
	randomProb  float64

	patternColor string
	density      float64
	xMin         float64
	xMax         float64
	yMin         float64
	yMax         float64
	cReal        float64
	cImag        float64
	maxIter      int
	threshold    int

	configFile string
	preset     string
	showGraph  bool
	noSave     bool
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ccff"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888899"))
	valueStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff88"))
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "chromalife",
		Short: "colored game of life lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".chromalife", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [pattern]",
		Short: "seed a pattern and run the simulation",
		Args:  cobra.ExactArgs(1),
		RunE:  runSimulation,
	}
	addRunFlags(runCmd)
	runCmd.Flags().BoolVar(&showGraph, "graph", false, "chart total population after the run")
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "skip saving the run")

	seedCmd := &cobra.Command{
		Use:   "seed [pattern]",
		Short: "generate a seed pattern and print it as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  seedPattern,
	}
	addRunFlags(seedCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "chart population history of a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "detect population oscillation periods in a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a saved run as a single JSON document",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list chaos and pattern presets",
		RunE:  listPresets,
	}

	benchCmd := &cobra.Command{
		Use:   "bench [pattern]",
		Short: "benchmark generations per second",
		Args:  cobra.ExactArgs(1),
		RunE:  benchPattern,
	}
	addRunFlags(benchCmd)

	rootCmd.AddCommand(runCmd, seedCmd, listCmd, plotCmd, analyzeCmd, exportJSONCmd, presetsCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&width, "width", config.DefaultWidth, "grid width")
	cmd.Flags().IntVar(&height, "height", config.DefaultHeight, "grid height")
	cmd.Flags().IntVar(&maxWidth, "max-width", config.DefaultMaxWidth, "maximum grid width")
	cmd.Flags().IntVar(&maxHeight, "max-height", config.DefaultMaxHeight, "maximum grid height")
	cmd.Flags().IntVar(&gens, "gens", config.DefaultGenerations, "generations to run")
	cmd.Flags().Int64Var(&runSeed, "seed", 0, "random seed (0 = time-based)")
	cmd.Flags().StringVar(&scanMode, "scan", "active", "scan mode: active or full")
	cmd.Flags().StringVar(&chaosPreset, "chaos", "", "chaos preset: off, low, medium, high")
	cmd.Flags().Float64Var(&customProb, "custom-prob", 0, "chaos: custom rule probability")
	cmd.Flags().Float64Var(&randomProb, "random-prob", 0, "chaos: random outcome probability")
	cmd.Flags().StringVar(&patternColor, "color", "red", "figure color")
	cmd.Flags().Float64Var(&density, "density", seed.DefaultDensity, "random fill density")
	cmd.Flags().Float64Var(&xMin, "x-min", seed.DefaultMandelbrotXMin, "viewport left edge")
	cmd.Flags().Float64Var(&xMax, "x-max", seed.DefaultMandelbrotXMax, "viewport right edge")
	cmd.Flags().Float64Var(&yMin, "y-min", seed.DefaultMandelbrotYMin, "viewport bottom edge")
	cmd.Flags().Float64Var(&yMax, "y-max", seed.DefaultMandelbrotYMax, "viewport top edge")
	cmd.Flags().Float64Var(&cReal, "c-real", seed.DefaultJuliaCReal, "julia constant, real part")
	cmd.Flags().Float64Var(&cImag, "c-imag", seed.DefaultJuliaCImag, "julia constant, imaginary part")
	cmd.Flags().IntVar(&maxIter, "max-iter", seed.DefaultMaxIter, "escape iteration cap")
	cmd.Flags().IntVar(&threshold, "threshold", seed.DefaultThreshold, "escape threshold for alive cells")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use a named pattern preset")
}

// buildConfig layers preset, config file, and flags into a run
// configuration, with later layers overriding earlier ones for flags the
// user actually set.
func buildConfig(cmd *cobra.Command, pattern string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(pattern, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(pattern))
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	cfg.Pattern.Kind = pattern
	if pattern == "julia" && preset == "" && configFile == "" {
		cfg.Pattern.XMin = seed.DefaultJuliaXMin
		cfg.Pattern.XMax = seed.DefaultJuliaXMax
		cfg.Pattern.YMin = seed.DefaultJuliaYMin
		cfg.Pattern.YMax = seed.DefaultJuliaYMax
	}

	flagInt := func(name string, dst *int, v int) {
		if cmd.Flags().Changed(name) {
			*dst = v
		}
	}
	flagFloat := func(name string, dst *float64, v float64) {
		if cmd.Flags().Changed(name) {
			*dst = v
		}
	}

	flagInt("width", &cfg.Width, width)
	flagInt("height", &cfg.Height, height)
	flagInt("max-width", &cfg.MaxWidth, maxWidth)
	flagInt("max-height", &cfg.MaxHeight, maxHeight)
	flagInt("gens", &cfg.Generations, gens)
	flagInt("max-iter", &cfg.Pattern.MaxIter, maxIter)
	flagInt("threshold", &cfg.Pattern.Threshold, threshold)
	flagFloat("density", &cfg.Pattern.Density, density)
	flagFloat("x-min", &cfg.Pattern.XMin, xMin)
	flagFloat("x-max", &cfg.Pattern.XMax, xMax)
	flagFloat("y-min", &cfg.Pattern.YMin, yMin)
	flagFloat("y-max", &cfg.Pattern.YMax, yMax)
	flagFloat("c-real", &cfg.Pattern.CReal, cReal)
	flagFloat("c-imag", &cfg.Pattern.CImag, cImag)
	if cmd.Flags().Changed("seed") {
		cfg.Seed = runSeed
	}
	if cmd.Flags().Changed("scan") {
		cfg.ScanMode = scanMode
	}
	if cmd.Flags().Changed("color") {
		cfg.Pattern.Color = patternColor
	}
	if cmd.Flags().Changed("chaos") {
		cfg.Chaos = config.ChaosSettings{Preset: chaosPreset}
	}
	if cmd.Flags().Changed("custom-prob") || cmd.Flags().Changed("random-prob") {
		cfg.Chaos = config.ChaosSettings{
			Enabled:           true,
			CustomRuleProb:    customProb,
			RandomOutcomeProb: randomProb,
		}
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// makePattern produces the initial grid for the configured pattern kind.
func makePattern(cfg *config.Config, rng *rand.Rand) ([][]cell.State, error) {
	p := cfg.Pattern
	switch p.Kind {
	case "mandelbrot":
		return seed.Mandelbrot(cfg.Width, cfg.Height, p.XMin, p.XMax, p.YMin, p.YMax, p.MaxIter, p.Threshold), nil
	case "julia":
		return seed.Julia(cfg.Width, cfg.Height, p.CReal, p.CImag, p.XMin, p.XMax, p.YMin, p.YMax, p.MaxIter, p.Threshold), nil
	case "random":
		return seed.RandomColors(cfg.Width, cfg.Height, p.Density, rng), nil
	case "glider", "blinker", "walker":
		color, err := cell.Parse(p.Color)
		if err != nil {
			return nil, err
		}
		if !color.Alive() {
			return nil, fmt.Errorf("figure color must be a living color, got %s", color)
		}
		figure, err := seed.Figure(p.Kind, color)
		if err != nil {
			return nil, err
		}
		return seed.OnCanvas(cfg.Width, cfg.Height, figure), nil
	}
	return nil, fmt.Errorf("unknown pattern: %s (want mandelbrot, julia, random, glider, blinker, or walker)", p.Kind)
}

// buildEngine assembles a seeded engine from a validated configuration.
func buildEngine(cfg *config.Config) (*engine.Engine, error) {
	rng := rand.New(rand.NewPCG(uint64(cfg.Seed), 0))

	eng, err := engine.New(cfg.Width, cfg.Height, cfg.MaxWidth, cfg.MaxHeight, rng)
	if err != nil {
		return nil, err
	}

	chaos, err := cfg.ChaosConfig()
	if err != nil {
		return nil, err
	}
	if err := eng.SetChaos(chaos); err != nil {
		return nil, err
	}

	scan, err := cfg.Scan()
	if err != nil {
		return nil, err
	}
	eng.SetScanMode(scan)

	pattern, err := makePattern(cfg, rng)
	if err != nil {
		return nil, err
	}
	if err := eng.SetGrid(pattern); err != nil {
		return nil, err
	}
	return eng, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}

	eng, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	recorder := census.NewRecorder()
	runner := sim.NewRunner(eng)
	runner.AddObserver(recorder)

	fmt.Printf("running %s on %dx%d grid...\n", cfg.Pattern.Kind, cfg.Width, cfg.Height)

	result, err := runner.Run(context.Background(), cfg.Generations)
	if err != nil {
		return err
	}

	chaos := eng.Chaos()
	last := recorder.Last()

	fmt.Println(titleStyle.Render("run complete"))
	printField("generations", fmt.Sprintf("%d", result.Generations))
	printField("elapsed", result.Elapsed.String())
	printField("seed", fmt.Sprintf("%d", cfg.Seed))
	printField("chaos", chaosLabel(chaos))
	printField("population", fmt.Sprintf("%d (r:%d b:%d g:%d y:%d)",
		last.Total(),
		last.Counts[cell.Red], last.Counts[cell.Blue],
		last.Counts[cell.Green], last.Counts[cell.Yellow]))

	if showGraph && recorder.Len() > 1 {
		fmt.Println()
		graph := asciigraph.Plot(recorder.TotalSeries(),
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("total population"),
		)
		fmt.Println(graph)
	}

	if noSave {
		return nil
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(runMetadata(cfg, chaos), recorder.History(), eng.Grid().Rows())
	if err != nil {
		return err
	}
	printField("run id", runID)
	return nil
}

func runMetadata(cfg *config.Config, chaos rules.ChaosConfig) store.RunMetadata {
	return store.RunMetadata{
		Pattern:           cfg.Pattern.Kind,
		Seed:              cfg.Seed,
		Width:             cfg.Width,
		Height:            cfg.Height,
		Generations:       cfg.Generations,
		ChaosEnabled:      chaos.Enabled,
		CustomRuleProb:    chaos.CustomRuleProb,
		RandomOutcomeProb: chaos.RandomOutcomeProb,
		ScanMode:          cfg.ScanMode,
	}
}

func chaosLabel(c rules.ChaosConfig) string {
	if !c.Enabled {
		return "off"
	}
	return fmt.Sprintf("on (custom %.0f%%, random %.0f%%)", c.CustomRuleProb*100, c.RandomOutcomeProb*100)
}

func printField(label, value string) {
	fmt.Printf("  %s %s\n", labelStyle.Render(label+":"), valueStyle.Render(value))
}

func seedPattern(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewPCG(uint64(cfg.Seed), 0))
	pattern, err := makePattern(cfg, rng)
	if err != nil {
		return err
	}

	alive := 0
	for _, row := range pattern {
		for _, c := range row {
			if c.Alive() {
				alive++
			}
		}
	}
	fmt.Fprintf(os.Stderr, "%s: %d alive cells in %dx%d\n", cfg.Pattern.Kind, alive, cfg.Width, cfg.Height)

	meta := runMetadata(cfg, rules.ChaosConfig{})
	return store.ExportJSON(os.Stdout, meta, nil, pattern)
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPATTERN\tTIME\tSIZE\tGENS\tCHAOS\tPOP")
	for _, run := range runs {
		chaos := "off"
		if run.ChaosEnabled {
			chaos = fmt.Sprintf("%.2f/%.2f", run.CustomRuleProb, run.RandomOutcomeProb)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%dx%d\t%d\t%s\t%d\n",
			run.ID,
			run.Pattern,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Width, run.Height,
			run.Generations,
			chaos,
			run.Population["total"],
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	history, err := st.LoadPopulation(runID)
	if err != nil {
		return err
	}
	if len(history) < 2 {
		return fmt.Errorf("not enough data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("pattern: %s\n", meta.Pattern)
	fmt.Printf("samples: %d\n\n", len(history))

	series := func(c cell.State) []float64 {
		out := make([]float64, len(history))
		for i, snap := range history {
			out[i] = float64(snap.Counts[c])
		}
		return out
	}
	total := make([]float64, len(history))
	for i, snap := range history {
		total[i] = float64(snap.Total())
	}

	charts := []struct {
		caption string
		data    []float64
	}{
		{"total population", total},
		{"red", series(cell.Red)},
		{"blue", series(cell.Blue)},
		{"green", series(cell.Green)},
		{"yellow", series(cell.Yellow)},
	}
	for _, c := range charts {
		graph := asciigraph.Plot(c.data,
			asciigraph.Height(8),
			asciigraph.Width(80),
			asciigraph.Caption(c.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	history, err := st.LoadPopulation(runID)
	if err != nil {
		return err
	}

	total := make([]float64, len(history))
	for i, snap := range history {
		total[i] = float64(snap.Total())
	}

	fmt.Println(titleStyle.Render("population oscillation"))
	if period, ok := analysis.DominantPeriod(total); ok {
		printField("total", fmt.Sprintf("period %.1f generations", period))
	} else {
		printField("total", "no dominant period")
	}

	for _, c := range cell.Colors {
		series := make([]float64, len(history))
		for i, snap := range history {
			series[i] = float64(snap.Counts[c])
		}
		if period, ok := analysis.DominantPeriod(series); ok {
			printField(c.String(), fmt.Sprintf("period %.1f generations", period))
		} else {
			printField(c.String(), "no dominant period")
		}
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	history, err := st.LoadPopulation(runID)
	if err != nil {
		return err
	}
	grid, err := st.LoadGrid(runID)
	if err != nil {
		grid = nil
	}
	return store.ExportJSON(os.Stdout, *meta, history, grid)
}

func listPresets(cmd *cobra.Command, args []string) error {
	fmt.Println(titleStyle.Render("chaos presets"))
	for _, name := range rules.ListPresets() {
		c, _ := rules.GetPreset(name)
		printField(name, chaosLabel(c))
	}

	fmt.Println()
	fmt.Println(titleStyle.Render("pattern presets"))
	for _, kind := range []string{"mandelbrot", "julia", "random"} {
		printField(kind, fmt.Sprintf("%v", config.ListPresets(kind)))
	}
	return nil
}

func benchPattern(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}

	eng, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	start := time.Now()
	for i := 0; i < cfg.Generations; i++ {
		eng.Step()
	}
	elapsed := time.Since(start)

	fmt.Printf("%s: %d generations in %v (%.0f gens/sec)\n",
		cfg.Pattern.Kind, cfg.Generations, elapsed,
		float64(cfg.Generations)/elapsed.Seconds())
	return nil
}
