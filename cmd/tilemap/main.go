package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/lawnchairsociety/tilemap/internal/config"
	"github.com/lawnchairsociety/tilemap/internal/debugview"
	"github.com/lawnchairsociety/tilemap/internal/grid"
	"github.com/lawnchairsociety/tilemap/internal/logger"
	"github.com/lawnchairsociety/tilemap/internal/mapgen"
	"github.com/lawnchairsociety/tilemap/internal/scene"
)

// options are the command-line overrides applied on top of the config file
type options struct {
	configFile  string
	loggingFile string
	width       int
	height      int
	seed        int64
	output      string
	legend      bool
	noView      bool
	placements  bool
}

func main() {
	opts := parseFlags(flag.CommandLine, os.Args[1:])

	logConfig, err := logger.LoadConfig(opts.loggingFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using default logging)\n", err)
	}
	if err := logger.Initialize(logConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	if err := run(context.Background(), opts, os.Stdout); err != nil {
		logger.Error("Map generation failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logger.Close()
		os.Exit(1)
	}
}

func parseFlags(fs *flag.FlagSet, args []string) options {
	var opts options
	fs.StringVar(&opts.configFile, "config", "data/tilemap.yaml", "Path to map config YAML file")
	fs.StringVar(&opts.loggingFile, "logging", "data/logging.yaml", "Path to logging config YAML file")
	fs.IntVar(&opts.width, "width", 0, "Map width in cells, 1-50 (overrides config)")
	fs.IntVar(&opts.height, "height", 0, "Map height in cells, 1-50 (overrides config)")
	fs.Int64Var(&opts.seed, "seed", 0, "Generation seed (default: config seed, or random if 0)")
	fs.StringVar(&opts.output, "output", "", "Output file (empty for stdout)")
	fs.BoolVar(&opts.legend, "legend", true, "Show legend")
	fs.BoolVar(&opts.noView, "no-view", false, "Skip obstacle and surface placement")
	fs.BoolVar(&opts.placements, "placements", false, "List every obstacle placement")
	fs.Parse(args)
	return opts
}

// resolveConfig loads the config file and applies flag overrides. Flags
// left at zero keep the file value.
func resolveConfig(opts options) (*config.MapConfig, error) {
	cfg, err := config.LoadConfig(opts.configFile)
	if err != nil {
		return nil, err
	}

	if opts.width != 0 {
		cfg.Map.Width = opts.width
	}
	if opts.height != 0 {
		cfg.Map.Height = opts.height
	}
	if opts.seed != 0 {
		cfg.Map.Seed = opts.seed
	}
	if opts.noView {
		cfg.View.GenerateView = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Map.Seed == 0 {
		cfg.Map.Seed = time.Now().UnixNano()
		logger.Info("Map seed selected", "seed", cfg.Map.Seed, "random", true)
	} else {
		logger.Info("Map seed selected", "seed", cfg.Map.Seed, "random", false)
	}

	return cfg, nil
}

func run(ctx context.Context, opts options, stdout io.Writer) error {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}

	gen := mapgen.NewGenerator(&mapgen.Config{
		Width:  cfg.Map.Width,
		Height: cfg.Map.Height,
		Seed:   cfg.Map.Seed,
	})
	result, err := gen.Generate()
	if err != nil {
		return err
	}

	recorder := &scene.Recorder{}
	builder := &scene.Builder{
		Spawner:      recorder,
		Baker:        recorder,
		Container:    recorder,
		GenerateView: cfg.View.GenerateView,
	}
	if err := builder.Build(ctx, result.Grid); err != nil {
		return err
	}

	var out strings.Builder
	writeReport(&out, result, recorder, opts)

	if opts.output != "" {
		if err := os.WriteFile(opts.output, []byte(out.String()), 0644); err != nil {
			return fmt.Errorf("write %s: %w", opts.output, err)
		}
		fmt.Fprintf(stdout, "Map written to %s\n", opts.output)
		return nil
	}

	_, err = io.WriteString(stdout, out.String())
	return err
}

func writeReport(out *strings.Builder, result *mapgen.Result, recorder *scene.Recorder, opts options) {
	g := result.Grid
	fmt.Fprintf(out, "Map %dx%d (Seed: %d)\n", g.Width(), g.Height(), result.Seed)
	out.WriteString(strings.Repeat("=", 40) + "\n\n")

	// strings.Builder writes cannot fail
	_ = debugview.RenderASCII(out, g, debugview.ASCIIOptions{Axes: true, Legend: opts.legend})

	out.WriteString("\nCells:\n")
	counts := result.Counts()
	for _, s := range grid.AllStates() {
		fmt.Fprintf(out, "  %-8s %4d\n", s, counts[s])
	}

	if recorder.Surface == nil {
		out.WriteString("\nView generation disabled.\n")
		return
	}

	fmt.Fprintf(out, "\nSurface: position (%g, %g) scale (%g, %g)\n",
		recorder.Surface.Position.X, recorder.Surface.Position.Z,
		recorder.Surface.Scale.X, recorder.Surface.Scale.Z)

	byKind := recorder.CountByKind()
	kinds := make([]mapgen.ObstacleKind, 0, len(byKind))
	for k := range byKind {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	out.WriteString("Obstacles:\n")
	for _, k := range kinds {
		fmt.Fprintf(out, "  %-8s %4d\n", k, byKind[k])
	}

	if opts.placements {
		out.WriteString("\nPlacements:\n")
		for _, s := range recorder.Spawned {
			fmt.Fprintf(out, "  %-6s (%g, %g)\n", s.Kind, s.Position.X, s.Position.Z)
		}
	}
}
