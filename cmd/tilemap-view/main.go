package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/lawnchairsociety/tilemap/internal/config"
	"github.com/lawnchairsociety/tilemap/internal/debugview/viewer"
	"github.com/lawnchairsociety/tilemap/internal/logger"
)

func main() {
	configFile := flag.String("config", "data/tilemap.yaml", "Path to map config YAML file")
	loggingFile := flag.String("logging", "data/logging.yaml", "Path to logging config YAML file")
	scale := flag.Int("scale", 16, "Pixels per cell")
	flag.Parse()

	logConfig, _ := logger.LoadConfig(*loggingFile)
	logger.Initialize(logConfig)
	defer logger.Close()

	cfg, err := config.LoadConfig(*configFile)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := cfg.Map.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	err = viewer.Run(viewer.Options{
		Dimensions: cfg.Dimensions(),
		Seed:       seed,
		Inset:      cfg.Debug.Inset,
		ShowGrid:   cfg.Debug.ShowGrid,
		Scale:      *scale,
	})
	if errors.Is(err, viewer.ErrNoGUI) {
		fmt.Fprintln(os.Stderr, "The viewer requires the ebiten build tag.")
		fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/tilemap-view`.")
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
