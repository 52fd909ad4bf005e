package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rehmanul/ilot-placement/pkg/engine"
	"github.com/rehmanul/ilot-placement/pkg/floorplan"
	"github.com/rehmanul/ilot-placement/pkg/ilot"
)

const version = "1.0.0"

// CLI flags. ilotgen is a thin driver over pkg/engine (§12 of
// SPEC_FULL.md): spec.md's core explicitly excludes a CLI, so this
// package does nothing but read input, call Optimize, and write the
// result — no logic of its own.
var (
	floorPlanPath = flag.String("floorplan", "", "Path to a floor plan file (YAML or JSON; required)")
	configPath    = flag.String("config", "", "Path to a YAML configuration file (optional; defaults are used if omitted)")
	outputPath    = flag.String("output", "", "Path to write the JSON Result (default: stdout)")
	seedFlag      = flag.Uint64("seed", 0, "Override the seed from config (0 = use config seed)")
	verbose       = flag.Bool("verbose", false, "Enable verbose progress output")
	versionF      = flag.Bool("version", false, "Print version and exit")
	help          = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *versionF {
		fmt.Printf("ilotgen version %s\n", version)
		os.Exit(0)
	}

	if *help {
		printHelp()
		os.Exit(0)
	}

	if *floorPlanPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -floorplan flag is required")
		printUsage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	if *verbose {
		fmt.Fprintf(os.Stderr, "Loading floor plan from %s\n", *floorPlanPath)
	}
	fp, err := loadFloorPlan(*floorPlanPath)
	if err != nil {
		return fmt.Errorf("failed to load floor plan: %w", err)
	}

	cfg := engine.DefaultConfig()
	if *configPath != "" {
		if *verbose {
			fmt.Fprintf(os.Stderr, "Loading configuration from %s\n", *configPath)
		}
		loaded, err := engine.LoadConfig(*configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	if *seedFlag != 0 {
		if *verbose {
			fmt.Fprintf(os.Stderr, "Overriding seed from %d to %d\n", cfg.Seed, *seedFlag)
		}
		cfg.Seed = *seedFlag
	}

	if *verbose {
		fmt.Fprintf(os.Stderr, "Using seed: %d\n", cfg.Seed)
		fmt.Fprintf(os.Stderr, "Population: %d, generations: %d\n", cfg.PopulationSize, cfg.Generations)
	}

	start := time.Now()
	result, err := engine.Optimize(ctx, fp, cfg, makeProgressHook())
	if err != nil {
		return fmt.Errorf("optimization failed: %w", err)
	}
	elapsed := time.Since(start)

	if *verbose {
		fmt.Fprintf(os.Stderr, "Completed %d generations in %v (fitness=%.4f)\n", result.Generation, elapsed, result.Fitness)
	}

	return writeResult(result)
}

// makeProgressHook returns a ProgressHook that logs to stderr every
// generation when -verbose is set, and nil (no-op) otherwise.
func makeProgressHook() engine.ProgressHook {
	if !*verbose {
		return nil
	}
	return func(generation int, bestFitness float64, bestMetrics ilot.Metrics) {
		fmt.Fprintf(os.Stderr, "gen %d: fitness=%.4f space=%.2f access=%.2f corridor=%.2f ada=%.2f\n",
			generation, bestFitness, bestMetrics.SpaceUtilization, bestMetrics.Accessibility,
			bestMetrics.CorridorEfficiency, bestMetrics.ADACompliance)
	}
}

func loadFloorPlan(path string) (*floorplan.FloorPlan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading floor plan file: %w", err)
	}

	var raw struct {
		Bounds          floorplan.DrawingBounds    `yaml:"bounds" json:"bounds"`
		Walls           []floorplan.Wall           `yaml:"walls" json:"walls"`
		Openings        []floorplan.Opening        `yaml:"openings" json:"openings"`
		RestrictedZones []floorplan.RestrictedZone `yaml:"restrictedZones" json:"restrictedZones"`
	}

	if strings.HasSuffix(path, ".json") {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parsing JSON: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parsing YAML: %w", err)
		}
	}

	return floorplan.NewFloorPlan(raw.Bounds, raw.Walls, raw.Openings, raw.RestrictedZones)
}

func writeResult(result engine.Result) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling result: %w", err)
	}

	if *outputPath == "" {
		fmt.Println(string(data))
		return nil
	}

	if dir := filepath.Dir(*outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(*outputPath, data, 0o644); err != nil {
		return fmt.Errorf("writing result to %q: %w", *outputPath, err)
	}
	if *verbose {
		fmt.Fprintf(os.Stderr, "Wrote %d bytes to %s\n", len(data), *outputPath)
	}
	return nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "\nUsage: ilotgen -floorplan <floorplan.yaml> [options]")
	fmt.Fprintln(os.Stderr, "Run 'ilotgen -help' for detailed help")
}

func printHelp() {
	fmt.Printf("ilotgen version %s\n\n", version)
	fmt.Println("Computes optimized îlot placement and corridor layout for a floor plan.")
	fmt.Println("\nUsage:")
	fmt.Println("  ilotgen -floorplan <floorplan.yaml|.json> [options]")
	fmt.Println("\nRequired Flags:")
	fmt.Println("  -floorplan string")
	fmt.Println("        Path to a floor plan file (YAML or JSON, by extension)")
	fmt.Println("\nOptional Flags:")
	fmt.Println("  -config string")
	fmt.Println("        Path to a YAML configuration file (defaults are used if omitted)")
	fmt.Println("  -output string")
	fmt.Println("        Path to write the JSON Result (default: stdout)")
	fmt.Println("  -seed uint")
	fmt.Println("        Override the seed from config (0 = use config seed)")
	fmt.Println("  -verbose")
	fmt.Println("        Enable verbose progress output on stderr")
	fmt.Println("  -version")
	fmt.Println("        Print version and exit")
	fmt.Println("  -help")
	fmt.Println("        Show this help message")
	fmt.Println("\nExamples:")
	fmt.Println("  ilotgen -floorplan room.yaml -config engine.yaml -output result.json")
	fmt.Println("  ilotgen -floorplan room.json -seed 42 -verbose")
}
