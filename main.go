package main

import (
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/pthm-cable/wellspring/config"
	"github.com/pthm-cable/wellspring/export"
	"github.com/pthm-cable/wellspring/hydro"
	"github.com/pthm-cable/wellspring/scatter"
	"github.com/pthm-cable/wellspring/terrain"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	seed := flag.Int64("seed", 0, "Noise/RNG seed (0 = time-based)")
	dayOfYear := flag.Int("day", 0, "Day of year for seasonal temperature shift (0 = none)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV artifacts and config snapshot")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	slog.Info("starting synthesis",
		"seed", rngSeed,
		"width", cfg.World.Width,
		"height", cfg.World.Height,
	)

	gen := terrain.NewGenerator(rngSeed)
	w, h := cfg.World.Width, cfg.World.Height
	xs, ys := cfg.World.XStart, cfg.World.YStart

	elevation := gen.Elevation(xs, ys, w, h,
		cfg.Elevation.Scale, cfg.Elevation.Octaves, cfg.Elevation.Persistence,
		cfg.Elevation.MinElevation, cfg.Elevation.MaxElevation)

	temperature := gen.Temperature(xs, ys, w, h, terrain.TemperatureParams{
		Scale:       cfg.Temperature.Scale,
		EquatorY:    cfg.Temperature.EquatorY,
		MaxLatitude: cfg.Temperature.MaxLatitude,
		MinTemp:     cfg.Temperature.MinTemp,
		MaxTemp:     cfg.Temperature.MaxTemp,
		NoiseScale:  cfg.Temperature.NoiseScale,
	})
	temperature = terrain.AdjustTemperatureForElevation(temperature, elevation, cfg.Temperature.LapseRate)
	if *dayOfYear > 0 {
		temperature = terrain.ApplySeasonalAndLatitudeVariation(temperature, *dayOfYear,
			cfg.Temperature.MaxLatitude, cfg.Temperature.EquatorY, 20, 365, 0.5)
	}

	moisture := gen.Moisture(xs, ys, w, h,
		cfg.Moisture.Scale, cfg.Moisture.Octaves, cfg.Moisture.Persistence)
	wind := terrain.AdjustWindForElevation(terrain.WindMap(w, h), elevation, cfg.Wind.HighElevation)
	moisture = terrain.OrographicMoisture(moisture, elevation, wind)

	result, err := hydro.Synthesize(elevation, hydro.Params{
		WaterLevel:       cfg.Hydrology.WaterLevel,
		SourcePercentile: cfg.Hydrology.SourcePercentile,
		LakeDepth:        cfg.Hydrology.LakeDepth,
		MaxGradient:      cfg.Hydrology.MaxGradient,
	})
	if err != nil {
		slog.Error("hydrology synthesis failed", "error", err)
		os.Exit(1)
	}

	slog.Info("hydrology synthesized",
		"water_cells", result.Mask.Count(),
		"sources", len(result.Sources),
	)

	rng := rand.New(rand.NewSource(rngSeed))
	points := scatter.PoissonDisc(float64(w), float64(h), cfg.Scatter.Radius, cfg.Scatter.K, rng)
	edges := scatter.AddCycles(points, scatter.MST(points), cfg.Scatter.Cycles, rng)

	slog.Info("scatter graph built", "points", len(points), "edges", len(edges))

	om, err := export.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to create output directory", "error", err)
		os.Exit(1)
	}
	if om == nil {
		return
	}

	steps := []struct {
		name string
		fn   func() error
	}{
		{"config", func() error { return om.WriteConfig(cfg) }},
		{"elevation", func() error { return om.WriteGrid("elevation.csv", elevation) }},
		{"temperature", func() error { return om.WriteGrid("temperature.csv", temperature) }},
		{"moisture", func() error { return om.WriteGrid("moisture.csv", moisture) }},
		{"water mask", func() error { return om.WriteMask("water.csv", result.Mask) }},
		{"network", func() error { return om.WriteNetwork("rivers.csv", result.Net) }},
		{"merged", func() error { return om.WriteGrid("merged.csv", result.Merged) }},
		{"sources", func() error { return om.WriteSources(result.Sources, elevation) }},
		{"graph", func() error { return om.WriteGraph(points, edges) }},
		{"stats", func() error {
			return om.WriteStats([]export.StatsRecord{
				statsRecord("elevation", elevation),
				statsRecord("temperature", temperature),
				statsRecord("moisture", moisture),
				statsRecord("merged", result.Merged),
			})
		}},
	}
	for _, s := range steps {
		if err := s.fn(); err != nil {
			slog.Error("export failed", "artifact", s.name, "error", err)
			os.Exit(1)
		}
	}

	slog.Info("artifacts written", "dir", om.Dir())
}

func statsRecord(name string, f *terrain.Field) export.StatsRecord {
	s := f.Stats()
	return export.StatsRecord{Name: name, Min: s.Min, Max: s.Max, Mean: s.Mean}
}
