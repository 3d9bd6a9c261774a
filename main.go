package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/grazerlab/grazeland/config"
	"github.com/grazerlab/grazeland/sim"
	"github.com/grazerlab/grazeland/telemetry"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	seed := flag.Int64("seed", 0, "RNG seed override (0 = use config)")
	iterations := flag.Int("iterations", 0, "Tick budget override (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV stats and config snapshot")
	logTicks := flag.Bool("log-ticks", false, "Log every tick's stats instead of window summaries")
	statsWindow := flag.Int("stats-window", 0, "Stats window size in ticks (0 = use config)")

	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()
	if *seed != 0 {
		cfg.Simulation.RandomSeed = *seed
	}
	if *iterations != 0 {
		cfg.Simulation.Iterations = *iterations
	}
	windowTicks := cfg.Telemetry.StatsWindow
	if *statsWindow > 0 {
		windowTicks = *statsWindow
	}

	model, err := sim.NewModel(cfg)
	if err != nil {
		slog.Error("failed to build model", "error", err)
		os.Exit(1)
	}

	output, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to set up output", "error", err)
		os.Exit(1)
	}
	defer output.Close()
	if err := output.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
		os.Exit(1)
	}

	slog.Info("starting simulation",
		"seed", cfg.Simulation.RandomSeed,
		"iterations", cfg.Simulation.Iterations,
		"grid", []int{cfg.Grid.Nrows, cfg.Grid.Ncols},
		"grazers", cfg.Grazers.InitialCount,
		"output_dir", output.Dir(),
	)

	collector := telemetry.NewCollector(windowTicks)
	for running := true; running; {
		running = model.Advance()

		stats := telemetry.Collect(model)
		if err := output.WriteTick(stats); err != nil {
			slog.Error("failed to write stats", "error", err)
			os.Exit(1)
		}
		if *logTicks {
			slog.Info("tick", "stats", stats)
		}
		collector.RecordTick(stats)
		if windowTicks > 0 && collector.ShouldFlush(stats.Tick) {
			collector.Flush(stats).LogStats()
		}
	}

	final := telemetry.Collect(model)
	slog.Info("simulation complete",
		"ticks", model.Tick(),
		"grazers", final.Grazers,
		"total_births", final.TotalBirths,
		"total_deaths", final.TotalDeaths,
		"veg_total", final.VegTotal,
	)
}
