// Package telemetry aggregates per-tick simulation statistics and writes
// them to structured logs and CSV files.
package telemetry

import (
	"log/slog"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/grazerlab/grazeland/sim"
)

// TickStats holds the observable outcome of one simulation tick.
type TickStats struct {
	Tick    int `csv:"tick"`
	Grazers int `csv:"grazers"`

	Births int `csv:"births"`
	Deaths int `csv:"deaths"`

	TotalBirths int `csv:"total_births"`
	TotalDeaths int `csv:"total_deaths"`

	// Vegetation distribution at tick end
	VegTotal int     `csv:"veg_total"`
	VegMin   int     `csv:"veg_min"`
	VegMax   int     `csv:"veg_max"`
	VegMean  float64 `csv:"veg_mean"`
	VegStd   float64 `csv:"veg_std"`
}

// Collect builds the stats record for the model's last completed tick.
// Must be called between Advance calls.
func Collect(m *sim.Model) TickStats {
	snap := m.Snapshot()
	mean, std, min, max, total := SummarizeCells(snap.Cells)
	return TickStats{
		Tick:        snap.Tick,
		Grazers:     len(snap.Grazers),
		Births:      m.TickBirths(),
		Deaths:      m.TickDeaths(),
		TotalBirths: snap.TotalBirths,
		TotalDeaths: snap.TotalDeaths,
		VegTotal:    total,
		VegMin:      min,
		VegMax:      max,
		VegMean:     mean,
		VegStd:      std,
	}
}

// SummarizeCells computes the distribution of a cell value snapshot.
// Returns zeros for an empty slice.
func SummarizeCells(cells []int) (mean, std float64, min, max, total int) {
	if len(cells) == 0 {
		return 0, 0, 0, 0, 0
	}
	vals := make([]float64, len(cells))
	for i, v := range cells {
		vals[i] = float64(v)
		total += v
	}
	mean = stat.Mean(vals, nil)
	if len(vals) > 1 {
		std = stat.StdDev(vals, nil)
	}
	min = int(floats.Min(vals))
	max = int(floats.Max(vals))
	return mean, std, min, max, total
}

// LogValue implements slog.LogValuer for structured logging.
func (s TickStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("tick", s.Tick),
		slog.Int("grazers", s.Grazers),
		slog.Int("births", s.Births),
		slog.Int("deaths", s.Deaths),
		slog.Int("total_births", s.TotalBirths),
		slog.Int("total_deaths", s.TotalDeaths),
		slog.Int("veg_total", s.VegTotal),
		slog.Int("veg_min", s.VegMin),
		slog.Int("veg_max", s.VegMax),
		slog.Float64("veg_mean", s.VegMean),
		slog.Float64("veg_std", s.VegStd),
	)
}
