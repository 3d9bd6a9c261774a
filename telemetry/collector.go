package telemetry

import "log/slog"

// Collector accumulates tick outcomes into fixed-size windows and produces
// WindowStats summaries for logging.
type Collector struct {
	windowTicks int
	windowStart int

	births int
	deaths int
}

// NewCollector creates a collector flushing every windowTicks ticks.
// A window below 1 tick is widened to 1.
func NewCollector(windowTicks int) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{windowTicks: windowTicks}
}

// RecordTick feeds one tick's outcome into the current window.
func (c *Collector) RecordTick(s TickStats) {
	c.births += s.Births
	c.deaths += s.Deaths
}

// ShouldFlush returns true once the current window is complete.
func (c *Collector) ShouldFlush(currentTick int) bool {
	return currentTick-c.windowStart >= c.windowTicks
}

// Flush produces the summary for the completed window and resets the
// counters. The caller supplies the stats of the window's final tick for the
// population and vegetation readings.
func (c *Collector) Flush(last TickStats) WindowStats {
	ws := WindowStats{
		WindowStart: c.windowStart,
		WindowEnd:   last.Tick,
		Grazers:     last.Grazers,
		Births:      c.births,
		Deaths:      c.deaths,
		TotalBirths: last.TotalBirths,
		TotalDeaths: last.TotalDeaths,
		VegTotal:    last.VegTotal,
		VegMean:     last.VegMean,
	}
	c.windowStart = last.Tick
	c.births = 0
	c.deaths = 0
	return ws
}

// WindowStats summarizes a window of consecutive ticks.
type WindowStats struct {
	WindowStart int
	WindowEnd   int

	Grazers int
	Births  int
	Deaths  int

	TotalBirths int
	TotalDeaths int

	VegTotal int
	VegMean  float64
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", s.WindowStart),
		slog.Int("window_end", s.WindowEnd),
		slog.Int("grazers", s.Grazers),
		slog.Int("births", s.Births),
		slog.Int("deaths", s.Deaths),
		slog.Int("total_births", s.TotalBirths),
		slog.Int("total_deaths", s.TotalDeaths),
		slog.Int("veg_total", s.VegTotal),
		slog.Float64("veg_mean", s.VegMean),
	)
}

// LogStats logs the window summary using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
