package sim

import (
	"errors"
	"testing"

	"github.com/grazerlab/grazeland/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Simulation: config.SimulationConfig{RandomSeed: 1, Iterations: 10},
		Grid:       config.GridConfig{Nrows: 10, Ncols: 10, InitialMaxVegetation: 10},
		Grazers:    config.GrazersConfig{InitialCount: 20, MinSize: 2, MaxSize: 9},
	}
}

func TestNewModelRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"zero rows", func(c *config.Config) { c.Grid.Nrows = 0 }},
		{"zero iterations", func(c *config.Config) { c.Simulation.Iterations = 0 }},
		{"min size above max size", func(c *config.Config) {
			c.Grazers.MinSize = 5
			c.Grazers.MaxSize = 4
		}},
		{"negative count", func(c *config.Config) { c.Grazers.InitialCount = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(cfg)
			if _, err := NewModel(cfg); !errors.Is(err, config.ErrInvalid) {
				t.Errorf("NewModel = %v, want config.ErrInvalid", err)
			}
		})
	}
}

func TestNewModelInitialState(t *testing.T) {
	m, err := NewModel(testConfig())
	if err != nil {
		t.Fatalf("NewModel failed: %v", err)
	}
	if m.Tick() != 0 {
		t.Errorf("tick = %d, want 0", m.Tick())
	}
	if m.Grazers() != 20 {
		t.Errorf("grazers = %d, want 20", m.Grazers())
	}
	if m.TotalBirths() != 0 || m.TotalDeaths() != 0 {
		t.Errorf("counters = %d/%d, want 0/0", m.TotalBirths(), m.TotalDeaths())
	}
}

func TestAdvanceConsumesBudgetThenStops(t *testing.T) {
	m, err := NewModel(testConfig())
	if err != nil {
		t.Fatalf("NewModel failed: %v", err)
	}

	ticks := 0
	for m.Advance() {
		ticks++
	}
	ticks++ // the final Advance ran a tick and returned false

	if ticks != 10 {
		t.Errorf("ran %d ticks, want 10", ticks)
	}
	if m.Tick() != 10 {
		t.Errorf("tick = %d, want 10", m.Tick())
	}
	if m.Running() {
		t.Error("model still running after budget spent")
	}

	// A completed model ignores further calls.
	before := m.Env().Veg.Values()
	births, deaths := m.TotalBirths(), m.TotalDeaths()
	if m.Advance() {
		t.Error("Advance returned true after completion")
	}
	if m.Tick() != 10 {
		t.Errorf("tick moved to %d after completion", m.Tick())
	}
	if m.TotalBirths() != births || m.TotalDeaths() != deaths {
		t.Error("counters changed after completion")
	}
	for i, v := range m.Env().Veg.Values() {
		if v != before[i] {
			t.Fatalf("cell %d changed after completion", i)
		}
	}
}

func TestAdvanceGrowsUnvisitedCells(t *testing.T) {
	m, err := NewModel(testConfig())
	if err != nil {
		t.Fatalf("NewModel failed: %v", err)
	}
	// With nobody eating, every cell grows by exactly 1 per tick.
	m.Env().Pop.Live = nil

	before := m.Env().Veg.Values()
	m.Advance()
	after := m.Env().Veg.Values()

	for i := range before {
		if after[i] != before[i]+1 {
			t.Errorf("cell %d = %d, want %d", i, after[i], before[i]+1)
		}
	}
}

func TestDeterminism(t *testing.T) {
	run := func() ([]int, []int, []int) {
		m, err := NewModel(testConfig())
		if err != nil {
			t.Fatalf("NewModel failed: %v", err)
		}
		var births, deaths []int
		for running := true; running; {
			running = m.Advance()
			births = append(births, m.TickBirths())
			deaths = append(deaths, m.TickDeaths())
		}
		return births, deaths, m.Env().Veg.Values()
	}

	b1, d1, v1 := run()
	b2, d2, v2 := run()

	for i := range b1 {
		if b1[i] != b2[i] || d1[i] != d2[i] {
			t.Fatalf("tick %d diverged: births %d/%d, deaths %d/%d", i, b1[i], b2[i], d1[i], d2[i])
		}
	}
	for i := range v1 {
		if v1[i] != v2[i] {
			t.Fatalf("final grid diverged at cell %d: %d vs %d", i, v1[i], v2[i])
		}
	}
}

// emptyModel builds a model, then strips its population and zeroes its grid
// so tests can stage exact agent layouts.
func emptyModel(t *testing.T) *Model {
	t.Helper()
	m, err := NewModel(testConfig())
	if err != nil {
		t.Fatalf("NewModel failed: %v", err)
	}
	m.env.Pop = NewPopulation()
	fillGrid(t, m.env, 0)
	return m
}

func TestAdvanceSkipsSuccessorOfRemovedGrazer(t *testing.T) {
	m := emptyModel(t)
	env := m.env

	// a dies during eat (size 1, empty store, empty cell). Its removal
	// shifts b into the vacated slot, so the index pass skips b this tick
	// and continues with c.
	a := placeGrazer(env, 0, 0, 1, 0)
	b := placeGrazer(env, 1, 1, 5, 3)
	c := placeGrazer(env, 2, 2, 5, 3)

	m.Advance()

	if a.Size != 0 {
		t.Errorf("a.Size = %d, want 0 (dead)", a.Size)
	}
	if b.Store != 3 {
		t.Errorf("b.Store = %d, want untouched 3 (skipped)", b.Store)
	}
	if c.Store >= 3 {
		t.Errorf("c.Store = %d, want below 3 (acted)", c.Store)
	}
	if m.TickDeaths() != 1 || m.TotalDeaths() != 1 {
		t.Errorf("deaths = %d/%d, want 1/1", m.TickDeaths(), m.TotalDeaths())
	}
	if m.Grazers() != 2 {
		t.Errorf("live = %d, want 2", m.Grazers())
	}
}

func TestDeathIsFinal(t *testing.T) {
	m := emptyModel(t)
	a := placeGrazer(m.env, 0, 0, 1, 0)

	m.Advance()
	if m.TotalDeaths() != 1 {
		t.Fatalf("deaths = %d after fatal tick, want 1", m.TotalDeaths())
	}

	for m.Advance() {
	}
	if m.TotalDeaths() != 1 {
		t.Errorf("deaths = %d at end, want 1; a dead grazer contributed again", m.TotalDeaths())
	}
	for _, g := range m.env.Pop.Live {
		if g == a {
			t.Error("dead grazer reappeared in the live list")
		}
	}
}

func TestAdvanceMergesBirths(t *testing.T) {
	m := emptyModel(t)
	fillGrid(t, m.env, 5)
	placeGrazer(m.env, 1, 1, 9, 9)

	m.Advance()

	if m.TickBirths() != 1 || m.TotalBirths() != 1 {
		t.Errorf("births = %d/%d, want 1/1", m.TickBirths(), m.TotalBirths())
	}
	if m.Grazers() != 2 {
		t.Fatalf("live = %d after split, want 2", m.Grazers())
	}
	child := m.env.Pop.Live[1]
	if child.Size != 4 || child.Store != 3 {
		t.Errorf("child size = %d, store = %d, want 4, 3", child.Size, child.Store)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	m, err := NewModel(testConfig())
	if err != nil {
		t.Fatalf("NewModel failed: %v", err)
	}

	snap := m.Snapshot()
	if snap.Nrows != 10 || snap.Ncols != 10 {
		t.Errorf("snapshot dims = %dx%d, want 10x10", snap.Nrows, snap.Ncols)
	}
	if len(snap.Cells) != 100 {
		t.Fatalf("snapshot has %d cells, want 100", len(snap.Cells))
	}
	if len(snap.Grazers) != 20 {
		t.Errorf("snapshot has %d grazers, want 20", len(snap.Grazers))
	}

	snap.Cells[0] += 100
	if v, _ := m.Env().Veg.Get(0, 0); v == snap.Cells[0] {
		t.Error("mutating the snapshot reached the live grid")
	}
}
