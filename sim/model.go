// Package sim implements the grazer simulation engine: a bounded raster of
// regrowing vegetation grazed by a population of mobile, reproducing,
// starving agents, advanced one discrete tick at a time.
package sim

import (
	"fmt"

	"github.com/grazerlab/grazeland/config"
)

// Model is the simulation controller. It owns the environment and the
// configuration, drives one tick per Advance call and keeps cumulative
// birth/death statistics.
//
// A Model is single-threaded: Advance runs to completion synchronously and
// must not be called concurrently, and callers must not read state from
// another goroutine while a call is in flight.
type Model struct {
	cfg *config.Config
	env *Environment

	tick        int
	totalBirths int
	totalDeaths int
}

// NewModel validates the configuration and builds the initial world.
// An invalid configuration fails here; the simulation is never started.
func NewModel(cfg *config.Config) (*Model, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	env, err := NewEnvironment(cfg, NewStream(cfg.Simulation.RandomSeed))
	if err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	return &Model{cfg: cfg, env: env}, nil
}

// Advance runs one tick: every live grazer acts, newborns are merged,
// statistics accumulate and the vegetation grows. It returns whether further
// ticks remain. Once the iteration budget is spent, Advance is a no-op that
// returns false.
//
// The live list is iterated by a live-recomputed index. When a grazer dies
// mid-pass its removal shifts the list, so the successor that slides into
// the vacated slot is skipped for the rest of the tick. That matches the
// reference model and is pinned by tests; do not switch to a snapshot
// iteration without deciding to change observable behavior.
func (m *Model) Advance() bool {
	if m.tick >= m.cfg.Simulation.Iterations {
		return false
	}
	pop := m.env.Pop
	pop.BeginTick()
	for j := 0; j < len(pop.Live); j++ {
		pop.Live[j].act(m.env)
	}
	pop.MergeBorn()
	m.totalDeaths += len(pop.Died)
	m.totalBirths += len(pop.Born)
	m.env.Veg.GrowAll()
	m.tick++
	return m.tick < m.cfg.Simulation.Iterations
}

// Tick returns the current tick index.
func (m *Model) Tick() int { return m.tick }

// Running reports whether ticks remain in the budget.
func (m *Model) Running() bool { return m.tick < m.cfg.Simulation.Iterations }

// TotalBirths returns the cumulative number of births.
func (m *Model) TotalBirths() int { return m.totalBirths }

// TotalDeaths returns the cumulative number of deaths.
func (m *Model) TotalDeaths() int { return m.totalDeaths }

// TickBirths returns the number of births during the last completed tick.
func (m *Model) TickBirths() int { return len(m.env.Pop.Born) }

// TickDeaths returns the number of deaths during the last completed tick.
func (m *Model) TickDeaths() int { return len(m.env.Pop.Died) }

// Grazers returns the current number of live grazers.
func (m *Model) Grazers() int { return m.env.Pop.Size() }

// Env exposes the environment for tests and in-process collaborators.
// External readers should prefer Snapshot.
func (m *Model) Env() *Environment { return m.env }
