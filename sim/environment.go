package sim

import (
	"fmt"

	"github.com/grazerlab/grazeland/config"
	"github.com/grazerlab/grazeland/grid"
)

// Environment owns the shared state the grazers act on: the vegetation grid,
// the random stream and the population. It is exclusively owned by a Model
// and only touched during a synchronous Advance call.
type Environment struct {
	Veg  *grid.Grid
	Rand *Stream
	Pop  *Population
}

// NewEnvironment builds the initial world from a validated configuration:
// the vegetation grid is seeded cell by cell, then the initial grazers are
// placed at the centres of randomly drawn cells. The draw order is fixed, so
// a seed fully determines the starting state.
func NewEnvironment(cfg *config.Config, rand *Stream) (*Environment, error) {
	veg, err := grid.New(cfg.Grid.Nrows, cfg.Grid.Ncols)
	if err != nil {
		return nil, fmt.Errorf("creating vegetation grid: %w", err)
	}
	veg.Seed(rand)

	env := &Environment{
		Veg:  veg,
		Rand: rand,
		Pop:  NewPopulation(),
	}
	for i := 0; i < cfg.Grazers.InitialCount; i++ {
		row := rand.Intn(cfg.Grid.Nrows)
		col := rand.Intn(cfg.Grid.Ncols)
		env.Pop.Add(NewGrazer(env, row, col, cfg.Grazers.MinSize, cfg.Grazers.MaxSize))
	}
	return env, nil
}
