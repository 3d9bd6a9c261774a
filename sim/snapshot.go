package sim

// Snapshot is a read-only copy of the observable simulation state, taken
// between ticks for display and export collaborators. Mutating a snapshot
// never affects the running model.
type Snapshot struct {
	Tick        int
	TotalBirths int
	TotalDeaths int

	Nrows int
	Ncols int
	Cells []int

	Grazers []GrazerState
}

// GrazerState is one live grazer's externally visible state.
type GrazerState struct {
	X, Y  float64
	Size  int
	Store int
}

// Snapshot copies the current tick index, counters, grid contents and live
// grazer states. Must not be called while Advance is in flight.
func (m *Model) Snapshot() Snapshot {
	s := Snapshot{
		Tick:        m.tick,
		TotalBirths: m.totalBirths,
		TotalDeaths: m.totalDeaths,
		Nrows:       m.env.Veg.Nrows(),
		Ncols:       m.env.Veg.Ncols(),
		Cells:       m.env.Veg.Values(),
		Grazers:     make([]GrazerState, 0, m.env.Pop.Size()),
	}
	for _, g := range m.env.Pop.Live {
		s.Grazers = append(s.Grazers, GrazerState{X: g.X, Y: g.Y, Size: g.Size, Store: g.Store})
	}
	return s
}
