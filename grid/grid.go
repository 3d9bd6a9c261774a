// Package grid provides the dense vegetation raster the simulation runs on.
package grid

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrOutOfRange reports an attempt to address a cell outside the raster or to
// store a negative biomass value. It is a contract violation, not a runtime
// condition the engine recovers from.
var ErrOutOfRange = errors.New("grid: out of range")

// SeedBound is the exclusive upper bound for initial cell values.
const SeedBound = 9

// IntSource produces uniformly distributed integers in [0, n).
// Satisfied by sim.Stream and by *rand.Rand.
type IntSource interface {
	Intn(n int) int
}

// Grid is a dense raster of non-negative integer biomass values mapped onto
// the coordinate rectangle [0,ncols] x [0,nrows] with unit cells. The cell at
// (row, col) covers [col,col+1) x [row,row+1); its centre is (col+0.5, row+0.5).
type Grid struct {
	nrows, ncols int
	cells        []int
}

// New creates an empty grid. Dimensions must be positive.
func New(nrows, ncols int) (*Grid, error) {
	if nrows <= 0 || ncols <= 0 {
		return nil, fmt.Errorf("grid: dimensions %dx%d must be positive", nrows, ncols)
	}
	return &Grid{
		nrows: nrows,
		ncols: ncols,
		cells: make([]int, nrows*ncols),
	}, nil
}

// Nrows returns the number of rows.
func (g *Grid) Nrows() int { return g.nrows }

// Ncols returns the number of columns.
func (g *Grid) Ncols() int { return g.ncols }

// XMin returns the minimum x coordinate.
func (g *Grid) XMin() float64 { return 0 }

// XMax returns the maximum x coordinate.
func (g *Grid) XMax() float64 { return float64(g.ncols) }

// YMin returns the minimum y coordinate.
func (g *Grid) YMin() float64 { return 0 }

// YMax returns the maximum y coordinate.
func (g *Grid) YMax() float64 { return float64(g.nrows) }

// Seed fills every cell with a random value in [0, SeedBound).
func (g *Grid) Seed(r IntSource) {
	for i := range g.cells {
		g.cells[i] = r.Intn(SeedBound)
	}
}

// CellAt resolves a continuous coordinate to the containing cell. It is
// defined for every point of the inclusive rectangle: coordinates on the max
// edge resolve to the last row/column.
func (g *Grid) CellAt(x, y float64) (row, col int) {
	col = int(x)
	if col < 0 {
		col = 0
	}
	if col >= g.ncols {
		col = g.ncols - 1
	}
	row = int(y)
	if row < 0 {
		row = 0
	}
	if row >= g.nrows {
		row = g.nrows - 1
	}
	return row, col
}

// CellCenter returns the coordinates of the centre of the cell at (row, col).
func (g *Grid) CellCenter(row, col int) (x, y float64) {
	return float64(col) + 0.5, float64(row) + 0.5
}

// Get returns the biomass value at (row, col).
func (g *Grid) Get(row, col int) (int, error) {
	if !g.inBounds(row, col) {
		return 0, fmt.Errorf("%w: get (%d,%d) on %dx%d grid", ErrOutOfRange, row, col, g.nrows, g.ncols)
	}
	return g.cells[row*g.ncols+col], nil
}

// Set stores a biomass value at (row, col). Negative values are rejected.
func (g *Grid) Set(row, col, v int) error {
	if !g.inBounds(row, col) {
		return fmt.Errorf("%w: set (%d,%d) on %dx%d grid", ErrOutOfRange, row, col, g.nrows, g.ncols)
	}
	if v < 0 {
		return fmt.Errorf("%w: set (%d,%d) to negative value %d", ErrOutOfRange, row, col, v)
	}
	g.cells[row*g.ncols+col] = v
	return nil
}

// Add adds delta to the cell at (row, col). The resulting value must stay
// non-negative.
func (g *Grid) Add(row, col, delta int) error {
	v, err := g.Get(row, col)
	if err != nil {
		return err
	}
	return g.Set(row, col, v+delta)
}

// GrowAll adds 1 to every cell. Growth only increases values, so it has no
// failure mode.
func (g *Grid) GrowAll() {
	for i := range g.cells {
		g.cells[i]++
	}
}

// Values returns a copy of the cell values in row-major order.
func (g *Grid) Values() []int {
	out := make([]int, len(g.cells))
	copy(out, g.cells)
	return out
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.nrows && col >= 0 && col < g.ncols
}

// Summary holds aggregate statistics over the grid values.
type Summary struct {
	Min   int
	Max   int
	Total int
	Mean  float64
	Std   float64
}

// Stats computes aggregate statistics over all cells.
func (g *Grid) Stats() Summary {
	vals := make([]float64, len(g.cells))
	total := 0
	for i, v := range g.cells {
		vals[i] = float64(v)
		total += v
	}
	return Summary{
		Min:   int(floats.Min(vals)),
		Max:   int(floats.Max(vals)),
		Total: total,
		Mean:  stat.Mean(vals, nil),
		Std:   stat.StdDev(vals, nil),
	}
}

// Rescale maps the current cell values onto [lo, hi] and returns them in
// row-major order, clamped to [0, 255]. It is read-only with respect to the
// grid; display collaborators use it to build greyscale images. A flat grid
// maps every cell to lo.
func (g *Grid) Rescale(lo, hi int) []int {
	s := g.Stats()
	rangev := s.Max - s.Min
	out := make([]int, len(g.cells))
	for i, v := range g.cells {
		r := lo
		if rangev > 0 {
			r = int(float64(v-s.Min)/float64(rangev)*float64(hi-lo)) + lo
		}
		if r < 0 {
			r = 0
		}
		if r > 255 {
			r = 255
		}
		out[i] = r
	}
	return out
}
