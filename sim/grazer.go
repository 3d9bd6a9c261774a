package sim

// Grazer is a mobile consumer with a continuous position, a size and a store
// of eaten biomass. Each tick it executes the fixed behavior sequence
// eat, grow, move. A grazer never inspects another grazer's state.
//
// Store is conceptually bounded by size but is a plain signed int: movement
// costs are not floor-clamped, so store can go transiently negative.
type Grazer struct {
	X, Y float64

	MinSize int
	MaxSize int
	Size    int
	Store   int
}

// NewGrazer creates a grazer at the centre of cell (row, col) with a random
// size in [minSize, maxSize) and a random store in [size/2, size).
func NewGrazer(env *Environment, row, col, minSize, maxSize int) *Grazer {
	x, y := env.Veg.CellCenter(row, col)
	size := env.Rand.IntnRange(minSize, maxSize)
	return &Grazer{
		X:       x,
		Y:       y,
		MinSize: minSize,
		MaxSize: maxSize,
		Size:    size,
		Store:   env.Rand.IntnRange(size/2, size),
	}
}

// act runs one tick of behavior. An agent that dies while eating takes no
// further action this tick.
func (g *Grazer) act(env *Environment) {
	if died := g.eat(env); died {
		return
	}
	g.grow(env)
	g.move(env)
}

// eat consumes biomass from the current cell up to the grazer's remaining
// capacity. With nothing to eat the grazer draws down its store, or shrinks
// once the store is empty; shrinking to size 0 is death. Returns whether the
// grazer died.
func (g *Grazer) eat(env *Environment) bool {
	row, col := env.Veg.CellAt(g.X, g.Y)
	v, err := env.Veg.Get(row, col)
	if err != nil {
		panic(err)
	}
	capacity := g.Size - g.Store
	if v > 0 {
		if v >= capacity {
			if err := env.Veg.Set(row, col, v-capacity); err != nil {
				panic(err)
			}
			g.Store += capacity
		} else {
			if err := env.Veg.Set(row, col, 0); err != nil {
				panic(err)
			}
			g.Store += v
		}
		return false
	}
	if g.Store > 0 {
		g.Store--
		return false
	}
	g.Size--
	if g.Size == 0 {
		env.Pop.Remove(g)
		return true
	}
	return false
}

// grow handles reproduction and growth. A grazer at maximum size with a full
// store splits: parent and offspring both come out with the halved size and
// third-ed store. The growth check runs after the split, so a store that now
// equals the size grows the grazer in the same call.
func (g *Grazer) grow(env *Environment) {
	if g.Size == g.MaxSize && g.Store == g.MaxSize {
		g.Size /= 2
		g.Store /= 3
		env.Pop.StageBirth(&Grazer{
			X:       g.X,
			Y:       g.Y,
			MinSize: g.MinSize,
			MaxSize: g.MaxSize,
			Size:    g.Size,
			Store:   g.Store,
		})
	}
	if g.Store == g.Size {
		g.Size++
		g.Store /= 2
	}
}

// move shifts the grazer by one unit in each axis with probability 3/10 per
// direction, clamped to the grid rectangle. Any movement costs one store,
// even a movement absorbed by the clamp.
func (g *Grazer) move(env *Environment) {
	rx := env.Rand.Intn(10)
	if rx < 3 {
		g.X--
		if g.X < env.Veg.XMin() {
			g.X = env.Veg.XMin()
		}
		g.Store--
	} else if rx > 6 {
		g.X++
		if g.X > env.Veg.XMax() {
			g.X = env.Veg.XMax()
		}
		g.Store--
	}
	ry := env.Rand.Intn(10)
	if ry < 3 {
		g.Y--
		if g.Y < env.Veg.YMin() {
			g.Y = env.Veg.YMin()
		}
		g.Store--
	} else if ry > 6 {
		g.Y++
		if g.Y > env.Veg.YMax() {
			g.Y = env.Veg.YMax()
		}
		g.Store--
	}
}
