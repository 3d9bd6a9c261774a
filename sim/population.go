package sim

// Population holds the live grazers plus the per-tick staging lists for
// agents born and agents that died during the current tick. Live preserves
// insertion order so iteration is deterministic.
type Population struct {
	Live []*Grazer
	Born []*Grazer
	Died []*Grazer
}

// NewPopulation creates an empty population.
func NewPopulation() *Population {
	return &Population{}
}

// BeginTick clears the staging lists for a new tick.
func (p *Population) BeginTick() {
	p.Born = p.Born[:0]
	p.Died = p.Died[:0]
}

// Add appends a grazer to the live list.
func (p *Population) Add(g *Grazer) {
	p.Live = append(p.Live, g)
}

// StageBirth stages a newborn for merging after all agents have acted.
func (p *Population) StageBirth(g *Grazer) {
	p.Born = append(p.Born, g)
}

// Remove takes a grazer out of the live list and stages it as dead. The live
// list shifts in place, so a removal during an index-based pass vacates the
// slot for the successor.
func (p *Population) Remove(g *Grazer) {
	for i, cur := range p.Live {
		if cur == g {
			p.Live = append(p.Live[:i], p.Live[i+1:]...)
			break
		}
	}
	p.Died = append(p.Died, g)
}

// MergeBorn appends every staged newborn to the live list.
func (p *Population) MergeBorn() {
	p.Live = append(p.Live, p.Born...)
}

// Size returns the number of live grazers.
func (p *Population) Size() int {
	return len(p.Live)
}
