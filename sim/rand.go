package sim

import "math/rand"

// Stream is the single pseudo-random source behind every stochastic decision
// in the engine. Seeding it once at setup makes a run fully reproducible.
type Stream struct {
	r *rand.Rand
}

// NewStream creates a deterministic stream from the given seed.
func NewStream(seed int64) *Stream {
	return &Stream{r: rand.New(rand.NewSource(seed))}
}

// Intn returns a uniformly distributed int in [0, n). Panics if n <= 0.
func (s *Stream) Intn(n int) int {
	return s.r.Intn(n)
}

// IntnRange returns a uniformly distributed int in [low, high).
// Panics if low >= high.
func (s *Stream) IntnRange(low, high int) int {
	return low + s.r.Intn(high-low)
}
