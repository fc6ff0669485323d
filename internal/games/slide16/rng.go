package slide16

import "math/rand"

// Source supplies all randomness the board engine consumes. Abstracting it
// behind an interface keeps the engine deterministic under a fixed seed and
// lets tests script exact outcomes.
type Source interface {
	// Index returns a uniform random index in [0, n). Requires n > 0.
	Index(n int) int

	// IndexPair returns two distinct uniform random indices in [0, n),
	// chosen without replacement. Requires n > 1.
	IndexPair(n int) (int, int)

	// SpawnFour reports whether the next spawned tile should be a 4
	// rather than a 2. The production source returns true with
	// probability 0.10.
	SpawnFour() bool
}

type mathSource struct {
	rng        *rand.Rand
	fourChance float64
}

// NewMathSource returns a seeded math/rand-backed Source with the classic
// 1-in-10 odds of spawning a 4.
func NewMathSource(seed int64) Source {
	return NewBiasedSource(seed, 0.10)
}

// NewBiasedSource returns a seeded Source with custom four-spawn odds.
// Campaign levels use this to tighten spawns on later levels.
func NewBiasedSource(seed int64, fourChance float64) Source {
	return newMathSource(seed, fourChance)
}

func newMathSource(seed int64, fourChance float64) *mathSource {
	return &mathSource{
		rng:        rand.New(rand.NewSource(seed)),
		fourChance: fourChance,
	}
}

func (s *mathSource) Index(n int) int {
	return s.rng.Intn(n)
}

func (s *mathSource) IndexPair(n int) (int, int) {
	first := s.rng.Intn(n)
	second := s.rng.Intn(n - 1)
	if second >= first {
		second++
	}
	return first, second
}

func (s *mathSource) SpawnFour() bool {
	return s.rng.Float64() < s.fourChance
}
