package des

import (
	"math"
	"math/rand/v2"
)

// expSource draws exponential variates from a generator owned by one run.
// Nothing here touches the package-level math/rand state.
type expSource struct {
	rng *rand.Rand
}

func newExpSource(seed int64) *expSource {
	s := uint64(seed)
	return &expSource{rng: rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))}
}

// Exp returns an Exp(rate) variate by inverse transform, -ln(u)/rate
func (s *expSource) Exp(rate float64) float64 {
	u := s.rng.Float64()
	if u == 0.0 {
		u = math.SmallestNonzeroFloat64
	}
	return -math.Log(u) / rate
}
