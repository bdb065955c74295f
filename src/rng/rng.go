package rng

import (
	"math/rand"
	"time"
)

// Source produces uniform pseudo-random values. Two sources built with
// the same seed yield identical streams, which is what makes generation
// and the edit solver's tie-breaking reproducible under test.
type Source interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// Intn returns a uniform value in [0, n). n must be > 0.
	Intn(n int) int
}

type seeded struct {
	r *rand.Rand
}

// NewSeeded creates a deterministic source from an integer seed.
func NewSeeded(seed int64) Source {
	return &seeded{r: rand.New(rand.NewSource(seed))}
}

// NewTimeSeeded creates a source seeded from the wall clock, for ad-hoc
// operations such as appending bars to an existing series.
func NewTimeSeeded() Source {
	return NewSeeded(time.Now().UnixNano())
}

func (s *seeded) Float64() float64 { return s.r.Float64() }
func (s *seeded) Intn(n int) int   { return s.r.Intn(n) }

// Picker selects one index uniformly from a candidate set of size n.
// The edit solver takes a Picker so tests can force a specific choice.
type Picker func(n int) int

// SourcePicker adapts a Source into a Picker.
func SourcePicker(src Source) Picker {
	return func(n int) int { return src.Intn(n) }
}

// Fixed returns a Picker that always selects the same candidate slot,
// clamped into range. Test helper.
func Fixed(i int) Picker {
	return func(n int) int {
		if i < 0 {
			return 0
		}
		if i >= n {
			return n - 1
		}
		return i
	}
}
