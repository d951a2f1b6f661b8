package services

import (
	"math/rand/v2"

	"github.com/google/uuid"
)

// Randomizer is the source of uniform random indexes used by the draw and
// partition engines. IntN must return a value in [0, n) with every value
// equally likely, and may panic if n <= 0.
type Randomizer interface {
	IntN(n int) int
}

// IDFunc produces fresh opaque identifiers.
type IDFunc func() string

type systemRandom struct{}

// IntN uses the package-level math/rand/v2 generator, which is safe for
// concurrent use and seeded from the runtime.
func (systemRandom) IntN(n int) int {
	return rand.IntN(n)
}

// SystemRandom returns the default process-wide Randomizer.
func SystemRandom() Randomizer {
	return systemRandom{}
}

// NewUUID is the default IDFunc.
func NewUUID() string {
	return uuid.NewString()
}

// shuffle permutes s in place with Fisher-Yates.
func shuffle[T any](rnd Randomizer, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := rnd.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
