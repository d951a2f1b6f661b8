package services

import (
	"fmt"

	"hrtoolbox/internal/models"
)

// fixedRandom replays values, reduced modulo n.
type fixedRandom struct {
	values []int
	i      int
}

func (f *fixedRandom) IntN(n int) int {
	v := f.values[f.i%len(f.values)] % n
	f.i++
	return v
}

// identityRandom always picks the highest index, which makes the
// Fisher-Yates shuffle a no-op.
type identityRandom struct{}

func (identityRandom) IntN(n int) int { return n - 1 }

func sequentialIDs(prefix string) IDFunc {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func names(ps []models.Participant) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Name
	}
	return out
}

func ids(ps []models.Participant) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}
