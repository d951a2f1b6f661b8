package services

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"hrtoolbox/internal/models"
)

func roster(t *testing.T, n ...string) []models.Participant {
	t.Helper()
	r := NewRegistry(sequentialIDs("p"))
	r.Add(n)
	return r.Participants()
}

func TestEligibleCandidates(t *testing.T) {
	pool := roster(t, "A", "B", "C")
	winners := []models.WinnerRecord{{Participant: pool[1]}}

	assert.Equal(t, []string{"A", "C"}, names(EligibleCandidates(pool, winners, false)))
	assert.Equal(t, []string{"A", "B", "C"}, names(EligibleCandidates(pool, winners, true)))
	assert.Equal(t, pool, EligibleCandidates(pool, nil, false))
}

func TestDrawOne(t *testing.T) {
	t.Run("empty candidates", func(t *testing.T) {
		_, err := DrawOne(&fixedRandom{values: []int{0}}, nil)
		require.ErrorIs(t, err, models.ErrEmptyPool)
	})

	t.Run("uses the random index", func(t *testing.T) {
		pool := roster(t, "A", "B", "C")
		p, err := DrawOne(&fixedRandom{values: []int{2}}, pool)
		require.NoError(t, err)
		assert.Equal(t, "C", p.Name)
	})

	t.Run("roughly uniform", func(t *testing.T) {
		pool := roster(t, "A", "B", "C", "D")
		rnd := rand.New(rand.NewPCG(1, 2))
		counts := map[string]int{}
		const draws = 40000
		for range draws {
			p, err := DrawOne(rnd, pool)
			require.NoError(t, err)
			counts[p.Name]++
		}
		for _, name := range []string{"A", "B", "C", "D"} {
			assert.InDelta(t, draws/4, counts[name], draws*0.02, "name %s", name)
		}
	})
}

func TestDrawEngine_Draw(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	clock := func() time.Time { return at }

	t.Run("without repeats never returns a winner twice", func(t *testing.T) {
		pool := roster(t, "A", "B", "C", "D", "E")
		d := NewDrawEngine(rand.New(rand.NewPCG(7, 7)), clock)

		seen := map[string]bool{}
		for k := 1; k <= len(pool); k++ {
			rec, err := d.Draw(pool)
			require.NoError(t, err)
			require.False(t, seen[rec.Participant.ID], "repeat winner %s", rec.Participant.Name)
			seen[rec.Participant.ID] = true
			assert.Len(t, d.Candidates(pool), len(pool)-k)
			assert.Equal(t, at, rec.DrawnAt)
		}

		_, err := d.Draw(pool)
		require.ErrorIs(t, err, models.ErrEmptyPool)
		assert.Len(t, d.Winners(), len(pool), "failed draw must not change winners")
	})

	t.Run("two participant pool", func(t *testing.T) {
		pool := roster(t, "A", "B")
		d := NewDrawEngine(&fixedRandom{values: []int{0}}, clock)

		first, err := d.Draw(pool)
		require.NoError(t, err)
		assert.Equal(t, "A", first.Participant.Name)

		candidates := d.Candidates(pool)
		require.Len(t, candidates, 1)
		assert.Equal(t, "B", candidates[0].Name)

		second, err := d.Draw(pool)
		require.NoError(t, err)
		assert.Equal(t, "B", second.Participant.Name)

		_, err = d.Draw(pool)
		require.ErrorIs(t, err, models.ErrEmptyPool)
	})

	t.Run("history is most recent first", func(t *testing.T) {
		pool := roster(t, "A", "B", "C")
		d := NewDrawEngine(&fixedRandom{values: []int{0}}, clock)
		for range 3 {
			_, err := d.Draw(pool)
			require.NoError(t, err)
		}

		var got []string
		for _, w := range d.Winners() {
			got = append(got, w.Participant.Name)
		}
		assert.Equal(t, []string{"C", "B", "A"}, got)
	})

	t.Run("repeats keep everybody eligible", func(t *testing.T) {
		pool := roster(t, "A", "B")
		d := NewDrawEngine(&fixedRandom{values: []int{0}}, clock)
		d.SetAllowRepeats(true)

		for range 5 {
			rec, err := d.Draw(pool)
			require.NoError(t, err)
			assert.Equal(t, "A", rec.Participant.Name)
		}
		assert.Len(t, d.Winners(), 5)
		assert.Len(t, d.Candidates(pool), 2)
	})

	t.Run("reset restores the pool", func(t *testing.T) {
		pool := roster(t, "A")
		d := NewDrawEngine(nil, clock)
		_, err := d.Draw(pool)
		require.NoError(t, err)

		d.Reset()

		assert.Empty(t, d.Winners())
		assert.Len(t, d.Candidates(pool), 1)
	})

	t.Run("empty registry", func(t *testing.T) {
		d := NewDrawEngine(nil, clock)
		_, err := d.Draw(nil)
		require.ErrorIs(t, err, models.ErrEmptyPool)
		assert.Empty(t, d.Winners())
	})
}
