package services

import (
	"time"

	"hrtoolbox/internal/models"
)

// EligibleCandidates returns the participants that may win the next draw.
// With allowRepeats every participant is eligible; otherwise previous
// winners are excluded by id.
func EligibleCandidates(participants []models.Participant, winners []models.WinnerRecord, allowRepeats bool) []models.Participant {
	if allowRepeats {
		out := make([]models.Participant, len(participants))
		copy(out, participants)
		return out
	}

	won := make(map[string]struct{}, len(winners))
	for _, w := range winners {
		won[w.Participant.ID] = struct{}{}
	}

	eligible := make([]models.Participant, 0, len(participants))
	for _, p := range participants {
		if _, ok := won[p.ID]; !ok {
			eligible = append(eligible, p)
		}
	}
	return eligible
}

// DrawOne picks one candidate uniformly at random.
func DrawOne(rnd Randomizer, candidates []models.Participant) (models.Participant, error) {
	if len(candidates) == 0 {
		return models.Participant{}, models.ErrEmptyPool
	}
	return candidates[rnd.IntN(len(candidates))], nil
}

// DrawEngine keeps the winner history of one session.
// It is not safe for concurrent use.
type DrawEngine struct {
	rnd          Randomizer
	now          func() time.Time
	winners      []models.WinnerRecord // most recent first
	allowRepeats bool
}

// NewDrawEngine creates a draw engine with an empty winner history.
func NewDrawEngine(rnd Randomizer, now func() time.Time) *DrawEngine {
	if rnd == nil {
		rnd = SystemRandom()
	}
	if now == nil {
		now = time.Now
	}
	return &DrawEngine{
		rnd:     rnd,
		now:     now,
		winners: make([]models.WinnerRecord, 0),
	}
}

// Draw selects the next winner from participants and records it.
// The history is left untouched when ErrEmptyPool is returned.
func (d *DrawEngine) Draw(participants []models.Participant) (models.WinnerRecord, error) {
	winner, err := DrawOne(d.rnd, d.Candidates(participants))
	if err != nil {
		return models.WinnerRecord{}, err
	}

	record := models.WinnerRecord{Participant: winner, DrawnAt: d.now()}
	d.winners = append([]models.WinnerRecord{record}, d.winners...)
	return record, nil
}

// Candidates returns the participants eligible for the next draw.
func (d *DrawEngine) Candidates(participants []models.Participant) []models.Participant {
	return EligibleCandidates(participants, d.winners, d.allowRepeats)
}

// Winners returns the winner history, most recent first.
func (d *DrawEngine) Winners() []models.WinnerRecord {
	out := make([]models.WinnerRecord, len(d.winners))
	copy(out, d.winners)
	return out
}

// Reset clears the winner history. The repeat setting is kept.
func (d *DrawEngine) Reset() {
	d.winners = make([]models.WinnerRecord, 0)
}

// AllowRepeats reports whether previous winners stay eligible.
func (d *DrawEngine) AllowRepeats() bool {
	return d.allowRepeats
}

// SetAllowRepeats toggles whether previous winners stay eligible.
func (d *DrawEngine) SetAllowRepeats(allow bool) {
	d.allowRepeats = allow
}
