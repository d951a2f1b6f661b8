package services

import (
	"fmt"

	"hrtoolbox/internal/models"
)

// Partitioner splits a roster into randomly composed groups.
type Partitioner struct {
	rnd   Randomizer
	newID IDFunc
}

// NewPartitioner creates a Partitioner. Nil arguments fall back to the
// system randomizer and random UUIDs.
func NewPartitioner(rnd Randomizer, newID IDFunc) *Partitioner {
	if rnd == nil {
		rnd = SystemRandom()
	}
	if newID == nil {
		newID = NewUUID
	}
	return &Partitioner{rnd: rnd, newID: newID}
}

// Partition shuffles participants and cuts them into consecutive groups of
// groupSize. The last group holds the remainder and is never empty.
// Groups are named "Group 1", "Group 2", ... in output order.
func (p *Partitioner) Partition(participants []models.Participant, groupSize int) ([]models.Group, error) {
	if groupSize < 1 {
		return nil, models.ErrInvalidGroupSize
	}

	shuffled := make([]models.Participant, len(participants))
	copy(shuffled, participants)
	shuffle(p.rnd, shuffled)

	groups := make([]models.Group, 0, (len(shuffled)+groupSize-1)/groupSize)
	for start := 0; start < len(shuffled); start += groupSize {
		end := min(start+groupSize, len(shuffled))
		members := make([]models.Participant, end-start)
		copy(members, shuffled[start:end])
		groups = append(groups, models.Group{
			ID:      p.newID(),
			Name:    fmt.Sprintf("Group %d", len(groups)+1),
			Members: members,
		})
	}
	return groups, nil
}
