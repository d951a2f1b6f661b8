package services

import (
	"strings"

	"hrtoolbox/internal/models"
)

// Registry is the ordered participant roster of one session.
// It is not safe for concurrent use; the owning session serializes access.
type Registry struct {
	participants []models.Participant
	ids          map[string]struct{}
	newID        IDFunc
}

// NewRegistry creates an empty registry that mints ids with newID.
// A nil newID falls back to random UUIDs.
func NewRegistry(newID IDFunc) *Registry {
	if newID == nil {
		newID = NewUUID
	}
	return &Registry{
		participants: make([]models.Participant, 0),
		ids:          make(map[string]struct{}),
		newID:        newID,
	}
}

// Add appends one participant per non-blank name, in input order, and
// returns the appended participants. Names are trimmed; blank names are
// skipped.
func (r *Registry) Add(names []string) []models.Participant {
	added := make([]models.Participant, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		p := models.Participant{ID: r.freshID(), Name: name}
		r.ids[p.ID] = struct{}{}
		added = append(added, p)
	}
	r.participants = append(r.participants, added...)
	return added
}

func (r *Registry) freshID() string {
	id := r.newID()
	for {
		if _, taken := r.ids[id]; !taken {
			return id
		}
		id = r.newID()
	}
}

// Remove deletes the participant with the given id and reports whether it
// was present.
func (r *Registry) Remove(id string) bool {
	if _, ok := r.ids[id]; !ok {
		return false
	}
	for i, p := range r.participants {
		if p.ID == id {
			r.participants = append(r.participants[:i:i], r.participants[i+1:]...)
			break
		}
	}
	delete(r.ids, id)
	return true
}

// Clear empties the registry.
func (r *Registry) Clear() {
	r.participants = make([]models.Participant, 0)
	r.ids = make(map[string]struct{})
}

// Deduplicate keeps the first participant of every exact name and drops
// the later ones. It returns the number of participants removed.
func (r *Registry) Deduplicate() int {
	seen := make(map[string]struct{}, len(r.participants))
	kept := make([]models.Participant, 0, len(r.participants))
	for _, p := range r.participants {
		if _, dup := seen[p.Name]; dup {
			delete(r.ids, p.ID)
			continue
		}
		seen[p.Name] = struct{}{}
		kept = append(kept, p)
	}
	removed := len(r.participants) - len(kept)
	r.participants = kept
	return removed
}

// DuplicateNameCounts returns how often each name occurs.
func (r *Registry) DuplicateNameCounts() map[string]int {
	counts := make(map[string]int, len(r.participants))
	for _, p := range r.participants {
		counts[p.Name]++
	}
	return counts
}

// HasDuplicates reports whether any name occurs more than once.
func (r *Registry) HasDuplicates() bool {
	for _, n := range r.DuplicateNameCounts() {
		if n > 1 {
			return true
		}
	}
	return false
}

// Participants returns a copy of the roster in insertion order.
func (r *Registry) Participants() []models.Participant {
	out := make([]models.Participant, len(r.participants))
	copy(out, r.participants)
	return out
}

// Len returns the number of participants.
func (r *Registry) Len() int {
	return len(r.participants)
}
