package models

import "time"

// Participant represents a person on the roster.
// Two participants may share a Name; ID is the identity.
type Participant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// WinnerRecord stores the outcome of a single draw.
type WinnerRecord struct {
	Participant Participant `json:"participant"`
	DrawnAt     time.Time   `json:"drawnAt"`
}

// Group is one team produced by a partition.
// Members is a snapshot taken when the group was formed.
type Group struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Motto   string        `json:"motto,omitempty"`
	Members []Participant `json:"members"`
}

// MemberNames returns the display names of the group members in order.
func (g Group) MemberNames() []string {
	names := make([]string, len(g.Members))
	for i, m := range g.Members {
		names[i] = m.Name
	}
	return names
}

// TeamName is a naming suggestion for the group at position Index.
type TeamName struct {
	Index    int    `json:"index"`
	TeamName string `json:"teamName"`
	Motto    string `json:"motto"`
}
