package services

import (
	"context"
	"fmt"

	"hrtoolbox/internal/models"
)

// NamingRequest is the payload sent to a GroupNamer.
type NamingRequest struct {
	GroupCount  int        `json:"groupCount"`
	MemberNames [][]string `json:"perGroupMemberNames"`
}

// NewNamingRequest builds the naming payload for groups.
func NewNamingRequest(groups []models.Group) NamingRequest {
	req := NamingRequest{
		GroupCount:  len(groups),
		MemberNames: make([][]string, len(groups)),
	}
	for i, g := range groups {
		req.MemberNames[i] = g.MemberNames()
	}
	return req
}

// GroupNamer suggests team names and mottos for groups, addressed by the
// group's position in the request.
type GroupNamer interface {
	SuggestNames(ctx context.Context, req NamingRequest) ([]models.TeamName, error)
}

// ApplyTeamNames returns a copy of groups with the suggestions applied.
// Groups not addressed by any suggestion keep their name and motto. A
// suggestion with an out-of-range index or a blank team name rejects the
// whole batch and groups are returned unchanged alongside the error.
func ApplyTeamNames(groups []models.Group, names []models.TeamName) ([]models.Group, error) {
	byIndex := make(map[int]models.TeamName, len(names))
	for _, n := range names {
		if n.Index < 0 || n.Index >= len(groups) {
			return groups, fmt.Errorf("%w: group index %d out of range", models.ErrNamingService, n.Index)
		}
		if n.TeamName == "" {
			return groups, fmt.Errorf("%w: empty team name for group %d", models.ErrNamingService, n.Index)
		}
		if _, dup := byIndex[n.Index]; !dup {
			byIndex[n.Index] = n
		}
	}

	out := make([]models.Group, len(groups))
	for i, g := range groups {
		if n, ok := byIndex[i]; ok {
			g.Name = n.TeamName
			g.Motto = n.Motto
		}
		out[i] = g
	}
	return out, nil
}
