package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"hrtoolbox/internal/models"
)

func TestNewNamingRequest(t *testing.T) {
	req := NewNamingRequest(sampleGroups())

	assert.Equal(t, 2, req.GroupCount)
	assert.Equal(t, [][]string{{"Alice", "Bob, Jr."}, {"Carol"}}, req.MemberNames)
}

func TestApplyTeamNames(t *testing.T) {
	t.Run("addressed groups only", func(t *testing.T) {
		groups := sampleGroups()
		groups[0].Name, groups[0].Motto = "Group 1", ""

		named, err := ApplyTeamNames(groups, []models.TeamName{
			{Index: 1, TeamName: "Comets", Motto: "Fast and bright"},
		})
		require.NoError(t, err)

		assert.Equal(t, "Group 1", named[0].Name)
		assert.Empty(t, named[0].Motto)
		assert.Equal(t, "Comets", named[1].Name)
		assert.Equal(t, "Fast and bright", named[1].Motto)
		assert.Equal(t, groups[1].Members, named[1].Members)
		assert.Equal(t, "Group 2", groups[1].Name, "input must not be modified")
	})

	t.Run("first suggestion per index wins", func(t *testing.T) {
		named, err := ApplyTeamNames(sampleGroups(), []models.TeamName{
			{Index: 0, TeamName: "First"},
			{Index: 0, TeamName: "Second"},
		})
		require.NoError(t, err)
		assert.Equal(t, "First", named[0].Name)
	})

	t.Run("out of range index", func(t *testing.T) {
		groups := sampleGroups()
		_, err := ApplyTeamNames(groups, []models.TeamName{
			{Index: 0, TeamName: "Valid"},
			{Index: 5, TeamName: "Nowhere"},
		})
		require.ErrorIs(t, err, models.ErrNamingService)
		assert.Equal(t, "Rockets", groups[0].Name)
	})

	t.Run("blank team name", func(t *testing.T) {
		_, err := ApplyTeamNames(sampleGroups(), []models.TeamName{{Index: 0}})
		require.ErrorIs(t, err, models.ErrNamingService)
	})
}
