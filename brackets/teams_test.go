package brackets

import (
	"fmt"
	"testing"

	"github.com/Dosada05/championship/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func player(id int, first, last, league, club string) models.Player {
	return models.Player{
		ID:        id,
		FirstName: first,
		LastName:  last,
		Email:     fmt.Sprintf("%s.%s@example.com", first, last),
		Address:   "1 Main St",
		League:    league,
		Club:      club,
		Code:      fmt.Sprintf("c%04d", id),
	}
}

func TestBuildTeams_GroupsByTrimmedClub(t *testing.T) {
	players := []models.Player{
		player(1, "John", "Smith", "Premier League", "Arsenal"),
		player(2, "Emma", "Johnson", "Premier League", " Liverpool "),
		player(3, "Mike", "Brown", "Premier League", "Arsenal  "),
		player(4, "Sara", "Lee", "La Liga", "Barcelona"),
	}

	teams := BuildTeams(players)

	require.Len(t, teams, 3)
	assert.Equal(t, "Arsenal", teams[0].Club)
	assert.Equal(t, "Liverpool", teams[1].Club)
	assert.Equal(t, "Barcelona", teams[2].Club)

	require.Len(t, teams[0].Players, 2)
	assert.Equal(t, 1, teams[0].Players[0].ID)
	assert.Equal(t, 3, teams[0].Players[1].ID)
	assert.Equal(t, "Premier League", teams[0].League)
	assert.Equal(t, "La Liga", teams[2].League)

	for _, team := range teams {
		for _, m := range team.Players {
			assert.Equal(t, team.Club, m.Club)
		}
	}
}

func TestBuildTeams_ClubMatchIsCaseSensitive(t *testing.T) {
	teams := BuildTeams([]models.Player{
		player(1, "A", "A", "L", "Arsenal"),
		player(2, "B", "B", "L", "arsenal"),
	})

	require.Len(t, teams, 2)
	assert.Equal(t, "Arsenal", teams[0].Club)
	assert.Equal(t, "arsenal", teams[1].Club)
}

func TestBuildTeams_SkipsIncompletePlayers(t *testing.T) {
	noEmail := player(2, "No", "Email", "L", "Chelsea")
	noEmail.Email = "  "
	noCode := player(3, "No", "Code", "L", "Chelsea")
	noCode.Code = ""
	noClub := player(4, "No", "Club", "L", "   ")
	noID := player(0, "No", "Id", "L", "Chelsea")

	teams := BuildTeams([]models.Player{
		player(1, "John", "Smith", "L", "Arsenal"),
		noEmail, noCode, noClub, noID,
	})

	require.Len(t, teams, 1)
	assert.Equal(t, "Arsenal", teams[0].Club)
}

func TestBuildTeams_TrimsMemberNames(t *testing.T) {
	teams := BuildTeams([]models.Player{player(7, "  Ana ", " Diaz", " Serie A ", "Juventus")})

	require.Len(t, teams, 1)
	assert.Equal(t, Member{ID: 7, FirstName: "Ana", LastName: "Diaz", League: "Serie A", Club: "Juventus"}, teams[0].Players[0])
	assert.Equal(t, "Serie A", teams[0].League)
}

func TestBuildTeams_IsIdempotent(t *testing.T) {
	players := []models.Player{
		player(1, "John", "Smith", "L1", "Arsenal"),
		player(2, "Emma", "Johnson", "L1", "Liverpool"),
		player(3, "Mike", "Brown", "L1", "Arsenal"),
	}

	assert.Equal(t, BuildTeams(players), BuildTeams(players))
}

func TestBuildTeams_Empty(t *testing.T) {
	assert.Empty(t, BuildTeams(nil))
	assert.NotNil(t, BuildTeams(nil))
}

func TestPlayerCount(t *testing.T) {
	teams := BuildTeams([]models.Player{
		player(1, "A", "A", "L", "X"),
		player(2, "B", "B", "L", "X"),
		player(3, "C", "C", "L", "Y"),
	})
	assert.Equal(t, 3, PlayerCount(teams))
}
