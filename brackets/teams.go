package brackets

import (
	"strings"

	"github.com/Dosada05/championship/models"
)

// BuildTeams groups complete registrations by club. Clubs are matched on the
// trimmed name, case-sensitively, and teams keep first-appearance order.
// Incomplete players are skipped silently.
func BuildTeams(players []models.Player) []Team {
	teams := make([]Team, 0)
	byClub := make(map[string]int)

	for _, p := range players {
		if !p.IsComplete() {
			continue
		}
		club := strings.TrimSpace(p.Club)

		idx, ok := byClub[club]
		if !ok {
			idx = len(teams)
			byClub[club] = idx
			teams = append(teams, Team{Club: club, Players: make([]Member, 0, 1)})
		}

		teams[idx].Players = append(teams[idx].Players, Member{
			ID:        p.ID,
			FirstName: strings.TrimSpace(p.FirstName),
			LastName:  strings.TrimSpace(p.LastName),
			League:    strings.TrimSpace(p.League),
			Club:      club,
		})
	}

	for i := range teams {
		teams[i].League = teams[i].Players[0].League
	}
	return teams
}

// PlayerCount sums the roster sizes of the given teams.
func PlayerCount(teams []Team) int {
	total := 0
	for _, t := range teams {
		total += len(t.Players)
	}
	return total
}
