package brackets

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// FilterSchedule keeps the matches where the query matches a club, a league,
// or a player name of either team. Rounds left without matches are dropped.
// An empty query returns the schedule as is.
func FilterSchedule(schedule *Schedule, query string) *Schedule {
	query = strings.TrimSpace(query)
	if query == "" || schedule == nil {
		return schedule
	}

	filtered := &Schedule{Rounds: []Round{}, Pairings: []Match{}}
	for _, round := range schedule.Rounds {
		matches := make([]Match, 0, len(round.Matches))
		for _, m := range round.Matches {
			if teamMatches(query, m.Team1) || (m.Team2 != nil && teamMatches(query, *m.Team2)) {
				matches = append(matches, m)
			}
		}
		if len(matches) == 0 {
			continue
		}
		filtered.Rounds = append(filtered.Rounds, Round{Round: round.Round, Matchday: round.Matchday, Matches: matches})
		filtered.Pairings = append(filtered.Pairings, matches...)
	}
	filtered.Total = len(filtered.Pairings)
	filtered.TotalRounds = len(filtered.Rounds)
	return filtered
}

func teamMatches(query string, team Team) bool {
	if fuzzy.MatchNormalizedFold(query, team.Club) || fuzzy.MatchNormalizedFold(query, team.League) {
		return true
	}
	for _, p := range team.Players {
		if fuzzy.MatchNormalizedFold(query, p.FirstName+" "+p.LastName) {
			return true
		}
	}
	return false
}
