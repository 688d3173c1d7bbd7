package brackets

import "fmt"

// RoundRobinSettings tunes the league phase.
type RoundRobinSettings struct {
	Legs int `json:"legs" yaml:"legs"` // 1 for single round-robin, 2 for home and away
}

type RoundRobinGenerator struct {
	settings RoundRobinSettings
}

// NewRoundRobinGenerator falls back to a single leg for anything but 2.
func NewRoundRobinGenerator(settings RoundRobinSettings) *RoundRobinGenerator {
	if settings.Legs != 2 {
		settings.Legs = 1
	}
	return &RoundRobinGenerator{settings: settings}
}

func (g *RoundRobinGenerator) GetName() string {
	return "RoundRobin"
}

type pairKey struct {
	a, b string
}

func newPairKey(club1, club2 string) pairKey {
	if club2 < club1 {
		club1, club2 = club2, club1
	}
	return pairKey{club1, club2}
}

// pairing holds team indexes in input order.
type pairing struct {
	first, second int
}

// Generate arranges every pairing of teams into matchdays using the circle
// method. With N teams there are N-1 rounds (N even) or N rounds (N odd, one
// team resting each round). Fewer than two teams yields an empty schedule.
func (g *RoundRobinGenerator) Generate(teams []Team) *Schedule {
	schedule := &Schedule{Rounds: []Round{}, Pairings: []Match{}}

	n := len(teams)
	if n < 2 {
		return schedule
	}

	pairings := make(map[pairKey]pairing, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if teams[i].Club == teams[j].Club {
				continue
			}
			pairings[newPairKey(teams[i].Club, teams[j].Club)] = pairing{first: i, second: j}
		}
	}

	even := n%2 == 0
	numRounds, start := n-1, 0
	if !even {
		numRounds, start = n, 1
	}

	rounds := make([]Round, 0, numRounds*g.settings.Legs)
	rotation := seedRotation(n)
	for r := 1; r <= numRounds; r++ {
		matches := make([]Match, 0, n/2)
		for i := 0; i < n/2; i++ {
			idx1, idx2 := rotation[start+i], rotation[n-1-i]
			if idx1 == idx2 {
				continue
			}
			p, ok := pairings[newPairKey(teams[idx1].Club, teams[idx2].Club)]
			if !ok {
				continue
			}
			matches = append(matches, newLeagueMatch(r, len(matches)+1, teams[p.first], teams[p.second]))
		}
		rotation = rotate(rotation, even)

		if len(matches) > 0 {
			rounds = append(rounds, newRound(r, matches))
		}
	}

	if g.settings.Legs == 2 {
		offset := numRounds
		firstLeg := len(rounds)
		for _, first := range rounds[:firstLeg] {
			r := first.Round + offset
			matches := make([]Match, len(first.Matches))
			for i, m := range first.Matches {
				matches[i] = newLeagueMatch(r, i+1, *m.Team2, m.Team1)
			}
			rounds = append(rounds, newRound(r, matches))
		}
	}

	schedule.Rounds = rounds
	for _, round := range rounds {
		schedule.Pairings = append(schedule.Pairings, round.Matches...)
	}
	schedule.Total = len(schedule.Pairings)
	schedule.TotalRounds = len(rounds)
	return schedule
}

func newRound(number int, matches []Match) Round {
	return Round{
		Round:    number,
		Matchday: fmt.Sprintf("Matchday %d", number),
		Matches:  matches,
	}
}

func newLeagueMatch(round, number int, team1, team2 Team) Match {
	return Match{
		MatchID:     fmt.Sprintf("round-%d-match-%d", round, number),
		Team1:       team1,
		Team2:       &team2,
		MatchNumber: number,
	}
}

func seedRotation(n int) []int {
	rotation := make([]int, n)
	for i := range rotation {
		rotation[i] = i
	}
	return rotation
}

// rotate moves the last index to position 1 (even count, index 0 stays
// fixed) or to position 0 (odd count). The input is left untouched.
func rotate(rotation []int, even bool) []int {
	n := len(rotation)
	next := make([]int, 0, n)
	last := rotation[n-1]
	if even {
		next = append(next, rotation[0], last)
		next = append(next, rotation[1:n-1]...)
	} else {
		next = append(next, last)
		next = append(next, rotation[:n-1]...)
	}
	return next
}
