package brackets

import "fmt"

// SingleEliminationGenerator builds a knockout bracket stage by stage.
type SingleEliminationGenerator struct {
	rng      RandomSource
	resolver WinnerResolver
}

// NewSingleEliminationGenerator uses PlaceholderResolver when resolver is nil.
func NewSingleEliminationGenerator(rng RandomSource, resolver WinnerResolver) *SingleEliminationGenerator {
	if resolver == nil {
		resolver = PlaceholderResolver{}
	}
	return &SingleEliminationGenerator{rng: rng, resolver: resolver}
}

func (g *SingleEliminationGenerator) GetName() string {
	return "SingleElimination"
}

// Generate shuffles the teams and halves the field every stage until one
// team is left. An odd team out gets a bye and advances untouched.
func (g *SingleEliminationGenerator) Generate(teams []Team) *TournamentResult {
	result := &TournamentResult{
		Stages:     []Stage{},
		TeamsCount: len(teams),
	}
	if len(teams) < 2 {
		return result
	}

	participants := make([]Team, len(teams))
	copy(participants, teams)
	shuffle(g.rng, len(participants), func(i, j int) {
		participants[i], participants[j] = participants[j], participants[i]
	})

	for stageNumber := 1; len(participants) > 1; stageNumber++ {
		stage := Stage{
			Stage:      stageNumber,
			StageName:  StageName(stageNumber, len(participants)),
			Matches:    make([]Match, 0, (len(participants)+1)/2),
			IsComplete: true,
		}
		next := make([]Team, 0, (len(participants)+1)/2)

		for i := 0; i < len(participants); i += 2 {
			matchNumber := i/2 + 1
			match := Match{
				MatchID:     fmt.Sprintf("stage-%d-match-%d", stageNumber, matchNumber),
				Team1:       participants[i],
				Stage:       stageNumber,
				MatchNumber: matchNumber,
			}

			if i+1 >= len(participants) {
				match.IsBye = true
				result.TotalByes++
				next = append(next, match.Team1)
				stage.Matches = append(stage.Matches, match)
				continue
			}

			team2 := participants[i+1]
			match.Team2 = &team2
			result.TotalMatches++

			winner := g.resolver.Decide(match.MatchID, match.Team1, team2)
			switch {
			case winner != nil && winner.Club == match.Team1.Club:
				team1 := match.Team1
				match.Winner = &team1
				next = append(next, team1)
			case winner != nil && winner.Club == team2.Club:
				match.Winner = &team2
				next = append(next, team2)
			default:
				// No result yet: team1 holds the slot in the next stage.
				stage.IsComplete = false
				next = append(next, match.Team1)
			}
			stage.Matches = append(stage.Matches, match)
		}

		result.Stages = append(result.Stages, stage)
		participants = next
	}

	result.TotalStages = len(result.Stages)
	result.RegisteredPlayersCount = PlayerCount(teams)
	return result
}
