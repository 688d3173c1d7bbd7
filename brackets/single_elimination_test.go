package brackets

import (
	"fmt"
	"math/bits"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed+1))
}

func ceilLog2(n int) int {
	return bits.Len(uint(n - 1))
}

// identity never swaps, so teams keep their input order.
type identity struct{}

func (identity) IntN(n int) int { return n - 1 }

func TestSingleElimination_FewerThanTwoTeams(t *testing.T) {
	g := NewSingleEliminationGenerator(seeded(1), nil)

	empty := g.Generate(nil)
	assert.Empty(t, empty.Stages)
	assert.Equal(t, 0, empty.TeamsCount)

	one := g.Generate(makeTeams(1))
	assert.Empty(t, one.Stages)
	assert.Equal(t, 0, one.TotalMatches)
	assert.Equal(t, 1, one.TeamsCount)
}

func TestSingleElimination_Properties(t *testing.T) {
	for n := 2; n <= 40; n++ {
		t.Run(fmt.Sprintf("%d teams", n), func(t *testing.T) {
			result := NewSingleEliminationGenerator(seeded(uint64(n)), nil).Generate(makeTeams(n))

			assert.Equal(t, ceilLog2(n), result.TotalStages)
			require.Len(t, result.Stages, result.TotalStages)
			assert.Equal(t, n-1, result.TotalMatches)
			assert.Equal(t, n, result.TeamsCount)
			assert.Equal(t, n, result.RegisteredPlayersCount)

			entering, byes := n, 0
			for i, stage := range result.Stages {
				assert.Equal(t, i+1, stage.Stage)
				assert.Equal(t, StageName(stage.Stage, entering), stage.StageName)
				assert.Len(t, stage.Matches, (entering+1)/2)
				assert.False(t, stage.IsComplete)

				for j, m := range stage.Matches {
					assert.Equal(t, fmt.Sprintf("stage-%d-match-%d", stage.Stage, j+1), m.MatchID)
					assert.Equal(t, stage.Stage, m.Stage)
					assert.Equal(t, j+1, m.MatchNumber)
					if m.IsBye {
						assert.Nil(t, m.Team2)
						assert.Equal(t, len(stage.Matches)-1, j, "bye must be the last slot")
						byes++
					} else {
						assert.NotNil(t, m.Team2)
					}
				}
				entering = (entering + 1) / 2
			}
			assert.Equal(t, 1, entering)
			assert.Equal(t, byes, result.TotalByes)

			final := result.Stages[len(result.Stages)-1]
			assert.Equal(t, "Final", final.StageName)
			assert.Len(t, final.Matches, 1)
		})
	}
}

func TestSingleElimination_ThreeTeams(t *testing.T) {
	result := NewSingleEliminationGenerator(identity{}, nil).Generate(namedTeams("A", "B", "C"))

	require.Len(t, result.Stages, 2)
	first := result.Stages[0]
	assert.Equal(t, "Round of 3", first.StageName)
	require.Len(t, first.Matches, 2)
	assert.Equal(t, "A", first.Matches[0].Team1.Club)
	assert.Equal(t, "B", first.Matches[0].Team2.Club)
	assert.True(t, first.Matches[1].IsBye)
	assert.Equal(t, "C", first.Matches[1].Team1.Club)

	final := result.Stages[1]
	assert.Equal(t, "Final", final.StageName)
	require.Len(t, final.Matches, 1)
	assert.Equal(t, "A", final.Matches[0].Team1.Club)
	assert.Equal(t, "C", final.Matches[0].Team2.Club)

	assert.Equal(t, 2, result.TotalMatches)
	assert.Equal(t, 1, result.TotalByes)
}

func TestSingleElimination_EightTeamNames(t *testing.T) {
	result := NewSingleEliminationGenerator(seeded(7), nil).Generate(makeTeams(8))

	require.Len(t, result.Stages, 3)
	assert.Equal(t, "Quarter-Finals", result.Stages[0].StageName)
	assert.Equal(t, "Semi-Finals", result.Stages[1].StageName)
	assert.Equal(t, "Final", result.Stages[2].StageName)
	assert.Equal(t, 0, result.TotalByes)
}

func TestSingleElimination_SameSeedSameBracket(t *testing.T) {
	teams := makeTeams(11)

	a := NewSingleEliminationGenerator(seeded(42), nil).Generate(teams)
	b := NewSingleEliminationGenerator(seeded(42), nil).Generate(teams)

	assert.Equal(t, a, b)
	assert.Equal(t, makeTeams(11), teams, "input must not be reordered")
}

func TestSingleElimination_EveryTeamPlacedOnce(t *testing.T) {
	teams := makeTeams(13)
	result := NewSingleEliminationGenerator(seeded(3), nil).Generate(teams)

	seen := make(map[string]int)
	for _, m := range result.Stages[0].Matches {
		seen[m.Team1.Club]++
		if m.Team2 != nil {
			seen[m.Team2.Club]++
		}
	}
	require.Len(t, seen, len(teams))
	for club, count := range seen {
		assert.Equal(t, 1, count, club)
	}
}

func TestSingleElimination_ResolverAdvancesWinner(t *testing.T) {
	// Team2 always wins.
	resolver := ResolverFunc(func(_ string, _, team2 Team) *Team {
		return &team2
	})

	result := NewSingleEliminationGenerator(identity{}, resolver).Generate(namedTeams("A", "B", "C", "D"))

	require.Len(t, result.Stages, 2)
	semis := result.Stages[0]
	assert.True(t, semis.IsComplete)
	require.NotNil(t, semis.Matches[0].Winner)
	assert.Equal(t, "B", semis.Matches[0].Winner.Club)
	assert.Equal(t, "D", semis.Matches[1].Winner.Club)

	final := result.Stages[1]
	assert.True(t, final.IsComplete)
	assert.Equal(t, "B", final.Matches[0].Team1.Club)
	assert.Equal(t, "D", final.Matches[0].Team2.Club)
	assert.Equal(t, "D", final.Matches[0].Winner.Club)
}

func TestSingleElimination_ResolverSeesMatchIDs(t *testing.T) {
	var ids []string
	resolver := ResolverFunc(func(id string, team1, _ Team) *Team {
		ids = append(ids, id)
		return &team1
	})

	NewSingleEliminationGenerator(identity{}, resolver).Generate(makeTeams(5))

	assert.Equal(t, []string{"stage-1-match-1", "stage-1-match-2", "stage-2-match-1", "stage-3-match-1"}, ids)
}

func TestSingleElimination_UnknownWinnerIsIgnored(t *testing.T) {
	stranger := Team{Club: "Nobody"}
	resolver := ResolverFunc(func(string, Team, Team) *Team { return &stranger })

	result := NewSingleEliminationGenerator(identity{}, resolver).Generate(namedTeams("A", "B"))

	require.Len(t, result.Stages, 1)
	assert.False(t, result.Stages[0].IsComplete)
	assert.Nil(t, result.Stages[0].Matches[0].Winner)
}

func TestSingleElimination_ByeOnlyStageStaysComplete(t *testing.T) {
	resolver := ResolverFunc(func(_ string, team1, _ Team) *Team { return &team1 })

	result := NewSingleEliminationGenerator(identity{}, resolver).Generate(makeTeams(3))

	for _, stage := range result.Stages {
		assert.True(t, stage.IsComplete, stage.StageName)
	}
}

func TestShuffle_IsPermutation(t *testing.T) {
	values := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	shuffle(seeded(9), len(values), func(i, j int) { values[i], values[j] = values[j], values[i] })

	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, values)
}
