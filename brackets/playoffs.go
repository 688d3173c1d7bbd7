package brackets

import (
	"fmt"
	"strings"

	"github.com/Dosada05/championship/models"
)

const playoffRoundName = "Playoffs Round 1"

type PlayoffMatch struct {
	Player1 string `json:"player1"`
	Player2 string `json:"player2"`
}

type PlayoffBye struct {
	Player string `json:"player"`
}

// PlayoffResult is a single random round over individual players.
type PlayoffResult struct {
	Round   string         `json:"round"`
	Matches []PlayoffMatch `json:"matches"`
	Bye     *PlayoffBye    `json:"bye,omitempty"`
}

// GeneratePlayoffs shuffles the players and pairs them two at a time. With an
// odd count the last shuffled player gets the bye.
func GeneratePlayoffs(players []models.Player, rng RandomSource) *PlayoffResult {
	shuffled := make([]models.Player, len(players))
	copy(shuffled, players)
	shuffle(rng, len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	result := &PlayoffResult{
		Round:   playoffRoundName,
		Matches: make([]PlayoffMatch, 0, len(shuffled)/2),
	}

	if len(shuffled)%2 != 0 {
		last := shuffled[len(shuffled)-1]
		shuffled = shuffled[:len(shuffled)-1]
		result.Bye = &PlayoffBye{Player: playoffLabel(last)}
	}

	for i := 0; i+1 < len(shuffled); i += 2 {
		result.Matches = append(result.Matches, PlayoffMatch{
			Player1: playoffLabel(shuffled[i]),
			Player2: playoffLabel(shuffled[i+1]),
		})
	}
	return result
}

func playoffLabel(p models.Player) string {
	return fmt.Sprintf("%s %s – %s", strings.TrimSpace(p.FirstName), strings.TrimSpace(p.LastName), strings.TrimSpace(p.Club))
}
