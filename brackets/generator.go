package brackets

// Member is a registered player placed on a team.
type Member struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	League    string `json:"league"`
	Club      string `json:"club"`
}

// Team groups every complete registration of one club.
type Team struct {
	Club    string   `json:"club"`
	Players []Member `json:"players"`
	League  string   `json:"league"`
}

// Match pairs two teams. Team2 is nil when Team1 has a bye.
type Match struct {
	MatchID     string `json:"matchId,omitempty"`
	Team1       Team   `json:"team1"`
	Team2       *Team  `json:"team2"`
	Winner      *Team  `json:"winner,omitempty"`
	Stage       int    `json:"stage,omitempty"`
	MatchNumber int    `json:"matchNumber,omitempty"`
	IsBye       bool   `json:"isBye,omitempty"`
}

// Round is one matchday of a round-robin schedule.
type Round struct {
	Round    int     `json:"round"`
	Matchday string  `json:"matchday"`
	Matches  []Match `json:"matches"`
}

// Schedule is the round-robin output consumed by the pairings view.
type Schedule struct {
	Rounds      []Round `json:"rounds"`
	Pairings    []Match `json:"pairings"`
	Total       int     `json:"total"`
	TotalRounds int     `json:"totalRounds"`
}

// Stage is one knockout stage.
type Stage struct {
	Stage      int     `json:"stage"`
	StageName  string  `json:"stageName"`
	Matches    []Match `json:"matches"`
	IsComplete bool    `json:"isComplete"`
}

// TournamentResult is the knockout output. TotalMatches counts played
// matches only; byes are reported in TotalByes.
type TournamentResult struct {
	Stages                 []Stage `json:"stages"`
	TotalStages            int     `json:"totalStages"`
	TotalMatches           int     `json:"totalMatches"`
	TotalByes              int     `json:"totalByes"`
	RegisteredPlayersCount int     `json:"registeredPlayersCount"`
	TeamsCount             int     `json:"teamsCount"`
}

// Generator names a schedule format in logs.
type Generator interface {
	GetName() string
}

var (
	_ Generator = (*RoundRobinGenerator)(nil)
	_ Generator = (*SingleEliminationGenerator)(nil)
)

// RandomSource is satisfied by *rand.Rand from math/rand/v2.
type RandomSource interface {
	IntN(n int) int
}

// WinnerResolver decides who advances from a played knockout match.
// Returning nil means the result is not known yet.
type WinnerResolver interface {
	Decide(matchID string, team1, team2 Team) *Team
}

// PlaceholderResolver never knows a result; team1 advances in its place.
type PlaceholderResolver struct{}

func (PlaceholderResolver) Decide(string, Team, Team) *Team {
	return nil
}

// ResolverFunc adapts a plain function to WinnerResolver.
type ResolverFunc func(matchID string, team1, team2 Team) *Team

func (f ResolverFunc) Decide(matchID string, team1, team2 Team) *Team {
	return f(matchID, team1, team2)
}

// shuffle is an in-place Fisher–Yates over n elements.
func shuffle(rng RandomSource, n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		swap(i, j)
	}
}
