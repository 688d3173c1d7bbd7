package export

import (
	"fmt"
	"strings"

	"github.com/Dosada05/championship/brackets"
	"github.com/xuri/excelize/v2"
)

const (
	PairingsSheet = "Pairings"
	BracketSheet  = "Bracket"

	byeLabel     = "BYE"
	pendingLabel = "TBD"
	maxSheetName = 31
)

// RoundRobinWorkbook writes the full league schedule plus one sheet per club.
func RoundRobinWorkbook(schedule *brackets.Schedule) (*excelize.File, error) {
	f := excelize.NewFile()
	f.SetDefaultFont("Arial")

	if err := writePairingsSheet(f, schedule); err != nil {
		return nil, fmt.Errorf("writing pairings sheet: %w", err)
	}
	if err := writeClubSheets(f, schedule); err != nil {
		return nil, fmt.Errorf("writing club sheets: %w", err)
	}

	f.DeleteSheet("Sheet1")
	return f, nil
}

// KnockoutWorkbook writes every stage of the bracket on a single sheet.
func KnockoutWorkbook(result *brackets.TournamentResult) (*excelize.File, error) {
	f := excelize.NewFile()
	f.SetDefaultFont("Arial")

	if _, err := f.NewSheet(BracketSheet); err != nil {
		return nil, fmt.Errorf("creating bracket sheet: %w", err)
	}
	headers := []string{"Stage", "Match", "Team 1", "Team 2", "Winner"}
	writeHeader(f, BracketSheet, headers)

	row := 2
	for _, stage := range result.Stages {
		for _, m := range stage.Matches {
			opponent, winner := byeLabel, m.Team1.Club
			if !m.IsBye {
				opponent = m.Team2.Club
				winner = pendingLabel
				if m.Winner != nil {
					winner = m.Winner.Club
				}
			}
			f.SetCellValue(BracketSheet, cellRef(1, row), stage.StageName)
			f.SetCellValue(BracketSheet, cellRef(2, row), m.MatchNumber)
			f.SetCellValue(BracketSheet, cellRef(3, row), m.Team1.Club)
			f.SetCellValue(BracketSheet, cellRef(4, row), opponent)
			f.SetCellValue(BracketSheet, cellRef(5, row), winner)
			row++
		}
	}
	styleRows(f, BracketSheet, len(headers), row-1)

	widths := map[string]float64{"A": 18, "B": 8, "C": 28, "D": 28, "E": 28}
	for col, w := range widths {
		f.SetColWidth(BracketSheet, col, col, w)
	}

	f.DeleteSheet("Sheet1")
	return f, nil
}

func writePairingsSheet(f *excelize.File, schedule *brackets.Schedule) error {
	if _, err := f.NewSheet(PairingsSheet); err != nil {
		return err
	}
	headers := []string{"Matchday", "Match", "Home", "Away", "Home League", "Away League"}
	writeHeader(f, PairingsSheet, headers)

	row := 2
	for _, round := range schedule.Rounds {
		for i, m := range round.Matches {
			f.SetCellValue(PairingsSheet, cellRef(1, row), round.Matchday)
			f.SetCellValue(PairingsSheet, cellRef(2, row), i+1)
			f.SetCellValue(PairingsSheet, cellRef(3, row), m.Team1.Club)
			f.SetCellValue(PairingsSheet, cellRef(4, row), m.Team2.Club)
			f.SetCellValue(PairingsSheet, cellRef(5, row), m.Team1.League)
			f.SetCellValue(PairingsSheet, cellRef(6, row), m.Team2.League)
			row++
		}
	}
	styleRows(f, PairingsSheet, len(headers), row-1)

	widths := map[string]float64{"A": 16, "B": 8, "C": 28, "D": 28, "E": 20, "F": 20}
	for col, w := range widths {
		f.SetColWidth(PairingsSheet, col, col, w)
	}
	return nil
}

type fixture struct {
	matchday string
	opponent string
	homeAway string
}

func writeClubSheets(f *excelize.File, schedule *brackets.Schedule) error {
	var clubs []string
	fixtures := make(map[string][]fixture)
	for _, round := range schedule.Rounds {
		for _, m := range round.Matches {
			home, away := m.Team1.Club, m.Team2.Club
			for _, club := range []string{home, away} {
				if _, ok := fixtures[club]; !ok {
					clubs = append(clubs, club)
					fixtures[club] = nil
				}
			}
			fixtures[home] = append(fixtures[home], fixture{round.Matchday, away, "Home"})
			fixtures[away] = append(fixtures[away], fixture{round.Matchday, home, "Away"})
		}
	}

	used := map[string]bool{strings.ToLower(PairingsSheet): true}
	headers := []string{"Matchday", "Opponent", "Home/Away"}
	for _, club := range clubs {
		sheet := uniqueSheetName(club, used)
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("creating sheet for %s: %w", club, err)
		}
		writeHeader(f, sheet, headers)

		for i, fx := range fixtures[club] {
			row := i + 2
			f.SetCellValue(sheet, cellRef(1, row), fx.matchday)
			f.SetCellValue(sheet, cellRef(2, row), fx.opponent)
			f.SetCellValue(sheet, cellRef(3, row), fx.homeAway)
		}
		styleRows(f, sheet, len(headers), len(fixtures[club])+1)

		widths := map[string]float64{"A": 16, "B": 28, "C": 14}
		for col, w := range widths {
			f.SetColWidth(sheet, col, col, w)
		}
	}
	return nil
}

func writeHeader(f *excelize.File, sheet string, headers []string) {
	for i, h := range headers {
		f.SetCellValue(sheet, cellRef(i+1, 1), h)
	}
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 14, Family: "Arial"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#4472C4"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if headerStyle != 0 {
		f.SetCellStyle(sheet, cellRef(1, 1), cellRef(len(headers), 1), headerStyle)
	}
}

func styleRows(f *excelize.File, sheet string, cols, lastRow int) {
	if lastRow < 2 {
		return
	}
	cellStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 14, Family: "Arial"},
	})
	if cellStyle != 0 {
		f.SetCellStyle(sheet, cellRef(1, 2), cellRef(cols, lastRow), cellStyle)
	}
}

// uniqueSheetName strips characters Excel rejects and keeps names unique
// within the 31 character limit. Comparison is case-insensitive like Excel's.
func uniqueSheetName(club string, used map[string]bool) string {
	base := strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '-'
		}
		return r
	}, club)
	base = strings.Trim(base, "' ")
	if base == "" {
		base = "Club"
	}
	base = truncate(base, maxSheetName)

	name := base
	for n := 2; used[strings.ToLower(name)]; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		name = truncate(base, maxSheetName-len(suffix)) + suffix
	}
	used[strings.ToLower(name)] = true
	return name
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

func cellRef(col, row int) string {
	return fmt.Sprintf("%s%d", colLetter(col), row)
}

func colLetter(col int) string {
	result := ""
	for col > 0 {
		col--
		result = string(rune('A'+col%26)) + result
		col /= 26
	}
	return result
}
