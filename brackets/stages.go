package brackets

import "fmt"

// StageName labels a knockout stage by how many teams enter it.
func StageName(stage, participants int) string {
	switch {
	case participants == 2:
		return "Final"
	case participants == 4:
		return "Semi-Finals"
	case participants == 8:
		return "Quarter-Finals"
	case participants <= 16:
		return fmt.Sprintf("Round of %d", participants)
	default:
		return fmt.Sprintf("Stage %d", stage)
	}
}
