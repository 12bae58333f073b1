package searcher

import "fmt"

// Difficulty selects the algorithm used to pick the CPU's move.
type Difficulty int

const (
	Easy   Difficulty = iota // uniform random choice
	Normal                   // greedy one-ply evaluation
	Hard                     // two-ply minimax
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Normal:
		return "normal"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
}

// ParseDifficulty maps the names used by the UI onto a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch s {
	case "easy":
		return Easy, nil
	case "normal":
		return Normal, nil
	case "hard":
		return Hard, nil
	default:
		return Easy, fmt.Errorf("unknown difficulty %q", s)
	}
}
