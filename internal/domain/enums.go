package domain

import "fmt"

// Difficulty selects the clue-count band a generated puzzle targets.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	}
	return fmt.Sprintf("difficulty(%d)", int(d))
}

// ParseDifficulty maps a label to its Difficulty. Unknown labels error
// instead of defaulting so the shell can surface the typo.
func ParseDifficulty(s string) (Difficulty, error) {
	switch s {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	case "expert":
		return Expert, nil
	}
	return Medium, fmt.Errorf("unknown difficulty %q", s)
}

// StrategyTier caps the hinting/logic complexity used.
type StrategyTier int

const (
	StrategySingles StrategyTier = iota // naked/sole candidates
	StrategyPairs                       // naked/hidden pairs
	StrategyAdvanced                    // pointing/claiming, triples, etc.
)
