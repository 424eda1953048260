// Package questions produces finalized interview question sets: a fixed
// six-slot, fixed-difficulty-distribution sequence that holds regardless of
// how badly the upstream model misbehaves.
package questions

// Difficulty of a single interview question.
type Difficulty string

// Valid difficulty levels.
const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Question is one finalized interview question. Immutable once a set is
// returned.
type Question struct {
	Text       string     `json:"text"`
	Difficulty Difficulty `json:"difficulty"`
}

// Candidate is an unsanitized question as returned by the model. Text may be
// empty and difficulty may be any string.
type Candidate struct {
	Text       string `json:"text"`
	Difficulty string `json:"difficulty"`
}

// DifficultyPlan is the fixed slot order of a finalized set. Every set has
// exactly these six difficulties in exactly this order.
var DifficultyPlan = [6]Difficulty{Easy, Easy, Medium, Medium, Hard, Hard}

// SlotsPer returns how many slots the plan reserves for a difficulty.
func SlotsPer(d Difficulty) int {
	n := 0
	for _, p := range DifficultyPlan {
		if p == d {
			n++
		}
	}
	return n
}

// ParseDifficulty normalizes a raw difficulty string. Returns false when the
// value is not one of the three valid levels.
func ParseDifficulty(raw string) (Difficulty, bool) {
	switch Difficulty(normalizeLower(raw)) {
	case Easy:
		return Easy, true
	case Medium:
		return Medium, true
	case Hard:
		return Hard, true
	}
	return "", false
}
