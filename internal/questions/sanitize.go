package questions

import (
	"fmt"
	"strings"
)

// Sanitize repairs a model-produced question list into a finalized set:
// exactly six questions in the fixed difficulty order easy, easy, medium,
// medium, hard, hard, no duplicate text, each either model-sourced and
// on-topic, fallback-sourced, or synthesized. Pure and deterministic;
// running it on an already-sanitized set returns the same set.
func Sanitize(raw []Candidate, policy TopicPolicy) []Question {
	// Coerce: keep non-empty text; default invalid difficulty to the slot
	// expectation for that position.
	coerced := make([]Question, 0, len(raw))
	for i, c := range raw {
		text := strings.TrimSpace(c.Text)
		if text == "" {
			continue
		}
		difficulty, ok := ParseDifficulty(c.Difficulty)
		if !ok {
			if i < len(DifficultyPlan) {
				difficulty = DifficultyPlan[i]
			} else {
				difficulty = Easy
			}
		}
		coerced = append(coerced, Question{Text: text, Difficulty: difficulty})
	}

	// Topic filter, then bucket by difficulty. Buckets cap at the slot count
	// and duplicate text is dropped.
	buckets := map[Difficulty][]Question{}
	seen := map[string]bool{}
	for _, q := range coerced {
		if !policy.Allowed(q.Text) {
			continue
		}
		if seen[q.Text] {
			continue
		}
		if len(buckets[q.Difficulty]) >= SlotsPer(q.Difficulty) {
			continue
		}
		buckets[q.Difficulty] = append(buckets[q.Difficulty], q)
		seen[q.Text] = true
	}

	// Walk the plan, backfilling from the static bank and synthesizing as a
	// last resort. The result always satisfies the set invariant, even under
	// total model failure.
	result := make([]Question, 0, len(DifficultyPlan))
	used := map[string]bool{}
	for _, difficulty := range DifficultyPlan {
		var picked Question
		for len(buckets[difficulty]) > 0 {
			q := buckets[difficulty][0]
			buckets[difficulty] = buckets[difficulty][1:]
			if !used[q.Text] {
				picked = q
				break
			}
		}
		if picked.Text == "" {
			picked = nextFallback(policy.Fallback, difficulty, used)
		}
		if picked.Text == "" {
			picked = Question{
				Text:       fmt.Sprintf("Provide a %s React/Node.js question about core concepts.", difficulty),
				Difficulty: difficulty,
			}
			if used[picked.Text] {
				picked.Text = fmt.Sprintf("Provide another %s React/Node.js question about core concepts.", difficulty)
			}
		}
		result = append(result, picked)
		used[picked.Text] = true
	}
	return result
}

// nextFallback returns the first unused fallback question of the requested
// difficulty, or a zero Question when the bank is exhausted.
func nextFallback(bank []Question, difficulty Difficulty, used map[string]bool) Question {
	for _, f := range bank {
		if f.Difficulty == difficulty && !used[f.Text] {
			return f
		}
	}
	return Question{}
}
