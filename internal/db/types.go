package db

import (
	"time"

	"github.com/google/uuid"
)

// Candidate represents an interviewed candidate record
type Candidate struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	RoleApplied string    `json:"role_applied"`
	FinalScore  *int      `json:"final_score,omitempty"`
	Summary     string    `json:"summary,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// Interview represents one interview session for a candidate
type Interview struct {
	ID          uuid.UUID  `json:"id"`
	CandidateID uuid.UUID  `json:"candidate_id"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Question represents a generated interview question
type Question struct {
	ID           uuid.UUID `json:"id"`
	InterviewID  uuid.UUID `json:"interview_id"`
	QuestionText string    `json:"question_text"`
	Difficulty   string    `json:"difficulty"`
	TimeLimit    int       `json:"time_limit"`
	OrderIndex   int       `json:"order_index"`
}

// Answer represents a submitted answer to one question
type Answer struct {
	ID          uuid.UUID `json:"id"`
	InterviewID uuid.UUID `json:"interview_id"`
	QuestionID  uuid.UUID `json:"question_id"`
	AnswerText  string    `json:"answer_text"`
	TimeTaken   int       `json:"time_taken"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// InterviewDetail is an interview joined with its candidate, questions and
// answers for the reviewer view
type InterviewDetail struct {
	Interview Interview  `json:"interview"`
	Candidate Candidate  `json:"candidate"`
	Questions []Question `json:"questions"`
	Answers   []Answer   `json:"answers"`
}

// Status values shared by candidates and interviews
const (
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// TimeLimitForDifficulty returns the answer timer in seconds for a question
// difficulty. Unknown difficulties get the easy timer.
func TimeLimitForDifficulty(difficulty string) int {
	switch difficulty {
	case "medium":
		return 60
	case "hard":
		return 120
	default:
		return 20
	}
}
