package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateInterview opens an interview session for a candidate
func (db *DB) CreateInterview(ctx context.Context, candidateID uuid.UUID) (*Interview, error) {
	var iv Interview
	err := db.pool.QueryRow(ctx,
		`INSERT INTO interviews (candidate_id, status)
		 VALUES ($1, 'in_progress')
		 RETURNING id, candidate_id, status, created_at, completed_at`,
		candidateID,
	).Scan(&iv.ID, &iv.CandidateID, &iv.Status, &iv.CreatedAt, &iv.CompletedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create interview: %w", err)
	}
	return &iv, nil
}

// InsertQuestions stores a question set in slot order. The time limit per
// question is derived from its difficulty.
func (db *DB) InsertQuestions(ctx context.Context, interviewID uuid.UUID, texts, difficulties []string) ([]Question, error) {
	if len(texts) != len(difficulties) {
		return nil, fmt.Errorf("question texts and difficulties length mismatch: %d vs %d", len(texts), len(difficulties))
	}

	questions := make([]Question, 0, len(texts))
	for i, text := range texts {
		var q Question
		err := db.pool.QueryRow(ctx,
			`INSERT INTO questions (interview_id, question_text, difficulty, time_limit, order_index)
			 VALUES ($1, $2, $3, $4, $5)
			 RETURNING id, interview_id, question_text, difficulty, time_limit, order_index`,
			interviewID, text, difficulties[i], TimeLimitForDifficulty(difficulties[i]), i,
		).Scan(&q.ID, &q.InterviewID, &q.QuestionText, &q.Difficulty, &q.TimeLimit, &q.OrderIndex)
		if err != nil {
			return nil, fmt.Errorf("failed to insert question %d: %w", i, err)
		}
		questions = append(questions, q)
	}
	return questions, nil
}

// InsertAnswer records one submitted answer
func (db *DB) InsertAnswer(ctx context.Context, interviewID, questionID uuid.UUID, answerText string, timeTaken int) (*Answer, error) {
	if answerText == "" {
		answerText = "(No answer provided)"
	}

	var a Answer
	err := db.pool.QueryRow(ctx,
		`INSERT INTO answers (interview_id, question_id, answer_text, time_taken)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, interview_id, question_id, answer_text, time_taken, submitted_at`,
		interviewID, questionID, answerText, timeTaken,
	).Scan(&a.ID, &a.InterviewID, &a.QuestionID, &a.AnswerText, &a.TimeTaken, &a.SubmittedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert answer: %w", err)
	}
	return &a, nil
}

// CompleteInterview marks an interview as completed
func (db *DB) CompleteInterview(ctx context.Context, interviewID uuid.UUID) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE interviews SET status = 'completed', completed_at = NOW() WHERE id = $1`,
		interviewID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete interview: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("interview not found: %s", interviewID)
	}
	return nil
}

// GetInterview retrieves an interview with its candidate, questions and
// answers. Returns nil when not found.
func (db *DB) GetInterview(ctx context.Context, interviewID uuid.UUID) (*InterviewDetail, error) {
	var detail InterviewDetail
	iv := &detail.Interview
	err := db.pool.QueryRow(ctx,
		`SELECT id, candidate_id, status, created_at, completed_at
		 FROM interviews WHERE id = $1`,
		interviewID,
	).Scan(&iv.ID, &iv.CandidateID, &iv.Status, &iv.CreatedAt, &iv.CompletedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get interview: %w", err)
	}

	candidate, err := db.GetCandidate(ctx, iv.CandidateID)
	if err != nil {
		return nil, err
	}
	if candidate != nil {
		detail.Candidate = *candidate
	}

	detail.Questions, err = db.listQuestions(ctx, interviewID)
	if err != nil {
		return nil, err
	}
	detail.Answers, err = db.listAnswers(ctx, interviewID)
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

// ListInterviews retrieves interviews newest first
func (db *DB) ListInterviews(ctx context.Context, limit int) ([]Interview, error) {
	if limit == 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, candidate_id, status, created_at, completed_at
		 FROM interviews ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list interviews: %w", err)
	}
	defer rows.Close()

	var interviews []Interview
	for rows.Next() {
		var iv Interview
		if err := rows.Scan(&iv.ID, &iv.CandidateID, &iv.Status, &iv.CreatedAt, &iv.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan interview: %w", err)
		}
		interviews = append(interviews, iv)
	}
	return interviews, nil
}

func (db *DB) listQuestions(ctx context.Context, interviewID uuid.UUID) ([]Question, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, interview_id, question_text, difficulty, time_limit, order_index
		 FROM questions WHERE interview_id = $1 ORDER BY order_index ASC`,
		interviewID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	defer rows.Close()

	var questions []Question
	for rows.Next() {
		var q Question
		if err := rows.Scan(&q.ID, &q.InterviewID, &q.QuestionText, &q.Difficulty, &q.TimeLimit, &q.OrderIndex); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		questions = append(questions, q)
	}
	return questions, nil
}

func (db *DB) listAnswers(ctx context.Context, interviewID uuid.UUID) ([]Answer, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, interview_id, question_id, answer_text, time_taken, submitted_at
		 FROM answers WHERE interview_id = $1 ORDER BY submitted_at ASC`,
		interviewID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list answers: %w", err)
	}
	defer rows.Close()

	var answers []Answer
	for rows.Next() {
		var a Answer
		if err := rows.Scan(&a.ID, &a.InterviewID, &a.QuestionID, &a.AnswerText, &a.TimeTaken, &a.SubmittedAt); err != nil {
			return nil, fmt.Errorf("failed to scan answer: %w", err)
		}
		answers = append(answers, a)
	}
	return answers, nil
}
