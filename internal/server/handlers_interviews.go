package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/interview-agent/internal/db"
)

type createInterviewRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone"`
	Role       string `json:"role" validate:"required"`
	ResumeText string `json:"resume_text"`
}

type createInterviewResponse struct {
	Candidate *db.Candidate `json:"candidate"`
	Interview *db.Interview `json:"interview"`
	Questions []db.Question `json:"questions"`
}

// handleCreateInterview registers a candidate, opens an interview and
// persists a generated question set. Question generation failing aborts the
// whole request; an interview without questions is useless.
func (s *Server) handleCreateInterview(w http.ResponseWriter, r *http.Request) {
	var req createInterviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := requestValidator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	set, err := s.generator.Generate(r.Context(), req.Role, req.ResumeText)
	if err != nil {
		upstream := &ErrUpstream{Cause: err}
		s.errorResponse(w, HTTPStatus(upstream), upstream.Error())
		return
	}

	candidate, err := s.store.CreateCandidate(r.Context(), req.Name, req.Email, req.Phone, req.Role)
	if err != nil {
		s.logger.Error("create candidate failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to create candidate")
		return
	}

	interview, err := s.store.CreateInterview(r.Context(), candidate.ID)
	if err != nil {
		s.logger.Error("create interview failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to create interview")
		return
	}

	texts := make([]string, len(set))
	difficulties := make([]string, len(set))
	for i, q := range set {
		texts[i] = q.Text
		difficulties[i] = string(q.Difficulty)
	}
	stored, err := s.store.InsertQuestions(r.Context(), interview.ID, texts, difficulties)
	if err != nil {
		s.logger.Error("insert questions failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to store questions")
		return
	}

	s.jsonResponse(w, http.StatusCreated, createInterviewResponse{
		Candidate: candidate,
		Interview: interview,
		Questions: stored,
	})
}

type submitAnswerRequest struct {
	QuestionID uuid.UUID `json:"question_id" validate:"required"`
	AnswerText string    `json:"answer_text"`
	TimeTaken  int       `json:"time_taken" validate:"gte=0"`
}

// handleSubmitAnswer records one timed answer.
func (s *Server) handleSubmitAnswer(w http.ResponseWriter, r *http.Request) {
	interviewID, err := pathID(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var req submitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := requestValidator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	answer, err := s.store.InsertAnswer(r.Context(), interviewID, req.QuestionID, req.AnswerText, req.TimeTaken)
	if err != nil {
		s.logger.Error("insert answer failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to store answer")
		return
	}

	s.jsonResponse(w, http.StatusCreated, answer)
}

type completeInterviewRequest struct {
	FinalScore *int   `json:"final_score" validate:"omitempty,gte=0,lte=100"`
	Summary    string `json:"summary"`
}

// handleCompleteInterview marks the interview finished and optionally records
// the candidate's score and summary.
func (s *Server) handleCompleteInterview(w http.ResponseWriter, r *http.Request) {
	interviewID, err := pathID(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var req completeInterviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := requestValidator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	detail, err := s.store.GetInterview(r.Context(), interviewID)
	if err != nil {
		s.logger.Error("get interview failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to load interview")
		return
	}
	if detail == nil {
		notFound := &ErrNotFound{Resource: "interview", ID: interviewID}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	if err := s.store.CompleteInterview(r.Context(), interviewID); err != nil {
		s.logger.Error("complete interview failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to complete interview")
		return
	}

	if req.FinalScore != nil {
		if err := s.store.CompleteCandidate(r.Context(), detail.Interview.CandidateID, *req.FinalScore, req.Summary); err != nil {
			s.logger.Error("complete candidate failed", zap.Error(err))
			s.errorResponse(w, http.StatusInternalServerError, "failed to record score")
			return
		}
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": db.StatusCompleted})
}

// handleGetInterview returns the full reviewer view of one interview.
func (s *Server) handleGetInterview(w http.ResponseWriter, r *http.Request) {
	interviewID, err := pathID(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	detail, err := s.store.GetInterview(r.Context(), interviewID)
	if err != nil {
		s.logger.Error("get interview failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to load interview")
		return
	}
	if detail == nil {
		notFound := &ErrNotFound{Resource: "interview", ID: interviewID}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, detail)
}

// handleListInterviews returns recent interviews newest first.
func (s *Server) handleListInterviews(w http.ResponseWriter, r *http.Request) {
	interviews, err := s.store.ListInterviews(r.Context(), 0)
	if err != nil {
		s.logger.Error("list interviews failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to list interviews")
		return
	}
	if interviews == nil {
		interviews = []db.Interview{}
	}
	s.jsonResponse(w, http.StatusOK, interviews)
}

// handleListCandidates returns recent candidates newest first.
func (s *Server) handleListCandidates(w http.ResponseWriter, r *http.Request) {
	candidates, err := s.store.ListCandidates(r.Context(), 0)
	if err != nil {
		s.logger.Error("list candidates failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to list candidates")
		return
	}
	if candidates == nil {
		candidates = []db.Candidate{}
	}
	s.jsonResponse(w, http.StatusOK, candidates)
}
