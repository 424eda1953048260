package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/jonathan/interview-agent/internal/extraction"
)

type parseResumeRequest struct {
	Content   string `json:"content" validate:"required"`
	FileName  string `json:"file_name"`
	FileType  string `json:"file_type"`
	IsEncoded bool   `json:"is_encoded"`
}

var requestValidator = validator.New()

// handleParseResume runs the extraction pipeline over an uploaded resume.
// A completion-service failure maps to 502; the client falls back to manual
// entry of the profile fields.
func (s *Server) handleParseResume(w http.ResponseWriter, r *http.Request) {
	var req parseResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := requestValidator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	result, err := s.extractor.Extract(r.Context(), extraction.Request{
		Content:      req.Content,
		FileName:     req.FileName,
		DeclaredType: req.FileType,
		IsEncoded:    req.IsEncoded,
	})
	if err != nil {
		var callErr *extraction.ModelCallError
		var malformed *extraction.MalformedResponseError
		if errors.As(err, &callErr) || errors.As(err, &malformed) {
			upstream := &ErrUpstream{Cause: err}
			s.errorResponse(w, HTTPStatus(upstream), upstream.Error())
			return
		}
		s.logger.Error("resume parse failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "resume parsing failed")
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}
