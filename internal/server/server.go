package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/interview-agent/internal/config"
	"github.com/jonathan/interview-agent/internal/db"
	"github.com/jonathan/interview-agent/internal/extraction"
	"github.com/jonathan/interview-agent/internal/llm"
	"github.com/jonathan/interview-agent/internal/questions"
	"github.com/jonathan/interview-agent/internal/server/middleware"
)

// Extractor runs the resume extraction pipeline.
type Extractor interface {
	Extract(ctx context.Context, req extraction.Request) (extraction.Result, error)
}

// QuestionGenerator produces a sanitized interview question set.
type QuestionGenerator interface {
	Generate(ctx context.Context, role, resumeContext string) ([]questions.Question, error)
}

// Store is the persistence surface the handlers need. *db.DB implements it.
type Store interface {
	CreateCandidate(ctx context.Context, name, email, phone, roleApplied string) (*db.Candidate, error)
	CompleteCandidate(ctx context.Context, candidateID uuid.UUID, finalScore int, summary string) error
	ListCandidates(ctx context.Context, limit int) ([]db.Candidate, error)
	CreateInterview(ctx context.Context, candidateID uuid.UUID) (*db.Interview, error)
	InsertQuestions(ctx context.Context, interviewID uuid.UUID, texts, difficulties []string) ([]db.Question, error)
	InsertAnswer(ctx context.Context, interviewID, questionID uuid.UUID, answerText string, timeTaken int) (*db.Answer, error)
	CompleteInterview(ctx context.Context, interviewID uuid.UUID) error
	GetInterview(ctx context.Context, interviewID uuid.UUID) (*db.InterviewDetail, error)
	ListInterviews(ctx context.Context, limit int) ([]db.Interview, error)
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	store       Store
	extractor   Extractor
	generator   QuestionGenerator
	jwtService  *JWTService
	authHandler *AuthHandler
	logger      *zap.Logger

	database  *db.DB
	llmClient llm.Client
}

// New creates a server instance wired against real dependencies.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Server, error) {
	if err := cfg.RequireServer(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.EnsureSchema(ctx); err != nil {
		database.Close()
		return nil, err
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.APIKey)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create completion client: %w", err)
	}

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		database.Close()
		return nil, err
	}
	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		database.Close()
		return nil, err
	}
	jwtService := NewJWTService(jwtConfig)

	s := &Server{
		store:       database,
		extractor:   extraction.NewService(client, logger),
		generator:   questions.NewGenerator(client, questions.DefaultPolicy(), logger),
		jwtService:  jwtService,
		authHandler: NewAuthHandler(passwordConfig, cfg.ReviewerPasswordHash, jwtService),
		logger:      logger,
		database:    database,
		llmClient:   client,
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(s.routes())),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // model calls can be slow
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the request mux.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /auth/login", s.authHandler.Login)

	// Candidate-side flow, unauthenticated
	mux.HandleFunc("POST /resumes/parse", s.handleParseResume)
	mux.HandleFunc("POST /interviews", s.handleCreateInterview)
	mux.HandleFunc("POST /interviews/{id}/answers", s.handleSubmitAnswer)
	mux.HandleFunc("POST /interviews/{id}/complete", s.handleCompleteInterview)

	// Reviewer dashboard, token required
	auth := middleware.RequireAuth(s.jwtService)
	mux.Handle("GET /interviews", auth(http.HandlerFunc(s.handleListInterviews)))
	mux.Handle("GET /interviews/{id}", auth(http.HandlerFunc(s.handleGetInterview)))
	mux.Handle("GET /candidates", auth(http.HandlerFunc(s.handleListCandidates)))

	return mux
}

// Start begins listening and blocks until SIGINT/SIGTERM, then shuts down
// gracefully.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-stop
	s.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.llmClient != nil {
		_ = s.llmClient.Close()
	}
	if s.database != nil {
		s.database.Close()
	}
	s.logger.Info("server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn("error encoding JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// pathID parses the {id} path segment as a UUID.
func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, &ErrValidation{Field: "id", Message: "must be a UUID"}
	}
	return id, nil
}
