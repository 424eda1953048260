package extraction

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/interview-agent/internal/llm"
	"github.com/jonathan/interview-agent/internal/normalize"
)

// Service runs the full resume extraction pipeline: normalize, extract
// (heuristic and model in parallel), reconcile. Invocations share no mutable
// state and may run concurrently.
type Service struct {
	model  *ModelExtractor
	logger *zap.Logger
}

// NewService creates an extraction service backed by the given LLM client.
func NewService(client llm.Client, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		model:  NewModelExtractor(client),
		logger: logger,
	}
}

// Extract processes one uploaded resume. A model failure aborts the request;
// the caller's degraded path is asking the user for the missing data.
func (s *Service) Extract(ctx context.Context, req Request) (Result, error) {
	text := normalize.Normalize(req.Content, req.DeclaredType, req.IsEncoded)

	var heuristic, model ExtractionResult
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		heuristic = Heuristic(text)
		return nil
	})
	g.Go(func() error {
		var err error
		model, err = s.model.Extract(gctx, text, req)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Warn("resume extraction failed",
			zap.String("file", req.FileName),
			zap.Error(err))
		return Result{}, err
	}

	result := Reconcile(heuristic, model, text)
	s.logger.Info("resume extracted",
		zap.String("file", req.FileName),
		zap.Bool("needs_user_input", result.NeedsUserInput),
		zap.Strings("missing_fields", result.MissingFields))
	return result, nil
}
