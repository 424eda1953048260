package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-agent/internal/config"
	"github.com/jonathan/interview-agent/internal/llm"
	"github.com/jonathan/interview-agent/internal/logger"
	"github.com/jonathan/interview-agent/internal/questions"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Generate an interview question set for a role",
	Long:  "Generate and sanitize a six-question technical interview set (2 easy, 2 medium, 2 hard) for a role, optionally grounded in a resume text file.",
	RunE:  runQuestions,
}

var (
	questionsRole       string
	questionsResumeFile string
	questionsOutputFile string
	questionsAPIKey     string
)

func init() {
	questionsCmd.Flags().StringVar(&questionsRole, "role", "", "Role the candidate applied for (required)")
	questionsCmd.Flags().StringVar(&questionsResumeFile, "resume", "", "Path to resume text file for context")
	questionsCmd.Flags().StringVarP(&questionsOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	questionsCmd.Flags().StringVar(&questionsAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	_ = questionsCmd.MarkFlagRequired("role")

	rootCmd.AddCommand(questionsCmd)
}

func runQuestions(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if questionsAPIKey != "" {
		cfg.APIKey = questionsAPIKey
	}
	if err := cfg.RequireAPIKey(); err != nil {
		return err
	}

	resumeContext := ""
	if questionsResumeFile != "" {
		raw, err := os.ReadFile(questionsResumeFile)
		if err != nil {
			return fmt.Errorf("failed to read resume file: %w", err)
		}
		resumeContext = string(raw)
	}

	log, err := logger.New(false, debugLogging)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()
	client, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create completion client: %w", err)
	}
	defer func() { _ = client.Close() }()

	gen := questions.NewGenerator(client, questions.DefaultPolicy(), log)
	set, err := gen.Generate(ctx, questionsRole, resumeContext)
	if err != nil {
		return fmt.Errorf("failed to generate questions: %w", err)
	}

	out, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal questions: %w", err)
	}
	return writeOutput(questionsOutputFile, append(out, '\n'))
}
