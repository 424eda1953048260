package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-agent/internal/config"
	"github.com/jonathan/interview-agent/internal/extraction"
	"github.com/jonathan/interview-agent/internal/llm"
	"github.com/jonathan/interview-agent/internal/logger"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Extract a candidate profile from a resume file",
	Long:  "Run the extraction pipeline (normalize, heuristic and model extraction, grounded reconciliation) over a local resume file and print the profile as JSON.",
	RunE:  runParse,
}

var (
	parseInputFile  string
	parseOutputFile string
	parseAPIKey     string
)

func init() {
	parseCmd.Flags().StringVarP(&parseInputFile, "in", "i", "", "Path to resume file (required)")
	parseCmd.Flags().StringVarP(&parseOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	parseCmd.Flags().StringVar(&parseAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	_ = parseCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if parseAPIKey != "" {
		cfg.APIKey = parseAPIKey
	}
	if err := cfg.RequireAPIKey(); err != nil {
		return err
	}

	raw, err := os.ReadFile(parseInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
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

	req := buildParseRequest(parseInputFile, raw)
	result, err := extraction.NewService(client, log).Extract(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to parse resume: %w", err)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	return writeOutput(parseOutputFile, append(out, '\n'))
}

// buildParseRequest prepares the extraction request. Binary document types
// are base64 encoded the way browser uploads arrive; plain text passes
// through as-is.
func buildParseRequest(path string, raw []byte) extraction.Request {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".pdf":
		return extraction.Request{
			Content:      base64.StdEncoding.EncodeToString(raw),
			FileName:     filepath.Base(path),
			DeclaredType: "application/pdf",
			IsEncoded:    true,
		}
	case ".docx":
		return extraction.Request{
			Content:      base64.StdEncoding.EncodeToString(raw),
			FileName:     filepath.Base(path),
			DeclaredType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
			IsEncoded:    true,
		}
	default:
		return extraction.Request{
			Content:      string(raw),
			FileName:     filepath.Base(path),
			DeclaredType: "text/plain",
		}
	}
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
