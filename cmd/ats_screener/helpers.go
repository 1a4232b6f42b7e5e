package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/ats-screener/internal/config"
	"github.com/jonathan/ats-screener/internal/ingestion"
	"github.com/jonathan/ats-screener/internal/llm"
)

// loadJobSource ingests the job description named by cfg. URLs and HTML files
// go through main-content extraction; everything else is treated as plain
// text. Exactly one of cfg.Job and cfg.JobURL must be set.
func loadJobSource(ctx context.Context, cfg config.Config, log *zap.Logger) (string, *ingestion.Metadata, error) {
	opts := &ingestion.HTMLOptions{
		UseBrowser: cfg.UseBrowser,
		Timeout:    time.Duration(cfg.TimeoutSeconds) * time.Second,
		Logger:     log,
	}

	if cfg.JobURL != "" {
		return ingestion.IngestJobHTML(ctx, cfg.JobURL, opts)
	}

	switch strings.ToLower(filepath.Ext(cfg.Job)) {
	case ".html", ".htm":
		return ingestion.IngestJobHTML(ctx, cfg.Job, opts)
	default:
		return ingestion.IngestJobText(cfg.Job)
	}
}

// readResumeFile reads the resume text file.
func readResumeFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read resume file: %w", err)
	}
	return string(data), nil
}

// buildAnnotator constructs the Gemini-backed skill annotator. The caller
// owns the returned client and must Close it when done.
func buildAnnotator(ctx context.Context, cfg config.Config, log *zap.Logger) (*llm.Annotator, llm.Client, error) {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil, nil, fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required with --llm")
	}

	llmCfg := llm.DefaultConfig()
	if cfg.Model != "" {
		llmCfg = llmCfg.WithModel(llm.TierLite, cfg.Model)
	}

	client, err := llm.NewClient(ctx, llmCfg, apiKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	return llm.NewAnnotator(client, log), client, nil
}

// writeReport writes rendered report bytes to the output path, or stdout when
// the path is empty.
func writeReport(path string, content []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(content)
		return err
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
