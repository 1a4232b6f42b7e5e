package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/ats-screener/internal/config"
	"github.com/jonathan/ats-screener/internal/ingestion"
	"github.com/jonathan/ats-screener/internal/observability"
	"github.com/jonathan/ats-screener/internal/profile"
	"github.com/jonathan/ats-screener/internal/scoring"
	"github.com/jonathan/ats-screener/internal/skills"
	"github.com/jonathan/ats-screener/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume against a job description",
	Long:  "Computes the 0-100 ATS compatibility score and its component breakdown using the builtin skill vocabulary. Use analyze for the full report.",
	RunE:  runScore,
}

var (
	scoreJob       string
	scoreJobURL    string
	scoreResume    string
	scoreStructure string
	scoreJSON      bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreJob, "jd", "j", "", "Path to job description file (mutually exclusive with --jd-url)")
	scoreCmd.Flags().StringVar(&scoreJobURL, "jd-url", "", "URL to fetch the job description from (mutually exclusive with --jd)")
	scoreCmd.Flags().StringVarP(&scoreResume, "resume", "r", "", "Path to resume text file (required)")
	scoreCmd.Flags().StringVarP(&scoreStructure, "structure", "s", "", "Path to resume structure JSON file")
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "Emit the breakdown as JSON")

	if err := scoreCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	if scoreJob == "" && scoreJobURL == "" {
		return fmt.Errorf("either --jd or --jd-url must be provided")
	}
	if scoreJob != "" && scoreJobURL != "" {
		return fmt.Errorf("--jd and --jd-url are mutually exclusive; provide only one")
	}

	ctx := context.Background()

	cfg := config.Config{Job: scoreJob, JobURL: scoreJobURL, TimeoutSeconds: config.DefaultFetchTimeoutSeconds}
	jobText, _, err := loadJobSource(ctx, cfg, zap.NewNop())
	if err != nil {
		return fmt.Errorf("failed to ingest job description: %w", err)
	}

	resumeText, err := readResumeFile(scoreResume)
	if err != nil {
		return err
	}

	var elements []types.ContentElement
	if scoreStructure != "" {
		elements, err = ingestion.LoadElements(scoreStructure)
		if err != nil {
			return fmt.Errorf("failed to load resume structure: %w", err)
		}
	}

	extractor := skills.NewExtractor(nil, nil)
	p, err := profile.Build(ctx, jobText, extractor)
	if err != nil {
		return fmt.Errorf("failed to profile job description: %w", err)
	}

	breakdown := scoring.NewCalculator(extractor, nil).Evaluate(ctx, p, resumeText, elements)

	if scoreJSON {
		out, err := json.MarshalIndent(breakdown, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal breakdown: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(out))
		return nil
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintScore(breakdown)
	printer.PrintBreakdown(breakdown)
	return nil
}
