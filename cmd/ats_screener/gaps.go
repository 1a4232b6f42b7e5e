package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/ats-screener/internal/config"
	"github.com/jonathan/ats-screener/internal/gaps"
	"github.com/jonathan/ats-screener/internal/observability"
	"github.com/jonathan/ats-screener/internal/skills"
)

var gapsCmd = &cobra.Command{
	Use:   "gaps",
	Short: "List job description skills missing from a resume",
	Long:  "Extracts skills from the job description and the resume, then reports the ones the resume fails to cover, ranked by how much the posting emphasizes them.",
	RunE:  runGaps,
}

var (
	gapsJob    string
	gapsJobURL string
	gapsResume string
	gapsJSON   bool
)

func init() {
	gapsCmd.Flags().StringVarP(&gapsJob, "jd", "j", "", "Path to job description file (mutually exclusive with --jd-url)")
	gapsCmd.Flags().StringVar(&gapsJobURL, "jd-url", "", "URL to fetch the job description from (mutually exclusive with --jd)")
	gapsCmd.Flags().StringVarP(&gapsResume, "resume", "r", "", "Path to resume text file (required)")
	gapsCmd.Flags().BoolVar(&gapsJSON, "json", false, "Emit the gap list as JSON")

	if err := gapsCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}

	rootCmd.AddCommand(gapsCmd)
}

func runGaps(_ *cobra.Command, _ []string) error {
	if gapsJob == "" && gapsJobURL == "" {
		return fmt.Errorf("either --jd or --jd-url must be provided")
	}
	if gapsJob != "" && gapsJobURL != "" {
		return fmt.Errorf("--jd and --jd-url are mutually exclusive; provide only one")
	}

	ctx := context.Background()

	cfg := config.Config{Job: gapsJob, JobURL: gapsJobURL, TimeoutSeconds: config.DefaultFetchTimeoutSeconds}
	jobText, _, err := loadJobSource(ctx, cfg, zap.NewNop())
	if err != nil {
		return fmt.Errorf("failed to ingest job description: %w", err)
	}

	resumeText, err := readResumeFile(gapsResume)
	if err != nil {
		return err
	}

	analyzer := gaps.NewAnalyzer(skills.NewExtractor(nil, nil))
	missing := analyzer.MissingSkills(ctx, jobText, resumeText)

	if gapsJSON {
		out, err := json.MarshalIndent(missing, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal gaps: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(out))
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintGaps(missing)
	return nil
}
