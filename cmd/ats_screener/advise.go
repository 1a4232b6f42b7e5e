package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-screener/internal/advice"
	"github.com/jonathan/ats-screener/internal/ingestion"
	"github.com/jonathan/ats-screener/internal/observability"
	"github.com/jonathan/ats-screener/internal/types"
)

var adviseCmd = &cobra.Command{
	Use:   "advise",
	Short: "Suggest structural fixes for a resume",
	Long:  "Checks the resume text and its structure elements against ATS readability rules and prints prioritized restructuring advice. No job description needed.",
	RunE:  runAdvise,
}

var (
	adviseResume    string
	adviseStructure string
	adviseJSON      bool
)

func init() {
	adviseCmd.Flags().StringVarP(&adviseResume, "resume", "r", "", "Path to resume text file (required)")
	adviseCmd.Flags().StringVarP(&adviseStructure, "structure", "s", "", "Path to resume structure JSON file")
	adviseCmd.Flags().BoolVar(&adviseJSON, "json", false, "Emit the advice as JSON")

	if err := adviseCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}

	rootCmd.AddCommand(adviseCmd)
}

func runAdvise(_ *cobra.Command, _ []string) error {
	resumeText, err := readResumeFile(adviseResume)
	if err != nil {
		return err
	}

	var elements []types.ContentElement
	if adviseStructure != "" {
		elements, err = ingestion.LoadElements(adviseStructure)
		if err != nil {
			return fmt.Errorf("failed to load resume structure: %w", err)
		}
	}

	issues := advice.NewAdvisor(nil).Analyze(resumeText, elements)

	if adviseJSON {
		out, err := json.MarshalIndent(issues, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal advice: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(out))
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintIssues(issues)
	return nil
}
