// Package main provides the entry point for the ATS resume screener CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ats_screener",
	Short: "ATS resume screening and analysis",
	Long:  "ATS Screener scores a resume against a job description, reports missing skills, and suggests structural fixes the way an applicant tracking system would read the document.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
