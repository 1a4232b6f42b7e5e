package main

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/ats-screener/internal/config"
	"github.com/jonathan/ats-screener/internal/ingestion"
	"github.com/jonathan/ats-screener/internal/logger"
	"github.com/jonathan/ats-screener/internal/observability"
	"github.com/jonathan/ats-screener/internal/pipeline"
	"github.com/jonathan/ats-screener/internal/rendering"
	"github.com/jonathan/ats-screener/internal/skills"
	"github.com/jonathan/ats-screener/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full resume analysis against a job description",
	Long: `Scores the resume against a job description, lists the skills the resume is
missing, and suggests structural fixes. Without --jd or --jd-url only the
structural advisor runs and the score stays zero.

Configuration can be loaded from a JSON file using --config (or the ATS_CONFIG
environment variable). Command-line arguments override config file values.`,
	RunE: runAnalyze,
}

var (
	analyzeConfigPath string
	analyzeJob        string
	analyzeJobURL     string
	analyzeResume     string
	analyzeStructure  string
	analyzeOutput     string
	analyzeJSON       bool
	analyzeLLM        bool
	analyzeAPIKey     string
	analyzeModel      string
	analyzeUseBrowser bool
	analyzeTimeout    int
	analyzeVerbose    bool
)

func init() {
	// Config file flag (processed first)
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	analyzeCmd.Flags().StringVarP(&analyzeJob, "jd", "j", "", "Path to job description file, plain text or .html (mutually exclusive with --jd-url)")
	analyzeCmd.Flags().StringVar(&analyzeJobURL, "jd-url", "", "URL to fetch the job description from (mutually exclusive with --jd)")
	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to resume text file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeStructure, "structure", "s", "", "Path to resume structure JSON file")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "out", "o", "", "Write the report to this path instead of stdout")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Emit the report as JSON")
	analyzeCmd.Flags().BoolVar(&analyzeLLM, "llm", false, "Annotate skills with the Gemini backend instead of the builtin vocabulary")
	analyzeCmd.Flags().BoolVar(&analyzeUseBrowser, "use-browser", false, "Use headless browser for script-rendered job boards (requires Chrome)")
	analyzeCmd.Flags().IntVar(&analyzeTimeout, "timeout", 0, "Job fetch timeout in seconds")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print stage progress and debug logs")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API key (optional, defaults to GEMINI_API_KEY env var)")
	analyzeCmd.Flags().StringVar(&analyzeModel, "model", "", "Gemini model override for skill annotation")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided (flag first, then ATS_CONFIG)
	configPath := analyzeConfigPath
	if configPath == "" {
		configPath = os.Getenv("ATS_CONFIG")
	}

	var cfg config.Config
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = *loaded
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("jd") {
		cfg.Job = analyzeJob
	}
	if cmd.Flags().Changed("jd-url") {
		cfg.JobURL = analyzeJobURL
	}
	if cmd.Flags().Changed("resume") {
		cfg.Resume = analyzeResume
	}
	if cmd.Flags().Changed("structure") {
		cfg.Structure = analyzeStructure
	}
	if cmd.Flags().Changed("out") {
		cfg.Output = analyzeOutput
	}
	if cmd.Flags().Changed("json") {
		if analyzeJSON {
			cfg.Format = config.FormatJSON
		} else {
			cfg.Format = config.FormatText
		}
	}
	if cmd.Flags().Changed("llm") {
		if analyzeLLM {
			cfg.Annotator = config.AnnotatorGemini
		} else {
			cfg.Annotator = config.AnnotatorFallback
		}
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = analyzeAPIKey
	}
	if cmd.Flags().Changed("model") {
		cfg.Model = analyzeModel
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = analyzeUseBrowser
	}
	if cmd.Flags().Changed("timeout") {
		cfg.TimeoutSeconds = analyzeTimeout
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = analyzeVerbose
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Config{})

	// Step 4: Validate required fields
	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required (via flag or config)")
	}
	if cfg.Job != "" && cfg.JobURL != "" {
		return fmt.Errorf("--jd and --jd-url are mutually exclusive; provide only one")
	}

	// Step 5: Logger. Quiet by default so the report stays the only output.
	log := zap.NewNop()
	if cfg.Verbose {
		built, err := logger.New(cfg.Format == config.FormatJSON, true)
		if err != nil {
			return fmt.Errorf("failed to build logger: %w", err)
		}
		log = built
	}

	// Step 6: Skill annotator (LLM-backed only when asked for)
	var annotator skills.Annotator
	if cfg.Annotator == config.AnnotatorGemini {
		a, client, err := buildAnnotator(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer func() { _ = client.Close() }()
		annotator = a
	}

	// Step 7: Load inputs
	resumeText, err := readResumeFile(cfg.Resume)
	if err != nil {
		return err
	}

	var elements []types.ContentElement
	if cfg.Structure != "" {
		elements, err = ingestion.LoadElements(cfg.Structure)
		if err != nil {
			return fmt.Errorf("failed to load resume structure: %w", err)
		}
	}

	var jobText string
	if cfg.Job != "" || cfg.JobURL != "" {
		text, meta, err := loadJobSource(ctx, cfg, log)
		if err != nil {
			return fmt.Errorf("failed to ingest job description: %w", err)
		}
		jobText = text
		log.Debug("job description ingested",
			zap.String("hash", meta.Hash),
			zap.String("platform", meta.Platform),
			zap.Int("length", len(text)))
	}

	// Step 8: Run the pipeline
	runner := pipeline.NewRunner(annotator, log)
	opts := pipeline.RunOptions{
		JobText:    jobText,
		ResumeText: resumeText,
		Elements:   elements,
	}

	if cfg.Verbose && cfg.Format == config.FormatText {
		printer := observability.NewPrinter(os.Stdout)
		var mu sync.Mutex
		opts.OnProgress = func(ev pipeline.ProgressEvent) {
			mu.Lock()
			defer mu.Unlock()
			if ev.Step == pipeline.StepJobProfile {
				if p, ok := ev.Content.(*types.JobProfile); ok {
					printer.PrintJobProfile(p)
					return
				}
			}
			fmt.Fprintf(os.Stdout, "[%s] %s\n", ev.Step, ev.Message)
		}
	}

	report, err := runner.Run(ctx, opts)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	// Step 9: Render and write the report
	var rendered []byte
	if cfg.Format == config.FormatJSON {
		rendered, err = rendering.RenderJSON(report)
	} else {
		var text string
		text, err = rendering.RenderText(report)
		rendered = []byte(text)
	}
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	return writeReport(cfg.Output, rendered)
}
