package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-screener/internal/ingestion"
	"github.com/jonathan/ats-screener/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a resume structure file or any JSON document against a schema",
	Long: `With --structure, validates a resume structure file against the bundled
structure schema plus per-element rules. With --schema and --json, validates
an arbitrary JSON document against a JSON Schema file.`,
	RunE: runValidate,
}

var (
	validateStructure  string
	validateSchemaPath string
	validateJSONPath   string
)

func init() {
	validateCmd.Flags().StringVarP(&validateStructure, "structure", "s", "", "Path to resume structure JSON file")
	validateCmd.Flags().StringVar(&validateSchemaPath, "schema", "", "Path to JSON Schema file (requires --json)")
	validateCmd.Flags().StringVar(&validateJSONPath, "json", "", "Path to JSON document to validate (requires --schema)")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	useStructure := validateStructure != ""
	useSchema := validateSchemaPath != "" || validateJSONPath != ""

	if useStructure && useSchema {
		return fmt.Errorf("cannot use --structure with --schema/--json")
	}
	if !useStructure && !useSchema {
		return fmt.Errorf("must provide either --structure or --schema/--json")
	}

	if useStructure {
		elements, err := ingestion.LoadElements(validateStructure)
		if err != nil {
			return reportValidationFailure(err)
		}
		fmt.Fprintf(os.Stdout, "Validation passed: %d element(s)\n", len(elements))
		return nil
	}

	if validateSchemaPath == "" || validateJSONPath == "" {
		return fmt.Errorf("--schema and --json must be provided together")
	}
	if err := schemas.ValidateJSON(validateSchemaPath, validateJSONPath); err != nil {
		return reportValidationFailure(err)
	}
	fmt.Fprintf(os.Stdout, "Validation passed\n")
	return nil
}

// reportValidationFailure prints schema violations per field before returning
// the command error.
func reportValidationFailure(err error) error {
	var validationErr *schemas.ValidationError
	if errors.As(err, &validationErr) {
		fmt.Fprintf(os.Stdout, "Validation failed:\n")
		for _, fe := range validationErr.Errors {
			fmt.Fprintf(os.Stdout, "  - %s: %s\n", fe.Field, fe.Message)
		}
		return fmt.Errorf("validation failed with %d error(s)", len(validationErr.Errors))
	}
	return fmt.Errorf("validation failed: %w", err)
}
