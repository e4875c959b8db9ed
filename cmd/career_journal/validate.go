// Package main provides the entry point for the career_journal CLI.
package main

import (
	"fmt"

	"github.com/jonathan/career-journal/internal/experience"
	"github.com/jonathan/career-journal/internal/observability"
	"github.com/jonathan/career-journal/internal/validation"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a career entry draft file without saving it",
	Long:  "Loads a JSON or YAML draft, reports every field error, and prints the entry as it would be stored.",
	Args:  cobra.NoArgs,
	RunE:  runValidate,
}

var (
	validateFile   string
	validateStrict bool
)

func init() {
	validateCmd.Flags().StringVarP(&validateFile, "file", "f", "", "Path to a draft file (required)")
	validateCmd.Flags().BoolVar(&validateStrict, "strict-dates", false, "Also check date format and ordering")

	if err := validateCmd.MarkFlagRequired("file"); err != nil {
		panic(fmt.Sprintf("failed to mark file flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	draft, err := experience.LoadDraft(validateFile)
	if err != nil {
		return fmt.Errorf("failed to load draft: %w", err)
	}

	opts := validation.Options{StrictDates: cfg.Validation.StrictDates || validateStrict}
	printer := observability.NewPrinter(cmd.OutOrStdout())

	entry, errs := experience.Submit(*draft, opts)
	if !errs.Valid() {
		printer.PrintFieldErrors("INVALID ENTRY", errs)
		return errs
	}

	printer.PrintEntry(entry)
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Validation passed")
	return nil
}
