// Package main provides the entry point for the career_journal CLI.
package main

import (
	"fmt"

	"github.com/jonathan/career-journal/internal/experience"
	"github.com/jonathan/career-journal/internal/types"
	"github.com/jonathan/career-journal/internal/validation"
	"github.com/spf13/cobra"
)

var entryCmd = &cobra.Command{
	Use:   "entry",
	Short: "Add, edit, remove and list career entries",
}

var entryAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a career entry",
	Long:  "Adds a career entry from flags, a draft file (--file, JSON or YAML), or both; flags override the file. The new entry is placed first.",
	Args:  cobra.NoArgs,
	RunE:  runEntryAdd,
}

var entryUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Edit a career entry",
	Long:  "Edits the entry with the given id. Fields not given keep their current values; list flags replace the whole list.",
	Args:  cobra.ExactArgs(1),
	RunE:  runEntryUpdate,
}

var entryDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a career entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runEntryDelete,
}

var entryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List career entries, newest first",
	Args:  cobra.NoArgs,
	RunE:  runEntryList,
}

var entryShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one career entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runEntryShow,
}

// entryFlags holds the draft fields settable from the command line
type entryFlags struct {
	file             string
	jobTitle         string
	company          string
	startDate        string
	endDate          string
	current          bool
	achievements     []string
	responsibilities []string
	skills           []string
	description      string
}

var (
	addFlags    entryFlags
	updateFlags entryFlags
)

func (f *entryFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "Path to a draft file (JSON or YAML)")
	cmd.Flags().StringVar(&f.jobTitle, "title", "", "Job title")
	cmd.Flags().StringVar(&f.company, "company", "", "Company")
	cmd.Flags().StringVar(&f.startDate, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.endDate, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&f.current, "current", false, "This is a current role")
	cmd.Flags().StringArrayVar(&f.achievements, "achievement", nil, "Key achievement (repeatable)")
	cmd.Flags().StringArrayVar(&f.responsibilities, "responsibility", nil, "Responsibility (repeatable)")
	cmd.Flags().StringArrayVar(&f.skills, "skill", nil, "Skill (repeatable)")
	cmd.Flags().StringVar(&f.description, "description", "", "Free-text description")
}

// apply copies every flag the user set onto draft
func (f *entryFlags) apply(cmd *cobra.Command, draft *types.EntryDraft) {
	flags := cmd.Flags()
	if flags.Changed("title") {
		draft.JobTitle = f.jobTitle
	}
	if flags.Changed("company") {
		draft.Company = f.company
	}
	if flags.Changed("start") {
		draft.StartDate = f.startDate
	}
	if flags.Changed("end") {
		draft.EndDate = f.endDate
	}
	if flags.Changed("current") {
		draft.IsCurrentRole = f.current
	}
	if flags.Changed("achievement") {
		draft.Achievements = append([]string(nil), f.achievements...)
	}
	if flags.Changed("responsibility") {
		draft.Responsibilities = append([]string(nil), f.responsibilities...)
	}
	if flags.Changed("skill") {
		draft.Skills = append([]string(nil), f.skills...)
	}
	if flags.Changed("description") {
		draft.Description = f.description
	}
}

func init() {
	addFlags.bind(entryAddCmd)
	updateFlags.bind(entryUpdateCmd)

	entryCmd.AddCommand(entryAddCmd, entryUpdateCmd, entryDeleteCmd, entryListCmd, entryShowCmd)
	rootCmd.AddCommand(entryCmd)
}

// submitDraft validates and normalizes draft, printing any field errors
func submitDraft(a *app, draft types.EntryDraft) (types.CareerEntry, error) {
	opts := validation.Options{StrictDates: a.cfg.Validation.StrictDates}
	entry, errs := experience.Submit(draft, opts)
	if !errs.Valid() {
		a.printer.PrintFieldErrors("INVALID ENTRY", errs)
		return types.CareerEntry{}, errs
	}
	return entry, nil
}

func runEntryAdd(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	draft := types.NewDraft()
	if addFlags.file != "" {
		loaded, err := experience.LoadDraft(addFlags.file)
		if err != nil {
			return fmt.Errorf("failed to load draft: %w", err)
		}
		draft = *loaded
	}
	addFlags.apply(cmd, &draft)

	entry, err := submitDraft(a, draft)
	if err != nil {
		return err
	}

	stored, err := a.store.AddEntry(cmd.Context(), entry)
	if err != nil {
		return fmt.Errorf("failed to save entry: %w", err)
	}

	a.printer.PrintEntry(stored)
	return nil
}

func runEntryUpdate(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	id := args[0]
	current, ok := a.store.Entry(id)
	if !ok {
		return fmt.Errorf("no career entry with id %s", id)
	}

	draft := types.DraftFromEntry(current)
	if updateFlags.file != "" {
		loaded, err := experience.LoadDraft(updateFlags.file)
		if err != nil {
			return fmt.Errorf("failed to load draft: %w", err)
		}
		draft = *loaded
	}
	updateFlags.apply(cmd, &draft)

	entry, err := submitDraft(a, draft)
	if err != nil {
		return err
	}

	updated, _, err := a.store.UpdateEntry(cmd.Context(), id, entry)
	if err != nil {
		return fmt.Errorf("failed to save entry: %w", err)
	}

	a.printer.PrintEntry(updated)
	return nil
}

func runEntryDelete(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	removed, err := a.store.DeleteEntry(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to save entries: %w", err)
	}

	if removed {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted entry %s (%d remaining)\n", args[0], a.store.Len())
	} else {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "No entry with id %s; nothing deleted\n", args[0])
	}
	return nil
}

func runEntryList(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	a.printer.PrintEntries(a.store.Entries())
	return nil
}

func runEntryShow(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	entry, ok := a.store.Entry(args[0])
	if !ok {
		return fmt.Errorf("no career entry with id %s", args[0])
	}

	a.printer.PrintEntry(entry)
	return nil
}
