// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jonathan/career-journal/internal/timeline"
	"github.com/jonathan/career-journal/internal/types"
	"github.com/jonathan/career-journal/internal/validation"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for the CLI
type Printer struct {
	out io.Writer
	now func() time.Time
}

// PrinterOption configures a Printer
type PrinterOption func(*Printer)

// WithClock sets the time used for the duration of current roles
func WithClock(now func() time.Time) PrinterOption {
	return func(p *Printer) { p.now = now }
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer, opts ...PrinterOption) *Printer {
	p := &Printer{out: out, now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to width runes, marking the cut with "..."
func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width-3]) + "..."
}

// PrintProfile outputs the profile card
func (p *Printer) PrintProfile(profile types.ProfileData) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:     %s\n", profile.Name))
	sb.WriteString(fmt.Sprintf("Title:    %s\n", profile.Title))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", profile.Email))
	if profile.Phone != "" {
		sb.WriteString(fmt.Sprintf("Phone:    %s\n", profile.Phone))
	}
	if profile.Location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", profile.Location))
	}
	if profile.ProfileImage != "" {
		sb.WriteString(fmt.Sprintf("Photo:    %s\n", profile.ProfileImage))
	}
	if profile.Summary != "" {
		sb.WriteString("\n")
		for _, line := range wrap(profile.Summary, boxWidth-4) {
			sb.WriteString(line + "\n")
		}
	}

	p.printBox("PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintEntries outputs timeline totals, then a short summary per entry, newest first
func (p *Printer) PrintEntries(entries []types.CareerEntry) {
	if len(entries) == 0 {
		p.printBox("CAREER TIMELINE", "No career entries yet")
		return
	}

	achievements, current := 0, 0
	for _, e := range entries {
		achievements += len(e.Achievements)
		if e.IsCurrentRole {
			current++
		}
	}

	now := p.now()
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total entries: %d\n", len(entries)))
	sb.WriteString(fmt.Sprintf("Achievements:  %d\n", achievements))
	sb.WriteString(fmt.Sprintf("Current roles: %d\n", current))

	for i, e := range entries {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("#%d  %s @ %s\n", i+1, e.JobTitle, e.Company))
		sb.WriteString(fmt.Sprintf("    %s (%s)\n", timeline.Period(e), timeline.Duration(e, now)))
		sb.WriteString(fmt.Sprintf("    id: %s\n", e.ID))
	}

	p.printBox("CAREER TIMELINE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintEntry outputs the full detail of one entry
func (p *Printer) PrintEntry(e types.CareerEntry) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s @ %s\n", e.JobTitle, e.Company))
	sb.WriteString(fmt.Sprintf("%s (%s)\n", timeline.Period(e), timeline.Duration(e, p.now())))
	if e.IsCurrentRole {
		sb.WriteString("Current role\n")
	}

	if e.Description != "" {
		sb.WriteString("\n")
		for _, line := range wrap(e.Description, boxWidth-4) {
			sb.WriteString(line + "\n")
		}
	}

	writeList(&sb, "Key Achievements", e.Achievements)
	writeList(&sb, "Responsibilities", e.Responsibilities)
	if len(e.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("\nSkills: %s\n", strings.Join(e.Skills, ", ")))
	}

	p.printBox("ENTRY "+e.ID, strings.TrimSuffix(sb.String(), "\n"))
}

func writeList(sb *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(fmt.Sprintf("\n%s:\n", title))
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}

// PrintFieldErrors outputs validation failures in field order
func (p *Printer) PrintFieldErrors(title string, errs validation.FieldErrors) {
	if errs.Valid() {
		return
	}

	var sb strings.Builder
	for _, key := range errs.Keys() {
		sb.WriteString(fmt.Sprintf("✗ %s: %s\n", key, errs[key]))
	}

	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintExport outputs where an export was delivered
func (p *Printer) PrintExport(name, location string, entries, size int) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("File:     %s\n", name))
	sb.WriteString(fmt.Sprintf("Location: %s\n", location))
	sb.WriteString(fmt.Sprintf("Entries:  %d\n", entries))
	sb.WriteString(fmt.Sprintf("Size:     %d bytes", size))

	p.printBox("EXPORT COMPLETE", sb.String())
}

// wrap breaks text into lines of at most width runes on word boundaries
func wrap(text string, width int) []string {
	var lines []string
	var line string
	for _, word := range strings.Fields(text) {
		switch {
		case line == "":
			line = word
		case utf8.RuneCountInString(line)+1+utf8.RuneCountInString(word) <= width:
			line += " " + word
		default:
			lines = append(lines, line)
			line = word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
