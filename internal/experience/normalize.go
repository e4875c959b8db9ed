// Package experience provides functionality to load, validate and normalize career entry drafts.
package experience

import (
	"strings"

	"github.com/jonathan/career-journal/internal/types"
	"github.com/jonathan/career-journal/internal/validation"
)

// Normalize derives the stored shape of a career entry from a draft. The returned
// entry has no ID; the store assigns one.
func Normalize(draft types.EntryDraft) types.CareerEntry {
	entry := types.CareerEntry{
		JobTitle:         strings.TrimSpace(draft.JobTitle),
		Company:          strings.TrimSpace(draft.Company),
		StartDate:        strings.TrimSpace(draft.StartDate),
		EndDate:          strings.TrimSpace(draft.EndDate),
		IsCurrentRole:    draft.IsCurrentRole,
		Achievements:     FilterBlank(draft.Achievements),
		Responsibilities: FilterBlank(draft.Responsibilities),
		Description:      draft.Description,
	}

	// A current role never carries an end date, whatever the form still holds
	if entry.IsCurrentRole {
		entry.EndDate = ""
	}

	if skills := FilterBlank(draft.Skills); len(skills) > 0 {
		entry.Skills = skills
	}

	return entry
}

// FilterBlank drops blank and whitespace-only rows, keeping the order of the rest.
// The result is never nil.
func FilterBlank(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}

// Submit runs the submit pipeline: validate the draft, then normalize it.
// When the draft is invalid the field errors are returned and the entry is zero.
func Submit(draft types.EntryDraft, opts validation.Options) (types.CareerEntry, validation.FieldErrors) {
	errs := validation.ValidateEntryWith(draft, opts)
	if !errs.Valid() {
		return types.CareerEntry{}, errs
	}
	return Normalize(draft), nil
}
