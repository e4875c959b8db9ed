// Package validation provides field-level checks for career entry drafts and profiles.
package validation

import (
	"strings"
	"time"

	"github.com/jonathan/career-journal/internal/types"
)

// Field keys reported for entry drafts
const (
	FieldJobTitle  = "jobTitle"
	FieldCompany   = "company"
	FieldStartDate = "startDate"
	FieldEndDate   = "endDate"
)

// Options provides optional rules on top of the required-field checks
type Options struct {
	// StrictDates rejects malformed dates and end dates before the start date
	StrictDates bool
}

// ValidateEntry checks a draft for missing required fields.
// Every rule runs, so all violations are reported together. An empty result means valid.
func ValidateEntry(draft types.EntryDraft) FieldErrors {
	return ValidateEntryWith(draft, Options{})
}

// ValidateEntryWith checks a draft using the given options
func ValidateEntryWith(draft types.EntryDraft, opts Options) FieldErrors {
	errs := FieldErrors{}

	if isBlank(draft.JobTitle) {
		errs[FieldJobTitle] = "Job title is required"
	}
	if isBlank(draft.Company) {
		errs[FieldCompany] = "Company is required"
	}
	if isBlank(draft.StartDate) {
		errs[FieldStartDate] = "Start date is required"
	}
	if !draft.IsCurrentRole && isBlank(draft.EndDate) {
		errs[FieldEndDate] = "End date is required for past roles"
	}

	if opts.StrictDates {
		checkDates(draft, errs)
	}

	return errs
}

// checkDates only reports on fields that passed the presence checks
func checkDates(draft types.EntryDraft, errs FieldErrors) {
	var start, end time.Time
	var startOK, endOK bool

	if _, missing := errs[FieldStartDate]; !missing {
		var err error
		start, err = time.Parse(types.DateLayout, strings.TrimSpace(draft.StartDate))
		if err != nil {
			errs[FieldStartDate] = "Start date must be a valid date (YYYY-MM-DD)"
		} else {
			startOK = true
		}
	}

	if draft.IsCurrentRole {
		return
	}
	if _, missing := errs[FieldEndDate]; !missing {
		var err error
		end, err = time.Parse(types.DateLayout, strings.TrimSpace(draft.EndDate))
		if err != nil {
			errs[FieldEndDate] = "End date must be a valid date (YYYY-MM-DD)"
		} else {
			endOK = true
		}
	}

	if startOK && endOK && end.Before(start) {
		errs[FieldEndDate] = "End date must not be before start date"
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
