package validation

import (
	"testing"

	"github.com/jonathan/career-journal/internal/types"
	"github.com/stretchr/testify/assert"
)

func validDraft() types.EntryDraft {
	return types.EntryDraft{
		JobTitle:         "Engineer",
		Company:          "Acme",
		StartDate:        "2020-01-01",
		IsCurrentRole:    true,
		Achievements:     []string{},
		Responsibilities: []string{},
	}
}

func TestValidateEntry_CurrentRoleIsValid(t *testing.T) {
	errs := ValidateEntry(validDraft())
	assert.Empty(t, errs)
	assert.True(t, errs.Valid())
}

func TestValidateEntry_MissingFields(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(d *types.EntryDraft)
		wantKeys []string
	}{
		{
			name:     "missing job title",
			mutate:   func(d *types.EntryDraft) { d.JobTitle = "" },
			wantKeys: []string{FieldJobTitle},
		},
		{
			name:     "whitespace company",
			mutate:   func(d *types.EntryDraft) { d.Company = "   \t" },
			wantKeys: []string{FieldCompany},
		},
		{
			name:     "missing start date",
			mutate:   func(d *types.EntryDraft) { d.StartDate = "" },
			wantKeys: []string{FieldStartDate},
		},
		{
			name: "all three missing",
			mutate: func(d *types.EntryDraft) {
				d.JobTitle = ""
				d.Company = ""
				d.StartDate = ""
			},
			wantKeys: []string{FieldCompany, FieldJobTitle, FieldStartDate},
		},
		{
			name:     "past role without end date",
			mutate:   func(d *types.EntryDraft) { d.IsCurrentRole = false },
			wantKeys: []string{FieldEndDate},
		},
		{
			name: "past role with end date",
			mutate: func(d *types.EntryDraft) {
				d.IsCurrentRole = false
				d.EndDate = "2021-06-30"
			},
			wantKeys: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.mutate(&d)
			errs := ValidateEntry(d)
			assert.Equal(t, tt.wantKeys, errs.Keys())
		})
	}
}

func TestValidateEntry_Messages(t *testing.T) {
	errs := ValidateEntry(types.EntryDraft{})

	assert.Equal(t, "Job title is required", errs[FieldJobTitle])
	assert.Equal(t, "Company is required", errs[FieldCompany])
	assert.Equal(t, "Start date is required", errs[FieldStartDate])
	assert.Equal(t, "End date is required for past roles", errs[FieldEndDate])
}

func TestValidateEntry_DoesNotCheckDateOrder(t *testing.T) {
	d := validDraft()
	d.IsCurrentRole = false
	d.StartDate = "2022-01-01"
	d.EndDate = "2020-01-01"

	assert.Empty(t, ValidateEntry(d))
}

func TestValidateEntryWith_StrictDates(t *testing.T) {
	strict := Options{StrictDates: true}

	t.Run("end before start", func(t *testing.T) {
		d := validDraft()
		d.IsCurrentRole = false
		d.StartDate = "2022-01-01"
		d.EndDate = "2020-01-01"

		errs := ValidateEntryWith(d, strict)
		assert.Equal(t, "End date must not be before start date", errs[FieldEndDate])
	})

	t.Run("same day is allowed", func(t *testing.T) {
		d := validDraft()
		d.IsCurrentRole = false
		d.EndDate = d.StartDate

		assert.Empty(t, ValidateEntryWith(d, strict))
	})

	t.Run("malformed start", func(t *testing.T) {
		d := validDraft()
		d.StartDate = "Jan 2020"

		errs := ValidateEntryWith(d, strict)
		assert.Equal(t, []string{FieldStartDate}, errs.Keys())
		assert.Contains(t, errs[FieldStartDate], "YYYY-MM-DD")
	})

	t.Run("current role ignores end date", func(t *testing.T) {
		d := validDraft()
		d.EndDate = "garbage"

		assert.Empty(t, ValidateEntryWith(d, strict))
	})

	t.Run("missing start keeps required message", func(t *testing.T) {
		d := validDraft()
		d.StartDate = ""

		errs := ValidateEntryWith(d, strict)
		assert.Equal(t, "Start date is required", errs[FieldStartDate])
	})
}

func TestFieldErrors_Error(t *testing.T) {
	errs := FieldErrors{FieldCompany: "Company is required", FieldJobTitle: "Job title is required"}

	msg := errs.Error()
	assert.Contains(t, msg, "validation failed")
	assert.Contains(t, msg, "1. company: Company is required")
	assert.Contains(t, msg, "2. jobTitle: Job title is required")
}
