//nolint:revive // types is a standard Go package name pattern
package types

import (
	"errors"
	"fmt"
)

// ListField names one of the editable string lists on a draft
type ListField string

// Editable list fields
const (
	FieldAchievements     ListField = "achievements"
	FieldResponsibilities ListField = "responsibilities"
	FieldSkills           ListField = "skills"
)

// ErrUnknownListField is returned when a list operation names a field that is not a list
var ErrUnknownListField = errors.New("unknown list field")

// EntryDraft is the user-edited, unvalidated form of a CareerEntry.
// An empty EndDate means no end date was entered.
type EntryDraft struct {
	JobTitle         string   `json:"jobTitle" yaml:"jobTitle"`
	Company          string   `json:"company" yaml:"company"`
	StartDate        string   `json:"startDate" yaml:"startDate"`
	EndDate          string   `json:"endDate" yaml:"endDate"`
	IsCurrentRole    bool     `json:"isCurrentRole" yaml:"isCurrentRole"`
	Achievements     []string `json:"achievements" yaml:"achievements"`
	Responsibilities []string `json:"responsibilities" yaml:"responsibilities"`
	Skills           []string `json:"skills" yaml:"skills"`
	Description      string   `json:"description" yaml:"description"`
}

// NewDraft returns an empty draft with one blank row in every list
func NewDraft() EntryDraft {
	return EntryDraft{
		Achievements:     []string{""},
		Responsibilities: []string{""},
		Skills:           []string{""},
	}
}

// DraftFromEntry pre-fills a draft from a stored entry for editing
func DraftFromEntry(e CareerEntry) EntryDraft {
	return EntryDraft{
		JobTitle:         e.JobTitle,
		Company:          e.Company,
		StartDate:        e.StartDate,
		EndDate:          e.EndDate,
		IsCurrentRole:    e.IsCurrentRole,
		Achievements:     rowsOrBlank(e.Achievements),
		Responsibilities: rowsOrBlank(e.Responsibilities),
		Skills:           rowsOrBlank(e.Skills),
		Description:      e.Description,
	}
}

func rowsOrBlank(items []string) []string {
	if len(items) == 0 {
		return []string{""}
	}
	return cloneStrings(items)
}

func (d *EntryDraft) list(field ListField) (*[]string, error) {
	switch field {
	case FieldAchievements:
		return &d.Achievements, nil
	case FieldResponsibilities:
		return &d.Responsibilities, nil
	case FieldSkills:
		return &d.Skills, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownListField, field)
	}
}

// Items returns a copy of the rows of a list field
func (d *EntryDraft) Items(field ListField) ([]string, error) {
	items, err := d.list(field)
	if err != nil {
		return nil, err
	}
	return cloneStrings(*items), nil
}

// AddItem appends a blank row to a list field
func (d *EntryDraft) AddItem(field ListField) error {
	items, err := d.list(field)
	if err != nil {
		return err
	}
	*items = append(*items, "")
	return nil
}

// RemoveItem drops the row at index. An out-of-range index leaves the list untouched.
func (d *EntryDraft) RemoveItem(field ListField, index int) error {
	items, err := d.list(field)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(*items) {
		return nil
	}
	next := make([]string, 0, len(*items)-1)
	next = append(next, (*items)[:index]...)
	next = append(next, (*items)[index+1:]...)
	*items = next
	return nil
}

// UpdateItem replaces the row at index. An out-of-range index leaves the list untouched.
func (d *EntryDraft) UpdateItem(field ListField, index int, value string) error {
	items, err := d.list(field)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(*items) {
		return nil
	}
	next := cloneStrings(*items)
	next[index] = value
	*items = next
	return nil
}
