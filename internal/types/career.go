// Package types provides type definitions for structured data used throughout the career-journal system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// DateLayout is the calendar date format used for start and end dates
const DateLayout = "2006-01-02"

// CareerEntry represents one employment record in the timeline
type CareerEntry struct {
	ID               string   `json:"id" yaml:"id"`
	JobTitle         string   `json:"jobTitle" yaml:"jobTitle"`
	Company          string   `json:"company" yaml:"company"`
	StartDate        string   `json:"startDate" yaml:"startDate"`
	EndDate          string   `json:"endDate,omitempty" yaml:"endDate,omitempty"`
	IsCurrentRole    bool     `json:"isCurrentRole" yaml:"isCurrentRole"`
	Achievements     []string `json:"achievements" yaml:"achievements"`
	Responsibilities []string `json:"responsibilities" yaml:"responsibilities"`
	Skills           []string `json:"skills,omitzero" yaml:"skills,omitempty"`
	Description      string   `json:"description,omitempty" yaml:"description,omitempty"`
}

// HasEndDate reports whether the entry carries an end date
func (e CareerEntry) HasEndDate() bool {
	return e.EndDate != ""
}

// Clone returns a deep copy of the entry so callers cannot alias its slices
func (e CareerEntry) Clone() CareerEntry {
	out := e
	out.Achievements = cloneStrings(e.Achievements)
	out.Responsibilities = cloneStrings(e.Responsibilities)
	if e.Skills != nil {
		out.Skills = cloneStrings(e.Skills)
	}
	return out
}

// CloneEntries deep-copies a slice of entries, never returning nil
func CloneEntries(entries []CareerEntry) []CareerEntry {
	out := make([]CareerEntry, len(entries))
	for i, e := range entries {
		out[i] = e.Clone()
	}
	return out
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
