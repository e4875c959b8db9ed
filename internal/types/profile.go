//nolint:revive // types is a standard Go package name pattern
package types

// ProfileData represents the single profile record shown next to the timeline.
// ProfileImage is a reference to image data (URL or data URI), never the bytes.
type ProfileData struct {
	Name         string `json:"name" yaml:"name" validate:"required"`
	Title        string `json:"title" yaml:"title" validate:"required"`
	Email        string `json:"email" yaml:"email" validate:"required,email"`
	Phone        string `json:"phone,omitempty" yaml:"phone,omitempty"`
	Location     string `json:"location,omitempty" yaml:"location,omitempty"`
	ProfileImage string `json:"profileImage,omitempty" yaml:"profileImage,omitempty" validate:"omitempty,profileimage"`
	Summary      string `json:"summary,omitempty" yaml:"summary,omitempty"`
}

// DefaultProfile returns the profile seeded for a first-run session
func DefaultProfile() ProfileData {
	return ProfileData{
		Name:     "John Doe",
		Title:    "Senior Software Engineer",
		Email:    "john.doe@example.com",
		Phone:    "+1 (555) 123-4567",
		Location: "San Francisco, CA",
		Summary:  "Passionate software engineer with 8+ years of experience building scalable web applications and leading development teams.",
	}
}

// ExportDocument is the point-in-time snapshot handed out by an export
type ExportDocument struct {
	Profile       ProfileData   `json:"profile" yaml:"profile"`
	CareerEntries []CareerEntry `json:"careerEntries" yaml:"careerEntries"`
	ExportDate    string        `json:"exportDate" yaml:"exportDate"`
}
