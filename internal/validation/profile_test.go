package validation

import (
	"testing"

	"github.com/jonathan/career-journal/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestValidateProfile(t *testing.T) {
	tests := []struct {
		name     string
		profile  types.ProfileData
		wantKeys []string
	}{
		{
			name:     "valid minimal profile",
			profile:  types.ProfileData{Name: "A", Title: "B", Email: "c@d.com"},
			wantKeys: []string{},
		},
		{
			name:     "default profile",
			profile:  types.DefaultProfile(),
			wantKeys: []string{},
		},
		{
			name:     "all required missing",
			profile:  types.ProfileData{},
			wantKeys: []string{FieldEmail, FieldName, FieldTitle},
		},
		{
			name:     "whitespace name",
			profile:  types.ProfileData{Name: "  ", Title: "B", Email: "c@d.com"},
			wantKeys: []string{FieldName},
		},
		{
			name:     "invalid email",
			profile:  types.ProfileData{Name: "A", Title: "B", Email: "not-an-email"},
			wantKeys: []string{FieldEmail},
		},
		{
			name:     "non-image reference",
			profile:  types.ProfileData{Name: "A", Title: "B", Email: "c@d.com", ProfileImage: "data:text/plain;base64,aGk="},
			wantKeys: []string{FieldProfileImage},
		},
		{
			name:     "image data uri",
			profile:  types.ProfileData{Name: "A", Title: "B", Email: "c@d.com", ProfileImage: "data:image/png;base64,iVBORw0KGgo="},
			wantKeys: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateProfile(tt.profile)
			assert.Equal(t, tt.wantKeys, errs.Keys())
		})
	}
}

func TestValidateProfile_Messages(t *testing.T) {
	errs := ValidateProfile(types.ProfileData{Email: "nope"})

	assert.Equal(t, "Name is required", errs[FieldName])
	assert.Equal(t, "Title is required", errs[FieldTitle])
	assert.Equal(t, "Email must be a valid email address", errs[FieldEmail])
}

func TestIsImageReference(t *testing.T) {
	tests := []struct {
		ref  string
		want bool
	}{
		{"https://cdn.example.com/me.jpg", true},
		{"http://example.com/a.png", true},
		{"blob:http://localhost:8080/1f2e3d", true},
		{"data:image/jpeg;base64,/9j/4AAQ", true},
		{"DATA:IMAGE/PNG;base64,AAAA", true},
		{"data:application/pdf;base64,AAAA", false},
		{"ftp://example.com/a.png", false},
		{"https://", false},
		{"just text", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			assert.Equal(t, tt.want, IsImageReference(tt.ref))
		})
	}
}
