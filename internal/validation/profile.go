package validation

import (
	"errors"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/career-journal/internal/types"
)

// Field keys reported for profiles
const (
	FieldName         = "name"
	FieldTitle        = "title"
	FieldEmail        = "email"
	FieldProfileImage = "profileImage"
)

var fieldLabels = map[string]string{
	FieldName:  "Name",
	FieldTitle: "Title",
	FieldEmail: "Email",
}

var profileValidator = newProfileValidator()

func newProfileValidator() *validator.Validate {
	v := validator.New()

	// Report fields under their JSON names so keys line up with entry errors
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("profileimage", func(fl validator.FieldLevel) bool {
		return IsImageReference(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// ValidateProfile checks the required profile fields while it is being edited.
// Whitespace-only values count as missing.
func ValidateProfile(profile types.ProfileData) FieldErrors {
	errs := FieldErrors{}

	trimmed := profile
	trimmed.Name = strings.TrimSpace(profile.Name)
	trimmed.Title = strings.TrimSpace(profile.Title)
	trimmed.Email = strings.TrimSpace(profile.Email)
	trimmed.ProfileImage = strings.TrimSpace(profile.ProfileImage)

	err := profileValidator.Struct(trimmed)
	if err == nil {
		return errs
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs["(root)"] = err.Error()
		return errs
	}

	for _, fe := range verrs {
		field := fe.Field()
		if _, seen := errs[field]; seen {
			continue
		}
		switch fe.Tag() {
		case "required":
			errs[field] = fieldLabels[field] + " is required"
		case "email":
			errs[field] = "Email must be a valid email address"
		case "profileimage":
			errs[field] = "Profile image must be an image URL"
		default:
			errs[field] = "Invalid value"
		}
	}
	return errs
}

// IsImageReference reports whether ref points at image data: an http(s) or blob URL,
// or a data URI with an image/* media type.
func IsImageReference(ref string) bool {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return false
	}

	if strings.HasPrefix(strings.ToLower(ref), "data:") {
		mediaType := strings.ToLower(strings.TrimPrefix(ref[len("data:"):], " "))
		return strings.HasPrefix(mediaType, "image/")
	}

	u, err := url.Parse(ref)
	if err != nil {
		return false
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return u.Host != ""
	case "blob":
		return u.Opaque != "" || u.Path != ""
	default:
		return false
	}
}
