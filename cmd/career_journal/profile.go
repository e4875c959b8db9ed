// Package main provides the entry point for the career_journal CLI.
package main

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/jonathan/career-journal/internal/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or edit the profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current profile",
	Args:  cobra.NoArgs,
	RunE:  runProfileShow,
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update profile fields",
	Long:  "Updates the given profile fields, keeping the others. The result must have a name, a title and a valid email.",
	Args:  cobra.NoArgs,
	RunE:  runProfileSet,
}

var (
	profileName     string
	profileTitle    string
	profileEmail    string
	profilePhone    string
	profileLocation string
	profileImage    string
	profilePhoto    string
	profileSummary  string
)

func init() {
	profileSetCmd.Flags().StringVar(&profileName, "name", "", "Full name")
	profileSetCmd.Flags().StringVar(&profileTitle, "title", "", "Professional title")
	profileSetCmd.Flags().StringVar(&profileEmail, "email", "", "Email address")
	profileSetCmd.Flags().StringVar(&profilePhone, "phone", "", "Phone number")
	profileSetCmd.Flags().StringVar(&profileLocation, "location", "", "Location")
	profileSetCmd.Flags().StringVar(&profileImage, "image", "", "Profile image URL")
	profileSetCmd.Flags().StringVar(&profilePhoto, "photo", "", "Path to an image file to embed as the profile image")
	profileSetCmd.Flags().StringVar(&profileSummary, "summary", "", "Professional summary")
	profileSetCmd.MarkFlagsMutuallyExclusive("image", "photo")

	profileCmd.AddCommand(profileShowCmd, profileSetCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfileShow(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	a.printer.PrintProfile(a.store.Profile())
	if a.store.IsNewUser() {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No profile saved yet; showing defaults. Use 'profile set' to create yours.")
		return nil
	}

	saved, found, err := a.adapter.LastSaved(cmd.Context())
	if err != nil {
		a.logger.Warn("Failed to read save time", zap.Error(err))
	} else if found {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Last saved: %s\n", saved.Local().Format("2006-01-02 15:04:05 MST"))
	}
	return nil
}

func runProfileSet(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	profile := a.store.Profile()
	flags := cmd.Flags()
	if flags.Changed("name") {
		profile.Name = profileName
	}
	if flags.Changed("title") {
		profile.Title = profileTitle
	}
	if flags.Changed("email") {
		profile.Email = profileEmail
	}
	if flags.Changed("phone") {
		profile.Phone = profilePhone
	}
	if flags.Changed("location") {
		profile.Location = profileLocation
	}
	if flags.Changed("image") {
		profile.ProfileImage = profileImage
	}
	if flags.Changed("photo") {
		uri, err := imageDataURI(profilePhoto)
		if err != nil {
			return err
		}
		profile.ProfileImage = uri
	}
	if flags.Changed("summary") {
		profile.Summary = profileSummary
	}

	if errs := validation.ValidateProfile(profile); !errs.Valid() {
		a.printer.PrintFieldErrors("INVALID PROFILE", errs)
		return errs
	}

	if err := a.store.SetProfile(cmd.Context(), profile); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	a.printer.PrintProfile(profile)
	return nil
}

// imageDataURI reads an image file and encodes it as a data URI. Files that do not
// sniff as an image are rejected.
func imageDataURI(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read photo: %w", err)
	}

	mime := mimetype.Detect(data).String()
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = mime[:i]
	}
	if !strings.HasPrefix(mime, "image/") {
		return "", fmt.Errorf("photo %s is not an image (detected %s)", path, mime)
	}

	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
