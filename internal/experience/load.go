// Package experience provides functionality to load, validate and normalize career entry drafts.
package experience

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/career-journal/internal/types"
	"gopkg.in/yaml.v3"
)

// LoadDraft loads an entry draft from a JSON or YAML file.
// The format is chosen from the file extension; anything but .yaml/.yml is read as JSON.
func LoadDraft(path string) (*types.EntryDraft, error) {
	// Read file
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	var draft types.EntryDraft
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &draft); err != nil {
			return nil, &LoadError{
				Message: "failed to unmarshal YAML",
				Cause:   err,
			}
		}
	default:
		if err := json.Unmarshal(content, &draft); err != nil {
			return nil, &LoadError{
				Message: "failed to unmarshal JSON",
				Cause:   err,
			}
		}
	}

	return &draft, nil
}
