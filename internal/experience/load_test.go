package experience

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDraft_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "draft.json")
	content := `{
		"jobTitle": "Software Engineer",
		"company": "Meta",
		"startDate": "2019-06-01",
		"endDate": "2021-12-31",
		"isCurrentRole": false,
		"achievements": ["Built a real-time messaging system", ""],
		"responsibilities": ["Developed mobile applications"],
		"skills": ["React Native", "GraphQL"]
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	draft, err := LoadDraft(path)
	require.NoError(t, err)
	require.NotNil(t, draft)

	assert.Equal(t, "Software Engineer", draft.JobTitle)
	assert.Equal(t, "Meta", draft.Company)
	assert.Equal(t, "2021-12-31", draft.EndDate)
	assert.False(t, draft.IsCurrentRole)
	assert.Equal(t, []string{"Built a real-time messaging system", ""}, draft.Achievements)
	assert.Equal(t, []string{"React Native", "GraphQL"}, draft.Skills)
}

func TestLoadDraft_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "draft.yaml")
	content := `jobTitle: Senior Software Engineer
company: Google
startDate: "2022-01-01"
isCurrentRole: true
achievements:
  - Led the microservice migration
responsibilities: []
skills: [Go, Kubernetes]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	draft, err := LoadDraft(path)
	require.NoError(t, err)

	assert.Equal(t, "Google", draft.Company)
	assert.Equal(t, "2022-01-01", draft.StartDate)
	assert.True(t, draft.IsCurrentRole)
	assert.Equal(t, []string{"Go", "Kubernetes"}, draft.Skills)
}

func TestLoadDraft_FileNotFound(t *testing.T) {
	_, err := LoadDraft("nonexistent_file.json")
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr), "error should be LoadError type")
	assert.Contains(t, loadErr.Error(), "failed to read file")
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadDraft_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.json")
	require.NoError(t, os.WriteFile(path, []byte("{ invalid json }"), 0644))

	_, err := LoadDraft(path)
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Contains(t, loadErr.Error(), "failed to unmarshal JSON")
}
