package experience

import (
	"strings"
	"testing"

	"github.com/jonathan/career-journal/internal/types"
	"github.com/jonathan/career-journal/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_EndToEnd(t *testing.T) {
	draft := types.EntryDraft{
		JobTitle:         "  Senior Engineer ",
		Company:          "Acme",
		StartDate:        "2022-01-01",
		EndDate:          "2023-01-01", // stale value left in the form
		IsCurrentRole:    true,
		Achievements:     []string{"Shipped v2", "", "   ", "Cut latency 40%"},
		Responsibilities: []string{"\t", "Code review"},
		Skills:           []string{"Go", " ", "Kubernetes "},
		Description:      "Platform team",
	}

	entry := Normalize(draft)

	assert.Empty(t, entry.ID)
	assert.Equal(t, "Senior Engineer", entry.JobTitle)
	assert.Equal(t, "Acme", entry.Company)
	assert.Empty(t, entry.EndDate, "current role must not keep an end date")
	assert.True(t, entry.IsCurrentRole)
	assert.Equal(t, []string{"Shipped v2", "Cut latency 40%"}, entry.Achievements)
	assert.Equal(t, []string{"Code review"}, entry.Responsibilities)
	assert.Equal(t, []string{"Go", "Kubernetes"}, entry.Skills)
	assert.Equal(t, "Platform team", entry.Description)
}

func TestNormalize_CurrentRoleAlwaysDropsEndDate(t *testing.T) {
	for _, end := range []string{"", "2020-01-01", "garbage", "  "} {
		entry := Normalize(types.EntryDraft{IsCurrentRole: true, EndDate: end})
		assert.Empty(t, entry.EndDate, "end date %q", end)
	}
}

func TestNormalize_PastRoleKeepsEndDate(t *testing.T) {
	entry := Normalize(types.EntryDraft{StartDate: "2019-06-01", EndDate: "2021-12-31"})
	assert.Equal(t, "2021-12-31", entry.EndDate)
}

func TestNormalize_NeverLeavesBlankRows(t *testing.T) {
	rows := []string{"", " ", "\n", "a", "\t\t", "b ", " c"}
	entry := Normalize(types.EntryDraft{
		Achievements:     rows,
		Responsibilities: rows,
		Skills:           rows,
	})

	for _, list := range [][]string{entry.Achievements, entry.Responsibilities, entry.Skills} {
		require.Len(t, list, 3)
		for _, item := range list {
			assert.NotEmpty(t, strings.TrimSpace(item))
		}
	}
}

func TestNormalize_EmptyLists(t *testing.T) {
	entry := Normalize(types.NewDraft())

	assert.NotNil(t, entry.Achievements)
	assert.Empty(t, entry.Achievements)
	assert.NotNil(t, entry.Responsibilities)
	assert.Empty(t, entry.Responsibilities)
	assert.Nil(t, entry.Skills, "skills are optional and omitted when empty")
}

func TestFilterBlank_NilInput(t *testing.T) {
	out := FilterBlank(nil)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestSubmit(t *testing.T) {
	t.Run("valid draft is normalized", func(t *testing.T) {
		draft := types.EntryDraft{
			JobTitle:         "Engineer",
			Company:          "Acme",
			StartDate:        "2020-01-01",
			IsCurrentRole:    true,
			Achievements:     []string{},
			Responsibilities: []string{},
		}

		entry, errs := Submit(draft, validation.Options{})
		assert.Empty(t, errs)
		assert.Equal(t, "Engineer", entry.JobTitle)
		assert.Empty(t, entry.EndDate)
	})

	t.Run("invalid draft is blocked", func(t *testing.T) {
		entry, errs := Submit(types.NewDraft(), validation.Options{})
		assert.Equal(t, []string{"company", "endDate", "jobTitle", "startDate"}, errs.Keys())
		assert.Equal(t, types.CareerEntry{}, entry)
	})
}
