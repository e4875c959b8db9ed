package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCareerEntry_Clone(t *testing.T) {
	e := CareerEntry{
		ID:               "1",
		Achievements:     []string{"a"},
		Responsibilities: nil,
		Skills:           nil,
	}

	c := e.Clone()
	c.Achievements[0] = "changed"

	assert.Equal(t, "a", e.Achievements[0])
	assert.NotNil(t, c.Responsibilities)
	assert.Nil(t, c.Skills, "absent skills stay absent")
}

func TestCloneEntries_NeverNil(t *testing.T) {
	assert.NotNil(t, CloneEntries(nil))
	assert.Len(t, CloneEntries([]CareerEntry{{ID: "1"}, {ID: "2"}}), 2)
}

func TestHasEndDate(t *testing.T) {
	assert.False(t, CareerEntry{}.HasEndDate())
	assert.True(t, CareerEntry{EndDate: "2020-01-01"}.HasEndDate())
}
