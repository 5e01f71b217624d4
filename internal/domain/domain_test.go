package domain_test

import (
	"testing"

	"local-jobs-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIdentifier(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"123-456-789012", "123456789012"},
		{"9876 5432 1098", "987654321098"},
		{"987654321098", "987654321098"},
		{"abc", ""},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, domain.NormalizeIdentifier(tc.in), "input %q", tc.in)
	}
}

func TestJobFilterMatches(t *testing.T) {
	job := domain.Job{
		Title:       "Electrician needed",
		Description: "fix wiring",
		Category:    "electrician",
		Location:    "Pune Camp",
	}
	noLocation := domain.Job{
		Title:       "Maid wanted",
		Description: "house cleaning",
		Category:    "maid",
	}

	t.Run("empty filter matches everything", func(t *testing.T) {
		assert.True(t, domain.JobFilter{}.Matches(job))
		assert.True(t, domain.JobFilter{}.Matches(noLocation))
	})

	t.Run("category exact match ignores case", func(t *testing.T) {
		assert.True(t, domain.JobFilter{Category: "Electrician"}.Matches(job))
		assert.False(t, domain.JobFilter{Category: "electric"}.Matches(job))
	})

	t.Run("location substring ignores case", func(t *testing.T) {
		assert.True(t, domain.JobFilter{Location: "pune"}.Matches(job))
		assert.False(t, domain.JobFilter{Location: "mumbai"}.Matches(job))
	})

	t.Run("empty location never matches a location filter", func(t *testing.T) {
		assert.False(t, domain.JobFilter{Location: "pune"}.Matches(noLocation))
	})

	t.Run("free text spans title description and category", func(t *testing.T) {
		assert.True(t, domain.JobFilter{Query: "ELECTRICIAN"}.Matches(job))
		assert.True(t, domain.JobFilter{Query: "wiring"}.Matches(job))
		assert.True(t, domain.JobFilter{Query: "needed"}.Matches(job))
		assert.False(t, domain.JobFilter{Query: "plumber"}.Matches(job))
	})

	t.Run("predicates compose with AND", func(t *testing.T) {
		assert.True(t, domain.JobFilter{Category: "electrician", Location: "camp", Query: "wiring"}.Matches(job))
		assert.False(t, domain.JobFilter{Category: "electrician", Query: "plumber"}.Matches(job))
	})
}
