package jsonfile_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"local-jobs-backend/internal/domain"
	"local-jobs-backend/internal/repository/jsonfile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T) (*jsonfile.JobStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jobs.json")
	store, err := jsonfile.Open(path)
	require.NoError(t, err)
	return store, path
}

func electricianInput() domain.JobInput {
	return domain.JobInput{
		Title:       "Electrician needed",
		Description: "fix wiring",
		Category:    "electrician",
		Contact:     "555-0100",
	}
}

func TestOpenInitializesEmptyStore(t *testing.T) {
	store, path := openStore(t)

	jobs, err := store.List(context.Background(), domain.JobFilter{})
	require.NoError(t, err)
	assert.Empty(t, jobs)

	// The backing file must exist after Open, even before any mutation.
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestOpenRejectsCorruptStore(t *testing.T) {
	t.Run("unparseable content", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "jobs.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		_, err := jsonfile.Open(path)
		assert.ErrorIs(t, err, domain.ErrStorageCorrupt)
	})

	t.Run("valid JSON with wrong shape", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "jobs.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"jobs": "nope"}`), 0o644))

		_, err := jsonfile.Open(path)
		assert.ErrorIs(t, err, domain.ErrStorageCorrupt)
	})

	t.Run("corrupt content is not discarded", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "jobs.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		_, err := jsonfile.Open(path)
		require.Error(t, err)

		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "{not json", string(raw))
	})
}

func TestCreateGeneratesUniqueIDs(t *testing.T) {
	store, _ := openStore(t)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		job, err := store.Create(ctx, electricianInput())
		require.NoError(t, err)
		require.NotEmpty(t, job.ID)
		assert.False(t, seen[job.ID], "duplicate id %s", job.ID)
		seen[job.ID] = true
	}
}

func TestCreateValidatesRequiredFields(t *testing.T) {
	store, _ := openStore(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		input domain.JobInput
	}{
		{"missing title", domain.JobInput{Description: "d", Category: "c", Contact: "x"}},
		{"missing description", domain.JobInput{Title: "t", Category: "c", Contact: "x"}},
		{"missing category", domain.JobInput{Title: "t", Description: "d", Contact: "x"}},
		{"missing contact", domain.JobInput{Title: "t", Description: "d", Category: "c"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := store.Create(ctx, tc.input)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	store, path := openStore(t)
	ctx := context.Background()

	input := electricianInput()
	input.Location = "Pune"
	input.Price = "500"
	input.Extra = map[string]any{"shift": "day"}

	created, err := store.Create(ctx, input)
	require.NoError(t, err)

	// Simulate a restart.
	reopened, err := jsonfile.Open(path)
	require.NoError(t, err)

	loaded, err := reopened.GetByID(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, created.ID, loaded.ID)
	assert.Equal(t, created.Title, loaded.Title)
	assert.Equal(t, created.Description, loaded.Description)
	assert.Equal(t, created.Category, loaded.Category)
	assert.Equal(t, created.Location, loaded.Location)
	assert.Equal(t, created.Contact, loaded.Contact)
	assert.Equal(t, created.Price, loaded.Price)
	assert.Equal(t, created.Extra, loaded.Extra)
	assert.True(t, created.CreatedAt.Equal(loaded.CreatedAt))
	assert.Nil(t, loaded.UpdatedAt)
}

func TestListOrderIsNewestFirst(t *testing.T) {
	store, _ := openStore(t)
	ctx := context.Background()

	first, err := store.Create(ctx, electricianInput())
	require.NoError(t, err)
	second, err := store.Create(ctx, electricianInput())
	require.NoError(t, err)

	jobs, err := store.List(ctx, domain.JobFilter{})
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, second.ID, jobs[0].ID)
	assert.Equal(t, first.ID, jobs[1].ID)
}

func TestListFilters(t *testing.T) {
	store, _ := openStore(t)
	ctx := context.Background()

	electrician, err := store.Create(ctx, electricianInput())
	require.NoError(t, err)

	maidInput := domain.JobInput{
		Title:       "Maid wanted",
		Description: "house cleaning",
		Category:    "maid",
		Contact:     "555-0101",
		Location:    "Mumbai Central",
	}
	maid, err := store.Create(ctx, maidInput)
	require.NoError(t, err)

	t.Run("category is exact and case-insensitive", func(t *testing.T) {
		jobs, err := store.List(ctx, domain.JobFilter{Category: "Electrician"})
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, electrician.ID, jobs[0].ID)
	})

	t.Run("location is substring and case-insensitive", func(t *testing.T) {
		jobs, err := store.List(ctx, domain.JobFilter{Location: "mumbai"})
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, maid.ID, jobs[0].ID)
	})

	t.Run("empty location never matches a location filter", func(t *testing.T) {
		jobs, err := store.List(ctx, domain.JobFilter{Location: "anywhere"})
		require.NoError(t, err)
		assert.Empty(t, jobs)
	})

	t.Run("free text spans title description category", func(t *testing.T) {
		jobs, err := store.List(ctx, domain.JobFilter{Query: "WIRING"})
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, electrician.ID, jobs[0].ID)
	})

	t.Run("filters compose with AND", func(t *testing.T) {
		jobs, err := store.List(ctx, domain.JobFilter{Category: "maid", Query: "wiring"})
		require.NoError(t, err)
		assert.Empty(t, jobs)
	})

	t.Run("no filters returns everything", func(t *testing.T) {
		jobs, err := store.List(ctx, domain.JobFilter{})
		require.NoError(t, err)
		assert.Len(t, jobs, 2)
	})
}

func TestUpdateIsolation(t *testing.T) {
	store, _ := openStore(t)
	ctx := context.Background()

	input := electricianInput()
	input.Location = "Pune"
	created, err := store.Create(ctx, input)
	require.NoError(t, err)

	newTitle := "X"
	updated, err := store.Update(ctx, created.ID, domain.JobPatch{Title: &newTitle})
	require.NoError(t, err)

	assert.Equal(t, "X", updated.Title)
	require.NotNil(t, updated.UpdatedAt)

	// Everything else is untouched.
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.Description, updated.Description)
	assert.Equal(t, created.Category, updated.Category)
	assert.Equal(t, created.Location, updated.Location)
	assert.Equal(t, created.Contact, updated.Contact)
	assert.Equal(t, created.Price, updated.Price)
	assert.Equal(t, created.Extra, updated.Extra)
	assert.True(t, created.CreatedAt.Equal(updated.CreatedAt))
}

func TestUpdateRejectsEmptyRequiredField(t *testing.T) {
	store, _ := openStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, electricianInput())
	require.NoError(t, err)

	empty := ""
	_, err = store.Update(ctx, created.ID, domain.JobPatch{Title: &empty})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// The stored record is unchanged.
	job, err := store.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Electrician needed", job.Title)
	assert.Nil(t, job.UpdatedAt)
}

func TestUpdateMissingJob(t *testing.T) {
	store, _ := openStore(t)

	title := "X"
	_, err := store.Update(context.Background(), "no-such-id", domain.JobPatch{Title: &title})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteCompleteness(t *testing.T) {
	store, _ := openStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, electricianInput())
	require.NoError(t, err)

	removed, err := store.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, removed.ID)

	_, err = store.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	jobs, err := store.List(ctx, domain.JobFilter{})
	require.NoError(t, err)
	assert.Empty(t, jobs)

	_, err = store.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteSurvivesRestart(t *testing.T) {
	store, path := openStore(t)
	ctx := context.Background()

	keep, err := store.Create(ctx, electricianInput())
	require.NoError(t, err)
	gone, err := store.Create(ctx, electricianInput())
	require.NoError(t, err)

	_, err = store.Delete(ctx, gone.ID)
	require.NoError(t, err)

	reopened, err := jsonfile.Open(path)
	require.NoError(t, err)

	jobs, err := reopened.List(ctx, domain.JobFilter{})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, keep.ID, jobs[0].ID)
}
