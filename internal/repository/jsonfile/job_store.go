package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"local-jobs-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/xeipuuv/gojsonschema"
)

// document is the full persisted state. Every mutation rewrites it.
type document struct {
	Jobs []domain.Job `json:"jobs"`
}

// JobStore keeps the whole collection in memory and flushes the full
// document to disk before any mutation returns. Mutations serialize the
// read-modify-write-flush cycle under mu; the in-memory slice is only
// swapped in after a successful flush, so readers never see a state that
// was not durably committed and a failed flush leaves nothing behind.
type JobStore struct {
	path string

	mu   sync.RWMutex
	jobs []domain.Job
}

// Open loads the backing file, creating an empty collection when the
// file does not exist yet. Unparseable or wrongly-shaped content fails
// with domain.ErrStorageCorrupt; the file is left untouched for repair.
func Open(path string) (*JobStore, error) {
	s := &JobStore{path: path}

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		if err := s.persist(nil); err != nil {
			return nil, err
		}
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if err := validateDocument(raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrStorageCorrupt, path, err)
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrStorageCorrupt, path, err)
	}
	s.jobs = doc.Jobs
	return s, nil
}

func validateDocument(raw []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(documentSchema),
		gojsonschema.NewBytesLoader(raw),
	)
	if err != nil {
		return err
	}
	if result.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return errors.New(strings.Join(msgs, "; "))
}

// persist writes the full document to a temp file and renames it over
// the store path, so readers of the file never observe a partial write.
func (s *JobStore) persist(jobs []domain.Job) error {
	doc := document{Jobs: jobs}
	if doc.Jobs == nil {
		doc.Jobs = []domain.Job{}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageWriteFailed, err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageWriteFailed, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", domain.ErrStorageWriteFailed, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", domain.ErrStorageWriteFailed, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", domain.ErrStorageWriteFailed, err)
	}
	return nil
}

// List returns records in store order (newest first) matching every
// supplied predicate. Pure read; safe concurrently with mutations.
func (s *JobStore) List(_ context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	s.mu.RLock()
	snapshot := s.jobs
	s.mu.RUnlock()

	matched := make([]domain.Job, 0, len(snapshot))
	for _, j := range snapshot {
		if filter.Matches(j) {
			matched = append(matched, j)
		}
	}
	return matched, nil
}

func (s *JobStore) GetByID(_ context.Context, id string) (*domain.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, j := range s.jobs {
		if j.ID == id {
			job := j
			return &job, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *JobStore) Create(_ context.Context, input domain.JobInput) (*domain.Job, error) {
	if err := requireFields(input.Title, input.Description, input.Category, input.Contact); err != nil {
		return nil, err
	}

	job := domain.Job{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Location:    input.Location,
		Contact:     input.Contact,
		Price:       input.Price,
		Extra:       input.Extra,
		CreatedAt:   time.Now().UTC(),
	}
	if job.Extra == nil {
		job.Extra = map[string]any{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Newest first.
	next := make([]domain.Job, 0, len(s.jobs)+1)
	next = append(next, job)
	next = append(next, s.jobs...)

	if err := s.persist(next); err != nil {
		return nil, err
	}
	s.jobs = next
	return &job, nil
}

func (s *JobStore) Update(_ context.Context, id string, patch domain.JobPatch) (*domain.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.jobs {
		if s.jobs[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, domain.ErrNotFound
	}

	job := s.jobs[idx]
	if err := applyPatch(&job, patch); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	job.UpdatedAt = &now

	next := make([]domain.Job, len(s.jobs))
	copy(next, s.jobs)
	next[idx] = job

	if err := s.persist(next); err != nil {
		return nil, err
	}
	s.jobs = next
	return &job, nil
}

func (s *JobStore) Delete(_ context.Context, id string) (*domain.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.jobs {
		if s.jobs[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, domain.ErrNotFound
	}

	removed := s.jobs[idx]
	next := make([]domain.Job, 0, len(s.jobs)-1)
	next = append(next, s.jobs[:idx]...)
	next = append(next, s.jobs[idx+1:]...)

	if err := s.persist(next); err != nil {
		return nil, err
	}
	s.jobs = next
	return &removed, nil
}

// applyPatch applies the allow-listed mutable fields. ID and CreatedAt
// are not part of JobPatch and can never change. A required field
// patched to empty would break the stored-record invariant, so it is
// rejected rather than applied.
func applyPatch(job *domain.Job, patch domain.JobPatch) error {
	set := func(dst *string, src *string, required bool) error {
		if src == nil {
			return nil
		}
		if required && *src == "" {
			return domain.ErrInvalidInput
		}
		*dst = *src
		return nil
	}
	if err := set(&job.Title, patch.Title, true); err != nil {
		return fmt.Errorf("%w: title must not be empty", err)
	}
	if err := set(&job.Description, patch.Description, true); err != nil {
		return fmt.Errorf("%w: description must not be empty", err)
	}
	if err := set(&job.Category, patch.Category, true); err != nil {
		return fmt.Errorf("%w: category must not be empty", err)
	}
	if err := set(&job.Contact, patch.Contact, true); err != nil {
		return fmt.Errorf("%w: contact must not be empty", err)
	}
	_ = set(&job.Location, patch.Location, false)
	_ = set(&job.Price, patch.Price, false)
	if patch.Extra != nil {
		job.Extra = *patch.Extra
		if job.Extra == nil {
			job.Extra = map[string]any{}
		}
	}
	return nil
}

func requireFields(title, description, category, contact string) error {
	if title == "" {
		return fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if description == "" {
		return fmt.Errorf("%w: description is required", domain.ErrInvalidInput)
	}
	if category == "" {
		return fmt.Errorf("%w: category is required", domain.ErrInvalidInput)
	}
	if contact == "" {
		return fmt.Errorf("%w: contact is required", domain.ErrInvalidInput)
	}
	return nil
}
