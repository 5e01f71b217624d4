package domain

import (
	"context"
	"errors"
	"strings"
	"time"
)

// Common domain errors. The delivery layer maps each of these to a
// distinct HTTP response; repositories never surface anything else.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrStorageCorrupt     = errors.New("job store is corrupt")
	ErrStorageWriteFailed = errors.New("job store write failed")
	ErrSourceUnavailable  = errors.New("seeker source unavailable")
)

type Job struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	Location    string         `json:"location"`
	Contact     string         `json:"contact"`
	Price       string         `json:"price"`
	Extra       map[string]any `json:"extra"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   *time.Time     `json:"updatedAt,omitempty"`
}

// JobInput carries the caller-supplied fields for a new posting.
// ID and CreatedAt are assigned by the store, never by the caller.
type JobInput struct {
	Title       string         `json:"title" validate:"required"`
	Description string         `json:"description" validate:"required"`
	Category    string         `json:"category" validate:"required"`
	Contact     string         `json:"contact" validate:"required"`
	Location    string         `json:"location"`
	Price       string         `json:"price"`
	Extra       map[string]any `json:"extra"`
}

// JobPatch is a partial update. Nil means "leave the field alone", so an
// explicit empty string stays distinguishable from an omitted one.
type JobPatch struct {
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	Category    *string         `json:"category"`
	Location    *string         `json:"location"`
	Contact     *string         `json:"contact"`
	Price       *string         `json:"price"`
	Extra       *map[string]any `json:"extra"`
}

// JobFilter holds the optional list predicates. Zero values mean
// "no constraint"; every supplied predicate must hold (logical AND).
type JobFilter struct {
	Category string
	Location string
	Query    string
}

// Matches reports whether a job satisfies every supplied predicate.
// Comparisons are case-insensitive. A job with an empty location never
// matches a non-empty location filter.
func (f JobFilter) Matches(j Job) bool {
	if f.Category != "" && !strings.EqualFold(j.Category, f.Category) {
		return false
	}
	if f.Location != "" {
		if j.Location == "" || !strings.Contains(strings.ToLower(j.Location), strings.ToLower(f.Location)) {
			return false
		}
	}
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(j.Title), q) &&
			!strings.Contains(strings.ToLower(j.Description), q) &&
			!strings.Contains(strings.ToLower(j.Category), q) {
			return false
		}
	}
	return true
}

type JobRepository interface {
	List(ctx context.Context, filter JobFilter) ([]Job, error)
	GetByID(ctx context.Context, id string) (*Job, error)
	Create(ctx context.Context, input JobInput) (*Job, error)
	Update(ctx context.Context, id string, patch JobPatch) (*Job, error)
	// Delete returns the removed record so the caller can echo it back.
	Delete(ctx context.Context, id string) (*Job, error)
}

type JobUsecase interface {
	ListJobs(ctx context.Context, filter JobFilter) ([]Job, error)
	GetJobDetails(ctx context.Context, id string) (*Job, error)
	CreateJob(ctx context.Context, input JobInput) (*Job, error)
	UpdateJob(ctx context.Context, id string, patch JobPatch) (*Job, error)
	DeleteJob(ctx context.Context, id string) (*Job, error)
}
