package domain

import "context"

// SeekerSource tags where a JobSeeker record came from.
type SeekerSource string

const (
	SourceBulk      SeekerSource = "bulk"
	SourceUserSaved SeekerSource = "user_saved"
)

// JobSeeker is one profile, either loaded from the bulk export or
// submitted through the save-profile endpoint. Identifier is always the
// normalized (digits-only) national ID and is the reconciliation key.
type JobSeeker struct {
	Identifier string       `json:"identifier"`
	Name       string       `json:"name"`
	Age        *int         `json:"age"`
	JobType    string       `json:"jobType"`
	Skills     string       `json:"skills"`
	Education  string       `json:"education"`
	Location   string       `json:"location"`
	Contact    string       `json:"contact"`
	Experience string       `json:"experience"`
	Email      string       `json:"email"`
	Source     SeekerSource `json:"source"`
}

// ProfileInput is a single user-submitted profile. Only the identifier
// and name are required; everything else is optional.
type ProfileInput struct {
	Identifier string `json:"identifier" validate:"required"`
	Name       string `json:"name" validate:"required"`
	Age        *int   `json:"age"`
	JobType    string `json:"jobType"`
	Skills     string `json:"skills"`
	Education  string `json:"education"`
	Location   string `json:"location"`
	Contact    string `json:"contact"`
	Experience string `json:"experience"`
	Email      string `json:"email"`
}

// NormalizeIdentifier strips every non-digit rune from a national ID so
// that "123-456-789012" and "123456789012" reconcile to the same key.
func NormalizeIdentifier(s string) string {
	var b []rune
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b = append(b, r)
		}
	}
	return string(b)
}

// JobSeekerRepository owns the submitted set and holds a read-only view
// of the bulk set loaded at startup.
type JobSeekerRepository interface {
	// SetBulk installs the ingested set. Called exactly once, before the
	// service accepts traffic; the slice is never mutated afterwards.
	SetBulk(seekers []JobSeeker)
	// Upsert replaces the submitted record with the same normalized
	// identifier in place, or appends when the key is new.
	Upsert(ctx context.Context, seeker JobSeeker) error
	// Combined returns bulk followed by submitted, orders preserved.
	Combined(ctx context.Context) ([]JobSeeker, error)
	// Submitted returns only the user-submitted set.
	Submitted(ctx context.Context) ([]JobSeeker, error)
}

type JobSeekerUsecase interface {
	SaveProfile(ctx context.Context, input ProfileInput) error
	ListJobSeekers(ctx context.Context) ([]JobSeeker, error)
}
