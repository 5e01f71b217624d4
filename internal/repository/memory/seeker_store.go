package memory

import (
	"context"
	"sync"

	"local-jobs-backend/internal/domain"
)

// SeekerStore holds both job-seeker sets in memory: the bulk set loaded
// once at startup and the user-submitted set mutated by upserts. The
// submitted set is not persisted in this design.
type SeekerStore struct {
	mu        sync.RWMutex
	bulk      []domain.JobSeeker
	submitted []domain.JobSeeker
}

func NewSeekerStore() *SeekerStore {
	return &SeekerStore{}
}

// SetBulk installs the ingested set. The ingestion pipeline calls this
// exactly once before the server starts accepting traffic.
func (s *SeekerStore) SetBulk(seekers []domain.JobSeeker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bulk = seekers
}

// Upsert stores a submitted profile keyed by its normalized identifier.
// An existing record with the same key is replaced in place, keeping its
// position; otherwise the profile is appended. The find-then-replace
// sequence runs under the write lock so two concurrent submissions with
// the same identifier cannot both append.
func (s *SeekerStore) Upsert(_ context.Context, seeker domain.JobSeeker) error {
	seeker.Identifier = domain.NormalizeIdentifier(seeker.Identifier)
	seeker.Source = domain.SourceUserSaved

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.submitted {
		if s.submitted[i].Identifier == seeker.Identifier {
			s.submitted[i] = seeker
			return nil
		}
	}
	s.submitted = append(s.submitted, seeker)
	return nil
}

// Combined returns the bulk set followed by the submitted set, each in
// its own internal order. The two sets are deliberately not deduplicated
// against each other.
func (s *SeekerStore) Combined(_ context.Context) ([]domain.JobSeeker, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.JobSeeker, 0, len(s.bulk)+len(s.submitted))
	out = append(out, s.bulk...)
	out = append(out, s.submitted...)
	return out, nil
}

func (s *SeekerStore) Submitted(_ context.Context) ([]domain.JobSeeker, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.JobSeeker{}, s.submitted...), nil
}
