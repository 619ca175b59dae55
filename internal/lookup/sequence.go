package lookup

import (
	"sync"

	"github.com/vmunix/tmdbnote/internal/tmdb"
)

// Sequence numbers overlapping searches and keeps only the results of the
// most recently issued one. Responses to superseded searches are dropped.
type Sequence struct {
	mu        sync.Mutex
	issued    uint64
	published uint64
	results   []tmdb.Candidate
}

// Begin issues the next request number.
func (s *Sequence) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	return s.issued
}

// Publish stores results if seq is still the latest issued request.
// It reports whether the results were kept.
func (s *Sequence) Publish(seq uint64, results []tmdb.Candidate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.issued {
		return false
	}
	s.published = seq
	s.results = results
	return true
}

// Latest returns the request number and results currently shown.
func (s *Sequence) Latest() (uint64, []tmdb.Candidate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.published, s.results
}
