package lookup

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vmunix/tmdbnote/internal/tmdb"
)

func TestSequence_DiscardsStale(t *testing.T) {
	var s Sequence

	first := s.Begin()
	second := s.Begin()

	fresh := []tmdb.Candidate{{ID: 2}}
	stale := []tmdb.Candidate{{ID: 1}}

	assert.True(t, s.Publish(second, fresh))
	assert.False(t, s.Publish(first, stale), "older response must not clobber newer list")

	seq, got := s.Latest()
	assert.Equal(t, second, seq)
	assert.Equal(t, fresh, got)
}

func TestSequence_OlderCannotPublishWhileNewerPending(t *testing.T) {
	var s Sequence

	first := s.Begin()
	_ = s.Begin()

	assert.False(t, s.Publish(first, []tmdb.Candidate{{ID: 1}}))
	seq, got := s.Latest()
	assert.Zero(t, seq)
	assert.Nil(t, got)
}
