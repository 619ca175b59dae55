package lookup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/tmdbnote/internal/tmdb"
)

func TestBestMatch(t *testing.T) {
	candidates := []tmdb.Candidate{
		{ID: 1, Title: "The Matrix Reloaded"},
		{ID: 2, Title: "The Matrix"},
		{ID: 3, Title: "Matrix of Leadership"},
	}

	m, ok := BestMatch("the matrix", candidates)
	require.True(t, ok)
	assert.Equal(t, 1, m.Index)
	assert.Equal(t, int64(2), m.Candidate.ID)
	assert.InDelta(t, 1.0, m.Score, 0.001)
}

func TestBestMatch_FoldsAccents(t *testing.T) {
	candidates := []tmdb.Candidate{
		{ID: 1, Title: "Leon"},
		{ID: 2, Title: "Léon: The Professional"},
	}
	m, ok := BestMatch("LÉON", candidates)
	require.True(t, ok)
	assert.Equal(t, int64(1), m.Candidate.ID)
}

func TestBestMatch_Empty(t *testing.T) {
	_, ok := BestMatch("anything", nil)
	assert.False(t, ok)
}
