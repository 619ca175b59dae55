package tmdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func TestNormalize_Movie(t *testing.T) {
	c, ok := Normalize(RawResult{
		ID:          603,
		MediaType:   "movie",
		Title:       ptr("The Matrix"),
		ReleaseDate: ptr("1999-03-30"),
		Overview:    ptr("Set in the 22nd century..."),
		PosterPath:  ptr("/f89U3ADr1oiB1s9GkdPOEpXUk5H.jpg"),
	})
	require.True(t, ok)
	assert.Equal(t, KindMovie, c.Kind)
	assert.Equal(t, "The Matrix", c.Title)
	assert.Equal(t, "1999-03-30", c.Date)
	assert.True(t, c.HasPoster())
	assert.Equal(t, "Set in the 22nd century...", c.OverviewText())
}

func TestNormalize_TVFallsBackToName(t *testing.T) {
	c, ok := Normalize(RawResult{
		MediaType:    "tv",
		Name:         ptr("Breaking Bad"),
		FirstAirDate: ptr("2008-01-20"),
	})
	require.True(t, ok)
	assert.Equal(t, KindTV, c.Kind)
	assert.Equal(t, "Breaking Bad", c.Title)
	assert.Equal(t, "2008-01-20", c.Date)
	assert.False(t, c.HasPoster())
	assert.Nil(t, c.Overview)
}

func TestNormalize_EmptyTitleFallsBack(t *testing.T) {
	c, ok := Normalize(RawResult{
		MediaType:    "movie",
		Title:        ptr(""),
		Name:         ptr("Fallback"),
		ReleaseDate:  ptr(""),
		FirstAirDate: ptr("2001-01-01"),
		PosterPath:   ptr(""),
	})
	require.True(t, ok)
	assert.Equal(t, "Fallback", c.Title)
	assert.Equal(t, "2001-01-01", c.Date)
	assert.False(t, c.HasPoster(), "empty poster path counts as absent")
}

func TestNormalize_DropsOtherKinds(t *testing.T) {
	for _, mt := range []string{"person", "collection", ""} {
		_, ok := Normalize(RawResult{MediaType: mt, Name: ptr("x")})
		assert.False(t, ok, mt)
	}
}
