package lookup_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vmunix/tmdbnote/internal/lookup"
	"github.com/vmunix/tmdbnote/internal/lookup/mocks"
	"github.com/vmunix/tmdbnote/internal/settings"
	"github.com/vmunix/tmdbnote/internal/tmdb"
)

// testLogger returns a discard logger for tests.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ptr(s string) *string { return &s }

func testSettings() settings.Settings {
	s := settings.Defaults()
	s.APIKey = "k"
	return s
}

func TestPipeline_Search_EmptyQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockSearchAPI(ctrl)
	// No EXPECT: any call fails the test.

	p := lookup.NewPipeline(api, testLogger())
	results, err := p.Search(context.Background(), testSettings(), "")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestPipeline_Search_FiltersAndKeepsOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockSearchAPI(ctrl)
	api.EXPECT().
		SearchMulti(gomock.Any(), "k", "zh", "matrix").
		Return([]tmdb.RawResult{
			{ID: 1, MediaType: "tv", Name: ptr("The Matrix Show")},
			{ID: 2, MediaType: "person", Name: ptr("Keanu Reeves")},
			{ID: 3, MediaType: "movie", Title: ptr("The Matrix")},
			{ID: 4, MediaType: "person", Name: ptr("Carrie-Anne Moss")},
			{ID: 5, MediaType: "movie", Title: ptr("The Matrix Reloaded")},
		}, nil)

	p := lookup.NewPipeline(api, testLogger())
	results, err := p.Search(context.Background(), testSettings(), "Matrix")
	require.NoError(t, err)

	ids := make([]int64, len(results))
	for i, c := range results {
		ids[i] = c.ID
		assert.NotEqual(t, "person", string(c.Kind))
	}
	assert.Equal(t, []int64{1, 3, 5}, ids)
}

func TestPipeline_Search_LowerCasesQueryOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockSearchAPI(ctrl)
	api.EXPECT().
		SearchMulti(gomock.Any(), "KeyWithCase", "pt-BR", "amélie à paris").
		Return([]tmdb.RawResult{}, nil)

	s := testSettings()
	s.APIKey = "KeyWithCase"
	s.Language = "pt-BR"

	p := lookup.NewPipeline(api, testLogger())
	results, err := p.Search(context.Background(), s, "AMÉLIE À Paris")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestPipeline_Search_PropagatesError(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockSearchAPI(ctrl)
	api.EXPECT().
		SearchMulti(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, tmdb.ErrMalformedResponse)

	p := lookup.NewPipeline(api, testLogger())
	results, err := p.Search(context.Background(), testSettings(), "x")
	assert.Nil(t, results)
	assert.True(t, errors.Is(err, tmdb.ErrMalformedResponse))
}
