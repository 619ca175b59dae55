// Package lookup turns free-text input into tv/movie candidates for the
// selection list.
package lookup

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/vmunix/tmdbnote/internal/settings"
	"github.com/vmunix/tmdbnote/internal/tmdb"
)

//go:generate mockgen -destination=mocks/mock_search_api.go -package=mocks . SearchAPI

// SearchAPI is the remote multi-search endpoint.
type SearchAPI interface {
	SearchMulti(ctx context.Context, apiKey, language, query string) ([]tmdb.RawResult, error)
}

// Pipeline queries the search endpoint and keeps tv and movie results.
type Pipeline struct {
	api SearchAPI
	log *slog.Logger
}

// NewPipeline creates a lookup pipeline.
func NewPipeline(api SearchAPI, log *slog.Logger) *Pipeline {
	if log == nil {
		log = slog.Default()
	}
	return &Pipeline{api: api, log: log}
}

// Search returns the tv and movie candidates for query in API order.
// An empty query returns nothing without calling the API.
func (p *Pipeline) Search(ctx context.Context, s settings.Settings, query string) ([]tmdb.Candidate, error) {
	if query == "" {
		return nil, nil
	}

	// Casers keep state, so one per call.
	q := cases.Lower(language.Und).String(query)
	start := time.Now()

	raw, err := p.api.SearchMulti(ctx, s.APIKey, s.Language, q)
	if err != nil {
		return nil, err
	}

	candidates := make([]tmdb.Candidate, 0, len(raw))
	for _, r := range raw {
		if c, ok := tmdb.Normalize(r); ok {
			candidates = append(candidates, c)
		}
	}

	p.log.Debug("search complete", "query", q, "results", len(raw), "kept", len(candidates), "duration_ms", time.Since(start).Milliseconds())
	return candidates, nil
}
