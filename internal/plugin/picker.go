package plugin

import (
	"context"
	"fmt"

	"github.com/vmunix/tmdbnote/internal/lookup"
	"github.com/vmunix/tmdbnote/internal/tmdb"
)

// BestMatchPicker searches once and picks the closest title.
type BestMatchPicker struct {
	Query string
}

func (b BestMatchPicker) Pick(_ context.Context, sess *lookup.Session) (tmdb.Candidate, bool, error) {
	sess.Input(b.Query)
	if err := sess.Wait(); err != nil {
		return tmdb.Candidate{}, false, err
	}

	rows := sess.Suggestions()
	candidates := make([]tmdb.Candidate, len(rows))
	for i, r := range rows {
		candidates[i] = r.Candidate
	}

	m, ok := lookup.BestMatch(b.Query, candidates)
	if !ok {
		return tmdb.Candidate{}, false, nil
	}
	return m.Candidate, true, nil
}

// IndexPicker searches once and picks the Nth suggestion (1-based).
type IndexPicker struct {
	Query string
	Index int
}

func (p IndexPicker) Pick(_ context.Context, sess *lookup.Session) (tmdb.Candidate, bool, error) {
	sess.Input(p.Query)
	if err := sess.Wait(); err != nil {
		return tmdb.Candidate{}, false, err
	}

	rows := sess.Suggestions()
	if len(rows) == 0 {
		return tmdb.Candidate{}, false, nil
	}
	if p.Index < 1 || p.Index > len(rows) {
		return tmdb.Candidate{}, false, fmt.Errorf("pick %d: only %d results", p.Index, len(rows))
	}
	return rows[p.Index-1].Candidate, true, nil
}
