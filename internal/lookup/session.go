package lookup

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/vmunix/tmdbnote/internal/settings"
)

const maxInFlight = 4

// Session runs one search per input change against a fixed settings
// snapshot. Searches overlap; only the newest one updates the list.
type Session struct {
	ctx      context.Context
	pipeline *Pipeline
	settings settings.Settings
	seq      Sequence
	g        errgroup.Group
	log      *slog.Logger
}

// NewSession starts a selection interaction.
func NewSession(ctx context.Context, p *Pipeline, s settings.Settings, log *slog.Logger) *Session {
	if log == nil {
		log = slog.Default()
	}
	sess := &Session{
		ctx:      ctx,
		pipeline: p,
		settings: s,
		log:      log,
	}
	sess.g.SetLimit(maxInFlight)
	return sess
}

// Settings returns the snapshot the session searches with.
func (s *Session) Settings() settings.Settings { return s.settings }

// Input issues a search for the current input text.
// A failed search is logged and leaves the list as it was.
func (s *Session) Input(query string) {
	seq := s.seq.Begin()
	s.g.Go(func() error {
		results, err := s.pipeline.Search(s.ctx, s.settings, query)
		if err != nil {
			if s.ctx.Err() != nil {
				return s.ctx.Err()
			}
			s.log.Warn("search failed", "query", query, "seq", seq, "error", err)
			return nil
		}
		if !s.seq.Publish(seq, results) {
			s.log.Debug("discarded stale results", "query", query, "seq", seq)
		}
		return nil
	})
}

// Wait blocks until all issued searches have finished.
func (s *Session) Wait() error {
	return s.g.Wait()
}

// Suggestions returns the current list rows.
func (s *Session) Suggestions() []Suggestion {
	_, results := s.seq.Latest()
	return Render(results, s.settings.OverviewLength)
}
