// Package compose saves a chosen candidate's poster and writes its
// frontmatter entry into the active note.
package compose

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/vmunix/tmdbnote/internal/host"
	"github.com/vmunix/tmdbnote/internal/settings"
	"github.com/vmunix/tmdbnote/internal/tmdb"
)

//go:generate mockgen -destination=mocks/mock_image_fetcher.go -package=mocks . ImageFetcher

// ImageFetcher downloads poster images.
type ImageFetcher interface {
	FetchImage(ctx context.Context, posterPath string) ([]byte, error)
}

// ImageOutcome is either ImageSaved or ImageSkipped.
type ImageOutcome interface {
	imageOutcome()
}

// ImageSaved means the poster was written to Path in storage.
type ImageSaved struct {
	Path string
}

// ImageSkipped means no poster was written. Err is nil when there was
// nothing to fetch.
type ImageSkipped struct {
	Reason string
	Err    error
}

func (ImageSaved) imageOutcome()   {}
func (ImageSkipped) imageOutcome() {}

// Result describes what one composition did.
type Result struct {
	Image    ImageOutcome
	Entry    string
	Inserted bool
}

// Composer turns a selected candidate into a saved poster and a note entry.
type Composer struct {
	images    ImageFetcher
	storage   host.Storage
	workspace host.Workspace
	now       func() time.Time
	log       *slog.Logger
}

// Option configures a Composer.
type Option func(*Composer)

// WithClock overrides the wall clock used for the date line.
func WithClock(now func() time.Time) Option {
	return func(c *Composer) {
		c.now = now
	}
}

// New creates a Composer.
func New(images ImageFetcher, storage host.Storage, workspace host.Workspace, log *slog.Logger, opts ...Option) *Composer {
	if log == nil {
		log = slog.Default()
	}
	c := &Composer{
		images:    images,
		storage:   storage,
		workspace: workspace,
		now:       time.Now,
		log:       log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compose saves the poster (best effort) and inserts the entry at the start
// of the document that was active when composition began. A candidate
// without poster or overview fails before anything is inserted; a poster
// saved by then is kept.
func (c *Composer) Compose(ctx context.Context, s settings.Settings, cand tmdb.Candidate) (Result, error) {
	doc, active := c.workspace.ActiveDocument()

	res := Result{Image: c.saveImage(ctx, s, cand)}

	entry, err := BuildEntry(cand, c.now())
	if err != nil {
		return res, fmt.Errorf("compose %q: %w", cand.Title, err)
	}
	res.Entry = entry

	if !active {
		c.log.Debug("no active document, entry not inserted", "title", cand.Title)
		return res, nil
	}
	if err := doc.InsertAt(host.Position{Line: 0, Ch: 0}, entry); err != nil {
		return res, fmt.Errorf("insert entry: %w", err)
	}
	res.Inserted = true

	c.log.Info("entry inserted", "title", cand.Title, "type", cand.Kind)
	return res, nil
}

func (c *Composer) saveImage(ctx context.Context, s settings.Settings, cand tmdb.Candidate) ImageOutcome {
	if !cand.HasPoster() {
		return ImageSkipped{Reason: "no poster"}
	}
	posterPath := *cand.PosterPath

	data, err := c.images.FetchImage(ctx, posterPath)
	if err != nil {
		c.log.Warn("poster download failed", "poster_path", posterPath, "error", err)
		return ImageSkipped{Reason: "download failed", Err: err}
	}

	// Plain concatenation: the poster path carries its own leading slash.
	target := s.FolderLocation + posterPath
	if err := c.storage.WriteBinary(ctx, target, data); err != nil {
		c.log.Warn("poster write failed", "path", target, "error", err)
		return ImageSkipped{Reason: "write failed", Err: err}
	}

	c.log.Debug("poster saved", "path", target, "bytes", len(data))
	return ImageSaved{Path: target}
}
