// Package plugin wires settings, lookup and compose into the one
// user-invokable command and exposes the host lifecycle.
package plugin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/vmunix/tmdbnote/internal/compose"
	"github.com/vmunix/tmdbnote/internal/host"
	"github.com/vmunix/tmdbnote/internal/lookup"
	"github.com/vmunix/tmdbnote/internal/settings"
	"github.com/vmunix/tmdbnote/internal/tmdb"
)

const (
	CommandID   = "search-tv"
	CommandName = "Generate TMDB data"
)

// ErrNotInitialized is returned when the plugin is invoked before
// Initialize or after Shutdown.
var ErrNotInitialized = errors.New("plugin not initialized")

// Plugin is the lifecycle a host drives.
type Plugin interface {
	Initialize(ctx context.Context, store *settings.Store) error
	HandleInvocation(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// Picker shows the suggestion list for a session and returns the chosen
// candidate. ok is false when the user dismissed the list.
type Picker interface {
	Pick(ctx context.Context, sess *lookup.Session) (c tmdb.Candidate, ok bool, err error)
}

// MetadataAPI is the remote metadata service.
type MetadataAPI interface {
	lookup.SearchAPI
	compose.ImageFetcher
}

// Deps are the collaborators supplied by the host.
type Deps struct {
	API       MetadataAPI
	Registry  host.Registry
	Workspace host.Workspace
	Storage   host.Storage
	Picker    Picker
	Logger    *slog.Logger

	// Clock overrides the wall clock for the entry date. Optional.
	Clock func() time.Time
	// OnComposed receives every composition result. Optional.
	OnComposed func(compose.Result)
}

// TMDBPlugin looks titles up on TMDB and writes them into the active note.
type TMDBPlugin struct {
	deps     Deps
	pipeline *lookup.Pipeline
	composer *compose.Composer
	log      *slog.Logger

	store  *settings.Store
	loaded atomic.Bool
}

var _ Plugin = (*TMDBPlugin)(nil)

// New creates the plugin. Nothing runs until Initialize.
func New(deps Deps) *TMDBPlugin {
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}

	var opts []compose.Option
	if deps.Clock != nil {
		opts = append(opts, compose.WithClock(deps.Clock))
	}

	return &TMDBPlugin{
		deps:     deps,
		pipeline: lookup.NewPipeline(deps.API, log.With("component", "lookup")),
		composer: compose.New(deps.API, deps.Storage, deps.Workspace, log.With("component", "compose"), opts...),
		log:      log,
	}
}

// Initialize loads the settings and registers the command.
func (p *TMDBPlugin) Initialize(ctx context.Context, store *settings.Store) error {
	if err := store.Load(ctx); err != nil {
		return err
	}
	p.store = store

	p.deps.Registry.RegisterCommand(host.Command{
		ID:    CommandID,
		Name:  CommandName,
		Check: p.canRun,
		Run:   p.HandleInvocation,
	})
	p.loaded.Store(true)

	p.log.Debug("plugin initialized", "command", CommandID)
	return nil
}

// canRun gates the command on an active document.
func (p *TMDBPlugin) canRun() bool {
	if !p.loaded.Load() {
		return false
	}
	_, ok := p.deps.Workspace.ActiveDocument()
	return ok
}

// HandleInvocation runs one selection interaction and composes the choice.
// Each invocation works on its own settings snapshot.
func (p *TMDBPlugin) HandleInvocation(ctx context.Context) error {
	if !p.loaded.Load() {
		return ErrNotInitialized
	}
	snapshot := p.store.Snapshot()

	sess := lookup.NewSession(ctx, p.pipeline, snapshot, p.log.With("component", "session"))
	cand, ok, err := p.deps.Picker.Pick(ctx, sess)
	if waitErr := sess.Wait(); err == nil {
		err = waitErr
	}
	if err != nil {
		return fmt.Errorf("pick: %w", err)
	}
	if !ok {
		p.log.Debug("selection dismissed")
		return nil
	}

	res, err := p.composer.Compose(ctx, snapshot, cand)
	if p.deps.OnComposed != nil {
		p.deps.OnComposed(res)
	}
	return err
}

// Shutdown disables the command.
func (p *TMDBPlugin) Shutdown(_ context.Context) error {
	p.loaded.Store(false)
	p.log.Debug("plugin shut down")
	return nil
}
