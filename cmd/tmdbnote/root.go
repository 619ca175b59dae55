package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/tmdbnote/internal/settings"
	"github.com/vmunix/tmdbnote/internal/tmdb"
)

var version = "dev"

var (
	settingsPath string
	logLevel     string
	jsonOutput   bool

	// Hidden: point the client at a fake TMDB.
	apiURL   string
	imageURL string
)

var rootCmd = &cobra.Command{
	Use:   "tmdbnote",
	Short: "Prepend TMDB metadata to markdown notes",
	Long: `tmdbnote - TMDB lookups for your notes

Search The Movie Database for a movie or tv show, save its poster
into your vault and prepend a frontmatter block to a note.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&settingsPath, "settings", "", "Settings file (.toml, or .db for SQLite)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "TMDB API base URL")
	rootCmd.PersistentFlags().StringVar(&imageURL, "image-url", "", "TMDB image base URL")
	_ = rootCmd.PersistentFlags().MarkHidden("api-url")
	_ = rootCmd.PersistentFlags().MarkHidden("image-url")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("tmdbnote {{.Version}}\n")
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: parseLogLevel(logLevel),
	}))
}

func resolvedSettingsPath() string {
	if settingsPath != "" {
		return settingsPath
	}
	return settings.Discover()
}

// openStore opens the settings backend. The store still holds defaults;
// callers Load it (directly or through plugin initialization).
func openStore() (*settings.Store, error) {
	backend, err := settings.OpenBackend(resolvedSettingsPath())
	if err != nil {
		return nil, fmt.Errorf("open settings: %w", err)
	}
	return settings.NewStore(backend), nil
}

// loadStore opens and loads the settings.
func loadStore(ctx context.Context) (*settings.Store, error) {
	store, err := openStore()
	if err != nil {
		return nil, err
	}
	if err := store.Load(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}
	return store, nil
}

func newTMDBClient() *tmdb.Client {
	var opts []tmdb.Option
	if apiURL != "" {
		opts = append(opts, tmdb.WithBaseURL(apiURL))
	}
	if imageURL != "" {
		opts = append(opts, tmdb.WithImageBaseURL(imageURL))
	}
	return tmdb.NewClient(opts...)
}
