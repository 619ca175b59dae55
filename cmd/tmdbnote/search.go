package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/tmdbnote/internal/lookup"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>...",
	Short: "Search TMDB for movies and tv shows",
	Long: `Search TMDB for movies and tv shows.

Examples:
  tmdbnote search "The Matrix"
  tmdbnote search --json breaking bad`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearchCmd,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearchCmd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	query := strings.Join(args, " ")

	store, err := loadStore(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	snapshot := store.Snapshot()
	pipeline := lookup.NewPipeline(newTMDBClient(), newLogger(cmd.ErrOrStderr()))

	results, err := pipeline.Search(ctx, snapshot, query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	rows := lookup.Render(results, snapshot.OverviewLength)
	if jsonOutput {
		return printSuggestionsJSON(cmd.OutOrStdout(), rows)
	}
	printSuggestions(cmd.OutOrStdout(), query, rows)
	return nil
}

type suggestionJSON struct {
	ID         int64  `json:"id"`
	Type       string `json:"type"`
	Label      string `json:"label"`
	Excerpt    string `json:"excerpt"`
	PosterPath string `json:"poster_path,omitempty"`
}

func printSuggestionsJSON(w io.Writer, rows []lookup.Suggestion) error {
	out := make([]suggestionJSON, len(rows))
	for i, r := range rows {
		out[i] = suggestionJSON{
			ID:      r.Candidate.ID,
			Type:    string(r.Candidate.Kind),
			Label:   r.Label,
			Excerpt: r.Excerpt,
		}
		if r.Candidate.HasPoster() {
			out[i].PosterPath = *r.Candidate.PosterPath
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func printSuggestions(w io.Writer, query string, rows []lookup.Suggestion) {
	if len(rows) == 0 {
		fmt.Fprintf(w, "No results for %q\n", query)
		return
	}

	fmt.Fprintf(w, "Found %d results for %q:\n\n", len(rows), query)
	for i, r := range rows {
		label := r.Label
		if len([]rune(label)) > 60 {
			label = string([]rune(label)[:57]) + "..."
		}
		fmt.Fprintf(w, " %2d │ %-5s │ %s\n", i+1, r.Candidate.Kind, label)
		if r.Excerpt != "" {
			fmt.Fprintf(w, "    │       │ %s\n", r.Excerpt)
		}
	}
}
