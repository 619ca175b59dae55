package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/tmdbnote/internal/compose"
	"github.com/vmunix/tmdbnote/internal/host"
	"github.com/vmunix/tmdbnote/internal/plugin"
)

var insertCmd = &cobra.Command{
	Use:   "insert --note FILE [flags] [query]...",
	Short: "Look a title up and prepend its entry to a note",
	Long: `Look a title up on TMDB and prepend its frontmatter entry to a note.

The poster is saved under the configured folder_location inside the vault
(the note's directory unless --vault is given).

Examples:
  tmdbnote insert --note Watchlist.md
  tmdbnote insert --note Watchlist.md "The Matrix"
  tmdbnote insert --note Watchlist.md --pick best "The Matrix"
  tmdbnote insert --note Watchlist.md --pick 2 dune`,
	RunE: runInsertCmd,
}

func init() {
	rootCmd.AddCommand(insertCmd)
	insertCmd.Flags().String("note", "", "Note to prepend the entry to")
	insertCmd.Flags().String("vault", "", "Vault directory for posters (default: the note's directory)")
	insertCmd.Flags().String("pick", "", "Pick without prompting: result number or 'best'")
}

func runInsertCmd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	query := strings.Join(args, " ")
	note, _ := cmd.Flags().GetString("note")
	vaultDir, _ := cmd.Flags().GetString("vault")
	pickFlag, _ := cmd.Flags().GetString("pick")

	if vaultDir == "" && note != "" {
		vaultDir = filepath.Dir(note)
	}
	if vaultDir == "" {
		vaultDir = "."
	}

	picker, err := buildPicker(cmd.InOrStdin(), cmd.OutOrStdout(), pickFlag, query)
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	out := cmd.OutOrStdout()
	commands := host.NewCommands()
	p := plugin.New(plugin.Deps{
		API:        newTMDBClient(),
		Registry:   commands,
		Workspace:  host.NewFileWorkspace(note),
		Storage:    host.NewVault(vaultDir),
		Picker:     picker,
		Logger:     newLogger(cmd.ErrOrStderr()),
		OnComposed: func(r compose.Result) { printResult(out, note, r) },
	})
	if err := p.Initialize(ctx, store); err != nil {
		return err
	}
	defer func() { _ = p.Shutdown(ctx) }()

	err = commands.Invoke(ctx, plugin.CommandID)
	if errors.Is(err, host.ErrCommandDisabled) {
		return fmt.Errorf("no active note: pass --note with an existing file")
	}
	return err
}

func buildPicker(in io.Reader, out io.Writer, pickFlag, query string) (plugin.Picker, error) {
	switch pickFlag {
	case "":
		return &promptPicker{in: in, out: out, initial: query}, nil
	case "best":
		if query == "" {
			return nil, fmt.Errorf("--pick best needs a query")
		}
		return plugin.BestMatchPicker{Query: query}, nil
	default:
		n, err := strconv.Atoi(pickFlag)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("--pick: want a positive number or 'best', got %q", pickFlag)
		}
		if query == "" {
			return nil, fmt.Errorf("--pick %d needs a query", n)
		}
		return plugin.IndexPicker{Query: query, Index: n}, nil
	}
}

func printResult(w io.Writer, note string, r compose.Result) {
	switch img := r.Image.(type) {
	case compose.ImageSaved:
		fmt.Fprintf(w, "Poster:  saved to %s\n", img.Path)
	case compose.ImageSkipped:
		if img.Err != nil {
			fmt.Fprintf(w, "Poster:  skipped (%s: %v)\n", img.Reason, img.Err)
		} else {
			fmt.Fprintf(w, "Poster:  skipped (%s)\n", img.Reason)
		}
	}
	if r.Inserted {
		fmt.Fprintf(w, "Entry:   prepended to %s\n", note)
	} else if r.Entry != "" {
		fmt.Fprintln(w, "Entry:   not inserted (no active note)")
	}
}
