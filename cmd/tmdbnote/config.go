package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vmunix/tmdbnote/internal/settings"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show and change settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting and save it",
	Long: `Change one setting and save it immediately.

Keys:
  api_key            TMDB API key
  language           Display language passed to TMDB (e.g. zh, en-US)
  folder_location    Prefix for saved posters (e.g. "covers/")
  overview_length    Excerpt length in the result list
  original_language  Stored only`,
	Args:      cobra.ExactArgs(2),
	ValidArgs: settings.Keys,
	RunE:      runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings location",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), resolvedSettingsPath())
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configSetCmd, configPathCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	store, err := loadStore(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	printSettings(cmd.OutOrStdout(), store.Snapshot())
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	store, err := loadStore(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	key, value := args[0], args[1]
	if err := store.Update(ctx, func(s *settings.Settings) error {
		return s.Set(key, value)
	}); err != nil {
		return err
	}

	shown, _ := store.Snapshot().Get(key)
	if key == "api_key" {
		shown = maskSecret(shown)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s = %q\n", key, shown)
	return nil
}

func printSettings(w io.Writer, s settings.Settings) {
	for _, key := range settings.Keys {
		v, _ := s.Get(key)
		if key == "api_key" {
			v = maskSecret(v)
		}
		fmt.Fprintf(w, "%-18s %q\n", key, v)
	}
}

func maskSecret(s string) string {
	if len(s) <= 4 {
		if s == "" {
			return ""
		}
		return "****"
	}
	return "****" + s[len(s)-4:]
}
