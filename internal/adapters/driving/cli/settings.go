package cli

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docsearch/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change the effective configuration.

Settings live in config.toml inside the configuration directory. Ranking
weights, synonyms and typo corrections can all be tuned there.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Long: `Set a configuration value and save it.

Examples:
  docsearch settings set search.limit 5
  docsearch settings set corpus.dir ~/src/agents/docs
  docsearch settings set corpus.exclude "drafts/**,**/CHANGELOG.md"
  docsearch settings set weights.exact_title 250
  docsearch settings set synonyms.graph workflow,dag
  docsearch settings set typos.grpah graph
  docsearch settings set history.enabled true`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if settingsService == nil {
			return errors.New("settings service not configured")
		}
		cmd.Println(settingsService.Path())
		return nil
	},
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsPathCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Search]")
	cmd.Printf("  Limit: %d\n", settings.Search.Limit)
	cmd.Printf("  Snippet length: %d\n", settings.Search.SnippetLength)
	cmd.Printf("  Boosted pages: %s\n", listOrNone(settings.Search.Curated))
	cmd.Println()

	cmd.Println("[Weights]")
	printWeights(cmd, settings.Weights)
	cmd.Println()

	cmd.Println("[Lexicon]")
	cmd.Printf("  Synonym entries: %d\n", len(settings.Lexicon.Synonyms()))
	cmd.Printf("  Typo corrections: %d\n", len(settings.Lexicon.Typos()))
	cmd.Println()

	cmd.Println("[Corpus]")
	cmd.Printf("  Built-in pages: %t\n", settings.Corpus.Static)
	cmd.Printf("  Directory: %s\n", valueOrNone(settings.Corpus.Dir))
	cmd.Printf("  Exclude: %s\n", listOrNone(settings.Corpus.Exclude))
	cmd.Printf("  Watch: %t\n", settings.Corpus.Watch)
	cmd.Println()

	cmd.Println("[GitHub]")
	if settings.GitHub.IsConfigured() {
		cmd.Printf("  Repository: %s/%s\n", settings.GitHub.Owner, settings.GitHub.Repo)
		cmd.Printf("  Ref: %s\n", valueOrDefault(settings.GitHub.Ref, "(default branch)"))
		cmd.Printf("  Path: %s\n", settings.GitHub.Path)
		if settings.GitHub.Token != "" {
			cmd.Printf("  Token: %s\n", maskToken(settings.GitHub.Token))
		} else {
			cmd.Println("  Token: (not set)")
		}
	} else {
		cmd.Println("  Status: not configured")
	}
	cmd.Println()

	cmd.Println("[History]")
	cmd.Printf("  Enabled: %t\n", settings.History.Enabled)
	if settings.History.Enabled {
		cmd.Printf("  Directory: %s\n", valueOrNone(settings.History.Dir))
	}
	cmd.Println()

	cmd.Printf("Config file: %s\n", settingsService.Path())
	return nil
}

func printWeights(cmd *cobra.Command, w domain.Weights) {
	rows := map[string]string{
		"exact_title":        fmt.Sprintf("%g", w.ExactTitle),
		"title_substring":    fmt.Sprintf("%g", w.TitleSubstring),
		"url":                fmt.Sprintf("%g", w.URL),
		"token_title":        fmt.Sprintf("%g", w.TokenTitle),
		"token_url":          fmt.Sprintf("%g", w.TokenURL),
		"keyword_exact":      fmt.Sprintf("%g", w.KeywordExact),
		"keyword_partial":    fmt.Sprintf("%g", w.KeywordPartial),
		"content":            fmt.Sprintf("%g", w.Content),
		"section":            fmt.Sprintf("%g", w.Section),
		"fuzzy_title":        fmt.Sprintf("%g", w.FuzzyTitle),
		"fuzzy_keyword":      fmt.Sprintf("%g", w.FuzzyKeyword),
		"fuzzy_threshold":    fmt.Sprintf("%g", w.FuzzyThreshold),
		"fuzzy_max_len_diff": fmt.Sprintf("%d", w.FuzzyMaxLenDiff),
		"synonym_title":      fmt.Sprintf("%g", w.SynonymTitle),
		"synonym_keyword":    fmt.Sprintf("%g", w.SynonymKeyword),
		"synonym_content":    fmt.Sprintf("%g", w.SynonymContent),
		"ngram_size":         fmt.Sprintf("%d", w.NGramSize),
		"ngram_cap":          fmt.Sprintf("%g", w.NGramCap),
		"multi_match_factor": fmt.Sprintf("%g", w.MultiMatchFactor),
		"curated_boost":      fmt.Sprintf("%g", w.CuratedBoost),
	}

	keys := make([]string, 0, len(rows))
	for k := range rows {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		cmd.Printf("  %-20s %s\n", k, rows[k])
	}
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}

// maskToken shows only the last four characters of a secret.
func maskToken(token string) string {
	if len(token) <= 8 {
		return "****"
	}
	return "****" + token[len(token)-4:]
}

func listOrNone(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}

func valueOrNone(s string) string {
	return valueOrDefault(s, "(none)")
}

func valueOrDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
