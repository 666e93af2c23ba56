package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/docsearch/internal/core/domain"
)

var (
	searchLimit    int
	searchOffset   int
	searchSections []string
	searchJSON     bool
	searchExplain  bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the documentation",
	Long: `Ranks every page against the query and prints the best matches.

Exact and partial title matches score highest, followed by URL, keyword and
content matches. Misspellings are tolerated through fuzzy matching and a
typo table, and related terms are found through synonym expansion.

Examples:
  docsearch search getting started
  docsearch search xray --section Observability
  docsearch search "deploy lambda" --json --explain`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "maximum number of results (0 = configured default)")
	searchCmd.Flags().IntVar(&searchOffset, "offset", 0, "number of results to skip")
	searchCmd.Flags().StringSliceVar(&searchSections, "section", nil, "only return pages in these sections")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	searchCmd.Flags().BoolVar(&searchExplain, "explain", false, "show why each result matched")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	if searchService == nil {
		return errors.New("search service not configured")
	}

	ctx := commandContext(cmd)
	opts := domain.SearchOptions{
		Limit:    searchLimit,
		Offset:   searchOffset,
		Sections: searchSections,
		Explain:  searchExplain,
	}

	results, err := searchService.Search(ctx, query, opts)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}

	if len(results) == 0 {
		cmd.Println("No results found.")
		if suggestions, err := searchService.Suggest(ctx, query); err == nil && len(suggestions) > 0 {
			cmd.Printf("Did you mean: %s?\n", strings.Join(suggestions, ", "))
		}
		return nil
	}

	return outputSearchTable(cmd, query, results)
}

func outputSearchJSON(cmd *cobra.Command, results []domain.SearchResult) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, query string, results []domain.SearchResult) error {
	color := isTerminal(cmd.OutOrStdout())
	style := func(s lipgloss.Style, text string) string {
		if !color {
			return text
		}
		return s.Render(text)
	}

	cmd.Println("Results:")
	cmd.Println()
	for i := range results {
		r := results[i]

		// Format: [N] Title (Score)
		cmd.Printf("  [%d] %s (%.2f)\n", searchOffset+i+1, style(titleStyle, r.Document.Title), r.Score)

		location := r.Document.Href
		if r.Document.Section != "" {
			location += " · " + r.Document.Section
		}
		cmd.Printf("      %s\n", style(dimStyle, location))

		if r.Snippet != "" {
			snippet := r.Snippet
			if color {
				snippet = highlight(snippet, query, matchStyle)
			}
			cmd.Printf("      %s\n", snippet)
		}

		if len(r.Details) > 0 {
			cmd.Printf("      matched: %s\n", formatDetails(r.Details))
		}
		cmd.Println()
	}

	return nil
}

// formatDetails renders match details as "type(field:term)" pairs.
func formatDetails(details []domain.MatchDetail) string {
	parts := make([]string, 0, len(details))
	for _, d := range details {
		switch {
		case d.Field != "" && d.Term != "":
			parts = append(parts, fmt.Sprintf("%s(%s:%s)", d.Type, d.Field, d.Term))
		case d.Term != "":
			parts = append(parts, fmt.Sprintf("%s(%s)", d.Type, d.Term))
		case d.Field != "":
			parts = append(parts, fmt.Sprintf("%s(%s)", d.Type, d.Field))
		default:
			parts = append(parts, string(d.Type))
		}
	}
	return strings.Join(parts, ", ")
}
