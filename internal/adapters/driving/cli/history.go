package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docsearch/internal/core/domain"
)

var (
	historyLimit int
	historyJSON  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent queries",
	Long: `Shows the most recent queries with their result count and top page.

The query log is off by default. Enable it with:
  docsearch settings set history.enabled true`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of queries to show (0 = all)")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	if !historyService.Enabled() {
		cmd.Println("Query history is disabled.")
		cmd.Println("Enable it with: docsearch settings set history.enabled true")
		return nil
	}

	records, err := historyService.Recent(commandContext(cmd), historyLimit)
	if err != nil {
		if errors.Is(err, domain.ErrHistoryDisabled) {
			cmd.Println("Query history is disabled.")
			return nil
		}
		return fmt.Errorf("failed to read history: %w", err)
	}

	if historyJSON {
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal history: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(records) == 0 {
		cmd.Println("No queries recorded yet.")
		return nil
	}

	for i := range records {
		r := records[i]
		top := r.TopHref
		if top == "" {
			top = "-"
		}
		cmd.Printf("  %s  %-30q %4d  %s\n", r.CreatedAt.Format("2006-01-02 15:04:05"), r.Query, r.ResultCount, top)
	}
	return nil
}
