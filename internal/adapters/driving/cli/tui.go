package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docsearch/internal/adapters/driving/tui"
	"github.com/custodia-labs/docsearch/internal/logger"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for docsearch.

The TUI searches the docs as you type a query, lets you browse pages by
section, read a page, and re-run recent searches.

Controls:
  ↑/k, ↓/j - Navigate
  Enter    - Search / Open
  Tab      - Cycle section filter
  Esc      - Back
  Ctrl+C   - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("TUI panic: %v", r)
		}
	}()

	if searchService == nil || corpusService == nil {
		return errors.New("search service not configured")
	}

	ports := &tui.Ports{
		Search: searchService,
		Corpus: corpusService,
	}
	if historyService != nil && historyService.Enabled() {
		ports.History = historyService
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(commandContext(cmd))

	// Log lines would corrupt the alternate screen.
	prev := logger.Output()
	logger.SetOutput(io.Discard)
	defer logger.SetOutput(prev)

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
