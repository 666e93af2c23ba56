// Package cli implements the docsearch command line interface.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docsearch/internal/core/ports/driving"
	"github.com/custodia-labs/docsearch/internal/logger"
)

// version is set by Execute.
var version = "dev"

// Services used by the commands. Set by SetServices or the bootstrap hook.
var (
	searchService   driving.SearchService
	corpusService   driving.CorpusService
	historyService  driving.HistoryService
	settingsService driving.SettingsService
)

// Persistent flags.
var (
	verbose   bool
	configDir string
)

// Services groups the driving ports the commands depend on.
type Services struct {
	Search   driving.SearchService
	Corpus   driving.CorpusService
	History  driving.HistoryService
	Settings driving.SettingsService

	// Close releases resources held by the services. May be nil.
	Close func() error
}

// BootstrapOptions carries the persistent flags to the bootstrap hook.
type BootstrapOptions struct {
	ConfigDir string
	Verbose   bool
}

// Bootstrap builds the services once flags are parsed.
type Bootstrap func(ctx context.Context, opts BootstrapOptions) (*Services, error)

var (
	bootstrap    Bootstrap
	closeService func() error
)

var rootCmd = &cobra.Command{
	Use:   "docsearch",
	Short: "Search the agent framework documentation",
	Long: `docsearch ranks documentation pages for a query using title, URL,
keyword and content matches, typo-tolerant fuzzy matching, synonym
expansion and n-gram partial credit.

Pages come from the built-in site index, a local directory of Markdown or
HTML files, or a GitHub repository.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug logs")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.docsearch)")
}

// SetServices installs the services used by the commands.
func SetServices(s *Services) {
	if s == nil {
		return
	}
	searchService = s.Search
	corpusService = s.Corpus
	historyService = s.History
	settingsService = s.Settings
	closeService = s.Close
}

// SetBootstrap installs the hook that builds services after flag parsing.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// Execute runs the root command.
func Execute(ctx context.Context, v string) error {
	if v != "" {
		version = v
	}
	return run(ctx)
}

// run executes the command tree and closes the services afterwards, also
// when the command failed. Cobra skips post-run hooks on errors.
func run(ctx context.Context) (err error) {
	defer func() {
		if cerr := teardown(); cerr != nil && err == nil {
			err = fmt.Errorf("close services: %w", cerr)
		}
	}()
	return rootCmd.ExecuteContext(ctx)
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	if bootstrap == nil {
		return nil
	}

	services, err := bootstrap(cmd.Context(), BootstrapOptions{
		ConfigDir: configDir,
		Verbose:   verbose,
	})
	if err != nil {
		return fmt.Errorf("initialise: %w", err)
	}
	SetServices(services)
	return nil
}

func teardown() error {
	if closeService == nil {
		return nil
	}
	err := closeService()
	closeService = nil
	return err
}

// commandContext returns the command's context or a background context.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
