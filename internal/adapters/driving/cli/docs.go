package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docsearch/internal/core/domain"
)

var (
	docsListSection []string
	docsListJSON    bool
	docsShowJSON    bool
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Browse the loaded pages",
	Long:  `List the pages in the corpus, show a single page, or reload every source.`,
}

var docsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List pages",
	Args:  cobra.NoArgs,
	RunE:  runDocsList,
}

var docsShowCmd = &cobra.Command{
	Use:   "show [href]",
	Short: "Show a page",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocsShow,
}

var docsSectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List section labels",
	Args:  cobra.NoArgs,
	RunE:  runDocsSections,
}

var docsReloadCmd = &cobra.Command{
	Use:   "reload",
	Short: "Reload every corpus source",
	Args:  cobra.NoArgs,
	RunE:  runDocsReload,
}

func init() {
	docsListCmd.Flags().StringSliceVar(&docsListSection, "section", nil, "only list pages in these sections")
	docsListCmd.Flags().BoolVar(&docsListJSON, "json", false, "output pages as JSON")
	docsShowCmd.Flags().BoolVar(&docsShowJSON, "json", false, "output the page as JSON")

	docsCmd.AddCommand(docsListCmd)
	docsCmd.AddCommand(docsShowCmd)
	docsCmd.AddCommand(docsSectionsCmd)
	docsCmd.AddCommand(docsReloadCmd)
	rootCmd.AddCommand(docsCmd)
}

func runDocsList(cmd *cobra.Command, _ []string) error {
	if corpusService == nil {
		return errors.New("corpus service not configured")
	}

	docs, err := corpusService.Documents(commandContext(cmd))
	if err != nil {
		return fmt.Errorf("failed to load pages: %w", err)
	}

	filtered := make([]domain.Document, 0, len(docs))
	for i := range docs {
		if docs[i].InSection(docsListSection) {
			filtered = append(filtered, docs[i])
		}
	}

	if docsListJSON {
		data, err := json.MarshalIndent(filtered, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal pages: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(filtered) == 0 {
		cmd.Println("No pages found.")
		return nil
	}

	for i := range filtered {
		d := filtered[i]
		cmd.Printf("  %-40s %s", d.Href, d.Title)
		if d.Section != "" {
			cmd.Printf(" [%s]", d.Section)
		}
		cmd.Println()
	}
	cmd.Printf("\nTotal: %d pages\n", len(filtered))
	return nil
}

func runDocsShow(cmd *cobra.Command, args []string) error {
	if corpusService == nil {
		return errors.New("corpus service not configured")
	}

	doc, err := corpusService.Get(commandContext(cmd), args[0])
	if err != nil {
		return fmt.Errorf("failed to get page: %w", err)
	}

	if docsShowJSON {
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal page: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("Page: %s\n\n", doc.Href)
	cmd.Printf("  Title:    %s\n", doc.Title)
	if doc.Section != "" {
		cmd.Printf("  Section:  %s\n", doc.Section)
	}
	if len(doc.Keywords) > 0 {
		cmd.Printf("  Keywords: %s\n", strings.Join(doc.Keywords, ", "))
	}
	if doc.Source != "" {
		cmd.Printf("  Source:   %s\n", doc.Source)
	}
	cmd.Println()
	cmd.Println(doc.Content)
	return nil
}

func runDocsSections(cmd *cobra.Command, _ []string) error {
	if corpusService == nil {
		return errors.New("corpus service not configured")
	}

	sections, err := corpusService.Sections(commandContext(cmd))
	if err != nil {
		return fmt.Errorf("failed to load sections: %w", err)
	}
	for _, s := range sections {
		cmd.Println(s)
	}
	return nil
}

func runDocsReload(cmd *cobra.Command, _ []string) error {
	if corpusService == nil {
		return errors.New("corpus service not configured")
	}

	docs, err := corpusService.Reload(commandContext(cmd))
	if err != nil {
		return fmt.Errorf("failed to reload pages: %w", err)
	}
	cmd.Printf("Loaded %d pages\n", len(docs))
	return nil
}
